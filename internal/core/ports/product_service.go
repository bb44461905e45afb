package ports

import (
	"context"

	"github.com/storelane/commerce-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create a catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Currency    string
	Category    string
	Stock       int
	CreatedBy   string
}

// UpdateProductInput carries the mutable product fields.
type UpdateProductInput struct {
	Name        string
	Description string
	Price       float64
	Currency    string
	Category    string
	Stock       int
	Active      bool
}

// ProductPage is one page of catalog entries.
type ProductPage struct {
	Items      []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ListProductsFilter) (*ProductPage, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	// Deactivate is the delete operation: the document stays, active=false.
	Deactivate(ctx context.Context, id string) error
}
