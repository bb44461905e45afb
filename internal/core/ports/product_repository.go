package ports

import (
	"context"

	"github.com/storelane/commerce-api/internal/core/domain"
)

// ListProductsFilter carries all query parameters for listing products.
type ListProductsFilter struct {
	Category   string // optional: filter by category
	Search     string // optional: partial match on product name
	ActiveOnly bool   // true for non-admin callers
	SortBy     string // "price" or "created_at" (default)
	SortDesc   bool
	Page       int // 1-based
	Limit      int // capped at 100 by the service
}

// ProductRepository defines persistence operations for the catalog.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns a page of products matching filter and the total count.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	Update(ctx context.Context, p *domain.Product) error
	Deactivate(ctx context.Context, id string) error
	// DeactivateByCreator deactivates every product created by the given
	// account. Used as the cascade when an admin account is deleted.
	DeactivateByCreator(ctx context.Context, creatorID string) (int64, error)
}
