package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
)

func TestProductService_Create(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	product, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:        "Widget",
		Description: "A widget",
		Price:       9.99,
		Currency:    "USD",
		Category:    "tools",
		Stock:       5,
		CreatedBy:   "user-1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if product.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if !product.Active {
		t.Fatalf("new products must start active")
	}
	if product.CreatedAt.IsZero() || product.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set")
	}
}

func TestProductService_List_DefaultsAndCaps(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(context.Background(), ports.CreateProductInput{
			Name: "Item", Description: "d", Price: 1, Currency: "USD", Category: "misc", CreatedBy: "user-1",
		}); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}

	page, err := svc.List(context.Background(), ports.ListProductsFilter{Page: -1, Limit: 9999})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Page != 1 {
		t.Fatalf("page must default to 1, got %d", page.Page)
	}
	if page.Limit != maxPageLimit {
		t.Fatalf("limit must be capped at %d, got %d", maxPageLimit, page.Limit)
	}
	if page.Total != 3 {
		t.Fatalf("expected total 3, got %d", page.Total)
	}
}

func TestProductService_List_ActiveOnlyHidesDeactivated(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	visible, _ := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Visible", Description: "d", Price: 1, Currency: "USD", Category: "misc", CreatedBy: "user-1",
	})
	hidden, _ := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Hidden", Description: "d", Price: 1, Currency: "USD", Category: "misc", CreatedBy: "user-1",
	})
	if err := svc.Deactivate(context.Background(), hidden.ID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	page, err := svc.List(context.Background(), ports.ListProductsFilter{ActiveOnly: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 1 || page.Items[0].ID != visible.ID {
		t.Fatalf("expected only the active product, got %+v", page)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateProductInput{Name: "x"}); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Deactivate_NotFound(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	if err := svc.Deactivate(context.Background(), "missing"); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
