// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpsertProductInput defines the staff-editable catalog fields.
type UpsertProductInput struct {
	Name        string
	Description string
	Category    string
	PriceCents  int64
	ImageURL    string
	IsAvailable bool
}

// MenuUsecase exposes the product catalog.
type MenuUsecase interface {
	// ListMenu returns every currently orderable product.
	ListMenu(ctx context.Context) ([]entity.Product, error)

	// GetProduct loads one product, available or not.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// CreateProduct adds a product to the catalog.
	CreateProduct(ctx context.Context, input *UpsertProductInput) (*entity.Product, error)

	// UpdateProduct replaces a product's catalog fields. Placed orders keep
	// their price snapshots.
	UpdateProduct(ctx context.Context, productID uuid.UUID, input *UpsertProductInput) (*entity.Product, error)
}
