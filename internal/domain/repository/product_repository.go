package repository

import (
	"context"
	"errors"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations for menu product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves products for the given IDs. Missing IDs are simply
	// absent from the result; the caller decides whether that is an error.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)

	// ListAvailable retrieves all products currently marked available,
	// grouped by category order.
	ListAvailable(ctx context.Context) ([]entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error
}
