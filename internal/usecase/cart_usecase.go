// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddCartItemInput defines the data to stage a product in the cart.
type AddCartItemInput struct {
	UserID         uuid.UUID
	ProductID      uuid.UUID
	Quantity       int
	Customizations []entity.CustomizationSelection
}

// UpdateCartItemInput changes a staged item's quantity. Zero removes it.
type UpdateCartItemInput struct {
	UserID   uuid.UUID
	ItemID   uuid.UUID
	Quantity int
}

// --- Output DTOs ---

// CartOutput returns the cart with priced line items. Prices come from the
// live catalog; they are indicative until settlement recomputes them.
type CartOutput struct {
	Cart          *entity.Cart
	SubtotalCents int64
}

// CartUsecase manages the per-user cart.
type CartUsecase interface {
	// GetCart loads the user's cart with a catalog-priced subtotal.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartOutput, error)

	// AddItem stages a product. Identical product and customizations merge
	// into one line item.
	AddItem(ctx context.Context, input *AddCartItemInput) error

	// UpdateItemQuantity sets a staged item's quantity; zero removes it.
	UpdateItemQuantity(ctx context.Context, input *UpdateCartItemInput) error

	// RemoveItem removes a staged item.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
