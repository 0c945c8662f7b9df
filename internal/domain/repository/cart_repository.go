package repository

import (
	"context"
	"errors"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a cart item is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the operations for shopping cart persistence.
// Each user has at most one cart, created lazily on first add.
type CartRepository interface {
	// FindByUserID retrieves the user's cart with its items. A user who has
	// never added anything gets an empty cart, not an error.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddItem adds a product to the user's cart. Adding a product already in
	// the cart with identical customizations merges quantities.
	AddItem(ctx context.Context, userID uuid.UUID, item *entity.CartItem) error

	// UpdateItemQuantity sets the quantity of a cart item. Quantity zero
	// removes the item.
	UpdateItemQuantity(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, quantity int) error

	// RemoveItem removes a single item from the user's cart.
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) error

	// ClearByUserID removes every item from the user's cart. Settlement calls
	// this inside the settlement transaction.
	ClearByUserID(ctx context.Context, userID uuid.UUID) error
}
