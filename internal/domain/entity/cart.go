// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the per-user staging area for a purchase. Settlement clears it
// atomically with the order insert; a failed settlement leaves it intact so
// the user can retry.
type Cart struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for the cart.
	UserID    uuid.UUID  // The ID of the owning user; one active cart per user.
	Items     []CartItem // The cart's line items.
	CreatedAt time.Time  // Timestamp of when the cart was created.
	UpdatedAt time.Time  // Timestamp of the last modification.
}

// CartItem is a product selection staged in a cart. Prices are not stored
// here; settlement recomputes totals from the product catalog server-side.
type CartItem struct {
	ID             uuid.UUID                // The unique ID for this cart item.
	CartID         uuid.UUID                // The cart this item belongs to.
	ProductID      uuid.UUID                // The selected product.
	Quantity       int                      // Quantity selected; always > 0.
	Customizations []CustomizationSelection // Customization selections for this item.
	CreatedAt      time.Time                // Timestamp of when this item was added.
	UpdatedAt      time.Time                // Timestamp of the last modification.
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
