// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a menu item. Its price is the authoritative source for
// settlement's server-side total recomputation.
type Product struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the product.
	Name        string    // Display name of the menu item.
	Description string    // Optional description.
	Category    string    // Menu category, e.g., "mains", "drinks".
	PriceCents  int64     // Unit price in cents.
	ImageURL    string    // Optional product image URL.
	IsAvailable bool      // Whether the item can currently be ordered.
	CreatedAt   time.Time // Timestamp of when the product was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
