// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a saved delivery address in Canadian postal format.
// At most one address per user carries IsDefault = true; setting a new
// default clears the previous one in the same transaction.
type Address struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the address.
	UserID     uuid.UUID // The ID of the user that owns this address.
	Label      string    // A user-defined label, e.g., "Home", "Office".
	Line1      string    // Street address line 1.
	Line2      string    // Street address line 2 (unit, suite), optional.
	City       string    // City name.
	Province   string    // Two-letter province/territory code, e.g., "ON", "BC".
	PostalCode string    // Canadian postal code, e.g., "M5V 3L9".
	Country    string    // ISO country code; currently always "CA".
	IsDefault  bool      // Indicates if this is the default delivery address for the user.
	CreatedAt  time.Time // Timestamp of when this address was created.
	UpdatedAt  time.Time // Timestamp of the last modification.
}

// AddressSnapshot is the immutable copy of an address embedded in an order at
// creation time. Later edits to the saved address never affect placed orders.
type AddressSnapshot struct {
	Label      string `json:"label"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Snapshot copies the address fields into an immutable order snapshot.
func (a *Address) Snapshot() AddressSnapshot {
	return AddressSnapshot{
		Label:      a.Label,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Province:   a.Province,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
