// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus mirrors the lifecycle of a processor-side payment intent.
type PaymentStatus string

const (
	// PaymentStatusPending indicates the intent was created but not yet captured.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusSucceeded indicates the processor confirmed the charge.
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	// PaymentStatusFailed indicates the processor reported a failed charge.
	PaymentStatusFailed PaymentStatus = "failed"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSucceeded, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

// PaymentMetadata captures the checkout context frozen at intent creation.
// The reconciliation sweep replays settlement from these values when a
// succeeded payment was never linked to an order.
type PaymentMetadata struct {
	AddressID   uuid.UUID `json:"address_id"`
	PointsToUse int       `json:"points_to_use"`
}

// Payment is the local mirror of a processor payment intent.
// The processor is the sole source of truth for whether money was captured;
// this row is a cache that is only advanced after the processor confirms.
// One processor intent id maps to at most one Payment row.
type Payment struct {
	ID                uuid.UUID       // The Global Unique Identifier (GUID) for the payment.
	UserID            uuid.UUID       // The ID of the paying user.
	OrderID           *uuid.UUID      // The settled order, nil until settlement links it.
	ProcessorIntentID string          // The processor-side intent id; unique.
	AmountCents       int64           // Charge amount in cents.
	Currency          string          // ISO currency code, e.g., "CAD".
	Status            PaymentStatus   // Local mirror of the intent status.
	Metadata          PaymentMetadata // Checkout context for settlement and reconciliation.
	CreatedAt         time.Time       // Timestamp of when the intent was created.
	UpdatedAt         time.Time       // Timestamp of the last modification.
}
