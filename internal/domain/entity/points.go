// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PointsEntryType classifies a ledger posting.
type PointsEntryType string

const (
	// PointsEntryEarned is granted by order settlement.
	PointsEntryEarned PointsEntryType = "earned"
	// PointsEntryUsed is redeemed against an order at settlement.
	PointsEntryUsed PointsEntryType = "used"
	// PointsEntryExpired is posted by the time-based expiry sweep.
	PointsEntryExpired PointsEntryType = "expired"
	// PointsEntryAdminAdjustment is posted by staff, including cancellation reversals.
	PointsEntryAdminAdjustment PointsEntryType = "admin_adjustment"
)

// String returns the string representation of the PointsEntryType.
func (t PointsEntryType) String() string {
	return string(t)
}

// IsValid checks if the PointsEntryType is a valid value.
func (t PointsEntryType) IsValid() bool {
	switch t {
	case PointsEntryEarned, PointsEntryUsed, PointsEntryExpired, PointsEntryAdminAdjustment:
		return true
	default:
		return false
	}
}

// PointsEntry is an immutable signed delta in a user's points ledger.
// A user's balance is always the running sum of their entries, never a
// mutable counter.
type PointsEntry struct {
	ID          uuid.UUID       // The Global Unique Identifier (GUID) for the entry.
	UserID      uuid.UUID       // The ID of the user whose ledger this entry belongs to.
	Points      int             // Signed delta; negative for used/expired postings.
	Type        PointsEntryType // Classification of the posting.
	Description string          // Optional human-readable reason.
	OrderID     *uuid.UUID      // The related order, if the posting came from settlement or a reversal.
	CreatedAt   time.Time       // Timestamp of when the entry was posted.
}
