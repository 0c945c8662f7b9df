package repository

import (
	"context"
	"time"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// UserPointsSummary pairs a user with an aggregated points quantity.
type UserPointsSummary struct {
	UserID uuid.UUID
	Points int64
}

// PointsRepository defines the operations for the loyalty points ledger.
// The ledger is append-only. Balances are derived by summing entries, never
// stored as a mutable counter.
type PointsRepository interface {
	// CreateEntry appends a ledger entry. Earned entries carry a positive
	// Points value, used entries a negative one.
	CreateEntry(ctx context.Context, entry *entity.PointsEntry) error

	// BalanceByUser sums every ledger entry for the user.
	BalanceByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// ListByUser retrieves a page of the user's ledger entries, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.PointsEntry, error)

	// ExpirableEarnedByUser aggregates, per user, earned points older than
	// the cutoff net of already-posted expired entries. Only users with a
	// positive expirable amount are returned.
	ExpirableEarnedByUser(ctx context.Context, before time.Time) ([]UserPointsSummary, error)
}
