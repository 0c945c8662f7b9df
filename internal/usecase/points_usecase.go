// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PointsHistoryInput pages through a user's ledger, newest first.
type PointsHistoryInput struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// AdjustPointsInput defines a manual staff posting. Points is the signed
// delta; a negative adjustment may not take the balance below zero.
type AdjustPointsInput struct {
	UserID      uuid.UUID
	Points      int
	Description string
	AdminID     uuid.UUID
}

// --- Output DTOs ---

// PointsBalanceOutput returns the derived ledger balance.
type PointsBalanceOutput struct {
	Balance int64
}

// PointsUsecase exposes the loyalty points ledger.
type PointsUsecase interface {
	// GetBalance sums the user's ledger.
	GetBalance(ctx context.Context, userID uuid.UUID) (*PointsBalanceOutput, error)

	// GetHistory pages the user's ledger entries, newest first.
	GetHistory(ctx context.Context, input *PointsHistoryInput) ([]entity.PointsEntry, error)

	// AdjustPoints posts a manual admin_adjustment entry.
	AdjustPoints(ctx context.Context, input *AdjustPointsInput) (*entity.PointsEntry, error)

	// ExpireOldPoints posts expired entries for earned points older than the
	// retention window. Returns the number of users affected.
	ExpireOldPoints(ctx context.Context) (int, error)
}
