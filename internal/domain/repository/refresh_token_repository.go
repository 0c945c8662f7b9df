package repository

import (
	"context"
	"errors"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found or expired.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for refresh token persistence.
type RefreshTokenRepository interface {
	// Create persists a new refresh token.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves a non-revoked, non-expired token by its hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// Revoke marks a single token as revoked.
	Revoke(ctx context.Context, id uuid.UUID) error

	// CountActiveByUserID counts the user's non-revoked, non-expired tokens.
	CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// RevokeAllByUserID revokes every active token belonging to a user.
	// Used on logout-everywhere and account deletion.
	RevokeAllByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes tokens past their expiry. Returns the number of
	// rows removed so the caller can log the sweep.
	DeleteExpired(ctx context.Context) (int64, error)
}
