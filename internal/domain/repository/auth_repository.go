package repository

import (
	"context"
	"errors"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when an authentication method is not found.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository defines the operations for authentication method persistence.
type AuthRepository interface {
	// FindByProvider retrieves an authentication record by provider type and
	// the provider-specific identifier (the email for password auth).
	FindByProvider(ctx context.Context, provider entity.ProviderType, providerID string) (*entity.Authentication, error)

	// FindByUserID retrieves all authentication methods registered for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Authentication, error)

	// Create persists a new authentication method.
	Create(ctx context.Context, auth *entity.Authentication) error

	// UpdatePasswordHash replaces the stored credential for a password-based
	// authentication method.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}
