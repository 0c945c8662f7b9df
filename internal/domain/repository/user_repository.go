// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindIDsByRole retrieves the IDs of all non-deleted users holding a role.
	FindIDsByRole(ctx context.Context, role entity.Role) ([]uuid.UUID, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// LockByID takes a row-level lock on the user for the duration of the
	// current transaction. Settlement uses it to serialize concurrent
	// ledger-balance checks for the same user.
	LockByID(ctx context.Context, id uuid.UUID) error

	// Anonymize soft-deletes the user and blanks their contact fields while
	// keeping the row so existing orders stay referentially intact.
	Anonymize(ctx context.Context, id uuid.UUID) error
}
