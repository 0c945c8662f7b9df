package repository

import (
	"context"
	"errors"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the operations for delivery address persistence.
type AddressRepository interface {
	// Create persists a new address for a user.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves a single address by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByUserID retrieves all addresses belonging to a user, default first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Address, error)

	// Update modifies an existing address.
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes an address.
	Delete(ctx context.Context, id uuid.UUID) error

	// ClearDefault unsets the default flag on every address the user has.
	// Called before marking another address as default so at most one
	// default exists per user.
	ClearDefault(ctx context.Context, userID uuid.UUID) error
}
