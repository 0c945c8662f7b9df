// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpsertAddressInput defines the editable fields of a saved delivery address.
type UpsertAddressInput struct {
	Label      string
	Line1      string
	Line2      string
	City       string
	Province   string
	PostalCode string
	IsDefault  bool
}

// AddressUsecase manages a user's saved delivery addresses.
type AddressUsecase interface {
	// ListAddresses returns the user's saved addresses, default first.
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]entity.Address, error)

	// CreateAddress saves a new address. Marking it default clears the
	// previous default in the same transaction.
	CreateAddress(ctx context.Context, userID uuid.UUID, input *UpsertAddressInput) (*entity.Address, error)

	// UpdateAddress replaces an address the user owns.
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *UpsertAddressInput) (*entity.Address, error)

	// DeleteAddress removes an address the user owns. Orders keep their
	// snapshots.
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
}
