package repository

import (
	"context"
	"errors"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device registration is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the operations for push device persistence.
type DeviceRepository interface {
	// UpsertByToken registers a device token for a user. A token already
	// registered, possibly by another user on a shared device, is reassigned
	// to the caller and reactivated.
	UpsertByToken(ctx context.Context, device *entity.UserDevice) error

	// FindActiveByUserID retrieves the user's active device registrations.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]entity.UserDevice, error)

	// FindActiveByUserIDs retrieves active devices across a set of users.
	// Fan-out to staff resolves admin user IDs first, then loads their
	// devices in one query.
	FindActiveByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]entity.UserDevice, error)

	// DeactivateByTokens marks the given tokens inactive. The dispatcher
	// calls this with tokens the push provider reported as dead.
	DeactivateByTokens(ctx context.Context, tokens []string) error

	// Deactivate marks a single device inactive, used on explicit
	// unregistration.
	Deactivate(ctx context.Context, userID uuid.UUID, token string) error
}
