// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a device for push delivery. The upsert is
	// keyed by token, so re-registering refreshes ownership and reactivates.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// GetUserDevices retrieves all active devices for a user
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UnregisterDevice deactivates the user's device with the given token.
	UnregisterDevice(ctx context.Context, userID uuid.UUID, fcmToken string) error
}
