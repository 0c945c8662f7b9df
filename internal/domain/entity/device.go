// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents a device registered for push notifications.
// Registration is an upsert keyed by the FCM token: re-registering the same
// token refreshes ownership and reactivates it, so two devices racing on the
// same token resolve to last-writer-wins.
type UserDevice struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the device.
	UserID     uuid.UUID // The ID of the user who currently owns this device.
	FCMToken   string    // Firebase Cloud Messaging token; unique across all devices.
	Platform   string    // Device platform (ios, android).
	IsActive   bool      // Indicates if this device is active for notifications.
	LastUsedAt time.Time // Timestamp of the last registration or delivery attempt.
	CreatedAt  time.Time // Timestamp of when this device was first registered.
	UpdatedAt  time.Time // Timestamp of the last modification.
}
