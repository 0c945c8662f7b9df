// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListNotificationsInput pages a user's in-app notifications, newest first.
type ListNotificationsInput struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// BroadcastInput defines an administrative announcement pushed to every
// customer.
type BroadcastInput struct {
	Title   string
	Body    string
	AdminID uuid.UUID
}

// --- Output DTOs ---

// BroadcastOutput reports broadcast fan-out counts.
type BroadcastOutput struct {
	Recipients int
	PushSent   int
	PushFailed int
}

// NotificationUsecase exposes the in-app notification inbox.
type NotificationUsecase interface {
	// ListNotifications pages the user's notifications, newest first.
	ListNotifications(ctx context.Context, input *ListNotificationsInput) ([]entity.Notification, error)

	// UnreadCount counts the user's unread notifications.
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks one notification read. Idempotent.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllRead marks every unread notification read and returns how many
	// were flipped.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// Broadcast writes an announcement to every customer's inbox and pushes
	// it to their active devices best-effort.
	Broadcast(ctx context.Context, input *BroadcastInput) (*BroadcastOutput, error)
}
