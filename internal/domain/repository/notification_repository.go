package repository

import (
	"context"
	"errors"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the operations for in-app notification
// persistence. Rows are written by the dispatch worker alongside the push
// send so the in-app feed and the push channel stay in step.
type NotificationRepository interface {
	// Create persists a single notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// BatchCreate persists notifications for many recipients in one insert.
	BatchCreate(ctx context.Context, notifications []entity.Notification) error

	// ListByUser retrieves a page of the user's notifications, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Notification, error)

	// MarkRead marks one of the user's notifications as read.
	MarkRead(ctx context.Context, userID uuid.UUID, id uuid.UUID) error

	// MarkAllRead marks every unread notification of the user as read and
	// returns the number of rows affected.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountUnread counts the user's unread notifications.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
