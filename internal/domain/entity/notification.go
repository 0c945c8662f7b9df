// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType selects the delivery channel, priority and sound on the
// receiving device.
type NotificationType string

const (
	// NotificationTypeOrderStatus is sent to a customer when their order changes status.
	NotificationTypeOrderStatus NotificationType = "order_status"
	// NotificationTypeNewOrder is fanned out to staff when an order is settled.
	NotificationTypeNewOrder NotificationType = "new_order"
	// NotificationTypeNewReview is fanned out to staff when a review is submitted.
	NotificationTypeNewReview NotificationType = "new_review"
	// NotificationTypeBroadcast is an administrative announcement.
	NotificationTypeBroadcast NotificationType = "broadcast"
)

// String returns the string representation of the NotificationType.
func (t NotificationType) String() string {
	return string(t)
}

// Notification is an in-app notification row. It is created by the fan-out
// dispatcher or an administrative broadcast, mutated only by read-state
// transitions, and never deleted by the system.
type Notification struct {
	ID        uuid.UUID         // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID         // The recipient user.
	Title     string            // Notification title.
	Body      string            // Notification body.
	Type      NotificationType  // Routing type for the receiving device.
	OrderID   *uuid.UUID        // The related order, if any.
	Data      map[string]string // Opaque payload forwarded to the device.
	IsRead    bool              // Whether the recipient has read the notification.
	ReadAt    *time.Time        // Timestamp of when it was read, nil while unread.
	CreatedAt time.Time         // Timestamp of when the notification was created.
}
