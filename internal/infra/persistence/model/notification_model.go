package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// Rows back the in-app notification feed and are written by the dispatch
// worker alongside the push send.
type NotificationModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID     `gorm:"type:uuid;not null;index:idx_notifications_user_read,priority:1"`
	Title     string        `gorm:"type:text;not null"`
	Body      string        `gorm:"type:text;not null"`
	Type      string        `gorm:"type:varchar(30);not null"`
	OrderID   *uuid.UUID    `gorm:"type:uuid"`
	Data      StringMapJSON `gorm:"type:jsonb;not null"`
	IsRead    bool          `gorm:"not null;default:false;index:idx_notifications_user_read,priority:2"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
