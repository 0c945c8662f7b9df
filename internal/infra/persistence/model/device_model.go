package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// It represents a user's device registered for push notifications.
// FCMToken is unique so re-registering a token reassigns the device to the
// latest user instead of creating a second row.
type UserDeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	FCMToken   string    `gorm:"type:varchar(255);unique;not null"`
	Platform   string    `gorm:"type:varchar(50);not null"`
	IsActive   bool      `gorm:"not null;default:true"`
	LastUsedAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
