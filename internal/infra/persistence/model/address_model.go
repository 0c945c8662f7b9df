package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// Fields follow the Canadian postal format.
type AddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Label      string    `gorm:"type:varchar(100);not null"`
	Line1      string    `gorm:"type:varchar(255);not null"`
	Line2      string    `gorm:"type:varchar(255)"`
	City       string    `gorm:"type:varchar(100);not null"`
	Province   string    `gorm:"type:varchar(2);not null"`
	PostalCode string    `gorm:"type:varchar(10);not null"`
	Country    string    `gorm:"type:varchar(2);not null;default:'CA'"`
	IsDefault  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
