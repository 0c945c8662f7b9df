package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel is the GORM-specific struct for the 'payments' table.
// The unique index on OrderID is what makes settlement idempotent: only one
// order can ever be linked to a payment, and a concurrent second link fails
// with a unique constraint violation.
type PaymentModel struct {
	ID                uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID           `gorm:"type:uuid;not null;index"`
	OrderID           *uuid.UUID          `gorm:"type:uuid;uniqueIndex"`
	ProcessorIntentID string              `gorm:"type:varchar(255);unique;not null"`
	AmountCents       int64               `gorm:"not null"`
	Currency          string              `gorm:"type:varchar(3);not null"`
	Status            string              `gorm:"type:varchar(20);not null;default:'pending';index"`
	Metadata          PaymentMetadataJSON `gorm:"type:jsonb;not null"`
	CreatedAt         time.Time           `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
