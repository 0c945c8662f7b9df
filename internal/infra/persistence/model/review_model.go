package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// Two partial unique indexes back the review uniqueness rules: one on
// (user_id, order_id, product_id) for product reviews and one on user_id
// where order_id and product_id are null for restaurant reviews.
type ReviewModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID         *uuid.UUID      `gorm:"type:uuid;index"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       *uuid.UUID      `gorm:"type:uuid;index"`
	Rating          int             `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment         string          `gorm:"type:text"`
	Images          StringSliceJSON `gorm:"type:jsonb;not null"`
	IsApproved      bool            `gorm:"not null;default:false"`
	IsRejected      bool            `gorm:"not null;default:false"`
	RejectionReason string          `gorm:"type:text"`
	ModeratedBy     *uuid.UUID      `gorm:"type:uuid"`
	ModeratedAt     *time.Time
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
