package model

import (
	"time"

	"github.com/google/uuid"
)

// PointsEntryModel is the GORM-specific struct for the 'points_entries' table.
// The table is append-only; rows are never updated or deleted.
type PointsEntryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Points      int        `gorm:"not null"`
	Type        string     `gorm:"type:varchar(30);not null"`
	Description string     `gorm:"type:text"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PointsEntryModel) TableName() string {
	return "points_entries"
}
