package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// OrderNumber values come from the order_number_seq sequence, reserved inside
// the settlement transaction.
type OrderModel struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber   string              `gorm:"type:varchar(20);unique;not null"`
	UserID        uuid.UUID           `gorm:"type:uuid;not null;index"`
	Status        string              `gorm:"type:varchar(20);not null;default:'pending';index"`
	SubtotalCents int64               `gorm:"not null"`
	TotalCents    int64               `gorm:"not null"`
	Currency      string              `gorm:"type:varchar(3);not null"`
	Address       AddressSnapshotJSON `gorm:"type:jsonb;not null"`
	PointsUsed    int                 `gorm:"not null;default:0"`
	PointsEarned  int                 `gorm:"not null;default:0"`
	CreatedAt     time.Time           `gorm:"index"`
	UpdatedAt     time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Product name and unit price are copies taken at settlement time.
type OrderItemModel struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID        uuid.UUID          `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID          `gorm:"type:uuid;not null"`
	ProductName    string             `gorm:"type:varchar(255);not null"`
	UnitPriceCents int64              `gorm:"not null"`
	Quantity       int                `gorm:"not null"`
	SubtotalCents  int64              `gorm:"not null"`
	Customizations CustomizationsJSON `gorm:"type:jsonb;not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
