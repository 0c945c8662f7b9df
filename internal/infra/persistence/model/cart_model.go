package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel is the GORM-specific struct for the 'carts' table.
// One row per user, created lazily on the first add.
type CartModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []CartItemModel `gorm:"foreignKey:CartID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
// No prices are stored; settlement recomputes totals from the catalog.
type CartItemModel struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CartID         uuid.UUID          `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID          `gorm:"type:uuid;not null"`
	Quantity       int                `gorm:"not null"`
	Customizations CustomizationsJSON `gorm:"type:jsonb;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
