// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is a node in the order state machine.
type OrderStatus string

const (
	// OrderStatusPending is the initial status assigned at settlement.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed indicates staff accepted the order.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusPreparing indicates the kitchen started preparing the order.
	OrderStatusPreparing OrderStatus = "preparing"
	// OrderStatusReady indicates the order is packed and ready for delivery.
	OrderStatusReady OrderStatus = "ready"
	// OrderStatusDelivering indicates the order is on its way.
	OrderStatusDelivering OrderStatus = "delivering"
	// OrderStatusDelivered is the terminal success status; it unlocks reviews.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled is reachable from pending, confirmed or preparing only.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orderTransitions is the adjacency list of allowed status transitions.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:  {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:      {OrderStatusDelivering},
	OrderStatusDelivering: {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]

	return ok
}

// IsTerminal reports whether no further transitions are allowed from this status.
func (s OrderStatus) IsTerminal() bool {
	next, ok := orderTransitions[s]

	return ok && len(next) == 0
}

// CanTransitionTo reports whether the state machine allows moving to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// CustomizationSelection is a single customization applied to an order or cart
// item, e.g., "extra cheese" with a surcharge, or "no onions" without one.
type CustomizationSelection struct {
	Name           string `json:"name"`
	SurchargeCents int64  `json:"surcharge_cents,omitempty"`
}

// Order is a settled purchase. It is only ever created by the settlement
// transaction, after the backing payment intent succeeded.
type Order struct {
	ID            uuid.UUID       // The Global Unique Identifier (GUID) for the order.
	OrderNumber   string          // Human-readable order number; unique and monotonically assigned.
	UserID        uuid.UUID       // The ID of the ordering user.
	Status        OrderStatus     // Current node in the order state machine.
	SubtotalCents int64           // Sum of item subtotals before points redemption.
	TotalCents    int64           // SubtotalCents minus the cash value of PointsUsed.
	Currency      string          // ISO currency code, e.g., "CAD".
	Address       AddressSnapshot // Immutable copy of the delivery address at creation time.
	PointsUsed    int             // Points redeemed against this order.
	PointsEarned  int             // Points granted for this order.
	Items         []OrderItem     // The order's line items.
	CreatedAt     time.Time       // Timestamp of when the order was settled.
	UpdatedAt     time.Time       // Timestamp of the last modification.
}

// OrderItem is a line item snapshot; product name and unit price are copied at
// settlement time so later menu edits never change a placed order.
type OrderItem struct {
	ID             uuid.UUID                // The unique ID for this line item.
	OrderID        uuid.UUID                // The order this line item belongs to.
	ProductID      uuid.UUID                // The purchased product.
	ProductName    string                   // Product name snapshot at purchase time.
	UnitPriceCents int64                    // Unit price snapshot at purchase time, customizations included.
	Quantity       int                      // Quantity purchased; always > 0.
	SubtotalCents  int64                    // UnitPriceCents multiplied by Quantity.
	Customizations []CustomizationSelection // Customization selections applied to this item.
}
