// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateOrderStatusInput defines the data for a staff-driven status change.
// ExpectedFrom guards against acting on a stale view of the order.
type UpdateOrderStatusInput struct {
	OrderID      uuid.UUID
	ExpectedFrom entity.OrderStatus
	To           entity.OrderStatus
	AdminID      uuid.UUID
}

// ListOrdersInput pages through a user's order history, newest first.
type ListOrdersInput struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// ListOrdersByStatusInput pages through orders in one status, for the staff
// board.
type ListOrdersByStatusInput struct {
	Status entity.OrderStatus
	Limit  int
	Offset int
}

// OrderUsecase defines order reads and the staff-side state machine.
type OrderUsecase interface {
	// GetOrder loads one order. Customers may only read their own orders;
	// pass uuid.Nil as requesterID to skip the ownership check (staff).
	GetOrder(ctx context.Context, requesterID, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders pages a user's own orders, newest first.
	ListOrders(ctx context.Context, input *ListOrdersInput) ([]entity.Order, error)

	// ListOrdersByStatus pages orders in a given status for staff.
	ListOrdersByStatus(ctx context.Context, input *ListOrdersByStatusInput) ([]entity.Order, error)

	// UpdateStatus moves an order along the state machine, notifies the
	// owner, and reverses the order's points postings when it is cancelled.
	UpdateStatus(ctx context.Context, input *UpdateOrderStatusInput) (*entity.Order, error)

	// PickupQRCode renders the order's pickup QR code as a PNG. Customers
	// may only request codes for their own orders.
	PickupQRCode(ctx context.Context, requesterID, orderID uuid.UUID) ([]byte, error)
}
