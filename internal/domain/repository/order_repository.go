package repository

import (
	"context"
	"errors"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// Sentinel errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")

	// ErrStaleOrderStatus is returned by UpdateStatus when the row no longer
	// holds the expected current status. The caller lost a race and should
	// refetch before retrying.
	ErrStaleOrderStatus = errors.New("order status changed concurrently")
)

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// Create persists a new order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUserID retrieves a page of a user's orders, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Order, error)

	// FindByPaymentID retrieves the order settled from a payment, if any.
	FindByPaymentID(ctx context.Context, paymentID uuid.UUID) (*entity.Order, error)

	// ListByStatus retrieves a page of orders in the given status, oldest
	// first. The staff dashboard feeds from this.
	ListByStatus(ctx context.Context, status entity.OrderStatus, limit, offset int) ([]entity.Order, error)

	// UpdateStatus moves an order from the expected current status to the new
	// one in a single guarded update. Returns ErrStaleOrderStatus when the
	// guard does not match.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error

	// NextOrderNumber reserves the next value of the order number sequence.
	// Numbers are monotonic across concurrent settlements.
	NextOrderNumber(ctx context.Context) (int64, error)
}
