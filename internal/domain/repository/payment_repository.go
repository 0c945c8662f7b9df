package repository

import (
	"context"
	"errors"
	"time"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// Sentinel errors for payment persistence.
var (
	// ErrPaymentNotFound is returned when a payment record is not found.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrPaymentAlreadyLinked is returned when a payment already references an
	// order. Concurrent settlement of the same payment surfaces as this error
	// on the losing side.
	ErrPaymentAlreadyLinked = errors.New("payment already linked to an order")
)

// PaymentRepository defines the operations for payment intent persistence.
type PaymentRepository interface {
	// Create persists a new payment record in pending status.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByID retrieves a payment by its local ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByIntentID retrieves a payment by the processor-side intent ID.
	FindByIntentID(ctx context.Context, intentID string) (*entity.Payment, error)

	// MarkSucceeded transitions a payment to succeeded. The update is a no-op
	// when the payment is already succeeded, which keeps confirmation
	// idempotent.
	MarkSucceeded(ctx context.Context, id uuid.UUID) error

	// MarkFailed transitions a payment to failed.
	MarkFailed(ctx context.Context, id uuid.UUID) error

	// LinkOrder attaches the settled order to the payment. The payments table
	// enforces uniqueness on the order reference, so a second link attempt
	// for the same payment returns ErrPaymentAlreadyLinked.
	LinkOrder(ctx context.Context, paymentID uuid.UUID, orderID uuid.UUID) error

	// FindUnsettled returns succeeded payments with no linked order that were
	// created before the cutoff. The reconciliation sweep settles these.
	FindUnsettled(ctx context.Context, before time.Time, limit int) ([]entity.Payment, error)
}
