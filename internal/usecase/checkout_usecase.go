// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateIntentInput defines the data required to open a payment intent for
// the user's current cart.
type CreateIntentInput struct {
	UserID      uuid.UUID
	AddressID   uuid.UUID
	PointsToUse int
	Currency    string
}

// ConfirmAndSettleInput identifies the intent the client just completed.
type ConfirmAndSettleInput struct {
	UserID   uuid.UUID
	IntentID string
}

// --- Output DTOs ---

// CreateIntentOutput returns the processor handle the client SDK needs to
// collect payment, plus the server-side amount so the client can display it.
type CreateIntentOutput struct {
	PaymentID    uuid.UUID
	IntentID     string
	ClientSecret string
	AmountCents  int64
	Currency     string
}

// ConfirmAndSettleOutput returns the settled order.
type ConfirmAndSettleOutput struct {
	Order *entity.Order
}

// CheckoutUsecase drives the payment intent lifecycle and the settlement
// transaction that turns a paid cart into an order.
type CheckoutUsecase interface {
	// CreateIntent prices the user's cart server-side, registers a payment
	// intent with the processor and persists the local payment row.
	CreateIntent(ctx context.Context, input *CreateIntentInput) (*CreateIntentOutput, error)

	// ConfirmAndSettle verifies the intent succeeded at the processor, then
	// settles the order atomically. Idempotent: re-confirming a settled
	// intent returns the existing order.
	ConfirmAndSettle(ctx context.Context, input *ConfirmAndSettleInput) (*ConfirmAndSettleOutput, error)

	// ReconcileUnsettled re-settles succeeded payments that never got an
	// order, using the checkout context frozen in the payment metadata.
	// Returns the number of payments settled.
	ReconcileUnsettled(ctx context.Context) (int, error)
}
