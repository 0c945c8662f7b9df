// Package service defines interfaces for core, stateless domain logic.
package service

import "context"

// Processor intent statuses as reported by the payment processor.
const (
	ProcessorIntentPending   = "pending"
	ProcessorIntentSucceeded = "succeeded"
	ProcessorIntentFailed    = "failed"
)

// ProcessorIntent mirrors one payment intent on the processor side.
type ProcessorIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret,omitempty"`
	AmountCents  int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// PaymentGateway talks to the external payment processor. The processor is
// the sole source of truth for whether money was captured; implementations
// never infer success locally.
type PaymentGateway interface {
	// CreateIntent registers a new payment intent with the processor and
	// returns its id and client secret for the client-side SDK.
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*ProcessorIntent, error)

	// RetrieveIntent fetches the current processor-side state of an intent.
	RetrieveIntent(ctx context.Context, intentID string) (*ProcessorIntent, error)
}
