package service

import (
	"context"
)

// DomainEvent is an operationally significant change fanned out to staff
// devices: a newly settled order or a newly submitted review. The event is
// advisory; publish failures never roll back the originating transaction.
type DomainEvent struct {
	RequestID string            `json:"request_id,omitempty"` // For distributed tracing
	Type      string            `json:"type"`                 // Routing type, see constants.EventType*
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	OrderID   string            `json:"order_id,omitempty"`
	ReviewID  string            `json:"review_id,omitempty"`
	Data      map[string]string `json:"data,omitempty"` // Opaque payload forwarded to devices
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDomainEvent publishes a domain event for async fan-out processing
	PublishDomainEvent(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
