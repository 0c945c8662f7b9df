// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"errors"

	"maple/internal/domain/service"
)

// ErrDispatchQueueFull is returned by Enqueue when the bounded dispatch
// queue has no room. The push endpoint maps it to 503 so Pub/Sub redelivers.
var ErrDispatchQueueFull = errors.New("dispatch queue full")

// DispatchUsecase is the worker-side fan-out engine. Events enter through a
// bounded queue; worker goroutines resolve staff devices, write in-app
// notifications and send FCM pushes.
type DispatchUsecase interface {
	// Enqueue hands an event to the worker pool without blocking.
	Enqueue(ctx context.Context, event *service.DomainEvent) error

	// Start launches the worker goroutines.
	Start(ctx context.Context) error

	// Stop drains the queue and waits for in-flight deliveries.
	Stop(ctx context.Context) error
}
