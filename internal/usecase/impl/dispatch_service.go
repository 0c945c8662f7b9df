package impl

import (
	"context"
	"log/slog"
	"sync"

	"maple/config"
	deliverycontext "maple/internal/delivery/context"
	"maple/internal/domain/constants"
	"maple/internal/domain/entity"
	"maple/internal/domain/lifecycle"
	"maple/internal/domain/repository"
	"maple/internal/domain/service"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultDispatchQueueSize = 256
	defaultDispatchWorkers   = 4
)

// dispatchService implements the DispatchUsecase interface. Events enter a
// bounded channel and worker goroutines fan them out to staff devices. The
// queue rejects instead of blocking so the push endpoint can answer 503 and
// let Pub/Sub redeliver.
type dispatchService struct {
	userRepo         repository.UserRepository
	deviceRepo       repository.DeviceRepository
	notificationRepo repository.NotificationRepository
	notificationSvc  service.NotificationService
	logger           *slog.Logger

	queue   chan *service.DomainEvent
	workers int

	mu      sync.Mutex
	started bool
	wg      sync.WaitGroup
	stop    chan struct{}
}

// DispatchServiceParams holds dependencies for dispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	DeviceRepo       repository.DeviceRepository
	NotificationRepo repository.NotificationRepository
	NotificationSvc  service.NotificationService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewDispatchService is the constructor for dispatchService.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	queueSize := defaultDispatchQueueSize
	workers := defaultDispatchWorkers

	if params.Config != nil && params.Config.Dispatch != nil {
		if params.Config.Dispatch.QueueSize > 0 {
			queueSize = params.Config.Dispatch.QueueSize
		}
		if params.Config.Dispatch.Workers > 0 {
			workers = params.Config.Dispatch.Workers
		}
	}

	return &dispatchService{
		userRepo:         params.UserRepo,
		deviceRepo:       params.DeviceRepo,
		notificationRepo: params.NotificationRepo,
		notificationSvc:  params.NotificationSvc,
		logger:           params.Logger,
		queue:            make(chan *service.DomainEvent, queueSize),
		workers:          workers,
		stop:             make(chan struct{}),
	}
}

// Enqueue hands an event to the worker pool without blocking.
func (srv *dispatchService) Enqueue(ctx context.Context, event *service.DomainEvent) error {
	select {
	case srv.queue <- event:
		return nil
	default:
		srv.logger.Warn("[Dispatch] Queue full, rejecting event",
			slog.String("type", event.Type),
			slog.Int("capacity", cap(srv.queue)),
		)

		return usecase.ErrDispatchQueueFull
	}
}

// Start launches the worker goroutines.
func (srv *dispatchService) Start(_ context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.started {
		return errors.New("dispatch service already started")
	}
	srv.started = true

	for i := 0; i < srv.workers; i++ {
		srv.wg.Add(1)

		go srv.workerLoop(i)
	}

	srv.logger.Info("[Dispatch] Workers started",
		slog.Int("workers", srv.workers),
		slog.Int("queueSize", cap(srv.queue)),
	)

	return nil
}

// Stop drains the queue and waits for in-flight deliveries, bounded by the
// context deadline.
func (srv *dispatchService) Stop(ctx context.Context) error {
	srv.mu.Lock()
	if !srv.started {
		srv.mu.Unlock()

		return nil
	}
	srv.started = false
	srv.mu.Unlock()

	close(srv.stop)

	done := make(chan struct{})
	go func() {
		srv.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		srv.logger.Info("[Dispatch] Workers stopped")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "dispatch workers did not stop in time")
	}
}

func (srv *dispatchService) workerLoop(id int) {
	defer srv.wg.Done()

	for {
		select {
		case event := <-srv.queue:
			srv.handleEvent(event)
		case <-srv.stop:
			// Drain whatever is already queued before exiting.
			for {
				select {
				case event := <-srv.queue:
					srv.handleEvent(event)
				default:
					srv.logger.Debug("[Dispatch] Worker exiting", slog.Int("worker", id))

					return
				}
			}
		}
	}
}

// handleEvent fans one event out to every staff member. Each delivery leg is
// best-effort; a failed leg is logged and never requeues the event.
func (srv *dispatchService) handleEvent(event *service.DomainEvent) {
	ctx := context.Background()
	if event.RequestID != "" {
		ctx = deliverycontext.WithRequestID(ctx, event.RequestID)
		ctx = deliverycontext.WithLogger(ctx, srv.logger.With(slog.String("request_id", event.RequestID)))
	}

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	adminIDs, err := srv.userRepo.FindIDsByRole(ctx, entity.RoleAdmin)
	if err != nil {
		logger.Error("[Dispatch] Failed to resolve staff users", slog.Any("error", err))

		return
	}
	if len(adminIDs) == 0 {
		return
	}

	srv.writeInboxRows(ctx, event, adminIDs)

	devices, err := srv.deviceRepo.FindActiveByUserIDs(ctx, adminIDs)
	if err != nil {
		logger.Error("[Dispatch] Failed to load staff devices", slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	sent, failed, invalidTokens, err := srv.notificationSvc.SendBatchNotification(ctx, tokens, event.Title, event.Body, event.Data)
	if err != nil {
		logger.Error("[Dispatch] Failed to send pushes", slog.String("type", event.Type), slog.Any("error", err))

		return
	}

	if len(invalidTokens) > 0 {
		if err := srv.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			logger.Error("[Dispatch] Failed to deactivate invalid tokens", slog.Any("error", err))
		}
	}

	logger.Info("[Dispatch] Event fanned out",
		slog.String("type", event.Type),
		slog.Int("staff", len(adminIDs)),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
		slog.Int("invalidTokens", len(invalidTokens)),
	)
}

// writeInboxRows records the event in each staff member's in-app inbox.
// Best-effort: a failed insert is logged and the push still goes out.
func (srv *dispatchService) writeInboxRows(ctx context.Context, event *service.DomainEvent, adminIDs []uuid.UUID) {
	notificationType := entity.NotificationTypeNewOrder
	if event.Type == constants.EventTypeReviewSubmitted {
		notificationType = entity.NotificationTypeNewReview
	}

	var orderID *uuid.UUID
	if event.OrderID != "" {
		if parsed, err := uuid.Parse(event.OrderID); err == nil {
			orderID = &parsed
		}
	}

	notifications := make([]entity.Notification, 0, len(adminIDs))
	for _, adminID := range adminIDs {
		notifications = append(notifications, entity.Notification{
			UserID:  adminID,
			Title:   event.Title,
			Body:    event.Body,
			Type:    notificationType,
			OrderID: orderID,
			Data:    event.Data,
		})
	}

	if err := srv.notificationRepo.BatchCreate(ctx, notifications); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("[Dispatch] Failed to write staff inbox rows", slog.Any("error", err))
	}
}
