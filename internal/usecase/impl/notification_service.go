package impl

import (
	"context"
	"log/slog"

	deliverycontext "maple/internal/delivery/context"
	"maple/internal/domain/entity"
	domainerrors "maple/internal/domain/errors"
	"maple/internal/domain/repository"
	"maple/internal/domain/service"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	userRepo         repository.UserRepository
	notificationSvc  service.NotificationService
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	UserRepo         repository.UserRepository
	NotificationSvc  service.NotificationService
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		userRepo:         params.UserRepo,
		notificationSvc:  params.NotificationSvc,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListNotifications pages the user's notifications, newest first.
func (srv *notificationService) ListNotifications(ctx context.Context, input *usecase.ListNotificationsInput) ([]entity.Notification, error) {
	notifications, err := srv.notificationRepo.ListByUser(ctx, input.UserID, normalizeLimit(input.Limit), input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// UnreadCount counts the user's unread notifications.
func (srv *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead marks one notification read. Marking twice is a no-op.
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := srv.notificationRepo.MarkRead(ctx, userID, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "notification not found")
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead marks every unread notification read.
func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	flipped, err := srv.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications read")
	}

	return flipped, nil
}

// Broadcast writes an announcement to every customer's inbox and pushes it
// to their active devices best-effort.
func (srv *notificationService) Broadcast(ctx context.Context, input *usecase.BroadcastInput) (*usecase.BroadcastOutput, error) {
	if input.Title == "" || input.Body == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "title and body are required")
	}

	customerIDs, err := srv.userRepo.FindIDsByRole(ctx, entity.RoleCustomer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list broadcast recipients")
	}
	if len(customerIDs) == 0 {
		return &usecase.BroadcastOutput{}, nil
	}

	notifications := make([]entity.Notification, 0, len(customerIDs))
	for _, customerID := range customerIDs {
		notifications = append(notifications, entity.Notification{
			UserID: customerID,
			Title:  input.Title,
			Body:   input.Body,
			Type:   entity.NotificationTypeBroadcast,
		})
	}

	if err := srv.notificationRepo.BatchCreate(ctx, notifications); err != nil {
		return nil, errors.Wrap(err, "failed to write broadcast notifications")
	}

	output := &usecase.BroadcastOutput{Recipients: len(customerIDs)}

	devices, err := srv.deviceRepo.FindActiveByUserIDs(ctx, customerIDs)
	if err != nil {
		srv.log(ctx).Error("Failed to load devices for broadcast push", slog.Any("error", err))

		return output, nil
	}
	if len(devices) == 0 {
		return output, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	sent, failed, invalidTokens, err := srv.notificationSvc.SendBatchNotification(ctx, tokens, input.Title, input.Body, map[string]string{
		"type": entity.NotificationTypeBroadcast.String(),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to push broadcast", slog.Any("error", err))

		return output, nil
	}

	output.PushSent = sent
	output.PushFailed = failed

	if len(invalidTokens) > 0 {
		if err := srv.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			srv.log(ctx).Error("Failed to deactivate invalid tokens", slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Broadcast delivered",
		slog.Any("adminID", input.AdminID),
		slog.Int("recipients", output.Recipients),
		slog.Int("pushSent", sent),
		slog.Int("pushFailed", failed),
	)

	return output, nil
}
