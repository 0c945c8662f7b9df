package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "maple/internal/delivery/context"
	"maple/internal/domain/entity"
	domainerrors "maple/internal/domain/errors"
	"maple/internal/domain/repository"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for deviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice registers a device for push delivery. The upsert is keyed
// by FCM token; two devices racing on one token resolve to last-writer-wins.
func (srv *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if deviceInfo.FCMToken == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "fcm token is required")
	}
	if deviceInfo.Platform != "ios" && deviceInfo.Platform != "android" {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown platform %q", deviceInfo.Platform)
	}

	device := &entity.UserDevice{
		UserID:     userID,
		FCMToken:   deviceInfo.FCMToken,
		Platform:   deviceInfo.Platform,
		IsActive:   true,
		LastUsedAt: time.Now(),
	}

	if err := srv.deviceRepo.UpsertByToken(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to upsert device")
	}

	srv.log(ctx).Info("Device registered",
		slog.Any("userID", userID),
		slog.String("platform", deviceInfo.Platform),
	)

	return device, nil
}

// GetUserDevices retrieves all active devices for a user.
func (srv *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	result := make([]*entity.UserDevice, 0, len(devices))
	for i := range devices {
		result = append(result, &devices[i])
	}

	return result, nil
}

// UnregisterDevice deactivates the user's device with the given token.
func (srv *deviceService) UnregisterDevice(ctx context.Context, userID uuid.UUID, fcmToken string) error {
	if err := srv.deviceRepo.Deactivate(ctx, userID, fcmToken); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "device not found")
		}

		return errors.Wrap(err, "failed to deactivate device")
	}

	srv.log(ctx).Info("Device unregistered", slog.Any("userID", userID))

	return nil
}
