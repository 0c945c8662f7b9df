package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"maple/config"
	"maple/internal/domain/constants"
	"maple/internal/domain/entity"
	"maple/internal/domain/service"
	mockRepo "maple/internal/mocks/repository"
	mockSvc "maple/internal/mocks/service"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dispatchServiceFixtures holds all test dependencies for dispatch service tests.
type dispatchServiceFixtures struct {
	service          usecase.DispatchUsecase
	userRepo         *mockRepo.MockUserRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	notificationRepo *mockRepo.MockNotificationRepository
	notificationSvc  *mockSvc.MockNotificationService
}

func createTestDispatchService(t *testing.T, queueSize, workers int) dispatchServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Dispatch: &config.DispatchConfig{
			QueueSize: queueSize,
			Workers:   workers,
		},
	}

	svc := NewDispatchService(DispatchServiceParams{
		UserRepo:         userRepo,
		DeviceRepo:       deviceRepo,
		NotificationRepo: notificationRepo,
		NotificationSvc:  notificationSvc,
		Config:           cfg,
		Logger:           logger,
	})

	return dispatchServiceFixtures{
		service:          svc,
		userRepo:         userRepo,
		deviceRepo:       deviceRepo,
		notificationRepo: notificationRepo,
		notificationSvc:  notificationSvc,
	}
}

func TestDispatchService_Enqueue_FullQueue(t *testing.T) {
	fx := createTestDispatchService(t, 1, 1)

	ctx := context.Background()
	event := &service.DomainEvent{Type: constants.EventTypeOrderCreated, Title: "新訂單"}

	// Workers are not started, so the single slot never drains.
	require.NoError(t, fx.service.Enqueue(ctx, event))

	err := fx.service.Enqueue(ctx, event)

	assert.ErrorIs(t, err, usecase.ErrDispatchQueueFull)
}

func TestDispatchService_FanOut_OrderCreated(t *testing.T) {
	fx := createTestDispatchService(t, 8, 1)

	adminID := uuid.New()
	orderID := uuid.New()

	event := &service.DomainEvent{
		RequestID: "req-123",
		Type:      constants.EventTypeOrderCreated,
		Title:     "新訂單",
		Body:      "訂單 ORD-000042 已成立，共 2 項商品",
		OrderID:   orderID.String(),
		Data:      map[string]string{"order_number": "ORD-000042"},
	}

	fx.userRepo.EXPECT().
		FindIDsByRole(mock.Anything, entity.RoleAdmin).
		Return([]uuid.UUID{adminID}, nil)

	var inbox []entity.Notification
	fx.notificationRepo.EXPECT().
		BatchCreate(mock.Anything, mock.AnythingOfType("[]entity.Notification")).
		Run(func(ctx context.Context, notifications []entity.Notification) {
			inbox = notifications
		}).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindActiveByUserIDs(mock.Anything, []uuid.UUID{adminID}).
		Return([]entity.UserDevice{
			{UserID: adminID, FCMToken: "staff-token", IsActive: true},
			{UserID: adminID, FCMToken: "stale-token", IsActive: true},
		}, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"staff-token", "stale-token"}, event.Title, event.Body, event.Data).
		Return(1, 1, []string{"stale-token"}, nil)
	fx.deviceRepo.EXPECT().
		DeactivateByTokens(mock.Anything, []string{"stale-token"}).
		Return(nil)

	ctx := context.Background()
	require.NoError(t, fx.service.Start(ctx))
	require.NoError(t, fx.service.Enqueue(ctx, event))

	stopCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	require.NoError(t, fx.service.Stop(stopCtx))

	require.Len(t, inbox, 1)
	assert.Equal(t, adminID, inbox[0].UserID)
	assert.Equal(t, entity.NotificationTypeNewOrder, inbox[0].Type)
	require.NotNil(t, inbox[0].OrderID)
	assert.Equal(t, orderID, *inbox[0].OrderID)
}

func TestDispatchService_FanOut_ReviewSubmittedInboxType(t *testing.T) {
	fx := createTestDispatchService(t, 8, 2)

	adminID := uuid.New()

	event := &service.DomainEvent{
		Type:     constants.EventTypeReviewSubmitted,
		Title:    "新評價待審核",
		Body:     "收到 5 星商品評價",
		ReviewID: uuid.New().String(),
	}

	fx.userRepo.EXPECT().
		FindIDsByRole(mock.Anything, entity.RoleAdmin).
		Return([]uuid.UUID{adminID}, nil)

	var inbox []entity.Notification
	fx.notificationRepo.EXPECT().
		BatchCreate(mock.Anything, mock.AnythingOfType("[]entity.Notification")).
		Run(func(ctx context.Context, notifications []entity.Notification) {
			inbox = notifications
		}).
		Return(nil)

	// No active devices: the inbox write still happens, no push goes out.
	fx.deviceRepo.EXPECT().
		FindActiveByUserIDs(mock.Anything, []uuid.UUID{adminID}).
		Return(nil, nil)

	ctx := context.Background()
	require.NoError(t, fx.service.Start(ctx))
	require.NoError(t, fx.service.Enqueue(ctx, event))

	stopCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	require.NoError(t, fx.service.Stop(stopCtx))

	require.Len(t, inbox, 1)
	assert.Equal(t, entity.NotificationTypeNewReview, inbox[0].Type)
	assert.Nil(t, inbox[0].OrderID)
}

func TestDispatchService_Stop_DrainsQueuedEvents(t *testing.T) {
	fx := createTestDispatchService(t, 8, 1)

	event := &service.DomainEvent{Type: constants.EventTypeOrderCreated, Title: "新訂單"}

	// No staff resolved: every event short-circuits after the role lookup.
	fx.userRepo.EXPECT().
		FindIDsByRole(mock.Anything, entity.RoleAdmin).
		Return(nil, nil).
		Times(3)

	ctx := context.Background()
	require.NoError(t, fx.service.Start(ctx))
	for i := 0; i < 3; i++ {
		require.NoError(t, fx.service.Enqueue(ctx, event))
	}

	stopCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	require.NoError(t, fx.service.Stop(stopCtx))
}

func TestDispatchService_Stop_BeforeStartIsNoOp(t *testing.T) {
	fx := createTestDispatchService(t, 1, 1)

	assert.NoError(t, fx.service.Stop(context.Background()))
}
