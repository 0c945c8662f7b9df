package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"maple/internal/domain/entity"
	domainerrors "maple/internal/domain/errors"
	"maple/internal/domain/repository"
	mockRepo "maple/internal/mocks/repository"
	mockSvc "maple/internal/mocks/service"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service         usecase.OrderUsecase
	txManager       *mockRepo.MockTransactionManager
	orderRepo       *mockRepo.MockOrderRepository
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockSvc.MockNotificationService
	qrcodeSvc       *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewOrderService(OrderServiceParams{
		TxManager:       txManager,
		OrderRepo:       orderRepo,
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		QRCodeSvc:       qrcodeSvc,
		Logger:          logger,
	})

	return orderServiceFixtures{
		service:         svc,
		txManager:       txManager,
		orderRepo:       orderRepo,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		qrcodeSvc:       qrcodeSvc,
	}
}

func testOrder(status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID:           uuid.New(),
		OrderNumber:  "ORD-000042",
		UserID:       uuid.New(),
		Status:       status,
		TotalCents:   4000,
		Currency:     "CAD",
		PointsUsed:   200,
		PointsEarned: 40,
	}
}

func TestOrderService_UpdateStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)
	order := testOrder(entity.OrderStatusPending)

	ctx := context.Background()
	input := &usecase.UpdateOrderStatusInput{
		OrderID: order.ID,
		To:      entity.OrderStatusConfirmed,
		AdminID: uuid.New(),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewNotificationRepository().Return(mockNotificationRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockOrderRepo.EXPECT().
				UpdateStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusConfirmed).
				Return(nil)

			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Run(func(ctx context.Context, notification *entity.Notification) {
					assert.Equal(t, order.UserID, notification.UserID)
					assert.Equal(t, entity.NotificationTypeOrderStatus, notification.Type)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindActiveByUserID(ctx, order.UserID).
		Return([]entity.UserDevice{{FCMToken: "token-1", IsActive: true}}, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(1, 0, nil, nil)

	updated, err := fx.service.UpdateStatus(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
}

func TestOrderService_UpdateStatus_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)
	order := testOrder(entity.OrderStatusDelivered)

	ctx := context.Background()
	input := &usecase.UpdateOrderStatusInput{
		OrderID: order.ID,
		To:      entity.OrderStatusConfirmed,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrInvalidTransition, `cannot move order from "delivered" to "confirmed"`))

	updated, err := fx.service.UpdateStatus(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.UpdateOrderStatusInput{
		OrderID: uuid.New(),
		To:      entity.OrderStatus("shipped"),
	}

	updated, err := fx.service.UpdateStatus(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_UpdateStatus_ExpectedFromMismatch(t *testing.T) {
	fx := createTestOrderService(t)
	order := testOrder(entity.OrderStatusPreparing)

	ctx := context.Background()
	input := &usecase.UpdateOrderStatusInput{
		OrderID:      order.ID,
		ExpectedFrom: entity.OrderStatusConfirmed,
		To:           entity.OrderStatusPreparing,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrInvalidTransition, "order moved concurrently"))

	updated, err := fx.service.UpdateStatus(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestOrderService_UpdateStatus_StaleRow(t *testing.T) {
	fx := createTestOrderService(t)
	order := testOrder(entity.OrderStatusPending)

	ctx := context.Background()
	input := &usecase.UpdateOrderStatusInput{
		OrderID: order.ID,
		To:      entity.OrderStatusConfirmed,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockOrderRepo.EXPECT().
				UpdateStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusConfirmed).
				Return(repository.ErrStaleOrderStatus)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrInvalidTransition, "order status changed concurrently"))

	updated, err := fx.service.UpdateStatus(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestOrderService_UpdateStatus_CancellationReversesPoints(t *testing.T) {
	fx := createTestOrderService(t)
	order := testOrder(entity.OrderStatusConfirmed)

	ctx := context.Background()
	input := &usecase.UpdateOrderStatusInput{
		OrderID: order.ID,
		To:      entity.OrderStatusCancelled,
		AdminID: uuid.New(),
	}

	var entries []*entity.PointsEntry

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockPointsRepo := mockRepo.NewMockPointsRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewPointsRepository().Return(mockPointsRepo)
			mockFactory.EXPECT().NewNotificationRepository().Return(mockNotificationRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockOrderRepo.EXPECT().
				UpdateStatus(ctx, order.ID, entity.OrderStatusConfirmed, entity.OrderStatusCancelled).
				Return(nil)

			mockPointsRepo.EXPECT().
				CreateEntry(ctx, mock.AnythingOfType("*entity.PointsEntry")).
				Run(func(ctx context.Context, entry *entity.PointsEntry) {
					entries = append(entries, entry)
				}).
				Return(nil)

			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.deviceRepo.EXPECT().FindActiveByUserID(ctx, order.UserID).Return(nil, nil)

	updated, err := fx.service.UpdateStatus(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)

	require.Len(t, entries, 2)
	clawback, refund := entries[0], entries[1]
	assert.Equal(t, -40, clawback.Points)
	assert.Equal(t, entity.PointsEntryAdminAdjustment, clawback.Type)
	assert.Equal(t, 200, refund.Points)
	assert.Equal(t, entity.PointsEntryAdminAdjustment, refund.Type)
}

func TestOrderService_UpdateStatus_InvalidPushTokensAreDeactivated(t *testing.T) {
	fx := createTestOrderService(t)
	order := testOrder(entity.OrderStatusReady)

	ctx := context.Background()
	input := &usecase.UpdateOrderStatusInput{
		OrderID: order.ID,
		To:      entity.OrderStatusDelivering,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewNotificationRepository().Return(mockNotificationRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockOrderRepo.EXPECT().
				UpdateStatus(ctx, order.ID, entity.OrderStatusReady, entity.OrderStatusDelivering).
				Return(nil)
			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindActiveByUserID(ctx, order.UserID).
		Return([]entity.UserDevice{
			{FCMToken: "token-good", IsActive: true},
			{FCMToken: "token-stale", IsActive: true},
		}, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-good", "token-stale"}, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(1, 1, []string{"token-stale"}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"token-stale"}).Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivering, updated.Status)
}

func TestOrderService_GetOrder_OwnershipEnforced(t *testing.T) {
	fx := createTestOrderService(t)
	order := testOrder(entity.OrderStatusPending)

	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, uuid.New(), order.ID)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_GetOrder_AdminBypassesOwnership(t *testing.T) {
	fx := createTestOrderService(t)
	order := testOrder(entity.OrderStatusPending)

	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, uuid.Nil, order.ID)

	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	got, err := fx.service.GetOrder(ctx, uuid.Nil, orderID)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListOrdersByStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	orders, err := fx.service.ListOrdersByStatus(ctx, &usecase.ListOrdersByStatusInput{
		Status: entity.OrderStatus("archived"),
	})

	assert.Error(t, err)
	assert.Nil(t, orders)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_PickupQRCode_Success(t *testing.T) {
	fx := createTestOrderService(t)
	order := testOrder(entity.OrderStatusReady)

	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.qrcodeSvc.EXPECT().
		GeneratePickupQRCode(order.ID, order.OrderNumber).
		Return([]byte("png-bytes"), nil)

	png, err := fx.service.PickupQRCode(ctx, order.UserID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}
