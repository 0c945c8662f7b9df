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

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	userRepo         *mockRepo.MockUserRepository
	notificationSvc  *mockSvc.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		DeviceRepo:       deviceRepo,
		UserRepo:         userRepo,
		NotificationSvc:  notificationSvc,
		Logger:           logger,
	})

	return notificationServiceFixtures{
		service:          svc,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		userRepo:         userRepo,
		notificationSvc:  notificationSvc,
	}
}

func TestNotificationService_Broadcast_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	customerA := uuid.New()
	customerB := uuid.New()

	ctx := context.Background()
	input := &usecase.BroadcastInput{
		Title:   "本週優惠",
		Body:    "楓糖拿鐵第二杯半價",
		AdminID: uuid.New(),
	}

	fx.userRepo.EXPECT().
		FindIDsByRole(ctx, entity.RoleCustomer).
		Return([]uuid.UUID{customerA, customerB}, nil)

	fx.notificationRepo.EXPECT().
		BatchCreate(ctx, mock.AnythingOfType("[]entity.Notification")).
		Run(func(ctx context.Context, notifications []entity.Notification) {
			require.Len(t, notifications, 2)
			assert.Equal(t, entity.NotificationTypeBroadcast, notifications[0].Type)
		}).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindActiveByUserIDs(ctx, []uuid.UUID{customerA, customerB}).
		Return([]entity.UserDevice{
			{UserID: customerA, FCMToken: "token-a", IsActive: true},
			{UserID: customerB, FCMToken: "token-b", IsActive: true},
		}, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-a", "token-b"}, input.Title, input.Body, mock.Anything).
		Return(1, 1, []string{"token-b"}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"token-b"}).Return(nil)

	output, err := fx.service.Broadcast(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 2, output.Recipients)
	assert.Equal(t, 1, output.PushSent)
	assert.Equal(t, 1, output.PushFailed)
}

func TestNotificationService_Broadcast_PushFailureDoesNotFail(t *testing.T) {
	fx := createTestNotificationService(t)

	customerID := uuid.New()

	ctx := context.Background()
	input := &usecase.BroadcastInput{
		Title: "系統維護公告",
		Body:  "今晚 2 點至 4 點暫停服務",
	}

	fx.userRepo.EXPECT().
		FindIDsByRole(ctx, entity.RoleCustomer).
		Return([]uuid.UUID{customerID}, nil)
	fx.notificationRepo.EXPECT().
		BatchCreate(ctx, mock.AnythingOfType("[]entity.Notification")).
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindActiveByUserIDs(ctx, []uuid.UUID{customerID}).
		Return([]entity.UserDevice{{UserID: customerID, FCMToken: "token", IsActive: true}}, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token"}, input.Title, input.Body, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable"))

	output, err := fx.service.Broadcast(ctx, input)

	// The inbox write is the contract; push delivery is best-effort.
	require.NoError(t, err)
	assert.Equal(t, 1, output.Recipients)
	assert.Equal(t, 0, output.PushSent)
}

func TestNotificationService_Broadcast_RequiresContent(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	output, err := fx.service.Broadcast(ctx, &usecase.BroadcastInput{Title: "只有標題"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNotificationService_Broadcast_NoRecipients(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindIDsByRole(ctx, entity.RoleCustomer).Return(nil, nil)

	output, err := fx.service.Broadcast(ctx, &usecase.BroadcastInput{Title: "公告", Body: "內容"})

	require.NoError(t, err)
	assert.Equal(t, 0, output.Recipients)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, userID, notificationID).
		Return(repository.ErrNotificationNotFound)

	err := fx.service.MarkRead(ctx, userID, notificationID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().MarkAllRead(ctx, userID).Return(3, nil)

	flipped, err := fx.service.MarkAllRead(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), flipped)
}

func TestNotificationService_UnreadCount(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().CountUnread(ctx, userID).Return(5, nil)

	count, err := fx.service.UnreadCount(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
