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
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pointsServiceFixtures holds all test dependencies for points service tests.
type pointsServiceFixtures struct {
	service    usecase.PointsUsecase
	txManager  *mockRepo.MockTransactionManager
	pointsRepo *mockRepo.MockPointsRepository
	userRepo   *mockRepo.MockUserRepository
}

func createTestPointsService(t *testing.T) pointsServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	pointsRepo := mockRepo.NewMockPointsRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewPointsService(PointsServiceParams{
		TxManager:  txManager,
		PointsRepo: pointsRepo,
		UserRepo:   userRepo,
		Logger:     logger,
	})

	return pointsServiceFixtures{
		service:    svc,
		txManager:  txManager,
		pointsRepo: pointsRepo,
		userRepo:   userRepo,
	}
}

func TestPointsService_GetBalance(t *testing.T) {
	fx := createTestPointsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.pointsRepo.EXPECT().BalanceByUser(ctx, userID).Return(340, nil)

	output, err := fx.service.GetBalance(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(340), output.Balance)
}

func TestPointsService_AdjustPoints_ZeroIsRejected(t *testing.T) {
	fx := createTestPointsService(t)

	ctx := context.Background()

	entry, err := fx.service.AdjustPoints(ctx, &usecase.AdjustPointsInput{
		UserID:      uuid.New(),
		Points:      0,
		Description: "no-op",
	})

	assert.Error(t, err)
	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPointsService_AdjustPoints_Success(t *testing.T) {
	fx := createTestPointsService(t)

	ctx := context.Background()
	input := &usecase.AdjustPointsInput{
		UserID:      uuid.New(),
		Points:      50,
		Description: "客服補償",
		AdminID:     uuid.New(),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPointsRepo := mockRepo.NewMockPointsRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewPointsRepository().Return(mockPointsRepo)

			mockUserRepo.EXPECT().LockByID(ctx, input.UserID).Return(nil)
			mockPointsRepo.EXPECT().
				CreateEntry(ctx, mock.AnythingOfType("*entity.PointsEntry")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	entry, err := fx.service.AdjustPoints(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 50, entry.Points)
	assert.Equal(t, entity.PointsEntryAdminAdjustment, entry.Type)
}

func TestPointsService_AdjustPoints_NegativePastZero(t *testing.T) {
	fx := createTestPointsService(t)

	ctx := context.Background()
	input := &usecase.AdjustPointsInput{
		UserID:      uuid.New(),
		Points:      -100,
		Description: "收回活動點數",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPointsRepo := mockRepo.NewMockPointsRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewPointsRepository().Return(mockPointsRepo)

			mockUserRepo.EXPECT().LockByID(ctx, input.UserID).Return(nil)
			mockPointsRepo.EXPECT().BalanceByUser(ctx, input.UserID).Return(60, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrInsufficientPoints, "balance 60, adjustment -100"))

	entry, err := fx.service.AdjustPoints(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientPoints))
}

func TestPointsService_AdjustPoints_UserNotFound(t *testing.T) {
	fx := createTestPointsService(t)

	ctx := context.Background()
	input := &usecase.AdjustPointsInput{
		UserID:      uuid.New(),
		Points:      10,
		Description: "測試",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPointsRepo := mockRepo.NewMockPointsRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewPointsRepository().Return(mockPointsRepo)

			mockUserRepo.EXPECT().LockByID(ctx, input.UserID).Return(repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUserNotFound, "user not found"))

	entry, err := fx.service.AdjustPoints(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestPointsService_ExpireOldPoints_CapsAtLiveBalance(t *testing.T) {
	fx := createTestPointsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.pointsRepo.EXPECT().
		ExpirableEarnedByUser(ctx, mock.AnythingOfType("time.Time")).
		Return([]repository.UserPointsSummary{{UserID: userID, Points: 120}}, nil)

	var expired *entity.PointsEntry

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPointsRepo := mockRepo.NewMockPointsRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewPointsRepository().Return(mockPointsRepo)

			mockUserRepo.EXPECT().LockByID(ctx, userID).Return(nil)
			// Points were spent since the aggregate ran.
			mockPointsRepo.EXPECT().BalanceByUser(ctx, userID).Return(80, nil)
			mockPointsRepo.EXPECT().
				CreateEntry(ctx, mock.AnythingOfType("*entity.PointsEntry")).
				Run(func(ctx context.Context, entry *entity.PointsEntry) {
					expired = entry
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	count, err := fx.service.ExpireOldPoints(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.NotNil(t, expired)
	assert.Equal(t, -80, expired.Points)
	assert.Equal(t, entity.PointsEntryExpired, expired.Type)
}

func TestPointsService_ExpireOldPoints_ContinuesPastFailures(t *testing.T) {
	fx := createTestPointsService(t)

	ctx := context.Background()
	brokenUser := uuid.New()
	healthyUser := uuid.New()

	fx.pointsRepo.EXPECT().
		ExpirableEarnedByUser(ctx, mock.AnythingOfType("time.Time")).
		Return([]repository.UserPointsSummary{
			{UserID: brokenUser, Points: 30},
			{UserID: healthyUser, Points: 40},
		}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("lock timeout")).
		Once()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPointsRepo := mockRepo.NewMockPointsRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewPointsRepository().Return(mockPointsRepo)

			mockUserRepo.EXPECT().LockByID(ctx, healthyUser).Return(nil)
			mockPointsRepo.EXPECT().BalanceByUser(ctx, healthyUser).Return(40, nil)
			mockPointsRepo.EXPECT().
				CreateEntry(ctx, mock.AnythingOfType("*entity.PointsEntry")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	count, err := fx.service.ExpireOldPoints(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
