package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"maple/config"
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

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service      usecase.ReviewUsecase
	txManager    *mockRepo.MockTransactionManager
	reviewRepo   *mockRepo.MockReviewRepository
	orderRepo    *mockRepo.MockOrderRepository
	imageStorage *mockSvc.MockImageStorage
	publisher    *mockSvc.MockEventPublisher
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	imageStorage := mockSvc.NewMockImageStorage(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Cloudinary: &config.CloudinaryConfig{UploadFolder: "reviews"},
	}

	svc := NewReviewService(ReviewServiceParams{
		TxManager:    txManager,
		ReviewRepo:   reviewRepo,
		OrderRepo:    orderRepo,
		ImageStorage: imageStorage,
		Publisher:    publisher,
		Config:       cfg,
		Logger:       logger,
	})

	return reviewServiceFixtures{
		service:      svc,
		txManager:    txManager,
		reviewRepo:   reviewRepo,
		orderRepo:    orderRepo,
		imageStorage: imageStorage,
		publisher:    publisher,
	}
}

func deliveredOrder(userID uuid.UUID, productIDs ...uuid.UUID) *entity.Order {
	items := make([]entity.OrderItem, 0, len(productIDs))
	for i, productID := range productIDs {
		items = append(items, entity.OrderItem{
			ProductID:   productID,
			ProductName: []string{"烤雞腿堡", "楓糖拿鐵"}[i%2],
		})
	}

	return &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-000042",
		UserID:      userID,
		Status:      entity.OrderStatusDelivered,
		Items:       items,
	}
}

func TestReviewService_SubmitProductReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	userID := uuid.New()
	productID := uuid.New()
	order := deliveredOrder(userID, productID)

	ctx := context.Background()
	input := &usecase.SubmitProductReviewInput{
		UserID:    userID,
		OrderID:   order.ID,
		ProductID: productID,
		Rating:    5,
		Comment:   "雞腿堡很好吃",
		Images: []usecase.ReviewImage{
			{Reader: strings.NewReader("jpeg-bytes"), Filename: "burger.jpg"},
		},
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.imageStorage.EXPECT().
		Upload(ctx, input.Images[0].Reader, "reviews").
		Return("https://cdn.example.com/reviews/burger.jpg", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)

			mockReviewRepo.EXPECT().
				ExistsProductReview(ctx, userID, order.ID, productID).
				Return(false, nil)
			mockReviewRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Review")).
				Run(func(ctx context.Context, review *entity.Review) {
					review.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	review, err := fx.service.SubmitProductReview(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, review)
	assert.Equal(t, 5, review.Rating)
	assert.True(t, review.IsPending())
	require.Len(t, review.Images, 1)
	assert.Equal(t, "https://cdn.example.com/reviews/burger.jpg", review.Images[0])
}

func TestReviewService_SubmitProductReview_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)

	userID := uuid.New()
	productID := uuid.New()
	order := deliveredOrder(userID, productID)

	ctx := context.Background()
	input := &usecase.SubmitProductReviewInput{
		UserID:    userID,
		OrderID:   order.ID,
		ProductID: productID,
		Rating:    4,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().
				ExistsProductReview(ctx, userID, order.ID, productID).
				Return(true, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrDuplicateReview, "review already submitted"))

	review, err := fx.service.SubmitProductReview(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateReview))
}

func TestReviewService_SubmitProductReview_UniquenessRace(t *testing.T) {
	fx := createTestReviewService(t)

	userID := uuid.New()
	productID := uuid.New()
	order := deliveredOrder(userID, productID)

	ctx := context.Background()
	input := &usecase.SubmitProductReviewInput{
		UserID:    userID,
		OrderID:   order.ID,
		ProductID: productID,
		Rating:    4,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	// The pre-check passes but the insert loses to a concurrent submission on
	// the uniqueness constraint.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().
				ExistsProductReview(ctx, userID, order.ID, productID).
				Return(false, nil)
			mockReviewRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Review")).
				Return(repository.ErrReviewExists)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrDuplicateReview, "review already submitted"))

	review, err := fx.service.SubmitProductReview(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateReview))
}

func TestReviewService_SubmitProductReview_NotDelivered(t *testing.T) {
	fx := createTestReviewService(t)

	userID := uuid.New()
	productID := uuid.New()
	order := deliveredOrder(userID, productID)
	order.Status = entity.OrderStatusDelivering

	ctx := context.Background()
	input := &usecase.SubmitProductReviewInput{
		UserID:    userID,
		OrderID:   order.ID,
		ProductID: productID,
		Rating:    5,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	review, err := fx.service.SubmitProductReview(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotReviewable))
}

func TestReviewService_SubmitProductReview_InvalidRating(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		review, err := fx.service.SubmitProductReview(ctx, &usecase.SubmitProductReviewInput{
			UserID:    uuid.New(),
			OrderID:   uuid.New(),
			ProductID: uuid.New(),
			Rating:    rating,
		})

		assert.Error(t, err)
		assert.Nil(t, review)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidRating))
	}
}

func TestReviewService_SubmitProductReview_ProductNotInOrder(t *testing.T) {
	fx := createTestReviewService(t)

	userID := uuid.New()
	order := deliveredOrder(userID, uuid.New())

	ctx := context.Background()
	input := &usecase.SubmitProductReviewInput{
		UserID:    userID,
		OrderID:   order.ID,
		ProductID: uuid.New(),
		Rating:    3,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	review, err := fx.service.SubmitProductReview(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotReviewable))
}

func TestReviewService_SubmitRestaurantReview_OncePerUser(t *testing.T) {
	fx := createTestReviewService(t)

	userID := uuid.New()

	ctx := context.Background()
	input := &usecase.SubmitRestaurantReviewInput{
		UserID:  userID,
		Rating:  4,
		Comment: "整體不錯",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().ExistsRestaurantReview(ctx, userID).Return(true, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrDuplicateReview, "review already submitted"))

	review, err := fx.service.SubmitRestaurantReview(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateReview))
}

func TestReviewService_SubmitRestaurantReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	userID := uuid.New()

	ctx := context.Background()
	input := &usecase.SubmitRestaurantReviewInput{
		UserID: userID,
		Rating: 5,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().ExistsRestaurantReview(ctx, userID).Return(false, nil)
			mockReviewRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Review")).
				Run(func(ctx context.Context, review *entity.Review) {
					review.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	review, err := fx.service.SubmitRestaurantReview(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, review)
	assert.True(t, review.IsRestaurantReview())
}

func TestReviewService_RejectReview_ReasonRequired(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	err := fx.service.RejectReview(ctx, &usecase.ModerateReviewInput{
		ReviewID:    uuid.New(),
		ModeratorID: uuid.New(),
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRejectionReasonRequired))
}

func TestReviewService_RejectReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	reviewID := uuid.New()
	moderatorID := uuid.New()
	pending := &entity.Review{ID: reviewID, UserID: uuid.New(), Rating: 2}

	ctx := context.Background()
	input := &usecase.ModerateReviewInput{
		ReviewID:    reviewID,
		ModeratorID: moderatorID,
		Reason:      "內容與餐點無關",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(pending, nil)
			mockReviewRepo.EXPECT().
				SetModeration(ctx, reviewID, false, &input.Reason, moderatorID).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.RejectReview(ctx, input)

	assert.NoError(t, err)
}

func TestReviewService_ApproveReview_SameVerdictIsNoOp(t *testing.T) {
	fx := createTestReviewService(t)

	reviewID := uuid.New()
	approved := &entity.Review{ID: reviewID, UserID: uuid.New(), Rating: 5, IsApproved: true}

	ctx := context.Background()
	input := &usecase.ModerateReviewInput{
		ReviewID:    reviewID,
		ModeratorID: uuid.New(),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(approved, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ApproveReview(ctx, input)

	assert.NoError(t, err)
}

func TestReviewService_ApproveReview_FlipsRejectedVerdict(t *testing.T) {
	fx := createTestReviewService(t)

	reviewID := uuid.New()
	moderatorID := uuid.New()
	rejected := &entity.Review{
		ID:              reviewID,
		UserID:          uuid.New(),
		Rating:          4,
		IsRejected:      true,
		RejectionReason: "內容與餐點無關",
	}

	ctx := context.Background()
	input := &usecase.ModerateReviewInput{
		ReviewID:    reviewID,
		ModeratorID: moderatorID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(rejected, nil)
			mockReviewRepo.EXPECT().
				SetModeration(ctx, reviewID, true, (*string)(nil), moderatorID).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ApproveReview(ctx, input)

	assert.NoError(t, err)
}

func TestReviewService_RejectReview_FlipsApprovedVerdict(t *testing.T) {
	fx := createTestReviewService(t)

	reviewID := uuid.New()
	moderatorID := uuid.New()
	approved := &entity.Review{ID: reviewID, UserID: uuid.New(), Rating: 5, IsApproved: true}

	ctx := context.Background()
	input := &usecase.ModerateReviewInput{
		ReviewID:    reviewID,
		ModeratorID: moderatorID,
		Reason:      "照片與商品不符",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(approved, nil)
			mockReviewRepo.EXPECT().
				SetModeration(ctx, reviewID, false, &input.Reason, moderatorID).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.RejectReview(ctx, input)

	assert.NoError(t, err)
}

func TestReviewService_ListReviewable_FiltersReviewedProducts(t *testing.T) {
	fx := createTestReviewService(t)

	userID := uuid.New()
	reviewedID := uuid.New()
	pendingID := uuid.New()
	order := deliveredOrder(userID, reviewedID, pendingID)

	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.reviewRepo.EXPECT().
		ExistsProductReview(ctx, userID, order.ID, reviewedID).
		Return(true, nil)
	fx.reviewRepo.EXPECT().
		ExistsProductReview(ctx, userID, order.ID, pendingID).
		Return(false, nil)

	reviewable, err := fx.service.ListReviewable(ctx, userID, order.ID)

	require.NoError(t, err)
	require.Len(t, reviewable, 1)
	assert.Equal(t, pendingID, reviewable[0].ProductID)
}

func TestReviewService_ListReviewable_NotDeliveredIsEmpty(t *testing.T) {
	fx := createTestReviewService(t)

	userID := uuid.New()
	order := deliveredOrder(userID, uuid.New())
	order.Status = entity.OrderStatusPreparing

	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	reviewable, err := fx.service.ListReviewable(ctx, userID, order.ID)

	require.NoError(t, err)
	assert.Empty(t, reviewable)
}
