package impl

import (
	"context"
	"fmt"
	"log/slog"

	"maple/config"
	deliverycontext "maple/internal/delivery/context"
	"maple/internal/domain/constants"
	"maple/internal/domain/entity"
	domainerrors "maple/internal/domain/errors"
	"maple/internal/domain/repository"
	"maple/internal/domain/service"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager    repository.TransactionManager
	reviewRepo   repository.ReviewRepository
	orderRepo    repository.OrderRepository
	imageStorage service.ImageStorage
	publisher    service.EventPublisher
	uploadFolder string
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ReviewRepo   repository.ReviewRepository
	OrderRepo    repository.OrderRepository
	ImageStorage service.ImageStorage
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	uploadFolder := "reviews"
	if params.Config != nil && params.Config.Cloudinary != nil && params.Config.Cloudinary.UploadFolder != "" {
		uploadFolder = params.Config.Cloudinary.UploadFolder
	}

	return &reviewService{
		txManager:    params.TxManager,
		reviewRepo:   params.ReviewRepo,
		orderRepo:    params.OrderRepo,
		imageStorage: params.ImageStorage,
		publisher:    params.Publisher,
		uploadFolder: uploadFolder,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListReviewable returns the products of a delivered order the user has not
// reviewed yet. Anything else yields an empty list, not an error.
func (srv *reviewService) ListReviewable(ctx context.Context, userID, orderID uuid.UUID) ([]usecase.ReviewableProduct, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}
	if order.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "order belongs to another user")
	}

	if order.Status != entity.OrderStatusDelivered {
		return []usecase.ReviewableProduct{}, nil
	}

	reviewable := make([]usecase.ReviewableProduct, 0, len(order.Items))

	for _, item := range order.Items {
		exists, err := srv.reviewRepo.ExistsProductReview(ctx, userID, orderID, item.ProductID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check for an existing review")
		}
		if exists {
			continue
		}

		reviewable = append(reviewable, usecase.ReviewableProduct{
			OrderID:     orderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
		})
	}

	return reviewable, nil
}

// SubmitProductReview files a pending review for one product of a delivered
// order.
func (srv *reviewService) SubmitProductReview(ctx context.Context, input *usecase.SubmitProductReviewInput) (*entity.Review, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}
	if order.UserID != input.UserID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "order belongs to another user")
	}
	if order.Status != entity.OrderStatusDelivered {
		return nil, errors.Wrap(domainerrors.ErrOrderNotReviewable, "only delivered orders can be reviewed")
	}

	if !orderContainsProduct(order, input.ProductID) {
		return nil, errors.Wrap(domainerrors.ErrOrderNotReviewable, "product is not part of this order")
	}

	imageURLs, err := srv.uploadImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	orderID := input.OrderID
	productID := input.ProductID

	review := &entity.Review{
		OrderID:   &orderID,
		UserID:    input.UserID,
		ProductID: &productID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Images:    imageURLs,
	}

	if err := srv.createReview(ctx, review, func(reviewRepo repository.ReviewRepository) (bool, error) {
		return reviewRepo.ExistsProductReview(ctx, input.UserID, input.OrderID, input.ProductID)
	}); err != nil {
		return nil, err
	}

	srv.publishReviewSubmitted(ctx, review)

	return review, nil
}

// SubmitRestaurantReview files a pending restaurant-level review. At most one
// per user, regardless of how moderation went.
func (srv *reviewService) SubmitRestaurantReview(ctx context.Context, input *usecase.SubmitRestaurantReviewInput) (*entity.Review, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	review := &entity.Review{
		UserID:  input.UserID,
		Rating:  input.Rating,
		Comment: input.Comment,
	}

	if err := srv.createReview(ctx, review, func(reviewRepo repository.ReviewRepository) (bool, error) {
		return reviewRepo.ExistsRestaurantReview(ctx, input.UserID)
	}); err != nil {
		return nil, err
	}

	srv.publishReviewSubmitted(ctx, review)

	return review, nil
}

// createReview inserts a review inside a transaction, re-checking uniqueness
// so two concurrent submissions cannot both pass.
func (srv *reviewService) createReview(ctx context.Context, review *entity.Review, exists func(repository.ReviewRepository) (bool, error)) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		duplicate, err := exists(reviewRepo)
		if err != nil {
			return errors.Wrap(err, "failed to check for a duplicate review")
		}
		if duplicate {
			return errors.Wrap(domainerrors.ErrDuplicateReview, "review already submitted")
		}

		if err := reviewRepo.Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrReviewExists) {
				return errors.Wrap(domainerrors.ErrDuplicateReview, "review already submitted")
			}

			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute review transaction", slog.Any("userID", review.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute review transaction")
	}

	return nil
}

// uploadImages pushes review photos to the media store. A single failed
// upload aborts the submission so the review never references a missing
// image.
func (srv *reviewService) uploadImages(ctx context.Context, images []usecase.ReviewImage) ([]string, error) {
	if len(images) == 0 {
		return nil, nil
	}

	if srv.imageStorage == nil {
		return nil, errors.New("image storage is not configured")
	}

	urls := make([]string, 0, len(images))

	for _, image := range images {
		url, err := srv.imageStorage.Upload(ctx, image.Reader, srv.uploadFolder)
		if err != nil {
			srv.log(ctx).Error("Failed to upload review image", slog.String("filename", image.Filename), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to upload review image")
		}

		urls = append(urls, url)
	}

	return urls, nil
}

// publishReviewSubmitted fans the new review out to staff. Advisory only.
func (srv *reviewService) publishReviewSubmitted(ctx context.Context, review *entity.Review) {
	body := fmt.Sprintf("收到 %d 星餐廳評價", review.Rating)
	if review.ProductID != nil {
		body = fmt.Sprintf("收到 %d 星商品評價", review.Rating)
	}

	event := &service.DomainEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      constants.EventTypeReviewSubmitted,
		Title:     "新評價待審核",
		Body:      body,
		ReviewID:  review.ID.String(),
		Data: map[string]string{
			"rating": fmt.Sprintf("%d", review.Rating),
		},
	}

	if err := srv.publisher.PublishDomainEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish review submitted event", slog.Any("reviewID", review.ID), slog.Any("error", err))
	}
}

// ApproveReview marks a review approved. Re-approving is a no-op.
func (srv *reviewService) ApproveReview(ctx context.Context, input *usecase.ModerateReviewInput) error {
	return srv.moderate(ctx, input, true)
}

// RejectReview marks a review rejected. The reason is mandatory.
func (srv *reviewService) RejectReview(ctx context.Context, input *usecase.ModerateReviewInput) error {
	if input.Reason == "" {
		return errors.Wrap(domainerrors.ErrRejectionReasonRequired, "a rejection must carry a reason")
	}

	return srv.moderate(ctx, input, false)
}

func (srv *reviewService) moderate(ctx context.Context, input *usecase.ModerateReviewInput, approve bool) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := reviewRepo.FindByID(ctx, input.ReviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
			}

			return errors.Wrap(err, "failed to load review")
		}

		// Same verdict twice is a no-op.
		if (approve && review.IsApproved) || (!approve && review.IsRejected) {
			return nil
		}

		var reason *string
		if !approve {
			reason = &input.Reason
		}

		if err := reviewRepo.SetModeration(ctx, input.ReviewID, approve, reason, input.ModeratorID); err != nil {
			return errors.Wrap(err, "failed to store moderation verdict")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute moderation transaction",
			slog.Any("reviewID", input.ReviewID),
			slog.Bool("approve", approve),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to execute moderation transaction")
	}

	srv.log(ctx).Info("Review moderated",
		slog.Any("reviewID", input.ReviewID),
		slog.Bool("approve", approve),
		slog.Any("moderatorID", input.ModeratorID),
	)

	return nil
}

// ListPendingReviews pages reviews awaiting moderation, oldest first.
func (srv *reviewService) ListPendingReviews(ctx context.Context, input *usecase.ListReviewsInput) ([]entity.Review, error) {
	reviews, err := srv.reviewRepo.ListPending(ctx, normalizeLimit(input.Limit), input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending reviews")
	}

	return reviews, nil
}

// ListProductReviews pages approved reviews of a product.
func (srv *reviewService) ListProductReviews(ctx context.Context, productID uuid.UUID, input *usecase.ListReviewsInput) ([]entity.Review, error) {
	reviews, err := srv.reviewRepo.ListApprovedByProduct(ctx, productID, normalizeLimit(input.Limit), input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	return reviews, nil
}

// ListMyReviews pages the user's own reviews in every moderation state.
func (srv *reviewService) ListMyReviews(ctx context.Context, userID uuid.UUID, input *usecase.ListReviewsInput) ([]entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByUser(ctx, userID, normalizeLimit(input.Limit), input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user reviews")
	}

	return reviews, nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.Wrapf(domainerrors.ErrInvalidRating, "rating %d outside 1..5", rating)
	}

	return nil
}

func orderContainsProduct(order *entity.Order, productID uuid.UUID) bool {
	for _, item := range order.Items {
		if item.ProductID == productID {
			return true
		}
	}

	return false
}
