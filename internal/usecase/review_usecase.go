// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ReviewImage is an uploaded review photo stream.
type ReviewImage struct {
	Reader   io.Reader
	Filename string
}

// SubmitProductReviewInput defines the data for a per-product review of a
// delivered order.
type SubmitProductReviewInput struct {
	UserID    uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Rating    int
	Comment   string
	Images    []ReviewImage
}

// SubmitRestaurantReviewInput defines the data for a restaurant-level review.
type SubmitRestaurantReviewInput struct {
	UserID  uuid.UUID
	Rating  int
	Comment string
}

// ModerateReviewInput defines a moderation verdict. Reason is required for
// rejections.
type ModerateReviewInput struct {
	ReviewID    uuid.UUID
	ModeratorID uuid.UUID
	Reason      string
}

// ListReviewsInput pages a review listing.
type ListReviewsInput struct {
	Limit  int
	Offset int
}

// --- Output DTOs ---

// ReviewableProduct is a product of a delivered order the user has not
// reviewed yet.
type ReviewableProduct struct {
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
}

// ReviewUsecase drives review submission and the moderation workflow.
type ReviewUsecase interface {
	// ListReviewable returns the products of a delivered order the user may
	// still review. Empty unless the order is delivered.
	ListReviewable(ctx context.Context, userID, orderID uuid.UUID) ([]ReviewableProduct, error)

	// SubmitProductReview files a pending review for one product of a
	// delivered order. At most one review per (order, product, user).
	SubmitProductReview(ctx context.Context, input *SubmitProductReviewInput) (*entity.Review, error)

	// SubmitRestaurantReview files a pending restaurant-level review.
	// At most one per user, regardless of moderation outcome.
	SubmitRestaurantReview(ctx context.Context, input *SubmitRestaurantReviewInput) (*entity.Review, error)

	// ApproveReview marks a review approved. Idempotent.
	ApproveReview(ctx context.Context, input *ModerateReviewInput) error

	// RejectReview marks a review rejected with a mandatory reason.
	// Idempotent.
	RejectReview(ctx context.Context, input *ModerateReviewInput) error

	// ListPendingReviews pages reviews awaiting moderation, oldest first.
	ListPendingReviews(ctx context.Context, input *ListReviewsInput) ([]entity.Review, error)

	// ListProductReviews pages approved reviews of a product.
	ListProductReviews(ctx context.Context, productID uuid.UUID, input *ListReviewsInput) ([]entity.Review, error)

	// ListMyReviews pages the user's own reviews in every moderation state.
	ListMyReviews(ctx context.Context, userID uuid.UUID, input *ListReviewsInput) ([]entity.Review, error)
}
