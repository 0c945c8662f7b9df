package repository

import (
	"context"
	"errors"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// Sentinel errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")

	// ErrReviewExists is returned when the uniqueness constraint rejects a
	// duplicate review for the same order and product.
	ErrReviewExists = errors.New("review already exists")
)

// ReviewRepository defines the operations for review persistence.
type ReviewRepository interface {
	// Create persists a new review in the pending state. Duplicate reviews
	// for the same scope return ErrReviewExists.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ExistsProductReview reports whether the user already reviewed the
	// product within the order.
	ExistsProductReview(ctx context.Context, userID, orderID, productID uuid.UUID) (bool, error)

	// ExistsRestaurantReview reports whether the user already left their
	// one restaurant-level review, in any moderation state.
	ExistsRestaurantReview(ctx context.Context, userID uuid.UUID) (bool, error)

	// SetModeration records an approve or reject decision. A prior verdict
	// may be flipped; approval clears any stored rejection reason.
	SetModeration(ctx context.Context, id uuid.UUID, approved bool, reason *string, moderatorID uuid.UUID) error

	// ListPending retrieves a page of reviews awaiting moderation, oldest
	// first.
	ListPending(ctx context.Context, limit, offset int) ([]entity.Review, error)

	// ListApprovedByProduct retrieves a page of approved reviews for a
	// product, newest first.
	ListApprovedByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]entity.Review, error)

	// ListByUser retrieves a page of the user's own reviews regardless of
	// moderation state, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Review, error)
}
