package postgres

import (
	"context"
	"time"

	"maple/internal/domain/entity"
	domainerrors "maple/internal/domain/errors"
	"maple/internal/domain/repository"
	"maple/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review in the pending state.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrReviewExists
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a review by ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// ExistsProductReview reports whether the user already reviewed the product
// within the order, regardless of moderation state.
func (repo *reviewRepository) ExistsProductReview(ctx context.Context, userID, orderID, productID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("user_id = ? AND order_id = ? AND product_id = ?", userID, orderID, productID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check product review existence")
	}

	return count > 0, nil
}

// ExistsRestaurantReview reports whether the user already left a restaurant
// review, regardless of moderation state.
func (repo *reviewRepository) ExistsRestaurantReview(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("user_id = ? AND order_id IS NULL AND product_id IS NULL", userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check restaurant review existence")
	}

	return count > 0, nil
}

// SetModeration records an approve or reject decision. Verdicts are not
// final: a rejected review may later be approved and vice versa, so both
// flags are written explicitly and the rejection reason is cleared on
// approval.
func (repo *reviewRepository) SetModeration(ctx context.Context, id uuid.UUID, approved bool, reason *string, moderatorID uuid.UUID) error {
	updates := map[string]any{
		"is_approved":      approved,
		"is_rejected":      !approved,
		"rejection_reason": nil,
		"moderated_by":     moderatorID,
		"moderated_at":     time.Now(),
	}
	if reason != nil {
		updates["rejection_reason"] = *reason
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set review moderation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// ListPending retrieves a page of reviews awaiting moderation, oldest first.
func (repo *reviewRepository) ListPending(ctx context.Context, limit, offset int) ([]entity.Review, error) {
	var reviewModels []model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("is_approved = ? AND is_rejected = ?", false, false).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pending reviews")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// ListApprovedByProduct retrieves a page of approved reviews for a product, newest first.
func (repo *reviewRepository) ListApprovedByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]entity.Review, error) {
	var reviewModels []model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ? AND is_approved = ?", productID, true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list approved reviews by product")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// ListByUser retrieves a page of the user's own reviews, newest first.
func (repo *reviewRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Review, error) {
	var reviewModels []model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by user")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:              data.ID,
		OrderID:         data.OrderID,
		UserID:          data.UserID,
		ProductID:       data.ProductID,
		Rating:          data.Rating,
		Comment:         data.Comment,
		Images:          []string(data.Images),
		IsApproved:      data.IsApproved,
		IsRejected:      data.IsRejected,
		RejectionReason: data.RejectionReason,
		ModeratedBy:     data.ModeratedBy,
		ModeratedAt:     data.ModeratedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toReviewDomainSlice converts a slice of ReviewModel to domain entities.
func toReviewDomainSlice(models []model.ReviewModel) []entity.Review {
	reviews := make([]entity.Review, 0, len(models))
	for i := range models {
		reviews = append(reviews, *toReviewDomain(&models[i]))
	}

	return reviews
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:              data.ID,
		OrderID:         data.OrderID,
		UserID:          data.UserID,
		ProductID:       data.ProductID,
		Rating:          data.Rating,
		Comment:         data.Comment,
		Images:          model.StringSliceJSON(data.Images),
		IsApproved:      data.IsApproved,
		IsRejected:      data.IsRejected,
		RejectionReason: data.RejectionReason,
		ModeratedBy:     data.ModeratedBy,
		ModeratedAt:     data.ModeratedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
