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

// paymentRepository implements the repository.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Create persists a new payment record in pending status.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPaymentInit.WrapMessage("processor intent already recorded")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// FindByID retrieves a payment by its local ID.
func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by id")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindByIntentID retrieves a payment by the processor-side intent ID.
func (repo *paymentRepository) FindByIntentID(ctx context.Context, intentID string) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("processor_intent_id = ?", intentID).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by intent id")
	}

	return toPaymentDomain(&paymentM), nil
}

// MarkSucceeded transitions a payment to succeeded. Already-succeeded rows
// are left untouched, which keeps repeated confirmations idempotent.
func (repo *paymentRepository) MarkSucceeded(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ? AND status <> ?", id, entity.PaymentStatusSucceeded.String()).
		Update("status", entity.PaymentStatusSucceeded.String()).Error; err != nil {
		return errors.Wrap(err, "failed to mark payment succeeded")
	}

	return nil
}

// MarkFailed transitions a payment to failed.
func (repo *paymentRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", id).
		Update("status", entity.PaymentStatusFailed.String()).Error; err != nil {
		return errors.Wrap(err, "failed to mark payment failed")
	}

	return nil
}

// LinkOrder attaches the settled order to the payment. The guard on order_id
// being null plus the unique index turn a concurrent double settlement into
// ErrPaymentAlreadyLinked for the loser.
func (repo *paymentRepository) LinkOrder(ctx context.Context, paymentID uuid.UUID, orderID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ? AND order_id IS NULL", paymentID).
		Update("order_id", orderID)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrPaymentAlreadyLinked
		}

		return errors.Wrap(result.Error, "failed to link order to payment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentAlreadyLinked
	}

	return nil
}

// FindUnsettled returns succeeded payments with no linked order created
// before the cutoff, oldest first.
func (repo *paymentRepository) FindUnsettled(ctx context.Context, before time.Time, limit int) ([]entity.Payment, error) {
	var paymentModels []model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND order_id IS NULL AND created_at < ?", entity.PaymentStatusSucceeded.String(), before).
		Order("created_at ASC").
		Limit(limit).
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find unsettled payments")
	}

	payments := make([]entity.Payment, 0, len(paymentModels))
	for i := range paymentModels {
		payments = append(payments, *toPaymentDomain(&paymentModels[i]))
	}

	return payments, nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:                data.ID,
		UserID:            data.UserID,
		OrderID:           data.OrderID,
		ProcessorIntentID: data.ProcessorIntentID,
		AmountCents:       data.AmountCents,
		Currency:          data.Currency,
		Status:            entity.PaymentStatus(data.Status),
		Metadata: entity.PaymentMetadata{
			AddressID:   data.Metadata.AddressID,
			PointsToUse: data.Metadata.PointsToUse,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:                data.ID,
		UserID:            data.UserID,
		OrderID:           data.OrderID,
		ProcessorIntentID: data.ProcessorIntentID,
		AmountCents:       data.AmountCents,
		Currency:          data.Currency,
		Status:            data.Status.String(),
		Metadata: model.PaymentMetadataJSON{
			AddressID:   data.Metadata.AddressID,
			PointsToUse: data.Metadata.PointsToUse,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
