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

// pointsRepository implements the repository.PointsRepository interface using GORM.
type pointsRepository struct {
	db *gorm.DB
}

// NewPointsRepository is the constructor for pointsRepository.
func NewPointsRepository(db *gorm.DB) repository.PointsRepository {
	return &pointsRepository{
		db: db,
	}
}

// CreateEntry appends a ledger entry.
func (repo *pointsRepository) CreateEntry(ctx context.Context, entry *entity.PointsEntry) error {
	entryM := fromPointsEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create points entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// BalanceByUser sums every ledger entry for the user.
func (repo *pointsRepository) BalanceByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var balance int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PointsEntryModel{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&balance).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum points balance")
	}

	return balance, nil
}

// ListByUser retrieves a page of the user's ledger entries, newest first.
func (repo *pointsRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.PointsEntry, error) {
	var entryModels []model.PointsEntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list points entries")
	}

	entries := make([]entity.PointsEntry, 0, len(entryModels))
	for i := range entryModels {
		entries = append(entries, *toPointsEntryDomain(&entryModels[i]))
	}

	return entries, nil
}

// ExpirableEarnedByUser aggregates, per user, earned points older than the
// cutoff net of already-posted expired entries. The expired entries are
// negative, so a plain sum over both types yields the remaining amount.
func (repo *pointsRepository) ExpirableEarnedByUser(ctx context.Context, before time.Time) ([]repository.UserPointsSummary, error) {
	var summaries []repository.UserPointsSummary

	if err := repo.db.WithContext(ctx).
		Model(&model.PointsEntryModel{}).
		Select("user_id, SUM(points) AS points").
		Where("(type = ? AND created_at < ?) OR type = ?",
			entity.PointsEntryEarned.String(), before, entity.PointsEntryExpired.String()).
		Group("user_id").
		Having("SUM(points) > 0").
		Scan(&summaries).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate expirable points")
	}

	return summaries, nil
}

// --- Mapper Functions ---

// toPointsEntryDomain converts a GORM PointsEntryModel to a domain PointsEntry entity.
func toPointsEntryDomain(data *model.PointsEntryModel) *entity.PointsEntry {
	if data == nil {
		return nil
	}

	return &entity.PointsEntry{
		ID:          data.ID,
		UserID:      data.UserID,
		Points:      data.Points,
		Type:        entity.PointsEntryType(data.Type),
		Description: data.Description,
		OrderID:     data.OrderID,
		CreatedAt:   data.CreatedAt,
	}
}

// fromPointsEntryDomain converts a domain PointsEntry entity to a GORM PointsEntryModel.
func fromPointsEntryDomain(data *entity.PointsEntry) *model.PointsEntryModel {
	if data == nil {
		return nil
	}

	return &model.PointsEntryModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Points:      data.Points,
		Type:        data.Type.String(),
		Description: data.Description,
		OrderID:     data.OrderID,
		CreatedAt:   data.CreatedAt,
	}
}
