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
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface using GORM.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// UpsertByToken registers a device token for a user. An existing token row is
// reassigned to the caller and reactivated, so shared devices follow the most
// recent login.
func (repo *deviceRepository) UpsertByToken(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)
	deviceM.LastUsedAt = time.Now()

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "fcm_token"}},
			DoUpdates: clause.Assignments(map[string]any{
				"user_id":      deviceM.UserID,
				"platform":     deviceM.Platform,
				"is_active":    true,
				"last_used_at": deviceM.LastUsedAt,
				"updated_at":   time.Now(),
			}),
		}).
		Create(deviceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	device.ID = deviceM.ID
	device.IsActive = true
	device.LastUsedAt = deviceM.LastUsedAt
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindActiveByUserID retrieves the user's active device registrations.
func (repo *deviceRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]entity.UserDevice, error) {
	var deviceModels []model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("last_used_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return toDeviceDomainSlice(deviceModels), nil
}

// FindActiveByUserIDs retrieves active devices across a set of users.
func (repo *deviceRepository) FindActiveByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]entity.UserDevice, error) {
	if len(userIDs) == 0 {
		return []entity.UserDevice{}, nil
	}

	var deviceModels []model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND is_active = ?", userIDs, true).
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by users")
	}

	return toDeviceDomainSlice(deviceModels), nil
}

// DeactivateByTokens marks the given tokens inactive.
func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Update("is_active", false).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate devices by tokens")
	}

	return nil
}

// Deactivate marks a single device inactive.
func (repo *deviceRepository) Deactivate(ctx context.Context, userID uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("user_id = ? AND fcm_token = ?", userID, token).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM UserDeviceModel to a domain UserDevice entity.
func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:         data.ID,
		UserID:     data.UserID,
		FCMToken:   data.FCMToken,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		LastUsedAt: data.LastUsedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// toDeviceDomainSlice converts a slice of UserDeviceModel to domain entities.
func toDeviceDomainSlice(models []model.UserDeviceModel) []entity.UserDevice {
	devices := make([]entity.UserDevice, 0, len(models))
	for i := range models {
		devices = append(devices, *toDeviceDomain(&models[i]))
	}

	return devices
}

// fromDeviceDomain converts a domain UserDevice entity to a GORM UserDeviceModel.
func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:         data.ID,
		UserID:     data.UserID,
		FCMToken:   data.FCMToken,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		LastUsedAt: data.LastUsedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
