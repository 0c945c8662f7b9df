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

// batchCreateChunkSize bounds the rows per multi-value insert.
const batchCreateChunkSize = 200

// notificationRepository implements the repository.NotificationRepository interface using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a single notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// BatchCreate persists notifications for many recipients in chunked inserts.
func (repo *notificationRepository) BatchCreate(ctx context.Context, notifications []entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]model.NotificationModel, 0, len(notifications))
	for i := range notifications {
		notificationModels = append(notificationModels, *fromNotificationDomain(&notifications[i]))
	}

	if err := repo.db.WithContext(ctx).
		CreateInBatches(notificationModels, batchCreateChunkSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notifications")
	}

	return nil
}

// ListByUser retrieves a page of the user's notifications, newest first.
func (repo *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Notification, error) {
	var notificationModels []model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications by user")
	}

	notifications := make([]entity.Notification, 0, len(notificationModels))
	for i := range notificationModels {
		notifications = append(notifications, *toNotificationDomain(&notificationModels[i]))
	}

	return notifications, nil
}

// MarkRead marks one of the user's notifications as read.
func (repo *notificationRepository) MarkRead(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ? AND is_read = ?", id, userID, false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		// Either missing, not owned by the user, or already read. Treat an
		// already-read row as success so the call stays idempotent.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.NotificationModel{}).
			Where("id = ? AND user_id = ?", id, userID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check notification existence")
		}
		if count == 0 {
			return repository.ErrNotificationNotFound
		}
	}

	return nil
}

// MarkAllRead marks every unread notification of the user as read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": time.Now(),
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark all notifications read")
	}

	return result.RowsAffected, nil
}

// CountUnread counts the user's unread notifications.
func (repo *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Body:      data.Body,
		Type:      entity.NotificationType(data.Type),
		OrderID:   data.OrderID,
		Data:      map[string]string(data.Data),
		IsRead:    data.IsRead,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Body:      data.Body,
		Type:      data.Type.String(),
		OrderID:   data.OrderID,
		Data:      model.StringMapJSON(data.Data),
		IsRead:    data.IsRead,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}
