package postgres

import (
	"context"

	"maple/internal/domain/entity"
	domainerrors "maple/internal/domain/errors"
	"maple/internal/domain/repository"
	"maple/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authRepository implements the repository.AuthRepository interface using GORM.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{
		db: db,
	}
}

// FindByProvider retrieves an authentication record by provider and provider-specific ID.
func (repo *authRepository) FindByProvider(ctx context.Context, provider entity.ProviderType, providerID string) (*entity.Authentication, error) {
	var authM model.AuthenticationModel

	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", string(provider), providerID).
		First(&authM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication by provider")
	}

	return toAuthDomain(&authM), nil
}

// FindByUserID retrieves all authentication methods registered for a user.
func (repo *authRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Authentication, error) {
	var authModels []model.AuthenticationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&authModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find authentications by user")
	}

	auths := make([]entity.Authentication, 0, len(authModels))
	for i := range authModels {
		auths = append(auths, *toAuthDomain(&authModels[i]))
	}

	return auths, nil
}

// Create persists a new authentication method.
func (repo *authRepository) Create(ctx context.Context, auth *entity.Authentication) error {
	authM := fromAuthDomain(auth)

	if err := repo.db.WithContext(ctx).Create(authM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	auth.ID = authM.ID
	auth.CreatedAt = authM.CreatedAt

	return nil
}

// UpdatePasswordHash replaces the stored credential for a password-based method.
func (repo *authRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthenticationModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update password hash")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAuthNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAuthDomain converts a GORM AuthenticationModel to a domain Authentication entity.
func toAuthDomain(data *model.AuthenticationModel) *entity.Authentication {
	if data == nil {
		return nil
	}

	return &entity.Authentication{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
	}
}

// fromAuthDomain converts a domain Authentication entity to a GORM AuthenticationModel.
func fromAuthDomain(data *entity.Authentication) *model.AuthenticationModel {
	if data == nil {
		return nil
	}

	return &model.AuthenticationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
	}
}
