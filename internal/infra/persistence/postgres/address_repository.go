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

// addressRepository implements the repository.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// Create persists a new address for a user.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindByID retrieves a single address by its ID.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by id")
	}

	return toAddressDomain(&addressM), nil
}

// FindByUserID retrieves all addresses belonging to a user, default first.
func (repo *addressRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Address, error) {
	var addressModels []model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at ASC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	addresses := make([]entity.Address, 0, len(addressModels))
	for i := range addressModels {
		addresses = append(addresses, *toAddressDomain(&addressModels[i]))
	}

	return addresses, nil
}

// Update modifies an existing address.
func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]any{
			"label":       address.Label,
			"line1":       address.Line1,
			"line2":       address.Line2,
			"city":        address.City,
			"province":    address.Province,
			"postal_code": address.PostalCode,
			"country":     address.Country,
			"is_default":  address.IsDefault,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// Delete removes an address.
func (repo *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// ClearDefault unsets the default flag on every address the user has.
func (repo *addressRepository) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error; err != nil {
		return errors.Wrap(err, "failed to clear default address")
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:         data.ID,
		UserID:     data.UserID,
		Label:      data.Label,
		Line1:      data.Line1,
		Line2:      data.Line2,
		City:       data.City,
		Province:   data.Province,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		IsDefault:  data.IsDefault,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Label:      data.Label,
		Line1:      data.Line1,
		Line2:      data.Line2,
		City:       data.City,
		Province:   data.Province,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		IsDefault:  data.IsDefault,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
