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

// cartRepository implements the repository.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindByUserID retrieves the user's cart with its items. Users without a cart
// row get an empty cart back.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.Cart{UserID: userID, Items: []entity.CartItem{}}, nil
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// AddItem adds a product to the user's cart, creating the cart row on first
// use. An identical product and customization set merges quantities instead
// of adding a second line.
func (repo *cartRepository) AddItem(ctx context.Context, userID uuid.UUID, item *entity.CartItem) error {
	cartM, err := repo.ensureCart(ctx, userID)
	if err != nil {
		return err
	}

	newItem := fromCartItemDomain(item)
	newItem.CartID = cartM.ID

	var existing []model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartM.ID, item.ProductID).
		Find(&existing).Error; err != nil {
		return errors.Wrap(err, "failed to check existing cart items")
	}

	for i := range existing {
		if sameCustomizations(existing[i].Customizations, newItem.Customizations) {
			if err := repo.db.WithContext(ctx).
				Model(&model.CartItemModel{}).
				Where("id = ?", existing[i].ID).
				Update("quantity", gorm.Expr("quantity + ?", item.Quantity)).Error; err != nil {
				return errors.Wrap(err, "failed to merge cart item quantity")
			}

			item.ID = existing[i].ID
			item.CartID = cartM.ID

			return nil
		}
	}

	if err := repo.db.WithContext(ctx).Create(newItem).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	item.ID = newItem.ID
	item.CartID = cartM.ID
	item.CreatedAt = newItem.CreatedAt
	item.UpdatedAt = newItem.UpdatedAt

	return nil
}

// UpdateItemQuantity sets the quantity of a cart item. Quantity zero removes it.
func (repo *cartRepository) UpdateItemQuantity(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, quantity int) error {
	cartM, err := repo.findCart(ctx, userID)
	if err != nil {
		return err
	}

	if quantity == 0 {
		return repo.RemoveItem(ctx, userID, itemID)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND cart_id = ?", itemID, cartM.ID).
		Update("quantity", quantity)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart item quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// RemoveItem removes a single item from the user's cart.
func (repo *cartRepository) RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) error {
	cartM, err := repo.findCart(ctx, userID)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartM.ID).
		Delete(&model.CartItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// ClearByUserID removes every item from the user's cart.
func (repo *cartRepository) ClearByUserID(ctx context.Context, userID uuid.UUID) error {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No cart means nothing to clear.
			return nil
		}

		return errors.Wrap(err, "failed to find cart for clearing")
	}

	if err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartM.ID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart items")
	}

	return nil
}

// ensureCart returns the user's cart row, creating it when absent.
func (repo *cartRepository) ensureCart(ctx context.Context, userID uuid.UUID) (*model.CartModel, error) {
	var cartM model.CartModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cartM).Error
	if err == nil {
		return &cartM, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	cartM = model.CartModel{UserID: userID}
	if err := repo.db.WithContext(ctx).Create(&cartM).Error; err != nil {
		// A concurrent first add can win the insert race; fall back to the
		// existing row.
		if isUniqueConstraintViolation(err) {
			if findErr := repo.db.WithContext(ctx).
				Where("user_id = ?", userID).
				First(&cartM).Error; findErr != nil {
				return nil, errors.Wrap(findErr, "failed to find cart after insert race")
			}

			return &cartM, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	return &cartM, nil
}

// findCart returns the user's cart row or ErrCartItemNotFound when absent.
func (repo *cartRepository) findCart(ctx context.Context, userID uuid.UUID) (*model.CartModel, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return &cartM, nil
}

// sameCustomizations compares two customization sets by position.
func sameCustomizations(a, b model.CustomizationsJSON) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]entity.CartItem, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, *toCartItemDomain(&data.Items[i]))
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toCartItemDomain converts a GORM CartItemModel to a domain CartItem entity.
func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	customizations := make([]entity.CustomizationSelection, 0, len(data.Customizations))
	for _, c := range data.Customizations {
		customizations = append(customizations, entity.CustomizationSelection{
			Name:           c.Name,
			SurchargeCents: c.SurchargeCents,
		})
	}

	return &entity.CartItem{
		ID:             data.ID,
		CartID:         data.CartID,
		ProductID:      data.ProductID,
		Quantity:       data.Quantity,
		Customizations: customizations,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromCartItemDomain converts a domain CartItem entity to a GORM CartItemModel.
func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	customizations := make(model.CustomizationsJSON, 0, len(data.Customizations))
	for _, c := range data.Customizations {
		customizations = append(customizations, model.CustomizationJSON{
			Name:           c.Name,
			SurchargeCents: c.SurchargeCents,
		})
	}

	return &model.CartItemModel{
		ID:             data.ID,
		CartID:         data.CartID,
		ProductID:      data.ProductID,
		Quantity:       data.Quantity,
		Customizations: customizations,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
