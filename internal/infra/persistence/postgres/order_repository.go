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

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order together with its items.
// GORM's Create with associations inserts orders and order_items in one go.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateOrderSettlement
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range orderM.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

// FindByID retrieves an order with its items by ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUserID retrieves a page of a user's orders, newest first.
func (repo *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Order, error) {
	var orderModels []model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]entity.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, *toOrderDomain(&orderModels[i]))
	}

	return orders, nil
}

// FindByPaymentID retrieves the order settled from a payment, if any.
func (repo *orderRepository) FindByPaymentID(ctx context.Context, paymentID uuid.UUID) (*entity.Order, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", paymentID).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment for order lookup")
	}

	if paymentM.OrderID == nil {
		return nil, repository.ErrOrderNotFound
	}

	return repo.FindByID(ctx, *paymentM.OrderID)
}

// ListByStatus retrieves a page of orders in the given status, oldest first.
func (repo *orderRepository) ListByStatus(ctx context.Context, status entity.OrderStatus, limit, offset int) ([]entity.Order, error) {
	var orderModels []model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("status = ?", status.String()).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by status")
	}

	orders := make([]entity.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, *toOrderDomain(&orderModels[i]))
	}

	return orders, nil
}

// UpdateStatus moves an order from the expected current status to the new one
// in a single guarded update.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing order from a lost status race.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.OrderModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check order existence")
		}
		if count == 0 {
			return repository.ErrOrderNotFound
		}

		return repository.ErrStaleOrderStatus
	}

	return nil
}

// NextOrderNumber reserves the next value of the order number sequence.
func (repo *orderRepository) NextOrderNumber(ctx context.Context) (int64, error) {
	var number int64

	if err := repo.db.WithContext(ctx).
		Raw("SELECT nextval('order_number_seq')").
		Scan(&number).Error; err != nil {
		return 0, errors.Wrap(err, "failed to reserve order number")
	}

	return number, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, *toOrderItemDomain(&data.Items[i]))
	}

	return &entity.Order{
		ID:            data.ID,
		OrderNumber:   data.OrderNumber,
		UserID:        data.UserID,
		Status:        entity.OrderStatus(data.Status),
		SubtotalCents: data.SubtotalCents,
		TotalCents:    data.TotalCents,
		Currency:      data.Currency,
		Address: entity.AddressSnapshot{
			Label:      data.Address.Label,
			Line1:      data.Address.Line1,
			Line2:      data.Address.Line2,
			City:       data.Address.City,
			Province:   data.Address.Province,
			PostalCode: data.Address.PostalCode,
			Country:    data.Address.Country,
		},
		PointsUsed:   data.PointsUsed,
		PointsEarned: data.PointsEarned,
		Items:        items,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
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

	return &entity.OrderItem{
		ID:             data.ID,
		OrderID:        data.OrderID,
		ProductID:      data.ProductID,
		ProductName:    data.ProductName,
		UnitPriceCents: data.UnitPriceCents,
		Quantity:       data.Quantity,
		SubtotalCents:  data.SubtotalCents,
		Customizations: customizations,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for i := range data.Items {
		item := &data.Items[i]

		customizations := make(model.CustomizationsJSON, 0, len(item.Customizations))
		for _, c := range item.Customizations {
			customizations = append(customizations, model.CustomizationJSON{
				Name:           c.Name,
				SurchargeCents: c.SurchargeCents,
			})
		}

		items = append(items, model.OrderItemModel{
			ID:             item.ID,
			OrderID:        item.OrderID,
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       item.Quantity,
			SubtotalCents:  item.SubtotalCents,
			Customizations: customizations,
		})
	}

	return &model.OrderModel{
		ID:            data.ID,
		OrderNumber:   data.OrderNumber,
		UserID:        data.UserID,
		Status:        data.Status.String(),
		SubtotalCents: data.SubtotalCents,
		TotalCents:    data.TotalCents,
		Currency:      data.Currency,
		Address: model.AddressSnapshotJSON{
			Label:      data.Address.Label,
			Line1:      data.Address.Line1,
			Line2:      data.Address.Line2,
			City:       data.Address.City,
			Province:   data.Address.Province,
			PostalCode: data.Address.PostalCode,
			Country:    data.Address.Country,
		},
		PointsUsed:   data.PointsUsed,
		PointsEarned: data.PointsEarned,
		Items:        items,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
