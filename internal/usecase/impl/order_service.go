package impl

import (
	"context"
	"fmt"
	"log/slog"

	"maple/config"
	deliverycontext "maple/internal/delivery/context"
	"maple/internal/domain/entity"
	domainerrors "maple/internal/domain/errors"
	"maple/internal/domain/repository"
	"maple/internal/domain/service"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager       repository.TransactionManager
	orderRepo       repository.OrderRepository
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	qrcodeSvc       service.QRCodeService
	logger          *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	OrderRepo       repository.OrderRepository
	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	QRCodeSvc       service.QRCodeService
	Config          *config.Config
	Logger          *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:       params.TxManager,
		orderRepo:       params.OrderRepo,
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		qrcodeSvc:       params.QRCodeSvc,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrder loads one order, enforcing ownership for customer callers.
func (srv *orderService) GetOrder(ctx context.Context, requesterID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if requesterID != uuid.Nil && order.UserID != requesterID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "order belongs to another user")
	}

	return order, nil
}

// ListOrders pages a user's own orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, input *usecase.ListOrdersInput) ([]entity.Order, error) {
	orders, err := srv.orderRepo.FindByUserID(ctx, input.UserID, normalizeLimit(input.Limit), input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListOrdersByStatus pages orders in a given status for the staff board.
func (srv *orderService) ListOrdersByStatus(ctx context.Context, input *usecase.ListOrdersByStatusInput) ([]entity.Order, error) {
	if !input.Status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown order status %q", input.Status)
	}

	orders, err := srv.orderRepo.ListByStatus(ctx, input.Status, normalizeLimit(input.Limit), input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by status")
	}

	return orders, nil
}

// UpdateStatus moves an order along the state machine. The status write, the
// owner's in-app notification and any cancellation reversal commit together;
// the push delivery afterwards is best-effort.
func (srv *orderService) UpdateStatus(ctx context.Context, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !input.To.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown order status %q", input.To)
	}

	var updated *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to load order")
		}

		from := order.Status
		if input.ExpectedFrom != "" && input.ExpectedFrom != from {
			return errors.Wrapf(domainerrors.ErrInvalidTransition, "order moved from %q to %q concurrently", input.ExpectedFrom, from)
		}
		if !from.CanTransitionTo(input.To) {
			return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot move order from %q to %q", from, input.To)
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, from, input.To); err != nil {
			if errors.Is(err, repository.ErrStaleOrderStatus) {
				return errors.Wrap(domainerrors.ErrInvalidTransition, "order status changed concurrently")
			}

			return errors.Wrap(err, "failed to update order status")
		}
		order.Status = input.To

		if input.To == entity.OrderStatusCancelled {
			if err := srv.reverseOrderPoints(ctx, repoFactory.NewPointsRepository(), order); err != nil {
				return err
			}
		}

		if err := srv.writeStatusNotification(ctx, repoFactory.NewNotificationRepository(), order); err != nil {
			return err
		}

		updated = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute order status transaction",
			slog.Any("orderID", input.OrderID),
			slog.Any("to", input.To),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute order status transaction")
	}

	srv.pushStatusChange(ctx, updated)

	srv.log(ctx).Info("Order status updated",
		slog.Any("orderID", updated.ID),
		slog.Any("status", updated.Status),
		slog.Any("adminID", input.AdminID),
	)

	return updated, nil
}

// reverseOrderPoints unwinds the settlement postings when an order is
// cancelled: the earned grant is clawed back and the redeemed points are
// returned, both as admin adjustments referencing the order.
func (srv *orderService) reverseOrderPoints(ctx context.Context, pointsRepo repository.PointsRepository, order *entity.Order) error {
	orderID := order.ID

	if order.PointsEarned > 0 {
		clawback := &entity.PointsEntry{
			UserID:      order.UserID,
			Points:      -order.PointsEarned,
			Type:        entity.PointsEntryAdminAdjustment,
			Description: fmt.Sprintf("訂單 %s 取消，收回回饋點數", order.OrderNumber),
			OrderID:     &orderID,
		}
		if err := pointsRepo.CreateEntry(ctx, clawback); err != nil {
			return errors.Wrap(err, "failed to claw back earned points")
		}
	}

	if order.PointsUsed > 0 {
		refund := &entity.PointsEntry{
			UserID:      order.UserID,
			Points:      order.PointsUsed,
			Type:        entity.PointsEntryAdminAdjustment,
			Description: fmt.Sprintf("訂單 %s 取消，退還折抵點數", order.OrderNumber),
			OrderID:     &orderID,
		}
		if err := pointsRepo.CreateEntry(ctx, refund); err != nil {
			return errors.Wrap(err, "failed to refund used points")
		}
	}

	return nil
}

func (srv *orderService) writeStatusNotification(ctx context.Context, notificationRepo repository.NotificationRepository, order *entity.Order) error {
	title, body := statusNotificationContent(order)
	orderID := order.ID

	notification := &entity.Notification{
		UserID:  order.UserID,
		Title:   title,
		Body:    body,
		Type:    entity.NotificationTypeOrderStatus,
		OrderID: &orderID,
		Data: map[string]string{
			"order_id":     order.ID.String(),
			"order_number": order.OrderNumber,
			"status":       order.Status.String(),
		},
	}

	if err := notificationRepo.Create(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to write status notification")
	}

	return nil
}

// pushStatusChange sends the status notification to the owner's active
// devices. Delivery failures are logged and swallowed.
func (srv *orderService) pushStatusChange(ctx context.Context, order *entity.Order) {
	devices, err := srv.deviceRepo.FindActiveByUserID(ctx, order.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to load devices for status push", slog.Any("userID", order.UserID), slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	title, body := statusNotificationContent(order)
	data := map[string]string{
		"order_id":     order.ID.String(),
		"order_number": order.OrderNumber,
		"status":       order.Status.String(),
	}

	_, _, invalidTokens, err := srv.notificationSvc.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		srv.log(ctx).Error("Failed to push status change", slog.Any("orderID", order.ID), slog.Any("error", err))

		return
	}

	if len(invalidTokens) > 0 {
		if err := srv.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			srv.log(ctx).Error("Failed to deactivate invalid tokens", slog.Any("error", err))
		}
	}
}

// PickupQRCode renders the order's pickup QR code as a PNG.
func (srv *orderService) PickupQRCode(ctx context.Context, requesterID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, requesterID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeSvc.GeneratePickupQRCode(order.ID, order.OrderNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return png, nil
}

// statusNotificationContent maps an order status to the customer-facing
// notification copy.
func statusNotificationContent(order *entity.Order) (title, body string) {
	switch order.Status {
	case entity.OrderStatusConfirmed:
		return "訂單已確認", fmt.Sprintf("您的訂單 %s 已由店家確認", order.OrderNumber)
	case entity.OrderStatusPreparing:
		return "餐點準備中", fmt.Sprintf("您的訂單 %s 正在準備中", order.OrderNumber)
	case entity.OrderStatusReady:
		return "餐點已完成", fmt.Sprintf("您的訂單 %s 已完成，即將出發配送", order.OrderNumber)
	case entity.OrderStatusDelivering:
		return "配送中", fmt.Sprintf("您的訂單 %s 正在配送途中", order.OrderNumber)
	case entity.OrderStatusDelivered:
		return "已送達", fmt.Sprintf("您的訂單 %s 已送達，歡迎留下評價", order.OrderNumber)
	case entity.OrderStatusCancelled:
		return "訂單已取消", fmt.Sprintf("您的訂單 %s 已取消，點數已退還", order.OrderNumber)
	default:
		return "訂單狀態更新", fmt.Sprintf("您的訂單 %s 狀態已更新為 %s", order.OrderNumber, order.Status)
	}
}

// normalizeLimit clamps a page size into a sane window.
func normalizeLimit(limit int) int {
	const defaultLimit, maxLimit = 20, 100

	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}

	return limit
}
