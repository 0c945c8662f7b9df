// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"maple/config"
	deliverycontext "maple/internal/delivery/context"
	"maple/internal/domain/constants"
	"maple/internal/domain/entity"
	domainerrors "maple/internal/domain/errors"
	"maple/internal/domain/repository"
	"maple/internal/domain/service"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager   repository.TransactionManager
	paymentRepo repository.PaymentRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	addressRepo repository.AddressRepository
	pointsRepo  repository.PointsRepository
	gateway     service.PaymentGateway
	publisher   service.EventPublisher
	payment     *config.PaymentConfig
	points      *config.PointsConfig
	reconcile   *config.ReconcileConfig
	logger      *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PaymentRepo repository.PaymentRepository
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	AddressRepo repository.AddressRepository
	PointsRepo  repository.PointsRepository
	Gateway     service.PaymentGateway
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:   params.TxManager,
		paymentRepo: params.PaymentRepo,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		addressRepo: params.AddressRepo,
		pointsRepo:  params.PointsRepo,
		gateway:     params.Gateway,
		publisher:   params.Publisher,
		payment:     params.Config.Payment,
		points:      params.Config.Points,
		reconcile:   params.Config.Reconcile,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateIntent prices the cart server-side, opens a payment intent with the
// processor and persists the local payment row.
func (srv *checkoutService) CreateIntent(ctx context.Context, input *usecase.CreateIntentInput) (*usecase.CreateIntentOutput, error) {
	currency := strings.ToUpper(input.Currency)
	if !slices.Contains(srv.payment.SupportedCurrencies, currency) {
		return nil, errors.Wrapf(domainerrors.ErrUnsupportedCurrency, "currency %q is not accepted", input.Currency)
	}

	if input.PointsToUse < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "points to use must not be negative")
	}
	if srv.points.MaxRedeemPerOrder > 0 && int64(input.PointsToUse) > srv.points.MaxRedeemPerOrder {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "at most %d points may be redeemed per order", srv.points.MaxRedeemPerOrder)
	}

	address, err := srv.addressRepo.FindByID(ctx, input.AddressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "delivery address not found")
		}

		return nil, errors.Wrap(err, "failed to load delivery address")
	}
	if address.UserID != input.UserID {
		return nil, errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "address belongs to another user")
	}

	totalCents, err := srv.priceCheckout(ctx, input.UserID, input.PointsToUse)
	if err != nil {
		return nil, err
	}

	intent, err := srv.gateway.CreateIntent(ctx, totalCents, currency, map[string]string{
		"user_id":    input.UserID.String(),
		"address_id": input.AddressID.String(),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create processor intent", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPaymentInit, "payment processor rejected the intent")
	}

	payment := &entity.Payment{
		UserID:            input.UserID,
		ProcessorIntentID: intent.ID,
		AmountCents:       totalCents,
		Currency:          currency,
		Status:            entity.PaymentStatusPending,
		Metadata: entity.PaymentMetadata{
			AddressID:   input.AddressID,
			PointsToUse: input.PointsToUse,
		},
	}

	if err := srv.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to persist payment row")
	}

	srv.log(ctx).Info("Payment intent created",
		slog.Any("userID", input.UserID),
		slog.String("intentID", intent.ID),
		slog.Int64("amountCents", totalCents),
	)

	return &usecase.CreateIntentOutput{
		PaymentID:    payment.ID,
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		AmountCents:  totalCents,
		Currency:     currency,
	}, nil
}

// priceCheckout recomputes the chargeable total for the user's current cart
// minus the redeemed points value.
func (srv *checkoutService) priceCheckout(ctx context.Context, userID uuid.UUID, pointsToUse int) (int64, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return 0, errors.Wrap(domainerrors.ErrCartEmpty, "cannot check out an empty cart")
	}

	if pointsToUse > 0 {
		balance, err := srv.pointsRepo.BalanceByUser(ctx, userID)
		if err != nil {
			return 0, errors.Wrap(err, "failed to load points balance")
		}
		if int64(pointsToUse) > balance {
			return 0, errors.Wrapf(domainerrors.ErrInsufficientPoints, "balance %d, requested %d", balance, pointsToUse)
		}
	}

	products, err := srv.loadCartProducts(ctx, srv.productRepo, cart)
	if err != nil {
		return 0, err
	}

	_, subtotal, err := priceCart(cart, products)
	if err != nil {
		return 0, err
	}

	total := subtotal - int64(pointsToUse)*srv.points.RedeemValueCents
	if total <= 0 {
		return 0, errors.Wrap(domainerrors.ErrValidationFailed, "redeemed points exceed the order subtotal")
	}

	return total, nil
}

func (srv *checkoutService) loadCartProducts(ctx context.Context, productRepo repository.ProductRepository, cart *entity.Cart) (map[uuid.UUID]*entity.Product, error) {
	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart products")
	}

	return productMapByID(products), nil
}

// ConfirmAndSettle verifies the intent with the processor, then runs the
// settlement transaction. Safe to call repeatedly for the same intent.
func (srv *checkoutService) ConfirmAndSettle(ctx context.Context, input *usecase.ConfirmAndSettleInput) (*usecase.ConfirmAndSettleOutput, error) {
	payment, err := srv.paymentRepo.FindByIntentID(ctx, input.IntentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPaymentNotFound, "unknown payment intent")
		}

		return nil, errors.Wrap(err, "failed to load payment")
	}

	if input.UserID != uuid.Nil && payment.UserID != input.UserID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "payment belongs to another user")
	}

	// Already settled: hand back the winner's order without touching the
	// processor again.
	if payment.OrderID != nil {
		order, err := srv.findOrderByPayment(ctx, payment.ID)
		if err != nil {
			return nil, err
		}

		return &usecase.ConfirmAndSettleOutput{Order: order}, nil
	}

	if payment.Status != entity.PaymentStatusSucceeded {
		if err := srv.confirmWithProcessor(ctx, payment); err != nil {
			return nil, err
		}
	}

	order, err := srv.settlePayment(ctx, payment)
	if err != nil {
		return nil, err
	}

	srv.publishOrderCreated(ctx, order)

	return &usecase.ConfirmAndSettleOutput{Order: order}, nil
}

// confirmWithProcessor retrieves the intent and fails closed on anything but
// an explicit succeeded status.
func (srv *checkoutService) confirmWithProcessor(ctx context.Context, payment *entity.Payment) error {
	confirmCtx := ctx
	if srv.payment.RequestTimeout > 0 {
		var cancel context.CancelFunc
		confirmCtx, cancel = context.WithTimeout(ctx, srv.payment.RequestTimeout)
		defer cancel()
	}

	intent, err := srv.gateway.RetrieveIntent(confirmCtx, payment.ProcessorIntentID)
	if err != nil {
		srv.log(ctx).Error("Failed to retrieve processor intent", slog.String("intentID", payment.ProcessorIntentID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPaymentConfirm, "could not verify the payment with the processor")
	}

	switch intent.Status {
	case service.ProcessorIntentSucceeded:
		if err := srv.paymentRepo.MarkSucceeded(ctx, payment.ID); err != nil {
			return errors.Wrap(err, "failed to mark payment succeeded")
		}
		payment.Status = entity.PaymentStatusSucceeded

		return nil
	case service.ProcessorIntentFailed:
		if err := srv.paymentRepo.MarkFailed(ctx, payment.ID); err != nil {
			srv.log(ctx).Error("Failed to mark payment failed", slog.String("intentID", payment.ProcessorIntentID), slog.Any("error", err))
		}

		return errors.Wrap(domainerrors.ErrPaymentConfirm, "the processor reported the charge as failed")
	default:
		return errors.Wrapf(domainerrors.ErrPaymentConfirm, "intent still in status %q", intent.Status)
	}
}

// settlePayment turns a succeeded payment into an order inside one database
// transaction. A concurrent duplicate settlement loses on the payment link
// and is resolved by returning the winner's order.
func (srv *checkoutService) settlePayment(ctx context.Context, payment *entity.Payment) (*entity.Order, error) {
	var settled *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := srv.settleInTx(ctx, repoFactory, payment)
		if err != nil {
			return err
		}
		settled = order

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateOrderSettlement) {
			srv.log(ctx).Warn("Lost settlement race, returning winner's order", slog.String("intentID", payment.ProcessorIntentID))

			return srv.findOrderByPayment(ctx, payment.ID)
		}

		srv.log(ctx).Error("Failed to execute settlement transaction", slog.String("intentID", payment.ProcessorIntentID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute settlement transaction")
	}

	srv.log(ctx).Info("Order settled",
		slog.Any("orderID", settled.ID),
		slog.String("orderNumber", settled.OrderNumber),
		slog.Any("userID", settled.UserID),
	)

	return settled, nil
}

func (srv *checkoutService) settleInTx(ctx context.Context, repoFactory repository.RepositoryFactory, payment *entity.Payment) (*entity.Order, error) {
	orderRepo := repoFactory.NewOrderRepository()
	userRepo := repoFactory.NewUserRepository()
	pointsRepo := repoFactory.NewPointsRepository()
	cartRepo := repoFactory.NewCartRepository()
	productRepo := repoFactory.NewProductRepository()
	addressRepo := repoFactory.NewAddressRepository()
	paymentRepo := repoFactory.NewPaymentRepository()

	// Idempotency: a previous settlement already produced the order.
	existing, err := orderRepo.FindByPaymentID(ctx, payment.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.Wrap(err, "failed to check for an existing order")
	}

	// Serialize settlements per user so the balance check and the ledger
	// postings cannot interleave.
	if err := userRepo.LockByID(ctx, payment.UserID); err != nil {
		return nil, errors.Wrap(err, "failed to lock user row")
	}

	pointsToUse := payment.Metadata.PointsToUse
	if pointsToUse > 0 {
		balance, err := pointsRepo.BalanceByUser(ctx, payment.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load points balance")
		}
		if int64(pointsToUse) > balance {
			return nil, errors.Wrapf(domainerrors.ErrInsufficientPoints, "balance %d, requested %d", balance, pointsToUse)
		}
	}

	cart, err := cartRepo.FindByUserID(ctx, payment.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return nil, errors.Wrap(domainerrors.ErrCartEmpty, "cart was emptied before settlement")
	}

	products, err := srv.loadCartProducts(ctx, productRepo, cart)
	if err != nil {
		return nil, err
	}

	items, subtotal, err := priceCart(cart, products)
	if err != nil {
		return nil, err
	}

	total := subtotal - int64(pointsToUse)*srv.points.RedeemValueCents
	if total != payment.AmountCents {
		return nil, errors.Wrapf(domainerrors.ErrAmountMismatch, "recomputed %d, charged %d", total, payment.AmountCents)
	}

	address, err := addressRepo.FindByID(ctx, payment.Metadata.AddressID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load delivery address for snapshot")
	}

	seq, err := orderRepo.NextOrderNumber(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw order number")
	}

	earned := srv.earnedPoints(total)

	order := &entity.Order{
		OrderNumber:   formatOrderNumber(seq),
		UserID:        payment.UserID,
		Status:        entity.OrderStatusPending,
		SubtotalCents: subtotal,
		TotalCents:    total,
		Currency:      payment.Currency,
		Address:       address.Snapshot(),
		PointsUsed:    pointsToUse,
		PointsEarned:  earned,
		Items:         items,
	}

	if err := orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to insert order")
	}

	if err := srv.postSettlementPoints(ctx, pointsRepo, order); err != nil {
		return nil, err
	}

	if err := paymentRepo.LinkOrder(ctx, payment.ID, order.ID); err != nil {
		if errors.Is(err, repository.ErrPaymentAlreadyLinked) {
			return nil, errors.Wrap(domainerrors.ErrDuplicateOrderSettlement, "payment already settled")
		}

		return nil, errors.Wrap(err, "failed to link payment to order")
	}

	if err := cartRepo.ClearByUserID(ctx, payment.UserID); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart")
	}

	return order, nil
}

// postSettlementPoints appends the used and earned ledger entries for a
// freshly settled order.
func (srv *checkoutService) postSettlementPoints(ctx context.Context, pointsRepo repository.PointsRepository, order *entity.Order) error {
	orderID := order.ID

	if order.PointsUsed > 0 {
		usedEntry := &entity.PointsEntry{
			UserID:      order.UserID,
			Points:      -order.PointsUsed,
			Type:        entity.PointsEntryUsed,
			Description: fmt.Sprintf("訂單 %s 折抵", order.OrderNumber),
			OrderID:     &orderID,
		}
		if err := pointsRepo.CreateEntry(ctx, usedEntry); err != nil {
			return errors.Wrap(err, "failed to post used points entry")
		}
	}

	if order.PointsEarned > 0 {
		earnedEntry := &entity.PointsEntry{
			UserID:      order.UserID,
			Points:      order.PointsEarned,
			Type:        entity.PointsEntryEarned,
			Description: fmt.Sprintf("訂單 %s 回饋", order.OrderNumber),
			OrderID:     &orderID,
		}
		if err := pointsRepo.CreateEntry(ctx, earnedEntry); err != nil {
			return errors.Wrap(err, "failed to post earned points entry")
		}
	}

	return nil
}

// earnedPoints derives the loyalty grant from the charged total. Accrual is
// per whole dollar of what the customer actually paid.
func (srv *checkoutService) earnedPoints(totalCents int64) int {
	return int((totalCents / 100) * srv.points.EarnRatePerDollar)
}

func (srv *checkoutService) findOrderByPayment(ctx context.Context, paymentID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, findErr := repoFactory.NewOrderRepository().FindByPaymentID(ctx, paymentID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load settled order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute settled order lookup")
	}

	return order, nil
}

// publishOrderCreated fans the new order out to staff devices. Publishing is
// advisory; a failure is logged and never unwinds the settlement.
func (srv *checkoutService) publishOrderCreated(ctx context.Context, order *entity.Order) {
	event := &service.DomainEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      constants.EventTypeOrderCreated,
		Title:     "新訂單",
		Body:      fmt.Sprintf("訂單 %s 已成立，共 %d 項商品", order.OrderNumber, len(order.Items)),
		OrderID:   order.ID.String(),
		Data: map[string]string{
			"order_number": order.OrderNumber,
			"total_cents":  fmt.Sprintf("%d", order.TotalCents),
		},
	}

	if err := srv.publisher.PublishDomainEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order created event", slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}

// ReconcileUnsettled re-settles succeeded payments that never got their
// order, typically after a crash between confirmation and settlement.
func (srv *checkoutService) ReconcileUnsettled(ctx context.Context) (int, error) {
	grace := srv.reconcile.GracePeriod
	batch := srv.reconcile.BatchSize
	if batch <= 0 {
		batch = 50
	}

	payments, err := srv.paymentRepo.FindUnsettled(ctx, time.Now().Add(-grace), batch)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list unsettled payments")
	}

	settledCount := 0

	for i := range payments {
		payment := payments[i]

		order, err := srv.settlePayment(ctx, &payment)
		if err != nil {
			srv.log(ctx).Error("Reconcile failed for payment",
				slog.Any("paymentID", payment.ID),
				slog.String("intentID", payment.ProcessorIntentID),
				slog.Any("error", err),
			)

			continue
		}

		srv.publishOrderCreated(ctx, order)
		settledCount++
	}

	if settledCount > 0 {
		srv.log(ctx).Info("Reconciled unsettled payments", slog.Int("count", settledCount))
	}

	return settledCount, nil
}

// formatOrderNumber renders a sequence value as the customer-facing order
// number.
func formatOrderNumber(seq int64) string {
	return fmt.Sprintf("ORD-%06d", seq)
}
