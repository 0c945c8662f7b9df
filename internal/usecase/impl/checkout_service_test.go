package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"maple/config"
	"maple/internal/domain/entity"
	domainerrors "maple/internal/domain/errors"
	"maple/internal/domain/repository"
	"maple/internal/domain/service"
	mockRepo "maple/internal/mocks/repository"
	mockSvc "maple/internal/mocks/service"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service     usecase.CheckoutUsecase
	txManager   *mockRepo.MockTransactionManager
	paymentRepo *mockRepo.MockPaymentRepository
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
	addressRepo *mockRepo.MockAddressRepository
	pointsRepo  *mockRepo.MockPointsRepository
	gateway     *mockSvc.MockPaymentGateway
	publisher   *mockSvc.MockEventPublisher
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	pointsRepo := mockRepo.NewMockPointsRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Payment: &config.PaymentConfig{
			SupportedCurrencies: []string{"CAD"},
			RequestTimeout:      time.Second,
		},
		Points: &config.PointsConfig{
			EarnRatePerDollar: 1,
			RedeemValueCents:  1,
			MaxRedeemPerOrder: 1000,
		},
		Reconcile: &config.ReconcileConfig{
			GracePeriod: 5 * time.Minute,
			BatchSize:   10,
		},
	}

	svc := NewCheckoutService(CheckoutServiceParams{
		TxManager:   txManager,
		PaymentRepo: paymentRepo,
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		AddressRepo: addressRepo,
		PointsRepo:  pointsRepo,
		Gateway:     gateway,
		Publisher:   publisher,
		Config:      cfg,
		Logger:      logger,
	})

	return checkoutServiceFixtures{
		service:     svc,
		txManager:   txManager,
		paymentRepo: paymentRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		addressRepo: addressRepo,
		pointsRepo:  pointsRepo,
		gateway:     gateway,
		publisher:   publisher,
	}
}

// checkoutScenario is the shared test shape: a $42.00 cart paid with 200
// points, leaving a $40.00 charge that earns 40 points.
type checkoutScenario struct {
	userID    uuid.UUID
	addressID uuid.UUID
	productID uuid.UUID
	cart      *entity.Cart
	products  []entity.Product
	address   *entity.Address
}

func newCheckoutScenario() checkoutScenario {
	userID := uuid.New()
	addressID := uuid.New()
	productID := uuid.New()

	return checkoutScenario{
		userID:    userID,
		addressID: addressID,
		productID: productID,
		cart: &entity.Cart{
			UserID: userID,
			Items: []entity.CartItem{
				{ProductID: productID, Quantity: 2},
			},
		},
		products: []entity.Product{
			{ID: productID, Name: "烤雞腿堡", PriceCents: 2100, IsAvailable: true},
		},
		address: &entity.Address{
			ID:         addressID,
			UserID:     userID,
			Line1:      "100 Queen St W",
			City:       "Toronto",
			Province:   "ON",
			PostalCode: "M5H 2N2",
			Country:    "CA",
		},
	}
}

func (s checkoutScenario) pendingPayment() *entity.Payment {
	return &entity.Payment{
		ID:                uuid.New(),
		UserID:            s.userID,
		ProcessorIntentID: "pi_test_123",
		AmountCents:       4000,
		Currency:          "CAD",
		Status:            entity.PaymentStatusPending,
		Metadata: entity.PaymentMetadata{
			AddressID:   s.addressID,
			PointsToUse: 200,
		},
	}
}

// expectSettlement wires a repository factory for one successful settlement
// of the scenario's payment and returns a pointer to the captured ledger
// entries.
func (s checkoutScenario) expectSettlement(t *testing.T, ctx context.Context, payment *entity.Payment, seq int64) (*mockRepo.MockRepositoryFactory, *[]*entity.PointsEntry) {
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPointsRepo := mockRepo.NewMockPointsRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockAddressRepo := mockRepo.NewMockAddressRepository(t)
	mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

	mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewPointsRepository().Return(mockPointsRepo)
	mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
	mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
	mockFactory.EXPECT().NewAddressRepository().Return(mockAddressRepo)
	mockFactory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)

	mockOrderRepo.EXPECT().
		FindByPaymentID(ctx, payment.ID).
		Return(nil, repository.ErrOrderNotFound)

	mockUserRepo.EXPECT().LockByID(ctx, s.userID).Return(nil)
	mockPointsRepo.EXPECT().BalanceByUser(ctx, s.userID).Return(500, nil)

	mockCartRepo.EXPECT().FindByUserID(ctx, s.userID).Return(s.cart, nil)
	mockProductRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{s.productID}).Return(s.products, nil)
	mockAddressRepo.EXPECT().FindByID(ctx, s.addressID).Return(s.address, nil)

	mockOrderRepo.EXPECT().NextOrderNumber(ctx).Return(seq, nil)
	mockOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	entries := &[]*entity.PointsEntry{}
	mockPointsRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.PointsEntry")).
		Run(func(ctx context.Context, entry *entity.PointsEntry) {
			*entries = append(*entries, entry)
		}).
		Return(nil)

	mockPaymentRepo.EXPECT().
		LinkOrder(ctx, payment.ID, mock.AnythingOfType("uuid.UUID")).
		Return(nil)
	mockCartRepo.EXPECT().ClearByUserID(ctx, s.userID).Return(nil)

	return mockFactory, entries
}

func TestCheckoutService_CreateIntent_Success(t *testing.T) {
	fx := createTestCheckoutService(t)
	scenario := newCheckoutScenario()

	ctx := context.Background()
	input := &usecase.CreateIntentInput{
		UserID:      scenario.userID,
		AddressID:   scenario.addressID,
		PointsToUse: 200,
		Currency:    "cad",
	}

	fx.addressRepo.EXPECT().FindByID(ctx, scenario.addressID).Return(scenario.address, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, scenario.userID).Return(scenario.cart, nil)
	fx.pointsRepo.EXPECT().BalanceByUser(ctx, scenario.userID).Return(500, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{scenario.productID}).Return(scenario.products, nil)

	fx.gateway.EXPECT().
		CreateIntent(ctx, int64(4000), "CAD", map[string]string{
			"user_id":    scenario.userID.String(),
			"address_id": scenario.addressID.String(),
		}).
		Return(&service.ProcessorIntent{
			ID:           "pi_test_123",
			ClientSecret: "pi_test_123_secret",
			AmountCents:  4000,
			Currency:     "CAD",
			Status:       service.ProcessorIntentPending,
		}, nil)

	fx.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		Run(func(ctx context.Context, payment *entity.Payment) {
			payment.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.CreateIntent(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "pi_test_123", output.IntentID)
	assert.Equal(t, int64(4000), output.AmountCents)
	assert.Equal(t, "CAD", output.Currency)
}

func TestCheckoutService_CreateIntent_UnsupportedCurrency(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	input := &usecase.CreateIntentInput{
		UserID:    uuid.New(),
		AddressID: uuid.New(),
		Currency:  "USD",
	}

	output, err := fx.service.CreateIntent(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedCurrency))
}

func TestCheckoutService_CreateIntent_InsufficientPoints(t *testing.T) {
	fx := createTestCheckoutService(t)
	scenario := newCheckoutScenario()

	ctx := context.Background()
	input := &usecase.CreateIntentInput{
		UserID:      scenario.userID,
		AddressID:   scenario.addressID,
		PointsToUse: 200,
		Currency:    "CAD",
	}

	fx.addressRepo.EXPECT().FindByID(ctx, scenario.addressID).Return(scenario.address, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, scenario.userID).Return(scenario.cart, nil)
	fx.pointsRepo.EXPECT().BalanceByUser(ctx, scenario.userID).Return(100, nil)

	output, err := fx.service.CreateIntent(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientPoints))
}

func TestCheckoutService_CreateIntent_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	scenario := newCheckoutScenario()

	ctx := context.Background()
	input := &usecase.CreateIntentInput{
		UserID:    scenario.userID,
		AddressID: scenario.addressID,
		Currency:  "CAD",
	}

	fx.addressRepo.EXPECT().FindByID(ctx, scenario.addressID).Return(scenario.address, nil)
	fx.cartRepo.EXPECT().
		FindByUserID(ctx, scenario.userID).
		Return(&entity.Cart{UserID: scenario.userID}, nil)

	output, err := fx.service.CreateIntent(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}

func TestCheckoutService_CreateIntent_AddressOwnership(t *testing.T) {
	fx := createTestCheckoutService(t)
	scenario := newCheckoutScenario()

	ctx := context.Background()
	input := &usecase.CreateIntentInput{
		UserID:    uuid.New(),
		AddressID: scenario.addressID,
		Currency:  "CAD",
	}

	fx.addressRepo.EXPECT().FindByID(ctx, scenario.addressID).Return(scenario.address, nil)

	output, err := fx.service.CreateIntent(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressOwnershipViolation))
}

func TestCheckoutService_ConfirmAndSettle_Success(t *testing.T) {
	fx := createTestCheckoutService(t)
	scenario := newCheckoutScenario()
	payment := scenario.pendingPayment()

	ctx := context.Background()
	input := &usecase.ConfirmAndSettleInput{
		UserID:   scenario.userID,
		IntentID: payment.ProcessorIntentID,
	}

	fx.paymentRepo.EXPECT().FindByIntentID(ctx, payment.ProcessorIntentID).Return(payment, nil)

	// RetrieveIntent runs under a derived timeout context.
	fx.gateway.EXPECT().
		RetrieveIntent(mock.Anything, payment.ProcessorIntentID).
		Return(&service.ProcessorIntent{
			ID:     payment.ProcessorIntentID,
			Status: service.ProcessorIntentSucceeded,
		}, nil)
	fx.paymentRepo.EXPECT().MarkSucceeded(ctx, payment.ID).Return(nil)

	var entries *[]*entity.PointsEntry

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			var mockFactory *mockRepo.MockRepositoryFactory
			mockFactory, entries = scenario.expectSettlement(t, ctx, payment, 7)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	output, err := fx.service.ConfirmAndSettle(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output.Order)
	assert.Equal(t, "ORD-000007", output.Order.OrderNumber)
	assert.Equal(t, entity.OrderStatusPending, output.Order.Status)
	assert.Equal(t, int64(4200), output.Order.SubtotalCents)
	assert.Equal(t, int64(4000), output.Order.TotalCents)
	assert.Equal(t, 200, output.Order.PointsUsed)
	assert.Equal(t, 40, output.Order.PointsEarned)

	require.Len(t, *entries, 2)
	used, earned := (*entries)[0], (*entries)[1]
	assert.Equal(t, -200, used.Points)
	assert.Equal(t, entity.PointsEntryUsed, used.Type)
	assert.Equal(t, 40, earned.Points)
	assert.Equal(t, entity.PointsEntryEarned, earned.Type)
}

func TestCheckoutService_ConfirmAndSettle_Idempotent(t *testing.T) {
	fx := createTestCheckoutService(t)
	scenario := newCheckoutScenario()

	payment := scenario.pendingPayment()
	orderID := uuid.New()
	payment.OrderID = &orderID
	payment.Status = entity.PaymentStatusSucceeded

	existing := &entity.Order{
		ID:          orderID,
		OrderNumber: "ORD-000007",
		UserID:      scenario.userID,
		Status:      entity.OrderStatusConfirmed,
	}

	ctx := context.Background()
	input := &usecase.ConfirmAndSettleInput{
		UserID:   scenario.userID,
		IntentID: payment.ProcessorIntentID,
	}

	fx.paymentRepo.EXPECT().FindByIntentID(ctx, payment.ProcessorIntentID).Return(payment, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByPaymentID(ctx, payment.ID).Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.ConfirmAndSettle(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, existing, output.Order)
}

func TestCheckoutService_ConfirmAndSettle_DuplicateRaceReturnsWinner(t *testing.T) {
	fx := createTestCheckoutService(t)
	scenario := newCheckoutScenario()

	payment := scenario.pendingPayment()
	payment.Status = entity.PaymentStatusSucceeded

	winner := &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-000008",
		UserID:      scenario.userID,
		Status:      entity.OrderStatusPending,
	}

	ctx := context.Background()
	input := &usecase.ConfirmAndSettleInput{
		UserID:   scenario.userID,
		IntentID: payment.ProcessorIntentID,
	}

	fx.paymentRepo.EXPECT().FindByIntentID(ctx, payment.ProcessorIntentID).Return(payment, nil)

	// The settlement transaction loses the race on the payment link.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.Wrap(domainerrors.ErrDuplicateOrderSettlement, "payment already settled")).
		Once()

	// The loser refetches the winner's order.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByPaymentID(ctx, payment.ID).Return(winner, nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	fx.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	output, err := fx.service.ConfirmAndSettle(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, winner, output.Order)
}

func TestCheckoutService_ConfirmAndSettle_ProcessorFailed(t *testing.T) {
	fx := createTestCheckoutService(t)
	scenario := newCheckoutScenario()
	payment := scenario.pendingPayment()

	ctx := context.Background()
	input := &usecase.ConfirmAndSettleInput{
		UserID:   scenario.userID,
		IntentID: payment.ProcessorIntentID,
	}

	fx.paymentRepo.EXPECT().FindByIntentID(ctx, payment.ProcessorIntentID).Return(payment, nil)
	fx.gateway.EXPECT().
		RetrieveIntent(mock.Anything, payment.ProcessorIntentID).
		Return(&service.ProcessorIntent{
			ID:     payment.ProcessorIntentID,
			Status: service.ProcessorIntentFailed,
		}, nil)
	fx.paymentRepo.EXPECT().MarkFailed(ctx, payment.ID).Return(nil)

	output, err := fx.service.ConfirmAndSettle(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentConfirm))
}

func TestCheckoutService_ConfirmAndSettle_Forbidden(t *testing.T) {
	fx := createTestCheckoutService(t)
	scenario := newCheckoutScenario()
	payment := scenario.pendingPayment()

	ctx := context.Background()
	input := &usecase.ConfirmAndSettleInput{
		UserID:   uuid.New(),
		IntentID: payment.ProcessorIntentID,
	}

	fx.paymentRepo.EXPECT().FindByIntentID(ctx, payment.ProcessorIntentID).Return(payment, nil)

	output, err := fx.service.ConfirmAndSettle(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCheckoutService_ReconcileUnsettled_ContinuesPastFailures(t *testing.T) {
	fx := createTestCheckoutService(t)
	scenario := newCheckoutScenario()

	broken := scenario.pendingPayment()
	broken.Status = entity.PaymentStatusSucceeded
	recoverable := scenario.pendingPayment()
	recoverable.Status = entity.PaymentStatusSucceeded

	ctx := context.Background()

	fx.paymentRepo.EXPECT().
		FindUnsettled(ctx, mock.AnythingOfType("time.Time"), 10).
		Return([]entity.Payment{*broken, *recoverable}, nil)

	// First payment fails inside the transaction and is skipped.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected")).
		Once()

	// Second payment settles.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory, _ := scenario.expectSettlement(t, ctx, recoverable, 9)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	fx.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	settled, err := fx.service.ReconcileUnsettled(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, settled)
}
