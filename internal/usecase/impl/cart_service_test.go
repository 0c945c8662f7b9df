package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"maple/internal/domain/entity"
	domainerrors "maple/internal/domain/errors"
	"maple/internal/domain/repository"
	mockRepo "maple/internal/mocks/repository"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      logger,
	})

	return cartServiceFixtures{
		service:     svc,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_GetCart_PricesFromCatalog(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	burgerID := uuid.New()
	latteID := uuid.New()

	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []entity.CartItem{
			{
				ID:        uuid.New(),
				ProductID: burgerID,
				Quantity:  2,
				Customizations: []entity.CustomizationSelection{
					{Name: "加起司", SurchargeCents: 150},
				},
			},
			{ID: uuid.New(), ProductID: latteID, Quantity: 1},
		},
	}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{burgerID, latteID}).
		Return([]entity.Product{
			{ID: burgerID, Name: "烤雞腿堡", PriceCents: 2100, IsAvailable: true},
			{ID: latteID, Name: "楓糖拿鐵", PriceCents: 550, IsAvailable: true},
		}, nil)

	output, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	// (2100 + 150) * 2 + 550
	assert.Equal(t, int64(5050), output.SubtotalCents)
	assert.Len(t, output.Cart.Items, 2)
}

func TestCartService_GetCart_MissingProductPricesAtZero(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	goneID := uuid.New()

	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items:  []entity.CartItem{{ID: uuid.New(), ProductID: goneID, Quantity: 3}},
	}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{goneID}).Return(nil, nil)

	output, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(0), output.SubtotalCents)
}

func TestCartService_GetCart_Empty(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Cart{ID: uuid.New(), UserID: userID}, nil)

	output, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(0), output.SubtotalCents)
	assert.True(t, output.Cart.IsEmpty())
}

func TestCartService_AddItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	input := &usecase.AddCartItemInput{
		UserID:    userID,
		ProductID: productID,
		Quantity:  2,
		Customizations: []entity.CustomizationSelection{
			{Name: "少冰", SurchargeCents: 0},
		},
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "楓糖拿鐵", PriceCents: 550, IsAvailable: true}, nil)
	fx.cartRepo.EXPECT().
		AddItem(ctx, userID, mock.AnythingOfType("*entity.CartItem")).
		Run(func(ctx context.Context, userID uuid.UUID, item *entity.CartItem) {
			assert.Equal(t, productID, item.ProductID)
			assert.Equal(t, 2, item.Quantity)
			assert.Len(t, item.Customizations, 1)
		}).
		Return(nil)

	err := fx.service.AddItem(ctx, input)

	assert.NoError(t, err)
}

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	for _, quantity := range []int{0, -1} {
		err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
			UserID:    uuid.New(),
			ProductID: uuid.New(),
			Quantity:  quantity,
		})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
		UserID:    uuid.New(),
		ProductID: productID,
		Quantity:  1,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_AddItem_ProductUnavailable(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "季節限定", IsAvailable: false}, nil)

	err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
		UserID:    uuid.New(),
		ProductID: productID,
		Quantity:  1,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductUnavailable))
}

func TestCartService_UpdateItemQuantity_RejectsNegative(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	err := fx.service.UpdateItemQuantity(ctx, &usecase.UpdateCartItemInput{
		UserID:   uuid.New(),
		ItemID:   uuid.New(),
		Quantity: -1,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_UpdateItemQuantity_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().
		UpdateItemQuantity(ctx, userID, itemID, 3).
		Return(repository.ErrCartItemNotFound)

	err := fx.service.UpdateItemQuantity(ctx, &usecase.UpdateCartItemInput{
		UserID:   userID,
		ItemID:   itemID,
		Quantity: 3,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCartService_RemoveItem_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().RemoveItem(ctx, userID, itemID).Return(repository.ErrCartItemNotFound)

	err := fx.service.RemoveItem(ctx, userID, itemID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCartService_ClearCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().ClearByUserID(ctx, userID).Return(nil)

	assert.NoError(t, fx.service.ClearCart(ctx, userID))
}
