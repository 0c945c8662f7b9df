package impl

import (
	"context"
	"log/slog"

	deliverycontext "maple/internal/delivery/context"
	"maple/internal/domain/entity"
	domainerrors "maple/internal/domain/errors"
	"maple/internal/domain/repository"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart loads the user's cart with a catalog-priced subtotal. Items whose
// product vanished from the catalog price at zero rather than failing the
// read; settlement rejects them anyway.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartOutput, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	var subtotal int64

	if !cart.IsEmpty() {
		ids := make([]uuid.UUID, 0, len(cart.Items))
		for _, item := range cart.Items {
			ids = append(ids, item.ProductID)
		}

		products, err := srv.productRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load cart products")
		}

		byID := productMapByID(products)
		for _, item := range cart.Items {
			product, ok := byID[item.ProductID]
			if !ok {
				continue
			}

			subtotal += unitPriceCents(product, item.Customizations) * int64(item.Quantity)
		}
	}

	return &usecase.CartOutput{
		Cart:          cart,
		SubtotalCents: subtotal,
	}, nil
}

// AddItem stages a product in the cart.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddCartItemInput) error {
	if input.Quantity <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be positive")
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return errors.Wrap(err, "failed to load product")
	}
	if !product.IsAvailable {
		return errors.Wrap(domainerrors.ErrProductUnavailable, "product is currently unavailable")
	}

	item := &entity.CartItem{
		ProductID:      input.ProductID,
		Quantity:       input.Quantity,
		Customizations: input.Customizations,
	}

	if err := srv.cartRepo.AddItem(ctx, input.UserID, item); err != nil {
		return errors.Wrap(err, "failed to add cart item")
	}

	srv.log(ctx).Debug("Cart item added",
		slog.Any("userID", input.UserID),
		slog.Any("productID", input.ProductID),
		slog.Int("quantity", input.Quantity),
	)

	return nil
}

// UpdateItemQuantity sets a staged item's quantity; zero removes it.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, input *usecase.UpdateCartItemInput) error {
	if input.Quantity < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "quantity must not be negative")
	}

	if err := srv.cartRepo.UpdateItemQuantity(ctx, input.UserID, input.ItemID, input.Quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "cart item not found")
		}

		return errors.Wrap(err, "failed to update cart item")
	}

	return nil
}

// RemoveItem removes a staged item.
func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := srv.cartRepo.RemoveItem(ctx, userID, itemID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "cart item not found")
		}

		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// ClearCart empties the cart.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := srv.cartRepo.ClearByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
