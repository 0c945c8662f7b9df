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

// menuService implements the MenuUsecase interface.
type menuService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// MenuServiceParams holds dependencies for menuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// ListMenu returns every currently orderable product.
func (srv *menuService) ListMenu(ctx context.Context) ([]entity.Product, error) {
	products, err := srv.productRepo.ListAvailable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu")
	}

	return products, nil
}

// GetProduct loads one product, available or not.
func (srv *menuService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// CreateProduct adds a product to the catalog.
func (srv *menuService) CreateProduct(ctx context.Context, input *usecase.UpsertProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		PriceCents:  input.PriceCents,
		ImageURL:    input.ImageURL,
		IsAvailable: input.IsAvailable,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Product created",
		slog.Any("productID", product.ID),
		slog.String("name", product.Name),
	)

	return product, nil
}

// UpdateProduct replaces a product's catalog fields. Snapshots in placed
// orders are untouched.
func (srv *menuService) UpdateProduct(ctx context.Context, productID uuid.UUID, input *usecase.UpsertProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Category = input.Category
	product.PriceCents = input.PriceCents
	product.ImageURL = input.ImageURL
	product.IsAvailable = input.IsAvailable

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func validateProductInput(input *usecase.UpsertProductInput) error {
	if input.Name == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "product name is required")
	}
	if input.PriceCents <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "product price must be positive")
	}

	return nil
}
