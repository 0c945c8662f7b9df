package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	deliverycontext "maple/internal/delivery/context"
	"maple/internal/domain/entity"
	domainerrors "maple/internal/domain/errors"
	"maple/internal/domain/repository"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postalCodePattern matches Canadian postal codes like "M5V 3L9".
var postalCodePattern = regexp.MustCompile(`^[A-Za-z]\d[A-Za-z] ?\d[A-Za-z]\d$`)

// provinceCodes is the set of valid two-letter province and territory codes.
var provinceCodes = map[string]struct{}{
	"AB": {}, "BC": {}, "MB": {}, "NB": {}, "NL": {}, "NS": {},
	"NT": {}, "NU": {}, "ON": {}, "PE": {}, "QC": {}, "SK": {}, "YT": {},
}

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns the user's saved addresses, default first.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]entity.Address, error) {
	addresses, err := srv.addressRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// CreateAddress saves a new address. Marking it default clears the previous
// default in the same transaction.
func (srv *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.UpsertAddressInput) (*entity.Address, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}

	address := addressFromInput(userID, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		if address.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear previous default")
			}
		}

		if err := addressRepo.Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute address creation transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute address creation transaction")
	}

	return address, nil
}

// UpdateAddress replaces an address the user owns.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.UpsertAddressInput) (*entity.Address, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}

	var updated *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := srv.loadOwnedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		if input.IsDefault && !address.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear previous default")
			}
		}

		address.Label = input.Label
		address.Line1 = input.Line1
		address.Line2 = input.Line2
		address.City = input.City
		address.Province = strings.ToUpper(input.Province)
		address.PostalCode = strings.ToUpper(input.PostalCode)
		address.IsDefault = input.IsDefault

		if err := addressRepo.Update(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}

		updated = address

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute address update transaction", slog.Any("addressID", addressID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute address update transaction")
	}

	return updated, nil
}

// DeleteAddress removes an address the user owns.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		if _, err := srv.loadOwnedAddress(ctx, addressRepo, userID, addressID); err != nil {
			return err
		}

		if err := addressRepo.Delete(ctx, addressID); err != nil {
			return errors.Wrap(err, "failed to delete address")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute address deletion transaction")
	}

	return nil
}

func (srv *addressService) loadOwnedAddress(ctx context.Context, addressRepo repository.AddressRepository, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := addressRepo.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
		}

		return nil, errors.Wrap(err, "failed to load address")
	}
	if address.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "address belongs to another user")
	}

	return address, nil
}

func addressFromInput(userID uuid.UUID, input *usecase.UpsertAddressInput) *entity.Address {
	return &entity.Address{
		UserID:     userID,
		Label:      input.Label,
		Line1:      input.Line1,
		Line2:      input.Line2,
		City:       input.City,
		Province:   strings.ToUpper(input.Province),
		PostalCode: strings.ToUpper(input.PostalCode),
		Country:    "CA",
		IsDefault:  input.IsDefault,
	}
}

func validateAddressInput(input *usecase.UpsertAddressInput) error {
	if input.Line1 == "" || input.City == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "street and city are required")
	}

	if _, ok := provinceCodes[strings.ToUpper(input.Province)]; !ok {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown province code %q", input.Province)
	}

	if !postalCodePattern.MatchString(input.PostalCode) {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "invalid postal code %q", input.PostalCode)
	}

	return nil
}
