package impl

import (
	"context"
	"log/slog"
	"time"

	"maple/config"
	deliverycontext "maple/internal/delivery/context"
	"maple/internal/domain/entity"
	domainerrors "maple/internal/domain/errors"
	"maple/internal/domain/repository"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pointsExpiryAge is how long earned points stay redeemable.
const pointsExpiryAge = 365 * 24 * time.Hour

// pointsService implements the PointsUsecase interface.
type pointsService struct {
	txManager  repository.TransactionManager
	pointsRepo repository.PointsRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// PointsServiceParams holds dependencies for pointsService, injected by Fx.
type PointsServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	PointsRepo repository.PointsRepository
	UserRepo   repository.UserRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewPointsService is the constructor for pointsService.
func NewPointsService(params PointsServiceParams) usecase.PointsUsecase {
	return &pointsService{
		txManager:  params.TxManager,
		pointsRepo: params.PointsRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *pointsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetBalance sums the user's ledger.
func (srv *pointsService) GetBalance(ctx context.Context, userID uuid.UUID) (*usecase.PointsBalanceOutput, error) {
	balance, err := srv.pointsRepo.BalanceByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load points balance")
	}

	return &usecase.PointsBalanceOutput{Balance: balance}, nil
}

// GetHistory pages the user's ledger entries, newest first.
func (srv *pointsService) GetHistory(ctx context.Context, input *usecase.PointsHistoryInput) ([]entity.PointsEntry, error) {
	entries, err := srv.pointsRepo.ListByUser(ctx, input.UserID, normalizeLimit(input.Limit), input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list points history")
	}

	return entries, nil
}

// AdjustPoints posts a manual admin adjustment. The user row is locked so a
// negative adjustment cannot race a settlement past zero.
func (srv *pointsService) AdjustPoints(ctx context.Context, input *usecase.AdjustPointsInput) (*entity.PointsEntry, error) {
	if input.Points == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "adjustment must not be zero")
	}

	entry := &entity.PointsEntry{
		UserID:      input.UserID,
		Points:      input.Points,
		Type:        entity.PointsEntryAdminAdjustment,
		Description: input.Description,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		pointsRepo := repoFactory.NewPointsRepository()

		if err := userRepo.LockByID(ctx, input.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to lock user row")
		}

		if input.Points < 0 {
			balance, err := pointsRepo.BalanceByUser(ctx, input.UserID)
			if err != nil {
				return errors.Wrap(err, "failed to load points balance")
			}
			if balance+int64(input.Points) < 0 {
				return errors.Wrapf(domainerrors.ErrInsufficientPoints, "balance %d, adjustment %d", balance, input.Points)
			}
		}

		if err := pointsRepo.CreateEntry(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to post adjustment entry")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute points adjustment transaction",
			slog.Any("userID", input.UserID),
			slog.Int("points", input.Points),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute points adjustment transaction")
	}

	srv.log(ctx).Info("Points adjusted",
		slog.Any("userID", input.UserID),
		slog.Int("points", input.Points),
		slog.Any("adminID", input.AdminID),
	)

	return entry, nil
}

// ExpireOldPoints posts expired entries for earned points older than the
// retention window. Each user is settled in its own transaction so one
// failure never blocks the rest of the sweep.
func (srv *pointsService) ExpireOldPoints(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-pointsExpiryAge)

	summaries, err := srv.pointsRepo.ExpirableEarnedByUser(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to aggregate expirable points")
	}

	expiredUsers := 0

	for _, summary := range summaries {
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			userRepo := repoFactory.NewUserRepository()
			pointsRepo := repoFactory.NewPointsRepository()

			if err := userRepo.LockByID(ctx, summary.UserID); err != nil {
				return errors.Wrap(err, "failed to lock user row")
			}

			// The balance can be below the expirable amount when points were
			// spent since the aggregate ran. Never expire more than the user
			// still has.
			balance, err := pointsRepo.BalanceByUser(ctx, summary.UserID)
			if err != nil {
				return errors.Wrap(err, "failed to load points balance")
			}

			toExpire := min(summary.Points, balance)
			if toExpire <= 0 {
				return nil
			}

			entry := &entity.PointsEntry{
				UserID:      summary.UserID,
				Points:      -int(toExpire),
				Type:        entity.PointsEntryExpired,
				Description: "點數已逾期",
			}
			if err := pointsRepo.CreateEntry(ctx, entry); err != nil {
				return errors.Wrap(err, "failed to post expired entry")
			}

			return nil
		})
		if err != nil {
			srv.log(ctx).Error("Failed to expire points for user", slog.Any("userID", summary.UserID), slog.Any("error", err))

			continue
		}

		expiredUsers++
	}

	if expiredUsers > 0 {
		srv.log(ctx).Info("Expired aged points", slog.Int("users", expiredUsers))
	}

	return expiredUsers, nil
}
