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
	"maple/internal/domain/service"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a new customer account with email credentials.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		_, findErr := authRepo.FindByProvider(ctx, entity.ProviderTypeEmail, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		newUser := &entity.User{
			Name:  input.Name,
			Email: input.Email,
			Phone: input.Phone,
			Role:  entity.RoleCustomer,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail.String(),
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.Create(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{
		Record: usecase.UserRecord{
			State: usecase.UserRecordPersisted,
			User:  registeredUser,
		},
	}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	authRecord, err := srv.authRepo.FindByProvider(ctx, entity.ProviderTypeEmail, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// bcrypt is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	loggedInUser, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for login")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID, entity.Roles{loggedInUser.Role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeRefreshToken(ctx, loggedInUser.ID, refreshTokenString); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// storeRefreshToken persists a hashed refresh token, enforcing the active
// session cap by revoking older sessions when it is hit.
func (srv *userService) storeRefreshToken(ctx context.Context, userID uuid.UUID, refreshTokenString string) error {
	token := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if srv.maxActiveSessions <= 0 {
		if err := srv.refreshTokenRepo.Create(ctx, token); err != nil {
			return errors.Wrap(err, "failed to create refresh token")
		}

		return nil
	}

	// Cap enforcement locks the user row so two logins cannot both pass the
	// count check.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		if err := userRepo.LockByID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock user row")
		}

		active, err := refreshRepo.CountActiveByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if active >= int64(srv.maxActiveSessions) {
			srv.log(ctx).Info("Session limit reached, revoking existing sessions", slog.Any("userID", userID), slog.Int64("active", active))

			if err := refreshRepo.RevokeAllByUserID(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to revoke existing sessions")
			}
		}

		if err := refreshRepo.Create(ctx, token); err != nil {
			return errors.Wrap(err, "failed to create refresh token")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute session transaction")
	}

	return nil
}

// RefreshToken rotates a valid refresh token into a new token pair. The old
// token is revoked in the same transaction that admits the new one.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	var output *usecase.RefreshTokenOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		stored, err := refreshRepo.FindByTokenHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user.ID, entity.Roles{user.Role}.ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		if err := refreshRepo.Revoke(ctx, stored.ID); err != nil {
			return errors.Wrap(err, "failed to revoke rotated token")
		}

		if err := refreshRepo.Create(ctx, &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(newRefreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}); err != nil {
			return errors.Wrap(err, "failed to store rotated token")
		}

		output = &usecase.RefreshTokenOutput{
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return output, nil
}

// Logout revokes the presented refresh token.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	stored, err := srv.refreshTokenRepo.FindByTokenHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// Already revoked or expired. Logout is idempotent.
			return nil
		}

		return errors.Wrap(err, "failed to find refresh token")
	}

	if err := srv.refreshTokenRepo.Revoke(ctx, stored.ID); err != nil {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	srv.log(ctx).Info("Successfully logged out", slog.Any("userID", stored.UserID))

	return nil
}

// GetProfile loads the user's own profile.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to load user profile")
	}

	return user, nil
}

// ChangePassword verifies the old password, stores a new hash and revokes
// every active session so stolen refresh tokens die with the old password.
func (srv *userService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "new password does not meet security requirements")
	}

	auths, err := srv.authRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to load authentications")
	}

	var emailAuth *entity.Authentication

	for i := range auths {
		if auths[i].Provider == entity.ProviderTypeEmail.String() {
			emailAuth = &auths[i]

			break
		}
	}
	if emailAuth == nil {
		return errors.Wrap(domainerrors.ErrAuthNotFound, "no password credential on this account")
	}

	if !srv.hasher.Check(input.OldPassword, emailAuth.PasswordHash) {
		return errors.Wrap(domainerrors.ErrInvalidCredentials, "old password mismatch")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAuthRepository().UpdatePasswordHash(ctx, emailAuth.ID, newHash); err != nil {
			return errors.Wrap(err, "failed to update password hash")
		}

		if err := repoFactory.NewRefreshTokenRepository().RevokeAllByUserID(ctx, input.UserID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute password change transaction", slog.Any("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password change transaction")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", input.UserID))

	return nil
}

// DeleteAccount anonymizes the account and revokes all sessions. Orders and
// ledger entries survive under the anonymized identity.
func (srv *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Anonymize(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to anonymize user")
		}

		if err := repoFactory.NewRefreshTokenRepository().RevokeAllByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute account deletion transaction", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	srv.log(ctx).Info("Account anonymized", slog.Any("userID", userID))

	return nil
}
