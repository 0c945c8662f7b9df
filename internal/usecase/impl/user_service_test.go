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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	return createTestUserServiceWithSessionCap(t, 0)
}

func createTestUserServiceWithSessionCap(t *testing.T, maxActiveSessions int) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Auth: &config.AuthConfig{MaxActiveSessions: maxActiveSessions},
	}

	svc := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		AuthRepo:         authRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Config:           cfg,
		Logger:           logger,
	})

	return userServiceFixtures{
		service:          svc,
		txManager:        txManager,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindByProvider(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Authentication")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.True(t, output.Record.IsPersisted())
	assert.Equal(t, input.Email, output.Record.User.Email)
	assert.Equal(t, entity.RoleCustomer, output.Record.User.Role)
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindByProvider(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: uuid.New()}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered"))

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "short",
	}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(errors.New("password too short"))

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	user := &entity.User{
		ID:    uuid.New(),
		Email: input.Email,
		Role:  entity.RoleCustomer,
	}
	authRecord := &entity.Authentication{
		UserID:       user.ID,
		Provider:     entity.ProviderTypeEmail.String(),
		PasswordHash: "hashed_password",
	}

	fx.authRepo.EXPECT().
		FindByProvider(ctx, entity.ProviderTypeEmail, input.Email).
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"customer"}).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)

	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, user.ID, token.UserID)
			assert.Equal(t, "refresh_token_hash", token.TokenHash)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong",
	}

	authRecord := &entity.Authentication{
		UserID:       uuid.New(),
		Provider:     entity.ProviderTypeEmail.String(),
		PasswordHash: "hashed_password",
	}

	fx.authRepo.EXPECT().
		FindByProvider(ctx, entity.ProviderTypeEmail, input.Email).
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	}

	fx.authRepo.EXPECT().
		FindByProvider(ctx, entity.ProviderTypeEmail, input.Email).
		Return(nil, repository.ErrAuthNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_SessionCapRevokesOlderSessions(t *testing.T) {
	fx := createTestUserServiceWithSessionCap(t, 2)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	user := &entity.User{ID: uuid.New(), Email: input.Email, Role: entity.RoleCustomer}
	authRecord := &entity.Authentication{
		UserID:       user.ID,
		Provider:     entity.ProviderTypeEmail.String(),
		PasswordHash: "hashed_password",
	}

	fx.authRepo.EXPECT().
		FindByProvider(ctx, entity.ProviderTypeEmail, input.Email).
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"customer"}).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			mockUserRepo.EXPECT().LockByID(ctx, user.ID).Return(nil)
			mockRefreshRepo.EXPECT().CountActiveByUserID(ctx, user.ID).Return(2, nil)
			mockRefreshRepo.EXPECT().RevokeAllByUserID(ctx, user.ID).Return(nil)
			mockRefreshRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "refresh_token", output.RefreshToken)
}

func TestUserService_RefreshToken_RotatesToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RefreshTokenInput{RefreshToken: "old_refresh_token"}

	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
	stored := &entity.RefreshToken{
		ID:     uuid.New(),
		UserID: user.ID,
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(&service.Claims{UserID: user.ID, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("old_refresh_token").Return("old_hash")
	fx.tokenService.EXPECT().HashToken("new_refresh_token").Return("new_hash")
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"customer"}).
		Return("new_access_token", "new_refresh_token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().FindByTokenHash(ctx, "old_hash").Return(stored, nil)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockRefreshRepo.EXPECT().Revoke(ctx, stored.ID).Return(nil)
			mockRefreshRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(ctx context.Context, token *entity.RefreshToken) {
					assert.Equal(t, "new_hash", token.TokenHash)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RefreshToken(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "new_access_token", output.AccessToken)
	assert.Equal(t, "new_refresh_token", output.RefreshToken)
}

func TestUserService_RefreshToken_Invalid(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RefreshTokenInput{RefreshToken: "garbage"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(nil, errors.New("token is malformed"))

	output, err := fx.service.RefreshToken(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_Idempotent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LogoutInput{RefreshToken: "already_revoked"}

	fx.tokenService.EXPECT().HashToken("already_revoked").Return("revoked_hash")
	fx.refreshTokenRepo.EXPECT().
		FindByTokenHash(ctx, "revoked_hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, input)

	assert.NoError(t, err)
}

func TestUserService_ChangePassword_RevokesAllSessions(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.ChangePasswordInput{
		UserID:      uuid.New(),
		OldPassword: "OldPassword123!",
		NewPassword: "NewPassword456!",
	}

	emailAuth := entity.Authentication{
		ID:           uuid.New(),
		UserID:       input.UserID,
		Provider:     entity.ProviderTypeEmail.String(),
		PasswordHash: "old_hash",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.NewPassword).Return(nil)
	fx.authRepo.EXPECT().
		FindByUserID(ctx, input.UserID).
		Return([]entity.Authentication{emailAuth}, nil)
	fx.hasher.EXPECT().Check(input.OldPassword, emailAuth.PasswordHash).Return(true)
	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			mockAuthRepo.EXPECT().UpdatePasswordHash(ctx, emailAuth.ID, "new_hash").Return(nil)
			mockRefreshRepo.EXPECT().RevokeAllByUserID(ctx, input.UserID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ChangePassword(ctx, input)

	assert.NoError(t, err)
}

func TestUserService_ChangePassword_OldPasswordMismatch(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.ChangePasswordInput{
		UserID:      uuid.New(),
		OldPassword: "wrong",
		NewPassword: "NewPassword456!",
	}

	emailAuth := entity.Authentication{
		ID:           uuid.New(),
		UserID:       input.UserID,
		Provider:     entity.ProviderTypeEmail.String(),
		PasswordHash: "old_hash",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.NewPassword).Return(nil)
	fx.authRepo.EXPECT().
		FindByUserID(ctx, input.UserID).
		Return([]entity.Authentication{emailAuth}, nil)
	fx.hasher.EXPECT().Check(input.OldPassword, emailAuth.PasswordHash).Return(false)

	err := fx.service.ChangePassword(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_DeleteAccount_AnonymizesAndRevokes(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			mockUserRepo.EXPECT().Anonymize(ctx, userID).Return(nil)
			mockRefreshRepo.EXPECT().RevokeAllByUserID(ctx, userID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteAccount(ctx, userID)

	assert.NoError(t, err)
}
