// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"maple/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRecordState tells the caller whether the registered user row is already
// durable. Registration runs in a single transaction and today always returns
// UserRecordPersisted; the pending state is reserved for deferred-write
// producers (bulk imports, replays) so their callers can branch on it without
// a contract change.
type UserRecordState string

const (
	// UserRecordPersisted means the user row is committed.
	UserRecordPersisted UserRecordState = "persisted"
	// UserRecordPendingPersist means the user row has an assigned ID but the
	// write has not committed yet. No current producer emits this state.
	UserRecordPendingPersist UserRecordState = "pending_persist"
)

// UserRecord pairs a user entity with its persistence state. Callers must
// branch on State instead of assuming the row is readable.
type UserRecord struct {
	State UserRecordState
	User  *entity.User
}

// IsPersisted reports whether the record is committed and readable.
func (r *UserRecord) IsPersisted() bool {
	return r.State == UserRecordPersisted
}

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the raw refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the raw refresh token of the session being ended.
type LogoutInput struct {
	RefreshToken string
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's record.
type RegisterOutput struct {
	Record UserRecord
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the re-issued access token. The refresh token
// itself is rotated, so the new one is returned as well.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// RegisterUser creates a new customer account with email credentials.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshToken rotates a valid refresh token into a new token pair.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// Logout revokes the presented refresh token.
	Logout(ctx context.Context, input *LogoutInput) error

	// GetProfile loads the user's own profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// ChangePassword verifies the old password and stores a new hash, then
	// revokes every other active session.
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	// DeleteAccount anonymizes the account and revokes all sessions. Orders
	// and ledger entries stay behind under the anonymized identity.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
