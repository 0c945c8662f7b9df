// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// Orders, points and reviews all hang off this identity, so a user is never
// hard-deleted while orders reference it; account deletion anonymizes instead.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's primary contact email, also the login identifier.
	Name      string    // The user's display name.
	Phone     string    // Optional contact phone number.
	Role      Role      // The user's role (customer or admin).
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// Authentication represents a single method of logging in (a credential).
// The storefront only issues email/password credentials, but the provider
// column keeps the table open for future identity providers.
type Authentication struct {
	ID             uuid.UUID // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID // Links this authentication method to the User it belongs to.
	Provider       string    // The authentication provider, e.g., "email".
	ProviderUserID string    // The user's unique ID from the provider; the email address for the email provider.
	PasswordHash   string    // Stores the bcrypt-hashed password, only used when the Provider is "email".
	CreatedAt      time.Time // Timestamp of when this authentication method was linked to the user account.
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // Stores a SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}

// ProviderType identifies an authentication provider.
type ProviderType string

// ProviderTypeEmail is the provider value for password-based credentials.
const ProviderTypeEmail ProviderType = "email"

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}
