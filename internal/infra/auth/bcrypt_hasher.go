// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	domainerrors "maple/internal/domain/errors"
	"maple/internal/domain/service"

	"github.com/pkg/errors"
)

const minPasswordLength = 8

// defaultForbiddenWords are substrings a password may not contain.
var defaultForbiddenWords = []string{"password", "admin", "qwerty", "letmein"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost           int
	forbiddenWords []string
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return NewBcryptHasherWithCost(bcrypt.DefaultCost)
}

// NewBcryptHasherWithCost creates a hasher with a custom bcrypt cost factor.
// Lower costs are useful in tests.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{
		cost:           cost,
		forbiddenWords: defaultForbiddenWords,
	}
}

// Hash validates password strength and generates a salted bcrypt hash.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength enforces the minimum password policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return errors.New("password must be at least 8 characters long")
	}
	if !h.hasLowercase(password) {
		return errors.New("password must contain at least one lowercase letter")
	}
	if !h.hasUppercase(password) {
		return errors.New("password must contain at least one uppercase letter")
	}
	if !h.hasNumbers(password) {
		return errors.New("password must contain at least one number")
	}
	if !h.hasSpecialChars(password) {
		return errors.New("password must contain at least one special character")
	}
	if h.containsForbiddenWords(password, h.forbiddenWords) {
		return errors.Wrap(domainerrors.ErrPasswordForbiddenWords, "password contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsUpper)
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLower)
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func (h *bcryptHasher) containsForbiddenWords(password string, forbiddenWords []string) bool {
	lowered := strings.ToLower(password)
	for _, word := range forbiddenWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}

	return false
}
