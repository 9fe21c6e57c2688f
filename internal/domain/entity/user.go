package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
)

// MaxUsernameLength bounds the stored username, counted in characters
const MaxUsernameLength = 64

// User represents a registered identity. Users are never updated or deleted.
type User struct {
	Username     string    // Unique, case-sensitive identifier
	passwordHash string    // Salted one-way digest of the password (private)
	CreatedAt    time.Time // When the user registered
}

// NewUser creates a new user from an already hashed password
func NewUser(username, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: missing password digest", errs.ErrInvalidPassword)
	}

	return &User{
		Username:     username,
		passwordHash: passwordHash,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// RestoreUser rebuilds a user loaded from storage without re-validating it
func RestoreUser(username, passwordHash string, createdAt time.Time) *User {
	return &User{
		Username:     username,
		passwordHash: passwordHash,
		CreatedAt:    createdAt,
	}
}

// PasswordHash returns the stored digest (for repositories and verification)
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// ValidateUsername rejects blank and overly long usernames.
// Usernames are stored exactly as given; no trimming or case folding is applied.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username cannot be empty", errs.ErrInvalidUsername)
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return fmt.Errorf("%w: maximum %d characters allowed", errs.ErrInvalidUsername, MaxUsernameLength)
	}
	return nil
}
