package security

import (
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
	"github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts
const MaxPasswordBytes = 72

// BcryptHasher implements PasswordHasher with salted bcrypt digests
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given work factor.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) core.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns a salted digest of password
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password cannot be empty", errs.ErrInvalidPassword)
	}
	if len(password) > MaxPasswordBytes {
		return "", fmt.Errorf("%w: maximum %d bytes allowed", errs.ErrInvalidPassword, MaxPasswordBytes)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %v", errs.ErrInvalidPassword, err)
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether password matches digest.
// A mismatch is not an error; a malformed digest is.
// Passwords longer than MaxPasswordBytes never match, since bcrypt only reads the first 72 bytes.
func (h *BcryptHasher) Verify(digest, password string) (bool, error) {
	if len(password) > MaxPasswordBytes {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
