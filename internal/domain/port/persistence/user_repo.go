package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/entity"
)

// UserRepository defines the credential storage operations.
// Users are insert-only: there is no Update or Delete.
type UserRepository interface {
	// Create stores a new user record
	//
	// Possible errors:
	// - ErrUserExists: If a user with the same username already exists
	// - ErrStorageUnavailable: If the storage substrate cannot be written
	Create(ctx context.Context, user *entity.User) error

	// GetByUsername retrieves a user by exact, case-sensitive username
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that username
	// - ErrStorageUnavailable: If the storage substrate cannot be read
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// Exists reports whether a user with that username is stored
	//
	// Possible errors:
	// - ErrStorageUnavailable: If the storage substrate cannot be read
	Exists(ctx context.Context, username string) (bool, error)
}
