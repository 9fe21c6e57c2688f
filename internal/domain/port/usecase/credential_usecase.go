package usecase

import (
	"context"
)

// CredentialUseCase defines user registration and login verification
type CredentialUseCase interface {
	// Register stores a new user with a hashed password.
	// Returns ErrUserExists when the username is taken.
	Register(ctx context.Context, username, password string) error

	// Authenticate reports whether the username/password pair matches a stored user.
	// Unknown users and wrong passwords both yield false with a nil error.
	Authenticate(ctx context.Context, username, password string) (bool, error)

	// Exists checks if a user is registered under the given username
	Exists(ctx context.Context, username string) (bool, error)
}
