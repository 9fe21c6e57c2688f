package credential

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
)

// Register creates a new user record holding a salted digest of the password
func (u *UseCase) Register(ctx context.Context, username, password string) error {
	if err := entity.ValidateUsername(username); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", errs.ErrInvalidPassword)
	}

	// Check if user already exists
	exists, err := u.userRepo.Exists(ctx, username)
	if err != nil {
		u.logger.Error("Failed to check user existence", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return err
	}
	if exists {
		return errs.ErrUserExists
	}

	digest, err := u.hasher.Hash(password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return err
	}

	user, err := entity.NewUser(username, digest, u.timeProvider)
	if err != nil {
		return err
	}

	// A concurrent registration of the same name surfaces here as ErrUserExists
	if err := u.userRepo.Create(ctx, user); err != nil {
		if !errs.IsUserExistsError(err) {
			u.logger.Error("Failed to create user", map[string]any{
				"username": username,
				"error":    err.Error(),
			})
		}
		return err
	}

	u.logger.Info("User registered", map[string]any{
		"username": username,
	})

	return nil
}
