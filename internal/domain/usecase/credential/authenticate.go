package credential

import (
	"context"
	"fmt"

	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
)

// Authenticate reports whether the username exists and the password matches its stored digest.
// Unknown users and wrong passwords both yield false with a nil error.
func (u *UseCase) Authenticate(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			u.logger.Debug("Login for unknown user", map[string]any{"username": username})
			return false, nil
		}
		u.logger.Error("Failed to load user", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return false, err
	}

	ok, err := u.hasher.Verify(user.PasswordHash(), password)
	if err != nil {
		u.logger.Error("Stored password digest is unusable", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return false, fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}

	if !ok {
		u.logger.Debug("Password mismatch", map[string]any{"username": username})
	}

	return ok, nil
}
