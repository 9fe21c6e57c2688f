package credential

import (
	"context"
	"strings"

	coreport "github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/bookkeeper/internal/domain/port/persistence"
)

// UseCase handles registration and login verification
type UseCase struct {
	userRepo     persistence.UserRepository
	hasher       coreport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCredentialUseCase creates a new credential UseCase
func NewCredentialUseCase(
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Exists checks if a user with the given username is registered
func (u *UseCase) Exists(ctx context.Context, username string) (bool, error) {
	if strings.TrimSpace(username) == "" {
		return false, nil
	}
	return u.userRepo.Exists(ctx, username)
}
