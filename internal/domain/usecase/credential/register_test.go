package credential

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/bookkeeper/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/bookkeeper/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fixture struct {
	repo   *persistencemocks.MockUserRepository
	hasher *coremocks.MockPasswordHasher
	clock  *coremocks.MockTimeProvider
	logger *coremocks.MockLogger
	uc     *UseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo:   persistencemocks.NewMockUserRepository(t),
		hasher: coremocks.NewMockPasswordHasher(t),
		clock:  coremocks.NewMockTimeProvider(t),
		logger: coremocks.NewMockLogger(t),
	}
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	f.uc = NewCredentialUseCase(f.repo, f.hasher, f.clock, f.logger)
	return f
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful registration", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exists(mock.Anything, "alice").Return(false, nil).Once()
		f.hasher.EXPECT().Hash("s3cret").Return("digest-of-s3cret", nil).Once()
		f.clock.EXPECT().Now().Return(fixedTime).Once()
		f.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Username == "alice" &&
				user.PasswordHash() == "digest-of-s3cret" &&
				user.CreatedAt.Equal(fixedTime)
		})).Return(nil).Once()

		err := f.uc.Register(ctx, "alice", "s3cret")

		assert.NoError(t, err)
	})

	t.Run("Username already taken", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exists(mock.Anything, "alice").Return(true, nil).Once()

		err := f.uc.Register(ctx, "alice", "other-password")

		assert.ErrorIs(t, err, errs.ErrUserExists)
	})

	t.Run("Unique constraint race", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exists(mock.Anything, "alice").Return(false, nil).Once()
		f.hasher.EXPECT().Hash("pw").Return("digest", nil).Once()
		f.clock.EXPECT().Now().Return(fixedTime).Once()
		f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrUserExists).Once()

		err := f.uc.Register(ctx, "alice", "pw")

		assert.ErrorIs(t, err, errs.ErrUserExists)
	})

	t.Run("Blank username", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.Register(ctx, "  ", "pw")

		assert.ErrorIs(t, err, errs.ErrInvalidUsername)
	})

	t.Run("Empty password", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.Register(ctx, "alice", "")

		assert.ErrorIs(t, err, errs.ErrInvalidPassword)
	})

	t.Run("Hasher rejects password", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exists(mock.Anything, "alice").Return(false, nil).Once()
		f.hasher.EXPECT().Hash(mock.Anything).Return("", errs.ErrInvalidPassword).Once()

		err := f.uc.Register(ctx, "alice", "way-too-long")

		assert.ErrorIs(t, err, errs.ErrInvalidPassword)
	})

	t.Run("Storage unavailable", func(t *testing.T) {
		f := newFixture(t)

		storageErr := errs.NewStorageError("exists", "users", errors.New("unable to open database file"))
		f.repo.EXPECT().Exists(mock.Anything, "alice").Return(false, storageErr).Once()

		err := f.uc.Register(ctx, "alice", "pw")

		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	})

	t.Run("Lookup and hashing failures are logged", func(t *testing.T) {
		repo := persistencemocks.NewMockUserRepository(t)
		hasher := coremocks.NewMockPasswordHasher(t)
		log := coremocks.NewMockLogger(t)
		uc := NewCredentialUseCase(repo, hasher, coremocks.NewMockTimeProvider(t), log)

		storageErr := errs.NewStorageError("exists", "users", errors.New("database is locked"))
		repo.EXPECT().Exists(mock.Anything, "alice").Return(false, storageErr).Once()
		log.EXPECT().Error("Failed to check user existence", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["username"] == "alice" && fields["error"] == storageErr.Error()
		})).Once()

		assert.ErrorIs(t, uc.Register(ctx, "alice", "pw"), errs.ErrStorageUnavailable)

		hashErr := errors.New("entropy source exhausted")
		repo.EXPECT().Exists(mock.Anything, "bob").Return(false, nil).Once()
		hasher.EXPECT().Hash("pw").Return("", hashErr).Once()
		log.EXPECT().Error("Failed to hash password", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["username"] == "bob" && fields["error"] == hashErr.Error()
		})).Once()

		assert.ErrorIs(t, uc.Register(ctx, "bob", "pw"), hashErr)
	})
}
