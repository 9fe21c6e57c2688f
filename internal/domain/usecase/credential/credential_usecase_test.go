package credential

import (
	"context"
	"errors"
	"testing"

	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestExists(t *testing.T) {
	ctx := context.Background()

	t.Run("Registered user", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Exists(mock.Anything, "alice").Return(true, nil).Once()

		exists, err := f.uc.Exists(ctx, "alice")

		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Blank username skips storage", func(t *testing.T) {
		f := newFixture(t)

		exists, err := f.uc.Exists(ctx, "   ")

		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Storage failure", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Exists(mock.Anything, "alice").
			Return(false, errs.NewStorageError("select", "users", errors.New("database is locked"))).Once()

		_, err := f.uc.Exists(ctx, "alice")

		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	})
}
