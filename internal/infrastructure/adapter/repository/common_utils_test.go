package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassifier(t *testing.T) {
	c := NewErrorClassifier()

	testCases := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"Nil", nil, ""},
		{"Not found", fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), NotFoundError},
		{"SQLite unique", errors.New("constraint failed: UNIQUE constraint failed: users.username (1555)"), DuplicateKeyError},
		{"Postgres unique", errors.New(`ERROR: duplicate key value violates unique constraint "users_pkey" (SQLSTATE 23505)`), DuplicateKeyError},
		{"Translated unique", gorm.ErrDuplicatedKey, DuplicateKeyError},
		{"SQLite foreign key", errors.New("constraint failed: FOREIGN KEY constraint failed (787)"), ForeignKeyError},
		{"Postgres foreign key", errors.New(`insert or update on table "transactions" violates foreign key constraint "fk_transactions_user"`), ForeignKeyError},
		{"Translated foreign key", gorm.ErrForeignKeyViolated, ForeignKeyError},
		{"Locked", errors.New("database is locked (5) (SQLITE_BUSY)"), ConnectionError},
		{"Refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), ConnectionError},
		{"Other", errors.New("sql: database is closed"), UnknownError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Classify(tc.err))
		})
	}
}
