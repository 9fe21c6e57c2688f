package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/bookkeeper/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestExtractQueryInfo(t *testing.T) {
	testCases := []struct {
		sql       string
		queryType string
		table     string
	}{
		{"SELECT * FROM `users` WHERE username = ?", "SELECT", "users"},
		{`INSERT INTO "transactions" ("username","type") VALUES ($1,$2)`, "INSERT", "transactions"},
		{"UPDATE users SET password_hash = ?", "UPDATE", "users"},
		{"PRAGMA foreign_keys", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.sql, func(t *testing.T) {
			assert.Equal(t, tc.queryType, extractQueryType(tc.sql))
			assert.Equal(t, tc.table, extractTableName(tc.sql))
		})
	}
}

func TestDatabaseLoggerTrace(t *testing.T) {
	begin := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	query := func() (string, int64) { return "SELECT * FROM users", 1 }

	t.Run("Errors are logged", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Since(begin).Return(time.Millisecond).Once()
		mockLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["error"] == "disk I/O error" && fields["table"] == "users"
		})).Once()

		l := NewDatabaseLogger(mockLogger, mockTime, "warn")
		l.Trace(context.Background(), begin, query, errors.New("disk I/O error"))
	})

	t.Run("Record not found is not an error", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Since(begin).Return(time.Millisecond).Once()

		l := NewDatabaseLogger(mockLogger, mockTime, "warn")
		l.Trace(context.Background(), begin, query, gorm.ErrRecordNotFound)
	})

	t.Run("Slow queries warn", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Since(begin).Return(time.Second).Once()
		mockLogger.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		l := NewDatabaseLogger(mockLogger, mockTime, "warn")
		l.Trace(context.Background(), begin, query, nil)
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		l := NewDatabaseLogger(mockLogger, mockTime, "info").LogMode(logger.Silent)
		l.Trace(context.Background(), begin, query, errors.New("ignored"))
	})
}
