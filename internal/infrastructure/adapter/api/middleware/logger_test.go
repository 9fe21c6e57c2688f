package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/bookkeeper/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewZapLoggerWithCore(obsCore, core.LogLevelDebug)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(start)
	clock.EXPECT().Since(start).Return(42 * time.Millisecond)

	router := gin.New()
	router.Use(Logger(log, clock))
	router.GET("/ok", func(c *gin.Context) {
		c.Set(UsernameKey, "alice")
		c.Status(http.StatusOK)
	})
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

	for _, path := range []string{"/ok", "/fail"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("X-Request-ID", "req-1")
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	entries := logs.All()
	require.Len(t, entries, 2)

	ok := entries[0]
	assert.Equal(t, zapcore.InfoLevel, ok.Level)
	assert.Equal(t, "Request processed", ok.Message)
	fields := ok.ContextMap()
	assert.Equal(t, "/ok", fields["path"])
	assert.Equal(t, int64(42), fields["latency_ms"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "alice", fields["username"])
	assert.Equal(t, "OK", fields["status_text"])

	failed := entries[1]
	assert.Equal(t, zapcore.ErrorLevel, failed.Level)
	assert.Equal(t, "Service Unavailable", failed.ContextMap()["status_text"])
	assert.NotContains(t, failed.ContextMap(), "username")
}
