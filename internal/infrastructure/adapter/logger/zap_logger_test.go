package logger

import (
	"testing"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevels(t *testing.T) {
	zc, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerWithCore(zc, core.LogLevelInfo)

	log.Debug("hidden", nil)
	log.Info("visible", map[string]any{"username": "alice"})
	log.Warn("warned", nil)

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "visible", entries[0].Message)
	assert.Equal(t, "alice", entries[0].ContextMap()["username"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)

	log.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, log.GetLevel())

	log.Warn("dropped", nil)
	log.Error("kept", nil)
	assert.Equal(t, 3, logs.Len())
}

func TestZapLoggerWith(t *testing.T) {
	zc, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerWithCore(zc, core.LogLevelDebug)

	child := log.With(map[string]any{"request_id": "r-1"})
	child.Info("handled", map[string]any{"status": 200})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "r-1", fields["request_id"])
	assert.EqualValues(t, 200, fields["status"])

	// Level changes on the parent apply to children
	log.SetLevel(core.LogLevelError)
	child.Info("suppressed", nil)
	assert.Equal(t, 1, logs.Len())
}

func TestNewZapLogger(t *testing.T) {
	log, err := NewZapLogger(true, core.LogLevelWarn)
	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelDebug)

	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	assert.Same(t, log, log.With(map[string]any{"k": "v"}))
	assert.NoError(t, log.Flush())
}
