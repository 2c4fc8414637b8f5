package logger_test

import (
	"context"
	"library/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// must run before any test calling Setup
func TestGet_BeforeSetup(t *testing.T) {
	l := logger.Get(context.Background())
	require.NotNil(t, l, "default logger should be usable before setup")
	require.NotPanics(t, func() {
		logger.Info(context.Background(), "discarded")
	})
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		debug       bool
	}{
		{
			name:        "development",
			environment: logger.DevelopmentEnvironment,
			debug:       true,
		},
		{
			name:        "production",
			environment: logger.ProductionEnvironment,
			debug:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, logger.Setup(tt.environment))
			require.Equal(t, tt.debug, logger.IsDebug(context.Background()))
			logger.Sync()
		})
	}
}

func TestGet_FromContext(t *testing.T) {
	custom := zap.NewExample()
	ctx := logger.WithLogger(context.Background(), custom)

	require.Same(t, custom, logger.Get(ctx))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.Int64("userID", 7))
	logger.Info(ctx, "items borrowed", zap.Int64("orderID", 3))
	logger.Debug(ctx, "order rejected")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "items borrowed", entries[0].Message)
	require.Equal(t, map[string]any{"userID": int64(7), "orderID": int64(3)}, entries[0].ContextMap())
	require.Equal(t, map[string]any{"userID": int64(7)}, entries[1].ContextMap())
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	levels := make([]zapcore.Level, 0, logs.Len())
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}
