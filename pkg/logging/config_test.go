package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/transitdata/pkg/logging"
)

func keepGlobals(t *testing.T) {
	t.Helper()
	logger := *logging.Default()
	level := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(logger)
		zerolog.SetGlobalLevel(level)
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.False(t, cfg.AddCaller)
}

func TestFromEnv(t *testing.T) {
	t.Run("explicit variables", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_OUTPUT", "discard")

		cfg := logging.FromEnv()
		assert.Equal(t, "warn", cfg.Level)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "discard", cfg.Output)
	})

	t.Run("DEBUG without LOG_LEVEL", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("DEBUG", "1")

		assert.Equal(t, "debug", logging.FromEnv().Level)
	})
}

func TestNewLoggerFromConfig(t *testing.T) {
	keepGlobals(t)

	t.Run("writes JSON to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "transitdata.log")

		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "debug", Format: "json", Output: path})
		logger.Info().Str("file", "new_batch.json").Msg("loaded")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"level":"info"`)
		assert.Contains(t, string(content), `"file":"new_batch.json"`)
		assert.Contains(t, string(content), `"caller":`)
	})

	t.Run("levels", func(t *testing.T) {
		tests := map[string]zerolog.Level{
			"trace":   zerolog.TraceLevel,
			"DEBUG":   zerolog.DebugLevel,
			"":        zerolog.InfoLevel,
			"warning": zerolog.WarnLevel,
			"error":   zerolog.ErrorLevel,
			"off":     zerolog.Disabled,
			"chatty":  zerolog.InfoLevel,
		}
		for name, want := range tests {
			logger := logging.NewLoggerFromConfig(&logging.Config{Level: name, Output: "discard"})
			assert.Equal(t, want, logger.GetLevel(), name)
			assert.Equal(t, want, zerolog.GlobalLevel(), name)
		}
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		assert.NotPanics(t, func() {
			logging.NewLoggerFromConfig(nil)
		})
	})
}

func TestConfigure(t *testing.T) {
	keepGlobals(t)
	path := filepath.Join(t.TempDir(), "transitdata.log")

	logging.Configure(&logging.Config{Level: "warn", Format: "json", Output: path})

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warn message")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
}
