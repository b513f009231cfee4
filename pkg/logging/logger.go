// Package logging provides structured logging for transitdata using zerolog.
// Diagnostics go to stderr: human-readable console output when stderr is a
// terminal, JSON lines otherwise. User-facing result lines are not logged;
// the CLI prints those itself.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("file", path).Int("records", n).Msg("Loaded dataset")
//
//	ctx := logging.WithFile(ctx, path)
//	logging.FromContext(ctx).Debug().Msg("Writing merged dataset")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is configured from the environment until the CLI replaces it.
var defaultLogger = NewLoggerFromConfig(FromEnv())

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the default logger and zerolog's global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// Debug starts a debug event on the default logger.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts an info event on the default logger.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a warning event on the default logger.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Err starts an event for err on the default logger: error level when err
// is non-nil, info otherwise.
func Err(err error) *zerolog.Event {
	return defaultLogger.Err(err)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
