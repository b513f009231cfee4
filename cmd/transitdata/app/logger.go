package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/agentstation/transitdata/pkg/logging"
)

// NewLogger creates a configured logger based on the application configuration.
// Log level precedence (highest to lowest):
//  1. --log-level flag or LOG_LEVEL / TRANSITDATA_LOG_LEVEL
//  2. -q/--quiet (warn)
//  3. -v/--verbose (debug)
//  4. Default (info)
func NewLogger(config *Config) zerolog.Logger {
	level, warning := determineLogLevel(config)

	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor,
		AddCaller: level == "debug" || level == "trace",
	})

	if warning != "" {
		logger.Warn().Msg(warning)
	}
	return logger
}

// determineLogLevel applies the precedence rules and returns a warning when
// the inputs had to be corrected.
func determineLogLevel(config *Config) (level, warning string) {
	if config.LogLevel != "" {
		if validLevels[config.LogLevel] {
			return config.LogLevel, ""
		}
		return "info", fmt.Sprintf("invalid log level %q, using \"info\"", config.LogLevel)
	}

	switch {
	case config.Verbose && config.Quiet:
		return "warn", "both --verbose and --quiet specified, using --quiet"
	case config.Quiet:
		return "warn", ""
	case config.Verbose:
		return "debug", ""
	default:
		return "info", ""
	}
}

var validLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}
