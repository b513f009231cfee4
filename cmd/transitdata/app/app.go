// Package app wires configuration, logging and the commands of the
// transitdata CLI together.
package app

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/transitdata/internal/appcontext"
	"github.com/agentstation/transitdata/pkg/constants"
)

// App holds what every command needs: build information, the loaded
// configuration and a logger.
type App struct {
	version string
	commit  string
	date    string

	config *Config
	flags  globalFlags
	logger *zerolog.Logger

	stdout io.Writer
	stderr io.Writer
}

// New creates an App with configuration loaded from .env files, the config
// file named by TRANSITDATA_CONFIG (or the default search path) and the
// environment.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	config, err := LoadConfig(os.Getenv(constants.EnvPrefix + "_CONFIG"))
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the requested output format, "" when unset.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Settings returns the dataset defaults from configuration.
func (a *App) Settings() appcontext.Settings {
	return a.config.Settings
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithOutput redirects command output and failure reports.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) error {
		a.stdout = stdout
		a.stderr = stderr
		return nil
	}
}

var _ appcontext.Interface = (*App)(nil)
