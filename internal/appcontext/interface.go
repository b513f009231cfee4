// Package appcontext defines what commands need from the application: a
// logger, the resolved settings and build information. Commands accept
// Interface so they can be tested against Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/transitdata/pkg/constants"
)

// Settings are the configured defaults for dataset commands. Flags given on
// the command line take precedence over these.
type Settings struct {
	BasePath     string
	IncomingPath string
	StopsPath    string
	KeyField     string
	MergeIndent  int
	RepairIndent int
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		BasePath:     constants.DefaultBasePath,
		IncomingPath: constants.DefaultIncomingPath,
		StopsPath:    constants.DefaultStopsPath,
		KeyField:     constants.DefaultKeyField,
		MergeIndent:  constants.DefaultMergeIndent,
		RepairIndent: constants.DefaultRepairIndent,
	}
}

// Interface is implemented by the App in cmd/transitdata/app.
type Interface interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the requested output format (table, json, yaml),
	// or "" when the format should be detected.
	OutputFormat() string

	// Settings returns the configured defaults.
	Settings() Settings

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string
}
