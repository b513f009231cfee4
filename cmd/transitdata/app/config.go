package app

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/transitdata/internal/appcontext"
	"github.com/agentstation/transitdata/internal/config"
)

// Config holds the application configuration loaded from .env files, the
// config file and the environment, with global flags applied on top.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// ConfigFile is the config file in use, if any
	ConfigFile string

	// Dataset defaults for commands
	Settings appcontext.Settings

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. Environment variables
//  3. .env and .env.local
//  4. Config file (file, or .transitdata.yaml in . or $HOME)
//  5. Defaults
func LoadConfig(file string) (*Config, error) {
	loadEnvFiles()

	v, err := config.Load(file)
	if err != nil {
		return nil, err
	}
	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Format:     v.GetString(config.KeyFormat),
		ConfigFile: v.ConfigFileUsed(),
		Settings: appcontext.Settings{
			BasePath:     v.GetString(config.KeyBase),
			IncomingPath: v.GetString(config.KeyIncoming),
			StopsPath:    v.GetString(config.KeyStops),
			KeyField:     v.GetString(config.KeyKeyField),
			MergeIndent:  v.GetInt(config.KeyMergeIndent),
			RepairIndent: v.GetInt(config.KeyRepairIndent),
		},
		LogLevel:  v.GetString(config.KeyLogLevel),
		LogFormat: v.GetString(config.KeyLogFormat),
		LogOutput: v.GetString(config.KeyLogOutput),
	}
}

// UpdateFromFlags applies parsed global flags. Empty strings leave the
// configured value in place.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads .env and then .env.local. Variables already set in
// the environment are not overridden.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
