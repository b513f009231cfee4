// Package config loads transitdata settings through viper. Values come from,
// in increasing precedence: built-in defaults, a YAML config file, and
// TRANSITDATA_* environment variables. Command-line flags are applied on top
// by the CLI.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/agentstation/transitdata/pkg/constants"
	"github.com/agentstation/transitdata/pkg/errors"
)

// Keys understood by Load.
const (
	KeyBase         = "base"
	KeyIncoming     = "incoming"
	KeyStops        = "stops"
	KeyKeyField     = "key_field"
	KeyMergeIndent  = "merge_indent"
	KeyRepairIndent = "repair_indent"
	KeyLogLevel     = "log_level"
	KeyLogFormat    = "log_format"
	KeyLogOutput    = "log_output"
	KeyFormat       = "format"
)

// SetDefaults registers the built-in value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBase, constants.DefaultBasePath)
	v.SetDefault(KeyIncoming, constants.DefaultIncomingPath)
	v.SetDefault(KeyStops, constants.DefaultStopsPath)
	v.SetDefault(KeyKeyField, constants.DefaultKeyField)
	v.SetDefault(KeyMergeIndent, constants.DefaultMergeIndent)
	v.SetDefault(KeyRepairIndent, constants.DefaultRepairIndent)
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFormat, "auto")
	v.SetDefault(KeyLogOutput, "stderr")
	v.SetDefault(KeyFormat, "")
}

// Load builds a viper instance for transitdata. When file is empty the
// optional .transitdata.yaml is searched in the working directory and then
// in the home directory; a file named explicitly must exist.
func Load(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// The unprefixed logging variables are honoured too.
	for _, key := range []string{KeyLogLevel, KeyLogFormat, KeyLogOutput} {
		upper := strings.ToUpper(key)
		if err := v.BindEnv(key, constants.EnvPrefix+"_"+upper, upper); err != nil {
			return nil, errors.NewConfigError("env", "failed to bind "+upper, err)
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("file", "failed to read "+file, err)
		}
		return v, nil
	}

	v.SetConfigName("." + constants.AppName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("file", "failed to read config", err)
		}
	}

	return v, nil
}
