package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/transitdata/internal/cmd/alerts"
	"github.com/agentstation/transitdata/internal/cmd/output"
	"github.com/agentstation/transitdata/pkg/constants"
	"github.com/agentstation/transitdata/pkg/errors"
	"github.com/agentstation/transitdata/pkg/logging"
)

// globalFlags are parsed into a separate struct so that unset flags do not
// clobber configured values.
type globalFlags struct {
	configFile string
	verbose    bool
	quiet      bool
	noColor    bool
	format     string
	logLevel   string
}

// Execute runs the CLI with the given arguments. A failing command is
// reported as a single line on stderr before its error is returned.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		a.logger.Debug().Err(err).Msg("Command failed")
		_ = alerts.NewWriter(a.stderr, a.config.Format).WriteAlert(alerts.FromError(err))
	}
	return err
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     constants.AppName,
		Short:   "Repair, validate and merge transit line datasets",
		Version: a.version,
		Long: `transitdata maintains the JSON datasets describing public transit lines:
an array of line records keyed by idLigne, each with its outbound (aller)
and return (retour) stops.

It merges new batches of lines into the base dataset, validates JSON files
and repairs files that had a second value appended to them.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "data",
		Title: "Dataset Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.flags.configFile, "config", "", "config file (default is ./.transitdata.yaml or $HOME/.transitdata.yaml)")
	flags.BoolVarP(&a.flags.verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&a.flags.quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")
	flags.StringVarP(&a.flags.format, "format", "o", "", "output format: table, json, yaml")
	flags.StringVar(&a.flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate(constants.AppName + " {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") {
		loaded, err := LoadConfig(a.flags.configFile)
		if err != nil {
			return err
		}
		a.config.ConfigFile = loaded.ConfigFile
		a.config.Settings = loaded.Settings
		if loaded.Format != "" {
			a.config.Format = loaded.Format
		}
	}

	a.config.UpdateFromFlags(a.flags.verbose, a.flags.quiet, a.flags.noColor, a.flags.format, a.flags.logLevel)

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return errors.NewConfigError("format", err.Error(), err)
	}

	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)

	if a.config.ConfigFile != "" {
		logger.Debug().Str("file", a.config.ConfigFile).Msg("Using config file")
	}
	return nil
}

// ExitOnError prints err and exits with status 1. It is meant for failures
// that happen before a command runs.
func ExitOnError(err error) {
	if err != nil {
		_ = alerts.NewWriter(os.Stderr, "").WriteAlert(alerts.FromError(err))
		os.Exit(1)
	}
}
