// Package validate provides the validate command.
package validate

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/transitdata/internal/appcontext"
	"github.com/agentstation/transitdata/internal/cmd/alerts"
	"github.com/agentstation/transitdata/internal/cmd/cmdutil"
	"github.com/agentstation/transitdata/internal/store"
	"github.com/agentstation/transitdata/pkg/logging"
	"github.com/agentstation/transitdata/pkg/validate"
)

type options struct {
	cmdutil.DatasetFlags
	jsonc   bool
	dataset bool
}

// NewCommand creates the validate command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "validate [PATH]",
		Short: "Check that a file is well-formed JSON",
		Long: `Validate parses the whole file and reports the first syntax error with its
line and column. Data after the first JSON value is an error.

Without PATH the configured stops file is checked. With --dataset the file
must also be an array of records that all carry the key field; repeated keys
are reported but do not fail validation.`,
		Example: `  transitdata validate
  transitdata validate src/data/etusa_raw.json --dataset
  transitdata validate notes.jsonc --jsonc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonc, "jsonc", false, "allow comments and trailing commas")
	cmd.Flags().BoolVarP(&opts.dataset, "dataset", "d", false, "also require an array of keyed line records")
	cmdutil.AddKeyFlag(cmd, &opts.DatasetFlags)

	return cmd
}

func run(cmd *cobra.Command, args []string, app appcontext.Interface, opts *options) error {
	settings := app.Settings()
	path := cmdutil.PathArg(args, settings.StopsPath)
	key := cmdutil.StringOr(cmd, "key", opts.Key, settings.KeyField)

	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	ctx = logging.WithCommand(ctx, "validate")
	ctx = logging.WithFile(ctx, path)
	logger := logging.FromContext(ctx)

	if err := cmdutil.CheckPath("path", path); err != nil {
		return alerts.Fail("JSON invalid", err)
	}

	data, err := store.ReadFile(path)
	if err != nil {
		return alerts.Fail("JSON invalid", err)
	}

	var vopts []validate.Option
	if opts.jsonc {
		vopts = append(vopts, validate.WithJSONC())
	}
	if opts.dataset {
		vopts = append(vopts, validate.WithDataset(key))
	}

	report, err := validate.JSON(data, vopts...)
	if err != nil {
		logger.Debug().Err(err).Msg("Validation failed")
		return alerts.Fail("JSON invalid", err)
	}

	logger.Debug().Str("kind", report.Kind).Int("records", report.Records).Msg("Validation passed")

	alert := alerts.NewSuccess("JSON is valid.")
	if opts.dataset {
		alert.WithDetails(fmt.Sprintf("%d records keyed by %s", report.Records, report.KeyField))
	}
	if report.HasWarnings() {
		alert.Level = alerts.LevelWarning
		alert.WithDetails("duplicate keys: " + strings.Join(report.DuplicateKeys, ", "))
	}
	return alerts.NewWriter(cmd.OutOrStdout(), app.OutputFormat()).WriteAlert(alert)
}
