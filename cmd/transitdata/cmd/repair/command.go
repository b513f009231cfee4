// Package repair provides the repair command.
package repair

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/transitdata/internal/appcontext"
	"github.com/agentstation/transitdata/internal/cmd/alerts"
	"github.com/agentstation/transitdata/internal/cmd/cmdutil"
	"github.com/agentstation/transitdata/internal/store"
	"github.com/agentstation/transitdata/pkg/logging"
	"github.com/agentstation/transitdata/pkg/repair"
)

// NewCommand creates the repair command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	opts := &cmdutil.DatasetFlags{}

	cmd := &cobra.Command{
		Use:   "repair [PATH]",
		Short: "Truncate data appended after the first JSON value",
		Long: `Repair decodes the first complete JSON value in the file. If anything other
than whitespace follows it, the file is rewritten with only that value,
re-indented. A file without extra data is left untouched.

Without PATH the configured stops file is repaired.`,
		Example: `  transitdata repair
  transitdata repair public/alger_stops.json --indent 4
  transitdata repair --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, app, opts)
		},
	}

	cmdutil.AddWriteFlags(cmd, opts, app.Settings().RepairIndent)

	return cmd
}

func run(cmd *cobra.Command, args []string, app appcontext.Interface, opts *cmdutil.DatasetFlags) error {
	settings := app.Settings()
	path := cmdutil.PathArg(args, settings.StopsPath)
	indent := cmdutil.IntOr(cmd, "indent", opts.Indent, settings.RepairIndent)

	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	ctx = logging.WithCommand(ctx, "repair")
	ctx = logging.WithFile(ctx, path)
	logger := logging.FromContext(ctx)

	if err := cmdutil.CheckPath("path", path); err != nil {
		return alerts.Fail("Error processing file", err)
	}
	if err := cmdutil.CheckIndent(indent); err != nil {
		return alerts.Fail("Error processing file", err)
	}

	data, err := store.ReadFile(path)
	if err != nil {
		return alerts.Fail("Error processing file", err)
	}

	res, err := repair.Truncate(data)
	if err != nil {
		return alerts.Fail("Error processing file", err)
	}

	alert := alerts.NewSuccess(describe(res))
	if !res.Trailing {
		alert.WithDetails("File was already valid (no extra data).")
		return alerts.NewWriter(cmd.OutOrStdout(), app.OutputFormat()).WriteAlert(alert)
	}

	alert.WithDetails(fmt.Sprintf("Found extra data starting at index %d. Truncating...", res.Offset))

	fixed, err := repair.Indent(res.Value, indent)
	if err != nil {
		return alerts.Fail("Error processing file", err)
	}

	if opts.DryRun {
		alert.WithDetails("Dry run: file not written.")
	} else {
		if err := store.WriteFile(path, fixed); err != nil {
			return alerts.Fail("Error processing file", err)
		}
		alert.WithDetails("File fixed and saved.")
	}

	logger.Info().
		Int("offset", res.Offset).
		Int("dropped_bytes", len(data)-res.Offset).
		Bool("dry_run", opts.DryRun).
		Msg("Truncated trailing data")

	return alerts.NewWriter(cmd.OutOrStdout(), app.OutputFormat()).WriteAlert(alert)
}

func describe(res *repair.Result) string {
	switch res.Kind {
	case "array", "object":
		return fmt.Sprintf("Successfully decoded JSON %s with length %d", res.Kind, res.Length)
	default:
		return fmt.Sprintf("Successfully decoded JSON %s", res.Kind)
	}
}
