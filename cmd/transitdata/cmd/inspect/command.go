// Package inspect provides the inspect command.
package inspect

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/transitdata/internal/appcontext"
	"github.com/agentstation/transitdata/internal/cmd/alerts"
	"github.com/agentstation/transitdata/internal/cmd/cmdutil"
	"github.com/agentstation/transitdata/internal/cmd/output"
	"github.com/agentstation/transitdata/internal/store"
	"github.com/agentstation/transitdata/pkg/logging"
)

// NewCommand creates the inspect command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	opts := &cmdutil.DatasetFlags{}

	cmd := &cobra.Command{
		Use:     "inspect [PATH]",
		Aliases: []string{"ls"},
		Short:   "List the lines of a dataset",
		Long: `Inspect lists every line of a dataset with its name and the number of
outbound (aller) and return (retour) stops.

Without PATH the configured base dataset is listed.`,
		Example: `  transitdata inspect
  transitdata inspect src/data/new_batch.json --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := app.Settings()
			path := cmdutil.PathArg(args, settings.BasePath)
			key := cmdutil.StringOr(cmd, "key", opts.Key, settings.KeyField)

			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			ctx = logging.WithCommand(ctx, "inspect")

			ds, err := store.LoadExisting(ctx, path)
			if err != nil {
				return alerts.Fail("Error reading dataset", err)
			}
			lines, err := summarize(ds, key)
			if err != nil {
				return alerts.Fail("Error reading dataset", err)
			}

			w := cmd.OutOrStdout()
			return output.Write(w, output.DetectFormat(app.OutputFormat(), w), lines)
		},
	}

	cmdutil.AddKeyFlag(cmd, opts)

	return cmd
}
