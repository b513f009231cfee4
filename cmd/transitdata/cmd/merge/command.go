// Package merge provides the merge command.
package merge

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/transitdata/internal/appcontext"
	"github.com/agentstation/transitdata/internal/cmd/alerts"
	"github.com/agentstation/transitdata/internal/cmd/cmdutil"
	"github.com/agentstation/transitdata/internal/store"
	"github.com/agentstation/transitdata/pkg/logging"
	"github.com/agentstation/transitdata/pkg/reconcile"
)

type options struct {
	cmdutil.DatasetFlags
	base     string
	incoming string
	strict   bool
}

// NewCommand creates the merge command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge a batch of lines into the base dataset",
		Long: `Merge reads the base dataset and an incoming batch, both JSON arrays of
line records, and writes the union back over the base file.

Records are matched on the key field (idLigne by default). When both files
hold the same key the incoming record replaces the base one in place. New
keys are appended in batch order. A missing base file counts as empty; the
incoming file must exist.

Nothing is written if either file is malformed or a record lacks its key.`,
		Example: `  transitdata merge
  transitdata merge --base lines.json --incoming batch.json
  transitdata merge --strict --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.base, "base", "b", "", "base dataset, rewritten in place (default from config)")
	cmd.Flags().StringVarP(&opts.incoming, "incoming", "i", "", "incoming batch (default from config)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when the incoming batch repeats a key")
	cmdutil.AddKeyFlag(cmd, &opts.DatasetFlags)
	cmdutil.AddWriteFlags(cmd, &opts.DatasetFlags, app.Settings().MergeIndent)

	return cmd
}

func (o *options) resolve(cmd *cobra.Command, s appcontext.Settings) error {
	o.base = cmdutil.StringOr(cmd, "base", o.base, s.BasePath)
	o.incoming = cmdutil.StringOr(cmd, "incoming", o.incoming, s.IncomingPath)
	o.Key = cmdutil.StringOr(cmd, "key", o.Key, s.KeyField)
	o.Indent = cmdutil.IntOr(cmd, "indent", o.Indent, s.MergeIndent)

	if err := cmdutil.CheckPath("base", o.base); err != nil {
		return err
	}
	if err := cmdutil.CheckPath("incoming", o.incoming); err != nil {
		return err
	}
	return cmdutil.CheckIndent(o.Indent)
}

func run(cmd *cobra.Command, app appcontext.Interface, opts *options) error {
	if err := opts.resolve(cmd, app.Settings()); err != nil {
		return alerts.Fail("Error merging files", err)
	}

	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	ctx = logging.WithCommand(ctx, "merge")
	ctx = logging.WithKeyField(ctx, opts.Key)

	result, err := merge(ctx, opts)
	if err != nil {
		return alerts.Fail("Error merging files", err)
	}

	logging.FromContext(ctx).Info().
		Str("base", opts.base).
		Str("incoming", opts.incoming).
		Str("changes", result.Changeset.String()).
		Bool("dry_run", opts.DryRun).
		Msg(result.Summary())

	alert := alerts.NewSuccess(fmt.Sprintf("Successfully merged data. Total lines: %d", result.Len()))
	if opts.DryRun {
		alert.WithDetails(fmt.Sprintf("Dry run: %s was not written (%s)", opts.base, result.Changeset))
	}
	return alerts.NewWriter(cmd.OutOrStdout(), app.OutputFormat()).WriteAlert(alert)
}

// merge loads both sides, reconciles them and, unless this is a dry run,
// saves the result over the base file.
func merge(ctx context.Context, opts *options) (*reconcile.Result, error) {
	base, err := store.Load(ctx, opts.base)
	if err != nil {
		return nil, err
	}
	incoming, err := store.LoadExisting(ctx, opts.incoming)
	if err != nil {
		return nil, err
	}

	ropts := []reconcile.Option{reconcile.WithKeyField(opts.Key)}
	if opts.strict {
		ropts = append(ropts, reconcile.WithStrictIncoming())
	}
	result, err := reconcile.Reconcile(base, incoming, ropts...)
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		return result, nil
	}
	if err := store.Save(ctx, opts.base, result.Dataset, opts.Indent); err != nil {
		return nil, err
	}
	return result, nil
}
