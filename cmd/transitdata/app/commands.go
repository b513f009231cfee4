package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/transitdata/cmd/transitdata/cmd/inspect"
	"github.com/agentstation/transitdata/cmd/transitdata/cmd/merge"
	"github.com/agentstation/transitdata/cmd/transitdata/cmd/repair"
	"github.com/agentstation/transitdata/cmd/transitdata/cmd/validate"
	"github.com/agentstation/transitdata/cmd/transitdata/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	for _, cmd := range []*cobra.Command{
		merge.NewCommand(a),
		validate.NewCommand(a),
		repair.NewCommand(a),
		inspect.NewCommand(a),
	} {
		cmd.GroupID = "data"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(version.NewCommand(a))
}
