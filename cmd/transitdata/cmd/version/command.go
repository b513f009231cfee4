// Package version provides the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/transitdata/internal/appcontext"
	"github.com/agentstation/transitdata/internal/cmd/output"
	"github.com/agentstation/transitdata/pkg/constants"
)

// Info is the build information printed by the version command.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// NewCommand creates the version command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := Info{
				Version:   app.Version(),
				Commit:    app.Commit(),
				Date:      app.Date(),
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			w := cmd.OutOrStdout()
			switch format, _ := output.ParseFormat(app.OutputFormat()); format {
			case output.FormatJSON, output.FormatYAML:
				return output.Write(w, format, info)
			}

			_, err := fmt.Fprintf(w, "%s version %s\ncommit: %s\nbuilt: %s\ngo version: %s\nplatform: %s\n",
				constants.AppName, info.Version, info.Commit, info.Date, info.GoVersion, info.Platform)
			return err
		},
	}
}
