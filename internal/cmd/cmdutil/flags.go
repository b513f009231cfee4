// Package cmdutil provides flags shared by the dataset commands and the
// rules for combining them with configured defaults.
package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/transitdata/pkg/constants"
	"github.com/agentstation/transitdata/pkg/errors"
)

// DatasetFlags holds flags common to commands that read records.
type DatasetFlags struct {
	Key    string
	Indent int
	DryRun bool
}

// AddKeyFlag adds --key to cmd.
func AddKeyFlag(cmd *cobra.Command, flags *DatasetFlags) {
	cmd.Flags().StringVarP(&flags.Key, "key", "k", "",
		fmt.Sprintf("field identifying a line (default from config, %s)", constants.DefaultKeyField))
}

// AddWriteFlags adds --indent and --dry-run to cmd.
func AddWriteFlags(cmd *cobra.Command, flags *DatasetFlags, defaultIndent int) {
	cmd.Flags().IntVar(&flags.Indent, "indent", 0,
		fmt.Sprintf("spaces per indentation level, 0 for compact (default from config, %d)", defaultIndent))
	cmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "n", false,
		"report what would be written without writing")
}

// StringOr returns value when flag was set on the command line and
// fallback otherwise.
func StringOr(cmd *cobra.Command, flag, value, fallback string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	return fallback
}

// IntOr returns value when flag was set on the command line and fallback
// otherwise.
func IntOr(cmd *cobra.Command, flag string, value, fallback int) int {
	if cmd.Flags().Changed(flag) {
		return value
	}
	return fallback
}

// PathArg returns the positional path argument, or fallback when there is none.
func PathArg(args []string, fallback string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return fallback
}

// CheckIndent rejects indentation outside [0, constants.MaxIndent].
func CheckIndent(indent int) error {
	if indent < 0 || indent > constants.MaxIndent {
		return errors.NewValidationError("indent", indent,
			fmt.Sprintf("must be between 0 and %d", constants.MaxIndent))
	}
	return nil
}

// CheckPath rejects an empty path.
func CheckPath(name, path string) error {
	if path == "" {
		return errors.NewValidationError(name, path, "path is required")
	}
	return nil
}
