package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pfgen/cli/internal/cmdtypes"
	"github.com/pfgen/cli/internal/output"
	"github.com/pfgen/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show pfg CLI version information.

Displays:
  - pfg CLI version, commit, and build date
  - Go version and the CUE SDK used for config validation`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			output.Println(version.Get().String())
			return nil
		},
	}
}
