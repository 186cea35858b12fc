package cli

import (
	"github.com/spf13/cobra"
)

// Version is the build version, set with -ldflags "-X".
var Version = "dev"

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "version",
		Short:         "Print the predcfb version",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format: rootOpts.Format,
				Writer: cmd.OutOrStdout(),
			}
			if rootOpts.Format == "json" {
				return formatter.Success(map[string]string{"version": Version})
			}
			return formatter.Success("predcfb " + Version)
		},
	}
}
