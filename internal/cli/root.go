// Package cli wires the RVEGen commands.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the rvegen CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rvegen",
		Short: "RVEGen - Microstructure Inclusion Generator",
		Long: "Generates randomized, non-overlapping inclusion distributions\n" +
			"(circles and ellipses) packed inside a bounded container, for use\n" +
			"as input to material and microstructure simulation.",
		SilenceUsage: true,
	}

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewBoundCommand())

	return cmd
}
