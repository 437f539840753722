package cli

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/rvegen/internal/engine"
)

// NewBoundCommand creates the bound command: it prints the one-row radius
// bound for a count/buffer/scale combination without running the packer.
func NewBoundCommand() *cobra.Command {
	var (
		count  int
		buffer float64
		scale  float64
	)

	cmd := &cobra.Command{
		Use:   "bound",
		Short: "Print the maximum inclusion radius for a given count and buffer",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := engine.MaxRadius(buffer, count, scale)
			if err != nil {
				return err
			}
			cmd.Printf("max radius: %g\n", r)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of inclusions")
	cmd.Flags().Float64Var(&buffer, "buffer", 0.01, "clearance from the container edge and between inclusions")
	cmd.Flags().Float64Var(&scale, "scale", 1.0, "multiplier on the one-row radius bound")

	return cmd
}
