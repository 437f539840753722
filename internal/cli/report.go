package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/rvegen/internal/export"
	"github.com/piwi3910/rvegen/internal/importer"
	"github.com/piwi3910/rvegen/internal/model"
)

// NewReportCommand creates the report command: it reads circles back from a
// DXF drawing and renders the distribution report for them, so an exported
// or CAD-edited layout can be re-checked without regenerating.
func NewReportCommand() *cobra.Command {
	var (
		material string
		matrix   string
		width    float64
		height   float64
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "report <drawing.dxf>",
		Short: "Render the distribution report for circles read from a DXF drawing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := importer.ImportDXF(args[0], model.MaterialRef(material))
			for _, w := range result.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}
			if len(result.Errors) > 0 {
				return fmt.Errorf("import %s: %s", args[0], result.Errors[0])
			}

			dist := model.NewDistribution(model.KindCircle,
				model.Container{Width: width, Height: height}, model.MaterialRef(matrix))
			for _, c := range result.Circles {
				dist.Append(c)
			}

			report := export.ExportInclusions(dist)
			if outPath == "" {
				cmd.Print(report)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(report), 0644); err != nil {
				return err
			}
			cmd.Printf("wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&material, "material", "Inclusion", "material assigned to imported circles")
	cmd.Flags().StringVar(&matrix, "matrix", "Matrix", "matrix material name")
	cmd.Flags().Float64Var(&width, "width", 1, "container width")
	cmd.Flags().Float64Var(&height, "height", 1, "container height")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the report to a file instead of stdout")

	return cmd
}
