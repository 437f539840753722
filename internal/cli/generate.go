package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/piwi3910/rvegen/internal/engine"
	"github.com/piwi3910/rvegen/internal/export"
	"github.com/piwi3910/rvegen/internal/model"
	"github.com/piwi3910/rvegen/internal/project"
)

// GenerateOptions holds the flags for the generate command.
type GenerateOptions struct {
	Kind       string
	Count      int
	Buffer     float64
	Scale      float64
	EqualSize  bool
	Seed       int64
	Attempts   int
	ConfigPath string
	OutDir     string
	Formats    []string
	SaveConfig bool
}

// ValidFormats lists the export formats the generate command can produce.
var ValidFormats = []string{"report", "grouped", "sketch", "dxf", "xlsx", "pdf", "html"}

// NewGenerateCommand creates the generate command: it runs the packer and
// writes the requested export formats.
func NewGenerateCommand() *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an inclusion distribution and export it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Kind, "kind", string(model.KindCircle), "inclusion kind (Circle|Ellipse)")
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 10, "number of inclusions to place")
	cmd.Flags().Float64Var(&opts.Buffer, "buffer", 0.01, "clearance from the container edge and between inclusions")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0.5, "multiplier on the one-row radius bound")
	cmd.Flags().BoolVar(&opts.EqualSize, "equal-size", true, "all inclusions share the maximum radius")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "RNG seed (0 = time-based)")
	cmd.Flags().IntVar(&opts.Attempts, "attempts", 5000, "trial budget per inclusion")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "load settings from a JSON file (flags still override)")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", ".", "output directory")
	cmd.Flags().StringSliceVar(&opts.Formats, "formats", []string{"report"}, "export formats (report,grouped,sketch,dxf,xlsx,pdf,html)")
	cmd.Flags().BoolVar(&opts.SaveConfig, "save-config", false, "persist the effective settings to the default settings path")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *GenerateOptions) error {
	settings, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}
	if err := validateFormats(opts.Formats); err != nil {
		return err
	}

	packer := engine.New(settings, model.NewRegistry())
	dist, err := packer.Pack()
	if err != nil {
		return fmt.Errorf("packing failed: %w", err)
	}

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return err
	}

	for _, format := range opts.Formats {
		path, err := writeFormat(format, opts.OutDir, dist, settings)
		if err != nil {
			return fmt.Errorf("export %s: %w", format, err)
		}
		cmd.Printf("wrote %s\n", path)
	}

	if opts.SaveConfig {
		if err := project.SaveSettings(project.DefaultSettingsPath(), settings); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		cmd.Printf("saved settings to %s\n", project.DefaultSettingsPath())
	}

	cmd.Printf("placed %d inclusions, volume fraction %.2f%%\n", dist.Count(), dist.VolumeFraction()*100)
	return nil
}

// resolveSettings starts from defaults (or a loaded config file) and
// applies only the flags the user actually set.
func resolveSettings(cmd *cobra.Command, opts *GenerateOptions) (model.GenerationSettings, error) {
	settings := model.DefaultSettings()
	if opts.ConfigPath != "" {
		loaded, err := project.LoadSettings(opts.ConfigPath)
		if err != nil {
			return model.GenerationSettings{}, fmt.Errorf("load config: %w", err)
		}
		settings = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("kind") {
		settings.Kind = model.ShapeKind(opts.Kind)
	}
	if flags.Changed("count") {
		settings.NumInclusions = opts.Count
	}
	if flags.Changed("buffer") {
		settings.BufferSize = opts.Buffer
	}
	if flags.Changed("scale") {
		settings.ScaleFactor = opts.Scale
	}
	if flags.Changed("equal-size") {
		settings.EqualSize = opts.EqualSize
	}
	if flags.Changed("seed") {
		settings.Seed = opts.Seed
	}
	if flags.Changed("attempts") {
		settings.MaxAttempts = opts.Attempts
	}

	switch settings.Kind {
	case model.KindCircle, model.KindEllipse:
	default:
		return model.GenerationSettings{}, fmt.Errorf("unsupported inclusion kind %q", settings.Kind)
	}
	return settings, nil
}

func validateFormats(formats []string) error {
	for _, f := range formats {
		valid := false
		for _, v := range ValidFormats {
			if f == v {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid format %q: must be one of %v", f, ValidFormats)
		}
	}
	return nil
}

// writeFormat produces one export file and returns its path.
func writeFormat(format, dir string, dist *model.Distribution, settings model.GenerationSettings) (string, error) {
	base := fmt.Sprintf("distribution_%s", dist.ID)
	switch format {
	case "report":
		path := filepath.Join(dir, base+".txt")
		return path, os.WriteFile(path, []byte(export.ExportInclusions(dist)), 0644)
	case "grouped":
		path := filepath.Join(dir, base+"_materials.txt")
		return path, os.WriteFile(path, []byte(export.ExportGrouped(dist)), 0644)
	case "sketch":
		path := filepath.Join(dir, base+"_sketch.py")
		return path, os.WriteFile(path, []byte(export.SketchScript(dist)), 0644)
	case "dxf":
		path := filepath.Join(dir, base+".dxf")
		return path, export.ExportDXF(path, dist)
	case "xlsx":
		path := filepath.Join(dir, base+".xlsx")
		return path, export.ExportXLSX(path, dist)
	case "pdf":
		path := filepath.Join(dir, base+".pdf")
		return path, export.ExportPDF(path, dist, settings)
	case "html":
		path := filepath.Join(dir, base+".html")
		return path, export.ExportChart(path, dist)
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
