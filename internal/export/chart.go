package export

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/piwi3910/rvegen/internal/model"
)

// ExportChart writes an interactive HTML scatter chart of the inclusion
// centres, with marker size proportional to inclusion area. This is a quick
// visual sanity check of a run, not a to-scale rendering; the PDF datasheet
// is the faithful drawing.
func ExportChart(path string, dist *model.Distribution) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "RVEGen Distribution",
			Width:     "720px",
			Height:    "720px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Inclusion distribution %s", dist.ID),
			Subtitle: fmt.Sprintf("%d inclusions, volume fraction %.2f%%", dist.Count(), dist.VolumeFraction()*100),
		}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: dist.Container.Width}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: dist.Container.Height}),
	)

	data := make([]opts.ScatterData, 0, dist.Count())
	for _, s := range dist.Shapes {
		centre := s.Position()
		size := int(s.Area() / (dist.Container.Width * dist.Container.Height) * 2000)
		if size < 4 {
			size = 4
		}
		data = append(data, opts.ScatterData{
			Value:      []interface{}{centre.X, centre.Y},
			SymbolSize: size,
		})
	}
	scatter.AddSeries("Inclusions", data)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	return scatter.Render(f)
}
