package export

import (
	"fmt"

	"github.com/piwi3910/rvegen/internal/model"
	"github.com/xuri/excelize/v2"
)

var circleColumns = []string{"Centre X", "Centre Y", "Radius", "Area"}
var ellipseColumns = []string{"Centre X", "Centre Y", "Long axis", "Short axis", "Aspect ratio", "Area", "Orientation (rad)"}

// ExportXLSX writes the distribution as a spreadsheet: one header row with
// the kind-specific columns, one data row per inclusion in placement order.
func ExportXLSX(path string, dist *model.Distribution) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	columns := circleColumns
	if dist.Kind == model.KindEllipse {
		columns = ellipseColumns
	}
	for i, col := range columns {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, s := range dist.Shapes {
		var values []float64
		switch shape := s.(type) {
		case model.Circle:
			values = []float64{shape.Centre.X, shape.Centre.Y, shape.Radius, shape.Area()}
		case model.Ellipse:
			ratio := shape.ShortAxis / shape.LongAxis
			values = []float64{shape.Centre.X, shape.Centre.Y, shape.LongAxis, shape.ShortAxis, ratio, shape.Area(), shape.Angle}
		default:
			continue
		}
		for col, v := range values {
			cell := fmt.Sprintf("%c%d", 'A'+col, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row+2, err)
			}
		}
	}

	return f.SaveAs(path)
}
