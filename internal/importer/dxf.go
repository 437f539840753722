// Package importer reads inclusion geometry back from DXF drawings, so a
// distribution exported by an earlier run (or edited in CAD) can be
// re-checked and re-exported.
package importer

import (
	"fmt"

	"github.com/piwi3910/rvegen/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// ImportResult holds the shapes recovered from a drawing plus any problems
// encountered on the way.
type ImportResult struct {
	Circles  []model.Circle
	Errors   []string
	Warnings []string
}

// ImportDXF reads CIRCLE entities from a DXF file as inclusion circles.
// Other entity types (the container outline, ellipse polylines) are
// skipped: polyline ellipses are lossy approximations and are not imported
// back. Degenerate circles are reported as warnings and dropped.
func ImportDXF(path string, material model.MaterialRef) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	for _, ent := range entities {
		e, ok := ent.(*entity.Circle)
		if !ok {
			continue
		}
		circle, err := model.NewCircle(material, model.Point2D{X: e.Center[0], Y: e.Center[1]}, e.Radius)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped circle at (%g, %g): %v", e.Center[0], e.Center[1], err))
			continue
		}
		result.Circles = append(result.Circles, circle)
	}

	if len(result.Circles) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No circles found in DXF file")
	}

	return result
}
