package export

import (
	"fmt"
	"math"

	"github.com/piwi3910/rvegen/internal/model"
	"github.com/yofu/dxf"
)

// ellipseSegments is the polygon resolution used when approximating an
// ellipse perimeter for CAD output.
const ellipseSegments = 64

// ExportDXF writes the distribution as a DXF drawing: the container outline
// on a MATRIX layer and every inclusion on an INCLUSIONS layer. Circles map
// to native CIRCLE entities; ellipses are approximated as closed
// LWPOLYLINEs since the format carries no rotated-ellipse primitive the
// downstream CAM tooling accepts.
func ExportDXF(path string, dist *model.Distribution) error {
	d := dxf.NewDrawing()

	if _, err := d.AddLayer("MATRIX", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add matrix layer: %w", err)
	}
	w := dist.Container.Width
	h := dist.Container.Height
	if _, err := d.LwPolyline(true,
		[]float64{0, 0},
		[]float64{w, 0},
		[]float64{w, h},
		[]float64{0, h},
	); err != nil {
		return fmt.Errorf("failed to draw container outline: %w", err)
	}

	if _, err := d.AddLayer("INCLUSIONS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add inclusions layer: %w", err)
	}

	for _, s := range dist.Shapes {
		switch shape := s.(type) {
		case model.Circle:
			if _, err := d.Circle(shape.Centre.X, shape.Centre.Y, 0, shape.Radius); err != nil {
				return fmt.Errorf("failed to draw circle: %w", err)
			}
		case model.Ellipse:
			if _, err := d.LwPolyline(true, ellipseVertices(shape, ellipseSegments)...); err != nil {
				return fmt.Errorf("failed to draw ellipse: %w", err)
			}
		}
	}

	return d.SaveAs(path)
}

// ellipseVertices samples the rotated ellipse perimeter as polyline
// vertices.
func ellipseVertices(e model.Ellipse, segments int) [][]float64 {
	cos := math.Cos(e.Angle)
	sin := math.Sin(e.Angle)
	vertices := make([][]float64, segments)
	for i := 0; i < segments; i++ {
		t := 2 * math.Pi * float64(i) / float64(segments)
		px := e.LongAxis * math.Cos(t)
		py := e.ShortAxis * math.Sin(t)
		vertices[i] = []float64{
			e.Centre.X + px*cos - py*sin,
			e.Centre.Y + px*sin + py*cos,
		}
	}
	return vertices
}
