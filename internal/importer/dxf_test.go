package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

func writeDrawing(t *testing.T, build func(d *drawing.Drawing)) string {
	t.Helper()
	d := dxf.NewDrawing()
	build(d)
	path := filepath.Join(t.TempDir(), "in.dxf")
	require.NoError(t, d.SaveAs(path))
	return path
}

func TestImportDXFCircles(t *testing.T) {
	path := writeDrawing(t, func(d *drawing.Drawing) {
		_, err := d.Circle(0.3, 0.4, 0, 0.1)
		require.NoError(t, err)
		_, err = d.Circle(0.7, 0.6, 0, 0.05)
		require.NoError(t, err)
	})

	result := ImportDXF(path, "Inclusion")
	require.Empty(t, result.Errors)
	require.Len(t, result.Circles, 2)

	assert.InDelta(t, 0.3, result.Circles[0].Centre.X, 1e-9)
	assert.InDelta(t, 0.4, result.Circles[0].Centre.Y, 1e-9)
	assert.InDelta(t, 0.1, result.Circles[0].Radius, 1e-9)
	assert.Equal(t, "Inclusion", string(result.Circles[0].Material))
}

func TestImportDXFSkipsOtherEntities(t *testing.T) {
	path := writeDrawing(t, func(d *drawing.Drawing) {
		_, err := d.LwPolyline(true, []float64{0, 0}, []float64{1, 0}, []float64{1, 1}, []float64{0, 1})
		require.NoError(t, err)
		_, err = d.Circle(0.5, 0.5, 0, 0.2)
		require.NoError(t, err)
	})

	result := ImportDXF(path, "Inclusion")
	require.Empty(t, result.Errors)
	require.Len(t, result.Circles, 1)
}

func TestImportDXFNoCircles(t *testing.T) {
	path := writeDrawing(t, func(d *drawing.Drawing) {
		_, err := d.LwPolyline(true, []float64{0, 0}, []float64{1, 0}, []float64{1, 1})
		require.NoError(t, err)
	})

	result := ImportDXF(path, "Inclusion")
	assert.Empty(t, result.Circles)
	assert.NotEmpty(t, result.Errors)
}

func TestImportDXFMissingFile(t *testing.T) {
	result := ImportDXF(filepath.Join(t.TempDir(), "absent.dxf"), "Inclusion")
	assert.Empty(t, result.Circles)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Cannot open DXF file")
}

func TestImportDXFNotADrawing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.dxf")
	require.NoError(t, os.WriteFile(path, []byte("not a drawing"), 0644))

	result := ImportDXF(path, "Inclusion")
	assert.Empty(t, result.Circles)
	assert.NotEmpty(t, result.Errors)
}
