package export

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/rvegen/internal/model"
)

func circleDist(t *testing.T) *model.Distribution {
	t.Helper()
	dist := model.NewDistribution(model.KindCircle, model.UnitContainer(), "Matrix")
	c1, err := model.NewCircle("Inclusion", model.Point2D{X: 0.5, Y: 0.5}, 0.2)
	require.NoError(t, err)
	c2, err := model.NewCircle("Inclusion", model.Point2D{X: 0.1, Y: 0.9}, 0.05)
	require.NoError(t, err)
	dist.Append(c1)
	dist.Append(c2)
	return dist
}

func ellipseDist(t *testing.T) *model.Distribution {
	t.Helper()
	dist := model.NewDistribution(model.KindEllipse, model.UnitContainer(), "Matrix")
	e, err := model.NewEllipse("Inclusion", model.Point2D{X: 0.4, Y: 0.6}, 0.2, 0.1, 0.5)
	require.NoError(t, err)
	dist.Append(e)
	return dist
}

func TestExportInclusionsCircleReport(t *testing.T) {
	report := ExportInclusions(circleDist(t))

	lines := strings.Split(report, "\n")
	require.GreaterOrEqual(t, len(lines), 8)
	assert.Equal(t, "**Matrix:", lines[0])
	assert.Equal(t, "**Bottom left corner X, Bottom left corner Y, height, width", lines[1])
	assert.Equal(t, "0, 0, 1, 1", lines[2])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "**Circle distribution", lines[4])
	assert.Equal(t, "**Centre X, centre Y, radius, area", lines[5])
	assert.True(t, strings.HasPrefix(lines[6], "0.5, 0.5, 0.2, 0.12566"), "line = %q", lines[6])
	assert.True(t, strings.HasPrefix(lines[7], "0.1, 0.9, 0.05, "), "line = %q", lines[7])
}

func TestExportInclusionsEllipseReport(t *testing.T) {
	report := ExportInclusions(ellipseDist(t))

	lines := strings.Split(report, "\n")
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Equal(t, "**Ellipse distribution", lines[4])
	assert.Equal(t, "**Centre X, centre Y, long axis, short axis, aspect ratio, area, orientation(rad)", lines[5])

	fields := strings.Split(lines[6], ", ")
	require.Len(t, fields, 7)
	assert.Equal(t, "0.4", fields[0])
	assert.Equal(t, "0.6", fields[1])
	assert.Equal(t, "0.2", fields[2])
	assert.Equal(t, "0.1", fields[3])
	assert.Equal(t, "0.5", fields[4])
	assert.Equal(t, "0.5", fields[6])
}

func TestExportInclusionsEmpty(t *testing.T) {
	dist := model.NewDistribution(model.KindCircle, model.UnitContainer(), "Matrix")
	report := ExportInclusions(dist)

	// Header block only, no data lines.
	want := "**Matrix:\n" +
		"**Bottom left corner X, Bottom left corner Y, height, width\n" +
		"0, 0, 1, 1\n\n" +
		"**Circle distribution\n" +
		"**Centre X, centre Y, radius, area\n"
	assert.Equal(t, want, report)
}

// Every numeric field must parse back, and the area column must agree with
// the geometry columns.
func TestExportInclusionsRoundTrip(t *testing.T) {
	report := ExportInclusions(circleDist(t))
	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")

	for _, line := range lines[6:] {
		fields := strings.Split(line, ", ")
		require.Len(t, fields, 4)

		values := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			require.NoError(t, err, "field %q does not parse", f)
			values[i] = v
		}

		radius, area := values[2], values[3]
		assert.InDelta(t, math.Pi*radius*radius, area, 1e-12)
	}
}

func TestExportGrouped(t *testing.T) {
	dist := model.NewDistribution(model.KindCircle, model.UnitContainer(), "Resin")
	c1, err := model.NewCircle("Glass", model.Point2D{X: 0.3, Y: 0.3}, 0.1)
	require.NoError(t, err)
	c2, err := model.NewCircle("Carbon", model.Point2D{X: 0.7, Y: 0.7}, 0.1)
	require.NoError(t, err)
	c3, err := model.NewCircle("Glass", model.Point2D{X: 0.3, Y: 0.7}, 0.1)
	require.NoError(t, err)
	dist.Append(c1)
	dist.Append(c2)
	dist.Append(c3)

	out := ExportGrouped(dist)

	// Groups come out in sorted material order.
	carbonAt := strings.Index(out, "Material: Carbon:")
	glassAt := strings.Index(out, "Material: Glass:")
	require.NotEqual(t, -1, carbonAt)
	require.NotEqual(t, -1, glassAt)
	assert.Less(t, carbonAt, glassAt)

	assert.Equal(t, 2, strings.Count(out[glassAt:], "\t0.3, "), "both glass circles listed under Glass")
	assert.Contains(t, out, "Materials:\n\tCarbon\n\tGlass\n")
	assert.True(t, strings.HasSuffix(out, "Matrix Material:\n\tResin"), "out = %q", out)
}
