package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/rvegen/internal/geometry"
	"github.com/piwi3910/rvegen/internal/model"
)

func seededSettings(kind model.ShapeKind, n int) model.GenerationSettings {
	s := model.DefaultSettings()
	s.Kind = kind
	s.NumInclusions = n
	s.Seed = 12345
	return s
}

func TestPackCircles(t *testing.T) {
	settings := seededSettings(model.KindCircle, 10)
	p := New(settings, model.NewRegistry())

	dist, err := p.Pack()
	require.NoError(t, err)
	require.Equal(t, 10, dist.Count())

	for _, s := range dist.Shapes {
		assert.True(t, InsideContainer(s, settings.Container, settings.BufferSize),
			"shape at %v protrudes into the buffer zone", s.Position())
	}

	circles := dist.Circles()
	require.Len(t, circles, 10)
	for i := 0; i < len(circles); i++ {
		for j := i + 1; j < len(circles); j++ {
			assert.False(t, geometry.CirclesIntersect(circles[i], circles[j]),
				"circles %d and %d overlap", i, j)
		}
	}
}

func TestPackEllipses(t *testing.T) {
	settings := seededSettings(model.KindEllipse, 8)
	p := New(settings, model.NewRegistry())

	dist, err := p.Pack()
	require.NoError(t, err)
	require.Equal(t, 8, dist.Count())

	ellipses := dist.Ellipses()
	require.Len(t, ellipses, 8)
	for _, e := range ellipses {
		assert.True(t, e.ShortAxis <= e.LongAxis, "short axis %g exceeds long axis %g", e.ShortAxis, e.LongAxis)
		ratio := e.ShortAxis / e.LongAxis
		assert.GreaterOrEqual(t, ratio, settings.MinAspectRatio)
		assert.LessOrEqual(t, ratio, settings.MaxAspectRatio)
	}
	for i := 0; i < len(ellipses); i++ {
		for j := i + 1; j < len(ellipses); j++ {
			assert.False(t, geometry.EllipsesIntersect(ellipses[i], ellipses[j]),
				"ellipses %d and %d overlap", i, j)
		}
	}
}

func TestPackDeterministicWithSeed(t *testing.T) {
	a, err := New(seededSettings(model.KindCircle, 6), model.NewRegistry()).Pack()
	require.NoError(t, err)
	b, err := New(seededSettings(model.KindCircle, 6), model.NewRegistry()).Pack()
	require.NoError(t, err)

	require.Equal(t, a.Count(), b.Count())
	for i := range a.Shapes {
		assert.Equal(t, a.Shapes[i].Position(), b.Shapes[i].Position())
		assert.Equal(t, a.Shapes[i].Area(), b.Shapes[i].Area())
	}
}

func TestPackCapacityError(t *testing.T) {
	settings := seededSettings(model.KindCircle, 4)
	settings.BufferSize = 0.25

	_, err := New(settings, model.NewRegistry()).Pack()
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
}

func TestPackBudgetExhaustion(t *testing.T) {
	// Scale factor 4 inflates the radius to ~0.18, so ten circles of
	// diameter ~0.36 can never all fit in the unit container: the run must
	// end in budget exhaustion no matter how the sampling goes.
	settings := seededSettings(model.KindCircle, 10)
	settings.ScaleFactor = 4.0
	settings.MaxAttempts = 200

	_, err := New(settings, model.NewRegistry()).Pack()
	var packErr *PackingError
	require.ErrorAs(t, err, &packErr)
	assert.Equal(t, 10, packErr.Requested)
	assert.Equal(t, 200, packErr.Attempts)
	assert.Less(t, packErr.Placed, packErr.Requested)
}

func TestPackMaterialsAssigned(t *testing.T) {
	settings := seededSettings(model.KindCircle, 5)
	settings.InclusionMaterial = "Fibre"
	settings.MatrixMaterial = "Resin"

	dist, err := New(settings, model.NewRegistry()).Pack()
	require.NoError(t, err)

	assert.Equal(t, model.MaterialRef("Resin"), dist.Matrix)
	for _, s := range dist.Shapes {
		assert.Equal(t, model.MaterialRef("Fibre"), s.MaterialRef())
	}
}
