// Package engine runs the rejection-sampling placement algorithm: it
// computes the feasibility bounds for a requested packing, samples random
// candidates, and accepts the ones that clear the container bounds and the
// already-placed set.
package engine

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/piwi3910/rvegen/internal/model"
)

// MinInclusionRadius is the smallest radius the random-size branch will
// produce. Inclusions below this are too small to mesh downstream.
const MinInclusionRadius = 0.01

// CapacityError reports a circle count / buffer size combination whose
// buffers alone exceed the unit container, making the one-row bound
// mathematically infeasible.
type CapacityError struct {
	NumCircles int
	BufferSize float64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("cannot fit %d circles with buffer size %g", e.NumCircles, e.BufferSize)
}

// MaxRadius computes the largest radius such that numCircles equal circles,
// each separated and bordered by bufferSize, fit along one row of a
// unit-length container. This is a conservative closed-form bound for the
// sampler to scale down from, not a tight packing bound. scaleFactor
// multiplies the result: 0.5 halves it for easier fitting, 2 doubles it.
//
// A row of n circles needs n+1 buffers (two edges plus n-1 gaps), so the
// request is infeasible exactly when bufferSize*(n+1) > 1; the boundary
// case == 1 leaves zero radius but does not fail.
func MaxRadius(bufferSize float64, numCircles int, scaleFactor float64) (float64, error) {
	if bufferSize*2+float64(numCircles-1)*bufferSize > 1 {
		return 0, &CapacityError{NumCircles: numCircles, BufferSize: bufferSize}
	}
	n := float64(numCircles)
	return ((1 - bufferSize - bufferSize*n) / n) / 2 * scaleFactor, nil
}

// SampleRadius returns maxRadius for equal-sized runs, otherwise a radius
// sampled uniformly from [MinInclusionRadius, maxRadius]. The random branch
// needs maxRadius above the minimum to have a meaningful range.
func SampleRadius(maxRadius float64, equalSize bool, rng *rand.Rand) (float64, error) {
	if equalSize {
		return maxRadius, nil
	}
	if maxRadius <= MinInclusionRadius {
		return 0, fmt.Errorf("max radius %g leaves no sampling range above the %g minimum", maxRadius, MinInclusionRadius)
	}
	return MinInclusionRadius + rng.Float64()*(maxRadius-MinInclusionRadius), nil
}

// InsideContainer reports whether the shape sits entirely within the
// container, clear of the buffer zone along every edge. For ellipses the
// check uses the rotated ellipse's axis-aligned half-extents, so rotated
// candidates are bounded correctly.
func InsideContainer(s model.Shape, container model.Container, bufferSize float64) bool {
	var ex, ey float64
	switch shape := s.(type) {
	case model.Circle:
		ex = shape.Radius
		ey = shape.Radius
	case model.Ellipse:
		cos := math.Cos(shape.Angle)
		sin := math.Sin(shape.Angle)
		a := shape.LongAxis
		b := shape.ShortAxis
		ex = math.Sqrt(a*a*cos*cos + b*b*sin*sin)
		ey = math.Sqrt(a*a*sin*sin + b*b*cos*cos)
	default:
		// Rectangle carries no packing geometry in this core.
		return false
	}

	centre := s.Position()
	if centre.X-ex < bufferSize || centre.X+ex > container.Width-bufferSize {
		return false
	}
	if centre.Y-ey < bufferSize || centre.Y+ey > container.Height-bufferSize {
		return false
	}
	return true
}
