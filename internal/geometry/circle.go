// Package geometry implements the pairwise intersection tests that decide
// whether a candidate inclusion collides with an already-placed one. The
// tests are pure: they never mutate a shape or the accepted set.
package geometry

import (
	"math"

	"github.com/piwi3910/rvegen/internal/model"
)

// CirclesIntersect reports whether two circles overlap or touch. The test
// is inclusive at the boundary: centre distance exactly equal to the sum of
// radii counts as an intersection.
func CirclesIntersect(a, b model.Circle) bool {
	dist := math.Hypot(a.Centre.X-b.Centre.X, a.Centre.Y-b.Centre.Y)
	if dist > a.Radius+b.Radius {
		return false
	}
	// dist <= |r1 - r2| means one circle wholly contains the other. The
	// contained case is deliberately not distinguished from a plain overlap:
	// nested inclusions are rejected the same way touching ones are.
	return true
}

// CircleHitsAny reports whether the candidate collides with any circle in
// the placed set, short-circuiting on the first hit.
func CircleHitsAny(candidate model.Circle, placed []model.Circle) bool {
	for _, c := range placed {
		if CirclesIntersect(candidate, c) {
			return true
		}
	}
	return false
}
