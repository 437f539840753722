package geometry

import (
	"math"

	"github.com/piwi3910/rvegen/internal/model"
)

// Ellipse overlap is decided exactly, rotation included: two ellipse
// regions intersect iff their boundaries cross or one region encloses the
// other. The candidate ellipse is affine-mapped onto the unit circle, the
// other ellipse is carried through the same map (it stays an ellipse), and
// the verdict reduces to whether the transformed ellipse region comes
// within distance 1 of the origin. The point-to-ellipse distance uses
// robust root isolation (bisection to machine precision), so the test is
// exact up to floating point, with no bounding-shape approximation.

// EllipsesIntersect reports whether two ellipse regions overlap, touch, or
// one encloses the other.
func EllipsesIntersect(a, b model.Ellipse) bool {
	if a.LongAxis <= 0 || a.ShortAxis <= 0 || b.LongAxis <= 0 || b.ShortAxis <= 0 {
		return false
	}

	// Map a onto the unit circle: translate to a's centre, rotate by
	// -a.Angle, scale axes to 1. b's centre under the same map:
	cosA := math.Cos(a.Angle)
	sinA := math.Sin(a.Angle)
	dx := b.Centre.X - a.Centre.X
	dy := b.Centre.Y - a.Centre.Y
	cx := (cosA*dx + sinA*dy) / a.LongAxis
	cy := (-sinA*dx + cosA*dy) / a.ShortAxis

	// b's quadratic form in world coordinates:
	// (p-c)^T M (p-c) = 1 with M = R_b diag(1/lb^2, 1/sb^2) R_b^T.
	cosB := math.Cos(b.Angle)
	sinB := math.Sin(b.Angle)
	ql := 1 / (b.LongAxis * b.LongAxis)
	qs := 1 / (b.ShortAxis * b.ShortAxis)
	m00 := cosB*cosB*ql + sinB*sinB*qs
	m01 := cosB * sinB * (ql - qs)
	m11 := sinB*sinB*ql + cosB*cosB*qs

	// Carry M through the map: N = S^-1 R_a^T M R_a S^-1 with
	// S^-1 = diag(a.LongAxis, a.ShortAxis).
	k00 := cosA*cosA*m00 + 2*cosA*sinA*m01 + sinA*sinA*m11
	k01 := -cosA*sinA*m00 + (cosA*cosA-sinA*sinA)*m01 + cosA*sinA*m11
	k11 := sinA*sinA*m00 - 2*cosA*sinA*m01 + cosA*cosA*m11
	n00 := a.LongAxis * a.LongAxis * k00
	n01 := a.LongAxis * a.ShortAxis * k01
	n11 := a.ShortAxis * a.ShortAxis * k11

	// Origin inside the transformed ellipse covers the case where the unit
	// circle's centre lies in b (overlap or b encloses a's centre region).
	if cx*cx*n00+2*cx*cy*n01+cy*cy*n11 <= 1 {
		return true
	}

	// Principal axes of the transformed ellipse from the symmetric
	// eigendecomposition of N.
	trace := n00 + n11
	det := n00*n11 - n01*n01
	disc := math.Sqrt(math.Max(0, trace*trace-4*det))
	lMax := (trace + disc) / 2
	lMin := (trace - disc) / 2
	if lMin <= 0 {
		// N must be positive definite for a real ellipse; only severe
		// roundoff can get here, and then the axes are near-degenerate.
		return true
	}
	major := 1 / math.Sqrt(lMin)
	minor := 1 / math.Sqrt(lMax)

	// Eigenvector for the smaller eigenvalue gives the major direction.
	vx, vy := n01, lMin-n00
	if math.Hypot(vx, vy) < 1e-300 {
		if n00 <= n11 {
			vx, vy = 1, 0
		} else {
			vx, vy = 0, 1
		}
	}
	norm := math.Hypot(vx, vy)
	vx /= norm
	vy /= norm

	// Origin expressed in the transformed ellipse's principal frame.
	u := -cx*vx - cy*vy
	w := cx*vy - cy*vx

	return distancePointEllipse(major, minor, u, w) <= 1
}

// EllipseHitsAny reports whether the candidate collides with any ellipse in
// the placed set, short-circuiting on the first hit.
func EllipseHitsAny(candidate model.Ellipse, placed []model.Ellipse) bool {
	for _, e := range placed {
		if EllipsesIntersect(candidate, e) {
			return true
		}
	}
	return false
}

const maxBisections = 200

// distancePointEllipse returns the distance from (y0, y1) to the boundary
// of the axis-aligned ellipse x0^2/e0^2 + x1^2/e1^2 = 1 with e0 >= e1 > 0.
// Works for points inside and outside. This is the robust bisection scheme
// from Eberly's "Distance from a Point to an Ellipse".
func distancePointEllipse(e0, e1, y0, y1 float64) float64 {
	y0 = math.Abs(y0)
	y1 = math.Abs(y1)

	if y1 > 0 {
		if y0 > 0 {
			z0 := y0 / e0
			z1 := y1 / e1
			g := z0*z0 + z1*z1 - 1
			if g == 0 {
				return 0
			}
			r0 := (e0 / e1) * (e0 / e1)
			sbar := findRoot(r0, z0, z1, g)
			x0 := r0 * y0 / (sbar + r0)
			x1 := y1 / (sbar + 1)
			return math.Hypot(x0-y0, x1-y1)
		}
		// On the minor axis.
		return math.Abs(y1 - e1)
	}

	// On the major axis: the closest point is off-axis when the query is
	// within the evolute cusp.
	numer0 := e0 * y0
	denom0 := e0*e0 - e1*e1
	if numer0 < denom0 {
		xde0 := numer0 / denom0
		x0 := e0 * xde0
		x1 := e1 * math.Sqrt(1-xde0*xde0)
		return math.Hypot(x0-y0, x1)
	}
	return math.Abs(y0 - e0)
}

// findRoot solves F(s) = (r0 z0/(s+r0))^2 + (z1/(s+1))^2 - 1 = 0 on the
// bracket that contains the unique root, by bisection.
func findRoot(r0, z0, z1, g float64) float64 {
	n0 := r0 * z0
	s0 := z1 - 1
	s1 := 0.0
	if g > 0 {
		s1 = math.Hypot(n0, z1) - 1
	}

	var s float64
	for i := 0; i < maxBisections; i++ {
		s = (s0 + s1) / 2
		if s == s0 || s == s1 {
			break
		}
		ratio0 := n0 / (s + r0)
		ratio1 := z1 / (s + 1)
		g = ratio0*ratio0 + ratio1*ratio1 - 1
		if g > 0 {
			s0 = s
		} else if g < 0 {
			s1 = s
		} else {
			break
		}
	}
	return s
}
