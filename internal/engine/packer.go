package engine

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piwi3910/rvegen/internal/geometry"
	"github.com/piwi3910/rvegen/internal/model"
)

// PackingError reports that the trial budget ran out before all inclusions
// were placed. Everything placed so far is discarded by the caller;
// rejection sampling has no intrinsic termination guarantee near the
// feasibility limit, so the budget is the only stop.
type PackingError struct {
	Placed    int
	Requested int
	Attempts  int
}

func (e *PackingError) Error() string {
	return fmt.Sprintf("placed %d of %d inclusions before exhausting %d attempts", e.Placed, e.Requested, e.Attempts)
}

// Packer owns the accepted set for one run and drives rejection sampling.
// It is single-threaded: every intersection test reads the accepted set,
// and only a successful candidate appends to it.
type Packer struct {
	Settings model.GenerationSettings

	registry *model.Registry
	rng      *rand.Rand
}

// New creates a packer with an injected shape registry. A zero seed in the
// settings selects a time-based seed.
func New(settings model.GenerationSettings, registry *model.Registry) *Packer {
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Packer{
		Settings: settings,
		registry: registry,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Pack places the requested number of inclusions and returns the accepted
// distribution. A rejected candidate has no effect on the accepted set or
// on any shape.
func (p *Packer) Pack() (*model.Distribution, error) {
	s := p.Settings

	maxRadius, err := MaxRadius(s.BufferSize, s.NumInclusions, s.ScaleFactor)
	if err != nil {
		return nil, err
	}

	dist := model.NewDistribution(s.Kind, s.Container, s.MatrixMaterial)

	for i := 0; i < s.NumInclusions; i++ {
		placed := false
		for attempt := 0; attempt < s.MaxAttempts; attempt++ {
			candidate, err := p.sampleCandidate(maxRadius)
			if err != nil {
				return nil, err
			}
			if !InsideContainer(candidate, s.Container, s.BufferSize) {
				continue
			}
			if p.collides(candidate, dist) {
				continue
			}
			dist.Append(candidate)
			placed = true
			break
		}
		if !placed {
			return nil, &PackingError{Placed: i, Requested: s.NumInclusions, Attempts: s.MaxAttempts}
		}
	}

	return dist, nil
}

// sampleCandidate builds one randomly positioned and sized candidate via
// the registry. Centres are sampled over the whole container; the bounds
// check rejects anything protruding into the buffer zone.
func (p *Packer) sampleCandidate(maxRadius float64) (model.Shape, error) {
	s := p.Settings

	radius, err := SampleRadius(maxRadius, s.EqualSize, p.rng)
	if err != nil {
		return nil, err
	}

	spec := model.ShapeSpec{
		Material: s.InclusionMaterial,
		Centre: model.Point2D{
			X: p.rng.Float64() * s.Container.Width,
			Y: p.rng.Float64() * s.Container.Height,
		},
	}

	switch s.Kind {
	case model.KindCircle:
		spec.Radius = radius
	case model.KindEllipse:
		ratio := s.MinAspectRatio + p.rng.Float64()*(s.MaxAspectRatio-s.MinAspectRatio)
		spec.LongAxis = radius
		spec.ShortAxis = radius * ratio
		spec.Angle = p.rng.Float64() * math.Pi
	}

	return p.registry.Create(s.Kind, spec)
}

// collides tests the candidate against every placed shape, stopping at the
// first hit.
func (p *Packer) collides(candidate model.Shape, dist *model.Distribution) bool {
	switch shape := candidate.(type) {
	case model.Circle:
		return geometry.CircleHitsAny(shape, dist.Circles())
	case model.Ellipse:
		return geometry.EllipseHitsAny(shape, dist.Ellipses())
	default:
		return true
	}
}
