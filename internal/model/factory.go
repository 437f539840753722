package model

import (
	"errors"
	"fmt"
)

// ErrUnknownShapeKind is returned by Registry.Create for kinds that were
// never registered.
var ErrUnknownShapeKind = errors.New("unknown shape kind")

// ShapeSpec carries the geometry parameters forwarded to a shape
// constructor. Only the fields relevant to the requested kind are read;
// validation is the constructor's responsibility, not the registry's.
type ShapeSpec struct {
	Material MaterialRef
	Centre   Point2D

	// Circle
	Radius float64

	// Ellipse
	LongAxis  float64
	ShortAxis float64
	Angle     float64

	// Rectangle
	Width  float64
	Height float64
}

// Constructor builds one concrete shape from a spec.
type Constructor func(ShapeSpec) (Shape, error)

// Registry maps shape kinds to constructors. It is built once at startup
// and injected into the placement driver; there is no lazy process-wide
// cache to race on.
type Registry struct {
	constructors map[ShapeKind]Constructor
}

// NewRegistry returns a registry with all supported kinds registered.
func NewRegistry() *Registry {
	r := &Registry{constructors: make(map[ShapeKind]Constructor)}
	r.Register(KindCircle, func(spec ShapeSpec) (Shape, error) {
		return NewCircle(spec.Material, spec.Centre, spec.Radius)
	})
	r.Register(KindEllipse, func(spec ShapeSpec) (Shape, error) {
		return NewEllipse(spec.Material, spec.Centre, spec.LongAxis, spec.ShortAxis, spec.Angle)
	})
	r.Register(KindRectangle, func(spec ShapeSpec) (Shape, error) {
		return NewRectangle(spec.Material, spec.Centre, spec.Width, spec.Height)
	})
	return r
}

// Register adds a constructor for a kind. Re-registering an existing kind
// is a no-op, so the first registration wins.
func (r *Registry) Register(kind ShapeKind, ctor Constructor) {
	if _, ok := r.constructors[kind]; ok {
		return
	}
	r.constructors[kind] = ctor
}

// Kinds returns the registered shape kinds.
func (r *Registry) Kinds() []ShapeKind {
	kinds := make([]ShapeKind, 0, len(r.constructors))
	for k := range r.constructors {
		kinds = append(kinds, k)
	}
	return kinds
}

// Create builds a shape of the given kind from the spec.
func (r *Registry) Create(kind ShapeKind, spec ShapeSpec) (Shape, error) {
	ctor, ok := r.constructors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShapeKind, kind)
	}
	return ctor(spec)
}
