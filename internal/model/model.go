package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ShapeKind identifies one of the supported inclusion geometries.
type ShapeKind string

const (
	KindCircle    ShapeKind = "Circle"
	KindEllipse   ShapeKind = "Ellipse"
	KindRectangle ShapeKind = "Rectangle"
)

// ErrDegenerateGeometry is returned when a shape parameter makes a derived
// quantity undefined (zero-length axis, non-positive radius).
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// Point2D represents a coordinate in the container's space.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MaterialRef is an opaque identifier for the material assigned to an
// inclusion. Shapes carry the reference; they never own material data.
type MaterialRef string

// Container is the rectangular region inclusions are packed into.
// The conventional microstructure container is the unit square, but both
// extents are parameters.
type Container struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// UnitContainer returns the conventional 1x1 container.
func UnitContainer() Container {
	return Container{Width: 1, Height: 1}
}

// Shape is the capability set shared by all inclusion geometries.
type Shape interface {
	Kind() ShapeKind
	Position() Point2D
	MaterialRef() MaterialRef
	Area() float64
	// Orientation is the rotation of the shape's long axis from the x-axis
	// in radians.
	Orientation() float64
	// SketchCommands emits the FEA sketch script that draws this shape,
	// one command per element.
	SketchCommands() []string
	// ReportLine renders the shape's row in the distribution report.
	ReportLine() string
}

// Circle is an inclusion with a single radius. Only the radius is stored;
// both ellipse axes are derived from it on demand, so they can never drift
// apart.
type Circle struct {
	Centre   Point2D     `json:"centre"`
	Radius   float64     `json:"radius"`
	Material MaterialRef `json:"material"`
}

// NewCircle validates and constructs a circle.
func NewCircle(material MaterialRef, centre Point2D, radius float64) (Circle, error) {
	if radius <= 0 {
		return Circle{}, fmt.Errorf("%w: radius %g must be positive", ErrDegenerateGeometry, radius)
	}
	return Circle{Centre: centre, Radius: radius, Material: material}, nil
}

func (c Circle) Kind() ShapeKind          { return KindCircle }
func (c Circle) Position() Point2D        { return c.Centre }
func (c Circle) MaterialRef() MaterialRef { return c.Material }

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Orientation() float64 { return 0 }

// LongAxis returns the circle's semi-axis; equal to ShortAxis by definition.
func (c Circle) LongAxis() float64 { return c.Radius }

// ShortAxis returns the circle's semi-axis; equal to LongAxis by definition.
func (c Circle) ShortAxis() float64 { return c.Radius }

// PerimeterLocation returns a point lying on the circle's perimeter.
func (c Circle) PerimeterLocation() Point2D {
	return Point2D{X: c.Centre.X + c.Radius, Y: c.Centre.Y}
}

// AsEllipse returns the equal-axis ellipse equivalent of the circle.
func (c Circle) AsEllipse() Ellipse {
	return Ellipse{
		Centre:    c.Centre,
		LongAxis:  c.Radius,
		ShortAxis: c.Radius,
		Material:  c.Material,
	}
}

func (c Circle) ReportLine() string {
	return fmt.Sprintf("%g, %g, %g, %g", c.Centre.X, c.Centre.Y, c.Radius, c.Area())
}

// Ellipse is an inclusion with distinct semi-axes. Angle is the rotation of
// the long axis from the x-axis in radians.
type Ellipse struct {
	Centre    Point2D     `json:"centre"`
	LongAxis  float64     `json:"long_axis"`
	ShortAxis float64     `json:"short_axis"`
	Angle     float64     `json:"angle"`
	Material  MaterialRef `json:"material"`
}

// NewEllipse validates and constructs an ellipse. Both axes must be positive
// and the short axis must not exceed the long axis.
func NewEllipse(material MaterialRef, centre Point2D, longAxis, shortAxis, angle float64) (Ellipse, error) {
	if longAxis <= 0 || shortAxis <= 0 {
		return Ellipse{}, fmt.Errorf("%w: axes %g x %g must be positive", ErrDegenerateGeometry, longAxis, shortAxis)
	}
	if shortAxis > longAxis {
		return Ellipse{}, fmt.Errorf("%w: short axis %g exceeds long axis %g", ErrDegenerateGeometry, shortAxis, longAxis)
	}
	return Ellipse{
		Centre:    centre,
		LongAxis:  longAxis,
		ShortAxis: shortAxis,
		Angle:     angle,
		Material:  material,
	}, nil
}

func (e Ellipse) Kind() ShapeKind          { return KindEllipse }
func (e Ellipse) Position() Point2D        { return e.Centre }
func (e Ellipse) MaterialRef() MaterialRef { return e.Material }

func (e Ellipse) Area() float64 {
	return math.Pi * e.ShortAxis * e.LongAxis
}

func (e Ellipse) Orientation() float64 { return e.Angle }

// AspectRatio returns short/long, in (0, 1] for a valid ellipse.
func (e Ellipse) AspectRatio() (float64, error) {
	if e.LongAxis == 0 {
		return 0, fmt.Errorf("%w: zero long axis", ErrDegenerateGeometry)
	}
	return e.ShortAxis / e.LongAxis, nil
}

func (e Ellipse) ReportLine() string {
	ratio := 0.0
	if e.LongAxis != 0 {
		ratio = e.ShortAxis / e.LongAxis
	}
	return fmt.Sprintf("%g, %g, %g, %g, %g, %g, %g",
		e.Centre.X, e.Centre.Y, e.LongAxis, e.ShortAxis, ratio, e.Area(), e.Angle)
}

// Rectangle is a placeholder variant: it participates in the shape
// enumeration but carries no packing geometry in this core.
type Rectangle struct {
	Centre   Point2D     `json:"centre"`
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	Material MaterialRef `json:"material"`
}

func NewRectangle(material MaterialRef, centre Point2D, width, height float64) (Rectangle, error) {
	return Rectangle{Centre: centre, Width: width, Height: height, Material: material}, nil
}

func (r Rectangle) Kind() ShapeKind          { return KindRectangle }
func (r Rectangle) Position() Point2D        { return r.Centre }
func (r Rectangle) MaterialRef() MaterialRef { return r.Material }
func (r Rectangle) Area() float64            { return 0 }
func (r Rectangle) Orientation() float64     { return 0 }
func (r Rectangle) SketchCommands() []string { return nil }

func (r Rectangle) ReportLine() string {
	return fmt.Sprintf("%g, %g", r.Centre.X, r.Centre.Y)
}

// Distribution is the accepted set of placed inclusions: append-only during
// a packing run, owned by the placement driver, immutable once exported.
type Distribution struct {
	ID        string      `json:"id"`
	Kind      ShapeKind   `json:"kind"`
	Container Container   `json:"container"`
	Matrix    MaterialRef `json:"matrix_material"`
	Shapes    []Shape     `json:"-"`
}

// NewDistribution creates an empty distribution for the given shape kind.
func NewDistribution(kind ShapeKind, container Container, matrix MaterialRef) *Distribution {
	return &Distribution{
		ID:        uuid.New().String()[:8],
		Kind:      kind,
		Container: container,
		Matrix:    matrix,
	}
}

// Append adds an accepted shape. Insertion order is preserved for export.
func (d *Distribution) Append(s Shape) {
	d.Shapes = append(d.Shapes, s)
}

// Count returns the number of placed inclusions.
func (d *Distribution) Count() int {
	return len(d.Shapes)
}

// TotalArea returns the summed area of all placed inclusions.
func (d *Distribution) TotalArea() float64 {
	var total float64
	for _, s := range d.Shapes {
		total += s.Area()
	}
	return total
}

// VolumeFraction returns the inclusion area share of the container.
func (d *Distribution) VolumeFraction() float64 {
	ca := d.Container.Width * d.Container.Height
	if ca == 0 {
		return 0
	}
	return d.TotalArea() / ca
}

// Circles returns the placed shapes as circles. It is the caller's
// responsibility to use this only on circle distributions.
func (d *Distribution) Circles() []Circle {
	circles := make([]Circle, 0, len(d.Shapes))
	for _, s := range d.Shapes {
		if c, ok := s.(Circle); ok {
			circles = append(circles, c)
		}
	}
	return circles
}

// Ellipses returns the placed shapes as ellipses, converting circles to
// their equal-axis equivalent.
func (d *Distribution) Ellipses() []Ellipse {
	ellipses := make([]Ellipse, 0, len(d.Shapes))
	for _, s := range d.Shapes {
		switch v := s.(type) {
		case Ellipse:
			ellipses = append(ellipses, v)
		case Circle:
			ellipses = append(ellipses, v.AsEllipse())
		}
	}
	return ellipses
}
