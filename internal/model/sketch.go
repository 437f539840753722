package model

import "fmt"

// Sketch command generation for the FEA collaborator. Each shape emits a
// transform that offsets the sketch plane to its centre, followed by a
// perimeter-defined ellipse construction. The strings are opaque to this
// package; the only obligation is well-formed, geometrically correct
// parameters.

// SketchCommands emits the sketch script for an ellipse: a coordinate
// transform to the ellipse centre and a centre/perimeter construction with
// the long-axis endpoint on x and the short-axis endpoint on y.
func (e Ellipse) SketchCommands() []string {
	return sketchEllipse(e.Centre, e.LongAxis, e.ShortAxis)
}

// SketchCommands emits the sketch script for a circle as an equal-axis
// ellipse construction.
func (c Circle) SketchCommands() []string {
	return sketchEllipse(c.Centre, c.Radius, c.Radius)
}

func sketchEllipse(centre Point2D, longAxis, shortAxis float64) []string {
	return []string{
		fmt.Sprintf("t = p.MakeSketchTransform(sketchPlane=f[0], sketchPlaneSide=SIDE1, origin=(%g, %g, 0.0))", centre.X, centre.Y),
		"s = myModel.ConstrainedSketch(name='__profile__', sheetSize=20.0, transform=t)",
		"s.setPrimaryObject(option=SUPERIMPOSE)",
		fmt.Sprintf("s.EllipseByCenterPerimeter(center=(0.0, 0.0), axisPoint1=(%g, 0.0), axisPoint2=(0.0, %g))", longAxis, shortAxis),
	}
}
