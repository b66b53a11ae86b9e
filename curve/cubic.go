package curve

import "github.com/corvidgeo/tessellate/geom"
import "github.com/corvidgeo/tessellate/types"

// Cubic is a cubic Bezier curve defined by a start point, two control
// points, and an end point.
type Cubic[T types.Real] struct {
	From     geom.Point[T]
	Control1 geom.Point[T]
	Control2 geom.Point[T]
	To       geom.Point[T]
}

// NewCubic creates a new cubic Bezier curve.
func NewCubic[T types.Real](from, control1, control2, to geom.Point[T]) Cubic[T] {
	return Cubic[T]{From: from, Control1: control1, Control2: control2, To: to}
}

// Eval evaluates the curve at parameter t, which should lie in [0, 1].
func (c Cubic[T]) Eval(t T) geom.Point[T] {
	t2 := t * t
	t3 := t2 * t
	mt := T(1) - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	three := T(3)

	x := c.From.X()*mt3 + c.Control1.X()*three*mt2*t + c.Control2.X()*three*mt*t2 + c.To.X()*t3
	y := c.From.Y()*mt3 + c.Control1.Y()*three*mt2*t + c.Control2.Y()*three*mt*t2 + c.To.Y()*t3
	return geom.NewPoint(x, y)
}

// Flatten approximates the curve with a polyline of non-horizontal
// segments, subdividing until every control point lies within
// tolerance of its local chord.
func (c Cubic[T]) Flatten(tolerance T) []geom.Segment[T] {
	points := []geom.Point[T]{c.From, c.Control1, c.Control2, c.To}
	return toSegments(flatten(points, tolerance))
}
