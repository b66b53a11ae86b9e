package curve

import "github.com/corvidgeo/tessellate/geom"
import "github.com/corvidgeo/tessellate/types"

// Quadratic is a quadratic Bezier curve defined by a start point, one
// control point, and an end point.
type Quadratic[T types.Real] struct {
	From    geom.Point[T]
	Control geom.Point[T]
	To      geom.Point[T]
}

// NewQuadratic creates a new quadratic Bezier curve.
func NewQuadratic[T types.Real](from, control, to geom.Point[T]) Quadratic[T] {
	return Quadratic[T]{From: from, Control: control, To: to}
}

// Eval evaluates the curve at parameter t, which should lie in [0, 1].
func (q Quadratic[T]) Eval(t T) geom.Point[T] {
	mt := T(1) - t
	mt2 := mt * mt
	t2 := t * t
	two := T(2)

	x := q.From.X()*mt2 + q.Control.X()*two*mt*t + q.To.X()*t2
	y := q.From.Y()*mt2 + q.Control.Y()*two*mt*t + q.To.Y()*t2
	return geom.NewPoint(x, y)
}

// Flatten approximates the curve with a polyline of non-horizontal
// segments, subdividing until every control point lies within
// tolerance of its local chord.
func (q Quadratic[T]) Flatten(tolerance T) []geom.Segment[T] {
	points := []geom.Point[T]{q.From, q.Control, q.To}
	return toSegments(flatten(points, tolerance))
}
