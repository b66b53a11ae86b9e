package geom

import (
	"fmt"

	"github.com/corvidgeo/tessellate/numeric"
	"github.com/corvidgeo/tessellate/options"
	"github.com/corvidgeo/tessellate/types"
)

// Line represents an infinite line defined by an origin point and a
// direction vector.
type Line[T types.Real] struct {
	Origin    Point[T]
	Direction Vector[T]
}

// NewLine creates a new Line passing through origin in the given direction.
func NewLine[T types.Real](origin Point[T], direction Vector[T]) Line[T] {
	return Line[T]{Origin: origin, Direction: direction}
}

// NewLineFromPoints creates a new Line passing through a and b.
func NewLineFromPoints[T types.Real](a, b Point[T]) Line[T] {
	return Line[T]{Origin: a, Direction: b.Sub(a)}
}

// IsHorizontal reports whether the line is (approximately) horizontal.
func (l Line[T]) IsHorizontal(opts ...options.GeometryOptionsFunc) bool {
	epsilon := resolveEpsilon[T](opts...)
	return l.Direction.IsHorizontal(epsilon)
}

// IsVertical reports whether the line is (approximately) vertical.
func (l Line[T]) IsVertical(opts ...options.GeometryOptionsFunc) bool {
	epsilon := resolveEpsilon[T](opts...)
	return l.Direction.IsVertical(epsilon)
}

// Parallel reports whether l and m have (approximately) the same direction,
// up to sign.
func (l Line[T]) Parallel(m Line[T], opts ...options.GeometryOptionsFunc) bool {
	epsilon := resolveEpsilon[T](opts...)
	return numeric.FloatEquals(l.Direction.Cross(m.Direction), T(0), epsilon)
}

// Intersection returns the point where l and m cross, and whether such a
// point exists. Two lines that are parallel (including colinear lines)
// report ok=false: a full overlap is not a single point and is the
// caller's responsibility to detect separately.
func (l Line[T]) Intersection(m Line[T], opts ...options.GeometryOptionsFunc) (Point[T], bool) {
	epsilon := resolveEpsilon[T](opts...)

	denom := l.Direction.Cross(m.Direction)
	if numeric.FloatEquals(denom, T(0), epsilon) {
		return Point[T]{}, false
	}

	diff := m.Origin.Sub(l.Origin)
	t := diff.Cross(m.Direction) / denom

	return l.Origin.Add(l.Direction.Scale(t)), true
}

// Distance returns the perpendicular distance from p to l.
func (l Line[T]) Distance(p Point[T]) T {
	toPoint := p.Sub(l.Origin)
	return numeric.Abs(l.Direction.Cross(toPoint)) / l.Direction.Length()
}

// PointAtY returns the point on l at the given y-coordinate, and whether
// such a point is well-defined. A horizontal line has no unique point for
// a given y and reports ok=false.
func (l Line[T]) PointAtY(y T, opts ...options.GeometryOptionsFunc) (Point[T], bool) {
	epsilon := resolveEpsilon[T](opts...)
	if numeric.FloatEquals(l.Direction.dy, T(0), epsilon) {
		return Point[T]{}, false
	}
	t := (y - l.Origin.y) / l.Direction.dy
	return l.Origin.Add(l.Direction.Scale(t)), true
}

// PointAtX returns the point on l at the given x-coordinate, and whether
// such a point is well-defined. A vertical line has no unique point for a
// given x and reports ok=false.
func (l Line[T]) PointAtX(x T, opts ...options.GeometryOptionsFunc) (Point[T], bool) {
	epsilon := resolveEpsilon[T](opts...)
	if numeric.FloatEquals(l.Direction.dx, T(0), epsilon) {
		return Point[T]{}, false
	}
	t := (x - l.Origin.x) / l.Direction.dx
	return l.Origin.Add(l.Direction.Scale(t)), true
}

// String returns a human-readable representation of the line.
func (l Line[T]) String() string {
	return fmt.Sprintf("Line{Origin: %s, Direction: %s}", l.Origin, l.Direction)
}

func resolveEpsilon[T types.Real](opts ...options.GeometryOptionsFunc) T {
	o := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: numeric.DefaultEpsilon}, opts...)
	return T(o.Epsilon)
}
