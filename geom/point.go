package geom

import (
	"encoding/json"
	"fmt"

	"github.com/corvidgeo/tessellate/numeric"
	"github.com/corvidgeo/tessellate/options"
	"github.com/corvidgeo/tessellate/types"
)

// Point represents a point in two-dimensional space with x and y
// coordinates of a generic [types.Real] type.
type Point[T types.Real] struct {
	x T
	y T
}

// NewPoint creates a new Point with the specified x and y coordinates.
func NewPoint[T types.Real](x, y T) Point[T] {
	return Point[T]{x: x, y: y}
}

// X returns the x-coordinate of the point.
func (p Point[T]) X() T {
	return p.x
}

// Y returns the y-coordinate of the point.
func (p Point[T]) Y() T {
	return p.y
}

// Add returns the point translated by the given vector.
func (p Point[T]) Add(v Vector[T]) Point[T] {
	return Point[T]{x: p.x + v.dx, y: p.y + v.dy}
}

// Sub returns the vector from q to p.
func (p Point[T]) Sub(q Point[T]) Vector[T] {
	return Vector[T]{dx: p.x - q.x, dy: p.y - q.y}
}

// Orientation classifies the turn from a to b to c: [types.PointsCollinear]
// if they lie on (approximately) one line within epsilon, otherwise
// [types.PointsClockwise] or [types.PointsCounterClockwise] according to
// the sign of the cross product of (b-a) and (c-a).
func Orientation[T types.Real](a, b, c Point[T], epsilon T) types.PointOrientation {
	cross := b.Sub(a).Cross(c.Sub(a))
	switch {
	case numeric.FloatEquals(cross, T(0), epsilon):
		return types.PointsCollinear
	case cross > 0:
		return types.PointsCounterClockwise
	default:
		return types.PointsClockwise
	}
}

// String returns a human-readable representation of the point, e.g. "(1,2)".
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.x, p.y)
}

// Eq reports whether p and q are equal, optionally within an epsilon
// tolerance supplied via [options.WithEpsilon].
func (p Point[T]) Eq(q Point[T], opts ...options.GeometryOptionsFunc) bool {
	epsilon := resolveEpsilon[T](opts...)
	return numeric.FloatEquals(p.x, q.x, epsilon) && numeric.FloatEquals(p.y, q.y, epsilon)
}

// MarshalJSON serializes Point as JSON.
func (p Point[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{
		X: float64(p.x),
		Y: float64(p.y),
	})
}

// UnmarshalJSON deserializes JSON into a Point.
func (p *Point[T]) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = T(temp.X)
	p.y = T(temp.Y)
	return nil
}
