package geom

import (
	"encoding/json"
	"fmt"

	"github.com/corvidgeo/tessellate/numeric"
	"github.com/corvidgeo/tessellate/types"
)

// Vector represents a direction and magnitude in two-dimensional space.
type Vector[T types.Real] struct {
	dx T
	dy T
}

// NewVector creates a new Vector with the specified dx and dy components.
func NewVector[T types.Real](dx, dy T) Vector[T] {
	return Vector[T]{dx: dx, dy: dy}
}

// DX returns the x-component of the vector.
func (v Vector[T]) DX() T {
	return v.dx
}

// DY returns the y-component of the vector.
func (v Vector[T]) DY() T {
	return v.dy
}

// Scale returns v scaled by factor.
func (v Vector[T]) Scale(factor T) Vector[T] {
	return Vector[T]{dx: v.dx * factor, dy: v.dy * factor}
}

// Cross returns the z-component of the 3D cross product of v and w, i.e.
// the determinant of the 2x2 matrix formed by v and w. Its sign indicates
// the rotational direction from v to w; a magnitude near zero indicates v
// and w are parallel.
func (v Vector[T]) Cross(w Vector[T]) T {
	return v.dx*w.dy - v.dy*w.dx
}

// Dot returns the dot product of v and w.
func (v Vector[T]) Dot(w Vector[T]) T {
	return v.dx*w.dx + v.dy*w.dy
}

// Length returns the Euclidean length of the vector.
func (v Vector[T]) Length() T {
	return numeric.Sqrt(v.Dot(v))
}

// IsHorizontal reports whether the vector is (approximately) horizontal,
// i.e. its dy component is within epsilon of zero.
func (v Vector[T]) IsHorizontal(epsilon T) bool {
	return numeric.FloatEquals(v.dy, T(0), epsilon)
}

// IsVertical reports whether the vector is (approximately) vertical, i.e.
// its dx component is within epsilon of zero.
func (v Vector[T]) IsVertical(epsilon T) bool {
	return numeric.FloatEquals(v.dx, T(0), epsilon)
}

// String returns a human-readable representation of the vector, e.g. "<1,2>".
func (v Vector[T]) String() string {
	return fmt.Sprintf("<%v,%v>", v.dx, v.dy)
}

// MarshalJSON serializes Vector as JSON.
func (v Vector[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		DX float64 `json:"dx"`
		DY float64 `json:"dy"`
	}{
		DX: float64(v.dx),
		DY: float64(v.dy),
	})
}

// UnmarshalJSON deserializes JSON into a Vector.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var temp struct {
		DX float64 `json:"dx"`
		DY float64 `json:"dy"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	v.dx = T(temp.DX)
	v.dy = T(temp.DY)
	return nil
}
