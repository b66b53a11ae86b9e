package sweep

import (
	"fmt"

	"github.com/corvidgeo/tessellate/geom"
	"github.com/corvidgeo/tessellate/types"
)

// Trapezoid is a planar region bounded by two horizontal lines (TopY,
// BottomY) and two non-horizontal lines (LeftLine, RightLine).
type Trapezoid[T types.Real] struct {
	TopY      T
	BottomY   T
	LeftLine  geom.Line[T]
	RightLine geom.Line[T]
}

// String returns a human-readable representation of the trapezoid.
func (t Trapezoid[T]) String() string {
	return fmt.Sprintf("Trapezoid{top: %v, bottom: %v, left: %s, right: %s}", t.TopY, t.BottomY, t.LeftLine, t.RightLine)
}
