package path

import (
	"iter"

	"github.com/corvidgeo/tessellate/geom"
	"github.com/corvidgeo/tessellate/types"
)

// Shape pairs a Path with a fill rule. sweep.Trapezoids accepts the
// rule but does not consult it, so the trapezoids it emits for a Shape
// are the same under either rule.
type Shape struct {
	Path     Path           `json:"path"`
	FillRule types.FillRule `json:"fillRule"`
}

// NewShape pairs p with rule.
func NewShape(p Path, rule types.FillRule) Shape {
	return Shape{Path: p, FillRule: rule}
}

// Segments flattens the shape's path and returns its segments as a lazy
// sequence, matching the iterator contract the sweep-line core's
// segment-source parameter expects.
func (s Shape) Segments(tolerance float64) iter.Seq[geom.Segment[float64]] {
	flattened := s.Path.Flatten(tolerance)
	return func(yield func(geom.Segment[float64]) bool) {
		for _, seg := range flattened {
			if !yield(seg) {
				return
			}
		}
	}
}
