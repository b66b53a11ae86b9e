package geom

import (
	"encoding/json"
	"fmt"

	"github.com/corvidgeo/tessellate/numeric"
	"github.com/corvidgeo/tessellate/options"
	"github.com/corvidgeo/tessellate/types"
)

// Segment is a non-horizontal line segment: an infinite [Line] clipped to
// the y-range [TopY, BottomY]. The sweep-line core only ever consumes
// non-horizontal segments — a horizontal edge never generates a Start or
// Stop event under an ascending-Y sweep, so NewSegment refuses to build
// one.
type Segment[T types.Real] struct {
	line   Line[T]
	topY   T
	bottom T
}

// NewSegment builds a Segment from two endpoints. It returns ok=false if a
// and b are (approximately) at the same y-coordinate, since a horizontal
// segment cannot be represented.
//
// Panics:
//   - If a or b carries a NaN coordinate. This is the one place NaN
//     could enter the sweep-line core silently (e.g. from a degenerate
//     curve-flattening step upstream in package path), and unlike the
//     horizontal case it has no sensible ok=false answer to give, so it
//     is asserted away instead. See [Recover].
func NewSegment[T types.Real](a, b Point[T], opts ...options.GeometryOptionsFunc) (Segment[T], bool) {
	if numeric.IsNaN(a.x) || numeric.IsNaN(a.y) || numeric.IsNaN(b.x) || numeric.IsNaN(b.y) {
		throwf("geom: NaN coordinate in segment %s-%s", a, b)
	}

	epsilon := resolveEpsilon[T](opts...)
	if numeric.FloatEquals(a.y, b.y, epsilon) {
		return Segment[T]{}, false
	}

	top, bottom := a, b
	if top.y > bottom.y {
		top, bottom = bottom, top
	}

	return Segment[T]{
		line:   NewLineFromPoints(top, bottom),
		topY:   top.y,
		bottom: bottom.y,
	}, true
}

// NewSegmentXY is a convenience wrapper around NewSegment that builds the
// two endpoints from raw coordinates.
func NewSegmentXY[T types.Real](x1, y1, x2, y2 T, opts ...options.GeometryOptionsFunc) (Segment[T], bool) {
	return NewSegment(NewPoint(x1, y1), NewPoint(x2, y2), opts...)
}

// Line returns the infinite line this segment lies on.
func (s Segment[T]) Line() Line[T] {
	return s.line
}

// TopY returns the smaller of the segment's two endpoint y-coordinates.
func (s Segment[T]) TopY() T {
	return s.topY
}

// BottomY returns the larger of the segment's two endpoint y-coordinates.
func (s Segment[T]) BottomY() T {
	return s.bottom
}

// Top returns the segment's endpoint with the smaller y-coordinate.
func (s Segment[T]) Top() Point[T] {
	p, _ := s.line.PointAtY(s.topY)
	return p
}

// Bottom returns the segment's endpoint with the larger y-coordinate.
func (s Segment[T]) Bottom() Point[T] {
	p, _ := s.line.PointAtY(s.bottom)
	return p
}

// XAtY returns the x-coordinate at which the segment's supporting line
// crosses the given y, and whether y falls within [TopY, BottomY].
// Vertical segments answer every y in range with their fixed x.
func (s Segment[T]) XAtY(y T, opts ...options.GeometryOptionsFunc) (T, bool) {
	epsilon := resolveEpsilon[T](opts...)
	if numeric.FloatLessThan(y, s.topY, epsilon) || numeric.FloatGreaterThan(y, s.bottom, epsilon) {
		return T(0), false
	}
	if s.line.IsVertical(opts...) {
		return s.line.Origin.x, true
	}
	p, ok := s.line.PointAtY(y, opts...)
	if !ok {
		return T(0), false
	}
	return p.x, true
}

// Intersection returns the point where s and t cross, and whether such a
// point exists within both segments' y-ranges.
func (s Segment[T]) Intersection(t Segment[T], opts ...options.GeometryOptionsFunc) (Point[T], bool) {
	epsilon := resolveEpsilon[T](opts...)
	p, ok := s.line.Intersection(t.line, opts...)
	if !ok {
		return Point[T]{}, false
	}
	if numeric.FloatLessThan(p.y, s.topY, epsilon) || numeric.FloatGreaterThan(p.y, s.bottom, epsilon) {
		return Point[T]{}, false
	}
	if numeric.FloatLessThan(p.y, t.topY, epsilon) || numeric.FloatGreaterThan(p.y, t.bottom, epsilon) {
		return Point[T]{}, false
	}
	return p, true
}

// Colinear reports whether s and t lie on (approximately) the same
// infinite line.
func (s Segment[T]) Colinear(t Segment[T], opts ...options.GeometryOptionsFunc) bool {
	epsilon := resolveEpsilon[T](opts...)
	if !s.line.Parallel(t.line, opts...) {
		return false
	}
	origin := s.line.Origin
	tip := origin.Add(s.line.Direction)
	return Orientation(origin, tip, t.line.Origin, epsilon) == types.PointsCollinear
}

// Eq reports whether s and t have (approximately) the same endpoints.
func (s Segment[T]) Eq(t Segment[T], opts ...options.GeometryOptionsFunc) bool {
	return s.Top().Eq(t.Top(), opts...) && s.Bottom().Eq(t.Bottom(), opts...)
}

// String returns a human-readable representation of the segment.
func (s Segment[T]) String() string {
	return fmt.Sprintf("%s%s", s.Top(), s.Bottom())
}

// MarshalJSON serializes Segment as JSON, recording its two endpoints.
func (s Segment[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Top    Point[T] `json:"top"`
		Bottom Point[T] `json:"bottom"`
	}{
		Top:    s.Top(),
		Bottom: s.Bottom(),
	})
}

// UnmarshalJSON deserializes JSON into a Segment. It fails if the
// decoded endpoints are horizontal, since a Segment cannot represent one.
func (s *Segment[T]) UnmarshalJSON(data []byte) error {
	var temp struct {
		Top    Point[T] `json:"top"`
		Bottom Point[T] `json:"bottom"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	seg, ok := NewSegment(temp.Top, temp.Bottom)
	if !ok {
		return fmt.Errorf("geom: segment %s-%s is horizontal", temp.Top, temp.Bottom)
	}
	*s = seg
	return nil
}
