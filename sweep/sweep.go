package sweep

import (
	"iter"

	"github.com/corvidgeo/tessellate/geom"
	"github.com/corvidgeo/tessellate/options"
	"github.com/corvidgeo/tessellate/types"
)

// collect eagerly drains a lazy segment sequence into a slice: the
// arena both algorithm variants build is constructed once, up front,
// from the whole input (§6: "the core consumes the iterable eagerly to
// build its arena, then yields... lazily as next_event is polled").
func collect[T types.Real](segments iter.Seq[geom.Segment[T]]) []geom.Segment[T] {
	var out []geom.Segment[T]
	for seg := range segments {
		out = append(out, seg)
	}
	return out
}

// IntersectionStream is the explicit-stepping, lower-level form of
// Intersections: callers that want to pause the sweep between points
// (rather than ranging over a channel-like iterator) step it by hand.
type IntersectionStream[T types.Real] struct {
	engine *engine[T]
	done   bool
}

// NewIntersectionStream builds the edge arena from segments and
// prepares to report their pairwise intersections.
func NewIntersectionStream[T types.Real](segments iter.Seq[geom.Segment[T]], opts ...options.GeometryOptionsFunc) *IntersectionStream[T] {
	return &IntersectionStream[T]{
		engine: newEngine(collect(segments), noTrapezoids[T]{}, opts...),
	}
}

// Next advances the sweep to the next Intersection event and returns
// its point. It returns ok=false once the sweep is exhausted, and
// stays exhausted on every subsequent call (the stream is fused).
func (s *IntersectionStream[T]) Next() (geom.Point[T], bool) {
	if s.done {
		return geom.Point[T]{}, false
	}
	for {
		evt, ok := s.engine.nextEvent()
		if !ok {
			s.done = true
			return geom.Point[T]{}, false
		}
		if evt.kind == eventIntersection {
			return evt.point, true
		}
	}
}

// Len returns the number of events left in the queue, as a size hint.
// Any of them might turn out to be a non-intersection Start/Stop event
// or get filtered as spurious, and processing them can queue further
// Intersection events, so it does not bound the points still to come.
func (s *IntersectionStream[T]) Len() int {
	return s.engine.queue.len()
}

// Intersections reports every pairwise intersection point of segments,
// in non-decreasing (Y, X) order, as a lazy sequence.
func Intersections[T types.Real](segments iter.Seq[geom.Segment[T]], opts ...options.GeometryOptionsFunc) iter.Seq[geom.Point[T]] {
	return func(yield func(geom.Point[T]) bool) {
		stream := NewIntersectionStream(segments, opts...)
		for {
			p, ok := stream.Next()
			if !ok {
				return
			}
			if !yield(p) {
				return
			}
		}
	}
}

// TrapezoidStream is the explicit-stepping, lower-level form of
// Trapezoids.
type TrapezoidStream[T types.Real] struct {
	engine *engine[T]
	v      *trapezoidVariant[T]
	done   bool
}

// NewTrapezoidStream builds the edge arena from segments and prepares
// to tessellate the plane they describe into trapezoids.
func NewTrapezoidStream[T types.Real](segments iter.Seq[geom.Segment[T]], rule types.FillRule, opts ...options.GeometryOptionsFunc) *TrapezoidStream[T] {
	v := &trapezoidVariant[T]{fillRule: rule}
	return &TrapezoidStream[T]{
		engine: newEngine(collect(segments), v, opts...),
		v:      v,
	}
}

// Next returns the next completed trapezoid. It returns ok=false once
// every trapezoid — including those completed by the final
// leftover-fusion pass — has been yielded.
func (s *TrapezoidStream[T]) Next() (Trapezoid[T], bool) {
	if s.done {
		return Trapezoid[T]{}, false
	}

	for {
		if len(s.v.buffer) > 0 {
			t := s.v.buffer[0]
			s.v.buffer = s.v.buffer[1:]
			return t, true
		}

		if _, ok := s.engine.nextEvent(); ok {
			continue
		}

		if s.v.fusedLeftovers {
			s.done = true
			return Trapezoid[T]{}, false
		}
		s.v.fusedLeftovers = true

		for _, h := range s.engine.line.takeLeftovers() {
			edge := s.engine.store.get(h)
			if t, ok := s.engine.store.completeTrapezoid(h, edge.highestY.Y()); ok {
				s.v.buffer = append(s.v.buffer, t)
			}
		}
	}
}

// Len returns the number of trapezoids currently buffered and ready to
// be returned by Next without further sweeping. It does not bound
// trapezoids not yet discovered.
func (s *TrapezoidStream[T]) Len() int {
	return len(s.v.buffer)
}

// Trapezoids tessellates the plane described by segments into
// non-overlapping trapezoids under rule, as a lazy sequence.
//
// The fill rule is stored but not consulted: emission is the naive
// adjacent-active-pair pairing described in §4.5-§4.7, so Winding and
// EvenOdd produce the same trapezoids.
func Trapezoids[T types.Real](segments iter.Seq[geom.Segment[T]], rule types.FillRule, opts ...options.GeometryOptionsFunc) iter.Seq[Trapezoid[T]] {
	return func(yield func(Trapezoid[T]) bool) {
		stream := NewTrapezoidStream(segments, rule, opts...)
		for {
			t, ok := stream.Next()
			if !ok {
				return
			}
			if !yield(t) {
				return
			}
		}
	}
}
