// Package sweep implements a modified Bentley-Ottmann sweep-line that
// reports pairwise intersections of a set of non-horizontal line
// segments and, in its trapezoid variant, tessellates the plane they
// describe into non-overlapping trapezoids.
//
// The package is organized the way the algorithm itself is: an edge
// store (arena, this file), an active-set list (edgelist.go), an event
// queue (eventqueue.go), a sweep-line state machine (sweepline.go), and
// the driver that ties them together (algorithm.go).
package sweep

import (
	"github.com/corvidgeo/tessellate/geom"
	"github.com/corvidgeo/tessellate/options"
	"github.com/corvidgeo/tessellate/types"
)

// handle is a 1-based index into an edgeStore's arena; the zero value
// means "absent". Using a bare integer instead of a pointer keeps every
// edge reference stable and comparable, and keeps the arena free of
// reference cycles a garbage collector would otherwise have to trace.
type handle uint32

// valid reports whether h refers to a real arena slot.
func (h handle) valid() bool {
	return h != 0
}

// partialTrapezoid is the bookkeeping record attached to the left edge
// of a trapezoid under construction: the id of its right edge, and the
// Y at which it started. It is completed once its left edge stops
// sharing that right neighbor, producing a Trapezoid.
type partialTrapezoid[T types.Real] struct {
	rightEdge handle
	topY      T
}

// edge is one immutable arena entry plus its three interior-mutable
// cells. The segment, lowest/highest endpoints and id never change
// after construction; prev, next and trapezoid are mutated as the
// sweep advances.
type edge[T types.Real] struct {
	segment  geom.Segment[T]
	lowestY  geom.Point[T]
	highestY geom.Point[T]
	id       handle

	prev      handle
	next      handle
	trapezoid *partialTrapezoid[T]
}

// xAtY returns the X coordinate of e's supporting line at y. The caller
// guarantees e is non-horizontal, which every stored edge is.
func (e *edge[T]) xAtY(y T, opts ...options.GeometryOptionsFunc) T {
	p, _ := e.segment.Line().PointAtY(y, opts...)
	return p.X()
}

// edgeStore is the immutable, index-addressed arena of every
// non-horizontal segment participating in a sweep. It is allocated
// once, at construction, and never resized: handles remain valid for
// the arena's entire lifetime.
type edgeStore[T types.Real] struct {
	edges []edge[T]
	opts  []options.GeometryOptionsFunc
}

// newEdgeStore filters horizontal segments out of segments and builds
// the arena from the survivors, assigning 1-based ids in input order.
func newEdgeStore[T types.Real](segments []geom.Segment[T], opts ...options.GeometryOptionsFunc) *edgeStore[T] {
	store := &edgeStore[T]{opts: opts}
	store.edges = make([]edge[T], 0, len(segments))

	for _, seg := range segments {
		if seg.Line().IsHorizontal(opts...) {
			continue
		}
		top, bottom := seg.Top(), seg.Bottom()
		store.edges = append(store.edges, edge[T]{
			segment:  seg,
			lowestY:  top,
			highestY: bottom,
			id:       handle(len(store.edges) + 1),
		})
	}

	return store
}

// get returns a pointer to the arena slot for h. h must be valid.
func (s *edgeStore[T]) get(h handle) *edge[T] {
	return &s.edges[h-1]
}

// len returns the number of edges in the arena.
func (s *edgeStore[T]) len() int {
	return len(s.edges)
}

// all iterates every edge id in the arena, in arena (input) order.
func (s *edgeStore[T]) all(yield func(handle) bool) {
	for i := range s.edges {
		if !yield(handle(i + 1)) {
			return
		}
	}
}

// colinear reports whether e and f lie on (approximately) the same
// infinite line: f's line origin p and direction v give two reference
// points, p and p+v, and e is colinear with f iff e's line has
// (approximately) zero distance to both.
func (s *edgeStore[T]) colinear(e, f handle) bool {
	eEdge, fEdge := s.get(e), s.get(f)
	return eEdge.segment.Colinear(fEdge.segment, s.opts...)
}

// startTrapezoid applies the partial-trapezoid protocol for the
// adjacent active pair (left=leftID, right=rightID) at the current
// sweep Y, mutating left's partial cell and returning a completed
// Trapezoid if one was produced.
func (s *edgeStore[T]) startTrapezoid(leftID, rightID handle, currentY T) (Trapezoid[T], bool) {
	left := s.get(leftID)

	if left.trapezoid == nil {
		left.trapezoid = &partialTrapezoid[T]{rightEdge: rightID, topY: currentY}
		return Trapezoid[T]{}, false
	}

	if left.trapezoid.rightEdge == rightID {
		return Trapezoid[T]{}, false
	}

	if s.colinear(left.trapezoid.rightEdge, rightID) {
		left.trapezoid.rightEdge = rightID
		return Trapezoid[T]{}, false
	}

	completed, ok := s.completeTrapezoid(leftID, currentY)
	left.trapezoid = &partialTrapezoid[T]{rightEdge: rightID, topY: currentY}
	return completed, ok
}

// completeTrapezoid finishes e's pending partial at bottomY, clearing
// the partial cell and returning the Trapezoid unless it is degenerate
// (bottomY < topY), which is dropped per the failure-semantics table.
func (s *edgeStore[T]) completeTrapezoid(e handle, bottomY T) (Trapezoid[T], bool) {
	ee := s.get(e)
	partial := ee.trapezoid
	ee.trapezoid = nil

	if partial == nil {
		return Trapezoid[T]{}, false
	}
	if bottomY < partial.topY {
		return Trapezoid[T]{}, false
	}

	completed := Trapezoid[T]{
		TopY:      partial.topY,
		BottomY:   bottomY,
		LeftLine:  ee.segment.Line(),
		RightLine: s.get(partial.rightEdge).segment.Line(),
	}
	logDebugf("[result] completed trapezoid: %s", completed)
	return completed, true
}
