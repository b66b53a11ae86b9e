package sweep

import (
	"math"

	"github.com/corvidgeo/tessellate/numeric"
	"github.com/corvidgeo/tessellate/options"
	"github.com/corvidgeo/tessellate/types"
)

// sweepLine wraps the active-set list, holds the current sweep Y, and
// owns the leftover list of finished edges that still carry a partial
// trapezoid. It is the single point where the active-set ordering
// invariant (§4.4) is enforced.
type sweepLine[T types.Real] struct {
	store     *edgeStore[T]
	currentY  T
	active    *edgeList[T]
	leftovers *edgeList[T]
	opts      []options.GeometryOptionsFunc
}

func newSweepLine[T types.Real](store *edgeStore[T], opts ...options.GeometryOptionsFunc) *sweepLine[T] {
	return &sweepLine[T]{
		store:     store,
		currentY:  T(math.Inf(-1)),
		active:    newEdgeList(store),
		leftovers: newEdgeList(store),
		opts:      opts,
	}
}

// setCurrentY advances the sweep to y.
func (s *sweepLine[T]) setCurrentY(y T) {
	s.currentY = y
}

// compareEdges implements the three-level ordering comparator from
// §4.4: X at the current Y, then start-X, then end-X.
func (s *sweepLine[T]) compareEdges(e, f handle) int {
	epsilon := s.epsilon()

	ee, fe := s.store.get(e), s.store.get(f)

	if cmp := numeric.Compare(ee.xAtY(s.currentY, s.opts...), fe.xAtY(s.currentY, s.opts...), epsilon); cmp != 0 {
		return cmp
	}
	if cmp := numeric.Compare(ee.lowestY.X(), fe.lowestY.X(), epsilon); cmp != 0 {
		return cmp
	}
	return numeric.Compare(ee.highestY.X(), fe.highestY.X(), epsilon)
}

func (s *sweepLine[T]) epsilon() T {
	o := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: numeric.DefaultEpsilon}, s.opts...)
	return T(o.Epsilon)
}

// addEdge inserts e into the active list at the position the ordering
// comparator dictates: before the first existing member c for which
// the comparator reports Less or Equal.
func (s *sweepLine[T]) addEdge(e handle) {
	logDebugf("[active] inserting edge: %s", s.store.get(e).segment)
	s.active.insert(e, func(e, c handle) bool {
		return s.compareEdges(e, c) <= 0
	})
}

// removeEdge unlinks e from the active list. If e still carries a
// partial trapezoid, the colinear-continuation check runs both here and
// on the new edge's Start (onStartEvent in algorithm.go): the event
// queue gives no ordering guarantee between a Stop and a Start sharing
// the same point, so an edge already active when e stops must be
// checked directly rather than relying solely on the leftover list.
// prev and next are e's active-list neighbors captured before removal;
// if either is already colinear with e and picks up where e leaves off,
// e's partial transfers onto it immediately and e never reaches the
// leftover list. Otherwise the partial is parked on the leftover list
// for a later Start to claim.
func (s *sweepLine[T]) removeEdge(e handle, prev, next handle) {
	logDebugf("[active] removing edge: %s", s.store.get(e).segment)
	s.active.remove(e)

	ee := s.store.get(e)
	if ee.trapezoid == nil {
		return
	}

	epsilon := s.epsilon()
	for _, c := range [2]handle{prev, next} {
		if !c.valid() {
			continue
		}
		ce := s.store.get(c)
		if numeric.Compare(ce.lowestY.Y(), ee.highestY.Y(), epsilon) <= 0 && s.store.colinear(e, c) {
			ce.trapezoid = ee.trapezoid
			ee.trapezoid = nil
			return
		}
	}

	s.leftovers.push(e)
}

// swapEdge swaps e with its active-list successor. It reports false —
// logged as a no-op by the caller, never a panic — if e has no
// successor, which per §9 is not expected to be reachable on
// well-formed non-horizontal input.
func (s *sweepLine[T]) swapEdge(e handle) bool {
	logDebugf("[active] swapping edge: %s", s.store.get(e).segment)
	return s.active.swap(e)
}

// next returns e's current active-list successor, or the zero handle.
func (s *sweepLine[T]) next(e handle) handle {
	return s.store.get(e).next
}

// prev returns e's current active-list predecessor, or the zero handle.
func (s *sweepLine[T]) prev(e handle) handle {
	return s.store.get(e).prev
}

// leftoverEdges iterates the leftover list in insertion order.
func (s *sweepLine[T]) leftoverEdges(yield func(handle) bool) {
	s.leftovers.all(yield)
}

// removeLeftover unlinks e from the leftover list without touching its
// partial-trapezoid cell.
func (s *sweepLine[T]) removeLeftover(e handle) {
	s.leftovers.remove(e)
}

// takeLeftovers drains the leftover list, returning every member in
// insertion order.
func (s *sweepLine[T]) takeLeftovers() []handle {
	var drained []handle
	s.leftovers.all(func(e handle) bool {
		drained = append(drained, e)
		return true
	})
	for _, e := range drained {
		s.leftovers.remove(e)
	}
	return drained
}

// trapezoidsAtCurrentY iterates the active list in adjacent pairs and
// applies the partial-trapezoid protocol to each, returning every
// Trapezoid completed in the process. Order matches §4.7: leftovers
// are the caller's responsibility (drained separately before this is
// called), followed by left-to-right pair order here.
func (s *sweepLine[T]) trapezoidsAtCurrentY() []Trapezoid[T] {
	var completed []Trapezoid[T]
	s.active.pairs(func(left, right handle) bool {
		if t, ok := s.store.startTrapezoid(left, right, s.currentY); ok {
			completed = append(completed, t)
		}
		return true
	})
	return completed
}
