package sweep

import (
	"log"

	"github.com/corvidgeo/tessellate/geom"
	"github.com/corvidgeo/tessellate/numeric"
	"github.com/corvidgeo/tessellate/options"
	"github.com/corvidgeo/tessellate/types"
)

// variant distinguishes the two algorithm forms that share one driver
// loop: plain intersection reporting, and trapezoid tessellation. Both
// forms dispatch through this interface rather than duplicating
// nextEvent's logic.
type variant[T types.Real] interface {
	// onIncrementY runs whenever the event about to be dispatched has a
	// different Y than the sweep line's current Y, before the sweep
	// line's current Y is updated to match. It is the hook that drains
	// completable trapezoids for the band that just finished, using the
	// active-set snapshot as it stood at the end of that band; the
	// intersection-only variant does nothing here.
	onIncrementY(e *engine[T])

	// onStartEvent runs after a new edge has been added to the active
	// list on a Start event. The trapezoid variant uses it to fuse a
	// colinear leftover's partial onto the new edge.
	onStartEvent(e *engine[T], newEdge handle)

	// onIntersectionEvent runs before a's active-list successor swap, when
	// b is still a's successor. The trapezoid variant uses it to settle
	// the (a, b) pair's partial immediately: waiting for the next Y
	// advance to iterate active pairs would never again consider a as a
	// left edge once the swap moves it to b's right.
	onIntersectionEvent(e *engine[T], a, b handle)
}

// noTrapezoids is the intersections-only variant: both hooks are no-ops.
type noTrapezoids[T types.Real] struct{}

func (noTrapezoids[T]) onIncrementY(*engine[T])                        {}
func (noTrapezoids[T]) onStartEvent(*engine[T], handle)                {}
func (noTrapezoids[T]) onIntersectionEvent(*engine[T], handle, handle) {}

// trapezoidVariant is the tessellating variant: it buffers completed
// trapezoids, tracks the fill rule (currently unconsulted — see
// Trapezoids' doc comment), and remembers whether the final leftover
// sweep has already run.
type trapezoidVariant[T types.Real] struct {
	fillRule       types.FillRule
	buffer         []Trapezoid[T]
	fusedLeftovers bool
}

func (v *trapezoidVariant[T]) onIncrementY(e *engine[T]) {
	if numeric.Compare(e.line.currentY, e.pendingY, e.epsilon()) == 0 {
		return
	}

	for _, h := range e.line.takeLeftovers() {
		if t, ok := e.store.completeTrapezoid(h, e.store.get(h).highestY.Y()); ok {
			v.buffer = append(v.buffer, t)
		}
	}
	v.buffer = append(v.buffer, e.line.trapezoidsAtCurrentY()...)
}

func (v *trapezoidVariant[T]) onStartEvent(e *engine[T], newEdge handle) {
	newE := e.store.get(newEdge)

	var fused handle
	e.line.leftoverEdges(func(h handle) bool {
		leftover := e.store.get(h)
		if newE.lowestY.Y() <= leftover.highestY.Y() && e.store.colinear(newEdge, h) {
			fused = h
			return false
		}
		return true
	})

	if fused.valid() {
		newE.trapezoid = e.store.get(fused).trapezoid
		e.store.get(fused).trapezoid = nil
		e.line.removeLeftover(fused)
	}
}

// onIntersectionEvent settles the (a, b) pair's partial at the crossing
// itself, before swapEdge reorders the active list. a is only ever the
// left edge of a pending partial because of this exact adjacency, so
// once the swap happens a is never again iterated as a pair's left
// member for it; left unsettled here, its partial would never complete.
func (v *trapezoidVariant[T]) onIntersectionEvent(e *engine[T], a, b handle) {
	aEdge := e.store.get(a)
	if aEdge.trapezoid == nil || aEdge.trapezoid.rightEdge != b {
		return
	}

	y := e.line.currentY
	if t, ok := e.store.completeTrapezoid(a, y); ok {
		v.buffer = append(v.buffer, t)
	}
	if t, ok := e.store.startTrapezoid(b, a, y); ok {
		v.buffer = append(v.buffer, t)
	}
}

// engine is the generic driver shared by both algorithm variants: it
// owns the edge arena, the event queue, and the sweep-line state, and
// dispatches events through the variant's hooks.
type engine[T types.Real] struct {
	store *edgeStore[T]
	queue *eventQueue[T]
	line  *sweepLine[T]
	v     variant[T]
	opts  []options.GeometryOptionsFunc

	// pendingY is the Y of the event about to be dispatched, used by
	// onIncrementY to compare against the sweep line's Y before it is
	// advanced to match.
	pendingY T
}

func newEngine[T types.Real](segments []geom.Segment[T], v variant[T], opts ...options.GeometryOptionsFunc) *engine[T] {
	store := newEdgeStore(segments, opts...)
	e := &engine[T]{
		store: store,
		queue: newEventQueue[T](opts...),
		line:  newSweepLine(store, opts...),
		v:     v,
		opts:  opts,
	}

	store.all(func(h handle) bool {
		edge := store.get(h)
		e.queue.push(event[T]{edge: h, kind: eventStart, point: edge.lowestY})
		return true
	})

	return e
}

func (e *engine[T]) epsilon() T {
	o := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: numeric.DefaultEpsilon}, e.opts...)
	return T(o.Epsilon)
}

// isSpurious reports whether an Intersection event's point coincides
// with one of its edge's own endpoints — a crossing "detected" at an
// edge's own Start or Stop point, which the active-list reordering
// that produced it already reflects and which carries no new
// information.
func (e *engine[T]) isSpurious(evt event[T]) bool {
	if evt.kind != eventIntersection {
		return false
	}
	edge := e.store.get(evt.edge)
	epsilon := e.epsilon()
	return evt.point.Eq(edge.lowestY, options.WithEpsilon(float64(epsilon))) ||
		evt.point.Eq(edge.highestY, options.WithEpsilon(float64(epsilon)))
}

// nextEvent pops, filters, and dispatches the next event, returning
// false once the queue is exhausted.
func (e *engine[T]) nextEvent() (event[T], bool) {
	var evt event[T]
	for {
		popped, ok := e.queue.pop()
		if !ok {
			return event[T]{}, false
		}
		if e.isSpurious(popped) {
			continue
		}
		evt = popped
		break
	}

	logDebugf("[queue] popped event: %s", evt)

	e.pendingY = evt.point.Y()
	e.v.onIncrementY(e)
	e.line.setCurrentY(evt.point.Y())

	switch evt.kind {
	case eventStart:
		e.handleStart(evt)
	case eventStop:
		e.handleStop(evt)
	case eventIntersection:
		e.handleIntersection(evt)
	}

	return evt, true
}

func (e *engine[T]) handleStart(evt event[T]) {
	e.line.addEdge(evt.edge)
	edge := e.store.get(evt.edge)
	e.queue.push(event[T]{edge: evt.edge, kind: eventStop, point: edge.highestY})

	e.v.onStartEvent(e, evt.edge)

	prev, next := e.line.prev(evt.edge), e.line.next(evt.edge)
	if prev.valid() {
		if ev, ok := e.intersectionEvent(prev, evt.edge); ok {
			e.queue.push(ev)
		}
	}
	if next.valid() {
		if ev, ok := e.intersectionEvent(evt.edge, next); ok {
			e.queue.push(ev)
		}
	}
}

func (e *engine[T]) handleStop(evt event[T]) {
	prev, next := e.line.prev(evt.edge), e.line.next(evt.edge)
	e.line.removeEdge(evt.edge, prev, next)

	if prev.valid() && next.valid() {
		if ev, ok := e.intersectionEvent(prev, next); ok {
			e.queue.push(ev)
		}
	}
}

func (e *engine[T]) handleIntersection(evt event[T]) {
	if successor := e.line.next(evt.edge); successor.valid() {
		e.v.onIntersectionEvent(e, evt.edge, successor)
	}

	if !e.line.swapEdge(evt.edge) {
		// a logic error per spec's failure-semantics table: log and
		// no-op rather than panic, since this is never expected on
		// well-formed non-horizontal input.
		log.Printf("sweep: swap with no successor for edge %d at %s", evt.edge, evt.point)
		return
	}

	other := e.line.prev(evt.edge)
	if !other.valid() {
		return
	}

	otherPrev, otherNext := e.line.prev(other), e.line.next(other)
	if otherPrev.valid() {
		if ev, ok := e.intersectionEvent(otherPrev, other); ok {
			e.queue.push(ev)
		}
	}
	if otherNext.valid() {
		if ev, ok := e.intersectionEvent(other, otherNext); ok {
			e.queue.push(ev)
		}
	}
}

// intersectionEvent implements §4.8: a is expected to be the left
// neighbor of b. It returns false if the pairing was already processed
// in reverse, the segments do not cross, or a and b share an endpoint
// and the crossing is not at that endpoint. A crossing at a shared
// endpoint is returned as an event; isSpurious drops it when popped.
func (e *engine[T]) intersectionEvent(a, b handle) (event[T], bool) {
	aEdge, bEdge := e.store.get(a), e.store.get(b)
	epsilon := e.epsilon()

	if bEdge.lowestY.X() <= aEdge.lowestY.X() {
		return event[T]{}, false
	}

	point, ok := aEdge.segment.Intersection(bEdge.segment, e.opts...)
	if !ok {
		return event[T]{}, false
	}

	withEps := options.WithEpsilon(float64(epsilon))
	al, ah := aEdge.lowestY, aEdge.highestY
	bl, bh := bEdge.lowestY, bEdge.highestY

	switch {
	case al.Eq(bl, withEps) || al.Eq(bh, withEps):
		if !al.Eq(point, withEps) {
			return event[T]{}, false
		}
	case ah.Eq(bl, withEps) || ah.Eq(bh, withEps):
		if !ah.Eq(point, withEps) {
			return event[T]{}, false
		}
	}

	return event[T]{edge: a, otherEdge: b, kind: eventIntersection, point: point}, true
}
