package sweep

import (
	"github.com/google/btree"

	"github.com/corvidgeo/tessellate/numeric"
	"github.com/corvidgeo/tessellate/options"
	"github.com/corvidgeo/tessellate/types"
)

// queueEntry wraps an event with a monotonic sequence number so the
// backing btree — which de-duplicates entries its Less function treats
// as equivalent — can still hold the duplicate events that are
// explicitly permitted (two events can legitimately share a (Y, X)
// key, e.g. two Stop events at a shared endpoint).
type queueEntry[T types.Real] struct {
	evt event[T]
	seq uint64
}

// eventQueue is a min-heap of events ordered by (Y, X) ascending,
// realized as a [github.com/google/btree] tree the way the teacher
// realizes its own event queue — corrected from the teacher's
// descending-Y ordering (it sweeps top-to-bottom) to the ascending-Y
// ordering this algorithm requires.
type eventQueue[T types.Real] struct {
	tree    *btree.BTreeG[queueEntry[T]]
	epsilon T
	nextSeq uint64
}

func newEventQueue[T types.Real](opts ...options.GeometryOptionsFunc) *eventQueue[T] {
	o := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: numeric.DefaultEpsilon}, opts...)
	epsilon := T(o.Epsilon)

	q := &eventQueue[T]{epsilon: epsilon}
	q.tree = btree.NewG[queueEntry[T]](32, q.less)
	return q
}

func (q *eventQueue[T]) less(a, b queueEntry[T]) bool {
	if cmp := numeric.Compare(a.evt.point.Y(), b.evt.point.Y(), q.epsilon); cmp != 0 {
		return cmp < 0
	}
	if cmp := numeric.Compare(a.evt.point.X(), b.evt.point.X(), q.epsilon); cmp != 0 {
		return cmp < 0
	}
	return a.seq < b.seq
}

// push adds evt to the queue.
func (q *eventQueue[T]) push(evt event[T]) {
	q.tree.ReplaceOrInsert(queueEntry[T]{evt: evt, seq: q.nextSeq})
	q.nextSeq++
}

// pop removes and returns the event with the smallest (Y, X, seq) key.
func (q *eventQueue[T]) pop() (event[T], bool) {
	entry, ok := q.tree.DeleteMin()
	if !ok {
		return event[T]{}, false
	}
	return entry.evt, true
}

// len returns the number of queued events.
func (q *eventQueue[T]) len() int {
	return q.tree.Len()
}
