package sweep

import "github.com/corvidgeo/tessellate/types"

// edgeList is an intrusive doubly linked list over edge handles: the
// prev/next cells it manipulates live in the shared edgeStore's arena,
// not in the list itself. A single edgeStore can back several
// edgeLists (the sweep line keeps one for the active set and one for
// leftovers) because an edge is only ever linked into one list at a
// time — the cells belong to whichever list currently owns them.
type edgeList[T types.Real] struct {
	store *edgeStore[T]
	head  handle
	tail  handle
}

func newEdgeList[T types.Real](store *edgeStore[T]) *edgeList[T] {
	return &edgeList[T]{store: store}
}

// push appends e at the tail of the list.
func (l *edgeList[T]) push(e handle) {
	ee := l.store.get(e)
	ee.prev = l.tail
	ee.next = 0

	if l.tail.valid() {
		l.store.get(l.tail).next = e
	} else {
		l.head = e
	}
	l.tail = e
}

// insert splices e immediately before the first candidate for which
// less(e, candidate) holds, scanning head to tail. If no such
// candidate exists, e is appended at the tail.
func (l *edgeList[T]) insert(e handle, less func(e, candidate handle) bool) {
	for c := l.head; c.valid(); c = l.store.get(c).next {
		if less(e, c) {
			l.insertBefore(e, c)
			return
		}
	}
	l.push(e)
}

// insertBefore splices e immediately before the existing list member
// before.
func (l *edgeList[T]) insertBefore(e, before handle) {
	ee := l.store.get(e)
	beforeEdge := l.store.get(before)

	ee.prev = beforeEdge.prev
	ee.next = before

	if beforeEdge.prev.valid() {
		l.store.get(beforeEdge.prev).next = e
	} else {
		l.head = e
	}
	beforeEdge.prev = e
}

// remove unlinks e from the list and clears its prev/next cells.
func (l *edgeList[T]) remove(e handle) {
	ee := l.store.get(e)
	prev, next := ee.prev, ee.next

	if prev.valid() {
		l.store.get(prev).next = next
	} else {
		l.head = next
	}
	if next.valid() {
		l.store.get(next).prev = prev
	} else {
		l.tail = prev
	}

	ee.prev = 0
	ee.next = 0
}

// swap exchanges e with its successor and reports true. If e has no
// successor it leaves the list unchanged and reports false;
// sweepLine.swapEdge passes that result on to its caller.
func (l *edgeList[T]) swap(e handle) bool {
	ee := l.store.get(e)
	next := ee.next
	if !next.valid() {
		return false
	}
	nextEdge := l.store.get(next)

	before := ee.prev
	after := nextEdge.next

	if before.valid() {
		l.store.get(before).next = next
	} else {
		l.head = next
	}
	if after.valid() {
		l.store.get(after).prev = e
	} else {
		l.tail = e
	}

	nextEdge.prev = before
	nextEdge.next = e
	ee.prev = next
	ee.next = after

	return true
}

// all iterates the list head to tail.
func (l *edgeList[T]) all(yield func(handle) bool) {
	for c := l.head; c.valid(); c = l.store.get(c).next {
		if !yield(c) {
			return
		}
	}
}

// pairs iterates the list two at a time, yielding (a, b), (c, d), ...
// and stopping without yielding a leftover singleton.
func (l *edgeList[T]) pairs(yield func(a, b handle) bool) {
	c := l.head
	for c.valid() {
		a := c
		b := l.store.get(a).next
		if !b.valid() {
			return
		}
		if !yield(a, b) {
			return
		}
		c = l.store.get(b).next
	}
}

// empty reports whether the list has no members.
func (l *edgeList[T]) empty() bool {
	return !l.head.valid()
}
