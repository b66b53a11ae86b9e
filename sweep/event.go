package sweep

import (
	"fmt"

	"github.com/corvidgeo/tessellate/geom"
	"github.com/corvidgeo/tessellate/types"
)

// eventType distinguishes the three kinds of sweep event.
type eventType uint8

const (
	eventStart eventType = iota
	eventStop
	eventIntersection
)

// event is a single entry in the sweep's event queue: an edge, the
// kind of event, the point it occurs at, and — for Intersection events
// only — the other edge it was generated against.
type event[T types.Real] struct {
	edge      handle
	otherEdge handle
	kind      eventType
	point     geom.Point[T]
}

func (e event[T]) String() string {
	switch e.kind {
	case eventStart:
		return fmt.Sprintf("Start(edge=%d, %s)", e.edge, e.point)
	case eventStop:
		return fmt.Sprintf("Stop(edge=%d, %s)", e.edge, e.point)
	default:
		return fmt.Sprintf("Intersection(edge=%d, other=%d, %s)", e.edge, e.otherEdge, e.point)
	}
}
