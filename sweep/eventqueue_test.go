package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidgeo/tessellate/geom"
)

func TestEventQueue_PopsInAscendingYThenX(t *testing.T) {
	q := newEventQueue[float64]()

	q.push(event[float64]{edge: 1, kind: eventStart, point: geom.NewPoint(5.0, 3.0)})
	q.push(event[float64]{edge: 2, kind: eventStart, point: geom.NewPoint(1.0, 1.0)})
	q.push(event[float64]{edge: 3, kind: eventStart, point: geom.NewPoint(2.0, 1.0)})
	q.push(event[float64]{edge: 4, kind: eventStart, point: geom.NewPoint(0.0, 5.0)})

	var ys, xs []float64
	for q.len() > 0 {
		evt, ok := q.pop()
		assert.True(t, ok)
		ys = append(ys, evt.point.Y())
		xs = append(xs, evt.point.X())
	}

	assert.Equal(t, []float64{1.0, 1.0, 3.0, 5.0}, ys)
	assert.Equal(t, []float64{1.0, 2.0, 5.0, 0.0}, xs)
}

func TestEventQueue_AllowsDuplicates(t *testing.T) {
	q := newEventQueue[float64]()

	q.push(event[float64]{edge: 1, kind: eventStop, point: geom.NewPoint(1.0, 1.0)})
	q.push(event[float64]{edge: 2, kind: eventStop, point: geom.NewPoint(1.0, 1.0)})

	assert.Equal(t, 2, q.len())

	_, ok := q.pop()
	assert.True(t, ok)
	assert.Equal(t, 1, q.len())
}

func TestEventQueue_PopEmpty(t *testing.T) {
	q := newEventQueue[float64]()
	_, ok := q.pop()
	assert.False(t, ok)
}
