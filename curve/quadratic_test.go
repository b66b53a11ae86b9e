package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidgeo/tessellate/geom"
)

func TestQuadratic_Eval(t *testing.T) {
	q := NewQuadratic(
		geom.NewPoint(0.0, 0.0),
		geom.NewPoint(2.0, 4.0),
		geom.NewPoint(4.0, 0.0),
	)

	assert.True(t, geom.NewPoint(0.0, 0.0).Eq(q.Eval(0.0)))
	assert.True(t, geom.NewPoint(4.0, 0.0).Eq(q.Eval(1.0)))

	mid := q.Eval(0.5)
	assert.InDelta(t, 2.0, mid.X(), 1e-9)
	assert.InDelta(t, 2.0, mid.Y(), 1e-9)
}

func TestQuadratic_Flatten_LinearIsSingleSegment(t *testing.T) {
	q := NewQuadratic(
		geom.NewPoint(0.0, 0.0),
		geom.NewPoint(2.0, 2.0),
		geom.NewPoint(4.0, 4.0),
	)

	segments := q.Flatten(1e-3)
	if assert.Len(t, segments, 1) {
		assert.True(t, geom.NewPoint(0.0, 0.0).Eq(segments[0].Top()))
		assert.True(t, geom.NewPoint(4.0, 4.0).Eq(segments[0].Bottom()))
	}
}

func TestQuadratic_Flatten_CurvedProducesMultipleSegments(t *testing.T) {
	q := NewQuadratic(
		geom.NewPoint(0.0, 0.0),
		geom.NewPoint(10.0, 40.0),
		geom.NewPoint(20.0, 0.0),
	)

	segments := q.Flatten(0.01)
	assert.Greater(t, len(segments), 1)

	// the chain of segments must join start to end continuously.
	assert.True(t, geom.NewPoint(0.0, 0.0).Eq(segments[0].Top()))
	assert.True(t, geom.NewPoint(20.0, 0.0).Eq(segments[len(segments)-1].Top()))
}

func TestQuadratic_Flatten_CoarserToleranceProducesFewerSegments(t *testing.T) {
	q := NewQuadratic(
		geom.NewPoint(0.0, 0.0),
		geom.NewPoint(10.0, 40.0),
		geom.NewPoint(20.0, 0.0),
	)

	coarse := q.Flatten(1.0)
	fine := q.Flatten(0.001)
	assert.LessOrEqual(t, len(coarse), len(fine))
}
