package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidgeo/tessellate/geom"
)

func TestCubic_Eval(t *testing.T) {
	c := NewCubic(
		geom.NewPoint(0.0, 0.0),
		geom.NewPoint(0.0, 4.0),
		geom.NewPoint(4.0, 4.0),
		geom.NewPoint(4.0, 0.0),
	)

	assert.True(t, geom.NewPoint(0.0, 0.0).Eq(c.Eval(0.0)))
	assert.True(t, geom.NewPoint(4.0, 0.0).Eq(c.Eval(1.0)))
}

func TestCubic_Flatten_LinearIsSingleSegment(t *testing.T) {
	c := NewCubic(
		geom.NewPoint(0.0, 0.0),
		geom.NewPoint(1.0, 1.0),
		geom.NewPoint(2.0, 2.0),
		geom.NewPoint(3.0, 3.0),
	)

	segments := c.Flatten(1e-3)
	if assert.Len(t, segments, 1) {
		assert.True(t, geom.NewPoint(0.0, 0.0).Eq(segments[0].Top()))
		assert.True(t, geom.NewPoint(3.0, 3.0).Eq(segments[0].Bottom()))
	}
}

func TestCubic_Flatten_SCurveProducesMultipleSegments(t *testing.T) {
	c := NewCubic(
		geom.NewPoint(0.0, 0.0),
		geom.NewPoint(0.0, 30.0),
		geom.NewPoint(20.0, -30.0),
		geom.NewPoint(20.0, 0.0),
	)

	segments := c.Flatten(0.01)
	assert.Greater(t, len(segments), 1)
	assert.True(t, geom.NewPoint(0.0, 0.0).Eq(segments[0].Top()) || geom.NewPoint(0.0, 0.0).Eq(segments[0].Bottom()))
}
