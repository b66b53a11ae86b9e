package sweep_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidgeo/tessellate/geom"
	"github.com/corvidgeo/tessellate/sweep"
	"github.com/corvidgeo/tessellate/types"
)

func seg(t *testing.T, x1, y1, x2, y2 float64) geom.Segment[float64] {
	t.Helper()
	s, ok := geom.NewSegmentXY(x1, y1, x2, y2)
	if !ok {
		t.Fatalf("segment (%v,%v)-(%v,%v) is horizontal", x1, y1, x2, y2)
	}
	return s
}

func collectPoints(t *testing.T, segments []geom.Segment[float64]) []geom.Point[float64] {
	t.Helper()
	var out []geom.Point[float64]
	for p := range sweep.Intersections(slices.Values(segments)) {
		out = append(out, p)
	}
	return out
}

func collectTrapezoids(t *testing.T, segments []geom.Segment[float64], rule types.FillRule) []sweep.Trapezoid[float64] {
	t.Helper()
	var out []sweep.Trapezoid[float64]
	for tr := range sweep.Trapezoids(slices.Values(segments), rule) {
		out = append(out, tr)
	}
	return out
}

// S1 - two crossing diagonals.
func TestS1_CrossingDiagonals(t *testing.T) {
	segments := []geom.Segment[float64]{
		seg(t, 0, 0, 10, 10),
		seg(t, 0, 10, 10, 0),
	}

	points := collectPoints(t, segments)
	if assert.Len(t, points, 1) {
		assert.True(t, geom.NewPoint(5.0, 5.0).Eq(points[0]))
	}

	traps := collectTrapezoids(t, segments, types.Winding)
	assert.Len(t, traps, 2)
	for _, tr := range traps {
		assert.GreaterOrEqual(t, tr.BottomY, tr.TopY)
	}
}

// S2 - axis-aligned square; horizontals are filtered and a single
// trapezoid spans the square's full height.
func TestS2_AxisAlignedSquare(t *testing.T) {
	segments := []geom.Segment[float64]{
		seg(t, 0, 0, 0, 1),
		seg(t, 1, 0, 1, 1),
	}

	points := collectPoints(t, segments)
	assert.Empty(t, points)

	traps := collectTrapezoids(t, segments, types.EvenOdd)
	if assert.Len(t, traps, 1) {
		assert.Equal(t, 0.0, traps[0].TopY)
		assert.Equal(t, 1.0, traps[0].BottomY)
	}
}

// S3 - colinear continuation: the mid-stream split must not produce a
// spurious emission.
func TestS3_ColinearContinuation(t *testing.T) {
	segments := []geom.Segment[float64]{
		seg(t, 0, 0, 0, 5),
		seg(t, 0, 5, 0, 10),
		seg(t, 1, 0, 1, 10),
	}

	traps := collectTrapezoids(t, segments, types.Winding)
	if assert.Len(t, traps, 1) {
		assert.Equal(t, 0.0, traps[0].TopY)
		assert.Equal(t, 10.0, traps[0].BottomY)
	}
}

// S4 - triangle with one horizontal edge filtered at ingest.
func TestS4_Triangle(t *testing.T) {
	segments := []geom.Segment[float64]{
		seg(t, 0, 0, 2, 4),
		seg(t, 4, 0, 2, 4),
	}

	points := collectPoints(t, segments)
	assert.Empty(t, points)

	traps := collectTrapezoids(t, segments, types.Winding)
	if assert.Len(t, traps, 1) {
		assert.Equal(t, 0.0, traps[0].TopY)
		assert.Equal(t, 4.0, traps[0].BottomY)
	}
}

// S5 - bowtie (self-intersecting).
func TestS5_Bowtie(t *testing.T) {
	segments := []geom.Segment[float64]{
		seg(t, 0, 0, 4, 4),
		seg(t, 4, 0, 0, 4),
	}

	points := collectPoints(t, segments)
	if assert.Len(t, points, 1) {
		assert.True(t, geom.NewPoint(2.0, 2.0).Eq(points[0]))
	}

	traps := collectTrapezoids(t, segments, types.EvenOdd)
	assert.Len(t, traps, 2)
}

// S6 - touching at an endpoint is not an intersection.
func TestS6_TouchAtEndpointIsNotAnIntersection(t *testing.T) {
	segments := []geom.Segment[float64]{
		seg(t, 0, 0, 2, 2),
		seg(t, 2, 2, 4, 0),
	}

	points := collectPoints(t, segments)
	assert.Empty(t, points)
}

func TestIntersections_SortedByYThenX(t *testing.T) {
	segments := []geom.Segment[float64]{
		seg(t, 0, 0, 10, 10),
		seg(t, 0, 10, 10, 0),
		seg(t, 2, 0, 2, 10),
		seg(t, 8, 0, 8, 10),
	}

	points := collectPoints(t, segments)
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		assert.True(t, prev.Y() < cur.Y() || (prev.Y() == cur.Y() && prev.X() <= cur.X()))
	}
}

func TestIntersections_Fused(t *testing.T) {
	segments := []geom.Segment[float64]{
		seg(t, 0, 0, 10, 10),
		seg(t, 0, 10, 10, 0),
	}

	stream := sweep.NewIntersectionStream(slices.Values(segments))
	for {
		if _, ok := stream.Next(); !ok {
			break
		}
	}
	_, ok := stream.Next()
	assert.False(t, ok)
	_, ok = stream.Next()
	assert.False(t, ok)
}

func TestTrapezoids_FusedLeftoversIdempotent(t *testing.T) {
	segments := []geom.Segment[float64]{
		seg(t, 0, 0, 0, 1),
		seg(t, 1, 0, 1, 1),
	}

	stream := sweep.NewTrapezoidStream(slices.Values(segments), types.Winding)
	var traps []sweep.Trapezoid[float64]
	for {
		tr, ok := stream.Next()
		if !ok {
			break
		}
		traps = append(traps, tr)
	}
	assert.Len(t, traps, 1)

	_, ok := stream.Next()
	assert.False(t, ok)
}

func TestTrapezoids_AllNonDegenerate(t *testing.T) {
	segments := []geom.Segment[float64]{
		seg(t, 0, 0, 10, 10),
		seg(t, 0, 10, 10, 0),
		seg(t, 2, 0, 2, 10),
		seg(t, 8, 0, 8, 10),
	}

	for _, tr := range collectTrapezoids(t, segments, types.EvenOdd) {
		assert.GreaterOrEqual(t, tr.BottomY, tr.TopY)
	}
}
