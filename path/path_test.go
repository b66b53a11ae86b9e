package path

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidgeo/tessellate/geom"
)

func TestBuilder_Triangle(t *testing.T) {
	var b Builder
	p := b.
		MoveTo(geom.NewPoint(0.0, 0.0)).
		LineTo(geom.NewPoint(4.0, 0.0)).
		LineTo(geom.NewPoint(2.0, 4.0)).
		Close().
		Path()

	segments := p.Flatten(0.1)

	// the top edge (0,0)-(4,0) is horizontal and contributes no segment;
	// the slanted LineTo (4,0)-(2,4) and the slanted close-back-to-start
	// line (2,4)-(0,0) do.
	assert.Len(t, segments, 2)
}

func TestBuilder_MoveWithoutPriorSubpathEmitsNoSegment(t *testing.T) {
	var b Builder
	p := b.MoveTo(geom.NewPoint(1.0, 1.0)).Path()

	segments := p.Flatten(0.1)
	assert.Empty(t, segments)
}

func TestBuilder_QuadTo(t *testing.T) {
	var b Builder
	p := b.
		MoveTo(geom.NewPoint(0.0, 0.0)).
		QuadTo(geom.NewPoint(10.0, 40.0), geom.NewPoint(20.0, 0.0)).
		Path()

	segments := p.Flatten(0.01)
	assert.Greater(t, len(segments), 1)
}

func TestBuilder_CubicTo(t *testing.T) {
	var b Builder
	p := b.
		MoveTo(geom.NewPoint(0.0, 0.0)).
		CubicTo(geom.NewPoint(0.0, 30.0), geom.NewPoint(20.0, -30.0), geom.NewPoint(20.0, 0.0)).
		Path()

	segments := p.Flatten(0.01)
	assert.Greater(t, len(segments), 1)
}

func TestBuilder_MultipleSubpaths(t *testing.T) {
	var b Builder
	p := b.
		MoveTo(geom.NewPoint(0.0, 0.0)).
		LineTo(geom.NewPoint(0.0, 4.0)).
		Close().
		MoveTo(geom.NewPoint(10.0, 0.0)).
		LineTo(geom.NewPoint(10.0, 4.0)).
		Close().
		Path()

	segments := p.Flatten(0.1)
	// each subpath: one vertical LineTo and one vertical Close-back
	// (the latter retraces the same edge, which is legal here).
	assert.Len(t, segments, 4)
}
