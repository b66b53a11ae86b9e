package geom

import (
	"testing"

	"github.com/corvidgeo/tessellate/options"
	"github.com/corvidgeo/tessellate/types"
	"github.com/stretchr/testify/assert"
)

func TestPoint_XY(t *testing.T) {
	p := NewPoint(3.0, 4.0)
	assert.Equal(t, 3.0, p.X())
	assert.Equal(t, 4.0, p.Y())
}

func TestPoint_AddSub(t *testing.T) {
	p := NewPoint(1.0, 2.0)
	v := NewVector(3.0, 4.0)

	got := p.Add(v)
	assert.Equal(t, NewPoint(4.0, 6.0), got)

	diff := got.Sub(p)
	assert.Equal(t, v, diff)
}

func TestPoint_Eq(t *testing.T) {
	tests := map[string]struct {
		a, b Point[float64]
		opts []options.GeometryOptionsFunc
		want bool
	}{
		"identical": {
			a: NewPoint(1.0, 1.0), b: NewPoint(1.0, 1.0), want: true,
		},
		"within default epsilon": {
			a: NewPoint(1.0, 1.0), b: NewPoint(1.0+1e-12, 1.0), want: true,
		},
		"outside default epsilon": {
			a: NewPoint(1.0, 1.0), b: NewPoint(1.1, 1.0), want: false,
		},
		"within explicit epsilon": {
			a: NewPoint(1.0, 1.0), b: NewPoint(1.0000001, 1.0),
			opts: []options.GeometryOptionsFunc{options.WithEpsilon(1e-6)},
			want: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Eq(tc.b, tc.opts...))
		})
	}
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(1,2)", NewPoint(1.0, 2.0).String())
}

func TestOrientation(t *testing.T) {
	tests := map[string]struct {
		a, b, c Point[float64]
		want    types.PointOrientation
	}{
		"collinear": {
			a: NewPoint(0, 0), b: NewPoint(1, 1), c: NewPoint(2, 2),
			want: types.PointsCollinear,
		},
		"counter-clockwise": {
			a: NewPoint(0, 0), b: NewPoint(1, 0), c: NewPoint(1, 1),
			want: types.PointsCounterClockwise,
		},
		"clockwise": {
			a: NewPoint(0, 0), b: NewPoint(1, 1), c: NewPoint(1, 0),
			want: types.PointsClockwise,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Orientation(tc.a, tc.b, tc.c, 1e-9))
		})
	}
}
