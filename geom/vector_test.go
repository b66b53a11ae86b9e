package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector_DXDY(t *testing.T) {
	v := NewVector(3.0, 4.0)
	assert.Equal(t, 3.0, v.DX())
	assert.Equal(t, 4.0, v.DY())
}

func TestVector_Scale(t *testing.T) {
	v := NewVector(1.0, 2.0)
	assert.Equal(t, NewVector(2.0, 4.0), v.Scale(2.0))
}

func TestVector_Cross(t *testing.T) {
	tests := map[string]struct {
		v, w Vector[float64]
		want float64
	}{
		"perpendicular": {
			v: NewVector(1.0, 0.0), w: NewVector(0.0, 1.0), want: 1.0,
		},
		"parallel": {
			v: NewVector(1.0, 1.0), w: NewVector(2.0, 2.0), want: 0.0,
		},
		"opposite rotation": {
			v: NewVector(0.0, 1.0), w: NewVector(1.0, 0.0), want: -1.0,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.v.Cross(tc.w), 1e-12)
		})
	}
}

func TestVector_Dot(t *testing.T) {
	v := NewVector(1.0, 2.0)
	w := NewVector(3.0, 4.0)
	assert.InDelta(t, 11.0, v.Dot(w), 1e-12)
}

func TestVector_Length(t *testing.T) {
	v := NewVector(3.0, 4.0)
	assert.InDelta(t, 5.0, v.Length(), 1e-12)
}

func TestVector_IsHorizontalVertical(t *testing.T) {
	assert.True(t, NewVector(5.0, 0.0).IsHorizontal(1e-9))
	assert.False(t, NewVector(5.0, 0.1).IsHorizontal(1e-9))
	assert.True(t, NewVector(0.0, 5.0).IsVertical(1e-9))
	assert.False(t, NewVector(0.1, 5.0).IsVertical(1e-9))
}

func TestVector_String(t *testing.T) {
	assert.Equal(t, "<1,2>", NewVector(1.0, 2.0).String())
}
