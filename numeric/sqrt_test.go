package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqrt(t *testing.T) {
	assert.InDelta(t, 3.0, Sqrt(9.0), 1e-12)
	assert.InDelta(t, float64(2), Sqrt(4.0), 1e-12)
	assert.InDelta(t, float32(2), Sqrt(float32(4.0)), 1e-6)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, Compare(1.0, 1.0+1e-12, DefaultEpsilon))
	assert.Equal(t, -1, Compare(1.0, 2.0, DefaultEpsilon))
	assert.Equal(t, 1, Compare(2.0, 1.0, DefaultEpsilon))
}
