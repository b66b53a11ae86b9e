package numeric

import (
	"math"

	"github.com/corvidgeo/tessellate/types"
)

// IsNaN reports whether n is NaN, dispatching on the underlying
// [types.Real] type the way [Sqrt] does.
func IsNaN[T types.Real](n T) bool {
	switch v := any(n).(type) {
	case float32:
		return math.IsNaN(float64(v))
	case float64:
		return math.IsNaN(v)
	default:
		panic("unreachable: types.Real is float32 | float64")
	}
}
