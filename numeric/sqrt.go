package numeric

import (
	"math"

	"github.com/corvidgeo/tessellate/types"
)

// Sqrt computes the square root of a [types.Real] value with math.Sqrt.
// A float32 argument is converted to float64 for the call and the
// result converted back to float32.
//
// Parameters:
//   - n (T): the value to take the square root of.
//
// Returns:
//   - The square root of n, as the same type.
func Sqrt[T types.Real](n T) T {
	switch v := any(n).(type) {
	case float32:
		return any(float32(math.Sqrt(float64(v)))).(T)
	case float64:
		return any(math.Sqrt(v)).(T)
	default:
		panic("unreachable: types.Real is float32 | float64")
	}
}
