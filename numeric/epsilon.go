package numeric

import (
	"cmp"
	"math"

	"github.com/corvidgeo/tessellate/types"
)

// DefaultEpsilon is the tolerance used for approximate comparisons when the
// caller has not supplied one via [github.com/corvidgeo/tessellate/options.WithEpsilon].
//
// It is deliberately coarser than machine epsilon: the sweep-line algorithm
// uses it to collapse "jitter" crossings (coordinates that differ only by
// floating-point rounding) into a single event, which is what spec's
// approximate-equality comparison policy requires.
const DefaultEpsilon = 1e-9

// FloatEquals returns true if a and b are equal within a small epsilon threshold.
func FloatEquals[T types.Real](a, b, epsilon T) bool {
	return Abs(a-b) <= epsilon
}

// FloatGreaterThan checks if 'a' is significantly greater than 'b'.
func FloatGreaterThan[T types.Real](a, b, epsilon T) bool {
	return a > b && !FloatEquals(a, b, epsilon)
}

// FloatGreaterThanOrEqualTo checks if 'a' is greater than or equal to 'b'.
func FloatGreaterThanOrEqualTo[T types.Real](a, b, epsilon T) bool {
	return a > b || FloatEquals(a, b, epsilon)
}

// FloatLessThan checks if 'a' is significantly less than 'b'.
func FloatLessThan[T types.Real](a, b, epsilon T) bool {
	return a < b && !FloatEquals(a, b, epsilon)
}

// FloatLessThanOrEqualTo checks if 'a' is less than or equal to 'b'.
func FloatLessThanOrEqualTo[T types.Real](a, b, epsilon T) bool {
	return a < b || FloatEquals(a, b, epsilon)
}

// SnapToEpsilon adjusts a floating-point value to eliminate small numerical imprecisions
// by snapping it to the nearest whole number if the difference is within a specified epsilon.
//
// Parameters:
//   - value: The floating-point number to adjust.
//   - epsilon: A small positive threshold. If the absolute difference between `value` and
//     the nearest whole number is less than `epsilon`, the value is snapped to that whole number.
//
// Returns:
//   - A floating-point number adjusted based on the specified epsilon, or the original value
//     if no adjustment is needed.
func SnapToEpsilon(value, epsilon float64) float64 {
	rounded := math.Round(value)
	if math.Abs(value-rounded) < epsilon {
		return rounded
	}
	return value
}

// Compare produces a three-way ordering of a and b that treats values
// within epsilon of each other as equal, rather than strictly less/greater.
//
// This is the comparator spec prescribes for both the event queue (§4.3)
// and the active-list ordering (§4.4): plain [cmp.Compare] would report
// spurious Less/Greater results for coordinates that only differ by
// floating-point rounding, which would explode the event queue with
// phantom intersections.
func Compare[T types.Real](a, b, epsilon T) int {
	if FloatEquals(a, b, epsilon) {
		return 0
	}
	return cmp.Compare(a, b)
}
