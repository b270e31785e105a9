package num

import (
	"math"

	"golang.org/x/exp/constraints"
)

// saturate truncates f toward zero and clamps the result to
// [lo, hi]. NaN becomes zero.
func saturate[T constraints.Integer](f float64, lo, hi T) T {
	switch {
	case math.IsNaN(f):
		return 0
	case f <= float64(lo):
		return lo
	case f >= float64(hi):
		// float64(hi) may round up past hi for 64-bit types, so this
		// also catches values that would overflow the conversion.
		return hi
	}
	return T(f)
}
