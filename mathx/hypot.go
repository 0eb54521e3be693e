package mathx

import (
	"math"

	"github.com/clinia/numx/errorx"
	"github.com/spf13/cast"
)

// Hypot returns the Euclidean norm of values, sqrt(v0² + v1² + ...), without
// overflowing or underflowing on the squared intermediates.
//
// Any infinite value yields +Inf, even when another value is NaN. Otherwise
// NaN propagates. Hypot() is 0.
func Hypot(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}

	abs := make([]float64, len(values))
	largest := 0.0
	for i, v := range values {
		if math.IsInf(v, 0) {
			return math.Inf(1)
		}
		v = math.Abs(v)
		if v > largest {
			largest = v
		}
		abs[i] = v
	}

	if largest == 0 {
		largest = 1
	}

	// Neumaier compensated summation of the scaled squares.
	sum, compensation := 0.0, 0.0
	for _, v := range abs {
		m := v / largest
		// The explicit conversion keeps the compiler from fusing into an FMA.
		summand := float64(m*m) - compensation
		preliminary := sum + summand
		compensation = preliminary - sum - summand
		sum = preliminary
	}

	return math.Sqrt(sum) * largest
}

// HypotOf coerces every value to a float64 and returns their Hypot.
// Numeric strings and every integer or float type are accepted.
func HypotOf(values ...any) (float64, error) {
	fs := make([]float64, len(values))
	for i, v := range values {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			e := errorx.InvalidArgumentErrorf("value at index %d cannot be used as a number: %v", i, v)
			e.OriginalError = err
			return 0, e
		}
		fs[i] = f
	}

	return Hypot(fs...), nil
}
