package mathx

import "github.com/samber/lo"

type mapOptions struct {
	withinBounds bool
}

// MapOption is a named func that customizes Map
type MapOption func(*mapOptions)

// WithinBounds clamps the result of Map to the target range, whichever
// direction that range runs.
func WithinBounds() MapOption {
	return func(o *mapOptions) {
		o.withinBounds = true
	}
}

// Map linearly re-maps n from the range [start1, stop1] to [start2, stop2].
//
// The result is not clamped unless WithinBounds is given, so values outside
// the source range map outside the target range. A degenerate source range
// (start1 == stop1) yields ±Inf or NaN.
func Map(n, start1, stop1, start2, stop2 float64, opts ...MapOption) float64 {
	o := mapOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	output := float64((n-start1)/(stop1-start1)*(stop2-start2)) + start2
	if !o.withinBounds {
		return output
	}

	low := lo.Ternary(start2 < stop2, start2, stop2)
	high := lo.Ternary(start2 < stop2, stop2, start2)
	return Constrain(output, low, high)
}

// Norm returns the position of n within [start, stop], where start is 0 and
// stop is 1. The result is not clamped.
func Norm(n, start, stop float64) float64 {
	return Map(n, start, stop, 0, 1)
}
