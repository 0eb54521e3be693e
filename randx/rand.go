package randx

import "github.com/clinia/numx/mathx"

// Rand draws values from a Source. Every call consumes exactly one value
// from the Source.
type Rand struct {
	src Source
}

// New returns a Rand reading from src. A nil src uses GlobalSource.
func New(src Source) *Rand {
	if src == nil {
		src = GlobalSource()
	}
	return &Rand{src: src}
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Scale returns a value in [0, max). A negative max yields a value in (max, 0].
func (r *Rand) Scale(max float64) float64 {
	return r.src.Float64() * max
}

// Range returns a value in [min, max), swapping the arguments when min > max.
func (r *Rand) Range(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	return r.src.Float64()*(max-min) + min
}

// Sample draws a value within b.
func (r *Rand) Sample(b Bounds) float64 {
	switch b.kind {
	case KindMax:
		return r.Scale(b.max)
	case KindRange:
		return r.Range(b.min, b.max)
	default:
		return r.Float64()
	}
}

// index returns floor(u * n) for one draw u, kept inside [0, n) for
// sources that stray outside [0, 1).
func (r *Rand) index(n int) int {
	return mathx.Constrain(int(r.src.Float64()*float64(n)), 0, n-1)
}
