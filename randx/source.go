package randx

import "math/rand/v2"

// Source produces uniformly distributed values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies Source.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

// GlobalSource returns the process-wide math/rand/v2 generator as a Source.
func GlobalSource() Source {
	return globalSource{}
}
