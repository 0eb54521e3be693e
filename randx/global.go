package randx

var global = New(GlobalSource())

// Default returns the Rand backed by the process-wide generator.
func Default() *Rand {
	return global
}

func Float64() float64 {
	return global.Float64()
}

func Scale(max float64) float64 {
	return global.Scale(max)
}

func Range(min, max float64) float64 {
	return global.Range(min, max)
}

func Sample(b Bounds) float64 {
	return global.Sample(b)
}

// Choice picks from choices using the default Rand.
func Choice[T any](choices []T) (T, bool) {
	return Pick(global, choices)
}
