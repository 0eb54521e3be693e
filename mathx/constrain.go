package mathx

// Constrain returns n clamped to the range [low, high].
//
// The bounds are not reordered: when low > high the result is always low.
// NaN operands follow the builtin min and max, so a NaN anywhere yields NaN.
func Constrain[N Number](n, low, high N) N {
	return max(min(n, high), low)
}
