package mathx

// Dist returns the straight-line distance between (x1, y1) and (x2, y2).
func Dist(x1, y1, x2, y2 float64) float64 {
	return Hypot(x2-x1, y2-y1)
}
