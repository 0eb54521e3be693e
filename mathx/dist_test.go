package mathx

import (
	"fmt"
	"math"
	"testing"

	"github.com/clinia/numx/assertx"
	"github.com/stretchr/testify/assert"
)

func TestDist(t *testing.T) {
	t.Parallel()

	for k, tc := range []struct {
		x1, y1, x2, y2 float64
		expected       float64
	}{
		{0, 0, 3, 4, 5},
		{3, 4, 0, 0, 5},
		{1, 1, 1, 1, 0},
		{-1, -1, 2, 3, 5},
		{0, 0, 0, -2, 2},
		{0, 0, math.Inf(1), 0, math.Inf(1)},
	} {
		t.Run(fmt.Sprintf("case=%d", k), func(t *testing.T) {
			assert.Equal(t, tc.expected, Dist(tc.x1, tc.y1, tc.x2, tc.y2))
		})
	}
}

func TestDistIsSymmetric(t *testing.T) {
	t.Parallel()

	for _, p := range [][4]float64{
		{1.5, -2, 7.25, 3},
		{-100, 20, 30, -40},
		{0.001, 0.002, 0.003, 0.004},
	} {
		assertx.ApproxEqual(t, Dist(p[0], p[1], p[2], p[3]), Dist(p[2], p[3], p[0], p[1]), 1e-15)
	}
}
