package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstrain(t *testing.T) {
	t.Parallel()

	// Test floats
	{
		for _, test := range []struct {
			v, low, high, expected float64
		}{
			{
				v:        0.5,
				low:      0,
				high:     1,
				expected: 0.5,
			},
			{
				v:        -0.5,
				low:      0,
				high:     1,
				expected: 0,
			},
			{
				v:        1.5,
				low:      0,
				high:     1,
				expected: 1,
			},
			{
				v:        0.999999,
				low:      1,
				high:     2,
				expected: 1,
			},
			{
				v:        2.000001,
				low:      1,
				high:     2,
				expected: 2,
			},
			{
				v:        math.Inf(1),
				low:      -1,
				high:     1,
				expected: 1,
			},
			{
				v:        math.Inf(-1),
				low:      -1,
				high:     1,
				expected: -1,
			},
		} {
			assert.Equal(t, test.expected, Constrain(test.v, test.low, test.high))
		}
	}

	// Test ints
	{
		for _, test := range []struct {
			v, low, high, expected int
		}{
			{
				v:        5,
				low:      0,
				high:     10,
				expected: 5,
			},
			{
				v:        -5,
				low:      0,
				high:     10,
				expected: 0,
			},
			{
				v:        15,
				low:      0,
				high:     10,
				expected: 10,
			},
			{
				v:        10,
				low:      0,
				high:     10,
				expected: 10,
			},
			{
				v:        0,
				low:      0,
				high:     10,
				expected: 0,
			},
		} {
			assert.Equal(t, test.expected, Constrain(test.v, test.low, test.high))
		}
	}
}

func TestConstrainInvertedBounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, Constrain(5, 10, 0))
	assert.Equal(t, 10.0, Constrain(-5.0, 10, 0))
	assert.Equal(t, 10.0, Constrain(50.0, 10, 0))
	assert.Equal(t, uint8(7), Constrain[uint8](200, 7, 3))
}

func TestConstrainStaysInRange(t *testing.T) {
	t.Parallel()

	low, high := -2.5, 3.25
	for n := -10.0; n <= 10; n += 0.125 {
		got := Constrain(n, low, high)
		assert.GreaterOrEqual(t, got, low)
		assert.LessOrEqual(t, got, high)
		if n <= low {
			assert.Equal(t, low, got)
		}
		if n >= high {
			assert.Equal(t, high, got)
		}
		if n > low && n < high {
			assert.Equal(t, n, got)
		}
	}
}

func TestConstrainNaN(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsNaN(Constrain(math.NaN(), 0, 1)))
	assert.True(t, math.IsNaN(Constrain(0.5, math.NaN(), 1)))
	assert.True(t, math.IsNaN(Constrain(0.5, 0, math.NaN())))
}
