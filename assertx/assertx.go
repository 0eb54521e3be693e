package assertx

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

type tHelper interface {
	Helper()
}

func Equal(t assert.TestingT, expected interface{}, actual interface{}, opts ...cmp.Option) (ok bool) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !cmp.Equal(expected, actual, opts...) {
		t.Errorf("Not equal: \n%s", cmp.Diff(expected, actual, opts...))
		return false
	}

	return true
}

// ApproxEqual asserts that actual is within the relative fraction of expected.
// Two NaNs are considered equal, as are two infinities of the same sign.
func ApproxEqual(t assert.TestingT, expected, actual, fraction float64) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Equal(t, expected, actual, cmpopts.EquateApprox(fraction, 0), cmpopts.EquateNaNs())
}

// InHalfOpenRange asserts that low <= actual < high.
func InHalfOpenRange(t assert.TestingT, actual, low, high float64) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if actual >= low && actual < high {
		return true
	}

	return assert.Fail(t, "Value out of range", "expected %v to be in [%v, %v)", actual, low, high)
}
