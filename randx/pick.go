package randx

import (
	"github.com/clinia/numx/errorx"
	"github.com/samber/lo"
)

// Pick returns a uniformly chosen element of choices. It returns the zero
// value and false when choices is empty, without consuming a draw.
func Pick[T any](r *Rand, choices []T) (T, bool) {
	if len(choices) == 0 {
		var zero T
		return zero, false
	}
	return lo.SampleBy(choices, r.index), true
}

// MustPick is like Pick but panics with a failed precondition error when
// choices is empty.
func MustPick[T any](r *Rand, choices []T) T {
	v, ok := Pick(r, choices)
	if !ok {
		panic(errorx.FailedPreconditionErrorf("cannot pick from an empty list"))
	}
	return v
}
