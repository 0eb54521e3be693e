package errorx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// PanicsWithCliniaError asserts that f panics with a CliniaError of the expected type and message.
// The original error, if any, is ignored.
func PanicsWithCliniaError(t *testing.T, expected CliniaError, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with error, but function did not panic")
		}
		actual, ok := r.(CliniaError)
		require.True(t, ok, "expected panic with CliniaError, got %T: %v", r, r)
		require.Equal(t, expected.Type, actual.Type)
		require.Equal(t, expected.Message, actual.Message)
	}()

	f()
}
