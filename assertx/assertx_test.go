package assertx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockT struct {
	failed bool
}

func (m *mockT) Errorf(string, ...interface{}) {
	m.failed = true
}

func TestApproxEqual(t *testing.T) {
	t.Run("should accept values within the fraction", func(t *testing.T) {
		require.True(t, ApproxEqual(t, 100, 100.0000001, 1e-6))
	})

	t.Run("should treat NaNs as equal", func(t *testing.T) {
		require.True(t, ApproxEqual(t, math.NaN(), math.NaN(), 0))
	})

	t.Run("should reject values outside the fraction", func(t *testing.T) {
		mock := &mockT{}
		assert.False(t, ApproxEqual(mock, 100, 101, 1e-6))
		assert.True(t, mock.failed)
	})
}

func TestInHalfOpenRange(t *testing.T) {
	require.True(t, InHalfOpenRange(t, 0, 0, 1))
	require.True(t, InHalfOpenRange(t, 0.999, 0, 1))

	mock := &mockT{}
	assert.False(t, InHalfOpenRange(mock, 1, 0, 1))
	assert.False(t, InHalfOpenRange(mock, -0.001, 0, 1))
	assert.True(t, mock.failed)
}
