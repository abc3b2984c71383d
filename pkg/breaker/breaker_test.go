package breaker

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errBoom = stderrors.New("boom")

func fail() error    { return errBoom }
func succeed() error { return nil }

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb := NewCircuitBreaker("test", 2, time.Hour)

	require.ErrorIs(t, cb.Call(fail), errBoom)
	require.Equal(t, StateClosed, cb.State())
	require.ErrorIs(t, cb.Call(fail), errBoom)
	require.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Call(func() error { called = true; return nil })
	require.ErrorIs(t, err, ErrOpen)
	require.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := NewCircuitBreaker("test", 2, time.Hour)

	require.Error(t, cb.Call(fail))
	require.NoError(t, cb.Call(succeed))
	require.Error(t, cb.Call(fail))
	require.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := NewCircuitBreaker("test", 1, 10*time.Millisecond)

	require.Error(t, cb.Call(fail))
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(20 * time.Millisecond)

	// 半开试探失败，重新开启
	require.ErrorIs(t, cb.Call(fail), errBoom)
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(20 * time.Millisecond)

	require.NoError(t, cb.Call(succeed))
	require.Equal(t, StateClosed, cb.State())
}

func TestState_String(t *testing.T) {
	require.Equal(t, "closed", StateClosed.String())
	require.Equal(t, "open", StateOpen.String())
	require.Equal(t, "half-open", StateHalfOpen.String())
	require.Equal(t, "unknown", State(9).String())
}
