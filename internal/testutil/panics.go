package testutil

import (
	"testing"

	"github.com/hupe1980/contexture/core"
	"github.com/stretchr/testify/require"
)

// RequireUsagePanic runs fn, requires it to panic with a *core.UsageError
// carrying the given reason, and returns the error for further assertions.
func RequireUsagePanic(t *testing.T, reason string, fn func()) *core.UsageError {
	t.Helper()
	var usageErr *core.UsageError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a usage-error panic")
			err, ok := r.(*core.UsageError)
			require.True(t, ok, "expected *core.UsageError panic, got %T: %v", r, r)
			usageErr = err
		}()
		fn()
	}()
	require.Equal(t, reason, usageErr.Reason)
	return usageErr
}

// RequireNoPanic runs fn and fails the test if it panics.
func RequireNoPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}
