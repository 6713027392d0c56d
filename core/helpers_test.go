package core_test

import (
	"github.com/hupe1980/contexture/core"
	"github.com/hupe1980/contexture/internal/testutil"
	"github.com/hupe1980/contexture/ledger"
)

// newGlobal returns a root scope with a fresh ledger and a no-op logger.
func newGlobal() *core.GlobalContext {
	return core.NewGlobal(ledger.NewInMemoryLedger())
}

// newGlobalCapturing returns a root scope whose logger records entries.
func newGlobalCapturing() (*core.GlobalContext, *testutil.CaptureLogger) {
	logger := &testutil.CaptureLogger{}
	g := core.NewGlobal(ledger.NewInMemoryLedger(), func(o *core.GlobalOptions) {
		o.Logger = logger
	})
	return g, logger
}
