// Package contexture provides a high-level façade over the core scope tree
// and its collaborators (name ledger & logging), enabling independently
// authored components to exchange contextual bindings — on-demand values,
// fire-and-forget actions, publish/subscribe notifications and boolean flags —
// without holding direct references to each other. Most applications interact
// with this package by:
//  1. Creating a root scope via New() (optionally overriding the default
//     in-memory ledger or the no-op logger)
//  2. Coining binding names on the root (RequestableName, ExecutableName,
//     NotificationName, FlagName), typically as package-level variables
//  3. Creating subcontexts alongside component lifecycles and registering /
//     resolving bindings through them
//
// The façade delegates everything to core.GlobalContext while keeping setup
// ergonomics concise. All defaults are safe for local development and
// testing; applications typically supply a structured logger.
package contexture

import (
	"github.com/hupe1980/contexture/core"
	"github.com/hupe1980/contexture/ledger"
	"github.com/hupe1980/contexture/logging"
)

// Re-exported core types so common call sites only import the façade.
type (
	// Context is a scope node; see core.Context.
	Context = core.Context
	// GlobalContext is the root scope owning the name ledger.
	GlobalContext = core.GlobalContext
	// Notification is the immutable event value delivered to observers.
	Notification = core.Notification
	// Anchor is the host-supplied lifecycle capability for bound objects.
	Anchor = core.Anchor
)

// Options configures the root scope created by New.
type Options struct {
	// Name is the diagnostic name of the root scope.
	Name string

	// Ledger records coined names per kind (defaults to a fresh in-memory
	// ledger). Supply a shared instance when several trees must not reuse
	// identifier strings.
	Ledger core.NameLedger

	// Logger receives registry diagnostics (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// New creates a root scope with optional overrides. Any unset collaborator is
// initialized with an in-memory / no-op implementation.
func New(optFns ...func(o *Options)) *core.GlobalContext {
	opts := Options{
		Name:   "global",
		Ledger: ledger.NewInMemoryLedger(),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return core.NewGlobal(opts.Ledger, func(o *core.GlobalOptions) {
		o.Name = opts.Name
		o.Logger = opts.Logger
	})
}

// Request resolves a requestable through c and asserts its payload to T. It
// is a thin generic wrapper over core.RequestAs for façade-only call sites.
func Request[T any](c *core.Context, name core.RequestableName) (T, bool) {
	return core.RequestAs[T](c, name)
}
