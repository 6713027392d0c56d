package core

import (
	"github.com/hupe1980/contexture/logging"
)

// GlobalContext is the root of a scope tree. Besides acting as a plain
// Context it owns the NameLedger through which every identifier in the tree
// is coined, so two independently written components can never accidentally
// pick the same name string for unrelated bindings of the same kind.
//
// There is no hidden package-level instance; callers (typically via the
// contexture facade) construct one per process and tests construct their own,
// each with a fresh ledger.
type GlobalContext struct {
	*Context
	ledger NameLedger
}

// GlobalOptions configures construction of a GlobalContext.
type GlobalOptions struct {
	// Name is the diagnostic name of the root scope (default "global").
	Name string
	// Logger receives registry diagnostics; inherited by every subcontext.
	// Defaults to NoOpLogger.
	Logger logging.Logger
}

// NewGlobal constructs a root scope around the given ledger. The ledger is a
// required collaborator; it carries the process-wide name-uniqueness state
// and is deliberately injected rather than global (fresh ledgers per test).
func NewGlobal(ledger NameLedger, optFns ...func(*GlobalOptions)) *GlobalContext {
	opts := GlobalOptions{Name: "global", Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &GlobalContext{
		Context: newContext(opts.Name, nil, opts.Logger),
		ledger:  ledger,
	}
}

// Ledger returns the ledger names are coined through.
func (g *GlobalContext) Ledger() NameLedger { return g.ledger }

func (g *GlobalContext) coin(kind Kind, raw string) {
	if err := g.ledger.Coin(kind, raw); err != nil {
		usagePanic("Name", kind, raw, ReasonDuplicateName)
	}
}

// RequestableName coins an identifier for an on-demand value binding. Coining
// the same raw string twice for the same kind is a usage error; names are
// meant to be created once, typically as package-level variables, and live
// for the process lifetime.
func (g *GlobalContext) RequestableName(raw string) RequestableName {
	g.coin(KindRequestable, raw)
	return RequestableName(raw)
}

// ExecutableName coins an identifier for an action binding.
func (g *GlobalContext) ExecutableName(raw string) ExecutableName {
	g.coin(KindExecutable, raw)
	return ExecutableName(raw)
}

// NotificationName coins an identifier for a notification channel.
func (g *GlobalContext) NotificationName(raw string) NotificationName {
	g.coin(KindNotification, raw)
	return NotificationName(raw)
}

// FlagName coins an identifier for a boolean state marker.
func (g *GlobalContext) FlagName(raw string) FlagName {
	g.coin(KindFlag, raw)
	return FlagName(raw)
}
