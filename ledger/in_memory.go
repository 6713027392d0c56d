package ledger

import (
	"fmt"
	"sync"

	"github.com/hupe1980/contexture/core"
)

// InMemoryLedger is a process-local core.NameLedger keeping the coined names
// per kind in plain sets. It is append-only for its lifetime: entries are
// never removed, matching the contract that a name string, once coined, stays
// claimed even after every binding under it has expired.
type InMemoryLedger struct {
	mu     sync.Mutex
	coined map[core.Kind]map[string]struct{}
}

// NewInMemoryLedger constructs an empty in-memory ledger.
func NewInMemoryLedger() *InMemoryLedger {
	return &InMemoryLedger{coined: make(map[core.Kind]map[string]struct{})}
}

// Coin claims raw for kind, returning an error wrapping core.ErrNameTaken
// when the string was already coined for that kind.
func (l *InMemoryLedger) Coin(kind core.Kind, raw string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	set, ok := l.coined[kind]
	if !ok {
		set = make(map[string]struct{})
		l.coined[kind] = set
	}
	if _, dup := set[raw]; dup {
		return fmt.Errorf("%w: %s %q", core.ErrNameTaken, kind, raw)
	}
	set[raw] = struct{}{}
	return nil
}

// Coined reports whether raw has ever been coined for kind.
func (l *InMemoryLedger) Coined(kind core.Kind, raw string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.coined[kind][raw]
	return ok
}
