package ledger

import (
	"errors"
	"testing"

	"github.com/hupe1980/contexture/core"
)

// Interface compliance (compile-time assertions)
var _ core.NameLedger = (*InMemoryLedger)(nil)

func TestInMemoryLedger_CoinOncePerKind(t *testing.T) {
	l := NewInMemoryLedger()

	if err := l.Coin(core.KindRequestable, "total"); err != nil {
		t.Fatalf("first coinage failed: %v", err)
	}
	err := l.Coin(core.KindRequestable, "total")
	if err == nil {
		t.Fatal("expected error on duplicate coinage")
	}
	if !errors.Is(err, core.ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
}

func TestInMemoryLedger_KindsAreIndependent(t *testing.T) {
	l := NewInMemoryLedger()
	for _, kind := range []core.Kind{core.KindRequestable, core.KindExecutable, core.KindNotification, core.KindFlag} {
		if err := l.Coin(kind, "shared"); err != nil {
			t.Fatalf("coinage for kind %s failed: %v", kind, err)
		}
	}
}

func TestInMemoryLedger_AppendOnly(t *testing.T) {
	l := NewInMemoryLedger()
	if l.Coined(core.KindFlag, "busy") {
		t.Fatal("fresh ledger should have no entries")
	}
	if err := l.Coin(core.KindFlag, "busy"); err != nil {
		t.Fatalf("coinage failed: %v", err)
	}
	if !l.Coined(core.KindFlag, "busy") {
		t.Fatal("ledger should report coined name")
	}
	// there is no removal API; a second coinage must keep failing
	if err := l.Coin(core.KindFlag, "busy"); err == nil {
		t.Fatal("expected duplicate to fail permanently")
	}
}
