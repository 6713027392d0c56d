package testutil

// StubAnchor is a scripted core.Anchor whose two predicates are plain fields.
// Tests flip the fields to simulate a host object being detached or torn
// down.
type StubAnchor struct {
	Alive  bool
	Active bool
}

// NewStubAnchor returns an anchor that is alive and active.
func NewStubAnchor() *StubAnchor { return &StubAnchor{Alive: true, Active: true} }

// IsAlive reports the scripted Alive field.
func (a *StubAnchor) IsAlive() bool { return a.Alive }

// IsActive reports the scripted Active field.
func (a *StubAnchor) IsActive() bool { return a.Active }
