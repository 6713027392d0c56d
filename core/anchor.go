package core

// Anchor is the capability a host supplies to tie a binding's lifecycle to
// one of its own objects. The core never inspects host objects directly; it
// only polls these two predicates, lazily, on each access attempt.
//
// Typical host implementations:
//   - IsAlive reports whether the bound owner is still reachable (the host's
//     equivalent of a weak-handle validity check).
//   - IsActive reports whether the owner is currently attached to its active
//     display hierarchy (or whatever "in service" means for the host).
type Anchor interface {
	IsAlive() bool
	IsActive() bool
}

// AnchorFuncs adapts two plain predicates into an Anchor. Either func may be
// nil, in which case the corresponding predicate reports true.
type AnchorFuncs struct {
	Alive  func() bool
	Active func() bool
}

// IsAlive reports the Alive predicate (true when nil).
func (a AnchorFuncs) IsAlive() bool {
	if a.Alive == nil {
		return true
	}
	return a.Alive()
}

// IsActive reports the Active predicate (true when nil).
func (a AnchorFuncs) IsActive() bool {
	if a.Active == nil {
		return true
	}
	return a.Active()
}
