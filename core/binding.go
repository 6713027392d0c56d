package core

// bindingConfig accumulates the availability and expiry predicates supplied
// via BindingOption values at registration time.
type bindingConfig struct {
	available func() bool
	expired   func() bool
}

func newBindingConfig(opts []BindingOption) bindingConfig {
	cfg := bindingConfig{
		available: func() bool { return true },
		expired:   func() bool { return false },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// BindingOption customizes the availability or expiry of a binding at
// registration time. Without options a binding is always available and never
// expires.
type BindingOption func(*bindingConfig)

// When sets the availability predicate. An unavailable binding still occupies
// its name; resolving it is a usage error rather than a fall-through.
func When(pred func() bool) BindingOption {
	return func(cfg *bindingConfig) { cfg.available = pred }
}

// ExpiresWhen sets the expiry predicate. Expiry is polled lazily on each
// access attempt; there is no background sweeping.
func ExpiresWhen(pred func() bool) BindingOption {
	return func(cfg *bindingConfig) { cfg.expired = pred }
}

// ExpiresWith derives expiry from an anchor: the binding is expired once the
// anchored host object is no longer alive.
func ExpiresWith(a Anchor) BindingOption {
	return func(cfg *bindingConfig) {
		cfg.expired = func() bool { return !a.IsAlive() }
	}
}

// Attached derives both predicates from an anchor: available while the host
// object is active, expired once it is no longer alive.
func Attached(a Anchor) BindingOption {
	return func(cfg *bindingConfig) {
		cfg.available = a.IsActive
		cfg.expired = func() bool { return !a.IsAlive() }
	}
}

// Requestable is a named on-demand value binding. Server produces an opaque
// payload; a non-nil error is recoverable (logged, treated as "no value").
type Requestable struct {
	Name          RequestableName
	Server        func() (any, error)
	IsRequestable func() bool
	IsExpired     func() bool
}

// Executable is a named fire-and-forget action binding. A non-nil error from
// Action is recoverable (logged, Execute reports false).
type Executable struct {
	Name         ExecutableName
	Action       func() error
	IsExecutable func() bool
	IsExpired    func() bool
}

// Observer is a subscription to one or more notification names. A single
// record may be registered under several names (set form); expiry of the
// record prunes it from every list it appears in, lazily, as posts touch
// those lists. A non-nil error from Deliver is recoverable (logged, never
// surfaced to the poster).
type Observer struct {
	Names       []NotificationName
	Deliver     func(Notification) error
	IsObserving func() bool
	IsExpired   func() bool
}

// Flag is a named boolean state marker. Equality is by name only; a flag has
// no predicates of its own ("expired" for a flag simply means "unset").
type Flag struct {
	Name FlagName
}
