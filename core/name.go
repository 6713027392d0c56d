package core

// Kind partitions the identifier space of the name ledger. A raw string may be
// coined once per kind; the same string under two different kinds denotes two
// unrelated identifiers.
type Kind string

const (
	// KindRequestable scopes names of on-demand value bindings.
	KindRequestable Kind = "requestable"
	// KindExecutable scopes names of fire-and-forget action bindings.
	KindExecutable Kind = "executable"
	// KindNotification scopes names of publish/subscribe events.
	KindNotification Kind = "notification"
	// KindFlag scopes names of boolean state markers.
	KindFlag Kind = "flag"
)

// RequestableName identifies an on-demand value binding.
type RequestableName string

// ExecutableName identifies an action binding.
type ExecutableName string

// NotificationName identifies a notification channel observers subscribe to.
type NotificationName string

// FlagName identifies a boolean state marker.
type FlagName string

// NameLedger records every name ever coined, per kind, for the lifetime of the
// process. It only grows: an entry does not mean a binding is currently
// registered, only that the identifier string has been claimed. Ledgers are
// injected into the GlobalContext rather than hidden behind package state so
// tests can run against fresh instances.
type NameLedger interface {
	// Coin claims raw for the given kind. It returns an error wrapping
	// ErrNameTaken when raw was already coined for that kind.
	Coin(kind Kind, raw string) error
}
