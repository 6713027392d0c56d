package core

import "fmt"

// ErrNameTaken is returned (wrapped) by NameLedger implementations when a raw
// string was already coined for a kind.
var ErrNameTaken = fmt.Errorf("name already coined")

// Reasons attached to UsageError. Kept as exported constants so tests can
// assert which invariant a panic reports.
const (
	// ReasonDuplicateName reports a second coinage of the same raw string
	// for the same kind.
	ReasonDuplicateName = "name already coined for kind"
	// ReasonDuplicateBinding reports registration while an unexpired binding
	// of the same kind and name exists in the context-tree.
	ReasonDuplicateBinding = "duplicate active binding"
	// ReasonExpired reports resolution of a binding whose expiry predicate
	// fired.
	ReasonExpired = "binding expired"
	// ReasonUnavailable reports resolution of a binding whose availability
	// predicate returned false.
	ReasonUnavailable = "binding not available"
	// ReasonNotFound reports resolution of a name absent from the entire
	// ancestor chain.
	ReasonNotFound = "no binding in scope chain"
	// ReasonFlagAlreadySet reports SetFlag while the flag is set somewhere in
	// the context-tree.
	ReasonFlagAlreadySet = "flag already set in context-tree"
	// ReasonFlagNotSet reports UnsetFlag for a flag absent from self and all
	// ancestors.
	ReasonFlagNotSet = "flag not set in scope chain"
	// ReasonWrongType reports a payload that does not match the caller's
	// asserted type.
	ReasonWrongType = "payload type mismatch"
	// ReasonDestroyed reports use of a context after Destroy.
	ReasonDestroyed = "context destroyed"
)

// UsageError is the distinguished programmer-error category. Invariant
// violations (duplicate names, duplicate bindings, resolving expired or
// missing bindings, flag misuse) are surfaced by panicking with a *UsageError
// so integration mistakes crash during development instead of degrading
// silently. Recoverable failures never use this type; they are ordinary
// errors, logged and absorbed.
type UsageError struct {
	Op     string // operation that detected the violation
	Kind   Kind   // binding kind involved
	Name   string // raw name involved, if any
	Reason string // one of the Reason* constants
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	switch {
	case e.Kind == "" && e.Name == "":
		return fmt.Sprintf("contexture: %s: %s", e.Op, e.Reason)
	case e.Kind == "":
		return fmt.Sprintf("contexture: %s %q: %s", e.Op, e.Name, e.Reason)
	case e.Name == "":
		return fmt.Sprintf("contexture: %s (%s): %s", e.Op, e.Kind, e.Reason)
	default:
		return fmt.Sprintf("contexture: %s (%s %q): %s", e.Op, e.Kind, e.Name, e.Reason)
	}
}

// usagePanic raises a *UsageError. The single construction point keeps the
// panic payload type uniform for test helpers that recover and inspect it.
func usagePanic(op string, kind Kind, name, reason string) {
	panic(&UsageError{Op: op, Kind: kind, Name: name, Reason: reason})
}
