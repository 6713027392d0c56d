// Package core provides the foundational domain types and algorithms of
// Contexture. It defines the core abstractions for:
//
//   - Names (interned, kind-scoped identifiers coined through a ledger)
//   - Binding records (requestables, executables, observers, flags)
//   - Notifications (immutable event values posted through the scope tree)
//   - Context / GlobalContext (the scope tree with conflict-checked
//     registration, chain-relative resolution and bidirectional posting)
//
// The package intentionally keeps implementation concerns (concrete ledger
// backends, host lifecycle adapters, the facade) out of scope, exposing small
// interfaces to enable custom backends and extensions. All exported
// identifiers include concise documentation to aid discoverability and
// external consumption.
package core
