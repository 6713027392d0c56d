// Package ledger houses concrete implementations of the core.NameLedger.
// The interface itself lives in the core package to centralize domain
// contracts. Keeping only implementations here prevents higher level packages
// from depending on concrete storage.
//
// Add additional backends in sub-packages without changing any calling code —
// only the wiring layer needs to decide which implementation to instantiate.
package ledger
