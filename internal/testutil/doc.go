// Package testutil contains helper builders and utilities used across tests
// to reduce boilerplate when constructing scope trees, host anchors and
// observers, and when asserting on usage-error panics and logged output.
// These helpers are intentionally minimal and are not intended for production
// usage.
package testutil
