// Package kernel provides core domain primitives shared across the refill
// station domain model.
//
// It currently contains a single value object:
//   - UUID: a validated unique identifier for orders and registered customers
//
// Primitives in this package enforce their own invariants, are immutable, and
// are safe for concurrent use.
package kernel
