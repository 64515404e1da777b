// Package websitegate models the staff-controlled availability switch for the
// ordering website. The gate is external state consumed by order creation: it
// is read at creation time through a repository port rather than held as
// ambient global state, so tests can substitute a fixed gate.
package websitegate
