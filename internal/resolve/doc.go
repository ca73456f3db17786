// Package resolve is the field-level generation-strategy engine.
//
// For a single struct field it reconciles the field's generation shape (from
// package classify) with its directive list (from package directive) and
// produces the Go expression fragment yielding one pseudo-random value of the
// field's type. Fields marked custom are delegated to a per-type capability
// interface whose required methods accumulate in Requirements.
//
// Resolution is pure and deterministic: the same type and directives always
// yield the same fragment. Only the execution of emitted fragments draws on
// the *rand.Rand they receive.
package resolve
