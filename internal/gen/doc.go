// Package gen assembles whole-type generation routines out of per-field
// fragments and writes them as Go source files.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// Emitted per struct type:
//   - Random<T>(rng) constructor building one pseudo-random instance
//   - Random<T>Func(rng, customize) applying a caller tweak afterwards
//   - a <T>TestDataSource interface when any field delegates to the caller
//
// Emitted per union (interface) type: a Random<I>(rng) constructor choosing
// uniformly among the package-local implementers.
package gen
