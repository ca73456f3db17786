// Package analyze loads Go packages and builds the type graph the generator
// works from.
//
// It wraps golang.org/x/tools/go/packages and go/types: every exported named
// type of the loaded packages becomes a TypeInfo node, struct fields keep
// their raw tags, and interface types record the package-local struct types
// implementing them (union variants).
package analyze
