// Package manifest loads the optional YAML manifest selecting which types to
// generate and overriding per-field directives without touching struct tags.
//
// Overrides merge with tag-parsed directives; on duplicate kinds the struct
// tag wins. Validation resolves manifest names against the analyzed type
// graph and suggests near misses.
package manifest
