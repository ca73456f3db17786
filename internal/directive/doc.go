// Package directive models the closed set of per-field customization
// directives parsed from `rand:"..."` struct tags.
//
// Directives alter the default random-value production of a field: panic and
// custom are exclusive overrides resolved first, value= replaces randomization
// with a fixed literal, and the remaining kinds force one arm of an optional
// or sequence strategy.
package directive
