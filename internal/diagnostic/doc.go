// Package diagnostic defines structured, user-facing problems discovered while
// analyzing types and generating code.
//
// Core packages report failures as *Error values carrying a stable code; the
// CLI driver is the only place where they become fatal.
package diagnostic
