package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ep4sh/randgen/internal/common"
)

// Stable diagnostic codes.
const (
	// CodeUnsupportedType marks a field type the engine has no strategy for.
	CodeUnsupportedType = "UnsupportedType"
	// CodeUnsupportedShape marks a classified type violating a shape invariant.
	CodeUnsupportedShape = "UnsupportedShape"
	// CodeUnknownDirective marks a rand tag item outside the closed directive set.
	CodeUnknownDirective = "UnknownDirective"
	// CodeUnknownType marks a requested type name missing from the package.
	CodeUnknownType = "UnknownType"
	// CodeUnknownField marks a manifest field override missing from its struct.
	CodeUnknownField = "UnknownField"
	// CodeNoVariants marks a union interface with no generatable implementers.
	CodeNoVariants = "NoVariants"
	// CodeBadValue marks a value= literal that can not inhabit the field type.
	CodeBadValue = "BadValue"
)

// Error is a single fatal generation problem. It aborts processing of the
// owning type but carries enough context to be reported on its own.
type Error struct {
	// Code is one of the Code* constants.
	Code string
	// Message is the human-readable description.
	Message string
	// Type identifies the owning type being generated (if any).
	Type string
	// Field identifies the field path this relates to (if any).
	Field string
}

// Errorf builds an *Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var prefix []string
	if e.Type != "" {
		prefix = append(prefix, "["+e.Type+"]")
	}

	if e.Field != "" {
		prefix = append(prefix, e.Field)
	}

	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// At returns a copy of the error annotated with the owning type and field
// path, keeping the original annotation when one is already set.
func (e *Error) At(typeName, fieldPath string) *Error {
	out := *e
	if out.Type == "" {
		out.Type = typeName
	}

	if out.Field == "" {
		out.Field = fieldPath
	}

	return &out
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Type identifies which generated type this relates to (if any).
	Type string
	// Field identifies which field this relates to (if any).
	Field string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	e := Error{Code: d.Code, Message: d.Message, Type: d.Type, Field: d.Field}
	s := e.Error()

	if len(d.Suggestions) > 0 {
		s += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	return s
}

// Diagnostics holds all diagnostic information from one generation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typeName, fieldPath string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Type:     typeName,
		Field:    fieldPath,
	})
}

// AddErr records an *Error as an error diagnostic.
func (d *Diagnostics) AddErr(err *Error) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     err.Code,
		Message:  err.Message,
		Type:     err.Type,
		Field:    err.Field,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typeName, fieldPath string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Type:     typeName,
		Field:    fieldPath,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return !common.IsEmpty(d.Errors)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
