package directive

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ep4sh/randgen/internal/diagnostic"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind enumerates the closed set of customization directives.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	Panic     // the field can not be generated; emitted code fails at runtime
	Custom    // generation is delegated to a caller-supplied data source
	AlwaysNil // force the nil arm of a pointer field
	AlwaysSet // force the non-nil arm of a pointer field
	Empty     // force a zero-length slice
	Default   // use the type's zero value
	Value     // use a fixed literal instead of randomization
)

// TagKey is the struct tag key directives are parsed from.
const TagKey = "rand"

// Directive is one parsed customization item. Literal is set for Value only.
type Directive struct {
	Kind    Kind
	Literal string
}

// List is the normalized directive list of one field.
type List []Directive

// Has reports whether the list contains a directive of the given kind.
func (l List) Has(kind Kind) bool {
	for _, d := range l {
		if d.Kind == kind {
			return true
		}
	}

	return false
}

// FixedValue returns the literal of a Value directive, if present.
func (l List) FixedValue() (string, bool) {
	for _, d := range l {
		if d.Kind == Value {
			return d.Literal, true
		}
	}

	return "", false
}

// Merge returns a list containing the directives of l plus those of other,
// collapsing duplicate kinds (the first occurrence wins, including its
// literal).
func (l List) Merge(other List) List {
	out := append(List{}, l...)

	for _, d := range other {
		if !out.Has(d.Kind) {
			out = append(out, d)
		}
	}

	return out
}

// ParseTag normalizes the rand struct tag of one field into a directive list.
// A missing tag yields an empty list.
func ParseTag(tag reflect.StructTag) (List, error) {
	raw, ok := tag.Lookup(TagKey)
	if !ok {
		return nil, nil
	}

	return Parse(strings.Split(raw, ","))
}

// Parse normalizes raw directive items (e.g. ["set", "value=hello"]) into a
// directive list. Unknown items are a fatal error: the directive set is
// closed.
func Parse(items []string) (List, error) {
	var list List

	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		d, err := parseItem(item)
		if err != nil {
			return nil, err
		}

		if !list.Has(d.Kind) {
			list = append(list, d)
		}
	}

	return list, nil
}

func parseItem(item string) (Directive, error) {
	if lit, ok := strings.CutPrefix(item, "value="); ok {
		return Directive{Kind: Value, Literal: lit}, nil
	}

	switch item {
	case "panic":
		return Directive{Kind: Panic}, nil
	case "custom":
		return Directive{Kind: Custom}, nil
	case "nil":
		return Directive{Kind: AlwaysNil}, nil
	case "set":
		return Directive{Kind: AlwaysSet}, nil
	case "empty":
		return Directive{Kind: Empty}, nil
	case "default":
		return Directive{Kind: Default}, nil
	}

	return Directive{}, diagnostic.Errorf(diagnostic.CodeUnknownDirective,
		"unknown rand directive %q (known: panic, custom, nil, set, empty, default, value=<literal>)", item)
}

// String returns the tag form of the directive.
func (d Directive) String() string {
	switch d.Kind {
	case AlwaysNil:
		return "nil"
	case AlwaysSet:
		return "set"
	case Value:
		return fmt.Sprintf("value=%s", d.Literal)
	default:
		return strings.ToLower(d.Kind.String())
	}
}
