package classify

import (
	"go/types"

	"github.com/ep4sh/randgen/internal/analyze"
	"github.com/ep4sh/randgen/internal/diagnostic"
)

//go:generate go tool stringer -type=Shape -output=shape_string.go

// Shape is the generation shape of a field type.
type Shape int

const (
	ShapeUnknown    Shape = iota
	ShapeOptional         // *T: zero-or-one of the inner type
	ShapeSequence         // []T: zero-or-more of the inner type
	ShapeTextual          // string, or a named type with string underlying
	ShapeIdentifier       // uuid.UUID
	ShapeOpaque           // any other supported scalar
)

// uuidPkgPath is the one external package the engine has a built-in strategy for.
const uuidPkgPath = "github.com/google/uuid"

// Classification is the normalized result of classifying one field type.
type Classification struct {
	// Shape selects the value-production strategy.
	Shape Shape
	// Head is the identifier naming the outermost type constructor
	// ("string", "Slug", "Post", "int64"). Empty for Optional/Sequence.
	Head string
	// Text is the rendered form of the whole type, for diagnostics.
	Text string
	// Elem is the inner type for Optional and Sequence shapes.
	Elem *analyze.TypeInfo
	// Named reports that Head is a defined type and produced values must be
	// converted through it (e.g. Slug("..."), Status(rng.Int())).
	Named bool
	// Info is the classified type itself.
	Info *analyze.TypeInfo
}

// Classify inspects a field's type and produces its generation shape.
// Types without a strategy (maps, channels, funcs, arrays, unnamed structs)
// fail with an UnsupportedType error; this is fatal for the owning type.
func Classify(t *analyze.TypeInfo) (Classification, error) {
	c := Classification{
		Text: render(t),
		Info: t,
	}

	switch t.Kind {
	case analyze.TypeKindPointer:
		if t.ElemType == nil {
			return c, diagnostic.Errorf(diagnostic.CodeUnsupportedShape,
				"pointer type %s has no element type", c.Text)
		}

		c.Shape = ShapeOptional
		c.Elem = t.ElemType
		return c, nil

	case analyze.TypeKindSlice:
		if t.ElemType == nil {
			return c, diagnostic.Errorf(diagnostic.CodeUnsupportedShape,
				"slice type %s has no element type", c.Text)
		}

		c.Shape = ShapeSequence
		c.Elem = t.ElemType
		return c, nil

	case analyze.TypeKindBasic:
		basic, ok := t.GoType.(*types.Basic)
		if !ok {
			return c, diagnostic.Errorf(diagnostic.CodeUnsupportedShape,
				"basic type %s is not a *types.Basic", c.Text)
		}

		c.Head = basic.Name()
		if basic.Kind() == types.String {
			c.Shape = ShapeTextual
		} else {
			c.Shape = ShapeOpaque
		}
		return c, nil

	case analyze.TypeKindAlias:
		c.Head = t.ID.Name
		c.Named = true

		if basic, ok := t.GoType.Underlying().(*types.Basic); ok && basic.Kind() == types.String {
			c.Shape = ShapeTextual
		} else {
			c.Shape = ShapeOpaque
		}
		return c, nil

	case analyze.TypeKindExternal:
		c.Head = t.ID.Name
		c.Named = true

		if t.ID.PkgPath == uuidPkgPath && t.ID.Name == "UUID" {
			c.Shape = ShapeIdentifier
		} else {
			c.Shape = ShapeOpaque
		}
		return c, nil

	case analyze.TypeKindStruct, analyze.TypeKindInterface:
		if !t.IsNamed() {
			return c, diagnostic.Errorf(diagnostic.CodeUnsupportedType,
				"unnamed type %s is not supported; declare a named type for it", c.Text)
		}

		c.Head = t.ID.Name
		c.Named = true
		c.Shape = ShapeOpaque
		return c, nil
	}

	return c, diagnostic.Errorf(diagnostic.CodeUnsupportedType,
		"type %s is not supported: no generation strategy exists for its form", c.Text)
}

// render returns a readable form of the type with short package qualifiers.
func render(t *analyze.TypeInfo) string {
	if t.GoType == nil {
		if t.IsNamed() {
			return t.ID.Name
		}

		return "<unknown>"
	}

	return types.TypeString(t.GoType, func(p *types.Package) string {
		return p.Name()
	})
}
