package resolve

import (
	"fmt"
	"go/types"
	"strconv"

	"github.com/google/uuid"

	"github.com/ep4sh/randgen/internal/analyze"
	"github.com/ep4sh/randgen/internal/classify"
	"github.com/ep4sh/randgen/internal/diagnostic"
	"github.com/ep4sh/randgen/internal/directive"
)

const uuidPkgPath = "github.com/google/uuid"

// kindExpr maps basic kinds to the expression drawing a random value of that
// kind from rng.
var kindExpr = map[types.BasicKind]string{
	types.Bool:       "rng.Intn(2) == 0",
	types.Int:        "rng.Int()",
	types.Int8:       "int8(rng.Uint64())",
	types.Int16:      "int16(rng.Uint64())",
	types.Int32:      "rng.Int31()",
	types.Int64:      "rng.Int63()",
	types.Uint:       "uint(rng.Uint64())",
	types.Uint8:      "uint8(rng.Uint64())",
	types.Uint16:     "uint16(rng.Uint64())",
	types.Uint32:     "rng.Uint32()",
	types.Uint64:     "rng.Uint64()",
	types.Uintptr:    "uintptr(rng.Uint64())",
	types.Float32:    "rng.Float32()",
	types.Float64:    "rng.Float64()",
	types.Complex64:  "complex(rng.Float32(), rng.Float32())",
	types.Complex128: "complex(rng.Float64(), rng.Float64())",
}

// scalar chooses the production fragment for a non-wrapper type. A fixed
// value beats the default directive when both are present; both beat
// randomization.
func (r *Resolver) scalar(c classify.Classification, ds directive.List, path *analyze.TypePath) (string, error) {
	if lit, ok := ds.FixedValue(); ok {
		return r.fixedValue(c, lit, path)
	}

	if ds.Has(directive.Default) {
		return r.zeroValue(c), nil
	}

	switch c.Shape {
	case classify.ShapeTextual:
		r.needsRandString = true

		expr := "randString(rng, 10)"
		if c.Named {
			expr = fmt.Sprintf("%s(%s)", c.Head, expr)
		}

		return expr, nil

	case classify.ShapeIdentifier:
		r.imports.Add(uuidPkgPath, "uuid")
		return "uuid.New()", nil
	}

	return r.opaque(c, path)
}

// fixedValue renders a value= literal as a value of the field type.
func (r *Resolver) fixedValue(c classify.Classification, lit string, path *analyze.TypePath) (string, error) {
	switch c.Shape {
	case classify.ShapeTextual:
		quoted := strconv.Quote(lit)
		if c.Named {
			return fmt.Sprintf("%s(%s)", c.Head, quoted), nil
		}

		return quoted, nil

	case classify.ShapeIdentifier:
		if _, err := uuid.Parse(lit); err != nil {
			return "", locate(diagnostic.Errorf(diagnostic.CodeBadValue,
				"fixed value %q is not a valid UUID: %v", lit, err), r.owner, path)
		}

		r.imports.Add(uuidPkgPath, "uuid")

		return fmt.Sprintf("uuid.MustParse(%q)", lit), nil

	case classify.ShapeOpaque:
		if basic, ok := c.Info.GoType.Underlying().(*types.Basic); ok && literalFits(basic.Kind(), lit) {
			if c.Named {
				// typeText qualifies external names and registers their import.
				return fmt.Sprintf("%s(%s)", r.typeText(c.Info.GoType), lit), nil
			}

			return lit, nil
		}
	}

	return "", locate(diagnostic.Errorf(diagnostic.CodeBadValue,
		"fixed value %q can not inhabit type %s", lit, c.Text), r.owner, path)
}

// literalFits reports whether lit is a literal of the given basic kind.
func literalFits(kind types.BasicKind, lit string) bool {
	switch kind {
	case types.Bool:
		return lit == "true" || lit == "false"
	case types.Int, types.Int8, types.Int16, types.Int32, types.Int64:
		_, err := strconv.ParseInt(lit, 0, 64)
		return err == nil
	case types.Uint, types.Uint8, types.Uint16, types.Uint32, types.Uint64, types.Uintptr:
		_, err := strconv.ParseUint(lit, 0, 64)
		return err == nil
	case types.Float32, types.Float64:
		_, err := strconv.ParseFloat(lit, 64)
		return err == nil
	default:
		return false
	}
}

// zeroValue renders the zero value of the classified type.
func (r *Resolver) zeroValue(c classify.Classification) string {
	switch c.Shape {
	case classify.ShapeTextual:
		if c.Named {
			return fmt.Sprintf(`%s("")`, c.Head)
		}

		return `""`

	case classify.ShapeIdentifier:
		return r.typeText(c.Info.GoType) + "{}"
	}

	if basic, ok := c.Info.GoType.Underlying().(*types.Basic); ok {
		zero := "0"
		if basic.Kind() == types.Bool {
			zero = "false"
		}

		if c.Named {
			return fmt.Sprintf("%s(%s)", r.typeText(c.Info.GoType), zero)
		}

		return zero
	}

	return r.typeText(c.Info.GoType) + "{}"
}

// opaque is the fallback strategy for scalars without a dedicated branch:
// basic kinds draw directly from rng, package-local structs and unions call
// their own generated constructors. Types no fragment can exist for fail
// here, not at runtime.
func (r *Resolver) opaque(c classify.Classification, path *analyze.TypePath) (string, error) {
	if c.Info.Kind == analyze.TypeKindExternal {
		return "", locate(diagnostic.Errorf(diagnostic.CodeUnsupportedType,
			"no random strategy exists for external type %s; mark the field rand:\"custom\" or rand:\"default\"", c.Text),
			r.owner, path)
	}

	if basic, ok := c.Info.GoType.Underlying().(*types.Basic); ok {
		expr, known := kindExpr[basic.Kind()]
		if !known {
			return "", locate(diagnostic.Errorf(diagnostic.CodeUnsupportedType,
				"no random strategy for basic type %s", c.Text), r.owner, path)
		}

		if c.Named {
			expr = fmt.Sprintf("%s(%s)", c.Head, expr)
		}

		return expr, nil
	}

	local := c.Info.IsNamed() && r.graph != nil && r.graph.GetType(c.Info.ID) != nil
	if local && (c.Info.Kind == analyze.TypeKindStruct || c.Info.Kind == analyze.TypeKindInterface) {
		if c.Info.ID.PkgPath != r.pkgPath() {
			return "", locate(diagnostic.Errorf(diagnostic.CodeUnsupportedType,
				"type %s lives outside the generated package; mark the field rand:\"custom\"", c.Text),
				r.owner, path)
		}

		r.nested[c.Info.ID] = true

		return fmt.Sprintf("Random%s(rng)", c.Info.ID.Name), nil
	}

	return "", locate(diagnostic.Errorf(diagnostic.CodeUnsupportedType,
		"no random strategy exists for %s; mark the field rand:\"custom\" or rand:\"default\"", c.Text),
		r.owner, path)
}

func (r *Resolver) pkgPath() string {
	if r.pkg == nil {
		return ""
	}

	return r.pkg.Path()
}
