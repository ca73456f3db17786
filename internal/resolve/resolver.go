package resolve

import (
	"fmt"
	"go/types"
	"sort"

	"github.com/ep4sh/randgen/internal/analyze"
	"github.com/ep4sh/randgen/internal/classify"
	"github.com/ep4sh/randgen/internal/diagnostic"
	"github.com/ep4sh/randgen/internal/directive"
)

// panicMessage is the diagnostic carried by fragments of panic-directive
// fields. Kept stable: callers intentionally opt into this runtime failure.
const panicMessage = "This property can not be generated"

// sourceParam is the parameter name of the capability interface value in
// generated constructors.
const sourceParam = "src"

// Resolver resolves value fragments for the fields of one generated type.
// It accumulates the cross-field state of that one type: capability
// requirements, imports of the generated file, nested constructor calls and
// whether the shared randString helper is needed. A Resolver is scoped to a
// single type's pass and discarded afterwards.
type Resolver struct {
	owner string
	pkg   *types.Package
	graph *analyze.TypeGraph

	reqs    *Requirements
	imports *Imports
	nested  map[analyze.TypeID]bool

	needsRandString bool
}

// New creates a Resolver for one type of the given package.
func New(owner string, pkg *types.Package, graph *analyze.TypeGraph) *Resolver {
	return &Resolver{
		owner:   owner,
		pkg:     pkg,
		graph:   graph,
		reqs:    NewRequirements(),
		imports: NewImports(),
		nested:  make(map[analyze.TypeID]bool),
	}
}

// Requirements returns the capability requirement set accumulated so far.
func (r *Resolver) Requirements() *Requirements {
	return r.reqs
}

// Imports returns the imports required by the fragments produced so far.
func (r *Resolver) Imports() *Imports {
	return r.imports
}

// Nested returns the package-local types whose generated constructors are
// invoked by produced fragments, in stable order.
func (r *Resolver) Nested() []analyze.TypeID {
	ids := make([]analyze.TypeID, 0, len(r.nested))
	for id := range r.nested {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i].Name < ids[j].Name })

	return ids
}

// NeedsRandString reports whether a produced fragment references the shared
// randString helper.
func (r *Resolver) NeedsRandString() bool {
	return r.needsRandString
}

// Field resolves the value fragment for one field and prefixes it with the
// field's key, producing one composite-literal entry. For embedded fields the
// key is the embedded type's name, which is how Go keys them in composite
// literals.
func (r *Resolver) Field(f analyze.FieldInfo, ds directive.List) (string, error) {
	path := analyze.NewTypePath(r.owner).Field(f.Name)

	frag, err := r.value(&f, f.Type, ds, path)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s: %s", f.Name, frag), nil
}

// value resolves the fragment producing one value of type t under the
// directive list ds. Resolution order: panic, custom, then shape-directed
// strategies; the scalar strategy is the terminal branch.
func (r *Resolver) value(f *analyze.FieldInfo, t *analyze.TypeInfo, ds directive.List, path *analyze.TypePath) (string, error) {
	if ds.Has(directive.Panic) {
		return fmt.Sprintf("func() %s { panic(%q) }()", r.typeText(t.GoType), panicMessage), nil
	}

	if ds.Has(directive.Custom) {
		return r.delegate(f, t), nil
	}

	c, err := classify.Classify(t)
	if err != nil {
		return "", locate(err, r.owner, path)
	}

	switch c.Shape {
	case classify.ShapeOptional:
		return r.optional(f, c, ds, path)
	case classify.ShapeSequence:
		return r.sequence(f, c, ds, path)
	default:
		return r.scalar(c, ds, path)
	}
}

// optional resolves a pointer field: nil, always-set, or a 50/50 choice made
// when the emitted fragment runs.
func (r *Resolver) optional(f *analyze.FieldInfo, c classify.Classification, ds directive.List, path *analyze.TypePath) (string, error) {
	if ds.Has(directive.AlwaysNil) {
		return "nil", nil
	}

	elemText := r.typeText(c.Elem.GoType)

	inner, err := r.value(f, c.Elem, ds, path.Pointer())
	if err != nil {
		return "", err
	}

	if ds.Has(directive.AlwaysSet) {
		return fmt.Sprintf("func() *%s { v := %s; return &v }()", elemText, inner), nil
	}

	return fmt.Sprintf("func() *%s { if rng.Intn(2) == 0 { return nil }; v := %s; return &v }()",
		elemText, inner), nil
}

// sequence resolves a slice field: empty, or a single recursively resolved
// element.
func (r *Resolver) sequence(f *analyze.FieldInfo, c classify.Classification, ds directive.List, path *analyze.TypePath) (string, error) {
	elemText := r.typeText(c.Elem.GoType)

	if ds.Has(directive.Empty) {
		return fmt.Sprintf("[]%s{}", elemText), nil
	}

	inner, err := r.value(f, c.Elem, ds, path.Elem())
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("[]%s{%s}", elemText, inner), nil
}

// typeText renders a type relative to the package being generated into,
// registering imports for any foreign package it mentions.
func (r *Resolver) typeText(t types.Type) string {
	if t == nil {
		return "any"
	}

	return types.TypeString(t, func(p *types.Package) string {
		if r.pkg != nil && p == r.pkg {
			return ""
		}

		r.imports.Add(p.Path(), p.Name())

		return p.Name()
	})
}

// locate annotates a classification or strategy error with the owning type
// and the field path it occurred at.
func locate(err error, owner string, path *analyze.TypePath) error {
	if derr, ok := err.(*diagnostic.Error); ok {
		return derr.At(owner, path.String())
	}

	return err
}
