package analyze

import (
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"
	"sort"

	"golang.org/x/tools/go/packages"

	"github.com/ep4sh/randgen/internal/common"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
	loaded    map[string]bool          // Package paths in the analyzed set
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
		loaded:    make(map[string]bool),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./examples/blog").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// The analyzed set must be known before any type is classified, so that
	// external named types are recognized as external on first sight.
	for _, pkg := range pkgs {
		a.loaded[pkg.PkgPath] = true
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	a.resolveVariants()

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
		Pkg:  pkg.Types,
	}

	if first, ok := common.First(pkg.GoFiles); ok {
		pkgInfo.Dir = filepath.Dir(first)
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		// Only process type names (not variables, constants, functions)
		typeName, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}

		if !typeName.Exported() {
			continue
		}

		typeID := TypeID{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		typeInfo := a.analyzeType(typeName.Type())
		typeInfo.ID = typeID

		a.graph.Types[typeID] = typeInfo
		pkgInfo.Types = append(pkgInfo.Types, typeID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
	return nil
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	t = types.Unalias(t)

	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType: t,
	}

	// Pre-cache to handle recursive types (details are filled in below)
	a.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)

	case *types.Basic:
		info.Kind = TypeKindBasic

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, info)

	default:
		// Maps, interfaces, channels, funcs, arrays are left unknown; the
		// classifier rejects them with a descriptive diagnostic.
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()
	if obj.Pkg() != nil {
		info.ID = TypeID{
			PkgPath: obj.Pkg().Path(),
			Name:    obj.Name(),
		}
	} else {
		info.ID = TypeID{Name: obj.Name()} // universe scope (error)
	}

	if obj.Pkg() != nil && !a.loaded[obj.Pkg().Path()] {
		// Named type from outside the analyzed set (e.g., uuid.UUID).
		info.Kind = TypeKindExternal
		return
	}

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(ut, info)

	case *types.Basic:
		// Named basic type (e.g., type Slug string)
		info.Kind = TypeKindAlias
		info.Underlying = a.analyzeType(ut)

	case *types.Interface:
		info.Kind = TypeKindInterface

	default:
		info.Kind = TypeKindAlias
		info.Underlying = a.analyzeType(ut)
	}
}

// analyzeStructFields extracts fields from a struct type.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		if !field.Exported() {
			continue
		}

		fieldInfo := FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     a.analyzeType(field.Type()),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		}

		info.Fields = append(info.Fields, fieldInfo)
	}
}

// resolveVariants fills Variants for every interface type with the struct
// types of the same package implementing it, in a stable name order.
func (a *Analyzer) resolveVariants() {
	for id, info := range a.graph.Types {
		if info.Kind != TypeKindInterface {
			continue
		}

		iface, ok := info.GoType.Underlying().(*types.Interface)
		if !ok {
			continue
		}

		pkgInfo := a.graph.Packages[id.PkgPath]
		if pkgInfo == nil {
			continue
		}

		var variants []Variant

		for _, candidateID := range pkgInfo.Types {
			candidate := a.graph.Types[candidateID]
			if candidate == nil || candidate.Kind != TypeKindStruct || !candidate.IsNamed() {
				continue
			}

			switch {
			case types.Implements(candidate.GoType, iface):
				variants = append(variants, Variant{ID: candidateID})
			case types.Implements(types.NewPointer(candidate.GoType), iface):
				variants = append(variants, Variant{ID: candidateID, Ptr: true})
			}
		}

		sort.Slice(variants, func(i, j int) bool {
			return variants[i].ID.Name < variants[j].ID.Name
		})

		info.Variants = variants
	}
}
