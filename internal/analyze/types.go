package analyze

import (
	"go/types"
	"reflect"

	"github.com/ep4sh/randgen/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "github.com/ep4sh/randgen/examples/blog"
	Name    string // e.g., "Post"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindAlias              // named type wrapping a basic type
	TypeKindInterface          // interface type (union of its implementers)
	TypeKindExternal           // external/opaque named type (e.g., uuid.UUID)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindAlias:
		return "alias"
	case TypeKindInterface:
		return "interface"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID     // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind   // Kind of type
	Underlying *TypeInfo  // For named types, the underlying type
	ElemType   *TypeInfo  // For pointers and slices, the element type
	Fields     []FieldInfo // For structs, the list of fields
	Variants   []Variant  // For interfaces, the package-local implementers
	GoType     types.Type // The original go/types.Type (source of truth for classification)
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// Variant is one struct type implementing a union interface.
type Variant struct {
	ID  TypeID
	Ptr bool // implemented with pointer receivers; instances are addressed before use
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name (the type name for embedded fields)
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string         // Import path
	Name  string         // Package name
	Dir   string         // Directory of the package sources
	Types []TypeID       // Named types defined in this package
	Pkg   *types.Package // The go/types package (qualifier anchor for rendering)
}
