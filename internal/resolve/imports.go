package resolve

import (
	"sort"

	"github.com/ep4sh/randgen/internal/common"
)

// Import is a single import of a generated file. Alias is set only when the
// package name differs from the last element of the path.
type Import struct {
	Alias string
	Path  string
}

// Imports collects the imports the fragments of one generated file require.
type Imports struct {
	specs map[string]Import
}

// NewImports creates an empty import set.
func NewImports() *Imports {
	return &Imports{specs: make(map[string]Import)}
}

// Add registers an import for the given path. name is the package's declared
// name, used as alias when it differs from the path's base.
func (i *Imports) Add(path, name string) {
	if path == "" {
		return
	}

	spec := Import{Path: path}
	if name != "" && name != common.PkgAlias(path) {
		spec.Alias = name
	}

	i.specs[path] = spec
}

// Sorted returns the imports ordered by path.
func (i *Imports) Sorted() []Import {
	out := make([]Import, 0, len(i.specs))
	for _, spec := range i.specs {
		out = append(out, spec)
	}

	sort.Slice(out, func(a, b int) bool { return out[a].Path < out[b].Path })

	return out
}
