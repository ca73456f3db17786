package gen

import (
	"bytes"
	"fmt"
	"go/format"

	"github.com/go-openapi/inflect"

	"github.com/ep4sh/randgen/internal/analyze"
	"github.com/ep4sh/randgen/internal/diagnostic"
	"github.com/ep4sh/randgen/internal/directive"
	"github.com/ep4sh/randgen/internal/resolve"
)

// fileSuffix is appended to the snake-cased type name of every generated file.
const fileSuffix = "_randgen.go"

// helpersFilename holds the shared per-package helpers (randString).
const helpersFilename = "randgen_helpers.go"

// Config holds configuration for code generation.
type Config struct {
	// OutputDir overrides the target directory for generated files.
	// Empty means each file is written next to its package sources.
	OutputDir string
}

// Overrides carries manifest-level directive overrides, keyed by type name
// then field name. They merge with (and lose to) tag-level directives.
type Overrides map[string]map[string]directive.List

// Generator assembles generation routines for requested types.
type Generator struct {
	config    Config
	graph     *analyze.TypeGraph
	overrides Overrides
	diags     diagnostic.Diagnostics
}

// NewGenerator creates a Generator over an analyzed type graph.
func NewGenerator(config Config, graph *analyze.TypeGraph) *Generator {
	return &Generator{
		config: config,
		graph:  graph,
	}
}

// SetOverrides installs manifest directive overrides.
func (g *Generator) SetOverrides(o Overrides) {
	g.overrides = o
}

// Diagnostics returns the problems recorded during the last Generate run.
func (g *Generator) Diagnostics() *diagnostic.Diagnostics {
	return &g.diags
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the base name (e.g., "post_randgen.go").
	Filename string
	// Dir is the directory the file belongs to.
	Dir string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate assembles generation routines for the requested types plus any
// package-local types their fields pull in. It returns the generated files
// and a combined error when any type failed; files of unaffected types are
// still returned.
func (g *Generator) Generate(ids []analyze.TypeID) ([]GeneratedFile, error) {
	g.diags = diagnostic.Diagnostics{}

	queue := make([]analyze.TypeID, 0, len(ids))
	queued := make(map[analyze.TypeID]bool)

	enqueue := func(id analyze.TypeID) {
		if !queued[id] {
			queued[id] = true
			queue = append(queue, id)
		}
	}

	for _, id := range ids {
		enqueue(id)
	}

	var files []GeneratedFile

	// Tracks which packages need the shared randString helper.
	needHelpers := make(map[string]bool)

	for i := 0; i < len(queue); i++ {
		id := queue[i]

		info := g.graph.GetType(id)
		if info == nil {
			g.diags.AddError(diagnostic.CodeUnknownType,
				fmt.Sprintf("type %s not found in the loaded packages", id), id.Name, "")
			continue
		}

		var (
			file *GeneratedFile
			err  error
		)

		switch info.Kind {
		case analyze.TypeKindStruct:
			file, err = g.generateStruct(info, enqueue, needHelpers)
		case analyze.TypeKindInterface:
			file, err = g.generateUnion(info, enqueue)
		default:
			g.diags.AddError(diagnostic.CodeUnsupportedType,
				fmt.Sprintf("type %s is a %s; only structs and interfaces can be generated", id, info.Kind),
				id.Name, "")
			continue
		}

		if err != nil {
			if derr, ok := err.(*diagnostic.Error); ok {
				g.diags.AddErr(derr)
			} else {
				g.diags.AddError(diagnostic.CodeUnsupportedType, err.Error(), id.Name, "")
			}
			continue
		}

		files = append(files, *file)
	}

	for pkgPath := range needHelpers {
		file, err := g.generateHelpers(pkgPath)
		if err != nil {
			return nil, fmt.Errorf("generating helpers for %s: %w", pkgPath, err)
		}

		files = append(files, *file)
	}

	sortFiles(files)

	return files, g.diags.Error()
}

// directives returns the merged directive list of one field: struct tag
// first, manifest overrides appended.
func (g *Generator) directives(typeName string, f analyze.FieldInfo) (directive.List, error) {
	list, err := directive.ParseTag(f.Tag)
	if err != nil {
		if derr, ok := err.(*diagnostic.Error); ok {
			return nil, derr.At(typeName, typeName+"."+f.Name)
		}

		return nil, err
	}

	if byField, ok := g.overrides[typeName]; ok {
		if extra, ok := byField[f.Name]; ok {
			list = list.Merge(extra)
		}
	}

	return list, nil
}

// generateStruct assembles the constructor file for one struct type.
func (g *Generator) generateStruct(info *analyze.TypeInfo, enqueue func(analyze.TypeID), needHelpers map[string]bool) (*GeneratedFile, error) {
	pkgInfo := g.graph.Packages[info.ID.PkgPath]
	if pkgInfo == nil {
		return nil, diagnostic.Errorf(diagnostic.CodeUnknownType,
			"package %s of type %s was not loaded", info.ID.PkgPath, info.ID.Name)
	}

	r := resolve.New(info.ID.Name, pkgInfo.Pkg, g.graph)

	var assignments []string

	for _, f := range info.Fields {
		ds, err := g.directives(info.ID.Name, f)
		if err != nil {
			return nil, err
		}

		frag, err := r.Field(f, ds)
		if err != nil {
			return nil, err
		}

		assignments = append(assignments, frag)
	}

	for _, dep := range r.Nested() {
		if err := g.checkDependency(info.ID, dep); err != nil {
			return nil, err
		}

		enqueue(dep)
	}

	if r.NeedsRandString() {
		needHelpers[info.ID.PkgPath] = true
	}

	data := &recordData{
		PackageName: pkgInfo.Name,
		TypeName:    info.ID.Name,
		Imports:     r.Imports().Sorted(),
		Assignments: assignments,
	}

	if !r.Requirements().IsEmpty() {
		data.Source = &sourceData{
			Name:    info.ID.Name + "TestDataSource",
			Methods: r.Requirements().Methods(),
		}
	}

	return g.render(recordTemplate, data, g.filename(info.ID.Name), g.outputDir(pkgInfo))
}

// generateUnion assembles the constructor file for one interface type,
// choosing uniformly among its package-local implementers.
func (g *Generator) generateUnion(info *analyze.TypeInfo, enqueue func(analyze.TypeID)) (*GeneratedFile, error) {
	pkgInfo := g.graph.Packages[info.ID.PkgPath]
	if pkgInfo == nil {
		return nil, diagnostic.Errorf(diagnostic.CodeUnknownType,
			"package %s of type %s was not loaded", info.ID.PkgPath, info.ID.Name)
	}

	if len(info.Variants) == 0 {
		return nil, diagnostic.Errorf(diagnostic.CodeNoVariants,
			"interface %s has no implementing struct types in its package", info.ID.Name).At(info.ID.Name, "")
	}

	var variants []variantData

	for i, v := range info.Variants {
		if err := g.checkDependency(info.ID, v.ID); err != nil {
			return nil, err
		}

		enqueue(v.ID)

		variants = append(variants, variantData{
			Name: v.ID.Name,
			Ptr:  v.Ptr,
			Last: i == len(info.Variants)-1,
		})
	}

	data := &unionData{
		PackageName: pkgInfo.Name,
		TypeName:    info.ID.Name,
		Variants:    variants,
	}

	return g.render(unionTemplate, data, g.filename(info.ID.Name), g.outputDir(pkgInfo))
}

// checkDependency rejects constructor calls into types that themselves need
// a caller-supplied data source: their constructors take an extra parameter
// the caller can not conjure.
func (g *Generator) checkDependency(from, dep analyze.TypeID) error {
	info := g.graph.GetType(dep)
	if info == nil {
		return diagnostic.Errorf(diagnostic.CodeUnknownType,
			"type %s referenced from %s was not loaded", dep, from.Name).At(from.Name, "")
	}

	if info.Kind != analyze.TypeKindStruct {
		return nil
	}

	for _, f := range info.Fields {
		ds, err := g.directives(dep.Name, f)
		if err != nil {
			return err
		}

		if ds.Has(directive.Custom) {
			return diagnostic.Errorf(diagnostic.CodeUnsupportedType,
				"type %s requires a %sTestDataSource and can not be nested into %s; mark the field rand:\"custom\"",
				dep.Name, dep.Name, from.Name).At(from.Name, "")
		}
	}

	return nil
}

// generateHelpers emits the shared helper file of one package.
func (g *Generator) generateHelpers(pkgPath string) (*GeneratedFile, error) {
	pkgInfo := g.graph.Packages[pkgPath]
	if pkgInfo == nil {
		return nil, fmt.Errorf("package %s not loaded", pkgPath)
	}

	data := &helpersData{PackageName: pkgInfo.Name}

	return g.render(helpersTemplate, data, helpersFilename, g.outputDir(pkgInfo))
}

// render executes a template and gofmt-formats the result.
func (g *Generator) render(tmpl executableTemplate, data any, filename, dir string) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting %s: %w", filename, err)
	}

	return &GeneratedFile{
		Filename: filename,
		Dir:      dir,
		Content:  formatted,
	}, nil
}

// filename derives the generated file name from a type name.
func (g *Generator) filename(typeName string) string {
	return inflect.Underscore(typeName) + fileSuffix
}

// outputDir picks the directory for a package's generated files.
func (g *Generator) outputDir(pkgInfo *analyze.PackageInfo) string {
	if g.config.OutputDir != "" {
		return g.config.OutputDir
	}

	return pkgInfo.Dir
}
