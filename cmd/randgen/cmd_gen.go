package main

import (
	"fmt"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ep4sh/randgen/internal/analyze"
	"github.com/ep4sh/randgen/internal/gen"
	"github.com/ep4sh/randgen/internal/manifest"
)

var (
	genPackage  string
	genTypes    []string
	genManifest string
	genOutput   string
	genDryRun   bool
	genDump     bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate Random<T> constructors for the selected types",
	Long: `Loads the target package, resolves a generation strategy for every
field of the selected types, and writes one <type>_randgen.go file per
type (plus a shared randgen_helpers.go when needed) next to the package
sources.

Types referenced by fields of the selected types are generated
transitively. Selection comes from --type flags, a YAML manifest, or
both.

Example:
  randgen gen --package ./examples/blog --type Post --type Event`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVarP(&genPackage, "package", "p", ".", "package pattern to load (e.g. ./examples/blog)")
	genCmd.Flags().StringArrayVarP(&genTypes, "type", "t", nil, "type to generate (repeatable)")
	genCmd.Flags().StringVarP(&genManifest, "manifest", "m", "", "YAML manifest with types and field overrides")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output directory (default: next to package sources)")
	genCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "resolve and render, but do not write files")
	genCmd.Flags().BoolVar(&genDump, "dump", false, "dump the analyzed type graph of the selected types")
}

func runGen(cmd *cobra.Command, args []string) error {
	var mf *manifest.File

	if genManifest != "" {
		var err error

		mf, err = manifest.LoadFile(genManifest)
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("package") && mf.Package != "" {
			genPackage = mf.Package
		}

		if genOutput == "" {
			genOutput = mf.Output
		}
	}

	if mf == nil && len(genTypes) == 0 {
		return fmt.Errorf("nothing to generate: pass --type or --manifest")
	}

	logger.Debug("loading package", zap.String("pattern", genPackage))

	analyzer := analyze.NewAnalyzer()

	graph, err := analyzer.LoadPackages(genPackage)
	if err != nil {
		return err
	}

	pkgPath, err := singlePackage(graph)
	if err != nil {
		return err
	}

	ids := make([]analyze.TypeID, 0, len(genTypes))
	for _, name := range genTypes {
		ids = append(ids, analyze.TypeID{PkgPath: pkgPath, Name: name})
	}

	generator := gen.NewGenerator(gen.Config{OutputDir: genOutput}, graph)

	if mf != nil {
		resolved, diags := manifest.Validate(mf, graph, pkgPath)
		for _, w := range diags.Warnings {
			logger.Warn(w.String())
		}

		if diags.HasErrors() {
			for _, e := range diags.Errors {
				logger.Error(e.String())
			}

			return fmt.Errorf("manifest %s does not match package %s", genManifest, pkgPath)
		}

		ids = append(ids, resolved.Types...)
		generator.SetOverrides(resolved.Overrides)
	}

	if genDump {
		for _, id := range ids {
			fmt.Print(spew.Sdump(graph.GetType(id)))
		}
	}

	files, err := generator.Generate(ids)

	for _, w := range generator.Diagnostics().Warnings {
		logger.Warn(w.String())
	}

	if err != nil {
		for _, e := range generator.Diagnostics().Errors {
			logger.Error(e.String())
		}

		return fmt.Errorf("generation failed for package %s", pkgPath)
	}

	for _, f := range files {
		logger.Debug("generated",
			zap.String("file", filepath.Join(f.Dir, f.Filename)),
			zap.Int("bytes", len(f.Content)))
	}

	if genDryRun {
		for _, f := range files {
			fmt.Println(filepath.Join(f.Dir, f.Filename))
		}

		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	logger.Info("generation complete",
		zap.String("package", pkgPath),
		zap.Int("files", len(files)))

	return nil
}

// singlePackage returns the path of the only loaded package. Generation
// targets exactly one package per run; its path anchors every type lookup.
func singlePackage(graph *analyze.TypeGraph) (string, error) {
	if len(graph.Packages) != 1 {
		paths := make([]string, 0, len(graph.Packages))
		for p := range graph.Packages {
			paths = append(paths, p)
		}

		return "", fmt.Errorf("expected exactly one package, loaded %d: %v", len(paths), paths)
	}

	for p := range graph.Packages {
		return p, nil
	}

	return "", nil
}
