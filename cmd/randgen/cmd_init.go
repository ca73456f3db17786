package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ep4sh/randgen/internal/analyze"
	"github.com/ep4sh/randgen/internal/manifest"
)

var (
	initPackage string
	initOutput  string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter manifest for a package",
	Long: `Loads the target package and writes a manifest listing every exported
struct and interface type. Trim the list down and annotate fields with
directive overrides, then run "randgen gen --manifest <file>".

Example:
  randgen init --package ./examples/blog --output randgen.yaml`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initPackage, "package", "p", ".", "package pattern to load (e.g. ./examples/blog)")
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "randgen.yaml", "path of the manifest to write")
}

func runInit(cmd *cobra.Command, args []string) error {
	analyzer := analyze.NewAnalyzer()

	graph, err := analyzer.LoadPackages(initPackage)
	if err != nil {
		return err
	}

	pkgPath, err := singlePackage(graph)
	if err != nil {
		return err
	}

	mf := &manifest.File{
		Version: "1",
		Package: initPackage,
	}

	for _, id := range graph.Packages[pkgPath].Types {
		info := graph.GetType(id)
		if info == nil {
			continue
		}

		if info.Kind != analyze.TypeKindStruct && info.Kind != analyze.TypeKindInterface {
			continue
		}

		mf.Types = append(mf.Types, manifest.TypeSpec{Name: id.Name})
	}

	if err := manifest.WriteFile(mf, initOutput); err != nil {
		return err
	}

	logger.Info("manifest written",
		zap.String("path", initOutput),
		zap.String("package", pkgPath),
		zap.Int("types", len(mf.Types)))

	return nil
}
