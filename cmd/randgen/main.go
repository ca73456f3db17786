// Package main provides the CLI entrypoint for randgen.
//
// randgen generates pseudo-random instance constructors for struct and
// interface types:
//   - Loads Go packages (go/types via go/packages) and builds a type graph
//   - Resolves per-field generation strategies, honoring rand struct tags
//   - Emits Random<T> constructors plus customization hooks as gofmt'ed files
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "randgen",
	Short: "randgen - pseudo-random constructor generator for Go types",
	Long: `randgen inspects Go packages and generates Random<T> constructors that
build pseudo-random, structurally valid instances of your structs and
interface unions. Field behavior is customized with rand struct tags
(panic, custom, nil, set, empty, default, value=<literal>) or with a
YAML manifest.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
