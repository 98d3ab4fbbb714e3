// Package cli implements the graphkit command-line interface.
//
// The CLI is a thin external collaborator around the core packages: it
// wires graphs to the traversal and shortest-path algorithms and prints
// their results. Commands:
//
//   - demo:  scripted walkthrough of graph operations and algorithms
//   - bench: time/space comparison of the two representations
//   - show:  build a graph from --edge flags and render it
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the graphkit CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "graphkit",
		Short:        "graphkit explores graph representations and classical algorithms",
		Long:         "graphkit builds graphs in adjacency-matrix or adjacency-list form,\nruns traversal and shortest-path algorithms over them, and compares\nthe two representations' time/space trade-offs.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDemoCmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newShowCmd())

	return root.ExecuteContext(ctx)
}
