package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mkravets/graphkit/internal/perf"
	"github.com/mkravets/graphkit/internal/viz"
)

// newBenchCmd creates the bench command: it runs the representation
// comparison harness and prints a styled report. Flags override values
// loaded from an optional TOML config.
func newBenchCmd() *cobra.Command {
	var configPath string
	cfg := perf.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare adjacency-matrix and adjacency-list performance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				loaded, err := perf.LoadConfig(configPath)
				if err != nil {
					return err
				}
				// Flags changed on the command line still win.
				merged := loaded
				if cmd.Flags().Changed("vertices") {
					merged.Vertices = cfg.Vertices
				}
				if cmd.Flags().Changed("edges") {
					merged.Edges = cfg.Edges
				}
				if cmd.Flags().Changed("checks") {
					merged.Checks = cfg.Checks
				}
				if cmd.Flags().Changed("directed") {
					merged.Directed = cfg.Directed
				}
				if cmd.Flags().Changed("weighted") {
					merged.Weighted = cfg.Weighted
				}
				if cmd.Flags().Changed("seed") {
					merged.Seed = cfg.Seed
				}
				cfg = merged
			}

			logger := loggerFromContext(cmd.Context())
			logger.Info("running comparison",
				"vertices", cfg.Vertices, "edges", cfg.Edges, "seed", cfg.Seed)

			report, err := perf.Compare(cfg)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with comparison settings")
	cmd.Flags().IntVar(&cfg.Vertices, "vertices", cfg.Vertices, "number of vertices")
	cmd.Flags().IntVar(&cfg.Edges, "edges", cfg.Edges, "number of random edges")
	cmd.Flags().IntVar(&cfg.Checks, "checks", cfg.Checks, "number of random edge-existence probes")
	cmd.Flags().BoolVar(&cfg.Directed, "directed", cfg.Directed, "build directed graphs")
	cmd.Flags().BoolVar(&cfg.Weighted, "weighted", cfg.Weighted, "build weighted graphs")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "workload generator seed")

	return cmd
}

// printReport renders the comparison outcome as a fixed-width table.
func printReport(w io.Writer, r *perf.Report) {
	fmt.Fprintln(w, viz.StyleTitle.Render("representation comparison"))
	fmt.Fprintf(w, "vertices=%d edges=%d directed=%t weighted=%t density=%.1f%%\n\n",
		r.Config.Vertices, r.Config.Edges, r.Config.Directed, r.Config.Weighted,
		r.Density*100)

	fmt.Fprintf(w, "%-22s %14s %14s  %s\n", "operation", "matrix", "list", "faster")
	for _, t := range r.Timings {
		faster := "matrix"
		if t.List < t.Matrix {
			faster = "list"
		}
		fmt.Fprintf(w, "%-22s %14s %14s  %s\n",
			t.Op, t.Matrix, t.List, viz.StyleNumber.Render(faster))
	}

	fmt.Fprintf(w, "\n%-22s %14s %14s\n", "est. storage",
		formatBytes(r.MatrixBytes), formatBytes(r.ListBytes))
	if r.Density > 0.5 {
		fmt.Fprintln(w, viz.StyleDim.Render("dense graph: adjacency matrix recommended"))
	} else {
		fmt.Fprintln(w, viz.StyleDim.Render("sparse graph: adjacency list recommended"))
	}
}

// formatBytes renders a byte count in KiB for table alignment.
func formatBytes(n int64) string {
	return fmt.Sprintf("%.1f KiB", float64(n)/1024)
}
