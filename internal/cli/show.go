package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkravets/graphkit/core"
	"github.com/mkravets/graphkit/internal/viz"
	"github.com/mkravets/graphkit/shortest"
)

// showOpts holds the command-line flags for the show command.
type showOpts struct {
	edges    []string // edge specs "u,v[,w]"
	directed bool
	weighted bool
	matrix   bool   // use the adjacency-matrix backing
	from, to string // optional shortest-path endpoints
}

// newShowCmd creates the show command: build a graph from repeated --edge
// flags, render it, and optionally print a shortest path between two
// vertices (Dijkstra when weighted, unit-weight BFS otherwise).
func newShowCmd() *cobra.Command {
	var opts showOpts

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Build a graph from --edge flags and render it",
		Example: `  graphkit show --edge A,B,1 --edge B,C,2 --edge A,C,4 --weighted
  graphkit show --edge A,B --edge B,C --from A --to C`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := buildGraph(&opts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprint(w, viz.Graph(g, "graph"))

			if opts.from == "" || opts.to == "" {
				return nil
			}
			if opts.weighted {
				dist, prev, err := shortest.Dijkstra(g, opts.from)
				if err != nil {
					return err
				}
				fmt.Fprint(w, viz.Distances(g, opts.from, dist, prev))
				path, err := shortest.Path(prev, opts.from, opts.to)
				if err != nil {
					return err
				}
				fmt.Fprint(w, viz.PathLine(g, path))

				return nil
			}
			path, err := shortest.BFSPath(g, opts.from, opts.to)
			if err != nil {
				return err
			}
			fmt.Fprint(w, viz.PathLine(g, path))

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&opts.edges, "edge", nil, `edge spec "u,v[,w]" (repeatable)`)
	cmd.Flags().BoolVar(&opts.directed, "directed", false, "build a directed graph")
	cmd.Flags().BoolVar(&opts.weighted, "weighted", false, "build a weighted graph")
	cmd.Flags().BoolVar(&opts.matrix, "matrix", false, "use the adjacency-matrix backing")
	cmd.Flags().StringVar(&opts.from, "from", "", "shortest-path source vertex")
	cmd.Flags().StringVar(&opts.to, "to", "", "shortest-path target vertex")

	return cmd
}

// buildGraph assembles the requested representation from edge specs,
// creating endpoint vertices on first mention.
func buildGraph(opts *showOpts) (core.Graph, error) {
	graphOpts := []core.Option{core.WithDirected(opts.directed)}
	if opts.weighted {
		graphOpts = append(graphOpts, core.WithWeighted())
	}
	var g core.Graph
	if opts.matrix {
		g = core.NewMatrixGraph(graphOpts...)
	} else {
		g = core.NewListGraph(graphOpts...)
	}

	for _, spec := range opts.edges {
		from, to, weight, err := parseEdgeSpec(spec)
		if err != nil {
			return nil, err
		}
		if err = g.AddVertex(from); err != nil {
			return nil, err
		}
		if err = g.AddVertex(to); err != nil {
			return nil, err
		}
		if err = g.AddEdge(from, to, weight); err != nil {
			return nil, fmt.Errorf("edge %q: %w", spec, err)
		}
	}

	return g, nil
}

// parseEdgeSpec splits "u,v[,w]"; the weight defaults to core.DefaultWeight.
func parseEdgeSpec(spec string) (from, to string, weight int64, err error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return "", "", 0, fmt.Errorf("invalid edge spec %q: want \"u,v\" or \"u,v,w\"", spec)
	}
	from = strings.TrimSpace(parts[0])
	to = strings.TrimSpace(parts[1])
	weight = core.DefaultWeight
	if len(parts) == 3 {
		weight, err = strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
		if err != nil {
			return "", "", 0, fmt.Errorf("invalid weight in edge spec %q: %w", spec, err)
		}
	}

	return from, to, weight, nil
}
