package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mkravets/graphkit/core"
	"github.com/mkravets/graphkit/internal/viz"
	"github.com/mkravets/graphkit/shortest"
	"github.com/mkravets/graphkit/traverse"
)

// newDemoCmd creates the demo command: a scripted walkthrough that builds
// sample graphs in both representations and runs every algorithm over them.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted walkthrough of graph operations and algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

// demoEdge is one edge of the walkthrough's sample graph.
type demoEdge struct {
	from, to string
	weight   int64
}

// sampleEdges is the undirected weighted graph used throughout the demo.
var sampleEdges = []demoEdge{
	{"A", "B", 4},
	{"A", "C", 2},
	{"B", "C", 1},
	{"B", "D", 5},
	{"C", "D", 8},
	{"C", "E", 10},
	{"D", "E", 2},
}

func runDemo(ctx context.Context, w io.Writer) error {
	logger := loggerFromContext(ctx)

	logger.Info("building sample graph in both representations",
		"vertices", 5, "edges", len(sampleEdges))
	mg := core.NewMatrixGraph(core.WithWeighted())
	lg := core.NewListGraph(core.WithWeighted())
	for _, v := range []string{"A", "B", "C", "D", "E"} {
		if err := mg.AddVertex(v); err != nil {
			return err
		}
		if err := lg.AddVertex(v); err != nil {
			return err
		}
	}
	for _, e := range sampleEdges {
		if err := mg.AddEdge(e.from, e.to, e.weight); err != nil {
			return err
		}
		if err := lg.AddEdge(e.from, e.to, e.weight); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, mg.String())
	fmt.Fprintln(w, lg.String())
	fmt.Fprint(w, viz.Graph(lg, "undirected weighted sample"))

	logger.Info("running traversals", "start", "A")
	dfsRes, err := traverse.DFS(lg, "A", traverse.WithContext(ctx))
	if err != nil {
		return err
	}
	fmt.Fprint(w, viz.Traversal(lg, dfsRes.Order, "DFS", "A"))

	bfsRes, err := traverse.BFS(lg, "A", traverse.WithContext(ctx))
	if err != nil {
		return err
	}
	fmt.Fprint(w, viz.Traversal(lg, bfsRes.Order, "BFS", "A"))

	connected, err := traverse.IsConnected(lg)
	if err != nil {
		return err
	}
	logger.Info("connectivity check", "connected", connected)

	logger.Info("running Dijkstra", "source", "A")
	dist, prev, err := shortest.Dijkstra(lg, "A")
	if err != nil {
		return err
	}
	fmt.Fprint(w, viz.Distances(lg, "A", dist, prev))

	logger.Info("running unit-weight BFS path", "from", "A", "to", "E")
	path, err := shortest.BFSPath(lg, "A", "E")
	if err != nil {
		return err
	}
	fmt.Fprint(w, viz.PathLine(lg, path))

	return runNegativeCycleDemo(ctx, w)
}

// runNegativeCycleDemo shows Bellman-Ford handling weights Dijkstra cannot:
// a directed graph with a negative edge, then one with a negative cycle.
func runNegativeCycleDemo(ctx context.Context, w io.Writer) error {
	logger := loggerFromContext(ctx)

	logger.Info("running Bellman-Ford on a graph with a negative edge")
	g := core.NewListGraph(core.WithDirected(true), core.WithWeighted())
	for _, v := range []string{"S", "A", "B", "T"} {
		if err := g.AddVertex(v); err != nil {
			return err
		}
	}
	for _, e := range []demoEdge{{"S", "A", 4}, {"S", "B", 2}, {"A", "T", 1}, {"B", "A", -1}, {"B", "T", 5}} {
		if err := g.AddEdge(e.from, e.to, e.weight); err != nil {
			return err
		}
	}
	dist, prev, negCycle, err := shortest.BellmanFord(g, "S")
	if err != nil {
		return err
	}
	logger.Info("Bellman-Ford finished", "negative_cycle", negCycle)
	fmt.Fprint(w, viz.Distances(g, "S", dist, prev))

	logger.Info("running Bellman-Ford on a negative cycle")
	cyc := core.NewListGraph(core.WithDirected(true), core.WithWeighted())
	for _, v := range []string{"S", "A", "B"} {
		if err := cyc.AddVertex(v); err != nil {
			return err
		}
	}
	for _, e := range []demoEdge{{"S", "A", 1}, {"A", "B", -3}, {"B", "S", 1}} {
		if err := cyc.AddEdge(e.from, e.to, e.weight); err != nil {
			return err
		}
	}
	_, _, negCycle, err = shortest.BellmanFord(cyc, "S")
	if err != nil {
		return err
	}
	logger.Warn("negative cycle detection", "negative_cycle", negCycle)
	fmt.Fprintln(w, "negative cycle reachable from S:", negCycle)

	return nil
}
