// Package traverse_test contains unit tests for DFS, covering input
// validation, visitation order in both modes, hook propagation, and
// cancellation.
package traverse_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/mkravets/graphkit/core"
	"github.com/mkravets/graphkit/traverse"
)

// buildGraph adds all vertices first, then the given edges, so both
// representations see the same insertion order.
func buildGraph(g core.Graph, vertices []string, edges [][2]string) core.Graph {
	for _, v := range vertices {
		if err := g.AddVertex(v); err != nil {
			panic(err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], core.DefaultWeight); err != nil {
			panic(err)
		}
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation: nil graph and missing start vertex.
// ------------------------------------------------------------------------

func TestDFS_NilGraph(t *testing.T) {
	if _, err := traverse.DFS(nil, "A"); !errors.Is(err, traverse.ErrGraphNil) {
		t.Fatalf("expected ErrGraphNil, got %v", err)
	}
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewListGraph()
	_ = g.AddVertex("A")
	if _, err := traverse.DFS(g, "Z"); !errors.Is(err, traverse.ErrStartVertexNotFound) {
		t.Fatalf("expected ErrStartVertexNotFound, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Visitation order: small graphs with known pre-order.
// ------------------------------------------------------------------------

func TestDFS_LinearChain(t *testing.T) {
	g := buildGraph(core.NewListGraph(),
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})

	res, err := traverse.DFS(g, "A")
	if err != nil {
		t.Fatalf("DFS failed: %v", err)
	}
	want := []string{"A", "B", "C", "D"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Fatalf("order = %v, want %v", res.Order, want)
	}
	if res.Depth["D"] != 3 {
		t.Fatalf("Depth[D] = %d, want 3", res.Depth["D"])
	}
	if res.Parent["B"] != "A" || res.Parent["C"] != "B" {
		t.Fatalf("unexpected parents: %v", res.Parent)
	}
	if _, ok := res.Parent["A"]; ok {
		t.Fatalf("start vertex must have no parent entry")
	}
}

func TestDFS_BranchingGoesDeepFirst(t *testing.T) {
	// A connects to B and D; B connects to C. DFS must exhaust the branch
	// through B before visiting D.
	g := buildGraph(core.NewListGraph(),
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "D"}, {"B", "C"}})

	res, err := traverse.DFS(g, "A")
	if err != nil {
		t.Fatalf("DFS failed: %v", err)
	}
	want := []string{"A", "B", "C", "D"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Fatalf("order = %v, want %v", res.Order, want)
	}
}

func TestDFS_IterativeMatchesRecursive(t *testing.T) {
	// The cross edge B-D makes naive push-time marking diverge between
	// modes; visit-time marking keeps them identical.
	vertices := []string{"A", "B", "C", "D", "E", "F"}
	edges := [][2]string{
		{"A", "B"}, {"A", "C"}, {"A", "D"},
		{"B", "D"}, {"C", "E"}, {"D", "F"},
	}

	for _, start := range vertices {
		it, err := traverse.DFS(buildGraph(core.NewListGraph(), vertices, edges), start)
		if err != nil {
			t.Fatalf("iterative DFS from %s failed: %v", start, err)
		}
		rec, err := traverse.DFS(buildGraph(core.NewListGraph(), vertices, edges), start,
			traverse.WithRecursive())
		if err != nil {
			t.Fatalf("recursive DFS from %s failed: %v", start, err)
		}
		if !reflect.DeepEqual(it.Order, rec.Order) {
			t.Fatalf("start %s: iterative %v != recursive %v", start, it.Order, rec.Order)
		}
		if !reflect.DeepEqual(it.Depth, rec.Depth) {
			t.Fatalf("start %s: depth mismatch %v != %v", start, it.Depth, rec.Depth)
		}
	}
}

func TestDFS_VisitsOnlyReachableComponent(t *testing.T) {
	g := buildGraph(core.NewListGraph(),
		[]string{"A", "B", "X", "Y"},
		[][2]string{{"A", "B"}, {"X", "Y"}})

	res, err := traverse.DFS(g, "A")
	if err != nil {
		t.Fatalf("DFS failed: %v", err)
	}
	if len(res.Order) != 2 {
		t.Fatalf("expected 2 visited vertices, got %v", res.Order)
	}
	if _, ok := res.Depth["X"]; ok {
		t.Fatalf("unreachable vertex must not appear in Depth")
	}
}

func TestDFS_DirectedRespectsEdgeDirection(t *testing.T) {
	g := core.NewListGraph(core.WithDirected(true))
	for _, v := range []string{"A", "B", "C"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("A", "B", core.DefaultWeight)
	_ = g.AddEdge("C", "A", core.DefaultWeight)

	res, err := traverse.DFS(g, "A")
	if err != nil {
		t.Fatalf("DFS failed: %v", err)
	}
	want := []string{"A", "B"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Fatalf("order = %v, want %v", res.Order, want)
	}
}

func TestDFS_SingleVertex(t *testing.T) {
	g := core.NewListGraph()
	_ = g.AddVertex("A")

	for _, opts := range [][]traverse.Option{nil, {traverse.WithRecursive()}} {
		res, err := traverse.DFS(g, "A", opts...)
		if err != nil {
			t.Fatalf("DFS failed: %v", err)
		}
		if !reflect.DeepEqual(res.Order, []string{"A"}) || res.Depth["A"] != 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Hooks and cancellation.
// ------------------------------------------------------------------------

func TestDFS_OnVisitReceivesDepths(t *testing.T) {
	g := buildGraph(core.NewListGraph(),
		[]string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}})

	got := map[string]int{}
	_, err := traverse.DFS(g, "A", traverse.WithOnVisit(func(id string, depth int) error {
		got[id] = depth

		return nil
	}))
	if err != nil {
		t.Fatalf("DFS failed: %v", err)
	}
	want := map[string]int{"A": 0, "B": 1, "C": 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("hook depths = %v, want %v", got, want)
	}
}

func TestDFS_OnVisitErrorAborts(t *testing.T) {
	g := buildGraph(core.NewListGraph(),
		[]string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}})

	boom := errors.New("boom")
	visits := 0
	_, err := traverse.DFS(g, "A", traverse.WithOnVisit(func(id string, _ int) error {
		visits++
		if id == "B" {
			return boom
		}

		return nil
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped hook error, got %v", err)
	}
	if visits != 2 {
		t.Fatalf("expected traversal to stop after B, got %d visits", visits)
	}
}

func TestDFS_CanceledContext(t *testing.T) {
	g := buildGraph(core.NewListGraph(),
		[]string{"A", "B"},
		[][2]string{{"A", "B"}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := traverse.DFS(g, "A", traverse.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := traverse.DFS(g, "A", traverse.WithContext(ctx), traverse.WithRecursive()); !errors.Is(err, context.Canceled) {
		t.Fatalf("recursive: expected context.Canceled, got %v", err)
	}
}
