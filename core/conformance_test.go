package core_test

import (
	"sort"
	"testing"

	"github.com/mkravets/graphkit/core"
	"github.com/stretchr/testify/require"
)

// opScript is a fixed sequence of mutations applied to both backings.
// The two representations must agree on every logical query afterwards;
// only neighbor enumeration ORDER is allowed to differ.
type op struct {
	kind     string // addV, addE, rmV, rmE
	from, to string
	weight   int64
}

func applyScript(t *testing.T, g core.Graph, script []op) {
	t.Helper()
	for _, o := range script {
		var err error
		switch o.kind {
		case "addV":
			err = g.AddVertex(o.from)
		case "addE":
			err = g.AddEdge(o.from, o.to, o.weight)
		case "rmV":
			err = g.RemoveVertex(o.from)
		case "rmE":
			err = g.RemoveEdge(o.from, o.to)
		default:
			t.Fatalf("unknown op kind %q", o.kind)
		}
		require.NoError(t, err, "op %+v", o)
	}
}

func neighborSet(t *testing.T, g core.Graph, id string) []core.Neighbor {
	t.Helper()
	nbs, err := g.Neighbors(id)
	require.NoError(t, err)
	sort.Slice(nbs, func(i, j int) bool { return nbs[i].ID < nbs[j].ID })

	return nbs
}

func requireEquivalent(t *testing.T, m *core.MatrixGraph, l *core.ListGraph) {
	t.Helper()

	require.Equal(t, l.VertexCount(), m.VertexCount())
	require.Equal(t, l.EdgeCount(), m.EdgeCount())
	require.Equal(t, l.Vertices(), m.Vertices())

	for _, u := range l.Vertices() {
		require.Equal(t, neighborSet(t, l, u), neighborSet(t, m, u), "neighbors of %s", u)
		for _, v := range l.Vertices() {
			require.Equal(t, l.HasEdge(u, v), m.HasEdge(u, v), "HasEdge(%s,%s)", u, v)
			if !l.HasEdge(u, v) {
				continue
			}
			wl, err := l.Weight(u, v)
			require.NoError(t, err)
			wm, err := m.Weight(u, v)
			require.NoError(t, err)
			require.Equal(t, wl, wm, "Weight(%s,%s)", u, v)
		}
	}
}

func TestRepresentations_EquivalentUndirected(t *testing.T) {
	script := []op{
		{kind: "addV", from: "A"},
		{kind: "addV", from: "B"},
		{kind: "addV", from: "C"},
		{kind: "addV", from: "D"},
		{kind: "addV", from: "E"},
		{kind: "addE", from: "A", to: "B", weight: 4},
		{kind: "addE", from: "A", to: "C", weight: 2},
		{kind: "addE", from: "B", to: "C", weight: 1},
		{kind: "addE", from: "B", to: "D", weight: 5},
		{kind: "addE", from: "C", to: "D", weight: 8},
		{kind: "addE", from: "C", to: "E", weight: 10},
		{kind: "addE", from: "D", to: "E", weight: 2},
		{kind: "addE", from: "A", to: "B", weight: 6}, // overwrite
		{kind: "rmE", from: "C", to: "D"},
		{kind: "rmV", from: "E"},
	}

	m := core.NewMatrixGraph(core.WithWeighted())
	l := core.NewListGraph(core.WithWeighted())
	applyScript(t, m, script)
	applyScript(t, l, script)

	requireEquivalent(t, m, l)
	require.Equal(t, 4, l.VertexCount())
	require.Equal(t, 3, l.EdgeCount())
}

func TestRepresentations_EquivalentDirected(t *testing.T) {
	script := []op{
		{kind: "addV", from: "S"},
		{kind: "addV", from: "A"},
		{kind: "addV", from: "B"},
		{kind: "addV", from: "T"},
		{kind: "addE", from: "S", to: "A", weight: 1},
		{kind: "addE", from: "A", to: "B", weight: 2},
		{kind: "addE", from: "B", to: "A", weight: 3},
		{kind: "addE", from: "B", to: "T", weight: 4},
		{kind: "addE", from: "T", to: "T", weight: 5}, // self-loop
		{kind: "rmE", from: "B", to: "A"},
	}

	m := core.NewMatrixGraph(core.WithDirected(true), core.WithWeighted())
	l := core.NewListGraph(core.WithDirected(true), core.WithWeighted())
	applyScript(t, m, script)
	applyScript(t, l, script)

	requireEquivalent(t, m, l)
	require.Equal(t, 4, l.EdgeCount())
	require.True(t, l.HasEdge("A", "B"))
	require.False(t, l.HasEdge("B", "A"))
}

func TestRepresentations_EquivalentAfterVertexChurn(t *testing.T) {
	// Interleave removals with re-insertions; the matrix compacts its grid
	// while the list rewires rows, and both must land on the same graph.
	script := []op{
		{kind: "addV", from: "A"},
		{kind: "addV", from: "B"},
		{kind: "addV", from: "C"},
		{kind: "addE", from: "A", to: "B", weight: 1},
		{kind: "addE", from: "B", to: "C", weight: 1},
		{kind: "rmV", from: "B"},
		{kind: "addV", from: "B"},
		{kind: "addE", from: "C", to: "B", weight: 1},
		{kind: "addV", from: "D"},
		{kind: "addE", from: "D", to: "A", weight: 1},
	}

	m := core.NewMatrixGraph(core.WithWeighted())
	l := core.NewListGraph(core.WithWeighted())
	applyScript(t, m, script)
	applyScript(t, l, script)

	requireEquivalent(t, m, l)
	// A re-inserted vertex starts fresh, with no memory of old edges.
	require.False(t, l.HasEdge("A", "B"))
	require.True(t, l.HasEdge("C", "B"))
}
