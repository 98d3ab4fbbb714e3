// File: adjacency_list.go
// Role: Sparse adjacency-list backing of the Graph contract.
//
// Storage is vertex → (neighbor → weight) with parallel insertion-order
// slices so enumeration stays deterministic. Suited to sparse graphs:
// O(V + E) space, O(degree) edge queries, O(1) amortized vertex adds.
package core

import (
	"fmt"
	"strings"
)

var _ Graph = (*ListGraph)(nil)

// ListGraph is the adjacency-list implementation of Graph.
// The zero value is not usable; construct with NewListGraph.
type ListGraph struct {
	cfg   config
	order []string           // vertex insertion order
	adj   map[string]*adjRow // vertex ID → adjacency row
	edges int                // logical edge count (mirrors count once)
}

// adjRow holds one vertex's outgoing adjacency in edge-insertion order.
type adjRow struct {
	order  []string
	weight map[string]int64
}

func newAdjRow() *adjRow {
	return &adjRow{weight: make(map[string]int64)}
}

// upsert stores weight w for neighbor id, keeping insertion order.
// Reports whether the entry is new.
func (r *adjRow) upsert(id string, w int64) bool {
	if _, ok := r.weight[id]; ok {
		r.weight[id] = w

		return false
	}
	r.order = append(r.order, id)
	r.weight[id] = w

	return true
}

// remove deletes neighbor id from the row. Reports whether it was present.
func (r *adjRow) remove(id string) bool {
	if _, ok := r.weight[id]; !ok {
		return false
	}
	delete(r.weight, id)
	for i, nb := range r.order {
		if nb == id {
			r.order = append(r.order[:i], r.order[i+1:]...)

			break
		}
	}

	return true
}

// NewListGraph creates an empty adjacency-list graph.
// By default the graph is undirected and unweighted.
func NewListGraph(opts ...Option) *ListGraph {
	return &ListGraph{
		cfg: newConfig(opts...),
		adj: make(map[string]*adjRow),
	}
}

// AddVertex inserts id if absent; adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *ListGraph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.adj[id]; ok {
		return nil
	}
	g.order = append(g.order, id)
	g.adj[id] = newAdjRow()

	return nil
}

// HasVertex reports whether id exists.
func (g *ListGraph) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// RemoveVertex deletes id and all incident edges.
// Complexity: O(V + E) worst case (incoming directed edges require a scan).
func (g *ListGraph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	row, ok := g.adj[id]
	if !ok {
		return ErrVertexNotFound
	}

	// Outgoing edges vanish with the row; each counts one logical edge.
	g.edges -= len(row.order)

	if g.cfg.directed {
		// Incoming directed edges live in other rows.
		for _, u := range g.order {
			if u == id {
				continue
			}
			if g.adj[u].remove(id) {
				g.edges--
			}
		}
	} else {
		// Mirror invariant: every incident edge is present in this row,
		// so only the mirrors need removal.
		for _, nb := range row.order {
			if nb != id {
				g.adj[nb].remove(id)
			}
		}
	}

	delete(g.adj, id)
	for i, v := range g.order {
		if v == id {
			g.order = append(g.order[:i], g.order[i+1:]...)

			break
		}
	}

	return nil
}

// AddEdge inserts or overwrites the edge from→to, mirroring when undirected.
// Complexity: O(1) amortized.
func (g *ListGraph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	rowFrom, ok := g.adj[from]
	if !ok {
		return ErrVertexNotFound
	}
	rowTo, ok := g.adj[to]
	if !ok {
		return ErrVertexNotFound
	}
	if err := g.cfg.checkWeight(weight); err != nil {
		return err
	}

	if rowFrom.upsert(to, weight) {
		g.edges++
	}
	if !g.cfg.directed && from != to {
		rowTo.upsert(from, weight)
	}

	return nil
}

// RemoveEdge deletes the edge from→to and its mirror when undirected.
// Complexity: O(degree).
func (g *ListGraph) RemoveEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	rowFrom, ok := g.adj[from]
	if !ok {
		return ErrVertexNotFound
	}
	rowTo, ok := g.adj[to]
	if !ok {
		return ErrVertexNotFound
	}

	if !rowFrom.remove(to) {
		return ErrEdgeNotFound
	}
	g.edges--
	if !g.cfg.directed && from != to {
		rowTo.remove(from)
	}

	return nil
}

// HasEdge reports whether the edge from→to exists. Complexity: O(degree).
func (g *ListGraph) HasEdge(from, to string) bool {
	row, ok := g.adj[from]
	if !ok {
		return false
	}
	_, ok = row.weight[to]

	return ok
}

// Weight returns the stored weight of the edge from→to.
func (g *ListGraph) Weight(from, to string) (int64, error) {
	if from == "" || to == "" {
		return 0, ErrEmptyVertexID
	}
	row, ok := g.adj[from]
	if !ok {
		return 0, ErrVertexNotFound
	}
	if _, ok = g.adj[to]; !ok {
		return 0, ErrVertexNotFound
	}
	w, ok := row.weight[to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Neighbors returns id's adjacency in edge-insertion order.
// Complexity: O(degree).
func (g *ListGraph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	row, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Neighbor, 0, len(row.order))
	for _, nb := range row.order {
		out = append(out, Neighbor{ID: nb, Weight: row.weight[nb]})
	}

	return out, nil
}

// Vertices returns all vertex IDs in insertion order.
func (g *ListGraph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *ListGraph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of logical edges.
func (g *ListGraph) EdgeCount() int { return g.edges }

// Directed reports the directedness flag.
func (g *ListGraph) Directed() bool { return g.cfg.directed }

// Weighted reports the weighted flag.
func (g *ListGraph) Weighted() bool { return g.cfg.weighted }

// String renders the adjacency relationships, one vertex per line.
func (g *ListGraph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ListGraph (%s): %d vertices, %d edges\n",
		describe(g.cfg), len(g.order), g.edges)
	for _, v := range g.order {
		row := g.adj[v]
		if len(row.order) == 0 {
			fmt.Fprintf(&b, "  %s -> {}\n", v)

			continue
		}
		parts := make([]string, 0, len(row.order))
		for _, nb := range row.order {
			if g.cfg.weighted {
				parts = append(parts, fmt.Sprintf("%s(%d)", nb, row.weight[nb]))
			} else {
				parts = append(parts, nb)
			}
		}
		fmt.Fprintf(&b, "  %s -> { %s }\n", v, strings.Join(parts, ", "))
	}

	return b.String()
}

// describe renders the flag pair for debug output.
func describe(c config) string {
	dir := "undirected"
	if c.directed {
		dir = "directed"
	}
	wt := "unweighted"
	if c.weighted {
		wt = "weighted"
	}

	return dir + ", " + wt
}
