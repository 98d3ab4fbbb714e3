// File: adjacency_matrix.go
// Role: Dense adjacency-matrix backing of the Graph contract.
//
// Storage is a V×V cell grid indexed through a stable vertex→index map.
// Presence is tracked separately from weight so zero- and negative-weight
// edges are representable. Capacity grows by doubling, so the O(V²)
// rebuild cost of vertex insertion is amortized across adds.
package core

import (
	"fmt"
	"strings"
)

// minMatrixCap is the initial side length allocated on the first grow.
const minMatrixCap = 4

var _ Graph = (*MatrixGraph)(nil)

// MatrixGraph is the adjacency-matrix implementation of Graph.
// The zero value is not usable; construct with NewMatrixGraph.
type MatrixGraph struct {
	cfg     config
	index   map[string]int // vertex ID → row/col index
	labels  []string       // index → vertex ID, insertion order
	present [][]bool       // present[i][j]: edge i→j exists
	weight  [][]int64      // weight[i][j]: stored weight when present
	edges   int            // logical edge count (mirrors count once)
}

// NewMatrixGraph creates an empty adjacency-matrix graph.
// By default the graph is undirected and unweighted.
func NewMatrixGraph(opts ...Option) *MatrixGraph {
	return &MatrixGraph{
		cfg:   newConfig(opts...),
		index: make(map[string]int),
	}
}

// grow rebuilds the backing grid with doubled capacity.
func (g *MatrixGraph) grow() {
	newCap := len(g.present) * 2
	if newCap < minMatrixCap {
		newCap = minMatrixCap
	}
	present := make([][]bool, newCap)
	weight := make([][]int64, newCap)
	for i := range present {
		present[i] = make([]bool, newCap)
		weight[i] = make([]int64, newCap)
		if i < len(g.labels) {
			copy(present[i], g.present[i])
			copy(weight[i], g.weight[i])
		}
	}
	g.present = present
	g.weight = weight
}

// AddVertex inserts id if absent; adding an existing vertex is a no-op.
// Complexity: O(V²) on grow, O(1) otherwise (amortized O(V²) total).
func (g *MatrixGraph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.index[id]; ok {
		return nil
	}
	if len(g.labels) == len(g.present) {
		g.grow()
	}
	g.index[id] = len(g.labels)
	g.labels = append(g.labels, id)

	return nil
}

// HasVertex reports whether id exists.
func (g *MatrixGraph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}

// RemoveVertex deletes id and all incident edges, compacting the grid by
// shifting trailing rows and columns. Complexity: O(V²).
func (g *MatrixGraph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	idx, ok := g.index[id]
	if !ok {
		return ErrVertexNotFound
	}
	n := len(g.labels)

	// Count incident edges before the shift. For undirected graphs the row
	// scan covers every incident edge exactly once (mirror symmetry).
	for j := 0; j < n; j++ {
		if g.present[idx][j] {
			g.edges--
		}
	}
	if g.cfg.directed {
		for i := 0; i < n; i++ {
			if i != idx && g.present[i][idx] {
				g.edges--
			}
		}
	}

	// Shift rows up over the removed row.
	copy(g.present[idx:n-1], g.present[idx+1:n])
	copy(g.weight[idx:n-1], g.weight[idx+1:n])
	g.present[n-1] = make([]bool, len(g.present))
	g.weight[n-1] = make([]int64, len(g.weight))

	// Shift columns left over the removed column.
	for i := 0; i < n-1; i++ {
		copy(g.present[i][idx:n-1], g.present[i][idx+1:n])
		copy(g.weight[i][idx:n-1], g.weight[i][idx+1:n])
		g.present[i][n-1] = false
		g.weight[i][n-1] = 0
	}

	delete(g.index, id)
	g.labels = append(g.labels[:idx], g.labels[idx+1:]...)
	for i := idx; i < len(g.labels); i++ {
		g.index[g.labels[i]] = i
	}

	return nil
}

// AddEdge inserts or overwrites the edge from→to, mirroring when undirected.
// Complexity: O(1).
func (g *MatrixGraph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	i, ok := g.index[from]
	if !ok {
		return ErrVertexNotFound
	}
	j, ok := g.index[to]
	if !ok {
		return ErrVertexNotFound
	}
	if err := g.cfg.checkWeight(weight); err != nil {
		return err
	}

	if !g.present[i][j] {
		g.edges++
	}
	g.present[i][j] = true
	g.weight[i][j] = weight
	if !g.cfg.directed {
		g.present[j][i] = true
		g.weight[j][i] = weight
	}

	return nil
}

// RemoveEdge deletes the edge from→to and its mirror when undirected.
// Complexity: O(1).
func (g *MatrixGraph) RemoveEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	i, ok := g.index[from]
	if !ok {
		return ErrVertexNotFound
	}
	j, ok := g.index[to]
	if !ok {
		return ErrVertexNotFound
	}
	if !g.present[i][j] {
		return ErrEdgeNotFound
	}

	g.present[i][j] = false
	g.weight[i][j] = 0
	if !g.cfg.directed {
		g.present[j][i] = false
		g.weight[j][i] = 0
	}
	g.edges--

	return nil
}

// HasEdge reports whether the edge from→to exists. Complexity: O(1).
func (g *MatrixGraph) HasEdge(from, to string) bool {
	i, ok := g.index[from]
	if !ok {
		return false
	}
	j, ok := g.index[to]
	if !ok {
		return false
	}

	return g.present[i][j]
}

// Weight returns the stored weight of the edge from→to. Complexity: O(1).
func (g *MatrixGraph) Weight(from, to string) (int64, error) {
	if from == "" || to == "" {
		return 0, ErrEmptyVertexID
	}
	i, ok := g.index[from]
	if !ok {
		return 0, ErrVertexNotFound
	}
	j, ok := g.index[to]
	if !ok {
		return 0, ErrVertexNotFound
	}
	if !g.present[i][j] {
		return 0, ErrEdgeNotFound
	}

	return g.weight[i][j], nil
}

// Neighbors scans id's row and returns adjacency in vertex-index order.
// Complexity: O(V).
func (g *MatrixGraph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	i, ok := g.index[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Neighbor, 0)
	for j := 0; j < len(g.labels); j++ {
		if g.present[i][j] {
			out = append(out, Neighbor{ID: g.labels[j], Weight: g.weight[i][j]})
		}
	}

	return out, nil
}

// Vertices returns all vertex IDs in insertion order.
func (g *MatrixGraph) Vertices() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// VertexCount returns the number of vertices.
func (g *MatrixGraph) VertexCount() int { return len(g.labels) }

// EdgeCount returns the number of logical edges.
func (g *MatrixGraph) EdgeCount() int { return g.edges }

// Directed reports the directedness flag.
func (g *MatrixGraph) Directed() bool { return g.cfg.directed }

// Weighted reports the weighted flag.
func (g *MatrixGraph) Weighted() bool { return g.cfg.weighted }

// String renders the matrix with '·' marking absent edges.
func (g *MatrixGraph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MatrixGraph (%s): %d vertices, %d edges\n",
		describe(g.cfg), len(g.labels), g.edges)
	if len(g.labels) == 0 {
		return b.String()
	}

	width := 1
	for _, v := range g.labels {
		if len(v) > width {
			width = len(v)
		}
	}

	fmt.Fprintf(&b, "  %*s", width, "")
	for _, v := range g.labels {
		fmt.Fprintf(&b, " %*s", width, v)
	}
	b.WriteByte('\n')
	for i, v := range g.labels {
		fmt.Fprintf(&b, "  %*s", width, v)
		for j := range g.labels {
			if g.present[i][j] {
				fmt.Fprintf(&b, " %*d", width, g.weight[i][j])
			} else {
				fmt.Fprintf(&b, " %*s", width, "·")
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
