// File: types.go
// Role: Graph contract, Neighbor pair, sentinel errors, construction options.
package core

import "errors"

// DefaultWeight is the weight carried by every edge of an unweighted graph,
// and the conventional weight callers pass when they do not care about cost.
const DefaultWeight int64 = 1

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that a provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-default weight supplied to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")
)

// Neighbor pairs an adjacent vertex ID with the weight of the connecting edge.
// Unweighted graphs report DefaultWeight.
type Neighbor struct {
	// ID is the adjacent vertex identifier.
	ID string

	// Weight is the stored edge weight.
	Weight int64
}

// Graph is the representation-independent contract shared by MatrixGraph and
// ListGraph. Identical operation sequences applied to both backings produce
// identical logical results (same edges, same weights, same neighbor sets).
type Graph interface {
	// AddVertex inserts the vertex if absent. Idempotent.
	// Returns ErrEmptyVertexID for an empty ID.
	AddVertex(id string) error

	// HasVertex reports whether the vertex exists (empty ID ⇒ false).
	HasVertex(id string) bool

	// RemoveVertex deletes the vertex and every incident edge.
	// Returns ErrVertexNotFound if the vertex is absent.
	RemoveVertex(id string) error

	// AddEdge inserts or overwrites the edge from→to with the given weight.
	// Both endpoints must already exist (ErrVertexNotFound). Unweighted
	// graphs accept only DefaultWeight (ErrBadWeight). Undirected graphs
	// mirror the edge in both directions. A failed AddEdge performs no
	// mutation.
	AddEdge(from, to string, weight int64) error

	// RemoveEdge deletes the edge from→to, and its mirror when undirected.
	// Returns ErrVertexNotFound for a missing endpoint, ErrEdgeNotFound
	// when the edge does not exist.
	RemoveEdge(from, to string) error

	// HasEdge reports whether the edge from→to exists.
	HasEdge(from, to string) bool

	// Weight returns the stored weight of the edge from→to.
	// Returns ErrVertexNotFound for a missing endpoint, ErrEdgeNotFound
	// when the edge does not exist.
	Weight(from, to string) (int64, error)

	// Neighbors returns the vertices adjacent to id together with edge
	// weights, in the backing's natural order. For directed graphs only
	// outgoing edges are reported. Returns ErrVertexNotFound if id is
	// absent.
	Neighbors(id string) ([]Neighbor, error)

	// Vertices returns all vertex IDs in insertion order.
	Vertices() []string

	// VertexCount returns the number of vertices.
	VertexCount() int

	// EdgeCount returns the number of logical edges; an undirected edge and
	// its mirror count once.
	EdgeCount() int

	// Directed reports the directedness flag fixed at construction.
	Directed() bool

	// Weighted reports the weighted flag fixed at construction.
	Weighted() bool

	// String renders a human-readable debug form. Never fails.
	String() string
}

// Option configures a graph before creation.
type Option func(*config)

// config collects the immutable construction flags shared by both backings.
type config struct {
	directed bool
	weighted bool
}

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected; default undirected).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithWeighted allows non-default edge weights in the graph.
func WithWeighted() Option {
	return func(c *config) { c.weighted = true }
}

// newConfig applies opts over the zero config (undirected, unweighted).
func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// checkWeight validates w against the weighted flag.
func (c config) checkWeight(w int64) error {
	if !c.weighted && w != DefaultWeight {
		return ErrBadWeight
	}

	return nil
}
