// Package core defines the Graph contract and its two interchangeable
// backings: a dense adjacency matrix (MatrixGraph) and a sparse
// adjacency list (ListGraph).
//
// Both backings implement the same Graph interface with identical logical
// semantics, so algorithms depend only on the contract and never on the
// concrete representation. What differs is the cost model:
//
//	                 MatrixGraph        ListGraph
//	AddVertex        O(V²) amortized    O(1) amortized
//	AddEdge          O(1)               O(1) amortized
//	HasEdge/Weight   O(1)               O(degree)
//	Neighbors        O(V)               O(degree)
//	Space            O(V²)              O(V + E)
//
// Graphs are configured at construction with two immutable flags,
// WithDirected and WithWeighted. Undirected graphs mirror every edge in
// both directions on each add and remove; unweighted graphs accept only
// DefaultWeight. A repeated AddEdge between the same ordered pair
// overwrites the stored weight rather than creating a parallel edge.
//
// Enumeration is deterministic: Vertices returns insertion order, and
// Neighbors returns each backing's natural order (vertex-index order for
// MatrixGraph, edge-insertion order for ListGraph).
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - operation referenced a non-existent vertex.
//	ErrEdgeNotFound   - operation referenced a non-existent edge.
//	ErrBadWeight      - non-default weight supplied to an unweighted graph.
//
// Graph instances are not safe for concurrent mutation; callers must
// serialize access when sharing an instance across goroutines.
package core
