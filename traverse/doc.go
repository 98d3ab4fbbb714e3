// Package traverse implements depth-first and breadth-first search over any
// core.Graph, plus a reachability-based connectivity check.
//
// DFS supports two modes, iterative (default) and recursive, selected with
// WithRecursive. Both modes share one marking strategy: a vertex is marked
// visited at visit time, when it is appended to the result order. The
// iterative mode pushes neighbors in reverse natural order and discards
// already-visited entries at pop time, which reproduces the recursive
// pre-order exactly, so the two modes always emit the same visitation
// sequence for the same graph.
//
// BFS follows the standard queue discipline and marks vertices at enqueue
// time, so no vertex is enqueued twice.
//
// IsConnected performs a single-source reachability check from the first
// vertex in insertion order. For directed graphs this is deliberately a weak,
// one-directional check; strong connectivity is out of scope.
//
// Traversals are one-shot: each call recomputes from scratch and returns a
// fresh Result. Hooks and context cancellation follow the same conventions
// in both algorithms.
package traverse
