// Package shortest implements single-source shortest-path algorithms over
// any core.Graph, plus path reconstruction from predecessor maps.
//
// Three algorithms cover the classical trade-offs:
//
//   - Dijkstra: non-negative weights, O((V+E) log V) via a binary min-heap
//     keyed by (distance, insertion sequence) so distance ties break
//     deterministically across runs and representations. Uses lazy
//     decrease-key: shorter rediscoveries push duplicate heap entries and
//     stale ones are skipped when popped.
//   - BellmanFord: arbitrary weights, O(V·E); after V-1 relaxation passes a
//     final pass detects negative cycles reachable from the source. A
//     negative cycle is a normal result flag, never an error — but
//     distances for cycle-affected vertices are unreliable and callers
//     must check the flag before trusting them.
//   - BFSPath: unit-weight shortest path ignoring declared weights, O(V+E).
//
// Unreachable vertices keep distance Inf and an empty predecessor; both are
// normal results. Path walks a predecessor map backward from target to
// source and defensively refuses cyclic input with ErrPredecessorCycle
// rather than looping forever.
package shortest
