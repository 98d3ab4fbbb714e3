// Package graphkit is an in-memory toolkit for building, exploring, and
// comparing graphs across their two classic representations.
//
// 🚀 What is graphkit?
//
//	A small, focused library plus a CLI that brings together:
//		• Two interchangeable backings: adjacency matrix & adjacency list
//		• One Graph contract: identical semantics over either backing
//		• Traversals: DFS (iterative & recursive) and BFS, with visit hooks
//		• Shortest paths: Dijkstra, Bellman-Ford (negative-cycle aware),
//		  and unit-weight BFS, plus predecessor-map path reconstruction
//		• A benchmark harness timing matrix vs. list on the same workload
//
// ✨ Why choose graphkit?
//
//   - Deterministic – fixed enumeration orders make every run reproducible
//   - Honest cost model – pick the backing that fits your density, or let
//     the bench command measure it for you
//   - Extensible – OnVisit hooks and context cancellation on traversals
//
// Everything is organized under three public packages and a CLI:
//
//	core/     — the Graph contract, MatrixGraph & ListGraph
//	traverse/ — DFS, BFS, connectivity
//	shortest/ — Dijkstra, Bellman-Ford, BFS paths, reconstruction
//	cmd/      — the graphkit command (demo, show, bench)
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges; either backing
//	stores it, and every algorithm answers the same over both.
//
//	go get github.com/mkravets/graphkit
package graphkit
