package shortest

import (
	"fmt"

	"github.com/mkravets/graphkit/core"
)

// BellmanFord computes shortest distances from source to every vertex of g,
// tolerating negative edge weights. It performs up to V-1 full relaxation
// passes over all edges (stopping early when a pass makes no update), then
// one detection pass: any edge that still relaxes proves a negative cycle
// reachable from source.
//
// Returns:
//
//   - dist: vertex ID → minimum total weight from source (Inf if unreachable).
//   - prev: vertex ID → predecessor on the shortest path ("" for the source
//     and for unreachable vertices).
//   - negCycle: true when a reachable negative cycle exists. Distances and
//     predecessors for cycle-affected vertices are then unreliable; a
//     negative cycle is a normal result, not an error.
//
// Complexity: O(V·E) time, O(V) space.
func BellmanFord(g core.Graph, source string) (map[string]int64, map[string]string, bool, error) {
	if g == nil {
		return nil, nil, false, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, nil, false, ErrSourceNotFound
	}

	vertices := g.Vertices()
	r := newRelaxer(vertices)
	r.dist[source] = 0

	for pass := 1; pass < len(vertices); pass++ {
		updated := false
		for _, u := range vertices {
			if r.dist[u] == Inf {
				continue
			}
			nbs, err := g.Neighbors(u)
			if err != nil {
				return nil, nil, false, fmt.Errorf("shortest: neighbors of %q: %w", u, err)
			}
			for _, nb := range nbs {
				if cand := r.dist[u] + nb.Weight; cand < r.dist[nb.ID] {
					r.dist[nb.ID] = cand
					r.prev[nb.ID] = u
					updated = true
				}
			}
		}
		if !updated {
			break
		}
	}

	negCycle, err := stillRelaxes(g, vertices, r.dist)
	if err != nil {
		return nil, nil, false, err
	}

	return r.dist, r.prev, negCycle, nil
}

// stillRelaxes reports whether any edge can still improve a distance after
// the main passes, which proves a reachable negative cycle.
func stillRelaxes(g core.Graph, vertices []string, dist map[string]int64) (bool, error) {
	for _, u := range vertices {
		if dist[u] == Inf {
			continue
		}
		nbs, err := g.Neighbors(u)
		if err != nil {
			return false, fmt.Errorf("shortest: neighbors of %q: %w", u, err)
		}
		for _, nb := range nbs {
			if dist[u]+nb.Weight < dist[nb.ID] {
				return true, nil
			}
		}
	}

	return false, nil
}
