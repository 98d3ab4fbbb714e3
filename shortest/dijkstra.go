package shortest

import (
	"container/heap"
	"fmt"

	"github.com/mkravets/graphkit/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
// All edge weights must be ≥ 0; an upfront scan fails fast with
// ErrNegativeWeight before any relaxation happens.
//
// Returns:
//
//   - dist: vertex ID → minimum total weight from source (Inf if unreachable).
//   - prev: vertex ID → predecessor on the shortest path ("" for the source
//     and for unreachable vertices).
//
// Ties in tentative distance are broken by heap insertion sequence, so the
// settle order is reproducible for identical inputs regardless of the graph
// representation.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g core.Graph, source string) (map[string]int64, map[string]string, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrSourceNotFound
	}

	vertices := g.Vertices()

	// Fail fast on negative weights; Bellman-Ford is the tool for those.
	for _, u := range vertices {
		nbs, err := g.Neighbors(u)
		if err != nil {
			return nil, nil, fmt.Errorf("shortest: neighbors of %q: %w", u, err)
		}
		for _, nb := range nbs {
			if nb.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d",
					ErrNegativeWeight, u, nb.ID, nb.Weight)
			}
		}
	}

	r := newRelaxer(vertices)
	r.dist[source] = 0

	pq := make(frontier, 0, len(vertices))
	heap.Init(&pq)
	heap.Push(&pq, &pqItem{id: source, dist: 0, seq: r.nextSeq()})

	settled := make(map[string]bool, len(vertices))
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*pqItem)
		u := item.id
		if settled[u] {
			// Stale entry from lazy decrease-key.
			continue
		}
		settled[u] = true

		nbs, err := g.Neighbors(u)
		if err != nil {
			return nil, nil, fmt.Errorf("shortest: neighbors of %q: %w", u, err)
		}
		for _, nb := range nbs {
			if settled[nb.ID] {
				continue
			}
			if cand := r.dist[u] + nb.Weight; cand < r.dist[nb.ID] {
				r.dist[nb.ID] = cand
				r.prev[nb.ID] = u
				heap.Push(&pq, &pqItem{id: nb.ID, dist: cand, seq: r.nextSeq()})
			}
		}
	}

	return r.dist, r.prev, nil
}

// relaxer holds the distance and predecessor maps common to the relaxation
// algorithms, plus the heap sequence counter.
type relaxer struct {
	dist map[string]int64
	prev map[string]string
	seq  uint64
}

// newRelaxer initializes every vertex to distance Inf with no predecessor.
func newRelaxer(vertices []string) *relaxer {
	r := &relaxer{
		dist: make(map[string]int64, len(vertices)),
		prev: make(map[string]string, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = Inf
		r.prev[v] = ""
	}

	return r
}

// nextSeq returns a monotonically increasing push sequence number.
func (r *relaxer) nextSeq() uint64 {
	r.seq++

	return r.seq
}
