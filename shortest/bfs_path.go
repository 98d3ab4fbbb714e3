package shortest

import (
	"fmt"

	"github.com/mkravets/graphkit/core"
)

// BFSPath finds a shortest path from source to target counting every edge as
// unit weight, regardless of the graph's declared weights. Returns the path
// as a vertex sequence including both endpoints, [source] when source equals
// target, or nil (with no error) when target is unreachable.
//
// Complexity: O(V + E) over a ListGraph, O(V²) over a MatrixGraph.
func BFSPath(g core.Graph, source, target string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasVertex(target) {
		return nil, ErrTargetNotFound
	}
	if source == target {
		return []string{source}, nil
	}

	parent := make(map[string]string, g.VertexCount())
	visited := map[string]bool{source: true}
	queue := []string{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		nbs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("shortest: neighbors of %q: %w", u, err)
		}
		for _, nb := range nbs {
			if visited[nb.ID] {
				continue
			}
			parent[nb.ID] = u
			if nb.ID == target {
				return walkBack(parent, source, target), nil
			}
			visited[nb.ID] = true
			queue = append(queue, nb.ID)
		}
	}

	return nil, nil
}

// walkBack rebuilds source→target from BFS parent links. The chain is
// guaranteed intact because parent entries are written exactly once.
func walkBack(parent map[string]string, source, target string) []string {
	path := []string{target}
	for cur := target; cur != source; {
		cur = parent[cur]
		path = append(path, cur)
	}
	reverse(path)

	return path
}

// reverse flips p in place.
func reverse(p []string) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
