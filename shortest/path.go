package shortest

// Path reconstructs the source→target path from a predecessor map produced
// by Dijkstra or BellmanFord. An empty (or missing) predecessor entry means
// the vertex has none.
//
// Returns [source] when target equals source, nil (with no error) when
// target has no predecessor chain reaching source, and ErrPredecessorCycle
// when the map is malformed and the walk revisits a vertex — a correct
// algorithm run never produces such a map, but reconstruction must not
// loop forever on bad input.
func Path(prev map[string]string, source, target string) ([]string, error) {
	if target == source {
		return []string{source}, nil
	}
	if prev[target] == "" {
		return nil, nil
	}

	// Any chain longer than the map itself must have revisited a vertex.
	limit := len(prev) + 1
	path := make([]string, 0, 8)
	for cur, steps := target, 0; ; steps++ {
		if steps > limit {
			return nil, ErrPredecessorCycle
		}
		path = append(path, cur)
		if cur == source {
			break
		}
		cur = prev[cur]
		if cur == "" {
			// Chain ended before reaching source.
			return nil, nil
		}
	}
	reverse(path)

	return path, nil
}
