package traverse

import "github.com/mkravets/graphkit/core"

// IsConnected reports whether a traversal from the first vertex in insertion
// order reaches every vertex. For directed graphs this is a weak,
// one-directional reachability check, not strong connectivity. A graph with
// no vertices is considered connected.
func IsConnected(g core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return true, nil
	}

	res, err := BFS(g, vertices[0])
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(vertices), nil
}
