package traverse

import (
	"fmt"

	"github.com/mkravets/graphkit/core"
)

// bfsWalker encapsulates mutable BFS state.
type bfsWalker struct {
	graph   core.Graph
	opts    Options
	queue   []frame
	visited map[string]bool
	res     *Result
}

// BFS performs breadth-first search on g starting from startID: enqueue the
// start, then repeatedly dequeue, visit, and enqueue each unvisited neighbor
// in natural order, marking at enqueue time. Returns ErrGraphNil or
// ErrStartVertexNotFound for invalid input, a context error on cancellation,
// or any OnVisit hook error.
//
// Complexity: O(V + E) over a ListGraph, O(V²) over a MatrixGraph.
func BFS(g core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &bfsWalker{
		graph:   g,
		opts:    o,
		queue:   make([]frame, 0, n),
		visited: make(map[string]bool, n),
		res:     newResult(n),
	}

	w.enqueue(frame{id: startID})
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks f.id visited, records depth and parent, and appends it to
// the queue.
func (w *bfsWalker) enqueue(f frame) {
	w.visited[f.id] = true
	w.res.Depth[f.id] = f.depth
	if f.parent != "" {
		w.res.Parent[f.id] = f.parent
	}
	w.queue = append(w.queue, f)
}

// loop processes the queue until empty, error, or cancellation.
func (w *bfsWalker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		f := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, f.id)
		if err := w.opts.OnVisit(f.id, f.depth); err != nil {
			return fmt.Errorf("traverse: OnVisit error at %q: %w", f.id, err)
		}

		nbs, err := w.graph.Neighbors(f.id)
		if err != nil {
			return fmt.Errorf("traverse: neighbors of %q: %w", f.id, err)
		}
		for _, nb := range nbs {
			if !w.visited[nb.ID] {
				w.enqueue(frame{id: nb.ID, depth: f.depth + 1, parent: f.id})
			}
		}
	}

	return nil
}
