package traverse

import (
	"fmt"

	"github.com/mkravets/graphkit/core"
)

// frame pairs a vertex ID with its discovery depth and parent.
type frame struct {
	id     string
	depth  int
	parent string // empty for the start vertex
}

// dfsWalker encapsulates mutable DFS state.
type dfsWalker struct {
	graph   core.Graph
	opts    Options
	visited map[string]bool
	res     *Result
}

// DFS performs depth-first search on g starting from startID.
// The default mode is iterative; WithRecursive selects the recursive mode.
// Both modes mark a vertex visited at visit time and explore neighbors in
// the representation's natural order, producing identical visitation
// sequences. Returns ErrGraphNil or ErrStartVertexNotFound for invalid
// input, a context error on cancellation, or any OnVisit hook error.
//
// Complexity: O(V + E) over a ListGraph, O(V²) over a MatrixGraph.
func DFS(g core.Graph, startID string, opts ...Option) (*Result, error) {
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
	w := &dfsWalker{
		graph:   g,
		opts:    o,
		visited: make(map[string]bool, n),
		res:     newResult(n),
	}

	root := frame{id: startID}
	if o.Recursive {
		if err := w.recurse(root); err != nil {
			return nil, err
		}

		return w.res, nil
	}
	if err := w.iterate(root); err != nil {
		return nil, err
	}

	return w.res, nil
}

// visit marks f.id visited, records order, depth, and parent, and fires the
// OnVisit hook.
func (w *dfsWalker) visit(f frame) error {
	w.visited[f.id] = true
	w.res.Order = append(w.res.Order, f.id)
	w.res.Depth[f.id] = f.depth
	if f.parent != "" {
		w.res.Parent[f.id] = f.parent
	}
	if err := w.opts.OnVisit(f.id, f.depth); err != nil {
		return fmt.Errorf("traverse: OnVisit error at %q: %w", f.id, err)
	}

	return nil
}

// iterate runs the explicit-stack mode. Duplicate stack entries for a vertex
// are allowed and discarded at pop time once the vertex has been visited;
// neighbors are pushed in reverse natural order so the most-recently-pushed
// (first) neighbor is explored next.
func (w *dfsWalker) iterate(root frame) error {
	stack := []frame{root}
	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.visited[f.id] {
			continue
		}
		if err := w.visit(f); err != nil {
			return err
		}

		nbs, err := w.graph.Neighbors(f.id)
		if err != nil {
			return fmt.Errorf("traverse: neighbors of %q: %w", f.id, err)
		}
		for i := len(nbs) - 1; i >= 0; i-- {
			if !w.visited[nbs[i].ID] {
				stack = append(stack, frame{id: nbs[i].ID, depth: f.depth + 1, parent: f.id})
			}
		}
	}

	return nil
}

// recurse runs the call-stack mode: visit f, then descend into each
// unvisited neighbor in natural order.
func (w *dfsWalker) recurse(f frame) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if err := w.visit(f); err != nil {
		return err
	}

	nbs, err := w.graph.Neighbors(f.id)
	if err != nil {
		return fmt.Errorf("traverse: neighbors of %q: %w", f.id, err)
	}
	for _, nb := range nbs {
		if w.visited[nb.ID] {
			continue
		}
		if err = w.recurse(frame{id: nb.ID, depth: f.depth + 1, parent: f.id}); err != nil {
			return err
		}
	}

	return nil
}
