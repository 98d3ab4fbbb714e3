// Package traverse defines options, errors, and the shared Result type
// for graph traversal.
package traverse

import (
	"context"
	"errors"
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("traverse: start vertex not found")
)

// Option configures traversal behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks shared by DFS and BFS.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Recursive selects the recursive DFS mode. Ignored by BFS.
	Recursive bool

	// OnVisit is called when a vertex is visited, with its depth from the
	// start. If it returns an error, the traversal aborts and propagates it.
	OnVisit func(id string, depth int) error
}

// DefaultOptions returns Options with a background context, iterative mode,
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRecursive switches DFS to its recursive mode. The visitation order is
// identical to the iterative mode; only the mechanism differs.
func WithRecursive() Option {
	return func(o *Options) { o.Recursive = true }
}

// WithOnVisit registers a callback to run on each visit; returning an error
// from the callback stops the traversal.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: vertices in visitation sequence.
//   - Depth: map from vertex ID to its distance (in edges) from the start.
//   - Parent: map from vertex ID to the vertex it was discovered from;
//     the start vertex has no entry.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// newResult allocates a Result with capacity hints for n vertices.
func newResult(n int) *Result {
	return &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
}
