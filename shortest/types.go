// Package shortest defines errors and the priority structure shared by the
// shortest-path algorithms.
package shortest

import (
	"errors"
	"math"
)

// Inf is the distance reported for vertices unreachable from the source.
const Inf int64 = math.MaxInt64

// Sentinel errors for shortest-path execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("shortest: graph is nil")

	// ErrSourceNotFound indicates that the source vertex does not exist.
	ErrSourceNotFound = errors.New("shortest: source vertex not found")

	// ErrTargetNotFound indicates that the target vertex does not exist.
	ErrTargetNotFound = errors.New("shortest: target vertex not found")

	// ErrNegativeWeight indicates a negative edge weight was detected where
	// the algorithm's contract forbids it (Dijkstra).
	ErrNegativeWeight = errors.New("shortest: negative edge weight encountered")

	// ErrPredecessorCycle indicates a cyclic predecessor chain during path
	// reconstruction. A correct algorithm run never produces one; this
	// guards Path against malformed input.
	ErrPredecessorCycle = errors.New("shortest: predecessor map contains a cycle")
)

// pqItem is one frontier entry: a vertex, its tentative distance, and the
// sequence number of its push. Ties in distance are broken by sequence so
// extraction order is stable for identical inputs.
type pqItem struct {
	id   string
	dist int64
	seq  uint64
}

// frontier is a binary min-heap of *pqItem ordered by (dist, seq) ascending.
// Used with the lazy-decrease-key pattern: improved distances push fresh
// entries, and stale entries are ignored when popped.
type frontier []*pqItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*pqItem)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
