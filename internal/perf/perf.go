// Package perf compares the time and space behavior of the two graph
// representations by applying identical randomized workloads to a
// MatrixGraph and a ListGraph and timing each operation class.
package perf

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mkravets/graphkit/core"
)

// ErrBadConfig indicates an unusable comparison configuration.
var ErrBadConfig = errors.New("perf: invalid configuration")

// Config describes one comparison run. Loadable from TOML.
type Config struct {
	// Vertices is the number of vertices to create. Must be ≥ 2.
	Vertices int `toml:"vertices"`

	// Edges is the number of distinct random edges to create; capped at the
	// maximum the topology allows.
	Edges int `toml:"edges"`

	// Checks is the number of random HasEdge probes to time.
	Checks int `toml:"checks"`

	// Directed and Weighted select the graph flags for both representations.
	Directed bool `toml:"directed"`
	Weighted bool `toml:"weighted"`

	// Seed feeds the workload generator so runs are reproducible.
	Seed int64 `toml:"seed"`
}

// DefaultConfig mirrors the classic demonstration workload: a sparse
// undirected weighted graph of 100 vertices and 500 edges.
func DefaultConfig() Config {
	return Config{
		Vertices: 100,
		Edges:    500,
		Checks:   1000,
		Weighted: true,
		Seed:     42,
	}
}

// LoadConfig reads a TOML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("perf: load config %q: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Vertices < 2 {
		return fmt.Errorf("%w: vertices must be ≥ 2, got %d", ErrBadConfig, c.Vertices)
	}
	if c.Edges < 0 {
		return fmt.Errorf("%w: edges must be ≥ 0, got %d", ErrBadConfig, c.Edges)
	}
	if c.Checks < 0 {
		return fmt.Errorf("%w: checks must be ≥ 0, got %d", ErrBadConfig, c.Checks)
	}

	return nil
}

// maxEdges returns the topology's edge capacity (no self-loops).
func (c Config) maxEdges() int {
	m := c.Vertices * (c.Vertices - 1)
	if !c.Directed {
		m /= 2
	}

	return m
}

// Timing records the duration one operation class took on each backing.
type Timing struct {
	Op     string
	Matrix time.Duration
	List   time.Duration
}

// Report is the outcome of one comparison run.
type Report struct {
	Config  Config
	Timings []Timing

	// Density is created edges over the topology's capacity.
	Density float64

	// MatrixBytes and ListBytes estimate the theoretical storage cost of
	// each backing for the generated graph.
	MatrixBytes int64
	ListBytes   int64
}

// edgeSpec is one generated workload edge.
type edgeSpec struct {
	from, to string
	weight   int64
}

// Compare runs the workload described by cfg against both representations
// and reports per-operation timings plus space estimates.
func Compare(cfg Config) (*Report, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if m := cfg.maxEdges(); cfg.Edges > m {
		cfg.Edges = m
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	vertices := make([]string, cfg.Vertices)
	for i := range vertices {
		vertices[i] = fmt.Sprintf("v%d", i)
	}
	edges := generateEdges(rng, vertices, cfg)

	opts := []core.Option{core.WithDirected(cfg.Directed)}
	if cfg.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	mg := core.NewMatrixGraph(opts...)
	lg := core.NewListGraph(opts...)

	rep := &Report{Config: cfg}

	rep.Timings = append(rep.Timings, Timing{
		Op:     "add vertices",
		Matrix: timeOp(func() { addVertices(mg, vertices) }),
		List:   timeOp(func() { addVertices(lg, vertices) }),
	})
	rep.Timings = append(rep.Timings, Timing{
		Op:     "add edges",
		Matrix: timeOp(func() { addEdges(mg, edges) }),
		List:   timeOp(func() { addEdges(lg, edges) }),
	})

	probes := make([]edgeSpec, cfg.Checks)
	for i := range probes {
		probes[i] = edgeSpec{
			from: vertices[rng.Intn(len(vertices))],
			to:   vertices[rng.Intn(len(vertices))],
		}
	}
	rep.Timings = append(rep.Timings, Timing{
		Op:     "check edges",
		Matrix: timeOp(func() { checkEdges(mg, probes) }),
		List:   timeOp(func() { checkEdges(lg, probes) }),
	})
	rep.Timings = append(rep.Timings, Timing{
		Op:     "enumerate neighbors",
		Matrix: timeOp(func() { enumerateNeighbors(mg, vertices) }),
		List:   timeOp(func() { enumerateNeighbors(lg, vertices) }),
	})

	if m := cfg.maxEdges(); m > 0 {
		rep.Density = float64(len(edges)) / float64(m)
	}
	rep.MatrixBytes, rep.ListBytes = estimateBytes(cfg, len(edges))

	return rep, nil
}

// generateEdges draws cfg.Edges distinct non-loop edges from the seeded rng.
func generateEdges(rng *rand.Rand, vertices []string, cfg Config) []edgeSpec {
	seen := make(map[[2]int]bool, cfg.Edges)
	edges := make([]edgeSpec, 0, cfg.Edges)
	for len(edges) < cfg.Edges {
		u, v := rng.Intn(len(vertices)), rng.Intn(len(vertices))
		if u == v || seen[[2]int{u, v}] {
			continue
		}
		seen[[2]int{u, v}] = true
		if !cfg.Directed {
			seen[[2]int{v, u}] = true
		}
		w := core.DefaultWeight
		if cfg.Weighted {
			w = int64(rng.Intn(100) + 1)
		}
		edges = append(edges, edgeSpec{from: vertices[u], to: vertices[v], weight: w})
	}

	return edges
}

func timeOp(fn func()) time.Duration {
	start := time.Now()
	fn()

	return time.Since(start)
}

func addVertices(g core.Graph, vertices []string) {
	for _, v := range vertices {
		_ = g.AddVertex(v)
	}
}

func addEdges(g core.Graph, edges []edgeSpec) {
	for _, e := range edges {
		_ = g.AddEdge(e.from, e.to, e.weight)
	}
}

func checkEdges(g core.Graph, probes []edgeSpec) {
	for _, p := range probes {
		_ = g.HasEdge(p.from, p.to)
	}
}

func enumerateNeighbors(g core.Graph, vertices []string) {
	for _, v := range vertices {
		_, _ = g.Neighbors(v)
	}
}

// estimateBytes computes the theoretical storage cost of each backing:
// V² cells of weight+presence for the matrix, per-vertex rows plus one
// entry per stored direction for the list.
func estimateBytes(cfg Config, edges int) (matrixBytes, listBytes int64) {
	v := int64(cfg.Vertices)
	e := int64(edges)
	stored := e
	if !cfg.Directed {
		stored *= 2
	}
	matrixBytes = v*v*8 + v*v // int64 weight grid + bool presence grid
	listBytes = v*16 + stored*24

	return matrixBytes, listBytes
}
