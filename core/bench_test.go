package core_test

import (
	"fmt"
	"testing"

	"github.com/mkravets/graphkit/core"
)

// benchGraph builds a ring of n vertices with one chord per vertex.
func benchGraph(g core.Graph, n int) {
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("v%d", i))
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", (i+1)%n), 1)
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", (i+n/2)%n), 1)
	}
}

func BenchmarkMatrixGraph_HasEdge(b *testing.B) {
	const n = 1000
	g := core.NewMatrixGraph(core.WithWeighted())
	benchGraph(g, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.HasEdge("v0", "v500")
	}
}

func BenchmarkListGraph_HasEdge(b *testing.B) {
	const n = 1000
	g := core.NewListGraph(core.WithWeighted())
	benchGraph(g, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.HasEdge("v0", "v500")
	}
}

func BenchmarkMatrixGraph_Neighbors(b *testing.B) {
	const n = 1000
	g := core.NewMatrixGraph(core.WithWeighted())
	benchGraph(g, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("v0")
	}
}

func BenchmarkListGraph_Neighbors(b *testing.B) {
	const n = 1000
	g := core.NewListGraph(core.WithWeighted())
	benchGraph(g, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("v0")
	}
}

func BenchmarkListGraph_AddEdge(b *testing.B) {
	const n = 1000
	g := core.NewListGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("v%d", i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i%n), fmt.Sprintf("v%d", (i+7)%n), 1)
	}
}
