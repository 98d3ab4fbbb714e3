package core_test

import (
	"fmt"

	"github.com/mkravets/graphkit/core"
)

// ExampleNewListGraph builds a small weighted road map and queries it.
func ExampleNewListGraph() {
	g := core.NewListGraph(core.WithWeighted())
	for _, city := range []string{"Oslo", "Bergen", "Trondheim"} {
		_ = g.AddVertex(city)
	}
	_ = g.AddEdge("Oslo", "Bergen", 463)
	_ = g.AddEdge("Oslo", "Trondheim", 495)

	w, _ := g.Weight("Bergen", "Oslo") // undirected mirror
	fmt.Println(g.VertexCount(), g.EdgeCount(), w)
	// Output:
	// 3 2 463
}

// ExampleNewMatrixGraph shows the dense representation with a one-way edge.
func ExampleNewMatrixGraph() {
	g := core.NewMatrixGraph(core.WithDirected(true), core.WithWeighted())
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")
	_ = g.AddEdge("A", "B", 7)

	fmt.Println(g.HasEdge("A", "B"), g.HasEdge("B", "A"))
	w, _ := g.Weight("A", "B")
	fmt.Println(w)
	// Output:
	// true false
	// 7
}

// ExampleGraph_Neighbors demonstrates neighbor enumeration with weights.
func ExampleGraph_Neighbors() {
	g := core.NewListGraph(core.WithWeighted())
	for _, v := range []string{"A", "B", "C"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("A", "C", 2)

	nbs, _ := g.Neighbors("A")
	for _, nb := range nbs {
		fmt.Printf("%s(%d) ", nb.ID, nb.Weight)
	}
	// Output:
	// B(4) C(2)
}
