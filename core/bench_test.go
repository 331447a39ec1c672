// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvsearch/core"
)

// BenchmarkAddEdge measures adding weighted edges from one hub.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i), float64(i))
	}
}

// BenchmarkAddEdge_MultiEdges measures adding parallel edges
// when multi-edges are permitted.
func BenchmarkAddEdge_MultiEdges(b *testing.B) {
	g := core.NewGraph(core.WithMultiEdges())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Cycle through 100 target nodes to stress many parallel edges
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i%100), float64(i))
	}
}

// BenchmarkNeighbors measures the sorted neighbor lookup a search performs
// on every expansion.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 64; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("Root")
	}
}
