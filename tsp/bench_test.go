// Benchmarks for the tour solvers.
// Inputs are built outside the timer; only the solver is measured.
package tsp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/tourlab/tsp"
)

// BenchmarkNearestNeighbor_n26 measures the greedy solver on the largest
// labelled instance (A..Z).
func BenchmarkNearestNeighbor_n26(b *testing.B) {
	g := randomGraph(b, 26, seedDet)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.NearestNeighbor(g, "A"); err != nil {
			b.Fatalf("NearestNeighbor failed: %v", err)
		}
	}
}

// BenchmarkGenetic_Default_n10 measures the GA with default parameters on the
// ten-letter canvas instance.
func BenchmarkGenetic_Default_n10(b *testing.B) {
	g := randomGraph(b, 10, seedDet)
	cfg := tsp.DefaultGAConfig()
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Genetic(ctx, g, "A", cfg, tsp.NewRand(seedDet)); err != nil {
			b.Fatalf("Genetic failed: %v", err)
		}
	}
}

// BenchmarkGenetic_LargePopulation_n26 stresses the O(P²) selection cost.
func BenchmarkGenetic_LargePopulation_n26(b *testing.B) {
	g := randomGraph(b, 26, seedDet)
	cfg := tsp.GAConfig{PopulationSize: 200, MutationRate: 0.01, Generations: 50}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Genetic(ctx, g, "A", cfg, tsp.NewRand(seedDet)); err != nil {
			b.Fatalf("Genetic failed: %v", err)
		}
	}
}
