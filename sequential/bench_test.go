package sequential_test

import (
	"testing"

	"github.com/manuelbb-upb/pointsampler/sequential"
)

// benchmarkDesign drains a full nPoints×dims design once per iteration.
func benchmarkDesign(b *testing.B, nPoints, dims, spawnFactor int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := sequential.Design(nPoints, dims,
			sequential.WithSpawnFactor(spawnFactor),
			sequential.WithRandomSeed(1),
		)
		if err != nil {
			b.Fatalf("Design failed: %v", err)
		}
	}
}

// BenchmarkDesign_Small2D measures a typical warm-start budget in 2D.
func BenchmarkDesign_Small2D(b *testing.B) {
	benchmarkDesign(b, 20, 2, 20)
}

// BenchmarkDesign_Medium5D measures a mid-sized design in 5 dimensions.
func BenchmarkDesign_Medium5D(b *testing.B) {
	benchmarkDesign(b, 50, 5, 20)
}

// BenchmarkDesign_DenseSpawn stresses the candidate loop with the default
// spawn factor on a small budget.
func BenchmarkDesign_DenseSpawn(b *testing.B) {
	benchmarkDesign(b, 15, 3, sequential.DefaultSpawnFactor)
}

// BenchmarkGeneratorNext_Step measures single-step cost at a fixed design
// size, seeds excluded.
func BenchmarkGeneratorNext_Step(b *testing.B) {
	g, err := sequential.New(3,
		sequential.WithUnbounded(),
		sequential.WithSpawnFactor(10),
		sequential.WithRandomSeed(1),
	)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	// Warm the design so every measured step runs the candidate loop.
	_ = g.Points(32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := g.Next(); !ok {
			b.Fatal("unbounded generator exhausted")
		}
	}
}
