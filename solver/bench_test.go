package solver_test

import (
	"testing"

	"github.com/koragendum/conlog/builder"
	"github.com/koragendum/conlog/solver"
)

// BenchmarkSolve_TriangleSum measures the pruned reverse search on the
// looping maze.
func BenchmarkSolve_TriangleSum(b *testing.B) {
	g, err := builder.TriangleSum(6)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_NoPruning measures the same search with the
// monotonicity pruner disabled.
func BenchmarkSolve_NoPruning(b *testing.B) {
	g, err := builder.TriangleSum(6)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(g, solver.WithoutPruning()); err != nil {
			b.Fatal(err)
		}
	}
}
