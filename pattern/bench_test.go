package pattern_test

import (
	"testing"

	"github.com/katalvlaran/amulet/grid"
	"github.com/katalvlaran/amulet/pattern"
)

// BenchmarkMatch_AllMagic measures the densest grid: every attempt succeeds.
func BenchmarkMatch_AllMagic(b *testing.B) {
	m := pattern.NewMatcher(pattern.Default())
	g := grid.Fill('8')
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Match(g)
	}
}

// BenchmarkBuild measures library construction with every variant policy on.
func BenchmarkBuild(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = pattern.Build(pattern.DefaultShapes, pattern.WithMirrors(), pattern.WithShapeKeys())
	}
}
