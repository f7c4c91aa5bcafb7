package variate_test

import (
	"testing"

	"github.com/katalvlaran/simul8/variate"
)

// benchmarkGenerate draws a sims×periods matrix of family f per iteration.
func benchmarkGenerate(b *testing.B, f variate.Family, p variate.Params) {
	src := variate.NewSource(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := variate.Generate(f, "x", p, 10_000, 5, src); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

func BenchmarkGenerate_Normal(b *testing.B) {
	benchmarkGenerate(b, variate.Normal, variate.Params{50, 5})
}

func BenchmarkGenerate_Triangular(b *testing.B) {
	benchmarkGenerate(b, variate.Triangular, variate.Params{10, 100, 250})
}

func BenchmarkGenerate_Binomial(b *testing.B) {
	benchmarkGenerate(b, variate.Binomial, variate.Params{50, 0.4})
}
