package stats

import (
	"math/rand"
	"testing"
)

// BenchmarkDescribe measures descriptive statistics over a realistic column.
func BenchmarkDescribe(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	values := make([]float64, 10000)
	for i := range values {
		values[i] = 4.0 + rng.Float64()*5.0
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Describe("magnitude", values)
	}
}

// BenchmarkHistogram measures 10-bin bucketing throughput.
func BenchmarkHistogram(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	values := make([]float64, 10000)
	for i := range values {
		values[i] = 4.0 + rng.Float64()*5.0
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = NewHistogram(values, 10)
	}
}
