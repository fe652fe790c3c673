package vector_test

import (
	"testing"

	"github.com/hasbyte1/go-container-utils/vector"
)

// makeInts creates a Vector[int] of size n for benchmarks.
func makeInts(n int) *vector.Vector[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return vector.From(items)
}

func BenchmarkFilter(b *testing.B) {
	v := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Filter(func(n int) bool { return n%2 == 0 })
	}
}

func BenchmarkMapFunc(b *testing.B) {
	v := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vector.Map(v, func(n int) int { return n * 2 })
	}
}

func BenchmarkFold(b *testing.B) {
	v := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Fold(0, func(acc, n int) int { return acc + n })
	}
}

func BenchmarkSorted(b *testing.B) {
	v := makeInts(10_000).Rev()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vector.Sorted(v)
	}
}

func BenchmarkLargest(b *testing.B) {
	v := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vector.Largest(v, 10)
	}
}
