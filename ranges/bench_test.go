package ranges_test

import (
	"testing"

	"github.com/hasbyte1/go-lazy-ranges/collections"
	"github.com/hasbyte1/go-lazy-ranges/ranges"
)

// makeInts creates a Vector[int] of size n for benchmarks.
func makeInts(n int) collections.Vector[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return collections.From(items)
}

func BenchmarkMapCollect(b *testing.B) {
	v := ranges.Map(makeInts(10_000), square)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Collect()
	}
}

func BenchmarkWhereCollect(b *testing.B) {
	v := ranges.Where(makeInts(10_000), isEven)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Collect()
	}
}

func BenchmarkPipeChain(b *testing.B) {
	chain := ranges.Then(
		ranges.Then(
			ranges.Transform(ranges.FuncOf(square)),
			ranges.Transform(ranges.FuncOf(plusOne)),
		),
		ranges.Filter(ranges.FuncOf(func(n int) bool { return n%5 == 0 })),
	)
	src := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ranges.Pipe(src, chain).Collect()
	}
}

func BenchmarkRandomAccessAt(b *testing.B) {
	ra, err := ranges.AsRandomAccess[int](ranges.Map(makeInts(10_000), square))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ra.At(i % 10_000)
	}
}

func BenchmarkCount(b *testing.B) {
	v := ranges.Map(makeInts(10_000), square)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Count()
	}
}
