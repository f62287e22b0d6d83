package bst_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlds/bst"
)

// BenchmarkInsertRandom inserts 10k random values per iteration.
func BenchmarkInsertRandom(b *testing.B) {
	const N = 10000
	r := rand.New(rand.NewSource(42))
	vals := make([]int, N)
	for i := range vals {
		vals[i] = r.Int()
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bst.FromSlice(vals)
	}
}

// BenchmarkInOrder walks a 10k-node random tree.
func BenchmarkInOrder(b *testing.B) {
	const N = 10000
	r := rand.New(rand.NewSource(42))
	t := bst.New[int]()
	for i := 0; i < N; i++ {
		t.Insert(r.Int())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range t.InOrder() {
		}
	}
}
