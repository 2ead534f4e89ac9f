package rbtree_test

import (
	"math/rand"
	"testing"

	"github.com/mkravets/algokit/rbtree"
)

// BenchmarkInsert measures sequential-key insertion, the classic trigger
// for repeated fixup rotations.
// Complexity: O(log n) per insert.
func BenchmarkInsert(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tr := rbtree.New()
		for k := 0; k < 1000; k++ {
			tr.Insert(k, k)
		}
	}
}

// BenchmarkGet measures lookups against a tree of 100k random keys.
func BenchmarkGet(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	tr := rbtree.New()
	keys := make([]int, 0, 100_000)
	for len(keys) < cap(keys) {
		k := rng.Int()
		if tr.Insert(k, k) {
			keys = append(keys, k)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Get(keys[i%len(keys)])
	}
}

// BenchmarkDelete measures mixed delete/insert churn on a warm tree.
func BenchmarkDelete(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	tr := rbtree.New()
	const n = 10_000
	for k := 0; k < n; k++ {
		tr.Insert(k, k)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := rng.Intn(n)
		if !tr.Delete(k) {
			tr.Insert(k, k)
		}
	}
}
