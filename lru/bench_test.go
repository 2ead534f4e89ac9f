package lru_test

import (
	"math/rand"
	"testing"

	"github.com/mkravets/algokit/lru"
)

// BenchmarkPut measures inserts with steady eviction pressure: the key
// space is twice the capacity, so roughly half the puts evict.
func BenchmarkPut(b *testing.B) {
	c, err := lru.New(1024)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	rng := rand.New(rand.NewSource(42))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put(rng.Intn(2048), i)
	}
}

// BenchmarkGet measures hits on a warm cache.
func BenchmarkGet(b *testing.B) {
	c, err := lru.New(1024)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for k := 0; k < 1024; k++ {
		c.Put(k, k)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Get(i % 1024)
	}
}
