package segtree

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/segtree/monoids"
)

func benchTree(b *testing.B, n int) *Tree[int64, int64] {
	b.Helper()
	elements := make([]int64, n)
	for i := range elements {
		elements[i] = int64(i)
	}
	tree, err := NewLazy[int64, int64](elements, monoids.Sum[int64]{}, monoids.AddToSum[int64]{})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	return tree
}

func BenchmarkUpdateRange(b *testing.B) {
	const n = 1 << 16
	tree := benchTree(b, n)
	r := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		left, right := randomRange(r, n)
		if err := tree.UpdateRange(left, right, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkQuery(b *testing.B) {
	const n = 1 << 16
	tree := benchTree(b, n)
	r := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		left, right := randomRange(r, n)
		if _, err := tree.Query(left, right); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUpdate(b *testing.B) {
	const n = 1 << 16
	tree := benchTree(b, n)
	r := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tree.Update(r.Intn(n), int64(i)); err != nil {
			b.Fatal(err)
		}
	}
}
