package segtree

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/npillmayer/segtree/monoids"
)

// How to run:
//   - Deterministic randomized property tests:
//     go test . -run 'TestLazy.*RandomizedProperty' -count=1
//   - Fuzz test for this file:
//     go test . -run '^$' -fuzz FuzzLazySumRandomizedProperty -fuzztime=10s

// modelCase describes a tree configuration together with its naive
// reference semantics on a plain slice.
type modelCase[T comparable, U any] struct {
	monoid    Monoid[T]
	updater   Updater[T, U]
	applyOne  func(x T, u U) T // apply an update to a single element
	randValue func(r *rand.Rand) T
	randDelta func(r *rand.Rand) U
}

func (mc modelCase[T, U]) fold(model []T, left, right int) T {
	acc := mc.monoid.Zero()
	for i := left; i <= right; i++ {
		acc = mc.monoid.Add(acc, model[i])
	}
	return acc
}

func randomRange(r *rand.Rand, n int) (int, int) {
	left, right := r.Intn(n), r.Intn(n)
	if left > right {
		left, right = right, left
	}
	return left, right
}

func runModelSequence[T comparable, U any](t *testing.T, mc modelCase[T, U], seed uint64, n, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(int64(seed)))
	model := make([]T, n)
	for i := range model {
		model[i] = mc.randValue(r)
	}
	tree, err := NewLazy(model, mc.monoid, mc.updater)
	if err != nil {
		t.Fatalf("NewLazy failed: %v", err)
	}
	equal := func(a, b T) bool { return a == b }
	for step := 0; step < steps; step++ {
		switch r.Intn(6) {
		case 0:
			i, v := r.Intn(n), mc.randValue(r)
			if err := tree.Update(i, v); err != nil {
				t.Fatalf("step %d: Update failed: %v", step, err)
			}
			model[i] = v
		case 1, 2:
			left, right := randomRange(r, n)
			u := mc.randDelta(r)
			if err := tree.UpdateRange(left, right, u); err != nil {
				t.Fatalf("step %d: UpdateRange failed: %v", step, err)
			}
			for i := left; i <= right; i++ {
				model[i] = mc.applyOne(model[i], u)
			}
		case 3:
			left, right := randomRange(r, n)
			got, err := tree.Query(left, right)
			if err != nil {
				t.Fatalf("step %d: Query failed: %v", step, err)
			}
			if want := mc.fold(model, left, right); got != want {
				t.Fatalf("step %d: Query(%d, %d) = %v, want %v", step, left, right, got, want)
			}
		case 4:
			i := r.Intn(n)
			got, err := tree.QueryPoint(i)
			if err != nil {
				t.Fatalf("step %d: QueryPoint failed: %v", step, err)
			}
			if got != model[i] {
				t.Fatalf("step %d: QueryPoint(%d) = %v, want %v", step, i, got, model[i])
			}
		case 5:
			if err := tree.Check(equal); err != nil {
				t.Fatalf("step %d: invariant check failed: %v", step, err)
			}
		}
	}
	if err := tree.Check(equal); err != nil {
		t.Fatalf("final invariant check failed: %v", err)
	}
	if diff := cmp.Diff(model, tree.Values()); diff != "" {
		t.Fatalf("final values mismatch (-want +got):\n%s", diff)
	}
	if got, want := tree.Summary(), mc.fold(model, 0, n-1); got != want {
		t.Fatalf("final summary = %v, want %v", got, want)
	}
}

func lazySumCase() modelCase[int64, int64] {
	return modelCase[int64, int64]{
		monoid:    monoids.Sum[int64]{},
		updater:   monoids.AddToSum[int64]{},
		applyOne:  func(x, d int64) int64 { return x + d },
		randValue: func(r *rand.Rand) int64 { return int64(r.Intn(201) - 100) },
		randDelta: func(r *rand.Rand) int64 { return int64(r.Intn(21) - 10) },
	}
}

func TestLazySumRandomizedProperty(t *testing.T) {
	for _, n := range []int{1, 2, 5, 16, 37} {
		for seed := uint64(1); seed <= 8; seed++ {
			runModelSequence(t, lazySumCase(), seed*7919+uint64(n), n, 400)
		}
	}
}

func TestLazyMaxAssignRandomizedProperty(t *testing.T) {
	mc := modelCase[int, monoids.Assignment[int]]{
		monoid:    monoids.Max[int]{Identity: math.MinInt},
		updater:   monoids.AssignExtremum[int]{},
		applyOne:  func(_ int, u monoids.Assignment[int]) int { return u.Value },
		randValue: func(r *rand.Rand) int { return r.Intn(1000) },
		randDelta: func(r *rand.Rand) monoids.Assignment[int] { return monoids.Assign(r.Intn(1000)) },
	}
	for _, n := range []int{3, 13, 32} {
		for seed := uint64(1); seed <= 8; seed++ {
			runModelSequence(t, mc, seed, n, 300)
		}
	}
}

func TestLazyAffineRandomizedProperty(t *testing.T) {
	mc := modelCase[int64, monoids.Linear[int64]]{
		monoid:   monoids.Sum[int64]{},
		updater:  monoids.Affine[int64]{},
		applyOne: func(x int64, u monoids.Linear[int64]) int64 { return u.Mul*x + u.Add },
		randValue: func(r *rand.Rand) int64 {
			return int64(r.Intn(11) - 5)
		},
		randDelta: func(r *rand.Rand) monoids.Linear[int64] {
			return monoids.Linear[int64]{Mul: int64(r.Intn(3) - 1), Add: int64(r.Intn(7) - 3)}
		},
	}
	for _, n := range []int{4, 11, 29} {
		for seed := uint64(1); seed <= 8; seed++ {
			runModelSequence(t, mc, seed, n, 300)
		}
	}
}

func TestLazyXorRandomizedProperty(t *testing.T) {
	mc := modelCase[uint32, uint32]{
		monoid:    monoids.Xor[uint32]{},
		updater:   monoids.XorMask[uint32]{},
		applyOne:  func(x, m uint32) uint32 { return x ^ m },
		randValue: func(r *rand.Rand) uint32 { return r.Uint32() },
		randDelta: func(r *rand.Rand) uint32 { return r.Uint32() },
	}
	for _, n := range []int{1, 9, 24} {
		for seed := uint64(1); seed <= 8; seed++ {
			runModelSequence(t, mc, seed, n, 300)
		}
	}
}

func FuzzLazySumRandomizedProperty(f *testing.F) {
	f.Add(uint64(1), uint8(7), uint16(200))
	f.Add(uint64(42), uint8(1), uint16(50))
	f.Add(uint64(20260101), uint8(64), uint16(500))
	f.Fuzz(func(t *testing.T, seed uint64, n uint8, steps uint16) {
		if n == 0 {
			n = 1
		}
		runModelSequence(t, lazySumCase(), seed, int(n), int(steps%1024))
	})
}
