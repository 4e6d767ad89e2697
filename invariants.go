package segtree

import "fmt"

// Check validates the tree invariants, comparing aggregates with equal.
//
// Checked are the arena shape, the identity value of padding leaves, and for
// every internal node i
//
//	nodes[i] == Add(effective(2i), effective(2i+1))
//
// where effective folds a node's own pending update into its aggregate.
// Check does not drain pending updates and leaves the tree unchanged. It is
// intended for tests.
func (t *Tree[T, U]) Check(equal func(a, b T) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if equal == nil {
		return fmt.Errorf("%w: equality function is required", ErrInvalidArgument)
	}
	if t.n <= 0 || t.capacity < t.n || t.capacity&(t.capacity-1) != 0 {
		return fmt.Errorf("%w: bad capacity %d for %d elements", ErrInvalidConfig, t.capacity, t.n)
	}
	if len(t.nodes) != 2*t.capacity {
		return fmt.Errorf("%w: node arena has %d slots, want %d", ErrInvalidConfig, len(t.nodes), 2*t.capacity)
	}
	if t.cfg.IsLazy() != (t.pending != nil) {
		return fmt.Errorf("%w: pending state does not match lazy mode", ErrInvalidConfig)
	}
	if t.pending != nil && len(t.pending) != len(t.nodes) {
		return fmt.Errorf("%w: pending arena has %d slots, want %d", ErrInvalidConfig, len(t.pending), len(t.nodes))
	}
	zero := t.cfg.Monoid.Zero()
	for i := t.capacity + t.n; i < 2*t.capacity; i++ {
		if !equal(t.effective(i), zero) {
			return fmt.Errorf("%w: padding leaf %d is not the identity", ErrInvalidConfig, i-t.capacity)
		}
	}
	for i := t.capacity - 1; i >= 1; i-- {
		want := t.cfg.Monoid.Add(t.effective(2*i), t.effective(2*i+1))
		if !equal(t.nodes[i], want) {
			return fmt.Errorf("%w: node %d holds %v, children combine to %v", ErrInvalidConfig, i, t.nodes[i], want)
		}
	}
	return nil
}
