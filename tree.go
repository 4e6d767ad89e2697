package segtree

import (
	"fmt"
	"math/bits"
)

// Tree is a fixed-size segment tree over elements of type T.
//
// U is the type of deferred range updates. Trees built without an Updater use
// NoUpdate and do not allocate pending state.
type Tree[T, U any] struct {
	cfg      Config[T, U]
	n        int // element count, fixed at build time
	capacity int // smallest power of two >= n
	// nodes is a 1-based heap layout: node i has children 2i and 2i+1,
	// leaves occupy nodes[capacity:], nodes[0] is unused.
	nodes []T
	// pending has the shape of nodes and is nil unless the tree is lazy.
	// pending[i] is not yet folded into nodes[i].
	pending []U
}

// Build creates a tree over elements with the given configuration. Lazy mode
// is enabled iff cfg.Updater is set; it cannot be switched later.
//
// Build runs in O(capacity).
func Build[T, U any](cfg Config[T, U], elements []T) (*Tree[T, U], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	capacity, err := capacityFor(len(elements))
	if err != nil {
		return nil, err
	}
	t := &Tree[T, U]{
		cfg:      cfg,
		n:        len(elements),
		capacity: capacity,
		nodes:    make([]T, 2*capacity),
	}
	zero := cfg.Monoid.Zero()
	for i := range t.nodes {
		t.nodes[i] = zero
	}
	copy(t.nodes[capacity:], elements)
	for i := capacity - 1; i >= 1; i-- {
		t.nodes[i] = cfg.Monoid.Add(t.nodes[2*i], t.nodes[2*i+1])
	}
	if cfg.IsLazy() {
		t.pending = make([]U, 2*capacity)
		none := cfg.Updater.Zero()
		for i := range t.pending {
			t.pending[i] = none
		}
	}
	tracer().Debugf("segtree: built tree of %d elements, capacity %d, lazy=%v", t.n, capacity, cfg.IsLazy())
	return t, nil
}

// New builds a tree without range-update support.
func New[T any](elements []T, m Monoid[T]) (*Tree[T, NoUpdate], error) {
	return Build(Config[T, NoUpdate]{Monoid: m}, elements)
}

// NewLazy builds a tree which supports range updates through u.
func NewLazy[T, U any](elements []T, m Monoid[T], u Updater[T, U]) (*Tree[T, U], error) {
	if u == nil {
		return nil, fmt.Errorf("%w: lazy tree requires an updater", ErrInvalidConfig)
	}
	return Build(Config[T, U]{Monoid: m, Updater: u}, elements)
}

// capacityFor returns the smallest power of two >= n, making sure that
// 2*capacity slots are still addressable.
func capacityFor(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyInput
	}
	shift := bits.Len(uint(n - 1))
	if shift >= bits.UintSize-2 {
		return 0, fmt.Errorf("%w: %d elements", ErrCapacityOverflow, n)
	}
	return 1 << shift, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T, U]) Config() Config[T, U] {
	return t.cfg
}

// Len returns the number of elements the tree was built from.
func (t *Tree[T, U]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Capacity returns the number of leaves, i.e. Len() rounded up to a power of two.
func (t *Tree[T, U]) Capacity() int {
	if t == nil {
		return 0
	}
	return t.capacity
}

// IsLazy reports whether the tree supports UpdateRange.
func (t *Tree[T, U]) IsLazy() bool {
	return t != nil && t.pending != nil
}

// Clone returns a deep copy of the tree. Pending updates are copied as they
// are, without draining them.
func (t *Tree[T, U]) Clone() *Tree[T, U] {
	if t == nil {
		return nil
	}
	cloned := *t
	cloned.nodes = append([]T(nil), t.nodes...)
	if t.pending != nil {
		cloned.pending = append([]U(nil), t.pending...)
	}
	return &cloned
}

// width returns the number of leaves below node.
func (t *Tree[T, U]) width(node int) int {
	return t.capacity >> (bits.Len(uint(node)) - 1)
}

// span returns the inclusive leaf interval [low, high] covered by node.
func (t *Tree[T, U]) span(node int) (low, high int) {
	depth := bits.Len(uint(node)) - 1
	w := t.capacity >> depth
	low = (node - 1<<depth) * w
	return low, low + w - 1
}

func (t *Tree[T, U]) isLeaf(node int) bool {
	return node >= t.capacity
}

func (t *Tree[T, U]) checkIndex(index int) error {
	if index < 0 || index >= t.n {
		return errIndex(index, t.n)
	}
	return nil
}

// checkRange validates a non-empty range [left, right].
func (t *Tree[T, U]) checkRange(left, right int) error {
	if err := t.checkIndex(left); err != nil {
		return err
	}
	return t.checkIndex(right)
}
