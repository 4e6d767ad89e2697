package segtree

import "fmt"

// Query returns the aggregate of all elements in [left, right] (inclusive).
//
// An empty range (left > right) yields the monoid's identity. Otherwise both
// bounds must lie in [0, Len()); they are never clamped.
func (t *Tree[T, U]) Query(left, right int) (T, error) {
	if left > right {
		return t.cfg.Monoid.Zero(), nil
	}
	if err := t.checkRange(left, right); err != nil {
		var zero T
		return zero, err
	}
	return t.query(1, 0, t.capacity-1, left, right), nil
}

func (t *Tree[T, U]) query(node, low, high, left, right int) T {
	t.drain(node, high-low+1)
	if left <= low && high <= right {
		return t.nodes[node]
	}
	if high < left || low > right {
		return t.cfg.Monoid.Zero()
	}
	mid := (low + high) / 2
	return t.cfg.Monoid.Add(
		t.query(2*node, low, mid, left, right),
		t.query(2*node+1, mid+1, high, left, right),
	)
}

// QueryPoint returns the current value of the element at index, with all
// range updates applied. It works for every monoid.
func (t *Tree[T, U]) QueryPoint(index int) (T, error) {
	if err := t.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	leaf := t.capacity + index
	t.drainPath(leaf)
	return t.nodes[leaf], nil
}

// QueryPointByDifference computes the element at index as the difference of
// two prefix aggregates, Query(0, index) minus Query(0, index-1).
//
// This is meaningful only if the monoid has an inverse. Trees whose monoid
// does not implement Group return ErrUnsupported.
func (t *Tree[T, U]) QueryPointByDifference(index int) (T, error) {
	var zero T
	g, ok := t.cfg.Monoid.(Group[T])
	if !ok {
		return zero, fmt.Errorf("%w: monoid %T has no inverse", ErrUnsupported, t.cfg.Monoid)
	}
	if err := t.checkIndex(index); err != nil {
		return zero, err
	}
	s, err := t.Query(0, index)
	if err != nil {
		return zero, err
	}
	p, err := t.Query(0, index-1)
	if err != nil {
		return zero, err
	}
	return g.Sub(s, p), nil
}

// Summary returns the aggregate over all elements.
func (t *Tree[T, U]) Summary() T {
	t.drain(1, t.capacity)
	return t.nodes[1]
}

// MaxRight finds the largest r in [left, Len()] such that pred holds for the
// aggregate of [left, r-1]. pred must hold for the identity and is expected to
// be monotone: once false for a prefix, false for every longer one.
//
// MaxRight is a binary search on the tree and runs in O(log capacity).
func (t *Tree[T, U]) MaxRight(left int, pred func(T) bool) (int, error) {
	if pred == nil {
		return 0, fmt.Errorf("%w: predicate is required", ErrInvalidArgument)
	}
	if left < 0 || left > t.n {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfBounds, left, t.n)
	}
	acc := t.cfg.Monoid.Zero()
	if !pred(acc) {
		return 0, fmt.Errorf("%w: predicate does not hold for the identity", ErrInvalidArgument)
	}
	if left == t.n {
		return t.n, nil
	}
	r := t.maxRight(1, 0, t.capacity-1, left, pred, &acc)
	if r < 0 || r > t.n {
		r = t.n
	}
	return r, nil
}

// maxRight returns the first position at which pred fails, or -1 if it holds
// for the whole of [max(low, left), high]. acc accumulates the aggregate of
// everything accepted so far.
func (t *Tree[T, U]) maxRight(node, low, high, left int, pred func(T) bool, acc *T) int {
	t.drain(node, high-low+1)
	if high < left {
		return -1
	}
	if left <= low {
		cand := t.cfg.Monoid.Add(*acc, t.nodes[node])
		if pred(cand) {
			*acc = cand
			return -1
		}
		if low == high {
			return low
		}
	}
	mid := (low + high) / 2
	if r := t.maxRight(2*node, low, mid, left, pred, acc); r >= 0 {
		return r
	}
	return t.maxRight(2*node+1, mid+1, high, left, pred, acc)
}
