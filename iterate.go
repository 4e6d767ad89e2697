package segtree

import "math/bits"

// ForEach walks the elements in index order, with all pending range updates
// applied.
//
// Iteration stops early if fn returns false.
func (t *Tree[T, U]) ForEach(fn func(index int, value T) bool) {
	if t == nil || fn == nil {
		return
	}
	t.forEachNode(1, 0, t.capacity-1, fn)
}

func (t *Tree[T, U]) forEachNode(node, low, high int, fn func(int, T) bool) bool {
	if low >= t.n {
		return true // padding only
	}
	t.drain(node, high-low+1)
	if low == high {
		return fn(low, t.nodes[node])
	}
	mid := (low + high) / 2
	if !t.forEachNode(2*node, low, mid, fn) {
		return false
	}
	return t.forEachNode(2*node+1, mid+1, high, fn)
}

// Values returns a copy of the current elements.
func (t *Tree[T, U]) Values() []T {
	out := make([]T, 0, t.Len())
	t.ForEach(func(_ int, value T) bool {
		out = append(out, value)
		return true
	})
	return out
}

// NodeView is a read-only snapshot of one slot of the tree arena, handed out
// for debugging and visualization.
type NodeView[T, U any] struct {
	Index      int  // 1-based arena index
	Depth      int  // 0 for the root
	Low, High  int  // inclusive interval of leaf positions
	Value      T    // stored aggregate, without Pending
	Pending    U    // deferred update, meaningful if HasPending
	HasPending bool
	Padding    bool // covers padding positions only
}

// IsLeaf reports whether the view is a leaf.
func (v NodeView[T, U]) IsLeaf() bool {
	return v.Low == v.High
}

// EachNode walks the arena in breadth-first order without draining pending
// updates. Iteration stops early if fn returns false.
func (t *Tree[T, U]) EachNode(fn func(NodeView[T, U]) bool) {
	if t == nil || fn == nil {
		return
	}
	for i := 1; i < len(t.nodes); i++ {
		low, high := t.span(i)
		v := NodeView[T, U]{
			Index:   i,
			Depth:   bits.Len(uint(i)) - 1,
			Low:     low,
			High:    high,
			Value:   t.nodes[i],
			Padding: low >= t.n,
		}
		if t.pending != nil {
			v.Pending = t.pending[i]
			v.HasPending = !t.cfg.Updater.IsZero(t.pending[i])
		}
		if !fn(v) {
			return
		}
	}
}
