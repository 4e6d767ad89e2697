package segtree

import (
	"fmt"
	"math/bits"
)

// UpdateRange applies update u to every element in [left, right] (inclusive)
// in O(log capacity). The update is deferred for subtrees which are covered
// completely and is pushed down only when a later operation visits them.
//
// Trees built without an Updater return ErrUnsupported. An empty range
// (left > right) is a no-op. Bounds are checked before anything is modified.
func (t *Tree[T, U]) UpdateRange(left, right int, u U) error {
	if !t.IsLazy() {
		return fmt.Errorf("%w: range update on a tree without updater", ErrUnsupported)
	}
	if left > right {
		return nil
	}
	if err := t.checkRange(left, right); err != nil {
		tracer().Debugf("segtree: rejected range update [%d, %d]: %v", left, right, err)
		return err
	}
	t.updateRange(1, 0, t.capacity-1, left, right, u)
	return nil
}

func (t *Tree[T, U]) updateRange(node, low, high, left, right int, u U) {
	t.drain(node, high-low+1)
	if high < left || low > right {
		return
	}
	if left <= low && high <= right {
		// pending[node] is clear after drain; record u and let drain apply it
		// to this node and defer it for the children
		t.pending[node] = u
		t.drain(node, high-low+1)
		return
	}
	mid := (low + high) / 2
	t.updateRange(2*node, low, mid, left, right, u)
	t.updateRange(2*node+1, mid+1, high, left, right, u)
	t.nodes[node] = t.cfg.Monoid.Add(t.nodes[2*node], t.nodes[2*node+1])
}

// drain folds the pending update of node into its aggregate and hands it down
// to both children. width is the number of leaves below node.
//
// Every traversal calls drain on entry to a node, before reading nodes[node].
func (t *Tree[T, U]) drain(node, width int) {
	if t.pending == nil {
		return
	}
	upd := t.cfg.Updater
	u := t.pending[node]
	if upd.IsZero(u) {
		return
	}
	t.nodes[node] = upd.Apply(t.nodes[node], u, width)
	if !t.isLeaf(node) {
		t.pending[2*node] = upd.Compose(t.pending[2*node], u)
		t.pending[2*node+1] = upd.Compose(t.pending[2*node+1], u)
	}
	t.pending[node] = upd.Zero()
}

// drainPath drains every node on the path from the root down to leaf.
func (t *Tree[T, U]) drainPath(leaf int) {
	if t.pending == nil {
		return
	}
	assert(leaf >= t.capacity && leaf < 2*t.capacity, "drainPath called for inner node")
	depth := bits.Len(uint(leaf)) - 1
	for d := 0; d <= depth; d++ {
		t.drain(leaf>>(depth-d), t.capacity>>d)
	}
}

// pull recomputes an internal node from its children, settling pending
// updates of the children first.
func (t *Tree[T, U]) pull(node int) {
	w := t.width(node) / 2
	t.drain(2*node, w)
	t.drain(2*node+1, w)
	t.nodes[node] = t.cfg.Monoid.Add(t.nodes[2*node], t.nodes[2*node+1])
}

// effective returns the aggregate of node with its own pending update folded
// in, without modifying the tree.
func (t *Tree[T, U]) effective(node int) T {
	if t.pending == nil || t.cfg.Updater.IsZero(t.pending[node]) {
		return t.nodes[node]
	}
	return t.cfg.Updater.Apply(t.nodes[node], t.pending[node], t.width(node))
}
