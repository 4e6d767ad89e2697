package segtree

// Update sets the element at index to value and restores the aggregates of
// all ancestors.
//
// On lazy trees, pending updates on the path from the root to the leaf are
// pushed down before the leaf is overwritten, so a deferred range update can
// neither clobber the new value later nor be lost for the leaf's siblings.
func (t *Tree[T, U]) Update(index int, value T) error {
	if err := t.checkIndex(index); err != nil {
		tracer().Debugf("segtree: rejected update: %v", err)
		return err
	}
	leaf := t.capacity + index
	t.drainPath(leaf)
	t.nodes[leaf] = value
	for i := leaf / 2; i >= 1; i /= 2 {
		t.pull(i)
	}
	return nil
}
