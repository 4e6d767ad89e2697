package segtree

import "fmt"

// Monoid defines how element values are aggregated up the tree.
//
// For values s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
//
// Commutativity is not required.
type Monoid[T any] interface {
	Zero() T
	Add(left, right T) T
}

// Group is a Monoid with an inverse. It enables point queries computed as the
// difference of two prefix aggregates.
type Group[T any] interface {
	Monoid[T]
	// Sub returns x with Add(y, x) == s, i.e. it removes the prefix y from s.
	Sub(s, y T) T
}

// Updater defines deferred range updates of type U on aggregates of type T.
//
// Apply must distribute over the monoid for every count k = k1 + k2:
//
//	Apply(Add(a, b), u, k) == Add(Apply(a, u, k1), Apply(b, u, k2))
//
// where a aggregates k1 and b aggregates k2 elements. Compose folds a newer
// update into an older one, so that applying the result equals applying older
// first and newer second.
type Updater[T, U any] interface {
	Zero() U
	IsZero(u U) bool
	Compose(older, newer U) U
	Apply(aggregate T, u U, count int) T
}

// NoUpdate is the update type of trees built without an Updater.
type NoUpdate struct{}

// Config configures a segment tree.
type Config[T, U any] struct {
	// Monoid aggregates element values up the tree.
	Monoid Monoid[T]
	// Updater enables lazy range updates. It is optional; a tree built
	// without an Updater rejects UpdateRange with ErrUnsupported.
	Updater Updater[T, U]
}

func (cfg Config[T, U]) normalized() Config[T, U] {
	return cfg
}

func (cfg Config[T, U]) validate() error {
	cfg = cfg.normalized()
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	return nil
}

// IsLazy reports whether the configuration enables range updates.
func (cfg Config[T, U]) IsLazy() bool {
	return cfg.Updater != nil
}
