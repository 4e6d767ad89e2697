package monoids

import "golang.org/x/exp/constraints"

// Sum aggregates by addition. It is a group.
type Sum[T Number] struct{}

// Zero returns 0.
func (Sum[T]) Zero() T { return 0 }

// Add returns left + right.
func (Sum[T]) Add(left, right T) T { return left + right }

// Sub returns s - y.
func (Sum[T]) Sub(s, y T) T { return s - y }

// Product aggregates by multiplication.
type Product[T Number] struct{}

// Zero returns 1.
func (Product[T]) Zero() T { return 1 }

// Add returns left * right.
func (Product[T]) Add(left, right T) T { return left * right }

// Max aggregates to the maximum. Identity must be a value not greater than
// any element, e.g. math.MinInt or math.Inf(-1).
type Max[T constraints.Ordered] struct {
	Identity T
}

// Zero returns the configured identity.
func (m Max[T]) Zero() T { return m.Identity }

// Add returns the larger of left and right.
func (Max[T]) Add(left, right T) T {
	if left < right {
		return right
	}
	return left
}

// Min aggregates to the minimum. Identity must be a value not less than any
// element, e.g. math.MaxInt or math.Inf(1).
type Min[T constraints.Ordered] struct {
	Identity T
}

// Zero returns the configured identity.
func (m Min[T]) Zero() T { return m.Identity }

// Add returns the smaller of left and right.
func (Min[T]) Add(left, right T) T {
	if right < left {
		return right
	}
	return left
}

// Xor aggregates by bitwise exclusive or. It is a group, every element being
// its own inverse.
type Xor[T constraints.Integer] struct{}

// Zero returns 0.
func (Xor[T]) Zero() T { return 0 }

// Add returns left ^ right.
func (Xor[T]) Add(left, right T) T { return left ^ right }

// Sub returns s ^ y.
func (Xor[T]) Sub(s, y T) T { return s ^ y }

// Or aggregates by bitwise or.
type Or[T constraints.Integer] struct{}

// Zero returns 0.
func (Or[T]) Zero() T { return 0 }

// Add returns left | right.
func (Or[T]) Add(left, right T) T { return left | right }

// And aggregates by bitwise and.
type And[T constraints.Integer] struct{}

// Zero returns a value with all bits set.
func (And[T]) Zero() T { return ^T(0) }

// Add returns left & right.
func (And[T]) Add(left, right T) T { return left & right }
