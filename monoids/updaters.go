package monoids

import "golang.org/x/exp/constraints"

// AddToSum adds a delta to every element of a range. Pair it with Sum.
type AddToSum[T Number] struct{}

func (AddToSum[T]) Zero() T                  { return 0 }
func (AddToSum[T]) IsZero(u T) bool          { return u == 0 }
func (AddToSum[T]) Compose(older, newer T) T { return older + newer }

// Apply adds count times delta to a sum over count elements.
func (AddToSum[T]) Apply(aggregate T, delta T, count int) T {
	return aggregate + delta*T(count)
}

// AddToExtremum adds a delta to every element of a range. Pair it with Max or
// Min: shifting all elements shifts their extremum by the same amount.
type AddToExtremum[T Number] struct{}

func (AddToExtremum[T]) Zero() T                  { return 0 }
func (AddToExtremum[T]) IsZero(u T) bool          { return u == 0 }
func (AddToExtremum[T]) Compose(older, newer T) T { return older + newer }

// Apply adds delta to the extremum, independent of count.
func (AddToExtremum[T]) Apply(aggregate T, delta T, _ int) T {
	return aggregate + delta
}

// Assignment is a range-assign update. The zero value assigns nothing.
type Assignment[T any] struct {
	Value T
	Set   bool
}

// Assign creates an assignment of v.
func Assign[T any](v T) Assignment[T] {
	return Assignment[T]{Value: v, Set: true}
}

func composeAssignments[T any](older, newer Assignment[T]) Assignment[T] {
	if newer.Set {
		return newer
	}
	return older
}

// AssignSum sets every element of a range to a value. Pair it with Sum.
type AssignSum[T Number] struct{}

func (AssignSum[T]) Zero() Assignment[T]         { return Assignment[T]{} }
func (AssignSum[T]) IsZero(u Assignment[T]) bool { return !u.Set }
func (AssignSum[T]) Compose(older, newer Assignment[T]) Assignment[T] {
	return composeAssignments(older, newer)
}

// Apply replaces a sum over count elements by count times the assigned value.
func (AssignSum[T]) Apply(aggregate T, u Assignment[T], count int) T {
	if !u.Set {
		return aggregate
	}
	return u.Value * T(count)
}

// AssignExtremum sets every element of a range to a value. Pair it with an
// idempotent monoid such as Max, Min, Or or And, where the aggregate of equal
// elements is the element itself.
type AssignExtremum[T any] struct{}

func (AssignExtremum[T]) Zero() Assignment[T]         { return Assignment[T]{} }
func (AssignExtremum[T]) IsZero(u Assignment[T]) bool { return !u.Set }
func (AssignExtremum[T]) Compose(older, newer Assignment[T]) Assignment[T] {
	return composeAssignments(older, newer)
}

// Apply replaces the aggregate by the assigned value.
func (AssignExtremum[T]) Apply(aggregate T, u Assignment[T], _ int) T {
	if !u.Set {
		return aggregate
	}
	return u.Value
}

// XorMask flips the bits of a mask in every element of a range. Pair it with
// Xor: the mask survives in the aggregate iff the range has odd length.
type XorMask[T constraints.Integer] struct{}

func (XorMask[T]) Zero() T                  { return 0 }
func (XorMask[T]) IsZero(u T) bool          { return u == 0 }
func (XorMask[T]) Compose(older, newer T) T { return older ^ newer }

// Apply xors mask into the aggregate if count is odd.
func (XorMask[T]) Apply(aggregate T, mask T, count int) T {
	if count%2 == 1 {
		return aggregate ^ mask
	}
	return aggregate
}

// Linear is the update x ↦ Mul*x + Add.
type Linear[T Number] struct {
	Mul, Add T
}

// Affine applies linear maps x ↦ Mul*x + Add to every element of a range.
// Pair it with Sum.
type Affine[T Number] struct{}

// Zero returns the identity map.
func (Affine[T]) Zero() Linear[T] { return Linear[T]{Mul: 1} }

func (Affine[T]) IsZero(u Linear[T]) bool { return u.Mul == 1 && u.Add == 0 }

// Compose returns the map applying older first, then newer.
func (Affine[T]) Compose(older, newer Linear[T]) Linear[T] {
	return Linear[T]{
		Mul: newer.Mul * older.Mul,
		Add: newer.Mul*older.Add + newer.Add,
	}
}

// Apply maps a sum over count elements.
func (Affine[T]) Apply(aggregate T, u Linear[T], count int) T {
	return u.Mul*aggregate + u.Add*T(count)
}
