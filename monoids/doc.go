/*
Package monoids provides some pre-manufactured monoids and range updaters for
segment trees.

Monoids (Sum, Product, Max, Min, Xor, Or, And) aggregate element values.
Updaters (AddToSum, AddToExtremum, AssignSum, AssignExtremum, XorMask, Affine)
define lazy range updates on the aggregates of a matching monoid. Not every
combination is sound: an updater must distribute over the monoid it is paired
with, as documented for each updater.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package monoids

import "golang.org/x/exp/constraints"

// Number is the constraint for arithmetic element types.
type Number interface {
	constraints.Integer | constraints.Float
}
