/*
Package segtree implements a fixed-size segment tree over a slice of values,
parameterized by an associative operation with an explicit identity.

Segment Trees

A segment tree is built once from an input slice. Afterwards point updates,
range updates and range aggregation queries are interleaved with logarithmic
cost per operation instead of linear rescans.

The tree is stored as a flat arena of 2*capacity slots, where capacity is the
smallest power of two not below the element count. Node i has children 2i and
2i+1, node 1 is the root, and leaves occupy [capacity, 2*capacity). Positions
beyond the element count are padding and hold the identity value.

	t, err := segtree.New([]int{1, 2, 3, 4, 5, 6, 7}, monoids.Max[int]{Identity: math.MinInt})
	...
	m, err := t.Query(1, 4) // m == 5

Lazy Propagation

Trees built with an Updater defer range updates: an update covering a whole
subtree is applied to the subtree's root and recorded as pending for its
children. Every operation visiting a node drains its pending update first,
before trusting the stored aggregate. The Updater defines how an update
changes an aggregate over k elements, so that range-add on sums, range-add on
maxima, range-assign and range-xor are all well defined.

Concurrency

A Tree is not safe for concurrent use. Package shared provides a wrapper which
serializes calls and broadcasts change events.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package segtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is T for generic code, where T names a type parameter.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
