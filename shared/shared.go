/*
Package shared provides a segment tree which may be used from more than one
goroutine.

A segtree.Tree is not safe for concurrent use. shared.Tree serializes every
public call with a single exclusive lock, which is sufficient as no tree
operation blocks on I/O. Successful mutations are broadcast as Events to
subscribers, in the order they were applied. Broadcasting happens outside of
the tree lock: a slow subscriber holds back further mutations, but never
queries.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package shared

import (
	"context"
	"errors"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/segtree"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

// ErrClosed is returned when subscribing to a closed tree.
var ErrClosed = errors.New("shared: tree is closed")

// EventKind tells which operation changed a tree.
type EventKind int

const (
	PointUpdated EventKind = iota
	RangeUpdated
)

func (k EventKind) String() string {
	switch k {
	case PointUpdated:
		return "point-update"
	case RangeUpdated:
		return "range-update"
	}
	return "unknown"
}

// Event describes a successful mutation of the elements in [Left, Right].
// Seq numbers events of one tree consecutively, starting at 1.
type Event struct {
	Kind        EventKind
	Left, Right int
	Seq         uint64
}

// Tree is a segment tree guarded by a mutex.
type Tree[T, U any] struct {
	pub  sync.Mutex // orders mutations and their events; taken before mu
	mu   sync.Mutex
	tree *segtree.Tree[T, U]
	cast *caster.Caster // broadcaster for change events
	seq  uint64
}

// Wrap takes ownership of t. t must not be used directly afterwards.
func Wrap[T, U any](t *segtree.Tree[T, U]) *Tree[T, U] {
	return &Tree[T, U]{
		tree: t,
		cast: caster.New(nil),
	}
}

// Update sets the element at index to value.
func (s *Tree[T, U]) Update(index int, value T) error {
	s.pub.Lock()
	defer s.pub.Unlock()
	s.mu.Lock()
	if err := s.tree.Update(index, value); err != nil {
		s.mu.Unlock()
		return err
	}
	e := s.nextEvent(PointUpdated, index, index)
	s.mu.Unlock()
	s.publish(e)
	return nil
}

// UpdateRange applies u to every element in [left, right].
func (s *Tree[T, U]) UpdateRange(left, right int, u U) error {
	s.pub.Lock()
	defer s.pub.Unlock()
	s.mu.Lock()
	if err := s.tree.UpdateRange(left, right, u); err != nil {
		s.mu.Unlock()
		return err
	}
	if left > right {
		s.mu.Unlock()
		return nil
	}
	e := s.nextEvent(RangeUpdated, left, right)
	s.mu.Unlock()
	s.publish(e)
	return nil
}

// Query returns the aggregate of [left, right].
//
// Queries drain pending updates and therefore take the exclusive lock, too.
func (s *Tree[T, U]) Query(left, right int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Query(left, right)
}

// QueryPoint returns the element at index.
func (s *Tree[T, U]) QueryPoint(index int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.QueryPoint(index)
}

// Summary returns the aggregate over all elements.
func (s *Tree[T, U]) Summary() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Summary()
}

// Values returns a copy of the current elements.
func (s *Tree[T, U]) Values() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Values()
}

// Len returns the number of elements.
func (s *Tree[T, U]) Len() int {
	return s.tree.Len() // immutable after build
}

// Snapshot returns a private deep copy of the wrapped tree.
func (s *Tree[T, U]) Snapshot() *segtree.Tree[T, U] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Clone()
}

// Subscribe returns a channel receiving all subsequent change events. The
// channel is closed when ctx is done or the tree is closed. Mutations block
// while a subscriber's buffer of the given capacity is full, so subscribers
// have to keep up with the mutation rate. Subscribing to a closed tree
// returns ErrClosed.
func (s *Tree[T, U]) Subscribe(ctx context.Context, capacity uint) (<-chan Event, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.closed() {
		return nil, ErrClosed
	}
	raw, ok := s.cast.Sub(ctx, capacity)
	if !ok || s.closed() {
		return nil, ErrClosed
	}
	events := make(chan Event, capacity)
	go func() {
		defer close(events)
		for m := range raw {
			e, ok := m.(Event)
			if !ok {
				continue
			}
			select {
			case events <- e:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}

// Close ends broadcasting and closes all subscriber channels. The tree itself
// remains usable.
func (s *Tree[T, U]) Close() {
	s.cast.Close()
}

func (s *Tree[T, U]) closed() bool {
	select {
	case <-s.cast.Done():
		return true
	default:
		return false
	}
}

// nextEvent numbers an event. Callers hold mu.
func (s *Tree[T, U]) nextEvent(kind EventKind, left, right int) Event {
	s.seq++
	return Event{Kind: kind, Left: left, Right: right, Seq: s.seq}
}

// publish broadcasts e. Callers hold pub, but not mu.
func (s *Tree[T, U]) publish(e Event) {
	if !s.cast.Pub(e) {
		tracer().Debugf("shared: event %d dropped, broadcaster closed", e.Seq)
	}
}
