// Package connset implements the insertion-ordered, duplicate-free set that
// ports use to track their peers.
package connset

import (
	"container/list"
	"iter"

	"github.com/birdayz/kframe/kid"
)

// Keyed is anything with an identity. Members are indexed by ID; a value
// only counts as a member if it is the one stored under its id.
type Keyed interface {
	comparable
	ID() kid.ID
}

// Set is an insertion-ordered set of Keyed values. Insert, Erase and Contains
// are O(1); iteration is O(n) in insertion order.
//
// Set is NOT safe for concurrent use.
type Set[T Keyed] struct {
	index map[kid.ID]*list.Element
	order *list.List
}

// New returns an empty Set.
func New[T Keyed]() *Set[T] {
	return &Set[T]{
		index: make(map[kid.ID]*list.Element),
		order: list.New(),
	}
}

// Insert adds v if no member with the same id exists and reports whether it
// was added.
func (s *Set[T]) Insert(v T) bool {
	id := v.ID()
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = s.order.PushBack(v)
	return true
}

// Erase removes v and reports whether it was a member. A different value
// stored under the same id is left alone.
func (s *Set[T]) Erase(v T) bool {
	id := v.ID()
	e, ok := s.index[id]
	if !ok || e.Value.(T) != v {
		return false
	}
	delete(s.index, id)
	s.order.Remove(e)
	return true
}

func (s *Set[T]) Contains(v T) bool {
	e, ok := s.index[v.ID()]
	return ok && e.Value.(T) == v
}

func (s *Set[T]) Clear() {
	clear(s.index)
	s.order.Init()
}

func (s *Set[T]) Len() int {
	return len(s.index)
}

func (s *Set[T]) Empty() bool {
	return len(s.index) == 0
}

// All yields members in insertion order. The current member may be erased
// while iterating; erasing members that have not been yielded yet ends the
// iteration early.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := s.order.Front(); e != nil; {
			next := e.Next()
			if !yield(e.Value.(T)) {
				return
			}
			e = next
		}
	}
}

// Slice returns a snapshot of the members in insertion order.
func (s *Set[T]) Slice() []T {
	out := make([]T, 0, len(s.index))
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}
