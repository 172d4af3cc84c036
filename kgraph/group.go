package kgraph

import (
	"iter"
)

// Group is an ordered collection of nodes of one type, for driving and
// wiring them together.
type Group[N any] struct {
	nodes []N
}

func NewGroup[N any](nodes ...N) *Group[N] {
	return &Group[N]{nodes: nodes}
}

func (g *Group[N]) Add(n N) {
	g.nodes = append(g.nodes, n)
}

func (g *Group[N]) Len() int {
	return len(g.nodes)
}

// At returns the i-th member. It panics if i is out of range.
func (g *Group[N]) At(i int) N {
	return g.nodes[i]
}

func (g *Group[N]) All() iter.Seq2[int, N] {
	return func(yield func(int, N) bool) {
		for i, n := range g.nodes {
			if !yield(i, n) {
				return
			}
		}
	}
}

// UpdateAll calls Update on every member that is an Updater, in order.
func (g *Group[N]) UpdateAll() {
	for _, n := range g.nodes {
		if u, ok := any(n).(Updater); ok {
			u.Update()
		}
	}
}

// ZipConnect connects output 0 of a[i] to input 0 of b[i] for every i up to
// the shorter length. It returns the number of new connections.
func ZipConnect[T any, A Emitter[T], B Receiver[T]](a *Group[A], b *Group[B]) int {
	made := 0
	for i := range min(a.Len(), b.Len()) {
		if Connect(a.At(i).Out0(), b.At(i).In0()) {
			made++
		}
	}
	return made
}

// Broadcast connects output 0 of every member of g to input 0 of dst. It
// returns the number of new connections.
func Broadcast[T any, A Emitter[T]](g *Group[A], dst Receiver[T]) int {
	made := 0
	for _, n := range g.nodes {
		if Connect(n.Out0(), dst.In0()) {
			made++
		}
	}
	return made
}
