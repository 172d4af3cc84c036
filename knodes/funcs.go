package knodes

import (
	"github.com/birdayz/kframe/kgraph"
)

// Map outputs fn(v) for every received v.
type Map[In, Out any] struct {
	*kgraph.Node[*kgraph.Inlets1[In], *kgraph.Outlets1[Out]]
}

// NewMap creates a node that transforms values.
//
// Example:
//
//	area := knodes.NewMap(func(v gg.Vec2) float64 {
//	    return v.X * v.Y
//	})
func NewMap[In, Out any](fn func(In) Out, opts ...kgraph.Option) *Map[In, Out] {
	n := kgraph.Bind(&Map[In, Out]{
		Node: kgraph.New(kgraph.NewInlets1[In](), kgraph.NewOutlets1[Out](), opts...),
	})
	n.In0().OnReceive(func(v In) {
		n.Out0().Update(fn(v))
	})
	return n
}

func (n *Map[In, Out]) In0() *kgraph.Inlet[In] {
	return n.Inlets().In0()
}

func (n *Map[In, Out]) Out0() *kgraph.Outlet[Out] {
	return n.Outlets().Out0()
}

// Filter forwards only the values matching a predicate.
type Filter[T any] struct {
	*kgraph.IONode[T]
	dropped int

	accepted T
	ok       bool
}

// NewFilter creates a node that forwards values for which pred is true.
//
// Example:
//
//	opaque := knodes.NewFilter(func(c gg.RGBA) bool {
//	    return c.A == 1
//	})
func NewFilter[T any](pred func(T) bool, opts ...kgraph.Option) *Filter[T] {
	n := kgraph.Bind(&Filter[T]{IONode: kgraph.NewIONode[T](opts...)})
	n.In0().OnReceive(func(v T) {
		if !pred(v) {
			n.dropped++
			return
		}
		n.accepted, n.ok = v, true
		n.Out0().Update(v)
	})
	return n
}

// Update re-sends the last value that matched. Rejected values are never
// sent, even if they arrived later.
func (n *Filter[T]) Update() {
	if n.ok {
		n.Out0().Update(n.accepted)
	}
}

// Dropped returns how many values did not match.
func (n *Filter[T]) Dropped() int {
	return n.dropped
}

// ForEach is a sink invoking a function for every value. Unlike an
// observer registered on an inlet it is a node, so it shows up in
// traversals.
type ForEach[T any] struct {
	*kgraph.SinkNode[T]
}

func NewForEach[T any](fn func(T), opts ...kgraph.Option) *ForEach[T] {
	return kgraph.Bind(&ForEach[T]{SinkNode: kgraph.NewSinkNode(fn, opts...)})
}

var (
	_ kgraph.Receiver[int]   = (*Map[int, string])(nil)
	_ kgraph.Emitter[string] = (*Map[int, string])(nil)
	_ kgraph.Updater         = (*Filter[int])(nil)
	_ kgraph.Receiver[int]   = (*ForEach[int])(nil)
)
