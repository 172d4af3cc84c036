package kgraph_test

import (
	"github.com/birdayz/kframe/kgraph"
)

// intIONode republishes every received int and records it.
type intIONode struct {
	*kgraph.IONode[int]
	log []int
}

func newIntIONode(opts ...kgraph.Option) *intIONode {
	n := &intIONode{IONode: kgraph.NewIONode[int](opts...)}
	n.In0().OnReceive(func(v int) {
		n.log = append(n.log, v)
		n.Out0().Update(v)
	})
	return kgraph.Bind(n)
}

// stringer turns ints into strings.
type stringer struct {
	*kgraph.Node[*kgraph.Inlets1[int], *kgraph.Outlets1[string]]
}

func newStringer(opts ...kgraph.Option) *stringer {
	n := &stringer{Node: kgraph.New(kgraph.NewInlets1[int](), kgraph.NewOutlets1[string](), opts...)}
	n.In0().OnReceive(func(v int) {
		s := ""
		for range v {
			s += "*"
		}
		n.Out0().Update(s)
	})
	return kgraph.Bind(n)
}

func (n *stringer) In0() *kgraph.Inlet[int] {
	return n.Inlets().In0()
}

func (n *stringer) Out0() *kgraph.Outlet[string] {
	return n.Outlets().Out0()
}

type labelVisitor struct {
	labels []string
}

func (v *labelVisitor) Visit(n *intIONode) {
	v.labels = append(v.labels, n.Label())
}

type genericVisitor struct {
	labels []string
}

func (v *genericVisitor) Visit(n kgraph.GenericNode) {
	v.labels = append(v.labels, n.Label())
}
