package kgraph

import (
	"github.com/birdayz/kframe/kid"
)

// AnyNode is a type-erased handle over a concrete node. Ports point back to
// their owner through it, which is how traversal gets from an inlet to the
// node embedding it without knowing that node's type.
type AnyNode struct {
	c concept
}

type concept interface {
	node() GenericNode
	dispatch(v Visitor) bool
}

type model[N GenericNode] struct {
	n N
}

func (m *model[N]) node() GenericNode {
	return m.n
}

func (m *model[N]) dispatch(v Visitor) bool {
	return dispatch(m.n, v)
}

func (a *AnyNode) ID() kid.ID {
	return a.c.node().ID()
}

func (a *AnyNode) Label() string {
	return a.c.node().Label()
}

func (a *AnyNode) SetLabel(label string) {
	a.c.node().SetLabel(label)
}

// Node returns the concrete node as a GenericNode. Type-assert it to get the
// concrete type back.
func (a *AnyNode) Node() GenericNode {
	return a.c.node()
}

func (a *AnyNode) String() string {
	return a.Label()
}

// Visit runs v on this node only. It reports whether v had a case for it.
func (a *AnyNode) Visit(v Visitor) bool {
	return a.c.dispatch(v)
}

// Accept runs v over this node and then, depth first, over every node
// downstream: for each outlet in declaration order, for each connected inlet
// in connection order, the inlet's owner. Nodes reached through several
// paths are visited once per path, and nodes v has no case for are skipped
// but still traversed. The graph below a must be acyclic.
func (a *AnyNode) Accept(v Visitor) {
	traverse(a, 0, func(n *AnyNode, _ int) {
		n.c.dispatch(v)
	})
}

func traverse(a *AnyNode, depth int, fn func(*AnyNode, int)) {
	fn(a, depth)
	a.c.node().EachOut(func(p Port) {
		for peer := range p.Peers() {
			if owner := peer.Owner(); owner != nil {
				traverse(owner, depth+1, fn)
			}
		}
	})
}
