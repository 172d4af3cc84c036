package kgraph

import (
	"log/slog"
	"reflect"

	"github.com/birdayz/kframe/kid"
)

// Option configures a Node at construction.
type Option func(*nodeConfig)

type nodeConfig struct {
	label string
}

// WithLabel sets the initial label. It is stored verbatim.
var WithLabel = func(label string) Option {
	return func(c *nodeConfig) {
		c.label = label
	}
}

// GenericNode is what every node looks like once its concrete type is
// forgotten. Types embedding a *Node (directly or through IONode,
// SourceNode, SinkNode) implement it.
type GenericNode interface {
	ID() kid.ID
	Label() string
	SetLabel(label string)

	EachIn(fn func(Port))
	EachInWithIndex(fn func(Port, int))
	EachOut(fn func(Port))
	EachOutWithIndex(fn func(Port, int))

	// Handle returns the type-erased handle the node is currently bound to.
	Handle() *AnyNode

	rebind(h *AnyNode)
}

// Node composes an inlet collection and an outlet collection with an id and
// a label. Concrete node types embed a *Node and call Bind on themselves so
// traversal sees the outer type.
type Node[I InletShape, O OutletShape] struct {
	id    kid.ID
	label string

	in  I
	out O

	self *AnyNode
}

var _ GenericNode = (*Node[*Inlets0, *Outlets0])(nil)

// New returns a node over the given collections. The node id is drawn from
// kid.Default first, then one id per port: inlets, then outlets, in
// declaration order.
func New[I InletShape, O OutletShape](in I, out O, opts ...Option) *Node[I, O] {
	cfg := nodeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	alloc := kid.Default()
	n := &Node[I, O]{
		id:  alloc.Next(),
		in:  in,
		out: out,
	}
	in.Each(func(p Port) { p.base().assign(alloc) })
	out.Each(func(p Port) { p.base().assign(alloc) })

	if cfg.label == "" {
		n.label = "node (" + n.id.String() + ")"
	} else {
		n.label = cfg.label
	}

	n.rebind(&AnyNode{c: &model[*Node[I, O]]{n: n}})
	return n
}

func (n *Node[I, O]) ID() kid.ID {
	return n.id
}

func (n *Node[I, O]) Label() string {
	return n.label
}

// SetLabel stores label followed by the node id in parentheses, so labels
// set after construction stay distinguishable.
func (n *Node[I, O]) SetLabel(label string) {
	n.label = label + " (" + n.id.String() + ")"
}

func (n *Node[I, O]) String() string {
	return n.label
}

// Inlets returns the inlet collection.
func (n *Node[I, O]) Inlets() I {
	return n.in
}

// Outlets returns the outlet collection.
func (n *Node[I, O]) Outlets() O {
	return n.out
}

func (n *Node[I, O]) EachIn(fn func(Port)) {
	n.in.Each(fn)
}

func (n *Node[I, O]) EachInWithIndex(fn func(Port, int)) {
	n.in.EachWithIndex(fn)
}

func (n *Node[I, O]) EachOut(fn func(Port)) {
	n.out.Each(fn)
}

func (n *Node[I, O]) EachOutWithIndex(fn func(Port, int)) {
	n.out.EachWithIndex(fn)
}

// Accept runs v over this node and everything downstream of it. See
// AnyNode.Accept.
func (n *Node[I, O]) Accept(v Visitor) {
	n.self.Accept(v)
}

func (n *Node[I, O]) Handle() *AnyNode {
	return n.self
}

// DisconnectAll removes every connection of every port of the node.
func (n *Node[I, O]) DisconnectAll() {
	n.in.Each(func(p Port) { p.detach() })
	n.out.Each(func(p Port) { p.detach() })
}

func (n *Node[I, O]) rebind(h *AnyNode) {
	n.self = h
	n.in.Each(func(p Port) { p.base().owner = h })
	n.out.Each(func(p Port) { p.base().owner = h })
}

// Bind makes self the node that traversal reports for every port it owns.
// Types embedding a node call it once, after construction:
//
//	type Blur struct {
//		*kgraph.IONode[image.Image]
//		radius float64
//	}
//
//	func NewBlur() *Blur {
//		return kgraph.Bind(&Blur{IONode: kgraph.NewIONode[image.Image]()})
//	}
func Bind[N GenericNode](self N) N {
	self.rebind(&AnyNode{c: &model[N]{n: self}})
	if debugEnabled() {
		logger().Debug("bound",
			slog.Any("node", self.ID()),
			slog.String("label", self.Label()),
			slog.String("type", reflect.TypeFor[N]().String()))
	}
	return self
}
