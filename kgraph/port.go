package kgraph

import (
	"cmp"
	"iter"
	"reflect"

	"github.com/birdayz/kframe/kid"
)

// Direction tells inlets and outlets apart when they are handled as Ports.
type Direction int

const (
	DirectionIn Direction = iota
	DirectionOut
)

func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "in"
	case DirectionOut:
		return "out"
	default:
		return "unknown"
	}
}

// Port is an Inlet or an Outlet with its payload type erased. It is what
// port collections hand out when iterating, and what traversal walks over.
type Port interface {
	ID() kid.ID
	Direction() Direction
	PayloadType() reflect.Type

	// Owner returns the node the port belongs to, or nil for a free-standing
	// port.
	Owner() *AnyNode

	IsConnected() bool
	ConnectionCount() int

	// Peers yields the connected ports in connection order: the feeding
	// outlets for an inlet, the fed inlets for an outlet.
	Peers() iter.Seq[Port]

	base() *xlet
	detach()
}

// xlet is the identity shared by inlets and outlets.
type xlet struct {
	id    kid.ID
	owner *AnyNode
}

// ID returns the port's id. Ports created by a collection get their id when
// the collection is attached to a node; a port that is queried before that
// draws one from kid.Default.
func (x *xlet) ID() kid.ID {
	if x.id == 0 {
		x.id = kid.Next()
	}
	return x.id
}

func (x *xlet) Owner() *AnyNode {
	return x.owner
}

func (x *xlet) base() *xlet {
	return x
}

func (x *xlet) assign(alloc kid.Allocator) {
	if x.id == 0 {
		x.id = alloc.Next()
	}
}

// Compare orders ports by id.
func Compare(a, b Port) int {
	return cmp.Compare(a.ID(), b.ID())
}

// Less reports whether a orders before b.
func Less(a, b Port) bool {
	return a.ID() < b.ID()
}

// SamePort reports whether a and b are the same port.
func SamePort(a, b Port) bool {
	return a.ID() == b.ID()
}
