package kgraph

import (
	"iter"
	"log/slog"
	"reflect"

	"github.com/birdayz/kframe/internal/connset"
	"github.com/birdayz/kframe/kid"
)

// Outlet broadcasts values of type T to every connected Inlet.
type Outlet[T any] struct {
	xlet

	targets *connset.Set[*Inlet[T]]
}

var _ Port = (*Outlet[any])(nil)

// NewOutlet returns a free-standing outlet with an id from kid.Default.
func NewOutlet[T any]() *Outlet[T] {
	out := newOutlet[T]()
	out.assign(kid.Default())
	return out
}

func newOutlet[T any]() *Outlet[T] {
	return &Outlet[T]{
		targets: connset.New[*Inlet[T]](),
	}
}

// Update delivers v to every inlet connected when the call starts, in
// connection order. Delivery is depth first: each inlet's observers, and
// everything they push further downstream, complete before the next inlet
// receives v. Connections changed by an observer take effect on the next
// Update.
func (o *Outlet[T]) Update(v T) {
	for _, in := range o.targets.Slice() {
		in.Receive(v)
	}
}

// Connect links o to in on both ends. It returns false, and changes nothing,
// if the two were already connected or o already holds another inlet with
// in's id.
func (o *Outlet[T]) Connect(in *Inlet[T]) bool {
	if !o.targets.Insert(in) {
		return false
	}
	if !in.connect(o) {
		o.targets.Erase(in)
		return false
	}
	if debugEnabled() {
		logger().Debug("connected",
			slog.Any("outlet", o.ID()),
			slog.Any("inlet", in.ID()),
			slog.String("type", reflect.TypeFor[T]().String()))
	}
	return true
}

// Disconnect removes the link between o and in on both ends. It returns false
// if they were not connected.
func (o *Outlet[T]) Disconnect(in *Inlet[T]) bool {
	if !o.targets.Erase(in) {
		return false
	}
	in.disconnect(o)
	if debugEnabled() {
		logger().Debug("disconnected",
			slog.Any("outlet", o.ID()),
			slog.Any("inlet", in.ID()))
	}
	return true
}

// DisconnectAll removes every connection of o, on both ends.
func (o *Outlet[T]) DisconnectAll() {
	for _, in := range o.targets.Slice() {
		o.Disconnect(in)
	}
}

func (o *Outlet[T]) IsConnected() bool {
	return !o.targets.Empty()
}

func (o *Outlet[T]) ConnectionCount() int {
	return o.targets.Len()
}

// Connections yields the connected inlets in connection order.
func (o *Outlet[T]) Connections() iter.Seq[*Inlet[T]] {
	return o.targets.All()
}

func (o *Outlet[T]) Direction() Direction {
	return DirectionOut
}

func (o *Outlet[T]) PayloadType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (o *Outlet[T]) Peers() iter.Seq[Port] {
	return func(yield func(Port) bool) {
		for in := range o.targets.All() {
			if !yield(in) {
				return
			}
		}
	}
}

func (o *Outlet[T]) detach() {
	o.DisconnectAll()
}
