package kgraph

import (
	"iter"
	"reflect"

	"github.com/birdayz/kframe/internal/connset"
	"github.com/birdayz/kframe/kid"
)

// Inlet receives values of type T and hands each of them to its observers.
//
// Inlets keep track of the outlets feeding them so a node can be asked who
// its producers are. Any number of outlets may feed one inlet; every value
// is delivered as-is, the last one received wins.
type Inlet[T any] struct {
	xlet

	observers *connset.Set[*observer[T]]
	obsIDs    kid.Counter

	sources *connset.Set[*Outlet[T]]

	last     T
	received bool
}

var _ Port = (*Inlet[any])(nil)

// NewInlet returns a free-standing inlet with an id from kid.Default.
func NewInlet[T any]() *Inlet[T] {
	in := newInlet[T]()
	in.assign(kid.Default())
	return in
}

func newInlet[T any]() *Inlet[T] {
	return &Inlet[T]{
		observers: connset.New[*observer[T]](),
		sources:   connset.New[*Outlet[T]](),
	}
}

// Receive records v as the last value and calls every observer with it, in
// registration order, before returning. A panicking observer unwinds through
// Receive; observers after it are not called.
func (in *Inlet[T]) Receive(v T) {
	in.last = v
	in.received = true
	for o := range in.observers.All() {
		o.fn(v)
	}
}

// OnReceive registers fn to be called for every received value. The
// returned Subscription stays valid regardless of connections.
func (in *Inlet[T]) OnReceive(fn func(T)) *Subscription {
	o := &observer[T]{id: in.obsIDs.Next(), fn: fn}
	in.observers.Insert(o)
	return &Subscription{cancel: func() bool {
		return in.observers.Erase(o)
	}}
}

// ObserverCount returns the number of registered observers.
func (in *Inlet[T]) ObserverCount() int {
	return in.observers.Len()
}

// Last returns the most recently received value, and false if nothing was
// received yet.
func (in *Inlet[T]) Last() (T, bool) {
	return in.last, in.received
}

// Disconnect removes every connection feeding this inlet, on both ends.
func (in *Inlet[T]) Disconnect() {
	for _, out := range in.sources.Slice() {
		out.Disconnect(in)
	}
}

func (in *Inlet[T]) IsConnected() bool {
	return !in.sources.Empty()
}

func (in *Inlet[T]) ConnectionCount() int {
	return in.sources.Len()
}

// Sources yields the outlets feeding this inlet, in connection order.
func (in *Inlet[T]) Sources() iter.Seq[*Outlet[T]] {
	return in.sources.All()
}

func (in *Inlet[T]) Direction() Direction {
	return DirectionIn
}

func (in *Inlet[T]) PayloadType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (in *Inlet[T]) Peers() iter.Seq[Port] {
	return func(yield func(Port) bool) {
		for out := range in.sources.All() {
			if !yield(out) {
				return
			}
		}
	}
}

func (in *Inlet[T]) detach() {
	in.Disconnect()
}

func (in *Inlet[T]) connect(out *Outlet[T]) bool {
	return in.sources.Insert(out)
}

func (in *Inlet[T]) disconnect(out *Outlet[T]) bool {
	return in.sources.Erase(out)
}

type observer[T any] struct {
	id kid.ID
	fn func(T)
}

func (o *observer[T]) ID() kid.ID {
	return o.id
}

// Subscription is the handle returned by Inlet.OnReceive.
type Subscription struct {
	cancel func() bool
}

// Cancel unregisters the observer. It reports whether the observer was still
// registered.
func (s *Subscription) Cancel() bool {
	return s.cancel()
}
