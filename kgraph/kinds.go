package kgraph

// Updater is implemented by nodes that can push a value on demand, once per
// frame.
type Updater interface {
	Update()
}

// IONode has exactly one inlet and one outlet carrying the same type.
type IONode[T any] struct {
	*Node[*Inlets1[T], *Outlets1[T]]
}

// NewIONode returns an IONode that does nothing on receive. Embedding types
// register their behavior with In0().OnReceive.
func NewIONode[T any](opts ...Option) *IONode[T] {
	return Bind(&IONode[T]{
		Node: New(NewInlets1[T](), NewOutlets1[T](), opts...),
	})
}

func (n *IONode[T]) In0() *Inlet[T] {
	return n.in.In0()
}

func (n *IONode[T]) Out0() *Outlet[T] {
	return n.out.Out0()
}

// Update pushes the last received value to the outlet. It does nothing if
// the inlet never received anything.
func (n *IONode[T]) Update() {
	if v, ok := n.In0().Last(); ok {
		n.Out0().Update(v)
	}
}

// SourceNode has no inlets and one outlet, fed by a producer function.
type SourceNode[T any] struct {
	*Node[*Inlets0, *Outlets1[T]]

	produce func() T
}

func NewSourceNode[T any](produce func() T, opts ...Option) *SourceNode[T] {
	return Bind(&SourceNode[T]{
		Node:    New(NewInlets0(), NewOutlets1[T](), opts...),
		produce: produce,
	})
}

func (n *SourceNode[T]) Out0() *Outlet[T] {
	return n.out.Out0()
}

// Update pushes one produced value.
func (n *SourceNode[T]) Update() {
	n.Out0().Update(n.produce())
}

// SinkNode has one inlet and no outlets.
type SinkNode[T any] struct {
	*Node[*Inlets1[T], *Outlets0]
}

// NewSinkNode returns a sink calling fn for every received value. fn may be
// nil when the embedding type registers its own observer.
func NewSinkNode[T any](fn func(T), opts ...Option) *SinkNode[T] {
	n := Bind(&SinkNode[T]{
		Node: New(NewInlets1[T](), NewOutlets0(), opts...),
	})
	if fn != nil {
		n.In0().OnReceive(fn)
	}
	return n
}

func (n *SinkNode[T]) In0() *Inlet[T] {
	return n.in.In0()
}

var (
	_ Updater = (*IONode[any])(nil)
	_ Updater = (*SourceNode[any])(nil)
)
