package kgraph

// Shape is a fixed collection of ports. Arity and the payload type at each
// position never change after construction.
type Shape interface {
	// Len returns the number of ports.
	Len() int
	// Each calls fn for every port in declaration order.
	Each(fn func(Port))
	// EachWithIndex is Each with the 0-based position.
	EachWithIndex(fn func(Port, int))
}

// InletShape is a Shape made of inlets.
type InletShape interface {
	Shape
	inletShape()
}

// OutletShape is a Shape made of outlets.
type OutletShape interface {
	Shape
	outletShape()
}

type portList struct {
	ports []Port
}

func (l *portList) Len() int {
	return len(l.ports)
}

func (l *portList) Each(fn func(Port)) {
	for _, p := range l.ports {
		fn(p)
	}
}

func (l *portList) EachWithIndex(fn func(Port, int)) {
	for i, p := range l.ports {
		fn(p, i)
	}
}

// InletOf returns the first inlet of s carrying T.
func InletOf[T any](s InletShape) (*Inlet[T], bool) {
	return portOf[*Inlet[T]](s)
}

// OutletOf returns the first outlet of s carrying T.
func OutletOf[T any](s OutletShape) (*Outlet[T], bool) {
	return portOf[*Outlet[T]](s)
}

func portOf[P Port](s Shape) (P, bool) {
	var (
		found P
		ok    bool
	)
	s.Each(func(p Port) {
		if ok {
			return
		}
		found, ok = p.(P)
	})
	return found, ok
}
