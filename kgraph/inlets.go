package kgraph

// Inlets0 is the empty inlets collection.
type Inlets0 struct {
	portList
}

// NewInlets0 returns the empty collection, for source nodes.
func NewInlets0() *Inlets0 {
	return &Inlets0{}
}

func (*Inlets0) inletShape() {}

// Inlets1 holds one inlet.
type Inlets1[A any] struct {
	portList
	p0 *Inlet[A]
}

func NewInlets1[A any]() *Inlets1[A] {
	s := &Inlets1[A]{
		p0: newInlet[A](),
	}
	s.ports = []Port{s.p0}
	return s
}

func (*Inlets1[A]) inletShape() {}

func (s *Inlets1[A]) In0() *Inlet[A] {
	return s.p0
}

// Inlets2 holds 2 inlets of independent payload types.
type Inlets2[A, B any] struct {
	portList
	p0 *Inlet[A]
	p1 *Inlet[B]
}

func NewInlets2[A, B any]() *Inlets2[A, B] {
	s := &Inlets2[A, B]{
		p0: newInlet[A](),
		p1: newInlet[B](),
	}
	s.ports = []Port{s.p0, s.p1}
	return s
}

func (*Inlets2[A, B]) inletShape() {}

func (s *Inlets2[A, B]) In0() *Inlet[A] {
	return s.p0
}

func (s *Inlets2[A, B]) In1() *Inlet[B] {
	return s.p1
}

// Inlets3 holds 3 inlets of independent payload types.
type Inlets3[A, B, C any] struct {
	portList
	p0 *Inlet[A]
	p1 *Inlet[B]
	p2 *Inlet[C]
}

func NewInlets3[A, B, C any]() *Inlets3[A, B, C] {
	s := &Inlets3[A, B, C]{
		p0: newInlet[A](),
		p1: newInlet[B](),
		p2: newInlet[C](),
	}
	s.ports = []Port{s.p0, s.p1, s.p2}
	return s
}

func (*Inlets3[A, B, C]) inletShape() {}

func (s *Inlets3[A, B, C]) In0() *Inlet[A] {
	return s.p0
}

func (s *Inlets3[A, B, C]) In1() *Inlet[B] {
	return s.p1
}

func (s *Inlets3[A, B, C]) In2() *Inlet[C] {
	return s.p2
}

// Inlets4 holds 4 inlets of independent payload types.
type Inlets4[A, B, C, D any] struct {
	portList
	p0 *Inlet[A]
	p1 *Inlet[B]
	p2 *Inlet[C]
	p3 *Inlet[D]
}

func NewInlets4[A, B, C, D any]() *Inlets4[A, B, C, D] {
	s := &Inlets4[A, B, C, D]{
		p0: newInlet[A](),
		p1: newInlet[B](),
		p2: newInlet[C](),
		p3: newInlet[D](),
	}
	s.ports = []Port{s.p0, s.p1, s.p2, s.p3}
	return s
}

func (*Inlets4[A, B, C, D]) inletShape() {}

func (s *Inlets4[A, B, C, D]) In0() *Inlet[A] {
	return s.p0
}

func (s *Inlets4[A, B, C, D]) In1() *Inlet[B] {
	return s.p1
}

func (s *Inlets4[A, B, C, D]) In2() *Inlet[C] {
	return s.p2
}

func (s *Inlets4[A, B, C, D]) In3() *Inlet[D] {
	return s.p3
}

// Inlets5 holds 5 inlets of independent payload types.
type Inlets5[A, B, C, D, E any] struct {
	portList
	p0 *Inlet[A]
	p1 *Inlet[B]
	p2 *Inlet[C]
	p3 *Inlet[D]
	p4 *Inlet[E]
}

func NewInlets5[A, B, C, D, E any]() *Inlets5[A, B, C, D, E] {
	s := &Inlets5[A, B, C, D, E]{
		p0: newInlet[A](),
		p1: newInlet[B](),
		p2: newInlet[C](),
		p3: newInlet[D](),
		p4: newInlet[E](),
	}
	s.ports = []Port{s.p0, s.p1, s.p2, s.p3, s.p4}
	return s
}

func (*Inlets5[A, B, C, D, E]) inletShape() {}

func (s *Inlets5[A, B, C, D, E]) In0() *Inlet[A] {
	return s.p0
}

func (s *Inlets5[A, B, C, D, E]) In1() *Inlet[B] {
	return s.p1
}

func (s *Inlets5[A, B, C, D, E]) In2() *Inlet[C] {
	return s.p2
}

func (s *Inlets5[A, B, C, D, E]) In3() *Inlet[D] {
	return s.p3
}

func (s *Inlets5[A, B, C, D, E]) In4() *Inlet[E] {
	return s.p4
}

var (
	_ InletShape = (*Inlets0)(nil)
	_ InletShape = (*Inlets1[any])(nil)
	_ InletShape = (*Inlets2[any, any])(nil)
	_ InletShape = (*Inlets3[any, any, any])(nil)
	_ InletShape = (*Inlets4[any, any, any, any])(nil)
	_ InletShape = (*Inlets5[any, any, any, any, any])(nil)
	_ InletShape = (*UniformInlets[any])(nil)
)

// UniformInlets holds a fixed number of inlets that all carry T, e.g. the
// layers of a compositor.
type UniformInlets[T any] struct {
	portList
	p []*Inlet[T]
}

// NewUniformInlets returns a collection of n inlets. It panics if n is negative.
func NewUniformInlets[T any](n int) *UniformInlets[T] {
	if n < 0 {
		panic("kgraph: negative inlet count")
	}
	s := &UniformInlets[T]{p: make([]*Inlet[T], n)}
	s.ports = make([]Port, n)
	for i := range n {
		s.p[i] = newInlet[T]()
		s.ports[i] = s.p[i]
	}
	return s
}

func (*UniformInlets[T]) inletShape() {}

// In returns the inlet at position i. It panics if i is out of range.
func (s *UniformInlets[T]) In(i int) *Inlet[T] {
	return s.p[i]
}

func (s *UniformInlets[T]) EachInlet(fn func(*Inlet[T], int)) {
	for i, p := range s.p {
		fn(p, i)
	}
}
