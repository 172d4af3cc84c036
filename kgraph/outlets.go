package kgraph

// Outlets0 is the empty outlets collection.
type Outlets0 struct {
	portList
}

// NewOutlets0 returns the empty collection, for sink nodes.
func NewOutlets0() *Outlets0 {
	return &Outlets0{}
}

func (*Outlets0) outletShape() {}

// Outlets1 holds one outlet.
type Outlets1[A any] struct {
	portList
	p0 *Outlet[A]
}

func NewOutlets1[A any]() *Outlets1[A] {
	s := &Outlets1[A]{
		p0: newOutlet[A](),
	}
	s.ports = []Port{s.p0}
	return s
}

func (*Outlets1[A]) outletShape() {}

func (s *Outlets1[A]) Out0() *Outlet[A] {
	return s.p0
}

// Outlets2 holds 2 outlets of independent payload types.
type Outlets2[A, B any] struct {
	portList
	p0 *Outlet[A]
	p1 *Outlet[B]
}

func NewOutlets2[A, B any]() *Outlets2[A, B] {
	s := &Outlets2[A, B]{
		p0: newOutlet[A](),
		p1: newOutlet[B](),
	}
	s.ports = []Port{s.p0, s.p1}
	return s
}

func (*Outlets2[A, B]) outletShape() {}

func (s *Outlets2[A, B]) Out0() *Outlet[A] {
	return s.p0
}

func (s *Outlets2[A, B]) Out1() *Outlet[B] {
	return s.p1
}

// Outlets3 holds 3 outlets of independent payload types.
type Outlets3[A, B, C any] struct {
	portList
	p0 *Outlet[A]
	p1 *Outlet[B]
	p2 *Outlet[C]
}

func NewOutlets3[A, B, C any]() *Outlets3[A, B, C] {
	s := &Outlets3[A, B, C]{
		p0: newOutlet[A](),
		p1: newOutlet[B](),
		p2: newOutlet[C](),
	}
	s.ports = []Port{s.p0, s.p1, s.p2}
	return s
}

func (*Outlets3[A, B, C]) outletShape() {}

func (s *Outlets3[A, B, C]) Out0() *Outlet[A] {
	return s.p0
}

func (s *Outlets3[A, B, C]) Out1() *Outlet[B] {
	return s.p1
}

func (s *Outlets3[A, B, C]) Out2() *Outlet[C] {
	return s.p2
}

// Outlets4 holds 4 outlets of independent payload types.
type Outlets4[A, B, C, D any] struct {
	portList
	p0 *Outlet[A]
	p1 *Outlet[B]
	p2 *Outlet[C]
	p3 *Outlet[D]
}

func NewOutlets4[A, B, C, D any]() *Outlets4[A, B, C, D] {
	s := &Outlets4[A, B, C, D]{
		p0: newOutlet[A](),
		p1: newOutlet[B](),
		p2: newOutlet[C](),
		p3: newOutlet[D](),
	}
	s.ports = []Port{s.p0, s.p1, s.p2, s.p3}
	return s
}

func (*Outlets4[A, B, C, D]) outletShape() {}

func (s *Outlets4[A, B, C, D]) Out0() *Outlet[A] {
	return s.p0
}

func (s *Outlets4[A, B, C, D]) Out1() *Outlet[B] {
	return s.p1
}

func (s *Outlets4[A, B, C, D]) Out2() *Outlet[C] {
	return s.p2
}

func (s *Outlets4[A, B, C, D]) Out3() *Outlet[D] {
	return s.p3
}

// Outlets5 holds 5 outlets of independent payload types.
type Outlets5[A, B, C, D, E any] struct {
	portList
	p0 *Outlet[A]
	p1 *Outlet[B]
	p2 *Outlet[C]
	p3 *Outlet[D]
	p4 *Outlet[E]
}

func NewOutlets5[A, B, C, D, E any]() *Outlets5[A, B, C, D, E] {
	s := &Outlets5[A, B, C, D, E]{
		p0: newOutlet[A](),
		p1: newOutlet[B](),
		p2: newOutlet[C](),
		p3: newOutlet[D](),
		p4: newOutlet[E](),
	}
	s.ports = []Port{s.p0, s.p1, s.p2, s.p3, s.p4}
	return s
}

func (*Outlets5[A, B, C, D, E]) outletShape() {}

func (s *Outlets5[A, B, C, D, E]) Out0() *Outlet[A] {
	return s.p0
}

func (s *Outlets5[A, B, C, D, E]) Out1() *Outlet[B] {
	return s.p1
}

func (s *Outlets5[A, B, C, D, E]) Out2() *Outlet[C] {
	return s.p2
}

func (s *Outlets5[A, B, C, D, E]) Out3() *Outlet[D] {
	return s.p3
}

func (s *Outlets5[A, B, C, D, E]) Out4() *Outlet[E] {
	return s.p4
}

var (
	_ OutletShape = (*Outlets0)(nil)
	_ OutletShape = (*Outlets1[any])(nil)
	_ OutletShape = (*Outlets2[any, any])(nil)
	_ OutletShape = (*Outlets3[any, any, any])(nil)
	_ OutletShape = (*Outlets4[any, any, any, any])(nil)
	_ OutletShape = (*Outlets5[any, any, any, any, any])(nil)
	_ OutletShape = (*UniformOutlets[any])(nil)
)

// UniformOutlets holds a fixed number of outlets that all carry T.
type UniformOutlets[T any] struct {
	portList
	p []*Outlet[T]
}

// NewUniformOutlets returns a collection of n outlets. It panics if n is negative.
func NewUniformOutlets[T any](n int) *UniformOutlets[T] {
	if n < 0 {
		panic("kgraph: negative outlet count")
	}
	s := &UniformOutlets[T]{p: make([]*Outlet[T], n)}
	s.ports = make([]Port, n)
	for i := range n {
		s.p[i] = newOutlet[T]()
		s.ports[i] = s.p[i]
	}
	return s
}

func (*UniformOutlets[T]) outletShape() {}

// Out returns the outlet at position i. It panics if i is out of range.
func (s *UniformOutlets[T]) Out(i int) *Outlet[T] {
	return s.p[i]
}

func (s *UniformOutlets[T]) EachOutlet(fn func(*Outlet[T], int)) {
	for i, p := range s.p {
		fn(p, i)
	}
}
