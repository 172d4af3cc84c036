package knodes

import (
	"github.com/birdayz/kframe/kgraph"
	"github.com/gogpu/gg"
)

// Value holds a value of type T. A received value replaces it and is
// republished; Update pushes the held value.
type Value[T any] struct {
	*kgraph.IONode[T]
	v T
}

func NewValue[T any](initial T, opts ...kgraph.Option) *Value[T] {
	n := kgraph.Bind(&Value[T]{IONode: kgraph.NewIONode[T](opts...), v: initial})
	n.In0().OnReceive(func(v T) {
		n.v = v
		n.Out0().Update(v)
	})
	return n
}

// Set replaces the held value without pushing it.
func (n *Value[T]) Set(v T) {
	n.v = v
}

func (n *Value[T]) Get() T {
	return n.v
}

func (n *Value[T]) Update() {
	n.Out0().Update(n.v)
}

// Vec2 holds a gg.Vec2. Port 0 carries the whole vector, ports 1 and 2 its
// X and Y components. Receiving on any inlet updates the vector and
// republishes it on outlet 0 together with the changed component(s).
type Vec2 struct {
	*kgraph.Node[*kgraph.Inlets3[gg.Vec2, float64, float64], *kgraph.Outlets3[gg.Vec2, float64, float64]]
	v gg.Vec2
}

func NewVec2(initial gg.Vec2, opts ...kgraph.Option) *Vec2 {
	n := kgraph.Bind(&Vec2{
		Node: kgraph.New(
			kgraph.NewInlets3[gg.Vec2, float64, float64](),
			kgraph.NewOutlets3[gg.Vec2, float64, float64](),
			opts...),
		v: initial,
	})
	in := n.Inlets()
	in.In0().OnReceive(func(v gg.Vec2) {
		n.v = v
		n.Update()
	})
	in.In1().OnReceive(func(x float64) {
		n.v.X = x
		n.Out0().Update(n.v)
		n.Outlets().Out1().Update(x)
	})
	in.In2().OnReceive(func(y float64) {
		n.v.Y = y
		n.Out0().Update(n.v)
		n.Outlets().Out2().Update(y)
	})
	return n
}

func (n *Vec2) In0() *kgraph.Inlet[gg.Vec2]   { return n.Inlets().In0() }
func (n *Vec2) InX() *kgraph.Inlet[float64]   { return n.Inlets().In1() }
func (n *Vec2) InY() *kgraph.Inlet[float64]   { return n.Inlets().In2() }
func (n *Vec2) Out0() *kgraph.Outlet[gg.Vec2] { return n.Outlets().Out0() }
func (n *Vec2) OutX() *kgraph.Outlet[float64] { return n.Outlets().Out1() }
func (n *Vec2) OutY() *kgraph.Outlet[float64] { return n.Outlets().Out2() }

func (n *Vec2) Set(v gg.Vec2) {
	n.v = v
}

func (n *Vec2) Get() gg.Vec2 {
	return n.v
}

// Update pushes the vector on outlet 0, then each component.
func (n *Vec2) Update() {
	n.Out0().Update(n.v)
	n.OutX().Update(n.v.X)
	n.OutY().Update(n.v.Y)
}

// Color holds a gg.RGBA. Port 0 carries the whole color, ports 1 to 4 the
// R, G, B and A components, with the same republishing rules as Vec2.
type Color struct {
	*kgraph.Node[*kgraph.Inlets5[gg.RGBA, float64, float64, float64, float64], *kgraph.Outlets5[gg.RGBA, float64, float64, float64, float64]]
	c gg.RGBA
}

func NewColor(initial gg.RGBA, opts ...kgraph.Option) *Color {
	n := kgraph.Bind(&Color{
		Node: kgraph.New(
			kgraph.NewInlets5[gg.RGBA, float64, float64, float64, float64](),
			kgraph.NewOutlets5[gg.RGBA, float64, float64, float64, float64](),
			opts...),
		c: initial,
	})
	in, out := n.Inlets(), n.Outlets()
	in.In0().OnReceive(func(c gg.RGBA) {
		n.c = c
		n.Update()
	})
	component := func(dst *float64, o *kgraph.Outlet[float64]) func(float64) {
		return func(v float64) {
			*dst = v
			n.Out0().Update(n.c)
			o.Update(v)
		}
	}
	in.In1().OnReceive(component(&n.c.R, out.Out1()))
	in.In2().OnReceive(component(&n.c.G, out.Out2()))
	in.In3().OnReceive(component(&n.c.B, out.Out3()))
	in.In4().OnReceive(component(&n.c.A, out.Out4()))
	return n
}

func (n *Color) In0() *kgraph.Inlet[gg.RGBA]   { return n.Inlets().In0() }
func (n *Color) InR() *kgraph.Inlet[float64]   { return n.Inlets().In1() }
func (n *Color) InG() *kgraph.Inlet[float64]   { return n.Inlets().In2() }
func (n *Color) InB() *kgraph.Inlet[float64]   { return n.Inlets().In3() }
func (n *Color) InA() *kgraph.Inlet[float64]   { return n.Inlets().In4() }
func (n *Color) Out0() *kgraph.Outlet[gg.RGBA] { return n.Outlets().Out0() }
func (n *Color) OutR() *kgraph.Outlet[float64] { return n.Outlets().Out1() }
func (n *Color) OutG() *kgraph.Outlet[float64] { return n.Outlets().Out2() }
func (n *Color) OutB() *kgraph.Outlet[float64] { return n.Outlets().Out3() }
func (n *Color) OutA() *kgraph.Outlet[float64] { return n.Outlets().Out4() }

func (n *Color) Set(c gg.RGBA) {
	n.c = c
}

func (n *Color) Get() gg.RGBA {
	return n.c
}

// Update pushes the color on outlet 0, then each component.
func (n *Color) Update() {
	n.Out0().Update(n.c)
	n.OutR().Update(n.c.R)
	n.OutG().Update(n.c.G)
	n.OutB().Update(n.c.B)
	n.OutA().Update(n.c.A)
}

var (
	_ kgraph.Updater = (*Value[int])(nil)
	_ kgraph.Updater = (*Vec2)(nil)
	_ kgraph.Updater = (*Color)(nil)
)
