package knodes

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/birdayz/kframe/kgraph"
	"github.com/gogpu/gg"
)

// Layer controls how one compositor input is drawn.
type Layer struct {
	// X and Y place the layer's top-left corner on the canvas.
	X, Y float64
	// Opacity in [0, 1]. Layers with zero opacity are not drawn.
	Opacity float64
	Blend   gg.BlendMode
}

// DefaultLayer is an opaque layer at the origin, blended normally.
var DefaultLayer = Layer{Opacity: 1, Blend: gg.BlendNormal}

// Compositor draws a fixed number of image layers, in index order, over a
// background color. Each received layer is stored; receiving the last layer
// renders and emits the composite.
type Compositor struct {
	*kgraph.Node[*kgraph.UniformInlets[image.Image], *kgraph.Outlets1[image.Image]]

	width, height int
	background    gg.RGBA
	layers        []Layer
	images        []image.Image
	renders       int

	nodeOpts []kgraph.Option
	log      *slog.Logger
}

type CompositorOption func(*Compositor)

// WithLayer configures input i. Out of range indexes are ignored.
var WithLayer = func(i int, l Layer) CompositorOption {
	return func(c *Compositor) {
		if i >= 0 && i < len(c.layers) {
			c.layers[i] = l
		}
	}
}

var WithBackground = func(col gg.RGBA) CompositorOption {
	return func(c *Compositor) {
		c.background = col
	}
}

// WithCompositorNode passes node options (label, allocator) to the embedded
// node.
var WithCompositorNode = func(opts ...kgraph.Option) CompositorOption {
	return func(c *Compositor) {
		c.nodeOpts = append(c.nodeOpts, opts...)
	}
}

var WithCompositorLog = func(log *slog.Logger) CompositorOption {
	return func(c *Compositor) {
		c.log = log
	}
}

// NewCompositor returns a width x height compositor over n layers. It
// panics if the size is not positive or n < 1.
func NewCompositor(width, height, n int, opts ...CompositorOption) *Compositor {
	if width <= 0 || height <= 0 {
		panic(fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height))
	}
	if n < 1 {
		panic("knodes: compositor needs at least one layer")
	}

	c := &Compositor{
		width:      width,
		height:     height,
		background: gg.Transparent,
		layers:     make([]Layer, n),
		images:     make([]image.Image, n),
		log:        slog.New(slog.DiscardHandler),
	}
	for i := range c.layers {
		c.layers[i] = DefaultLayer
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Node = kgraph.New(kgraph.NewUniformInlets[image.Image](n), kgraph.NewOutlets1[image.Image](), c.nodeOpts...)
	kgraph.Bind(c)

	c.Inlets().EachInlet(func(in *kgraph.Inlet[image.Image], i int) {
		in.OnReceive(func(img image.Image) {
			c.images[i] = img
			if i == n-1 {
				c.Out0().Update(c.Render())
			}
		})
	})
	return c
}

// In returns the inlet of layer i.
func (c *Compositor) In(i int) *kgraph.Inlet[image.Image] {
	return c.Inlets().In(i)
}

// In0 is the bottom layer.
func (c *Compositor) In0() *kgraph.Inlet[image.Image] {
	return c.In(0)
}

func (c *Compositor) Out0() *kgraph.Outlet[image.Image] {
	return c.Outlets().Out0()
}

// SetBackground changes the color drawn below the layers, from the next
// render on.
func (c *Compositor) SetBackground(col gg.RGBA) {
	c.background = col
}

func (c *Compositor) Background() gg.RGBA {
	return c.background
}

// SetLayer reconfigures layer i. It panics if i is out of range.
func (c *Compositor) SetLayer(i int, l Layer) {
	c.layers[i] = l
}

// Renders returns how many composites were rendered.
func (c *Compositor) Renders() int {
	return c.renders
}

// Update renders with the layers received so far and emits the result.
func (c *Compositor) Update() {
	c.Out0().Update(c.Render())
}

// Render draws the background and every held layer into a new image.
// Layers not received yet are skipped.
func (c *Compositor) Render() image.Image {
	dc := gg.NewContext(c.width, c.height)
	defer func() {
		if err := dc.Close(); err != nil {
			c.log.Warn("closing render context", slog.Any("error", err))
		}
	}()

	dc.ClearWithColor(c.background)
	drawn := 0
	for i, img := range c.images {
		l := c.layers[i]
		if img == nil || l.Opacity <= 0 {
			continue
		}
		dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
			X:             l.X,
			Y:             l.Y,
			Interpolation: gg.InterpBilinear,
			Opacity:       min(l.Opacity, 1),
			BlendMode:     l.Blend,
		})
		drawn++
	}
	c.renders++
	c.log.Debug("rendered", slog.Int("layers", drawn), slog.Int("render", c.renders))
	return dc.Image()
}

var (
	_ kgraph.Updater               = (*Compositor)(nil)
	_ kgraph.Receiver[image.Image] = (*Compositor)(nil)
	_ kgraph.Emitter[image.Image]  = (*Compositor)(nil)
)
