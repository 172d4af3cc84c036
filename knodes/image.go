package knodes

import (
	"errors"
	"fmt"
	"image"

	"github.com/birdayz/kframe/kgraph"
	"github.com/birdayz/kframe/kserde"
	"golang.org/x/image/draw"
)

// ErrInvalidSize is returned for non-positive image dimensions.
var ErrInvalidSize = errors.New("knodes: width and height must be positive")

// ImageSource emits a held image on every Update.
type ImageSource struct {
	*kgraph.Node[*kgraph.Inlets0, *kgraph.Outlets1[image.Image]]
	img image.Image
}

// NewImageSource returns a source holding img, which may be nil.
func NewImageSource(img image.Image, opts ...kgraph.Option) *ImageSource {
	return kgraph.Bind(&ImageSource{
		Node: kgraph.New(kgraph.NewInlets0(), kgraph.NewOutlets1[image.Image](), opts...),
		img:  img,
	})
}

func (n *ImageSource) Out0() *kgraph.Outlet[image.Image] {
	return n.Outlets().Out0()
}

// Update emits the held image. Nothing is emitted while no image is held.
func (n *ImageSource) Update() {
	if n.img != nil {
		n.Out0().Update(n.img)
	}
}

// SetImage replaces the held image and emits it.
func (n *ImageSource) SetImage(img image.Image) {
	n.img = img
	n.Update()
}

func (n *ImageSource) Image() image.Image {
	return n.img
}

// Load decodes the file at path and emits it. The held image is unchanged
// on error.
func (n *ImageSource) Load(path string) error {
	img, err := kserde.DecodeFile(path)
	if err != nil {
		return fmt.Errorf("knodes: load %s: %w", path, err)
	}
	n.SetImage(img)
	return nil
}

// Scale resamples every received image to a fixed size. Nil images are
// ignored.
type Scale struct {
	*kgraph.IONode[image.Image]

	width, height int
	interp        draw.Interpolator
	nodeOpts      []kgraph.Option
}

type ScaleOption func(*Scale)

// WithInterpolator picks the resampling kernel, draw.ApproxBiLinear by
// default.
var WithInterpolator = func(i draw.Interpolator) ScaleOption {
	return func(s *Scale) {
		s.interp = i
	}
}

// WithScaleNode passes node options through to the embedded node.
var WithScaleNode = func(opts ...kgraph.Option) ScaleOption {
	return func(s *Scale) {
		s.nodeOpts = append(s.nodeOpts, opts...)
	}
}

// NewScale returns a node resampling to width x height. It panics on
// non-positive sizes.
func NewScale(width, height int, opts ...ScaleOption) *Scale {
	s := &Scale{interp: draw.ApproxBiLinear}
	for _, opt := range opts {
		opt(s)
	}
	s.IONode = kgraph.NewIONode[image.Image](s.nodeOpts...)
	if err := s.Resize(width, height); err != nil {
		panic(err)
	}
	kgraph.Bind(s)
	s.In0().OnReceive(func(img image.Image) {
		if img != nil {
			s.Out0().Update(s.apply(img))
		}
	})
	return s
}

// Resize changes the output size for subsequent images.
func (s *Scale) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	s.width, s.height = width, height
	return nil
}

func (s *Scale) Size() (int, int) {
	return s.width, s.height
}

// Update rescales and re-emits the last received image.
func (s *Scale) Update() {
	if img, ok := s.In0().Last(); ok && img != nil {
		s.Out0().Update(s.apply(img))
	}
}

func (s *Scale) apply(src image.Image) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	s.interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Capture keeps the last received image.
type Capture struct {
	*kgraph.SinkNode[image.Image]

	img    image.Image
	frames int
}

func NewCapture(opts ...kgraph.Option) *Capture {
	c := kgraph.Bind(&Capture{SinkNode: kgraph.NewSinkNode[image.Image](nil, opts...)})
	c.In0().OnReceive(func(img image.Image) {
		c.img = img
		c.frames++
	})
	return c
}

// Image returns the last captured image, nil if none was captured since
// the last Clear.
func (c *Capture) Image() image.Image {
	return c.img
}

// Ok reports whether an image is held.
func (c *Capture) Ok() bool {
	return c.img != nil
}

// Clear drops the held image. The frame count is kept.
func (c *Capture) Clear() {
	c.img = nil
}

// Frames returns the number of images received.
func (c *Capture) Frames() int {
	return c.frames
}

var (
	_ kgraph.Updater               = (*ImageSource)(nil)
	_ kgraph.Updater               = (*Scale)(nil)
	_ kgraph.Receiver[image.Image] = (*Capture)(nil)
)
