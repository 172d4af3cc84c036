package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/birdayz/kframe"
	"github.com/birdayz/kframe/kgraph"
	"github.com/birdayz/kframe/knodes"
	"github.com/birdayz/kframe/kserde"
	"github.com/birdayz/kframe/pkg/log"
)

var errNoOutput = errors.New("an output directory must be provided")

type renderOptions struct {
	out        string
	frames     int
	width      int
	height     int
	format     string
	inputs     []string
	fps        float64
	background string
	blend      string
	verbose    bool
}

var blendModes = map[string]gg.BlendMode{
	"normal":   gg.BlendNormal,
	"multiply": gg.BlendMultiply,
	"screen":   gg.BlendScreen,
	"overlay":  gg.BlendOverlay,
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render frames to a directory",
		Long: `Builds a graph of image sources (decoded --input files, or generated orbiting
discs when none are given), scales every source to the output size, composites
them over a background color and writes each composite to --out.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			zl := log.New()
			if opts.verbose {
				zerolog.SetGlobalLevel(zerolog.Level(1 - 4))
			}
			verbosity := 0
			if opts.verbose {
				verbosity = 4
			}
			written, err := render(cmd.Context(), opts, log.NewSlog(zl, verbosity))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", written, opts.out)
			return nil
		},
	}

	f := renderCmd.Flags()
	f.StringVar(&opts.out, "out", "", "Directory the frames are written to (required)")
	f.IntVar(&opts.frames, "frames", 30, "Number of frames to render")
	f.IntVar(&opts.width, "width", 320, "Frame width in pixels")
	f.IntVar(&opts.height, "height", 180, "Frame height in pixels")
	f.StringVar(&opts.format, "format", "png", "Frame format: png, tiff or bmp")
	f.StringSliceVar(&opts.inputs, "input", nil, "Image files used as layers, bottom first")
	f.Float64Var(&opts.fps, "fps", 30, "Frames per second")
	f.StringVar(&opts.background, "background", "#202030", "Background color as hex")
	f.StringVar(&opts.blend, "blend", "normal", "Blend mode of the layers above the first: normal, multiply, screen or overlay")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log graph wiring and every frame")
	_ = renderCmd.MarkFlagRequired("out")

	return renderCmd
}

// scene is the graph built for a render.
type scene struct {
	background *knodes.Color
	sources    []kgraph.Updater
	roots      []kgraph.GenericNode
	compositor *knodes.Compositor
	writer     *knodes.Writer
	capture    *knodes.Capture
}

func buildScene(ctx context.Context, opts renderOptions, log *slog.Logger) (*scene, error) {
	if opts.out == "" {
		return nil, errNoOutput
	}
	format, err := kserde.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}
	if !format.Encodable() {
		return nil, fmt.Errorf("%w: %s", kserde.ErrEncodeUnsupported, format)
	}
	codec := kserde.MustImage(format)
	blend, ok := blendModes[strings.ToLower(opts.blend)]
	if !ok {
		return nil, fmt.Errorf("unknown blend mode %q", opts.blend)
	}

	layers := len(opts.inputs)
	if layers == 0 {
		layers = 2
	}

	s := &scene{}
	compOpts := []knodes.CompositorOption{
		knodes.WithCompositorNode(kgraph.WithLabel("compositor")),
		knodes.WithCompositorLog(log.WithGroup("compositor")),
	}
	for i := 1; i < layers; i++ {
		compOpts = append(compOpts, knodes.WithLayer(i, knodes.Layer{Opacity: 0.8, Blend: blend}))
	}
	s.compositor = knodes.NewCompositor(opts.width, opts.height, layers, compOpts...)

	s.background = knodes.NewColor(gg.Hex(opts.background), kgraph.WithLabel("background"))
	kgraph.Pipe[gg.RGBA](s.background, knodes.NewForEach(s.compositor.SetBackground, kgraph.WithLabel("set background")))
	s.sources = append(s.sources, s.background)
	s.roots = append(s.roots, s.background)

	for i := range layers {
		var src interface {
			kgraph.GenericNode
			kgraph.Updater
			Out0() *kgraph.Outlet[image.Image]
		}
		if len(opts.inputs) > 0 {
			is := knodes.NewImageSource(nil, kgraph.WithLabel(opts.inputs[i]))
			if err := is.Load(opts.inputs[i]); err != nil {
				return nil, err
			}
			src = is
		} else {
			src = orbit(i, max(opts.width/2, 1), max(opts.height/2, 1))
		}
		scale := knodes.NewScale(opts.width, opts.height,
			knodes.WithScaleNode(kgraph.WithLabel(fmt.Sprintf("scale %d", i))))
		kgraph.Pipe[image.Image](src, scale)
		kgraph.Connect(scale.Out0(), s.compositor.In(i))

		s.sources = append(s.sources, src)
		s.roots = append(s.roots, src)
	}

	sink, err := knodes.NewDirSink(opts.out, format)
	if err != nil {
		return nil, err
	}
	s.writer = knodes.NewWriter(ctx, sink,
		knodes.WithEncoder(codec.Serializer),
		knodes.WithWriterNode(kgraph.WithLabel("writer")),
		knodes.WithWriterLog(log.WithGroup("writer")))
	s.capture = knodes.NewCapture(kgraph.WithLabel("capture"))
	kgraph.Pipe[image.Image](s.compositor, s.writer)
	kgraph.Pipe[image.Image](s.compositor, s.capture)

	return s, nil
}

// orbit generates a disc circling the image center, one step per frame.
func orbit(i, w, h int) *kgraph.SourceNode[image.Image] {
	colors := []gg.RGBA{gg.Hex("#e94f37"), gg.Hex("#44bba4"), gg.Hex("#f6f7eb")}
	col := colors[i%len(colors)]
	frame := 0
	return kgraph.NewSourceNode(func() image.Image {
		frame++
		dc := gg.NewContext(w, h)
		defer dc.Close()

		angle := float64(frame)*0.2 + float64(i)*math.Pi
		center := gg.V2(float64(w)/2, float64(h)/2)
		pos := center.Add(gg.V2(float64(w)/4, 0).Rotate(angle))
		dc.SetColor(col.Color())
		dc.DrawCircle(pos.X, pos.Y, float64(min(w, h))/6)
		_ = dc.Fill()
		return dc.Image()
	}, kgraph.WithLabel(fmt.Sprintf("orbit %d", i)))
}

func render(ctx context.Context, opts renderOptions, log *slog.Logger) (int, error) {
	kgraph.SetLogger(log.WithGroup("graph"))
	defer kgraph.SetLogger(nil)

	s, err := buildScene(ctx, opts, log)
	if err != nil {
		return 0, err
	}
	for _, root := range s.roots {
		log.Debug("graph", slog.String("tree", kgraph.Dump(root)))
	}

	app, err := kframe.New(
		kframe.WithLog(log.WithGroup("app")),
		kframe.WithFrameRate(opts.fps),
		kframe.WithMaxFrames(opts.frames),
		kframe.WithGraphValidation())
	if err != nil {
		return 0, err
	}
	for _, src := range s.sources {
		app.AddSource(src)
	}
	app.AddCloser(s.writer)

	start := time.Now()
	runErr := app.Run(ctx)
	closeErr := app.Close()
	if err := errors.Join(runErr, closeErr); err != nil {
		return s.writer.Written(), err
	}
	log.Info("render finished",
		slog.Int("frames", app.Frame()),
		slog.Int("written", s.writer.Written()),
		slog.Int("renders", s.compositor.Renders()),
		slog.Duration("elapsed", time.Since(start)))
	return s.writer.Written(), nil
}
