package knodes

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/birdayz/kframe/kgraph"
	"github.com/birdayz/kframe/kserde"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -destination=mock_knodes_test.go -package=knodes . FrameSink

// FrameSink stores encoded frames. Frames are written one at a time, in
// increasing index order, starting at 1.
type FrameSink interface {
	WriteFrame(ctx context.Context, index int, data []byte) error
}

// Writer is a sink that encodes and stores frames on a background goroutine.
// Receiving a frame only queues it; once the queue is full, receiving
// blocks until the goroutine catches up. Frames must not be modified after
// they were pushed.
type Writer struct {
	*kgraph.SinkNode[image.Image]

	sink     FrameSink
	encode   kserde.Serializer[image.Image]
	queueLen int
	nodeOpts []kgraph.Option
	log      *slog.Logger

	mu     sync.Mutex
	queue  chan frame
	closed bool
	index  int
	eg     *errgroup.Group

	closeOnce sync.Once
	err       error

	written atomic.Int64
	dropped atomic.Int64
}

type frame struct {
	index int
	img   image.Image
}

type WriterOption func(*Writer)

// WithEncoder sets the frame encoder, kserde.PNG by default.
var WithEncoder = func(enc kserde.Serializer[image.Image]) WriterOption {
	return func(w *Writer) {
		w.encode = enc
	}
}

// WithQueueSize sets how many frames may wait for encoding. Default 8.
var WithQueueSize = func(n int) WriterOption {
	return func(w *Writer) {
		w.queueLen = n
	}
}

var WithWriterNode = func(opts ...kgraph.Option) WriterOption {
	return func(w *Writer) {
		w.nodeOpts = append(w.nodeOpts, opts...)
	}
}

var WithWriterLog = func(log *slog.Logger) WriterOption {
	return func(w *Writer) {
		w.log = log
	}
}

// NewWriter starts the background goroutine. ctx is handed to the sink for
// every write; cancelling it does not stop the writer, Close does.
func NewWriter(ctx context.Context, sink FrameSink, opts ...WriterOption) *Writer {
	w := &Writer{
		sink:     sink,
		encode:   kserde.PNG.Serializer,
		queueLen: 8,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.SinkNode = kgraph.NewSinkNode[image.Image](nil, w.nodeOpts...)
	kgraph.Bind(w)

	w.queue = make(chan frame, max(w.queueLen, 0))
	w.eg = &errgroup.Group{}
	w.eg.Go(func() error {
		return w.run(ctx)
	})

	w.In0().OnReceive(w.enqueue)
	return w
}

func (w *Writer) enqueue(img image.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		w.dropped.Add(1)
		w.log.Debug("frame dropped after close")
		return
	}
	w.index++
	w.queue <- frame{index: w.index, img: img}
}

func (w *Writer) run(ctx context.Context) error {
	var errs *multierror.Error
	for f := range w.queue {
		data, err := w.encode(f.img)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("frame %d: %w", f.index, err))
			continue
		}
		if err := w.sink.WriteFrame(ctx, f.index, data); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("frame %d: %w", f.index, err))
			continue
		}
		w.written.Add(1)
		w.log.Debug("frame written", slog.Int("frame", f.index), slog.Int("bytes", len(data)))
	}
	return errs.ErrorOrNil()
}

// Close stops accepting frames, waits until every queued frame is written
// and closes the sink if it is an io.Closer. It returns every write error.
// Later calls return the same result.
func (w *Writer) Close() error {
	w.closeOnce.Do(func() {
		w.err = w.close()
	})
	return w.err
}

func (w *Writer) close() error {
	w.mu.Lock()
	w.closed = true
	close(w.queue)
	w.mu.Unlock()

	err := w.eg.Wait()
	if c, ok := w.sink.(io.Closer); ok {
		if cerr := c.Close(); cerr != nil {
			err = multierror.Append(err, fmt.Errorf("closing sink: %w", cerr))
		}
	}
	w.log.Info("writer closed",
		slog.Int64("written", w.written.Load()),
		slog.Int64("dropped", w.dropped.Load()))
	return err
}

// Written returns the number of frames stored successfully so far.
func (w *Writer) Written() int {
	return int(w.written.Load())
}

// Dropped returns the number of frames received after Close.
func (w *Writer) Dropped() int {
	return int(w.dropped.Load())
}

// DirSink writes each frame to its own file in a directory, named
// frame-000001.png and so on, and a manifest.json listing them on Close.
type DirSink struct {
	dir    string
	format kserde.Format

	mu    sync.Mutex
	files []string
}

// Manifest is the content of manifest.json.
type Manifest struct {
	Format string   `json:"format"`
	Frames []string `json:"frames"`
}

// NewDirSink creates dir if needed.
func NewDirSink(dir string, format kserde.Format) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("knodes: create frame dir: %w", err)
	}
	return &DirSink{dir: dir, format: format}, nil
}

// FileName returns the file name of frame index.
func (s *DirSink) FileName(index int) string {
	return fmt.Sprintf("frame-%06d%s", index, s.format.Ext())
}

func (s *DirSink) WriteFrame(ctx context.Context, index int, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := s.FileName(index)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("knodes: write frame: %w", err)
	}
	s.mu.Lock()
	s.files = append(s.files, name)
	s.mu.Unlock()
	return nil
}

// Close writes the manifest.
func (s *DirSink) Close() error {
	s.mu.Lock()
	m := Manifest{Format: s.format.String(), Frames: append([]string{}, s.files...)}
	s.mu.Unlock()

	data, err := kserde.JSON[Manifest]().Serializer(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, "manifest.json"), data, 0o644); err != nil {
		return fmt.Errorf("knodes: write manifest: %w", err)
	}
	return nil
}

// ReadManifest reads the manifest a DirSink wrote to dir.
func ReadManifest(dir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		return Manifest{}, fmt.Errorf("knodes: read manifest: %w", err)
	}
	return kserde.JSON[Manifest]().Deserializer(data)
}

var (
	_ FrameSink = (*DirSink)(nil)
	_ io.Closer = (*DirSink)(nil)
	_ io.Closer = (*Writer)(nil)
)
