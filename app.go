// Package kframe drives kgraph node graphs frame by frame: every tick
// updates the registered sources once, and closing the app closes the
// registered sinks.
package kframe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/birdayz/kframe/kgraph"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidFrameInterval is returned by New for a non-positive interval.
	ErrInvalidFrameInterval = errors.New("kframe: frame interval must be positive")

	// ErrInvalidMaxFrames is returned by New for a negative frame limit.
	ErrInvalidMaxFrames = errors.New("kframe: max frames must not be negative")

	// ErrClosed is returned by Run after Close.
	ErrClosed = errors.New("kframe: app closed")
)

type App struct {
	log           *slog.Logger
	frameInterval time.Duration
	maxFrames     int
	validateGraph bool

	// mu serializes ticks; graphs are not safe for concurrent use.
	mu      sync.Mutex
	sources []kgraph.Updater
	closers []io.Closer
	frame   int
	closed  bool
	cancel  context.CancelFunc
	eg      *errgroup.Group
}

// New creates a frame driver. Without options it ticks at 30 frames per
// second until stopped.
func New(opts ...Option) (*App, error) {
	a := &App{
		log:           NullLogger(),
		frameInterval: time.Second / 30,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.frameInterval <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFrameInterval, a.frameInterval)
	}
	if a.maxFrames < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxFrames, a.maxFrames)
	}
	return a, nil
}

// MustNew creates a new frame driver, panicking on configuration errors.
// Prefer New() for production code to handle errors gracefully.
func MustNew(opts ...Option) *App {
	app, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return app
}

// AddSource registers u to be updated on every tick, after the sources
// registered before it.
func (a *App) AddSource(u kgraph.Updater) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sources = append(a.sources, u)
}

// AddCloser registers c to be closed by Close, after the closers registered
// before it.
func (a *App) AddCloser(c io.Closer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closers = append(a.closers, c)
}

// Tick updates every source once, which pushes one frame through the graph,
// and returns the number of the frame, starting at 1.
func (a *App) Tick() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, s := range a.sources {
		s.Update()
	}
	a.frame++
	return a.frame
}

// Frame returns the number of ticks so far.
func (a *App) Frame() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frame
}

// Run ticks once immediately and then once per frame interval. It returns
// nil once the frame limit is reached or Close is called, and the context
// error if ctx ends first. With WithGraphValidation, graphs reachable from
// the sources are validated first.
func (a *App) Run(ctx context.Context) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return ErrClosed
	}
	if a.validateGraph {
		if err := a.validate(); err != nil {
			a.mu.Unlock()
			return err
		}
	}
	runCtx, cancel := context.WithCancel(ctx)
	grp, runCtx := errgroup.WithContext(runCtx)
	a.cancel = cancel
	a.eg = grp
	a.mu.Unlock()
	defer cancel()

	log := a.log.WithGroup("run")
	grp.Go(func() error {
		ticker := time.NewTicker(a.frameInterval)
		defer ticker.Stop()

		start := time.Now()
		for {
			frame := a.Tick()
			if a.maxFrames > 0 && frame >= a.maxFrames {
				log.Info("frame limit reached", slog.Int("frames", frame), slog.Duration("elapsed", time.Since(start)))
				return nil
			}
			select {
			case <-runCtx.Done():
				if err := ctx.Err(); err != nil {
					return err
				}
				log.Info("stopped", slog.Int("frames", frame))
				return nil
			case <-ticker.C:
			}
		}
	})
	return grp.Wait()
}

// validate rejects cyclic graphs below the sources, which would make a tick
// recurse forever. Sources that are not nodes are not checked.
func (a *App) validate() error {
	var roots []kgraph.GenericNode
	for _, s := range a.sources {
		if n, ok := s.(kgraph.GenericNode); ok {
			roots = append(roots, n)
		}
	}
	if err := kgraph.Validate(roots...); err != nil {
		return fmt.Errorf("kframe: invalid graph: %w", err)
	}
	if a.log.Enabled(context.Background(), slog.LevelDebug) {
		order, _ := kgraph.Reachable(roots...)
		a.log.Debug("graph validated", slog.Int("sources", len(a.sources)), slog.Int("nodes", len(order)))
	}
	return nil
}

// Close stops Run, waits for it to return and closes every registered
// closer. It returns the closers' errors combined.
func (a *App) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	cancel, eg := a.cancel, a.eg
	closers := a.closers
	a.mu.Unlock()

	if cancel != nil {
		cancel()
		_ = eg.Wait()
	}

	var err error
	for _, c := range closers {
		err = multierr.Append(err, c.Close())
	}
	if err != nil {
		a.log.Error("closing app", slog.Any("error", err))
	}
	return err
}
