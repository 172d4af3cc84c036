package kframe

import (
	"log/slog"
	"time"
)

// Option is a function that configures an App
type Option func(*App)

// WithLog sets the logger for the application
var WithLog = func(log *slog.Logger) Option {
	return func(s *App) {
		s.log = log
	}
}

// WithFrameInterval sets the time between two ticks in Run
var WithFrameInterval = func(interval time.Duration) Option {
	return func(s *App) {
		s.frameInterval = interval
	}
}

// WithFrameRate sets the frame interval from frames per second
var WithFrameRate = func(fps float64) Option {
	return func(s *App) {
		if fps > 0 {
			s.frameInterval = time.Duration(float64(time.Second) / fps)
		} else {
			s.frameInterval = 0
		}
	}
}

// WithMaxFrames makes Run return after n frames. Zero means no limit.
var WithMaxFrames = func(n int) Option {
	return func(s *App) {
		s.maxFrames = n
	}
}

// WithGraphValidation makes Run check the graphs below the sources with
// kgraph.Validate before the first tick and refuse to start on a cycle.
var WithGraphValidation = func() Option {
	return func(s *App) {
		s.validateGraph = true
	}
}

// NullWriter is a writer that discards all data
type NullWriter struct{}

func (NullWriter) Write(p []byte) (int, error) { return len(p), nil }

// NullLogger creates a logger that discards all output
func NullLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(NullWriter{}, nil))
}
