// Package log builds the zerolog logger used by the kframe binaries and
// bridges it to log/slog for the libraries.
package log

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
}

// New returns a console logger on stdout, or a JSON logger on stderr when
// KFRAME_LOG_JSON is set.
func New() *zerolog.Logger {
	var output io.Writer
	if os.Getenv("KFRAME_LOG_JSON") != "" {
		output = os.Stderr
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02T15:04:05.999Z07:00"}
	}
	return NewTo(output)
}

// NewTo returns a logger writing to w.
func NewTo(w io.Writer) *zerolog.Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()
	return &logger
}

// NewSlog exposes zl to log/slog through logr. Records below slog's info
// level map to logr verbosity levels (debug is V(4)); verbosity sets the
// highest V-level that is kept, 0 keeping info and above only.
func NewSlog(zl *zerolog.Logger, verbosity int) *slog.Logger {
	zerologr.SetMaxV(verbosity)
	l := zl.Level(zerolog.Level(1 - verbosity))
	return slog.New(logr.ToSlogHandler(zerologr.New(&l)))
}
