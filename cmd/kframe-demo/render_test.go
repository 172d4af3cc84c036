package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/gogpu/gg"

	"github.com/birdayz/kframe/kgraph"
	"github.com/birdayz/kframe/knodes"
	"github.com/birdayz/kframe/kserde"
)

func testOptions(out string) renderOptions {
	return renderOptions{
		out:        out,
		frames:     3,
		width:      16,
		height:     8,
		format:     "png",
		fps:        1000,
		background: "#000000",
		blend:      "normal",
	}
}

func TestRender(t *testing.T) {
	t.Run("generated sources", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "frames")
		written, err := render(context.Background(), testOptions(out), slog.New(slog.DiscardHandler))
		assert.NoError(t, err)
		assert.Equal(t, 3, written)

		m, err := knodes.ReadManifest(out)
		assert.NoError(t, err)
		assert.Equal(t, []string{"frame-000001.png", "frame-000002.png", "frame-000003.png"}, m.Frames)

		img, err := kserde.DecodeFile(filepath.Join(out, "frame-000003.png"))
		assert.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())
	})

	t.Run("input files", func(t *testing.T) {
		dir := t.TempDir()
		src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
		data, err := kserde.BMP.Serializer(src)
		assert.NoError(t, err)
		in := filepath.Join(dir, "layer.bmp")
		assert.NoError(t, os.WriteFile(in, data, 0o644))

		opts := testOptions(filepath.Join(dir, "out"))
		opts.inputs = []string{in}
		opts.format = "tiff"
		written, err := render(context.Background(), opts, slog.New(slog.DiscardHandler))
		assert.NoError(t, err)
		assert.Equal(t, 3, written)

		_, err = os.Stat(filepath.Join(dir, "out", "frame-000001.tiff"))
		assert.NoError(t, err)
	})

	t.Run("invalid options", func(t *testing.T) {
		ctx := context.Background()
		log := slog.New(slog.DiscardHandler)

		opts := testOptions("")
		_, err := render(ctx, opts, log)
		assert.True(t, errors.Is(err, errNoOutput))

		opts = testOptions(t.TempDir())
		opts.format = "webp"
		_, err = render(ctx, opts, log)
		assert.True(t, errors.Is(err, kserde.ErrEncodeUnsupported))

		opts = testOptions(t.TempDir())
		opts.format = "gif"
		_, err = render(ctx, opts, log)
		assert.True(t, errors.Is(err, kserde.ErrUnknownFormat))

		opts = testOptions(t.TempDir())
		opts.blend = "dodge"
		_, err = render(ctx, opts, log)
		assert.Error(t, err)

		opts = testOptions(t.TempDir())
		opts.inputs = []string{filepath.Join(t.TempDir(), "missing.png")}
		_, err = render(ctx, opts, log)
		assert.Error(t, err)
	})
}

func TestBuildScene(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	s, err := buildScene(context.Background(), testOptions(t.TempDir()), log)
	assert.NoError(t, err)
	defer s.writer.Close()

	assert.Equal(t, 3, len(s.sources))
	assert.Equal(t, gg.Hex("#000000"), s.background.Get())

	// every generated source reaches the compositor, the writer and the capture
	for _, root := range s.roots[1:] {
		assert.Equal(t, 1, len(kgraph.Collect[*knodes.Compositor](root)))
		assert.Equal(t, 1, len(kgraph.Collect[*knodes.Writer](root)))
		assert.Equal(t, 1, len(kgraph.Collect[*knodes.Capture](root)))
	}
	assert.Contains(t, kgraph.Dump(s.roots[1]), "compositor")

	for _, src := range s.sources {
		src.Update()
	}
	assert.True(t, s.capture.Ok())
	assert.Equal(t, image.Rect(0, 0, 16, 8), s.capture.Image().Bounds())
}

func TestRootCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frames")
	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"render", "--out", out, "--frames", "2", "--width", "8", "--height", "8", "--fps", "500", "--format", "bmp"})

	assert.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, stdout.String(), "wrote 2 frames")

	m, err := knodes.ReadManifest(out)
	assert.NoError(t, err)
	assert.Equal(t, "bmp", m.Format)
	assert.Equal(t, 2, len(m.Frames))
}
