package knodes

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
	"github.com/birdayz/kframe/kgraph"
	"github.com/birdayz/kframe/kserde"
	"go.uber.org/mock/gomock"
)

func TestWriter(t *testing.T) {
	t.Run("writes frames in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sink := NewMockFrameSink(ctrl)
		gomock.InOrder(
			sink.EXPECT().WriteFrame(gomock.Any(), 1, gomock.Any()),
			sink.EXPECT().WriteFrame(gomock.Any(), 2, gomock.Any()),
			sink.EXPECT().WriteFrame(gomock.Any(), 3, gomock.Any()),
		)

		w := NewWriter(context.Background(), sink, WithQueueSize(1))
		src := NewImageSource(nil)
		kgraph.Pipe[image.Image](src, w)

		for i := 1; i <= 3; i++ {
			src.SetImage(solid(i, i, red))
		}
		assert.NoError(t, w.Close())
		assert.Equal(t, 3, w.Written())
	})

	t.Run("encoded frames reach the sink", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sink := NewMockFrameSink(ctrl)

		var got []byte
		sink.EXPECT().WriteFrame(gomock.Any(), 1, gomock.Any()).
			DoAndReturn(func(ctx context.Context, index int, data []byte) error {
				got = data
				return nil
			})

		w := NewWriter(context.Background(), sink, WithEncoder(kserde.BMP.Serializer))
		w.In0().Receive(solid(2, 3, green))
		assert.NoError(t, w.Close())

		img, err := kserde.BMP.Deserializer(got)
		assert.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 2, 3), img.Bounds())
	})

	t.Run("errors are collected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sink := NewMockFrameSink(ctrl)

		errDisk := errors.New("disk full")
		sink.EXPECT().WriteFrame(gomock.Any(), 1, gomock.Any()).Return(errDisk)
		sink.EXPECT().WriteFrame(gomock.Any(), 2, gomock.Any()).Return(nil)

		w := NewWriter(context.Background(), sink)
		w.In0().Receive(solid(1, 1, red))
		w.In0().Receive(solid(1, 1, red))

		err := w.Close()
		assert.Error(t, err)
		assert.True(t, errors.Is(err, errDisk))
		assert.Contains(t, err.Error(), "frame 1")
		assert.Equal(t, 1, w.Written())
	})

	t.Run("encode failures skip the sink", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sink := NewMockFrameSink(ctrl)

		w := NewWriter(context.Background(), sink, WithEncoder(kserde.MustImage(kserde.FormatWebP).Serializer))
		w.In0().Receive(solid(1, 1, red))

		err := w.Close()
		assert.True(t, errors.Is(err, kserde.ErrEncodeUnsupported))
		assert.Equal(t, 0, w.Written())
	})

	t.Run("frames after close are dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sink := NewMockFrameSink(ctrl)

		var buf bytes.Buffer
		w := NewWriter(context.Background(), sink,
			WithWriterLog(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))
		assert.NoError(t, w.Close())

		w.In0().Receive(solid(1, 1, red))
		w.In0().Receive(solid(1, 1, red))
		assert.Equal(t, 2, w.Dropped())
		assert.NoError(t, w.Close())
		assert.Contains(t, buf.String(), "frame dropped after close")
	})
}

func TestDirSink(t *testing.T) {
	t.Run("files and manifest", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		sink, err := NewDirSink(dir, kserde.FormatPNG)
		assert.NoError(t, err)

		w := NewWriter(context.Background(), sink, WithWriterNode(kgraph.WithLabel("writer")))
		assert.Equal(t, "writer", w.Label())
		for range 2 {
			w.In0().Receive(solid(2, 2, red))
		}
		assert.NoError(t, w.Close())

		for _, name := range []string{"frame-000001.png", "frame-000002.png"} {
			img, err := kserde.DecodeFile(filepath.Join(dir, name))
			assert.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
		}

		m, err := ReadManifest(dir)
		assert.NoError(t, err)
		assert.Equal(t, Manifest{Format: "png", Frames: []string{"frame-000001.png", "frame-000002.png"}}, m)
	})

	t.Run("cancelled context", func(t *testing.T) {
		sink, err := NewDirSink(t.TempDir(), kserde.FormatBMP)
		assert.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.True(t, errors.Is(sink.WriteFrame(ctx, 1, []byte{0}), context.Canceled))
		assert.Equal(t, "frame-000007.bmp", sink.FileName(7))
	})

	t.Run("unwritable directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		assert.NoError(t, os.WriteFile(file, nil, 0o644))

		_, err := NewDirSink(filepath.Join(file, "sub"), kserde.FormatPNG)
		assert.Error(t, err)
	})
}
