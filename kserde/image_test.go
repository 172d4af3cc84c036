package kserde

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := range 3 {
		for x := range 4 {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 80), B: 200, A: 255})
		}
	}
	return img
}

func assertSamePixels(t *testing.T, want, got image.Image) {
	t.Helper()
	assert.Equal(t, want.Bounds(), got.Bounds())
	b := want.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			wr, wg, wb, wa := want.At(x, y).RGBA()
			gr, gg, gb, ga := got.At(x, y).RGBA()
			assert.Equal(t, [4]uint32{wr, wg, wb, wa}, [4]uint32{gr, gg, gb, ga})
		}
	}
}

func TestImageCodecs(t *testing.T) {
	for _, f := range []Format{FormatPNG, FormatTIFF, FormatBMP} {
		t.Run(f.String(), func(t *testing.T) {
			codec, err := Image(f)
			assert.NoError(t, err)
			assert.True(t, f.Encodable())

			src := testImage()
			data, err := codec.Serializer(src)
			assert.NoError(t, err)

			img, err := codec.Deserializer(data)
			assert.NoError(t, err)
			assertSamePixels(t, src, img)
		})
	}

	t.Run("webp is decode only", func(t *testing.T) {
		assert.False(t, FormatWebP.Encodable())
		codec := MustImage(FormatWebP)
		_, err := codec.Serializer(testImage())
		assert.True(t, errors.Is(err, ErrEncodeUnsupported))

		_, err = codec.Deserializer([]byte("not a webp"))
		assert.Error(t, err)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := PNG.Deserializer([]byte{1, 2, 3})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "decode png")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Image("gif")
		assert.True(t, errors.Is(err, ErrUnknownFormat))
		assert.Panics(t, func() { MustImage("gif") })
	})
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"png":  FormatPNG,
		".PNG": FormatPNG,
		".tif": FormatTIFF,
		"tiff": FormatTIFF,
		"bmp":  FormatBMP,
		"webp": FormatWebP,
	} {
		f, err := ParseFormat(in)
		assert.NoError(t, err)
		assert.Equal(t, want, f)
	}

	_, err := ParseFormat("")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.Equal(t, ".tiff", FormatTIFF.Ext())
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	src := testImage()

	data, err := BMP.Serializer(src)
	assert.NoError(t, err)
	path := filepath.Join(dir, "in.bmp")
	assert.NoError(t, os.WriteFile(path, data, 0o644))

	img, err := DecodeFile(path)
	assert.NoError(t, err)
	assertSamePixels(t, src, img)

	_, err = DecodeFile(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	_, err = DecodeFile(filepath.Join(dir, "in.xyz"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}
