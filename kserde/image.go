package kserde

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// Format names an image codec. The value doubles as the file extension.
type Format string

const (
	FormatPNG  Format = "png"
	FormatTIFF Format = "tiff"
	FormatBMP  Format = "bmp"
	FormatWebP Format = "webp"
)

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

func (f Format) String() string {
	return string(f)
}

// Encodable reports whether frames can be written in f.
func (f Format) Encodable() bool {
	codec, ok := images[f]
	return ok && codec.Serializer != nil
}

var PNG = Serde[image.Image]{
	Serializer: func(img image.Image) ([]byte, error) {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("kserde: encode png: %w", err)
		}
		return buf.Bytes(), nil
	},
	Deserializer: func(data []byte) (image.Image, error) {
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("kserde: decode png: %w", err)
		}
		return img, nil
	},
}

var TIFF = Serde[image.Image]{
	Serializer: func(img image.Image) ([]byte, error) {
		var buf bytes.Buffer
		if err := tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true}); err != nil {
			return nil, fmt.Errorf("kserde: encode tiff: %w", err)
		}
		return buf.Bytes(), nil
	},
	Deserializer: func(data []byte) (image.Image, error) {
		img, err := tiff.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("kserde: decode tiff: %w", err)
		}
		return img, nil
	},
}

var BMP = Serde[image.Image]{
	Serializer: func(img image.Image) ([]byte, error) {
		var buf bytes.Buffer
		if err := bmp.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("kserde: encode bmp: %w", err)
		}
		return buf.Bytes(), nil
	},
	Deserializer: func(data []byte) (image.Image, error) {
		img, err := bmp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("kserde: decode bmp: %w", err)
		}
		return img, nil
	},
}

// WebP is decode only.
var WebP = Serde[image.Image]{
	Deserializer: func(data []byte) (image.Image, error) {
		img, err := webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("kserde: decode webp: %w", err)
		}
		return img, nil
	},
}

var images = map[Format]Serde[image.Image]{
	FormatPNG:  PNG,
	FormatTIFF: TIFF,
	FormatBMP:  BMP,
	FormatWebP: WebP,
}

// ParseFormat maps a format name or file extension ("png", ".TIF") to a
// Format.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(s, "."))
	if name == "tif" {
		name = "tiff"
	}
	f := Format(name)
	if _, ok := images[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// Image returns the codec for f. Decode-only formats have a nil Serializer
// replaced by one returning ErrEncodeUnsupported.
func Image(f Format) (Serde[image.Image], error) {
	codec, ok := images[f]
	if !ok {
		return Serde[image.Image]{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if codec.Serializer == nil {
		codec.Serializer = func(image.Image) ([]byte, error) {
			return nil, fmt.Errorf("%w: %s", ErrEncodeUnsupported, f)
		}
	}
	return codec, nil
}

// MustImage is like Image but panics on error.
func MustImage(f Format) Serde[image.Image] {
	codec, err := Image(f)
	if err != nil {
		panic(err)
	}
	return codec
}

// DecodeFile reads an image, picking the codec from the file extension.
func DecodeFile(path string) (image.Image, error) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kserde: read %s: %w", path, err)
	}
	return images[f].Deserializer(data)
}
