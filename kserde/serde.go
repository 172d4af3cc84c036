// Package kserde converts frames and frame metadata to and from bytes.
package kserde

import (
	"errors"
)

var (
	// ErrUnknownFormat is returned for a format name no codec is registered for.
	ErrUnknownFormat = errors.New("kserde: unknown format")

	// ErrEncodeUnsupported is returned by serializers of decode-only formats.
	ErrEncodeUnsupported = errors.New("kserde: format cannot be encoded")
)

type Serde[T any] struct {
	Serializer   Serializer[T]
	Deserializer Deserializer[T]
}

type Serializer[T any] func(T) ([]byte, error)

type Deserializer[T any] func([]byte) (T, error)
