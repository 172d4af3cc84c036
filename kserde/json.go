package kserde

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrTrailingData is returned when a JSON document is followed by more input.
var ErrTrailingData = errors.New("kserde: trailing data after json document")

// JSONSerializer writes v as indented JSON followed by a newline, the way it
// ends up in manifest files.
func JSONSerializer[T any]() Serializer[T] {
	return func(v T) ([]byte, error) {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("kserde: encode json: %w", err)
		}
		return buf.Bytes(), nil
	}
}

// JSONDeserializer decodes exactly one JSON document. Unknown fields are an
// error.
func JSONDeserializer[T any]() Deserializer[T] {
	return func(b []byte) (T, error) {
		var v T
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&v); err != nil {
			return *new(T), fmt.Errorf("kserde: decode json: %w", err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return *new(T), ErrTrailingData
		}
		return v, nil
	}
}

func JSON[T any]() Serde[T] {
	return Serde[T]{
		Serializer:   JSONSerializer[T](),
		Deserializer: JSONDeserializer[T](),
	}
}
