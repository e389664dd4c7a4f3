// Package encoding provides utilities for encoding and decoding data.
package encoding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ToJSONIndent marshals a value to JSON bytes indented with two spaces.
// HTML characters are left unescaped and no trailing newline is written.
func ToJSONIndent[T any](value T) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(value); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// EncodePretty writes v to w as indented JSON followed by a newline.
func EncodePretty[T any](w io.Writer, value T) error {
	data, err := ToJSONIndent(value)
	if err != nil {
		return err
	}

	data = append(data, '\n')

	_, err = w.Write(data)

	return err
}

// ParseJSON unmarshals JSON data into the provided type.
// Returns an error if parsing fails.
func ParseJSON[T any](data []byte) (*T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &result, nil
}
