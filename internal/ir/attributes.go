package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Attributes is an opaque annotation payload kept as compact JSON text.
// The IR never interprets it. The zero value stands for the empty object,
// and Attributes values are comparable with ==.
type Attributes struct {
	raw string
}

// NewAttributes validates and compacts raw JSON. Callers that need a
// stable byte form should pass canonical JSON.
func NewAttributes(raw []byte) (Attributes, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return Attributes{}, fmt.Errorf("attributes: %w", err)
	}
	if buf.String() == "{}" {
		return Attributes{}, nil
	}
	return Attributes{raw: buf.String()}, nil
}

// MustAttributes is like NewAttributes but panics on invalid JSON.
func MustAttributes(raw string) Attributes {
	a, err := NewAttributes([]byte(raw))
	if err != nil {
		panic(err)
	}
	return a
}

// JSON returns the payload as JSON bytes.
func (a Attributes) JSON() []byte {
	if a.raw == "" {
		return []byte("{}")
	}
	return []byte(a.raw)
}

// IsEmpty reports whether the payload is the empty object.
func (a Attributes) IsEmpty() bool {
	return a.raw == ""
}

// String returns the payload as JSON text.
func (a Attributes) String() string {
	return string(a.JSON())
}
