package codec

import (
	"fmt"

	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/wire"
)

// AttrCodec converts a node attribute payload to and from the wire.
type AttrCodec[A any] struct {
	Encode func(A) wire.Value
	Decode func(wire.Value) (A, error)
}

// Opaque keeps attributes as compact JSON without interpreting them.
var Opaque = AttrCodec[ir.Attributes]{
	Encode: func(a ir.Attributes) wire.Value {
		v, err := wire.Parse(a.JSON())
		if err != nil {
			// Unreachable: ir.NewAttributes only accepts valid JSON.
			panic(fmt.Sprintf("opaque attributes: %v", err))
		}
		return v
	},
	Decode: func(v wire.Value) (ir.Attributes, error) {
		raw, err := wire.Marshal(v)
		if err != nil {
			return ir.Attributes{}, err
		}
		return ir.NewAttributes(raw)
	},
}

// Ignore drops attributes on decode and writes an empty object on encode.
// Use it when only the tree shape matters.
var Ignore = AttrCodec[struct{}]{
	Encode: func(struct{}) wire.Value { return wire.Object{} },
	Decode: func(wire.Value) (struct{}, error) { return struct{}{}, nil },
}
