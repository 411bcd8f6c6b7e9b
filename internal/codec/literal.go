package codec

import (
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"

	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/wire"
)

const literalTags = "literal tag (BoolLiteral, CharLiteral, StringLiteral, WholeNumberLiteral, FloatLiteral, DecimalLiteral)"

// decodeLiteral reads [tag, value]. Versions 2 and 3 share literal tags.
func decodeLiteral(d *decoder, v wire.Value) (ir.Literal, error) {
	arr, err := d.tuple(v, "literal [tag, value]", 2)
	if err != nil {
		return nil, err
	}
	tag, ok := arr[0].(wire.String)
	if !ok {
		return nil, d.fail(literalTags, arr[0])
	}
	d.push(string(tag))
	defer d.pop()

	payload := arr[1]
	switch tag {
	case "BoolLiteral":
		b, ok := payload.(wire.Bool)
		if !ok {
			return nil, d.fail("bool", payload)
		}
		return ir.BoolLiteral{Value: bool(b)}, nil
	case "CharLiteral":
		s, ok := payload.(wire.String)
		if !ok || utf8.RuneCountInString(string(s)) != 1 {
			return nil, d.fail("single-character string", payload)
		}
		r, _ := utf8.DecodeRuneInString(string(s))
		return ir.CharLiteral{Value: r}, nil
	case "StringLiteral":
		s, ok := payload.(wire.String)
		if !ok {
			return nil, d.fail("string", payload)
		}
		return ir.StringLiteral{Value: string(s)}, nil
	case "WholeNumberLiteral":
		n, ok := payload.(wire.Number)
		if !ok {
			return nil, d.fail("integer", payload)
		}
		i, err := n.Int64()
		if err != nil {
			return nil, d.fail("64-bit integer", payload)
		}
		return ir.WholeNumberLiteral{Value: i}, nil
	case "FloatLiteral":
		n, ok := payload.(wire.Number)
		if !ok {
			return nil, d.fail("number", payload)
		}
		f, err := n.Float64()
		if err != nil {
			return nil, d.fail("64-bit float", payload)
		}
		return ir.FloatLiteral{Value: f}, nil
	case "DecimalLiteral":
		s, ok := payload.(wire.String)
		if !ok || !isDecimal(string(s)) {
			return nil, d.fail("decimal string", payload)
		}
		return ir.DecimalLiteral{Value: string(s)}, nil
	default:
		return nil, d.fail(literalTags, arr[0])
	}
}

// isDecimal reports whether s is a finite decimal number such as "12.50"
// or "-1E-3". NaN and infinities are rejected.
func isDecimal(s string) bool {
	dec, _, err := apd.NewFromString(s)
	return err == nil && dec.Form == apd.Finite
}

func encodeLiteral(l ir.Literal) wire.Value {
	switch lit := l.(type) {
	case ir.BoolLiteral:
		return wire.Array{wire.String("BoolLiteral"), wire.Bool(lit.Value)}
	case ir.CharLiteral:
		return wire.Array{wire.String("CharLiteral"), wire.String(string(lit.Value))}
	case ir.StringLiteral:
		return wire.Array{wire.String("StringLiteral"), wire.String(lit.Value)}
	case ir.WholeNumberLiteral:
		return wire.Array{wire.String("WholeNumberLiteral"), wire.Int(lit.Value)}
	case ir.FloatLiteral:
		return wire.Array{wire.String("FloatLiteral"), wire.Float(lit.Value)}
	case ir.DecimalLiteral:
		return wire.Array{wire.String("DecimalLiteral"), wire.String(lit.Value)}
	default:
		// Unreachable: Literal is sealed.
		panic(unknownVariant("literal", l))
	}
}
