package codec

import (
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/wire"
)

var patternArity = map[string]int{
	"WildcardPattern":    2,
	"AsPattern":          4,
	"TuplePattern":       3,
	"ConstructorPattern": 4,
	"EmptyListPattern":   2,
	"HeadTailPattern":    4,
	"LiteralPattern":     3,
	"UnitPattern":        2,
}

// patternCodec reads and writes Pattern[A] nodes.
type patternCodec[A any] struct {
	attr AttrCodec[A]
}

func (c patternCodec[A]) decode(d *decoder, v wire.Value) (ir.Pattern[A], error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()

	tag, arr, err := d.node(v, "pattern")
	if err != nil {
		return nil, err
	}
	d.push(tag)
	p, err := c.decodeNode(d, tag, arr)
	d.pop()
	return p, err
}

func (c patternCodec[A]) decodeNode(d *decoder, tag string, arr wire.Array) (ir.Pattern[A], error) {
	n, ok := patternArity[tag]
	if !ok {
		return nil, d.fail("pattern tag (WildcardPattern, AsPattern, TuplePattern, ConstructorPattern, EmptyListPattern, HeadTailPattern, LiteralPattern, UnitPattern)", arr[0])
	}
	if err := d.arity(tag, arr, n); err != nil {
		return nil, err
	}
	attrs, err := decodeAttrs(d, c.attr, arr[1])
	if err != nil {
		return nil, err
	}

	switch tag {
	case "WildcardPattern":
		return ir.WildcardPattern[A]{Attrs: attrs}, nil
	case "AsPattern":
		inner, err := at(d, "pattern", arr[2], c.decode)
		if err != nil {
			return nil, err
		}
		name, err := at(d, "name", arr[3], decodeName)
		if err != nil {
			return nil, err
		}
		return ir.AsPattern[A]{Attrs: attrs, Pattern: inner, Name: name}, nil
	case "TuplePattern":
		elems, err := at(d, "elements", arr[2], c.decodeList)
		if err != nil {
			return nil, err
		}
		return ir.TuplePattern[A]{Attrs: attrs, Elements: elems}, nil
	case "ConstructorPattern":
		fq, err := at(d, "fqname", arr[2], decodeFQName)
		if err != nil {
			return nil, err
		}
		args, err := at(d, "arguments", arr[3], c.decodeList)
		if err != nil {
			return nil, err
		}
		return ir.ConstructorPattern[A]{Attrs: attrs, FQName: fq, Arguments: args}, nil
	case "EmptyListPattern":
		return ir.EmptyListPattern[A]{Attrs: attrs}, nil
	case "HeadTailPattern":
		head, err := at(d, "head", arr[2], c.decode)
		if err != nil {
			return nil, err
		}
		tail, err := at(d, "tail", arr[3], c.decode)
		if err != nil {
			return nil, err
		}
		return ir.HeadTailPattern[A]{Attrs: attrs, Head: head, Tail: tail}, nil
	case "LiteralPattern":
		lit, err := at(d, "literal", arr[2], decodeLiteral)
		if err != nil {
			return nil, err
		}
		return ir.LiteralPattern[A]{Attrs: attrs, Literal: lit}, nil
	default:
		return ir.UnitPattern[A]{Attrs: attrs}, nil
	}
}

func (c patternCodec[A]) decodeList(d *decoder, v wire.Value) ([]ir.Pattern[A], error) {
	return decodeList(d, v, "list of patterns", c.decode)
}

func (c patternCodec[A]) encode(p ir.Pattern[A]) wire.Value {
	switch p := p.(type) {
	case ir.WildcardPattern[A]:
		return node("WildcardPattern", c.attr.Encode(p.Attrs))
	case ir.AsPattern[A]:
		return node("AsPattern", c.attr.Encode(p.Attrs), c.encode(p.Pattern), encodeName(p.Name))
	case ir.TuplePattern[A]:
		return node("TuplePattern", c.attr.Encode(p.Attrs), encodeList(p.Elements, c.encode))
	case ir.ConstructorPattern[A]:
		return node("ConstructorPattern", c.attr.Encode(p.Attrs), encodeFQName(p.FQName), encodeList(p.Arguments, c.encode))
	case ir.EmptyListPattern[A]:
		return node("EmptyListPattern", c.attr.Encode(p.Attrs))
	case ir.HeadTailPattern[A]:
		return node("HeadTailPattern", c.attr.Encode(p.Attrs), c.encode(p.Head), c.encode(p.Tail))
	case ir.LiteralPattern[A]:
		return node("LiteralPattern", c.attr.Encode(p.Attrs), encodeLiteral(p.Literal))
	case ir.UnitPattern[A]:
		return node("UnitPattern", c.attr.Encode(p.Attrs))
	default:
		// Unreachable: Pattern is sealed.
		panic(unknownVariant("pattern", p))
	}
}
