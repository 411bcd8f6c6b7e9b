package codec

import (
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/wire"
)

// typeArity is the element count of each type node, tag and attributes included.
var typeArity = map[string]int{
	"Variable":         3,
	"Reference":        4,
	"Tuple":            3,
	"Record":           3,
	"ExtensibleRecord": 4,
	"Function":         4,
	"Unit":             2,
}

// typeCodec reads and writes Type[A] nodes.
type typeCodec[A any] struct {
	attr AttrCodec[A]
}

// decodeAttrs runs an attribute codec under an "attributes" breadcrumb.
func decodeAttrs[A any](d *decoder, attr AttrCodec[A], v wire.Value) (A, error) {
	d.push("attributes")
	defer d.pop()
	a, err := attr.Decode(v)
	if err != nil {
		var zero A
		return zero, d.failf("attributes", err.Error())
	}
	return a, nil
}

func (c typeCodec[A]) decode(d *decoder, v wire.Value) (ir.Type[A], error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()

	tag, arr, err := d.node(v, "type")
	if err != nil {
		return nil, err
	}
	d.push(tag)
	t, err := c.decodeNode(d, tag, arr)
	d.pop()
	return t, err
}

func (c typeCodec[A]) decodeNode(d *decoder, tag string, arr wire.Array) (ir.Type[A], error) {
	n, ok := typeArity[tag]
	if !ok {
		return nil, d.fail("type tag (Variable, Reference, Tuple, Record, ExtensibleRecord, Function, Unit)", arr[0])
	}
	if err := d.arity(tag, arr, n); err != nil {
		return nil, err
	}
	attrs, err := decodeAttrs(d, c.attr, arr[1])
	if err != nil {
		return nil, err
	}

	switch tag {
	case "Variable":
		name, err := at(d, "name", arr[2], decodeName)
		if err != nil {
			return nil, err
		}
		return ir.TypeVariable[A]{Attrs: attrs, Name: name}, nil
	case "Reference":
		fq, err := at(d, "fqname", arr[2], decodeFQName)
		if err != nil {
			return nil, err
		}
		params, err := at(d, "parameters", arr[3], c.decodeList)
		if err != nil {
			return nil, err
		}
		return ir.TypeReference[A]{Attrs: attrs, FQName: fq, Parameters: params}, nil
	case "Tuple":
		elems, err := at(d, "elements", arr[2], c.decodeList)
		if err != nil {
			return nil, err
		}
		return ir.TupleType[A]{Attrs: attrs, Elements: elems}, nil
	case "Record":
		fields, err := at(d, "fields", arr[2], c.decodeFields)
		if err != nil {
			return nil, err
		}
		return ir.RecordType[A]{Attrs: attrs, Fields: fields}, nil
	case "ExtensibleRecord":
		variable, err := at(d, "variable", arr[2], decodeName)
		if err != nil {
			return nil, err
		}
		fields, err := at(d, "fields", arr[3], c.decodeFields)
		if err != nil {
			return nil, err
		}
		return ir.ExtensibleRecordType[A]{Attrs: attrs, Variable: variable, Fields: fields}, nil
	case "Function":
		arg, err := at(d, "argument", arr[2], c.decode)
		if err != nil {
			return nil, err
		}
		res, err := at(d, "result", arr[3], c.decode)
		if err != nil {
			return nil, err
		}
		return ir.FunctionType[A]{Attrs: attrs, Argument: arg, Result: res}, nil
	default:
		return ir.UnitType[A]{Attrs: attrs}, nil
	}
}

func (c typeCodec[A]) decodeList(d *decoder, v wire.Value) ([]ir.Type[A], error) {
	return decodeList(d, v, "list of types", c.decode)
}

func (c typeCodec[A]) decodeFields(d *decoder, v wire.Value) ([]ir.Field[A], error) {
	return decodeList(d, v, "list of fields", c.decodeField)
}

// decodeField reads {"name": ..., "tpe": ...}.
func (c typeCodec[A]) decodeField(d *decoder, v wire.Value) (ir.Field[A], error) {
	obj, err := d.object(v, "field", "name", "tpe")
	if err != nil {
		return ir.Field[A]{}, err
	}
	name, err := at(d, "name", obj["name"], decodeName)
	if err != nil {
		return ir.Field[A]{}, err
	}
	tpe, err := at(d, "tpe", obj["tpe"], c.decode)
	if err != nil {
		return ir.Field[A]{}, err
	}
	return ir.Field[A]{Name: name, Type: tpe}, nil
}

func (c typeCodec[A]) encode(t ir.Type[A]) wire.Value {
	switch t := t.(type) {
	case ir.TypeVariable[A]:
		return node("Variable", c.attr.Encode(t.Attrs), encodeName(t.Name))
	case ir.TypeReference[A]:
		return node("Reference", c.attr.Encode(t.Attrs), encodeFQName(t.FQName), encodeList(t.Parameters, c.encode))
	case ir.TupleType[A]:
		return node("Tuple", c.attr.Encode(t.Attrs), encodeList(t.Elements, c.encode))
	case ir.RecordType[A]:
		return node("Record", c.attr.Encode(t.Attrs), encodeList(t.Fields, c.encodeField))
	case ir.ExtensibleRecordType[A]:
		return node("ExtensibleRecord", c.attr.Encode(t.Attrs), encodeName(t.Variable), encodeList(t.Fields, c.encodeField))
	case ir.FunctionType[A]:
		return node("Function", c.attr.Encode(t.Attrs), c.encode(t.Argument), c.encode(t.Result))
	case ir.UnitType[A]:
		return node("Unit", c.attr.Encode(t.Attrs))
	default:
		// Unreachable: Type is sealed.
		panic(unknownVariant("type", t))
	}
}

func (c typeCodec[A]) encodeField(f ir.Field[A]) wire.Value {
	return wire.Object{"name": encodeName(f.Name), "tpe": c.encode(f.Type)}
}
