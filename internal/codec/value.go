package codec

import (
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/wire"
)

var valueArity = map[string]int{
	"Literal":       3,
	"Constructor":   3,
	"Tuple":         3,
	"List":          3,
	"Record":        3,
	"Variable":      3,
	"Reference":     3,
	"Field":         4,
	"FieldFunction": 3,
	"Apply":         4,
	"Lambda":        4,
	"LetDefinition": 5,
	"LetRecursion":  4,
	"Destructure":   5,
	"IfThenElse":    5,
	"PatternMatch":  4,
	"UpdateRecord":  4,
	"Unit":          2,
}

const valueTags = "value tag (Literal, Constructor, Tuple, List, Record, Variable, Reference, Field, " +
	"FieldFunction, Apply, Lambda, LetDefinition, LetRecursion, Destructure, IfThenElse, PatternMatch, UpdateRecord, Unit)"

// valueCodec reads and writes Value[TA, VA] nodes and value definitions.
type valueCodec[TA, VA any] struct {
	types    typeCodec[TA]
	patterns patternCodec[VA]
	attr     AttrCodec[VA]
}

func newValueCodec[TA, VA any](ta AttrCodec[TA], va AttrCodec[VA]) valueCodec[TA, VA] {
	return valueCodec[TA, VA]{
		types:    typeCodec[TA]{attr: ta},
		patterns: patternCodec[VA]{attr: va},
		attr:     va,
	}
}

func (c valueCodec[TA, VA]) decode(d *decoder, v wire.Value) (ir.Value[TA, VA], error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()

	tag, arr, err := d.node(v, "value")
	if err != nil {
		return nil, err
	}
	d.push(tag)
	val, err := c.decodeNode(d, tag, arr)
	d.pop()
	return val, err
}

func (c valueCodec[TA, VA]) decodeNode(d *decoder, tag string, arr wire.Array) (ir.Value[TA, VA], error) {
	n, ok := valueArity[tag]
	if !ok {
		return nil, d.fail(valueTags, arr[0])
	}
	if err := d.arity(tag, arr, n); err != nil {
		return nil, err
	}
	attrs, err := decodeAttrs(d, c.attr, arr[1])
	if err != nil {
		return nil, err
	}

	switch tag {
	case "Literal":
		lit, err := at(d, "literal", arr[2], decodeLiteral)
		if err != nil {
			return nil, err
		}
		return ir.LiteralValue[TA, VA]{Attrs: attrs, Literal: lit}, nil
	case "Constructor":
		fq, err := at(d, "fqname", arr[2], decodeFQName)
		if err != nil {
			return nil, err
		}
		return ir.ConstructorValue[TA, VA]{Attrs: attrs, FQName: fq}, nil
	case "Tuple":
		elems, err := at(d, "elements", arr[2], c.decodeList)
		if err != nil {
			return nil, err
		}
		return ir.TupleValue[TA, VA]{Attrs: attrs, Elements: elems}, nil
	case "List":
		elems, err := at(d, "items", arr[2], c.decodeList)
		if err != nil {
			return nil, err
		}
		return ir.ListValue[TA, VA]{Attrs: attrs, Elements: elems}, nil
	case "Record":
		fields, err := at(d, "fields", arr[2], c.decodeNamedValues)
		if err != nil {
			return nil, err
		}
		return ir.RecordValue[TA, VA]{Attrs: attrs, Fields: fields}, nil
	case "Variable":
		name, err := at(d, "name", arr[2], decodeName)
		if err != nil {
			return nil, err
		}
		return ir.VariableValue[TA, VA]{Attrs: attrs, Name: name}, nil
	case "Reference":
		fq, err := at(d, "fqname", arr[2], decodeFQName)
		if err != nil {
			return nil, err
		}
		return ir.ReferenceValue[TA, VA]{Attrs: attrs, FQName: fq}, nil
	case "Field":
		subject, err := at(d, "subject", arr[2], c.decode)
		if err != nil {
			return nil, err
		}
		field, err := at(d, "field", arr[3], decodeName)
		if err != nil {
			return nil, err
		}
		return ir.FieldValue[TA, VA]{Attrs: attrs, Subject: subject, Field: field}, nil
	case "FieldFunction":
		field, err := at(d, "field", arr[2], decodeName)
		if err != nil {
			return nil, err
		}
		return ir.FieldFunctionValue[TA, VA]{Attrs: attrs, Field: field}, nil
	case "Apply":
		fn, err := at(d, "function", arr[2], c.decode)
		if err != nil {
			return nil, err
		}
		arg, err := at(d, "argument", arr[3], c.decode)
		if err != nil {
			return nil, err
		}
		return ir.ApplyValue[TA, VA]{Attrs: attrs, Function: fn, Argument: arg}, nil
	case "Lambda":
		pattern, err := at(d, "argument", arr[2], c.patterns.decode)
		if err != nil {
			return nil, err
		}
		body, err := at(d, "body", arr[3], c.decode)
		if err != nil {
			return nil, err
		}
		return ir.LambdaValue[TA, VA]{Attrs: attrs, Argument: pattern, Body: body}, nil
	case "LetDefinition":
		name, err := at(d, "name", arr[2], decodeName)
		if err != nil {
			return nil, err
		}
		def, err := at(d, "definition", arr[3], c.decodeDefinition)
		if err != nil {
			return nil, err
		}
		in, err := at(d, "in", arr[4], c.decode)
		if err != nil {
			return nil, err
		}
		return ir.LetDefinitionValue[TA, VA]{Attrs: attrs, Name: name, Definition: def, In: in}, nil
	case "LetRecursion":
		defs, err := at(d, "definitions", arr[2], c.decodeNamedDefinitions)
		if err != nil {
			return nil, err
		}
		in, err := at(d, "in", arr[3], c.decode)
		if err != nil {
			return nil, err
		}
		return ir.LetRecursionValue[TA, VA]{Attrs: attrs, Definitions: defs, In: in}, nil
	case "Destructure":
		pattern, err := at(d, "pattern", arr[2], c.patterns.decode)
		if err != nil {
			return nil, err
		}
		value, err := at(d, "value", arr[3], c.decode)
		if err != nil {
			return nil, err
		}
		in, err := at(d, "in", arr[4], c.decode)
		if err != nil {
			return nil, err
		}
		return ir.DestructureValue[TA, VA]{Attrs: attrs, Pattern: pattern, Value: value, In: in}, nil
	case "IfThenElse":
		cond, err := at(d, "condition", arr[2], c.decode)
		if err != nil {
			return nil, err
		}
		then, err := at(d, "then", arr[3], c.decode)
		if err != nil {
			return nil, err
		}
		els, err := at(d, "else", arr[4], c.decode)
		if err != nil {
			return nil, err
		}
		return ir.IfThenElseValue[TA, VA]{Attrs: attrs, Condition: cond, Then: then, Else: els}, nil
	case "PatternMatch":
		subject, err := at(d, "subject", arr[2], c.decode)
		if err != nil {
			return nil, err
		}
		cases, err := at(d, "cases", arr[3], c.decodeCases)
		if err != nil {
			return nil, err
		}
		return ir.PatternMatchValue[TA, VA]{Attrs: attrs, Subject: subject, Cases: cases}, nil
	case "UpdateRecord":
		record, err := at(d, "record", arr[2], c.decode)
		if err != nil {
			return nil, err
		}
		updates, err := at(d, "updates", arr[3], c.decodeNamedValues)
		if err != nil {
			return nil, err
		}
		return ir.UpdateRecordValue[TA, VA]{Attrs: attrs, Record: record, Updates: updates}, nil
	default:
		return ir.UnitValue[TA, VA]{Attrs: attrs}, nil
	}
}

func (c valueCodec[TA, VA]) decodeList(d *decoder, v wire.Value) ([]ir.Value[TA, VA], error) {
	return decodeList(d, v, "list of values", c.decode)
}

func (c valueCodec[TA, VA]) decodeNamedValues(d *decoder, v wire.Value) ([]ir.NamedValue[TA, VA], error) {
	return decodeList(d, v, "list of [name, value] pairs", func(d *decoder, v wire.Value) (ir.NamedValue[TA, VA], error) {
		pair, err := d.tuple(v, "[name, value] pair", 2)
		if err != nil {
			return ir.NamedValue[TA, VA]{}, err
		}
		name, err := at(d, "name", pair[0], decodeName)
		if err != nil {
			return ir.NamedValue[TA, VA]{}, err
		}
		value, err := at(d, "value", pair[1], c.decode)
		if err != nil {
			return ir.NamedValue[TA, VA]{}, err
		}
		return ir.NamedValue[TA, VA]{Name: name, Value: value}, nil
	})
}

func (c valueCodec[TA, VA]) decodeNamedDefinitions(d *decoder, v wire.Value) ([]ir.NamedDefinition[TA, VA], error) {
	return decodeList(d, v, "list of [name, definition] pairs", func(d *decoder, v wire.Value) (ir.NamedDefinition[TA, VA], error) {
		pair, err := d.tuple(v, "[name, definition] pair", 2)
		if err != nil {
			return ir.NamedDefinition[TA, VA]{}, err
		}
		name, err := at(d, "name", pair[0], decodeName)
		if err != nil {
			return ir.NamedDefinition[TA, VA]{}, err
		}
		def, err := at(d, "definition", pair[1], c.decodeDefinition)
		if err != nil {
			return ir.NamedDefinition[TA, VA]{}, err
		}
		return ir.NamedDefinition[TA, VA]{Name: name, Definition: def}, nil
	})
}

func (c valueCodec[TA, VA]) decodeCases(d *decoder, v wire.Value) ([]ir.Case[TA, VA], error) {
	return decodeList(d, v, "list of [pattern, body] cases", func(d *decoder, v wire.Value) (ir.Case[TA, VA], error) {
		pair, err := d.tuple(v, "[pattern, body] case", 2)
		if err != nil {
			return ir.Case[TA, VA]{}, err
		}
		pattern, err := at(d, "pattern", pair[0], c.patterns.decode)
		if err != nil {
			return ir.Case[TA, VA]{}, err
		}
		body, err := at(d, "body", pair[1], c.decode)
		if err != nil {
			return ir.Case[TA, VA]{}, err
		}
		return ir.Case[TA, VA]{Pattern: pattern, Body: body}, nil
	})
}

// decodeDefinition reads {"inputTypes": [[name, attrs, type]], "outputType": ..., "body": ...}.
func (c valueCodec[TA, VA]) decodeDefinition(d *decoder, v wire.Value) (ir.ValueDefinition[TA, VA], error) {
	obj, err := d.object(v, "value definition", "inputTypes", "outputType", "body")
	if err != nil {
		return ir.ValueDefinition[TA, VA]{}, err
	}
	inputs, err := at(d, "inputTypes", obj["inputTypes"], c.decodeInputTypes)
	if err != nil {
		return ir.ValueDefinition[TA, VA]{}, err
	}
	output, err := at(d, "outputType", obj["outputType"], c.types.decode)
	if err != nil {
		return ir.ValueDefinition[TA, VA]{}, err
	}
	body, err := at(d, "body", obj["body"], c.decode)
	if err != nil {
		return ir.ValueDefinition[TA, VA]{}, err
	}
	return ir.ValueDefinition[TA, VA]{InputTypes: inputs, OutputType: output, Body: body}, nil
}

func (c valueCodec[TA, VA]) decodeInputTypes(d *decoder, v wire.Value) ([]ir.InputType[TA, VA], error) {
	return decodeList(d, v, "list of [name, attributes, type] inputs", func(d *decoder, v wire.Value) (ir.InputType[TA, VA], error) {
		triple, err := d.tuple(v, "[name, attributes, type] input", 3)
		if err != nil {
			return ir.InputType[TA, VA]{}, err
		}
		name, err := at(d, "name", triple[0], decodeName)
		if err != nil {
			return ir.InputType[TA, VA]{}, err
		}
		attrs, err := decodeAttrs(d, c.attr, triple[1])
		if err != nil {
			return ir.InputType[TA, VA]{}, err
		}
		tpe, err := at(d, "type", triple[2], c.types.decode)
		if err != nil {
			return ir.InputType[TA, VA]{}, err
		}
		return ir.InputType[TA, VA]{Name: name, Attrs: attrs, Type: tpe}, nil
	})
}

func (c valueCodec[TA, VA]) encode(v ir.Value[TA, VA]) wire.Value {
	switch v := v.(type) {
	case ir.LiteralValue[TA, VA]:
		return node("Literal", c.attr.Encode(v.Attrs), encodeLiteral(v.Literal))
	case ir.ConstructorValue[TA, VA]:
		return node("Constructor", c.attr.Encode(v.Attrs), encodeFQName(v.FQName))
	case ir.TupleValue[TA, VA]:
		return node("Tuple", c.attr.Encode(v.Attrs), encodeList(v.Elements, c.encode))
	case ir.ListValue[TA, VA]:
		return node("List", c.attr.Encode(v.Attrs), encodeList(v.Elements, c.encode))
	case ir.RecordValue[TA, VA]:
		return node("Record", c.attr.Encode(v.Attrs), encodeList(v.Fields, c.encodeNamedValue))
	case ir.VariableValue[TA, VA]:
		return node("Variable", c.attr.Encode(v.Attrs), encodeName(v.Name))
	case ir.ReferenceValue[TA, VA]:
		return node("Reference", c.attr.Encode(v.Attrs), encodeFQName(v.FQName))
	case ir.FieldValue[TA, VA]:
		return node("Field", c.attr.Encode(v.Attrs), c.encode(v.Subject), encodeName(v.Field))
	case ir.FieldFunctionValue[TA, VA]:
		return node("FieldFunction", c.attr.Encode(v.Attrs), encodeName(v.Field))
	case ir.ApplyValue[TA, VA]:
		return node("Apply", c.attr.Encode(v.Attrs), c.encode(v.Function), c.encode(v.Argument))
	case ir.LambdaValue[TA, VA]:
		return node("Lambda", c.attr.Encode(v.Attrs), c.patterns.encode(v.Argument), c.encode(v.Body))
	case ir.LetDefinitionValue[TA, VA]:
		return node("LetDefinition", c.attr.Encode(v.Attrs), encodeName(v.Name), c.encodeDefinition(v.Definition), c.encode(v.In))
	case ir.LetRecursionValue[TA, VA]:
		defs := encodeList(v.Definitions, func(nd ir.NamedDefinition[TA, VA]) wire.Value {
			return wire.Array{encodeName(nd.Name), c.encodeDefinition(nd.Definition)}
		})
		return node("LetRecursion", c.attr.Encode(v.Attrs), defs, c.encode(v.In))
	case ir.DestructureValue[TA, VA]:
		return node("Destructure", c.attr.Encode(v.Attrs), c.patterns.encode(v.Pattern), c.encode(v.Value), c.encode(v.In))
	case ir.IfThenElseValue[TA, VA]:
		return node("IfThenElse", c.attr.Encode(v.Attrs), c.encode(v.Condition), c.encode(v.Then), c.encode(v.Else))
	case ir.PatternMatchValue[TA, VA]:
		cases := encodeList(v.Cases, func(cs ir.Case[TA, VA]) wire.Value {
			return wire.Array{c.patterns.encode(cs.Pattern), c.encode(cs.Body)}
		})
		return node("PatternMatch", c.attr.Encode(v.Attrs), c.encode(v.Subject), cases)
	case ir.UpdateRecordValue[TA, VA]:
		return node("UpdateRecord", c.attr.Encode(v.Attrs), c.encode(v.Record), encodeList(v.Updates, c.encodeNamedValue))
	case ir.UnitValue[TA, VA]:
		return node("Unit", c.attr.Encode(v.Attrs))
	default:
		// Unreachable: Value is sealed.
		panic(unknownVariant("value", v))
	}
}

func (c valueCodec[TA, VA]) encodeNamedValue(nv ir.NamedValue[TA, VA]) wire.Value {
	return wire.Array{encodeName(nv.Name), c.encode(nv.Value)}
}

func (c valueCodec[TA, VA]) encodeDefinition(def ir.ValueDefinition[TA, VA]) wire.Value {
	inputs := encodeList(def.InputTypes, func(in ir.InputType[TA, VA]) wire.Value {
		return wire.Array{encodeName(in.Name), c.attr.Encode(in.Attrs), c.types.encode(in.Type)}
	})
	return wire.Object{
		"inputTypes": inputs,
		"outputType": c.types.encode(def.OutputType),
		"body":       c.encode(def.Body),
	}
}
