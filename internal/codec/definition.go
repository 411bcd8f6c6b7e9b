package codec

import (
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/wire"
)

// decodeDefinition reads TypeAliasDefinition or CustomTypeDefinition.
func (c typeCodec[A]) decodeDefinition(d *decoder, v wire.Value) (ir.TypeDefinition[A], error) {
	tag, arr, err := d.node(v, "type definition")
	if err != nil {
		return nil, err
	}
	d.push(tag)
	defer d.pop()

	switch tag {
	case "TypeAliasDefinition":
		if err := d.arity(tag, arr, 3); err != nil {
			return nil, err
		}
		params, err := at(d, "params", arr[1], decodeNames)
		if err != nil {
			return nil, err
		}
		tpe, err := at(d, "type", arr[2], c.decode)
		if err != nil {
			return nil, err
		}
		return ir.TypeAliasDefinition[A]{Params: params, Type: tpe}, nil
	case "CustomTypeDefinition":
		if err := d.arity(tag, arr, 3); err != nil {
			return nil, err
		}
		params, err := at(d, "params", arr[1], decodeNames)
		if err != nil {
			return nil, err
		}
		ctors, err := at(d, "constructors", arr[2], func(d *decoder, v wire.Value) (ir.AccessControlled[ir.Constructors[A]], error) {
			return decodeAccessControlled(d, v, c.decodeConstructors)
		})
		if err != nil {
			return nil, err
		}
		return ir.CustomTypeDefinition[A]{Params: params, Constructors: ctors}, nil
	default:
		return nil, d.fail("type definition tag (TypeAliasDefinition, CustomTypeDefinition)", arr[0])
	}
}

// decodeConstructors reads [[ctorName, [[argName, type]]]].
func (c typeCodec[A]) decodeConstructors(d *decoder, v wire.Value) (ir.Constructors[A], error) {
	return decodeEntries(d, v, decodeName, func(d *decoder, v wire.Value) ([]ir.ConstructorArg[A], error) {
		return decodeList(d, v, "list of [name, type] constructor arguments", func(d *decoder, v wire.Value) (ir.ConstructorArg[A], error) {
			pair, err := d.tuple(v, "[name, type] constructor argument", 2)
			if err != nil {
				return ir.ConstructorArg[A]{}, err
			}
			name, err := at(d, "name", pair[0], decodeName)
			if err != nil {
				return ir.ConstructorArg[A]{}, err
			}
			tpe, err := at(d, "type", pair[1], c.decode)
			if err != nil {
				return ir.ConstructorArg[A]{}, err
			}
			return ir.ConstructorArg[A]{Name: name, Type: tpe}, nil
		})
	})
}

func (c typeCodec[A]) decodeSpecification(d *decoder, v wire.Value) (ir.TypeSpecification[A], error) {
	tag, arr, err := d.node(v, "type specification")
	if err != nil {
		return nil, err
	}
	d.push(tag)
	defer d.pop()

	switch tag {
	case "TypeAliasSpecification":
		if err := d.arity(tag, arr, 3); err != nil {
			return nil, err
		}
		params, err := at(d, "params", arr[1], decodeNames)
		if err != nil {
			return nil, err
		}
		tpe, err := at(d, "type", arr[2], c.decode)
		if err != nil {
			return nil, err
		}
		return ir.TypeAliasSpecification[A]{Params: params, Type: tpe}, nil
	case "OpaqueTypeSpecification":
		if err := d.arity(tag, arr, 2); err != nil {
			return nil, err
		}
		params, err := at(d, "params", arr[1], decodeNames)
		if err != nil {
			return nil, err
		}
		return ir.OpaqueTypeSpecification[A]{Params: params}, nil
	case "CustomTypeSpecification":
		if err := d.arity(tag, arr, 3); err != nil {
			return nil, err
		}
		params, err := at(d, "params", arr[1], decodeNames)
		if err != nil {
			return nil, err
		}
		ctors, err := at(d, "constructors", arr[2], c.decodeConstructors)
		if err != nil {
			return nil, err
		}
		return ir.CustomTypeSpecification[A]{Params: params, Constructors: ctors}, nil
	case "DerivedTypeSpecification":
		if err := d.arity(tag, arr, 3); err != nil {
			return nil, err
		}
		params, err := at(d, "params", arr[1], decodeNames)
		if err != nil {
			return nil, err
		}
		config, err := at(d, "config", arr[2], c.decodeDerivedConfig)
		if err != nil {
			return nil, err
		}
		return ir.DerivedTypeSpecification[A]{Params: params, Config: config}, nil
	default:
		return nil, d.fail("type specification tag (TypeAliasSpecification, OpaqueTypeSpecification, CustomTypeSpecification, DerivedTypeSpecification)", arr[0])
	}
}

func (c typeCodec[A]) decodeDerivedConfig(d *decoder, v wire.Value) (ir.DerivedTypeConfig[A], error) {
	obj, err := d.object(v, "derived type config", "baseType", "fromBaseType", "toBaseType")
	if err != nil {
		return ir.DerivedTypeConfig[A]{}, err
	}
	base, err := at(d, "baseType", obj["baseType"], c.decode)
	if err != nil {
		return ir.DerivedTypeConfig[A]{}, err
	}
	from, err := at(d, "fromBaseType", obj["fromBaseType"], decodeFQName)
	if err != nil {
		return ir.DerivedTypeConfig[A]{}, err
	}
	to, err := at(d, "toBaseType", obj["toBaseType"], decodeFQName)
	if err != nil {
		return ir.DerivedTypeConfig[A]{}, err
	}
	return ir.DerivedTypeConfig[A]{BaseType: base, FromBaseType: from, ToBaseType: to}, nil
}

// decodeValueSpecification reads {"inputs": [[name, type]], "output": type}.
func (c typeCodec[A]) decodeValueSpecification(d *decoder, v wire.Value) (ir.ValueSpecification[A], error) {
	obj, err := d.object(v, "value specification", "inputs", "output")
	if err != nil {
		return ir.ValueSpecification[A]{}, err
	}
	inputs, err := at(d, "inputs", obj["inputs"], func(d *decoder, v wire.Value) ([]ir.SpecInput[A], error) {
		return decodeList(d, v, "list of [name, type] inputs", func(d *decoder, v wire.Value) (ir.SpecInput[A], error) {
			pair, err := d.tuple(v, "[name, type] input", 2)
			if err != nil {
				return ir.SpecInput[A]{}, err
			}
			name, err := at(d, "name", pair[0], decodeName)
			if err != nil {
				return ir.SpecInput[A]{}, err
			}
			tpe, err := at(d, "type", pair[1], c.decode)
			if err != nil {
				return ir.SpecInput[A]{}, err
			}
			return ir.SpecInput[A]{Name: name, Type: tpe}, nil
		})
	})
	if err != nil {
		return ir.ValueSpecification[A]{}, err
	}
	output, err := at(d, "output", obj["output"], c.decode)
	if err != nil {
		return ir.ValueSpecification[A]{}, err
	}
	return ir.ValueSpecification[A]{Inputs: inputs, Output: output}, nil
}

func (c typeCodec[A]) encodeDefinition(def ir.TypeDefinition[A]) wire.Value {
	switch def := def.(type) {
	case ir.TypeAliasDefinition[A]:
		return wire.Array{wire.String("TypeAliasDefinition"), encodeNames(def.Params), c.encode(def.Type)}
	case ir.CustomTypeDefinition[A]:
		ctors := encodeAccessControlled(def.Constructors, c.encodeConstructors)
		return wire.Array{wire.String("CustomTypeDefinition"), encodeNames(def.Params), ctors}
	default:
		// Unreachable: TypeDefinition is sealed.
		panic(unknownVariant("type definition", def))
	}
}

func (c typeCodec[A]) encodeConstructors(ctors ir.Constructors[A]) wire.Value {
	return encodeEntries(ctors, encodeName, func(args []ir.ConstructorArg[A]) wire.Value {
		return encodeList(args, func(arg ir.ConstructorArg[A]) wire.Value {
			return wire.Array{encodeName(arg.Name), c.encode(arg.Type)}
		})
	})
}

func (c typeCodec[A]) encodeSpecification(spec ir.TypeSpecification[A]) wire.Value {
	switch spec := spec.(type) {
	case ir.TypeAliasSpecification[A]:
		return wire.Array{wire.String("TypeAliasSpecification"), encodeNames(spec.Params), c.encode(spec.Type)}
	case ir.OpaqueTypeSpecification[A]:
		return wire.Array{wire.String("OpaqueTypeSpecification"), encodeNames(spec.Params)}
	case ir.CustomTypeSpecification[A]:
		return wire.Array{wire.String("CustomTypeSpecification"), encodeNames(spec.Params), c.encodeConstructors(spec.Constructors)}
	case ir.DerivedTypeSpecification[A]:
		config := wire.Object{
			"baseType":     c.encode(spec.Config.BaseType),
			"fromBaseType": encodeFQName(spec.Config.FromBaseType),
			"toBaseType":   encodeFQName(spec.Config.ToBaseType),
		}
		return wire.Array{wire.String("DerivedTypeSpecification"), encodeNames(spec.Params), config}
	default:
		// Unreachable: TypeSpecification is sealed.
		panic(unknownVariant("type specification", spec))
	}
}

func (c typeCodec[A]) encodeValueSpecification(spec ir.ValueSpecification[A]) wire.Value {
	inputs := encodeList(spec.Inputs, func(in ir.SpecInput[A]) wire.Value {
		return wire.Array{encodeName(in.Name), c.encode(in.Type)}
	})
	return wire.Object{"inputs": inputs, "output": c.encode(spec.Output)}
}
