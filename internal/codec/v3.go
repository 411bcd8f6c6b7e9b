package codec

import (
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/wire"
)

// v3Format is the current wire format. Every module definition and
// specification carries a "doc" key holding a string or null.
type v3Format struct {
	types  typeCodec[ir.Attributes]
	values valueCodec[ir.Attributes, ir.Attributes]
}

func newV3Format() v3Format {
	return v3Format{
		types:  typeCodec[ir.Attributes]{attr: Opaque},
		values: newValueCodec(Opaque, Opaque),
	}
}

func (v3Format) version() ir.FormatVersion { return ir.FormatV3 }

func (f v3Format) decodeDistribution(d *decoder, v wire.Value) (ir.Distribution, error) {
	return decodeLibrary(d, f, v)
}

func (f v3Format) encodeDistribution(dist ir.Distribution) wire.Value {
	return ir.VisitDistribution[wire.Value](dist, libraryEncoder{mf: f})
}

// decodeModule reads {"doc": string|null, "types": [...], "values": [...]}.
func (f v3Format) decodeModule(d *decoder, v wire.Value) (moduleDef, error) {
	obj, err := d.object(v, "module definition", "doc", "types", "values")
	if err != nil {
		return moduleDef{}, err
	}
	doc, err := at(d, "doc", obj["doc"], decodeOptionalDoc)
	if err != nil {
		return moduleDef{}, err
	}
	types, err := at(d, "types", obj["types"], func(d *decoder, v wire.Value) (ir.Entries[ir.Name, typeEntry], error) {
		return decodeTypeEntries(d, f.types, v)
	})
	if err != nil {
		return moduleDef{}, err
	}
	values, err := at(d, "values", obj["values"], func(d *decoder, v wire.Value) (ir.Entries[ir.Name, valueEntry], error) {
		return decodeValueEntries(d, f.values, v)
	})
	if err != nil {
		return moduleDef{}, err
	}
	return moduleDef{Types: types, Values: values, Doc: doc}, nil
}

func (f v3Format) encodeModule(m moduleDef) wire.Value {
	return wire.Object{
		"doc":    encodeOptionalDoc(m.Doc),
		"types":  encodeTypeEntries(f.types, m.Types),
		"values": encodeValueEntries(f.values, m.Values),
	}
}

// decodeModuleSpec reads {"doc": string|null, "types": [...], "values": [...]}.
func (f v3Format) decodeModuleSpec(d *decoder, v wire.Value) (moduleSpec, error) {
	obj, err := d.object(v, "module specification", "doc", "types", "values")
	if err != nil {
		return moduleSpec{}, err
	}
	doc, err := at(d, "doc", obj["doc"], decodeOptionalDoc)
	if err != nil {
		return moduleSpec{}, err
	}
	spec, err := decodeSpecEntries(d, f.types, obj)
	if err != nil {
		return moduleSpec{}, err
	}
	spec.Doc = doc
	return spec, nil
}

func (f v3Format) encodeModuleSpec(m moduleSpec) wire.Value {
	obj := encodeSpecEntries(f.types, m)
	obj["doc"] = encodeOptionalDoc(m.Doc)
	return obj
}
