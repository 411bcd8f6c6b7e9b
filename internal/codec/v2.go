package codec

import (
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/wire"
)

// v2Format shares literals, value entries and type entries with v3. The
// only difference is the module doc: v2 writers may leave the "doc" key
// out of module definitions and specifications, and a missing key reads
// as no doc. Encoding writes "doc" only when the module has one.
type v2Format struct {
	types  typeCodec[ir.Attributes]
	values valueCodec[ir.Attributes, ir.Attributes]
}

func newV2Format() v2Format {
	return v2Format{
		types:  typeCodec[ir.Attributes]{attr: Opaque},
		values: newValueCodec(Opaque, Opaque),
	}
}

func (v2Format) version() ir.FormatVersion { return ir.FormatV2 }

func (f v2Format) decodeDistribution(d *decoder, v wire.Value) (ir.Distribution, error) {
	return decodeLibrary(d, f, v)
}

func (f v2Format) encodeDistribution(dist ir.Distribution) wire.Value {
	return ir.VisitDistribution[wire.Value](dist, libraryEncoder{mf: f})
}

// decodeModule reads {"doc"?: string|null, "types": [...], "values": [...]}.
func (f v2Format) decodeModule(d *decoder, v wire.Value) (moduleDef, error) {
	obj, err := d.objectOptional(v, "module definition", []string{"doc"}, "types", "values")
	if err != nil {
		return moduleDef{}, err
	}
	doc, err := decodeV2ModuleDoc(d, obj)
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

func (f v2Format) encodeModule(m moduleDef) wire.Value {
	obj := wire.Object{
		"types":  encodeTypeEntries(f.types, m.Types),
		"values": encodeValueEntries(f.values, m.Values),
	}
	if m.Doc != nil {
		obj["doc"] = wire.String(*m.Doc)
	}
	return obj
}

// decodeModuleSpec reads {"doc"?: string|null, "types": [...], "values": [...]}.
func (f v2Format) decodeModuleSpec(d *decoder, v wire.Value) (moduleSpec, error) {
	obj, err := d.objectOptional(v, "module specification", []string{"doc"}, "types", "values")
	if err != nil {
		return moduleSpec{}, err
	}
	doc, err := decodeV2ModuleDoc(d, obj)
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

func (f v2Format) encodeModuleSpec(m moduleSpec) wire.Value {
	obj := encodeSpecEntries(f.types, m)
	if m.Doc != nil {
		obj["doc"] = wire.String(*m.Doc)
	}
	return obj
}

func decodeV2ModuleDoc(d *decoder, obj wire.Object) (*string, error) {
	raw, ok := obj["doc"]
	if !ok {
		return nil, nil
	}
	return at(d, "doc", raw, decodeOptionalDoc)
}
