package codec

import (
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/wire"
)

type (
	moduleDef   = ir.ModuleDefinition[ir.Attributes, ir.Attributes]
	moduleSpec  = ir.ModuleSpecification[ir.Attributes]
	packageDef  = ir.PackageDefinition[ir.Attributes, ir.Attributes]
	packageSpec = ir.PackageSpecification[ir.Attributes]

	typeEntry  = ir.AccessControlled[ir.Documented[ir.TypeDefinition[ir.Attributes]]]
	valueEntry = ir.AccessControlled[ir.Documented[ir.ValueDefinition[ir.Attributes, ir.Attributes]]]
)

// format is one wire version of the distribution payload.
type format interface {
	version() ir.FormatVersion
	decodeDistribution(d *decoder, v wire.Value) (ir.Distribution, error)
	encodeDistribution(dist ir.Distribution) wire.Value
}

// moduleFormat holds the module-level rules that differ between versions.
// The library skeleton around them is shared.
type moduleFormat interface {
	decodeModule(d *decoder, v wire.Value) (moduleDef, error)
	encodeModule(m moduleDef) wire.Value
	decodeModuleSpec(d *decoder, v wire.Value) (moduleSpec, error)
	encodeModuleSpec(m moduleSpec) wire.Value
}

// decodeLibrary reads ["Library", packagePath, dependencies, packageDefinition].
func decodeLibrary(d *decoder, mf moduleFormat, v wire.Value) (ir.Distribution, error) {
	tag, arr, err := d.node(v, "distribution")
	if err != nil {
		return nil, err
	}
	if tag != "Library" {
		return nil, d.fail(`distribution tag "Library"`, arr[0])
	}
	if err := d.arity(tag, arr, 4); err != nil {
		return nil, err
	}

	pkg, err := at(d, "packageName", arr[1], decodePath)
	if err != nil {
		return nil, err
	}
	deps, err := at(d, "dependencies", arr[2], func(d *decoder, v wire.Value) (ir.Entries[ir.Path, packageSpec], error) {
		return decodeEntries(d, v, decodePath, func(d *decoder, v wire.Value) (packageSpec, error) {
			return decodePackageSpec(d, mf, v)
		})
	})
	if err != nil {
		return nil, err
	}
	def, err := at(d, "packageDefinition", arr[3], func(d *decoder, v wire.Value) (packageDef, error) {
		return decodePackageDef(d, mf, v)
	})
	if err != nil {
		return nil, err
	}
	return ir.Library{Package: pkg, Dependencies: deps, Definition: def}, nil
}

// decodePackageDef reads {"modules": [[modulePath, {"access": ..., "value": module}]]}.
func decodePackageDef(d *decoder, mf moduleFormat, v wire.Value) (packageDef, error) {
	obj, err := d.object(v, "package definition", "modules")
	if err != nil {
		return packageDef{}, err
	}
	d.push("modules")
	defer d.pop()
	modules, err := decodeEntries(d, obj["modules"], decodePath, func(d *decoder, v wire.Value) (ir.AccessControlled[moduleDef], error) {
		return decodeAccessControlled(d, v, mf.decodeModule)
	})
	if err != nil {
		return packageDef{}, err
	}
	return packageDef{Modules: modules}, nil
}

// decodePackageSpec reads {"modules": [[modulePath, moduleSpec]]}.
func decodePackageSpec(d *decoder, mf moduleFormat, v wire.Value) (packageSpec, error) {
	obj, err := d.object(v, "package specification", "modules")
	if err != nil {
		return packageSpec{}, err
	}
	d.push("modules")
	defer d.pop()
	modules, err := decodeEntries(d, obj["modules"], decodePath, mf.decodeModuleSpec)
	if err != nil {
		return packageSpec{}, err
	}
	return packageSpec{Modules: modules}, nil
}

// libraryEncoder writes a Library payload through a version's module rules.
type libraryEncoder struct {
	mf moduleFormat
}

func (e libraryEncoder) VisitLibrary(lib ir.Library) wire.Value {
	deps := encodeEntries(lib.Dependencies, encodePath, func(spec packageSpec) wire.Value {
		return wire.Object{"modules": encodeEntries(spec.Modules, encodePath, e.mf.encodeModuleSpec)}
	})
	modules := encodeEntries(lib.Definition.Modules, encodePath, func(m ir.AccessControlled[moduleDef]) wire.Value {
		return encodeAccessControlled(m, e.mf.encodeModule)
	})
	return wire.Array{
		wire.String("Library"),
		encodePath(lib.Package),
		deps,
		wire.Object{"modules": modules},
	}
}

// decodeTypeEntries reads [[name, {"access": ..., "value": {"doc": ..., "value": typeDefinition}}]].
// The shape is the same in every supported version.
func decodeTypeEntries(d *decoder, types typeCodec[ir.Attributes], v wire.Value) (ir.Entries[ir.Name, typeEntry], error) {
	return decodeEntries(d, v, decodeName, func(d *decoder, v wire.Value) (typeEntry, error) {
		return decodeAccessControlled(d, v, func(d *decoder, v wire.Value) (ir.Documented[ir.TypeDefinition[ir.Attributes]], error) {
			return decodeDocumented(d, v, types.decodeDefinition)
		})
	})
}

func encodeTypeEntries(types typeCodec[ir.Attributes], entries ir.Entries[ir.Name, typeEntry]) wire.Value {
	return encodeEntries(entries, encodeName, func(e typeEntry) wire.Value {
		return encodeAccessControlled(e, func(doc ir.Documented[ir.TypeDefinition[ir.Attributes]]) wire.Value {
			return encodeDocumented(doc, types.encodeDefinition)
		})
	})
}

// decodeValueEntries reads [[name, {"access": ..., "value": {"doc": ..., "value": valueDefinition}}]].
// The shape is the same in every supported version.
func decodeValueEntries(d *decoder, values valueCodec[ir.Attributes, ir.Attributes], v wire.Value) (ir.Entries[ir.Name, valueEntry], error) {
	return decodeEntries(d, v, decodeName, func(d *decoder, v wire.Value) (valueEntry, error) {
		return decodeAccessControlled(d, v, func(d *decoder, v wire.Value) (ir.Documented[ir.ValueDefinition[ir.Attributes, ir.Attributes]], error) {
			return decodeDocumented(d, v, values.decodeDefinition)
		})
	})
}

func encodeValueEntries(values valueCodec[ir.Attributes, ir.Attributes], entries ir.Entries[ir.Name, valueEntry]) wire.Value {
	return encodeEntries(entries, encodeName, func(e valueEntry) wire.Value {
		return encodeAccessControlled(e, func(doc ir.Documented[ir.ValueDefinition[ir.Attributes, ir.Attributes]]) wire.Value {
			return encodeDocumented(doc, values.encodeDefinition)
		})
	})
}

// decodeSpecEntries reads the documented types and values of a module specification.
func decodeSpecEntries(d *decoder, types typeCodec[ir.Attributes], obj wire.Object) (moduleSpec, error) {
	specTypes, err := at(d, "types", obj["types"], func(d *decoder, v wire.Value) (ir.Entries[ir.Name, ir.Documented[ir.TypeSpecification[ir.Attributes]]], error) {
		return decodeEntries(d, v, decodeName, func(d *decoder, v wire.Value) (ir.Documented[ir.TypeSpecification[ir.Attributes]], error) {
			return decodeDocumented(d, v, types.decodeSpecification)
		})
	})
	if err != nil {
		return moduleSpec{}, err
	}
	specValues, err := at(d, "values", obj["values"], func(d *decoder, v wire.Value) (ir.Entries[ir.Name, ir.Documented[ir.ValueSpecification[ir.Attributes]]], error) {
		return decodeEntries(d, v, decodeName, func(d *decoder, v wire.Value) (ir.Documented[ir.ValueSpecification[ir.Attributes]], error) {
			return decodeDocumented(d, v, types.decodeValueSpecification)
		})
	})
	if err != nil {
		return moduleSpec{}, err
	}
	return moduleSpec{Types: specTypes, Values: specValues}, nil
}

func encodeSpecEntries(types typeCodec[ir.Attributes], spec moduleSpec) wire.Object {
	return wire.Object{
		"types": encodeEntries(spec.Types, encodeName, func(doc ir.Documented[ir.TypeSpecification[ir.Attributes]]) wire.Value {
			return encodeDocumented(doc, types.encodeSpecification)
		}),
		"values": encodeEntries(spec.Values, encodeName, func(doc ir.Documented[ir.ValueSpecification[ir.Attributes]]) wire.Value {
			return encodeDocumented(doc, types.encodeValueSpecification)
		}),
	}
}
