package codec

import (
	"github.com/roach88/morphir-ir/internal/wire"
)

// ModuleHashes hashes each [path, module] entry of an encoded Library's
// package definition, in declaration order. A module's hash changes only
// when its own encoding does.
func ModuleHashes(doc wire.Value) ([]string, error) {
	d := newDecoder(buildOptions(nil))
	obj, err := d.object(doc, "document", "formatVersion", "distribution")
	if err != nil {
		return nil, err
	}
	d.push("distribution")
	tag, arr, err := d.node(obj["distribution"], "distribution")
	if err != nil {
		return nil, err
	}
	if tag != "Library" {
		return nil, d.fail(`distribution tag "Library"`, arr[0])
	}
	if err := d.arity(tag, arr, 4); err != nil {
		return nil, err
	}
	d.push("packageDefinition")
	def, err := d.object(arr[3], "package definition", "modules")
	if err != nil {
		return nil, err
	}
	d.push("modules")
	modules, err := d.array(def["modules"], "module list")
	if err != nil {
		return nil, err
	}

	hashes := make([]string, len(modules))
	for i, entry := range modules {
		h, err := wire.Hash(wire.DomainModule, entry)
		if err != nil {
			return nil, err
		}
		hashes[i] = h
	}
	return hashes, nil
}
