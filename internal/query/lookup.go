package query

import (
	"github.com/roach88/morphir-ir/internal/ir"
)

type (
	// Module is a module definition with opaque attributes.
	Module = ir.ModuleDefinition[ir.Attributes, ir.Attributes]
	// TypeDefinition is a type definition with opaque attributes.
	TypeDefinition = ir.TypeDefinition[ir.Attributes]
	// ValueDefinition is a value definition with opaque attributes.
	ValueDefinition = ir.ValueDefinition[ir.Attributes, ir.Attributes]

	TypeEntry  = ir.AccessControlled[ir.Documented[TypeDefinition]]
	ValueEntry = ir.AccessControlled[ir.Documented[ValueDefinition]]
)

// Modules returns the package definition's modules in declaration order.
func Modules(d ir.Distribution) ir.Entries[ir.Path, ir.AccessControlled[Module]] {
	return asLibrary(d).Definition.Modules
}

// ModuleNames returns the module paths of the package definition in
// declaration order.
func ModuleNames(d ir.Distribution) []ir.Path {
	return Modules(d).Keys()
}

// FindModule finds a module by exact path. Prefixes do not match.
func FindModule(d ir.Distribution, p ir.Path) (Module, bool) {
	m, ok := Modules(d).Get(p)
	if !ok {
		return Module{}, false
	}
	return m.Value, true
}

// FindModuleByName parses s as a path ("Finance.Rates", "finance.rates")
// and looks it up. Unparseable input finds nothing.
func FindModuleByName(d ir.Distribution, s string) (Module, bool) {
	p, err := ir.ParsePath(s)
	if err != nil {
		return Module{}, false
	}
	return FindModule(d, p)
}

// ModuleAccess returns the visibility of the module at p.
func ModuleAccess(d ir.Distribution, p ir.Path) (ir.Access, bool) {
	m, ok := Modules(d).Get(p)
	if !ok {
		return 0, false
	}
	return m.Access, true
}

// ModuleDoc returns the doc of the module at p. Modules without a doc
// report false.
func ModuleDoc(d ir.Distribution, p ir.Path) (string, bool) {
	m, ok := FindModule(d, p)
	if !ok || m.Doc == nil {
		return "", false
	}
	return *m.Doc, true
}

// FindTypeEntry looks up a type by name, comparing title-case renderings.
func FindTypeEntry(m Module, name string) (TypeEntry, bool) {
	return lookup(m.Types, name, ir.Name.Title)
}

// FindValueEntry looks up a value by name, comparing camel-case renderings.
func FindValueEntry(m Module, name string) (ValueEntry, bool) {
	return lookup(m.Values, name, ir.Name.Camel)
}

// FindType returns the definition of the named type.
func FindType(m Module, name string) (TypeDefinition, bool) {
	e, ok := FindTypeEntry(m, name)
	if !ok {
		return nil, false
	}
	return e.Value.Value, true
}

// FindValue returns the definition of the named value.
func FindValue(m Module, name string) (ValueDefinition, bool) {
	e, ok := FindValueEntry(m, name)
	if !ok {
		return ValueDefinition{}, false
	}
	return e.Value.Value, true
}

func HasType(m Module, name string) bool {
	_, ok := FindTypeEntry(m, name)
	return ok
}

func HasValue(m Module, name string) bool {
	_, ok := FindValueEntry(m, name)
	return ok
}

// TypeAccess returns the visibility of the named type.
func TypeAccess(m Module, name string) (ir.Access, bool) {
	e, ok := FindTypeEntry(m, name)
	return e.Access, ok
}

// ValueAccess returns the visibility of the named value.
func ValueAccess(m Module, name string) (ir.Access, bool) {
	e, ok := FindValueEntry(m, name)
	return e.Access, ok
}

// TypeDoc returns the doc of the named type. An undocumented type reports
// "" and true.
func TypeDoc(m Module, name string) (string, bool) {
	e, ok := FindTypeEntry(m, name)
	return e.Value.Doc, ok
}

// ValueDoc returns the doc of the named value.
func ValueDoc(m Module, name string) (string, bool) {
	e, ok := FindValueEntry(m, name)
	return e.Value.Doc, ok
}

// DependencyNames returns the packages the distribution depends on in
// declaration order.
func DependencyNames(d ir.Distribution) []ir.Path {
	return asLibrary(d).Dependencies.Keys()
}

// FindDependencyModule finds a module specification among the
// dependencies, returning the package that provides it.
func FindDependencyModule(d ir.Distribution, p ir.Path) (ir.ModuleSpecification[ir.Attributes], ir.Path, bool) {
	lib := asLibrary(d)
	for pkg, spec := range lib.Dependencies.All() {
		if m, ok := spec.Modules.Get(p); ok {
			return m, pkg, true
		}
	}
	return ir.ModuleSpecification[ir.Attributes]{}, ir.Path{}, false
}

// lookup tries the canonical key first, then falls back to comparing
// renderings so names stored with unusual segmentation still match.
func lookup[V any](entries ir.Entries[ir.Name, V], name string, render func(ir.Name) string) (V, bool) {
	var zero V
	query, err := ir.ParseName(name)
	if err != nil {
		return zero, false
	}
	if v, ok := entries.Get(query); ok {
		return v, true
	}
	want := render(query)
	for key, v := range entries.All() {
		if render(key) == want {
			return v, true
		}
	}
	return zero, false
}

func asLibrary(d ir.Distribution) ir.Library {
	return ir.VisitDistribution[ir.Library](d, ir.DistributionFunc[ir.Library](func(l ir.Library) ir.Library { return l }))
}
