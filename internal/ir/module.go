package ir

// ModuleDefinition holds a module's types and values, both keyed by Name
// in declaration order. Doc is nil when the module has no doc entry.
type ModuleDefinition[TA, VA any] struct {
	Types  Entries[Name, AccessControlled[Documented[TypeDefinition[TA]]]]
	Values Entries[Name, AccessControlled[Documented[ValueDefinition[TA, VA]]]]
	Doc    *string
}

// ModuleSpecification is the public interface of a module.
type ModuleSpecification[A any] struct {
	Types  Entries[Name, Documented[TypeSpecification[A]]]
	Values Entries[Name, Documented[ValueSpecification[A]]]
	Doc    *string
}

// PackageDefinition maps module paths to their definitions.
type PackageDefinition[TA, VA any] struct {
	Modules Entries[Path, AccessControlled[ModuleDefinition[TA, VA]]]
}

// PackageSpecification maps module paths to their public interfaces.
type PackageSpecification[A any] struct {
	Modules Entries[Path, ModuleSpecification[A]]
}
