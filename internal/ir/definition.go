package ir

// TypeDefinition is a sealed interface over type definitions inside a
// module: aliases and custom (union) types.
type TypeDefinition[A any] interface {
	typeDefinition()
	TypeParams() []Name
}

type TypeAliasDefinition[A any] struct {
	Params []Name
	Type   Type[A]
}

// CustomTypeDefinition carries constructors that may be hidden even when the
// type itself is public (opaque types).
type CustomTypeDefinition[A any] struct {
	Params       []Name
	Constructors AccessControlled[Constructors[A]]
}

func (TypeAliasDefinition[A]) typeDefinition()  {}
func (CustomTypeDefinition[A]) typeDefinition() {}

func (d TypeAliasDefinition[A]) TypeParams() []Name  { return d.Params }
func (d CustomTypeDefinition[A]) TypeParams() []Name { return d.Params }

// Constructors maps constructor names to their ordered arguments.
type Constructors[A any] = Entries[Name, []ConstructorArg[A]]

// ConstructorArg is one named constructor argument.
type ConstructorArg[A any] struct {
	Name Name
	Type Type[A]
}

// ValueDefinition is a top-level or let-bound value with its signature.
type ValueDefinition[TA, VA any] struct {
	InputTypes []InputType[TA, VA]
	OutputType Type[TA]
	Body       Value[TA, VA]
}

// InputType is one argument of a value definition.
type InputType[TA, VA any] struct {
	Name  Name
	Attrs VA
	Type  Type[TA]
}

// TypeSpecification is a sealed interface over the public interface of a
// type as seen by dependent packages.
type TypeSpecification[A any] interface {
	typeSpecification()
	TypeParams() []Name
}

type TypeAliasSpecification[A any] struct {
	Params []Name
	Type   Type[A]
}

// OpaqueTypeSpecification exposes a type without its structure.
type OpaqueTypeSpecification[A any] struct {
	Params []Name
}

type CustomTypeSpecification[A any] struct {
	Params       []Name
	Constructors Constructors[A]
}

// DerivedTypeSpecification is a type backed by a base type plus
// conversion functions.
type DerivedTypeSpecification[A any] struct {
	Params []Name
	Config DerivedTypeConfig[A]
}

type DerivedTypeConfig[A any] struct {
	BaseType     Type[A]
	FromBaseType FQName
	ToBaseType   FQName
}

func (TypeAliasSpecification[A]) typeSpecification()   {}
func (OpaqueTypeSpecification[A]) typeSpecification()  {}
func (CustomTypeSpecification[A]) typeSpecification()  {}
func (DerivedTypeSpecification[A]) typeSpecification() {}

func (s TypeAliasSpecification[A]) TypeParams() []Name   { return s.Params }
func (s OpaqueTypeSpecification[A]) TypeParams() []Name  { return s.Params }
func (s CustomTypeSpecification[A]) TypeParams() []Name  { return s.Params }
func (s DerivedTypeSpecification[A]) TypeParams() []Name { return s.Params }

// ValueSpecification is the signature of a value.
type ValueSpecification[A any] struct {
	Inputs []SpecInput[A]
	Output Type[A]
}

type SpecInput[A any] struct {
	Name Name
	Type Type[A]
}
