package ir

// Type is a sealed interface over type expressions annotated with A.
type Type[A any] interface {
	typeNode()
	Attributes() A
}

// TypeVariable is a type parameter reference: a.
type TypeVariable[A any] struct {
	Attrs A
	Name  Name
}

// TypeReference is a named type applied to parameters: List Int.
type TypeReference[A any] struct {
	Attrs      A
	FQName     FQName
	Parameters []Type[A]
}

// TupleType is a fixed-arity product: (a, b).
type TupleType[A any] struct {
	Attrs    A
	Elements []Type[A]
}

// RecordType is a closed record: { x : Int }.
type RecordType[A any] struct {
	Attrs  A
	Fields []Field[A]
}

// ExtensibleRecordType is an open record: { r | x : Int }.
type ExtensibleRecordType[A any] struct {
	Attrs    A
	Variable Name
	Fields   []Field[A]
}

// FunctionType is a single-argument function: a -> b.
type FunctionType[A any] struct {
	Attrs    A
	Argument Type[A]
	Result   Type[A]
}

// UnitType is ().
type UnitType[A any] struct {
	Attrs A
}

// Field is one record field.
type Field[A any] struct {
	Name Name
	Type Type[A]
}

func (TypeVariable[A]) typeNode()         {}
func (TypeReference[A]) typeNode()        {}
func (TupleType[A]) typeNode()            {}
func (RecordType[A]) typeNode()           {}
func (ExtensibleRecordType[A]) typeNode() {}
func (FunctionType[A]) typeNode()         {}
func (UnitType[A]) typeNode()             {}

func (t TypeVariable[A]) Attributes() A         { return t.Attrs }
func (t TypeReference[A]) Attributes() A        { return t.Attrs }
func (t TupleType[A]) Attributes() A            { return t.Attrs }
func (t RecordType[A]) Attributes() A           { return t.Attrs }
func (t ExtensibleRecordType[A]) Attributes() A { return t.Attrs }
func (t FunctionType[A]) Attributes() A         { return t.Attrs }
func (t UnitType[A]) Attributes() A             { return t.Attrs }
