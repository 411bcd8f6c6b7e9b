package ir

// Value is a sealed interface over value expressions. Nodes carry VA;
// type annotations embedded in let definitions carry TA.
type Value[TA, VA any] interface {
	valueNode()
	Attributes() VA
}

type LiteralValue[TA, VA any] struct {
	Attrs   VA
	Literal Literal
}

// ConstructorValue references a custom type constructor.
type ConstructorValue[TA, VA any] struct {
	Attrs  VA
	FQName FQName
}

type TupleValue[TA, VA any] struct {
	Attrs    VA
	Elements []Value[TA, VA]
}

type ListValue[TA, VA any] struct {
	Attrs    VA
	Elements []Value[TA, VA]
}

type RecordValue[TA, VA any] struct {
	Attrs  VA
	Fields []NamedValue[TA, VA]
}

// VariableValue references a local binding.
type VariableValue[TA, VA any] struct {
	Attrs VA
	Name  Name
}

// ReferenceValue references a top-level value by fully-qualified name.
type ReferenceValue[TA, VA any] struct {
	Attrs  VA
	FQName FQName
}

// FieldValue is record.field.
type FieldValue[TA, VA any] struct {
	Attrs   VA
	Subject Value[TA, VA]
	Field   Name
}

// FieldFunctionValue is .field.
type FieldFunctionValue[TA, VA any] struct {
	Attrs VA
	Field Name
}

type ApplyValue[TA, VA any] struct {
	Attrs    VA
	Function Value[TA, VA]
	Argument Value[TA, VA]
}

type LambdaValue[TA, VA any] struct {
	Attrs    VA
	Argument Pattern[VA]
	Body     Value[TA, VA]
}

// LetDefinitionValue is let name = definition in body.
type LetDefinitionValue[TA, VA any] struct {
	Attrs      VA
	Name       Name
	Definition ValueDefinition[TA, VA]
	In         Value[TA, VA]
}

// LetRecursionValue binds mutually recursive definitions.
type LetRecursionValue[TA, VA any] struct {
	Attrs       VA
	Definitions []NamedDefinition[TA, VA]
	In          Value[TA, VA]
}

// DestructureValue is let pattern = value in body.
type DestructureValue[TA, VA any] struct {
	Attrs   VA
	Pattern Pattern[VA]
	Value   Value[TA, VA]
	In      Value[TA, VA]
}

type IfThenElseValue[TA, VA any] struct {
	Attrs     VA
	Condition Value[TA, VA]
	Then      Value[TA, VA]
	Else      Value[TA, VA]
}

type PatternMatchValue[TA, VA any] struct {
	Attrs   VA
	Subject Value[TA, VA]
	Cases   []Case[TA, VA]
}

// UpdateRecordValue is { record | field = value }.
type UpdateRecordValue[TA, VA any] struct {
	Attrs   VA
	Record  Value[TA, VA]
	Updates []NamedValue[TA, VA]
}

type UnitValue[TA, VA any] struct {
	Attrs VA
}

// NamedValue is a record field or record update.
type NamedValue[TA, VA any] struct {
	Name  Name
	Value Value[TA, VA]
}

// NamedDefinition is one binding of a let-rec.
type NamedDefinition[TA, VA any] struct {
	Name       Name
	Definition ValueDefinition[TA, VA]
}

// Case is one arm of a pattern match.
type Case[TA, VA any] struct {
	Pattern Pattern[VA]
	Body    Value[TA, VA]
}

func (LiteralValue[TA, VA]) valueNode()       {}
func (ConstructorValue[TA, VA]) valueNode()   {}
func (TupleValue[TA, VA]) valueNode()         {}
func (ListValue[TA, VA]) valueNode()          {}
func (RecordValue[TA, VA]) valueNode()        {}
func (VariableValue[TA, VA]) valueNode()      {}
func (ReferenceValue[TA, VA]) valueNode()     {}
func (FieldValue[TA, VA]) valueNode()         {}
func (FieldFunctionValue[TA, VA]) valueNode() {}
func (ApplyValue[TA, VA]) valueNode()         {}
func (LambdaValue[TA, VA]) valueNode()        {}
func (LetDefinitionValue[TA, VA]) valueNode() {}
func (LetRecursionValue[TA, VA]) valueNode()  {}
func (DestructureValue[TA, VA]) valueNode()   {}
func (IfThenElseValue[TA, VA]) valueNode()    {}
func (PatternMatchValue[TA, VA]) valueNode()  {}
func (UpdateRecordValue[TA, VA]) valueNode()  {}
func (UnitValue[TA, VA]) valueNode()          {}

func (v LiteralValue[TA, VA]) Attributes() VA       { return v.Attrs }
func (v ConstructorValue[TA, VA]) Attributes() VA   { return v.Attrs }
func (v TupleValue[TA, VA]) Attributes() VA         { return v.Attrs }
func (v ListValue[TA, VA]) Attributes() VA          { return v.Attrs }
func (v RecordValue[TA, VA]) Attributes() VA        { return v.Attrs }
func (v VariableValue[TA, VA]) Attributes() VA      { return v.Attrs }
func (v ReferenceValue[TA, VA]) Attributes() VA     { return v.Attrs }
func (v FieldValue[TA, VA]) Attributes() VA         { return v.Attrs }
func (v FieldFunctionValue[TA, VA]) Attributes() VA { return v.Attrs }
func (v ApplyValue[TA, VA]) Attributes() VA         { return v.Attrs }
func (v LambdaValue[TA, VA]) Attributes() VA        { return v.Attrs }
func (v LetDefinitionValue[TA, VA]) Attributes() VA { return v.Attrs }
func (v LetRecursionValue[TA, VA]) Attributes() VA  { return v.Attrs }
func (v DestructureValue[TA, VA]) Attributes() VA   { return v.Attrs }
func (v IfThenElseValue[TA, VA]) Attributes() VA    { return v.Attrs }
func (v PatternMatchValue[TA, VA]) Attributes() VA  { return v.Attrs }
func (v UpdateRecordValue[TA, VA]) Attributes() VA  { return v.Attrs }
func (v UnitValue[TA, VA]) Attributes() VA          { return v.Attrs }
