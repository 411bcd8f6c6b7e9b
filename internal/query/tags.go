package query

import (
	"github.com/roach88/morphir-ir/internal/ir"
)

// TypeTag returns the wire tag of a type node.
func TypeTag[A any](t ir.Type[A]) string {
	switch t.(type) {
	case ir.TypeVariable[A]:
		return "Variable"
	case ir.TypeReference[A]:
		return "Reference"
	case ir.TupleType[A]:
		return "Tuple"
	case ir.RecordType[A]:
		return "Record"
	case ir.ExtensibleRecordType[A]:
		return "ExtensibleRecord"
	case ir.FunctionType[A]:
		return "Function"
	case ir.UnitType[A]:
		return "Unit"
	default:
		return "Unknown"
	}
}

// PatternTag returns the wire tag of a pattern node.
func PatternTag[A any](p ir.Pattern[A]) string {
	switch p.(type) {
	case ir.WildcardPattern[A]:
		return "WildcardPattern"
	case ir.AsPattern[A]:
		return "AsPattern"
	case ir.TuplePattern[A]:
		return "TuplePattern"
	case ir.ConstructorPattern[A]:
		return "ConstructorPattern"
	case ir.EmptyListPattern[A]:
		return "EmptyListPattern"
	case ir.HeadTailPattern[A]:
		return "HeadTailPattern"
	case ir.LiteralPattern[A]:
		return "LiteralPattern"
	case ir.UnitPattern[A]:
		return "UnitPattern"
	default:
		return "Unknown"
	}
}

// ValueTag returns the wire tag of a value node.
func ValueTag[TA, VA any](v ir.Value[TA, VA]) string {
	switch v.(type) {
	case ir.LiteralValue[TA, VA]:
		return "Literal"
	case ir.ConstructorValue[TA, VA]:
		return "Constructor"
	case ir.TupleValue[TA, VA]:
		return "Tuple"
	case ir.ListValue[TA, VA]:
		return "List"
	case ir.RecordValue[TA, VA]:
		return "Record"
	case ir.VariableValue[TA, VA]:
		return "Variable"
	case ir.ReferenceValue[TA, VA]:
		return "Reference"
	case ir.FieldValue[TA, VA]:
		return "Field"
	case ir.FieldFunctionValue[TA, VA]:
		return "FieldFunction"
	case ir.ApplyValue[TA, VA]:
		return "Apply"
	case ir.LambdaValue[TA, VA]:
		return "Lambda"
	case ir.LetDefinitionValue[TA, VA]:
		return "LetDefinition"
	case ir.LetRecursionValue[TA, VA]:
		return "LetRecursion"
	case ir.DestructureValue[TA, VA]:
		return "Destructure"
	case ir.IfThenElseValue[TA, VA]:
		return "IfThenElse"
	case ir.PatternMatchValue[TA, VA]:
		return "PatternMatch"
	case ir.UpdateRecordValue[TA, VA]:
		return "UpdateRecord"
	case ir.UnitValue[TA, VA]:
		return "Unit"
	default:
		return "Unknown"
	}
}
