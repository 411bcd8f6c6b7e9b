package query

import (
	"strings"

	"github.com/roach88/morphir-ir/internal/ir"
)

// TypeString renders a type expression in source-like notation, e.g.
// "List (Maybe a) -> { amount : Float }". References print their local
// name only.
func TypeString[A any](t ir.Type[A]) string {
	var b strings.Builder
	writeType(&b, t, precTop)
	return b.String()
}

// Signature renders a value definition as "input : Type -> ... -> Output".
func Signature[TA, VA any](def ir.ValueDefinition[TA, VA]) string {
	var b strings.Builder
	for _, in := range def.InputTypes {
		b.WriteString(in.Name.Camel())
		b.WriteString(" : ")
		writeType(&b, in.Type, precArrow)
		b.WriteString(" -> ")
	}
	writeType(&b, def.OutputType, precTop)
	return b.String()
}

// SpecSignature renders a value specification like Signature.
func SpecSignature[A any](spec ir.ValueSpecification[A]) string {
	var b strings.Builder
	for _, in := range spec.Inputs {
		b.WriteString(in.Name.Camel())
		b.WriteString(" : ")
		writeType(&b, in.Type, precArrow)
		b.WriteString(" -> ")
	}
	writeType(&b, spec.Output, precTop)
	return b.String()
}

// Binding contexts, loosest first. A function type needs parentheses left
// of an arrow; an applied reference needs them as another type's argument.
const (
	precTop = iota
	precArrow
	precArg
)

func writeType[A any](b *strings.Builder, t ir.Type[A], prec int) {
	switch t := t.(type) {
	case ir.TypeVariable[A]:
		b.WriteString(t.Name.Camel())
	case ir.TypeReference[A]:
		if prec == precArg && len(t.Parameters) > 0 {
			b.WriteByte('(')
			defer b.WriteByte(')')
		}
		b.WriteString(t.FQName.Local.Title())
		for _, p := range t.Parameters {
			b.WriteByte(' ')
			writeType(b, p, precArg)
		}
	case ir.TupleType[A]:
		b.WriteString("( ")
		for i, e := range t.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			writeType(b, e, precTop)
		}
		b.WriteString(" )")
	case ir.RecordType[A]:
		writeFields(b, "", t.Fields)
	case ir.ExtensibleRecordType[A]:
		writeFields(b, t.Variable.Camel(), t.Fields)
	case ir.FunctionType[A]:
		if prec > precTop {
			b.WriteByte('(')
			defer b.WriteByte(')')
		}
		writeType(b, t.Argument, precArrow)
		b.WriteString(" -> ")
		writeType(b, t.Result, precTop)
	case ir.UnitType[A]:
		b.WriteString("()")
	}
}

func writeFields[A any](b *strings.Builder, variable string, fields []ir.Field[A]) {
	if len(fields) == 0 && variable == "" {
		b.WriteString("{}")
		return
	}
	b.WriteString("{ ")
	if variable != "" {
		b.WriteString(variable)
		b.WriteString(" | ")
	}
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name.Camel())
		b.WriteString(" : ")
		writeType(b, f.Type, precTop)
	}
	b.WriteString(" }")
}

// ConstructorString renders a constructor with its argument types, e.g.
// "Other String".
func ConstructorString[A any](name ir.Name, args []ir.ConstructorArg[A]) string {
	var b strings.Builder
	b.WriteString(name.Title())
	for _, arg := range args {
		b.WriteByte(' ')
		writeType(&b, arg.Type, precArg)
	}
	return b.String()
}
