package query

import (
	"errors"
	"fmt"

	"github.com/roach88/morphir-ir/internal/ir"
)

// Kind identifies what a Node holds.
type Kind int

const (
	KindModule Kind = iota + 1
	KindTypeDefinition
	KindValueDefinition
	KindType
	KindPattern
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindTypeDefinition:
		return "type definition"
	case KindValueDefinition:
		return "value definition"
	case KindType:
		return "type"
	case KindPattern:
		return "pattern"
	case KindValue:
		return "value"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type (
	Type    = ir.Type[ir.Attributes]
	Pattern = ir.Pattern[ir.Attributes]
	Value   = ir.Value[ir.Attributes, ir.Attributes]
)

// Node is one stop of a Walk. Exactly the field matching Kind is set.
// Let-bound definitions inside values are reported as KindValueDefinition
// nodes under the member that contains them.
type Node struct {
	Kind Kind
	// Module is the enclosing module.
	Module ir.Path
	// Member is the enclosing top-level type or value. Empty for modules.
	Member ir.Name
	// Depth is 0 for modules and grows by one per level.
	Depth int

	ModuleDefinition *Module
	TypeDefinition   TypeDefinition
	ValueDefinition  *ValueDefinition
	Type             Type
	Pattern          Pattern
	Value            Value
}

// SkipChildren can be returned by a WalkFunc to skip the node's children.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every node. Returning SkipChildren prunes the
// subtree; any other error stops the walk and is returned by Walk.
type WalkFunc func(n Node) error

// Walk visits the package definition of d in pre-order, children in
// declaration order.
func Walk(d ir.Distribution, fn WalkFunc) error {
	modules := Modules(d)
	stack := make([]Node, 0, 64)
	items := modules.Items()
	for i := len(items) - 1; i >= 0; i-- {
		m := items[i].Value.Value
		stack = append(stack, Node{Kind: KindModule, Module: items[i].Key, ModuleDefinition: &m})
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack[len(stack)-1] = Node{}
		stack = stack[:len(stack)-1]

		if err := fn(n); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}
		stack = pushChildren(stack, n)
	}
	return nil
}

// pushChildren appends the children of n in reverse so they pop in order.
func pushChildren(stack []Node, n Node) []Node {
	kids := children(n)
	for i := len(kids) - 1; i >= 0; i-- {
		stack = append(stack, kids[i])
	}
	return stack
}

func children(n Node) []Node {
	var out []Node
	child := func(c Node) {
		c.Module = n.Module
		if c.Member.IsEmpty() {
			c.Member = n.Member
		}
		c.Depth = n.Depth + 1
		out = append(out, c)
	}
	types := func(ts ...Type) {
		for _, t := range ts {
			child(Node{Kind: KindType, Type: t})
		}
	}
	patterns := func(ps ...Pattern) {
		for _, p := range ps {
			child(Node{Kind: KindPattern, Pattern: p})
		}
	}
	values := func(vs ...Value) {
		for _, v := range vs {
			child(Node{Kind: KindValue, Value: v})
		}
	}
	definition := func(def ValueDefinition) {
		child(Node{Kind: KindValueDefinition, ValueDefinition: &def})
	}

	switch n.Kind {
	case KindModule:
		for name, e := range n.ModuleDefinition.Types.All() {
			child(Node{Kind: KindTypeDefinition, Member: name, TypeDefinition: e.Value.Value})
		}
		for name, e := range n.ModuleDefinition.Values.All() {
			def := e.Value.Value
			child(Node{Kind: KindValueDefinition, Member: name, ValueDefinition: &def})
		}

	case KindTypeDefinition:
		switch def := n.TypeDefinition.(type) {
		case ir.TypeAliasDefinition[ir.Attributes]:
			types(def.Type)
		case ir.CustomTypeDefinition[ir.Attributes]:
			for _, args := range def.Constructors.Value.All() {
				for _, arg := range args {
					types(arg.Type)
				}
			}
		}

	case KindValueDefinition:
		def := n.ValueDefinition
		for _, in := range def.InputTypes {
			types(in.Type)
		}
		types(def.OutputType)
		values(def.Body)

	case KindType:
		switch t := n.Type.(type) {
		case ir.TypeReference[ir.Attributes]:
			types(t.Parameters...)
		case ir.TupleType[ir.Attributes]:
			types(t.Elements...)
		case ir.RecordType[ir.Attributes]:
			for _, f := range t.Fields {
				types(f.Type)
			}
		case ir.ExtensibleRecordType[ir.Attributes]:
			for _, f := range t.Fields {
				types(f.Type)
			}
		case ir.FunctionType[ir.Attributes]:
			types(t.Argument, t.Result)
		}

	case KindPattern:
		switch p := n.Pattern.(type) {
		case ir.AsPattern[ir.Attributes]:
			patterns(p.Pattern)
		case ir.TuplePattern[ir.Attributes]:
			patterns(p.Elements...)
		case ir.ConstructorPattern[ir.Attributes]:
			patterns(p.Arguments...)
		case ir.HeadTailPattern[ir.Attributes]:
			patterns(p.Head, p.Tail)
		}

	case KindValue:
		switch v := n.Value.(type) {
		case ir.TupleValue[ir.Attributes, ir.Attributes]:
			values(v.Elements...)
		case ir.ListValue[ir.Attributes, ir.Attributes]:
			values(v.Elements...)
		case ir.RecordValue[ir.Attributes, ir.Attributes]:
			for _, f := range v.Fields {
				values(f.Value)
			}
		case ir.FieldValue[ir.Attributes, ir.Attributes]:
			values(v.Subject)
		case ir.ApplyValue[ir.Attributes, ir.Attributes]:
			values(v.Function, v.Argument)
		case ir.LambdaValue[ir.Attributes, ir.Attributes]:
			patterns(v.Argument)
			values(v.Body)
		case ir.LetDefinitionValue[ir.Attributes, ir.Attributes]:
			definition(v.Definition)
			values(v.In)
		case ir.LetRecursionValue[ir.Attributes, ir.Attributes]:
			for _, nd := range v.Definitions {
				definition(nd.Definition)
			}
			values(v.In)
		case ir.DestructureValue[ir.Attributes, ir.Attributes]:
			patterns(v.Pattern)
			values(v.Value, v.In)
		case ir.IfThenElseValue[ir.Attributes, ir.Attributes]:
			values(v.Condition, v.Then, v.Else)
		case ir.PatternMatchValue[ir.Attributes, ir.Attributes]:
			values(v.Subject)
			for _, c := range v.Cases {
				patterns(c.Pattern)
				values(c.Body)
			}
		case ir.UpdateRecordValue[ir.Attributes, ir.Attributes]:
			values(v.Record)
			for _, u := range v.Updates {
				values(u.Value)
			}
		}
	}
	return out
}
