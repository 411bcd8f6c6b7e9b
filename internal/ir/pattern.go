package ir

// Pattern is a sealed interface over destructuring patterns annotated with A.
type Pattern[A any] interface {
	patternNode()
	Attributes() A
}

// WildcardPattern matches anything: _.
type WildcardPattern[A any] struct {
	Attrs A
}

// AsPattern binds the matched value to a name: p as x.
type AsPattern[A any] struct {
	Attrs   A
	Pattern Pattern[A]
	Name    Name
}

type TuplePattern[A any] struct {
	Attrs    A
	Elements []Pattern[A]
}

type ConstructorPattern[A any] struct {
	Attrs     A
	FQName    FQName
	Arguments []Pattern[A]
}

// EmptyListPattern matches [].
type EmptyListPattern[A any] struct {
	Attrs A
}

// HeadTailPattern matches h :: t.
type HeadTailPattern[A any] struct {
	Attrs A
	Head  Pattern[A]
	Tail  Pattern[A]
}

type LiteralPattern[A any] struct {
	Attrs   A
	Literal Literal
}

type UnitPattern[A any] struct {
	Attrs A
}

func (WildcardPattern[A]) patternNode()    {}
func (AsPattern[A]) patternNode()          {}
func (TuplePattern[A]) patternNode()       {}
func (ConstructorPattern[A]) patternNode() {}
func (EmptyListPattern[A]) patternNode()   {}
func (HeadTailPattern[A]) patternNode()    {}
func (LiteralPattern[A]) patternNode()     {}
func (UnitPattern[A]) patternNode()        {}

func (p WildcardPattern[A]) Attributes() A    { return p.Attrs }
func (p AsPattern[A]) Attributes() A          { return p.Attrs }
func (p TuplePattern[A]) Attributes() A       { return p.Attrs }
func (p ConstructorPattern[A]) Attributes() A { return p.Attrs }
func (p EmptyListPattern[A]) Attributes() A   { return p.Attrs }
func (p HeadTailPattern[A]) Attributes() A    { return p.Attrs }
func (p LiteralPattern[A]) Attributes() A     { return p.Attrs }
func (p UnitPattern[A]) Attributes() A        { return p.Attrs }
