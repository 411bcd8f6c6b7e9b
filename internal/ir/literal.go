package ir

// Literal is a sealed interface over literal constants.
// Only BoolLiteral, CharLiteral, StringLiteral, WholeNumberLiteral,
// FloatLiteral and DecimalLiteral implement it.
type Literal interface {
	literal()
}

type BoolLiteral struct{ Value bool }

type CharLiteral struct{ Value rune }

type StringLiteral struct{ Value string }

type WholeNumberLiteral struct{ Value int64 }

type FloatLiteral struct{ Value float64 }

// DecimalLiteral keeps arbitrary-precision decimals as their text form.
type DecimalLiteral struct{ Value string }

func (BoolLiteral) literal()        {}
func (CharLiteral) literal()        {}
func (StringLiteral) literal()      {}
func (WholeNumberLiteral) literal() {}
func (FloatLiteral) literal()       {}
func (DecimalLiteral) literal()     {}
