package token

import (
	"fmt"
	"strconv"
)

// TokenType names the shape of a Token.
type TokenType int

const (
	NUMBER TokenType = iota
	OPERATOR
	FUNCTION
	LEFT_PAREN
	RIGHT_PAREN
)

var tokenTypeNames = [...]string{
	NUMBER:      "NUMBER",
	OPERATOR:    "OPERATOR",
	FUNCTION:    "FUNCTION",
	LEFT_PAREN:  "LEFT_PAREN",
	RIGHT_PAREN: "RIGHT_PAREN",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return "TokenType(" + strconv.Itoa(int(t)) + ")"
	}
	return tokenTypeNames[t]
}

// Token represents a lexical token.
//
// The set of implementations is closed: Number, Operator, Function,
// OpenParen and CloseParen. Use a type switch to tell them apart.
type Token interface {
	Type() TokenType
	Lexeme() string
	// Offset is the rune offset of the token in the scanned source.
	Offset() int

	fmt.Stringer
	fmt.GoStringer

	sealed()
}

// Number is a numeric literal. Value is always finite.
type Number struct {
	Value float64
	Pos   int
}

// Operator is a binary operator.
type Operator struct {
	Kind OperatorKind
	Pos  int
}

// Function is a unary math function applied to a parenthesised argument.
type Function struct {
	Kind FunctionKind
	Pos  int
}

type OpenParen struct {
	Pos int
}

type CloseParen struct {
	Pos int
}

func NewNumber(value float64, pos int) Number {
	return Number{Value: value, Pos: pos}
}

func NewOperator(kind OperatorKind, pos int) Operator {
	return Operator{Kind: kind, Pos: pos}
}

func NewFunction(kind FunctionKind, pos int) Function {
	return Function{Kind: kind, Pos: pos}
}

func (Number) Type() TokenType     { return NUMBER }
func (Operator) Type() TokenType   { return OPERATOR }
func (Function) Type() TokenType   { return FUNCTION }
func (OpenParen) Type() TokenType  { return LEFT_PAREN }
func (CloseParen) Type() TokenType { return RIGHT_PAREN }

func (n Number) Lexeme() string     { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (o Operator) Lexeme() string   { return o.Kind.String() }
func (f Function) Lexeme() string   { return f.Kind.String() }
func (OpenParen) Lexeme() string    { return "(" }
func (CloseParen) Lexeme() string   { return ")" }
func (n Number) Offset() int        { return n.Pos }
func (o Operator) Offset() int      { return o.Pos }
func (f Function) Offset() int      { return f.Pos }
func (p OpenParen) Offset() int     { return p.Pos }
func (p CloseParen) Offset() int    { return p.Pos }
func (n Number) String() string     { return n.Lexeme() }
func (o Operator) String() string   { return o.Lexeme() }
func (f Function) String() string   { return f.Lexeme() }
func (p OpenParen) String() string  { return p.Lexeme() }
func (p CloseParen) String() string { return p.Lexeme() }

// GoString implements fmt.GoStringer.
func (n Number) GoString() string { return goString(n) }

// GoString implements fmt.GoStringer.
func (o Operator) GoString() string { return goString(o) }

// GoString implements fmt.GoStringer.
func (f Function) GoString() string { return goString(f) }

// GoString implements fmt.GoStringer.
func (p OpenParen) GoString() string { return goString(p) }

// GoString implements fmt.GoStringer.
func (p CloseParen) GoString() string { return goString(p) }

func (Number) sealed()     {}
func (Operator) sealed()   {}
func (Function) sealed()   {}
func (OpenParen) sealed()  {}
func (CloseParen) sealed() {}

// Precedence reports the binding power of the operator.
func (o Operator) Precedence() int {
	return o.Kind.Precedence()
}

// LeftAssociative reports whether equal-precedence chains group left to right.
func (o Operator) LeftAssociative() bool {
	return o.Kind.LeftAssociative()
}

func goString(t Token) string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Pos: %d}", t.Type(), t.Lexeme(), t.Offset())
}

var (
	_ Token = Number{}
	_ Token = Operator{}
	_ Token = Function{}
	_ Token = OpenParen{}
	_ Token = CloseParen{}
)
