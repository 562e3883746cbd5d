package parser

import (
	"fmt"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/token"
)

// Converter reorders an infix token sequence into an operator-ordered
// stack (shunting-yard). The last produced token is on top of the stack.
type Converter interface {
	Convert() (*token.Stack, error)
}

type converter struct {
	tokens     []token.Token
	operators  *token.Stack
	output     *token.Stack
	openParens int
}

func NewConverter(tokens []token.Token) Converter {
	return &converter{tokens: tokens}
}

// Convert is a shorthand for NewConverter(tokens).Convert().
func Convert(tokens []token.Token) (*token.Stack, error) {
	return NewConverter(tokens).Convert()
}

// GoString implements fmt.GoStringer.
func (c *converter) GoString() string {
	return fmt.Sprintf("converter{tokens: %#v, openParens: %d}", c.tokens, c.openParens)
}

// String implements fmt.Stringer.
func (c *converter) String() string {
	return fmt.Sprintf("converter{tokens: %d}", len(c.tokens))
}

// Convert implements Converter.
//
// On error the partially built output is returned with the error.
func (c *converter) Convert() (*token.Stack, error) {
	c.reset()

	for _, tok := range c.tokens {
		if err := c.consume(tok); err != nil {
			return c.output, err
		}
	}

	var unclosed token.Token
	for !c.operators.Empty() {
		top, _ := c.operators.Pop()
		if _, ok := top.(token.OpenParen); ok && unclosed == nil {
			unclosed = top
		}
		c.output.Push(top)
	}

	if c.openParens != 0 {
		return c.output, calcerrors.NewParseError(unclosed, calcerrors.ErrParseExpectedRightParen)
	}

	return c.output, nil
}

func (c *converter) reset() {
	c.operators = token.NewStack()
	c.output = token.NewStack()
	c.openParens = 0
}

func (c *converter) consume(tok token.Token) error {
	switch tok := tok.(type) {
	case token.Number:
		c.output.Push(tok)
	case token.OpenParen:
		c.operators.Push(tok)
		c.openParens++
	case token.CloseParen:
		return c.closeParen(tok)
	case token.Operator, token.Function:
		c.popWhileBinds(tok)
		c.operators.Push(tok)
	default:
		return calcerrors.NewParseError(tok, calcerrors.ErrParseUnexpectedToken)
	}
	return nil
}

func (c *converter) closeParen(tok token.CloseParen) error {
	if c.openParens == 0 {
		return calcerrors.NewParseError(tok, calcerrors.ErrParseUnmatchedRightParen)
	}
	c.openParens--

	for {
		top, ok := c.operators.Pop()
		if !ok {
			return calcerrors.NewParseError(tok, calcerrors.ErrParseUnmatchedRightParen)
		}
		if _, ok := top.(token.OpenParen); ok {
			return nil
		}
		c.output.Push(top)
	}
}

func (c *converter) popWhileBinds(incoming token.Token) {
	for {
		top, ok := c.operators.Peek()
		if !ok {
			return
		}
		if _, ok := top.(token.OpenParen); ok {
			return
		}
		if !bindsBefore(top, incoming) {
			return
		}
		c.operators.Pop()
		c.output.Push(top)
	}
}

// bindsBefore reports whether top, waiting on the operator stack, must be
// emitted before incoming is pushed.
//
// Functions sit outside the precedence table: a pending function is always
// emitted before the next operator, and an incoming function never forces
// anything out.
func bindsBefore(top, incoming token.Token) bool {
	in, ok := incoming.(token.Operator)
	if !ok {
		return false
	}

	switch top := top.(type) {
	case token.Function:
		return true
	case token.Operator:
		if top.Precedence() > in.Precedence() {
			return true
		}
		return top.Precedence() == in.Precedence() && in.LeftAssociative()
	}
	return false
}

var _ Converter = (*converter)(nil)
