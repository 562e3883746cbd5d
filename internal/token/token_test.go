package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leonardinius/gocalc/internal/token"
)

func TestTokenStrings(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		tok      token.Token
		str      string
		goString string
	}{
		{token.NewNumber(3.5, 0), "3.5", `{Type: NUMBER, Lexeme: "3.5", Pos: 0}`},
		{token.NewNumber(-2, 1), "-2", `{Type: NUMBER, Lexeme: "-2", Pos: 1}`},
		{token.NewOperator(token.Pow, 2), "^", `{Type: OPERATOR, Lexeme: "^", Pos: 2}`},
		{token.NewFunction(token.Floor, 3), "floor", `{Type: FUNCTION, Lexeme: "floor", Pos: 3}`},
		{token.OpenParen{Pos: 4}, "(", `{Type: LEFT_PAREN, Lexeme: "(", Pos: 4}`},
		{token.CloseParen{Pos: 5}, ")", `{Type: RIGHT_PAREN, Lexeme: ")", Pos: 5}`},
	}

	for _, tc := range testcases {
		assert.Equal(t, tc.str, tc.tok.String())
		assert.Equal(t, tc.goString, tc.tok.GoString())
	}
}

func TestOperatorTable(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		symbol     rune
		kind       token.OperatorKind
		precedence int
		left       bool
	}{
		{'+', token.Add, 1, true},
		{'-', token.Sub, 1, true},
		{'*', token.Mul, 2, true},
		{'/', token.Div, 2, true},
		{'%', token.Mod, 2, true},
		{'^', token.Pow, 3, false},
	}

	for _, tc := range testcases {
		kind, ok := token.LookupOperator(tc.symbol)
		assert.True(t, ok)
		assert.Equal(t, tc.kind, kind)

		op := token.NewOperator(kind, 0)
		assert.Equal(t, tc.precedence, op.Precedence(), string(tc.symbol))
		assert.Equal(t, tc.left, op.LeftAssociative(), string(tc.symbol))
		assert.Equal(t, string(tc.symbol), kind.String())
	}

	_, ok := token.LookupOperator('&')
	assert.False(t, ok)
	assert.Equal(t, "OperatorKind(42)", token.OperatorKind(42).String())
}

func TestFunctionTable(t *testing.T) {
	t.Parallel()

	functions := token.Functions()
	assert.Len(t, functions, 9)
	for name, kind := range functions {
		assert.Equal(t, name, kind.String())
		found, ok := token.LookupFunction(name)
		assert.True(t, ok)
		assert.Equal(t, kind, found)
	}

	_, ok := token.LookupFunction("SIN")
	assert.False(t, ok, "lookup expects case-folded names")
}

func TestStack(t *testing.T) {
	t.Parallel()

	var s token.Stack
	assert.True(t, s.Empty())
	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)

	s.Push(token.NewNumber(1, 0))
	s.Push(token.NewNumber(2, 2))
	s.Push(token.NewOperator(token.Add, 1))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "1 2 +", s.String())

	clone := s.Clone()
	top, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, token.NewOperator(token.Add, 1), top)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, clone.Len())

	slice := clone.Slice()
	slice[0] = token.NewNumber(9, 0)
	assert.Equal(t, "1 2 +", clone.String())
}
