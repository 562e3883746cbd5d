package parser_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/parser"
	"github.com/leonardinius/gocalc/internal/scanner"
	"github.com/leonardinius/gocalc/internal/token"
)

func convert(t *testing.T, input string) (*token.Stack, error) {
	t.Helper()
	tokens, err := scanner.NewScanner(input).Scan()
	require.NoError(t, err)
	return parser.Convert(tokens)
}

func TestConvert(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected string
	}{
		{"precedence", "2 + 3 * 4", "2 3 4 * +"},
		{"parentheses override precedence", "(2 + 3) * 4", "2 3 + 4 *"},
		{"power is right associative", "2 ^ 3 ^ 2", "2 3 2 ^ ^"},
		{"minus is left associative", "10 - 4 - 3", "10 4 - 3 -"},
		{"slash is left associative", "8 / 4 / 2", "8 4 / 2 /"},
		{"modulo shares precedence with star", "10 % 3 * 2", "10 3 % 2 *"},
		{"power over star", "2 * 3 ^ 2", "2 3 2 ^ *"},
		{"function then operator", "sqrt(16) + 1", "16 sqrt 1 +"},
		{"operator then function", "2 * sin(0)", "2 0 sin *"},
		{"nested functions", "sin(cos(0))", "0 cos sin"},
		{"function binds tighter than power", "sqrt(16)^2", "16 sqrt 2 ^"},
		{"function argument expression", "floor(3.7 * 2)", "3.7 2 * floor"},
		{"leading negative literal", "-5 + 3", "-5 3 +"},
		{"single number", "42", "42"},
		{"nested groups", "((1 + 2) * (3 - 4))", "1 2 + 3 4 - *"},
		{"empty", "", ""},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(tt *testing.T) {
			stack, err := convert(tt, tc.input)
			require.NoError(tt, err)
			assert.Equal(tt, tc.expected, stack.String())
		})
	}
}

func TestConvertErrors(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name  string
		input string
		err   string
		cause error
	}{
		{"unbalanced open", "(2 + 3", "[col 1] syntax error: expected ')' before end of expression", calcerrors.ErrParseExpectedRightParen},
		{"innermost unclosed", "((1)", "[col 1] syntax error: expected ')' before end of expression", calcerrors.ErrParseExpectedRightParen},
		{"unmatched close", "2 + 3)", "[col 6] syntax error: unmatched ')'", calcerrors.ErrParseUnmatchedRightParen},
		{"extra close", "(1))", "[col 4] syntax error: unmatched ')'", calcerrors.ErrParseUnmatchedRightParen},
		{"close first", ")(", "[col 1] syntax error: unmatched ')'", calcerrors.ErrParseUnmatchedRightParen},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(tt *testing.T) {
			_, err := convert(tt, tc.input)
			assert.EqualError(tt, err, tc.err)
			assert.ErrorIs(tt, err, tc.cause)
			assert.ErrorIs(tt, err, calcerrors.ErrSyntax)
		})
	}
}

func TestConvertDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	tokens := []token.Token{
		token.NewNumber(1, 0),
		token.NewOperator(token.Add, 2),
		token.NewNumber(2, 4),
	}
	snapshot := append([]token.Token(nil), tokens...)

	c := parser.NewConverter(tokens)
	first, err := c.Convert()
	require.NoError(t, err)
	second, err := c.Convert()
	require.NoError(t, err)

	assert.Equal(t, snapshot, tokens)
	assert.Equal(t, first.Slice(), second.Slice())
}

func TestConverterDebugStrings(t *testing.T) {
	t.Parallel()

	c := parser.NewConverter([]token.Token{
		token.OpenParen{Pos: 0},
		token.NewNumber(1, 1),
	})

	assert.Equal(t, "converter{tokens: 2}", fmt.Sprint(c))

	_, err := c.Convert()
	require.Error(t, err)
	assert.Equal(t, `converter{tokens: []token.Token{{Type: LEFT_PAREN, Lexeme: "(", Pos: 0}, {Type: NUMBER, Lexeme: "1", Pos: 1}}, openParens: 1}`,
		fmt.Sprintf("%#v", c))
}
