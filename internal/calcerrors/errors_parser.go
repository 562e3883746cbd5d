package calcerrors

import (
	"errors"

	"github.com/leonardinius/gocalc/internal/token"
)

var (
	ErrParseUnmatchedRightParen = errors.New("unmatched ')'")
	ErrParseExpectedRightParen  = errors.New("expected ')' before end of expression")
	ErrParseUnexpectedToken     = errors.New("unexpected token")
)

func NewParseError(tok token.Token, cause error) *Error {
	return newError(SyntaxError, offsetOf(tok), cause, "")
}

func offsetOf(tok token.Token) int {
	if tok == nil {
		return NoPos
	}
	return tok.Offset()
}
