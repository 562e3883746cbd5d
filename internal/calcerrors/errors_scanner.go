package calcerrors

import (
	"errors"
	"strconv"
)

var (
	ErrScanUnexpectedCharacter = errors.New("unexpected character")
	ErrScanUnknownFunction     = errors.New("unknown function")
	ErrScanInvalidNumber       = errors.New("invalid number")
)

func NewScanError(pos int, cause error, details string) *Error {
	return newError(SyntaxError, pos, cause, details)
}

// NewNumberError reports a numeric lexeme that strconv refused.
func NewNumberError(pos int, lexeme string, cause error) *Error {
	if cause == nil {
		cause = ErrScanInvalidNumber
	}
	return newError(ParseNumberError, pos, cause, strconv.Quote(lexeme))
}
