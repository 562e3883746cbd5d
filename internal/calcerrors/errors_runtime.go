package calcerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/gocalc/internal/token"
)

var (
	ErrRuntimeEmptyExpression  = errors.New("empty expression")
	ErrRuntimeMissingOperand   = errors.New("missing operand")
	ErrRuntimeUnexpectedToken  = errors.New("unexpected token")
	ErrRuntimeTrailingOperands = errors.New("too many operands")
	ErrRuntimeTooDeep          = errors.New("expression nested too deeply")
)

func ErrRuntimeOperatorArity(tok token.Token, expected int) error {
	return fmt.Errorf("%w: '%s' takes %d", ErrRuntimeMissingOperand, tok, expected)
}

func NewRuntimeError(tok token.Token, cause error) *Error {
	return newError(SyntaxError, offsetOf(tok), cause, "")
}
