package calcerrors_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/token"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	syntax := calcerrors.NewParseError(token.CloseParen{Pos: 4}, calcerrors.ErrParseUnmatchedRightParen)
	number := calcerrors.NewNumberError(0, ".", nil)

	assert.Equal(t, calcerrors.None, calcerrors.KindOf(nil))
	assert.Equal(t, calcerrors.SyntaxError, calcerrors.KindOf(syntax))
	assert.Equal(t, calcerrors.ParseNumberError, calcerrors.KindOf(number))
	assert.Equal(t, calcerrors.SyntaxError, calcerrors.KindOf(fmt.Errorf("wrapped: %w", syntax)))
	assert.Equal(t, calcerrors.ParseNumberError, calcerrors.KindOf(fmt.Errorf("wrapped: %w", number)))
	assert.Equal(t, calcerrors.SyntaxError, calcerrors.KindOf(errors.New("foreign")))

	assert.Equal(t, "None", calcerrors.None.String())
	assert.Equal(t, "SyntaxError", calcerrors.SyntaxError.String())
	assert.Equal(t, "ParseNumberError", calcerrors.ParseNumberError.String())
	assert.Equal(t, "ErrorKind(7)", calcerrors.ErrorKind(7).String())
	assert.Nil(t, calcerrors.None.Sentinel())
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	assert.EqualError(t,
		calcerrors.NewParseError(token.CloseParen{Pos: 4}, calcerrors.ErrParseUnmatchedRightParen),
		"[col 5] syntax error: unmatched ')'")
	assert.EqualError(t,
		calcerrors.NewRuntimeError(nil, calcerrors.ErrRuntimeEmptyExpression),
		"syntax error: empty expression")
	assert.EqualError(t,
		calcerrors.NewNumberError(2, "-.", nil),
		`[col 3] number error: invalid number "-."`)

	err := calcerrors.NewRuntimeError(token.NewOperator(token.Mul, 0),
		calcerrors.ErrRuntimeOperatorArity(token.NewOperator(token.Mul, 0), 2))
	assert.EqualError(t, err, "[col 1] syntax error: missing operand: '*' takes 2")
	assert.ErrorIs(t, err, calcerrors.ErrRuntimeMissingOperand)
	assert.ErrorIs(t, err, calcerrors.ErrSyntax)
	assert.NotErrorIs(t, err, calcerrors.ErrParseNumber)
}

func TestReporter(t *testing.T) {
	t.Parallel()

	out := new(strings.Builder)
	r := calcerrors.NewErrReporter(out, false)

	err := calcerrors.NewScanError(2, calcerrors.ErrScanUnexpectedCharacter, "'&'")
	r.ReportSourceError("2 & 3", 2, err)
	assert.Equal(t, "    ^\nERROR [col 3] syntax error: unexpected character '&'\n", out.String())

	out.Reset()
	r.ReportSourceError("", 2, calcerrors.NewRuntimeError(nil, calcerrors.ErrRuntimeEmptyExpression))
	assert.Equal(t, "ERROR syntax error: empty expression\n", out.String())

	out.Reset()
	r.ReportPanic(errors.New("boom"))
	assert.Equal(t, "FATAL boom\n", out.String())
}

func TestCaretColumn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, calcerrors.CaretColumn("abc", 0))
	assert.Equal(t, 2, calcerrors.CaretColumn("abc", 2))
	assert.Equal(t, 3, calcerrors.CaretColumn("abc", 10))
	// wide runes take two cells
	assert.Equal(t, 4, calcerrors.CaretColumn("文字+1", 2))
}
