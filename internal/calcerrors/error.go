package calcerrors

import "fmt"

// NoPos marks an error that cannot be attributed to a source offset.
const NoPos = -1

// Error is the error type produced by every stage of the evaluation pipeline.
type Error struct {
	Kind    ErrorKind
	Pos     int
	Cause   error
	Details string
}

func newError(kind ErrorKind, pos int, cause error, details string) *Error {
	return &Error{Kind: kind, Pos: pos, Cause: cause, Details: details}
}

// Error implements error.
func (e *Error) Error() string {
	details := e.Details
	if details != "" {
		details = " " + details
	}
	where := ""
	if e.Pos != NoPos {
		where = fmt.Sprintf("[col %d] ", e.Pos+1)
	}
	return fmt.Sprintf("%s%s: %v%s", where, e.kindText(), e.Cause, details)
}

func (e *Error) kindText() string {
	if e.Kind == ParseNumberError {
		return "number error"
	}
	return "syntax error"
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrSyntax) and errors.Is(err, ErrParseNumber)
// match on the error kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.Sentinel()
	return s != nil && s == target
}

// chainLink is what errors.Unwrap and errors.Is look for on *Error.
type chainLink interface {
	Unwrap() error
	Is(target error) bool
}

var _ error = (*Error)(nil)
var _ chainLink = (*Error)(nil)
