package calcerrors

import (
	"errors"
	"strconv"
)

// ErrorKind classifies a failed evaluation. None means success.
type ErrorKind int

const (
	None ErrorKind = iota
	SyntaxError
	ParseNumberError
)

var (
	ErrSyntax      = errors.New("syntax error")
	ErrParseNumber = errors.New("parse number error")
)

func (k ErrorKind) String() string {
	switch k {
	case None:
		return "None"
	case SyntaxError:
		return "SyntaxError"
	case ParseNumberError:
		return "ParseNumberError"
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Sentinel returns the sentinel error matching the kind, nil for None.
func (k ErrorKind) Sentinel() error {
	switch k {
	case SyntaxError:
		return ErrSyntax
	case ParseNumberError:
		return ErrParseNumber
	}
	return nil
}

// KindOf reports the kind of err. A nil error is None; errors that did not
// come out of the evaluation pipeline are reported as SyntaxError.
func KindOf(err error) ErrorKind {
	if err == nil {
		return None
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, ErrParseNumber) {
		return ParseNumberError
	}
	return SyntaxError
}
