package scanner

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/token"
)

// Scanner splits an expression into tokens.
type Scanner interface {
	Scan() ([]token.Token, error)
}

type scanner struct {
	source         []rune
	tokens         []token.Token
	start, current int
	err            error
	fold           cases.Caser
}

// NewScanner returns a new Scanner.
func NewScanner(input string) Scanner {
	return &scanner{source: []rune(input), start: 0, current: 0, fold: cases.Fold()}
}

// Scan implements Scanner.
//
// Scanning stops at the first error; the tokens read up to that point are
// returned alongside it.
func (s *scanner) Scan() ([]token.Token, error) {
	for !s.isDone() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.scanToken()
	}

	return s.tokens, s.err
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) hasErr() bool {
	return s.err != nil
}

func (s *scanner) isDone() bool {
	return s.isAtEnd() || s.hasErr()
}

func (s *scanner) scanToken() {
	var c = s.advance()

	switch {
	case c == ',' || unicode.IsSpace(c):
		// Ignore whitespace and separators.
	case c == '(':
		s.addToken(token.OpenParen{Pos: s.start})
	case c == ')':
		s.addToken(token.CloseParen{Pos: s.start})
	case c == '-' && s.signAllowed():
		s.signedNumber()
	case s.isDigit(c) || c == '.':
		s.number()
	case s.isAlpha(c):
		s.function()
	default:
		if kind, ok := token.LookupOperator(c); ok {
			s.addToken(token.NewOperator(kind, s.start))
		} else {
			s.reportUnexpectedCharacter(c)
		}
	}
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *scanner) advance() rune {
	s.current++
	return s.source[s.current-1]
}

func (s *scanner) addToken(t token.Token) {
	s.tokens = append(s.tokens, t)
}

func (s *scanner) lexeme() string {
	return string(s.source[s.start:s.current])
}

// signAllowed reports whether a '-' at s.start belongs to a numeric literal:
// only at the very start of the input or right after '('.
func (s *scanner) signAllowed() bool {
	return s.start == 0 || s.source[s.start-1] == '('
}

func (s *scanner) signedNumber() {
	if c := s.peek(); !s.isDigit(c) && c != '.' {
		s.addToken(token.NewOperator(token.Sub, s.start))
		return
	}

	s.advance()
	s.number()
}

// number consumes digits and at most one decimal point. A second point ends
// the literal and starts the next one.
func (s *scanner) number() {
	seenDot := s.source[s.current-1] == '.'

	for {
		c := s.peek()
		if s.isDigit(c) {
			s.advance()
		} else if c == '.' && !seenDot {
			seenDot = true
			s.advance()
		} else {
			break
		}
	}

	svalue := s.lexeme()
	value, err := strconv.ParseFloat(svalue, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		s.reportNumberError(svalue, fmt.Errorf("%w: %w", calcerrors.ErrScanInvalidNumber, err))
		return
	}
	s.addToken(token.NewNumber(value, s.start))
}

func (s *scanner) function() {
	for s.isAlpha(s.peek()) {
		s.advance()
	}

	name := s.lexeme()
	kind, ok := token.LookupFunction(s.fold.String(name))
	if !ok {
		s.err = calcerrors.NewScanError(s.start, calcerrors.ErrScanUnknownFunction, strconv.Quote(name))
		return
	}
	s.addToken(token.NewFunction(kind, s.start))
}

func (s *scanner) isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) isAlpha(c rune) bool {
	return unicode.IsLetter(c)
}

func (s *scanner) reportUnexpectedCharacter(c rune) {
	s.err = calcerrors.NewScanError(s.start, calcerrors.ErrScanUnexpectedCharacter, strconv.QuoteRune(c))
}

func (s *scanner) reportNumberError(lexeme string, err error) {
	s.err = calcerrors.NewNumberError(s.start, lexeme, err)
}

var _ Scanner = (*scanner)(nil)
