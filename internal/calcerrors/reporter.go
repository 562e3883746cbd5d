package calcerrors

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

type ErrReporter interface {
	ReportPanic(err error)
	ReportError(err error)
	// ReportSourceError reports err and, when it carries a position, points
	// at the offending column of source. indent is the display width of
	// whatever precedes source on the user's line (e.g. a prompt).
	ReportSourceError(source string, indent int, err error)
}

type errReporter struct {
	w     io.Writer
	fatal *color.Color
	err   *color.Color
	caret *color.Color
}

// NewErrReporter returns a reporter writing to w, colourised when colorize is set.
func NewErrReporter(w io.Writer, colorize bool) *errReporter {
	r := &errReporter{
		w:     w,
		fatal: color.New(color.FgRed, color.Bold),
		err:   color.New(color.FgRed),
		caret: color.New(color.FgYellow, color.Bold),
	}
	if colorize {
		r.fatal.EnableColor()
		r.err.EnableColor()
		r.caret.EnableColor()
	} else {
		r.fatal.DisableColor()
		r.err.DisableColor()
		r.caret.DisableColor()
	}
	return r
}

// ReportPanic implements ErrReporter.
func (e *errReporter) ReportPanic(err error) {
	DefaultReportPanic(e.w, e.fatal.Sprint("FATAL"), err)
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	DefaultReportError(e.w, e.err.Sprint("ERROR"), err)
}

// ReportSourceError implements ErrReporter.
func (e *errReporter) ReportSourceError(source string, indent int, err error) {
	var calcErr *Error
	if errors.As(err, &calcErr) && calcErr.Pos != NoPos {
		col := indent + CaretColumn(source, calcErr.Pos)
		fmt.Fprintf(e.w, "%s%s\n", strings.Repeat(" ", col), e.caret.Sprint("^"))
	}
	e.ReportError(err)
}

// CaretColumn returns the display column of the rune at offset pos in source.
func CaretColumn(source string, pos int) int {
	runes := []rune(source)
	if pos > len(runes) {
		pos = len(runes)
	}
	if pos < 0 {
		pos = 0
	}
	return runewidth.StringWidth(string(runes[:pos]))
}

// DefaultReportPanic is the default implementation of ErrReporter.ReportPanic.
func DefaultReportPanic(w io.Writer, label string, err error) {
	fmt.Fprintf(w, "%s %v\n", label, err)
}

// DefaultReportError is the default implementation of ErrReporter.ReportError.
func DefaultReportError(w io.Writer, label string, err error) {
	fmt.Fprintf(w, "%s %v\n", label, err)
}

var _ ErrReporter = (*errReporter)(nil)
