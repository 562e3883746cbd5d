package parser

import (
	"strconv"
	"strings"
)

type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

// VisitBinary implements Visitor.
func (p *AstPrinter) VisitBinary(expr *Binary) any {
	return p.parenthesize(expr.Operator.Lexeme(), expr.Left, expr.Right)
}

// VisitCall implements Visitor.
func (p *AstPrinter) VisitCall(expr *Call) any {
	return p.parenthesize(expr.Function.Lexeme(), expr.Argument)
}

// VisitLiteral implements Visitor.
func (p *AstPrinter) VisitLiteral(expr *Literal) any {
	return formatNumber(expr.Value)
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(p.asStr(expr.Accept(p)))
	}
	_, _ = out.WriteString(")")
	return out.String()
}

func (p *AstPrinter) Print(expr Expr) string {
	return p.asStr(expr.Accept(p))
}

func (p *AstPrinter) asStr(v any) string {
	if v == nil {
		return "<nil>"
	}

	return v.(string)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

var _ Visitor = (*AstPrinter)(nil)
