package parser

import "strings"

// RPNPrinter renders a tree in postfix order: operands first, then the
// operator or function that consumes them.
type RPNPrinter struct {
	parts []string
}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

// VisitBinary implements Visitor.
func (p *RPNPrinter) VisitBinary(expr *Binary) any {
	expr.Left.Accept(p)
	expr.Right.Accept(p)
	p.parts = append(p.parts, expr.Operator.Lexeme())
	return nil
}

// VisitCall implements Visitor.
func (p *RPNPrinter) VisitCall(expr *Call) any {
	expr.Argument.Accept(p)
	p.parts = append(p.parts, expr.Function.Lexeme())
	return nil
}

// VisitLiteral implements Visitor.
func (p *RPNPrinter) VisitLiteral(expr *Literal) any {
	p.parts = append(p.parts, formatNumber(expr.Value))
	return nil
}

// Print returns the postfix form of expr. It matches token.Stack.String
// for the stack the tree was built from.
func (p *RPNPrinter) Print(expr Expr) string {
	p.parts = p.parts[:0]
	expr.Accept(p)
	return strings.Join(p.parts, " ")
}

var _ Visitor = (*RPNPrinter)(nil)
