package parser

import (
	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/token"
)

// Visitor is the interface that wraps the Visit methods.
//
// Visit is called for every node in the tree.
type Visitor interface {
	VisitBinary(expr *Binary) any
	VisitCall(expr *Call) any
	VisitLiteral(expr *Literal) any
}

type Expr interface {
	Accept(v Visitor) any
}

type Binary struct {
	Left     Expr
	Operator token.Operator
	Right    Expr
}

var _ Expr = (*Binary)(nil)

func (e *Binary) Accept(v Visitor) any {
	return v.VisitBinary(e)
}

type Call struct {
	Function token.Function
	Argument Expr
}

var _ Expr = (*Call)(nil)

func (e *Call) Accept(v Visitor) any {
	return v.VisitCall(e)
}

type Literal struct {
	Value float64
}

var _ Expr = (*Literal)(nil)

func (e *Literal) Accept(v Visitor) any {
	return v.VisitLiteral(e)
}

// BuildTree rebuilds the expression tree encoded by an operator-ordered
// stack. The stack is left untouched.
func BuildTree(stack *token.Stack) (Expr, error) {
	s := stack.Clone()
	if s.Empty() {
		return nil, calcerrors.NewRuntimeError(nil, calcerrors.ErrRuntimeEmptyExpression)
	}

	expr, err := buildNode(s, nil)
	if err != nil {
		return nil, err
	}
	if !s.Empty() {
		top, _ := s.Peek()
		return nil, calcerrors.NewRuntimeError(top, calcerrors.ErrRuntimeTrailingOperands)
	}
	return expr, nil
}

func buildNode(s *token.Stack, parent token.Token) (Expr, error) {
	top, ok := s.Pop()
	if !ok {
		return nil, calcerrors.NewRuntimeError(parent, calcerrors.ErrRuntimeMissingOperand)
	}

	switch top := top.(type) {
	case token.Number:
		return &Literal{Value: top.Value}, nil
	case token.Function:
		arg, err := buildNode(s, top)
		if err != nil {
			return nil, err
		}
		return &Call{Function: top, Argument: arg}, nil
	case token.Operator:
		right, err := buildNode(s, top)
		if err != nil {
			return nil, err
		}
		left, err := buildNode(s, top)
		if err != nil {
			return nil, err
		}
		return &Binary{Left: left, Operator: top, Right: right}, nil
	}

	return nil, calcerrors.NewRuntimeError(top, calcerrors.ErrRuntimeUnexpectedToken)
}
