package interpreter

import (
	"strconv"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/token"
)

type Interpreter interface {
	// Interpret evaluates the given operator-ordered stack.
	// Returns the formatted result and an error if any.
	//
	// The stack is consumed.
	Interpret(stack *token.Stack) (string, error)

	// Evaluate reduces the given operator-ordered stack to a single value.
	// Returns the value and an error if any.
	// The error is nil if the expression is valid.
	//
	// The stack is consumed. Safe for concurrent use on distinct stacks.
	Evaluate(stack *token.Stack) (float64, error)

	// Stringify formats a value the way Interpret does.
	Stringify(v float64) string
}

type interpreter struct {
	opts *interpreterOpts
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	return &interpreter{opts: newInterpreterOpts(options...)}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(stack *token.Stack) (string, error) {
	if value, err := i.Evaluate(stack); err != nil {
		return "", err
	} else {
		return i.Stringify(value), nil
	}
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(stack *token.Stack) (float64, error) {
	if top, ok := stack.Peek(); ok && stack.Len() == 1 {
		if n, ok := top.(token.Number); ok {
			stack.Pop()
			return n.Value, nil
		}
	}

	if stack.Empty() {
		return 0, calcerrors.NewRuntimeError(nil, calcerrors.ErrRuntimeEmptyExpression)
	}

	if err := i.reduce(stack, 1); err != nil {
		return 0, err
	}

	if stack.Len() != 1 {
		top, _ := stack.Peek()
		return 0, calcerrors.NewRuntimeError(top, calcerrors.ErrRuntimeTrailingOperands)
	}

	top, _ := stack.Pop()
	return top.(token.Number).Value, nil
}

// Stringify implements Interpreter.
func (i *interpreter) Stringify(v float64) string {
	return strconv.FormatFloat(v, 'g', i.opts.precision, 64)
}

// reduce pops one operator or function off the stack, resolves its operands
// (recursing when an operand is itself an unresolved subexpression) and
// pushes the result back as a Number.
func (i *interpreter) reduce(stack *token.Stack, depth int) error {
	top, ok := stack.Pop()
	if !ok {
		return calcerrors.NewRuntimeError(nil, calcerrors.ErrRuntimeMissingOperand)
	}

	if i.opts.maxDepth > 0 && depth > i.opts.maxDepth {
		return calcerrors.NewRuntimeError(top, calcerrors.ErrRuntimeTooDeep)
	}

	switch op := top.(type) {
	case token.Function:
		fn, ok := StdFunction(op.Kind)
		if !ok {
			return calcerrors.NewRuntimeError(op, calcerrors.ErrRuntimeUnexpectedToken)
		}
		return i.apply(stack, op, fn, depth)
	case token.Operator:
		fn, ok := StdOperator(op.Kind)
		if !ok {
			return calcerrors.NewRuntimeError(op, calcerrors.ErrRuntimeUnexpectedToken)
		}
		return i.apply(stack, op, fn, depth)
	}

	return calcerrors.NewRuntimeError(top, calcerrors.ErrRuntimeUnexpectedToken)
}

// apply resolves fn's operands and pushes the result. Operands are popped
// right to left: for "a b -" the first pop yields b.
func (i *interpreter) apply(stack *token.Stack, op token.Token, fn Callable, depth int) error {
	arity := int(fn.Arity())
	args := make([]float64, arity)
	for n := arity - 1; n >= 0; n-- {
		value, err := i.operand(stack, op, arity, depth)
		if err != nil {
			return err
		}
		args[n] = value
	}

	stack.Push(token.NewNumber(fn.Call(args), op.Offset()))
	return nil
}

func (i *interpreter) operand(stack *token.Stack, op token.Token, arity, depth int) (float64, error) {
	top, ok := stack.Peek()
	if !ok {
		return 0, i.missingOperand(op, arity)
	}

	if _, isNumber := top.(token.Number); !isNumber {
		if err := i.reduce(stack, depth+1); err != nil {
			return 0, err
		}
	}

	top, ok = stack.Pop()
	if !ok {
		return 0, i.missingOperand(op, arity)
	}

	n, ok := top.(token.Number)
	if !ok {
		return 0, calcerrors.NewRuntimeError(top, calcerrors.ErrRuntimeUnexpectedToken)
	}
	return n.Value, nil
}

func (i *interpreter) missingOperand(op token.Token, arity int) error {
	return calcerrors.NewRuntimeError(op, calcerrors.ErrRuntimeOperatorArity(op, arity))
}

var _ Interpreter = (*interpreter)(nil)
