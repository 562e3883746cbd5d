// Package solver composes the scanner, the shunting-yard converter and the
// stack evaluator into a single call.
//
// A failure in any stage stops the pipeline; the error is returned together
// with the meaningless value Invalid. Use Kind to classify it.
package solver

import (
	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/interpreter"
	"github.com/leonardinius/gocalc/internal/parser"
	"github.com/leonardinius/gocalc/internal/scanner"
	"github.com/leonardinius/gocalc/internal/token"
)

// Invalid accompanies every error. Callers must not interpret it.
const Invalid = -1.0

const (
	DefaultMaxDepth  = interpreter.DefaultMaxDepth
	DefaultPrecision = interpreter.DefaultPrecision
)

type Solver interface {
	// Evaluate evaluates a free-form arithmetic expression.
	Evaluate(expression string) (float64, error)

	// Solve evaluates the expression and formats the result.
	Solve(expression string) (string, error)

	// Explain returns the intermediate forms of the expression without
	// evaluating it.
	Explain(expression string) (*Explanation, error)

	// Format renders a value with the solver's precision.
	Format(value float64) string
}

type Explanation struct {
	Tokens []token.Token
	// RPN is the operator-ordered stack, bottom first.
	RPN string
	// Tree is the fully parenthesised prefix form.
	Tree string
}

type Option = interpreter.InterpreterOption

// WithMaxDepth caps evaluation depth, see interpreter.WithMaxDepth.
func WithMaxDepth(depth int) Option {
	return interpreter.WithMaxDepth(depth)
}

// WithPrecision sets the significant digits used by Solve.
func WithPrecision(precision int) Option {
	return interpreter.WithPrecision(precision)
}

type solver struct {
	interpreter interpreter.Interpreter
}

// NewSolver returns a Solver. It holds no per-call state and is safe for
// concurrent use.
func NewSolver(options ...Option) Solver {
	return &solver{interpreter: interpreter.NewInterpreter(options...)}
}

var defaultSolver = NewSolver()

// Evaluate evaluates expression with default options.
func Evaluate(expression string) (float64, error) {
	return defaultSolver.Evaluate(expression)
}

// Kind classifies an error returned by a Solver. A nil error is calcerrors.None.
func Kind(err error) calcerrors.ErrorKind {
	return calcerrors.KindOf(err)
}

// Evaluate implements Solver.
func (s *solver) Evaluate(expression string) (float64, error) {
	stack, err := s.convert(expression)
	if err != nil {
		return Invalid, err
	}

	value, err := s.interpreter.Evaluate(stack)
	if err != nil {
		return Invalid, err
	}

	return value, nil
}

// Solve implements Solver.
func (s *solver) Solve(expression string) (string, error) {
	stack, err := s.convert(expression)
	if err != nil {
		return "", err
	}

	return s.interpreter.Interpret(stack)
}

// Format implements Solver.
func (s *solver) Format(value float64) string {
	return s.interpreter.Stringify(value)
}

// Explain implements Solver.
func (s *solver) Explain(expression string) (*Explanation, error) {
	tokens, err := scanner.NewScanner(expression).Scan()
	if err != nil {
		return nil, err
	}

	stack, err := parser.Convert(tokens)
	if err != nil {
		return nil, err
	}

	tree, err := parser.BuildTree(stack)
	if err != nil {
		return nil, err
	}

	return &Explanation{
		Tokens: tokens,
		RPN:    parser.NewRPNPrinter().Print(tree),
		Tree:   parser.NewAstPrinter().Print(tree),
	}, nil
}

func (s *solver) convert(expression string) (*token.Stack, error) {
	tokens, err := scanner.NewScanner(expression).Scan()
	if err != nil {
		return nil, err
	}

	return parser.Convert(tokens)
}

var _ Solver = (*solver)(nil)
