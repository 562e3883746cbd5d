package interpreter

import (
	"math"

	"github.com/leonardinius/gocalc/internal/token"
)

var stdFunctions = map[token.FunctionKind]Callable{
	token.Sin:   NativeFunction1(math.Sin),
	token.Cos:   NativeFunction1(math.Cos),
	token.Tan:   NativeFunction1(math.Tan),
	token.Asin:  NativeFunction1(math.Asin),
	token.Acos:  NativeFunction1(math.Acos),
	token.Atan:  NativeFunction1(math.Atan),
	token.Sqrt:  NativeFunction1(math.Sqrt),
	token.Log:   NativeFunction1(math.Log), // natural log
	token.Floor: NativeFunction1(math.Floor),
}

// Division by zero is not an error; it yields ±Inf or NaN.
var stdOperators = map[token.OperatorKind]Callable{
	token.Add: NativeFunction2(func(left, right float64) float64 { return left + right }),
	token.Sub: NativeFunction2(func(left, right float64) float64 { return left - right }),
	token.Mul: NativeFunction2(func(left, right float64) float64 { return left * right }),
	token.Div: NativeFunction2(func(left, right float64) float64 { return left / right }),
	token.Mod: NativeFunction2(math.Mod),
	token.Pow: NativeFunction2(math.Pow),
}

// StdFunction returns the callable behind a function token.
func StdFunction(kind token.FunctionKind) (Callable, bool) {
	fn, ok := stdFunctions[kind]
	return fn, ok
}

// StdOperator returns the callable behind an operator token.
func StdOperator(kind token.OperatorKind) (Callable, bool) {
	fn, ok := stdOperators[kind]
	return fn, ok
}
