package interpreter

import (
	"fmt"
	"strconv"
)

type Arity int

func (a Arity) String() string {
	return strconv.Itoa(int(a))
}

// Callable is a math operation over already-resolved operands.
type Callable interface {
	Arity() Arity
	// Call applies the operation. len(arguments) equals Arity().
	Call(arguments []float64) float64
}

// ========  ========  ========  ========  ========  ========  ========

type NativeFunction1 func(x float64) float64
type NativeFunction2 func(left, right float64) float64

// Arity implements Callable.
func (n NativeFunction1) Arity() Arity {
	return 1
}

// Call implements Callable.
func (n NativeFunction1) Call(arguments []float64) float64 {
	return n(arguments[0])
}

// String implements fmt.Stringer.
func (n NativeFunction1) String() string {
	return nativeName(n.Arity())
}

// GoString implements fmt.GoStringer.
func (n NativeFunction1) GoString() string {
	return n.String()
}

// Arity implements Callable.
func (n NativeFunction2) Arity() Arity {
	return 2
}

// Call implements Callable.
func (n NativeFunction2) Call(arguments []float64) float64 {
	return n(arguments[0], arguments[1])
}

// String implements fmt.Stringer.
func (n NativeFunction2) String() string {
	return nativeName(n.Arity())
}

// GoString implements fmt.GoStringer.
func (n NativeFunction2) GoString() string {
	return n.String()
}

var _ Callable = (NativeFunction1)(nil)
var _ fmt.Stringer = (NativeFunction1)(nil)
var _ fmt.GoStringer = (NativeFunction1)(nil)
var _ Callable = (NativeFunction2)(nil)
var _ fmt.Stringer = (NativeFunction2)(nil)
var _ fmt.GoStringer = (NativeFunction2)(nil)

func nativeName(arity Arity) string {
	return "<native fn/" + arity.String() + ">"
}
