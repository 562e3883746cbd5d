package token

import "strconv"

type OperatorKind int

const (
	Add OperatorKind = iota
	Sub
	Mul
	Div
	Mod
	Pow
)

type operatorInfo struct {
	symbol          rune
	precedence      int
	leftAssociative bool
}

var operatorTable = [...]operatorInfo{
	Add: {'+', 1, true},
	Sub: {'-', 1, true},
	Mul: {'*', 2, true},
	Div: {'/', 2, true},
	Mod: {'%', 2, true},
	Pow: {'^', 3, false},
}

var operatorSymbols = map[rune]OperatorKind{
	'+': Add,
	'-': Sub,
	'*': Mul,
	'/': Div,
	'%': Mod,
	'^': Pow,
}

// LookupOperator maps an operator symbol to its kind.
func LookupOperator(symbol rune) (OperatorKind, bool) {
	kind, ok := operatorSymbols[symbol]
	return kind, ok
}

func (k OperatorKind) valid() bool {
	return k >= 0 && int(k) < len(operatorTable)
}

// Precedence returns the binding power of the operator; higher binds tighter.
func (k OperatorKind) Precedence() int {
	if !k.valid() {
		return 0
	}
	return operatorTable[k].precedence
}

func (k OperatorKind) LeftAssociative() bool {
	if !k.valid() {
		return true
	}
	return operatorTable[k].leftAssociative
}

func (k OperatorKind) String() string {
	if !k.valid() {
		return "OperatorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return string(operatorTable[k].symbol)
}

type FunctionKind int

const (
	Sin FunctionKind = iota
	Cos
	Tan
	Asin
	Acos
	Atan
	Sqrt
	Log
	Floor
)

var functionNames = [...]string{
	Sin:   "sin",
	Cos:   "cos",
	Tan:   "tan",
	Asin:  "asin",
	Acos:  "acos",
	Atan:  "atan",
	Sqrt:  "sqrt",
	Log:   "log",
	Floor: "floor",
}

var reservedFunctions = func() map[string]FunctionKind {
	m := make(map[string]FunctionKind, len(functionNames))
	for kind, name := range functionNames {
		m[name] = FunctionKind(kind)
	}
	return m
}()

// LookupFunction maps a case-folded identifier to a function kind.
func LookupFunction(name string) (FunctionKind, bool) {
	kind, ok := reservedFunctions[name]
	return kind, ok
}

// Functions returns the reserved function names keyed by kind.
func Functions() map[string]FunctionKind {
	m := make(map[string]FunctionKind, len(reservedFunctions))
	for name, kind := range reservedFunctions {
		m[name] = kind
	}
	return m
}

func (k FunctionKind) String() string {
	if k < 0 || int(k) >= len(functionNames) {
		return "FunctionKind(" + strconv.Itoa(int(k)) + ")"
	}
	return functionNames[k]
}
