package rpn

import (
	"math"
	"math/big"
	"strconv"
)

// Func is one of the unary functions understood in expressions.
type Func uint8

const (
	FuncNone Func = iota
	FuncExp
	FuncLn
	FuncSqr
	FuncSqrt
	FuncCos
	FuncSin
	FuncTan
	FuncAcos
	FuncAsin
	FuncAtan
	FuncRound

	numFuncs
)

var funcnames = [numFuncs]string{
	FuncNone:  "",
	FuncExp:   "exp",
	FuncLn:    "ln",
	FuncSqr:   "sqr",
	FuncSqrt:  "sqrt",
	FuncCos:   "cos",
	FuncSin:   "sin",
	FuncTan:   "tan",
	FuncAcos:  "acos",
	FuncAsin:  "asin",
	FuncAtan:  "atan",
	FuncRound: "round",
}

var funcsbyname = func() map[string]Func {
	m := make(map[string]Func, numFuncs-1)
	for f := FuncExp; f < numFuncs; f++ {
		m[funcnames[f]] = f
	}
	return m
}()

// LookupFunc returns the function with the given name. Names are
// case-sensitive. The result is FuncNone if there is no such function.
func LookupFunc(name string) Func {
	return funcsbyname[name]
}

// Funcs returns the names of all functions in declaration order.
func Funcs() []string {
	r := make([]string, 0, numFuncs-1)
	for f := FuncExp; f < numFuncs; f++ {
		r = append(r, funcnames[f])
	}
	return r
}

func isFunc(s string) bool {
	return funcsbyname[s] != FuncNone
}

func (f Func) String() string {
	if f >= numFuncs {
		return "Func(" + strconv.Itoa(int(f)) + ")"
	}
	return funcnames[f]
}

// Apply evaluates f at x. Arguments outside the domain of f produce NaN or an
// infinity, never a panic.
func (f Func) Apply(x float64) float64 {
	switch f {
	case FuncExp:
		return math.Exp(x)
	case FuncLn:
		return math.Log(x)
	case FuncSqr:
		return x * x
	case FuncSqrt:
		return math.Sqrt(x)
	case FuncCos:
		return math.Cos(x)
	case FuncSin:
		return math.Sin(x)
	case FuncTan:
		return math.Tan(x)
	case FuncAcos:
		return math.Acos(x)
	case FuncAsin:
		return math.Asin(x)
	case FuncAtan:
		return math.Atan(x)
	case FuncRound:
		return round(x)
	default:
		panic("rpn: apply of invalid function " + f.String())
	}
}

// round rounds half up, so round(-2.5) is -2. Comparing against the floor
// rather than adding 0.5 first keeps 0.49999999999999994 from rounding to 1.
func round(x float64) float64 {
	fl := math.Floor(x)
	if x-fl >= 0.5 {
		return fl + 1
	}
	return fl
}

// Op is a binary arithmetic operator.
type Op uint8

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// LookupOp returns the operator spelled by s, or OpNone.
func LookupOp(s string) Op {
	switch s {
	case "+":
		return OpAdd
	case "-":
		return OpSub
	case "*":
		return OpMul
	case "/":
		return OpDiv
	default:
		return OpNone
	}
}

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "Op(" + strconv.Itoa(int(o)) + ")"
	}
}

// Prec returns the binding strength of the operator. All operators are left
// associative.
func (o Op) Prec() int {
	switch o {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	default:
		return 0
	}
}

// Apply computes a o b. The only failure is division by exactly zero, which
// is reported with ok false.
func (o Op) Apply(a, b float64) (r float64, ok bool) {
	switch o {
	case OpAdd:
		return a + b, true
	case OpSub:
		return a - b, true
	case OpMul:
		return a * b, true
	case OpDiv:
		if b == 0 {
			return 0, false
		}
		return a / b, true
	default:
		panic("rpn: apply of invalid operator " + o.String())
	}
}

// prec gives the precedence of a stacked token for the shunting-yard
// comparison. Brackets and functions have precedence 0, so an operator never
// pops them.
func prec(t lexToken) int {
	if t.kind != tokenOp {
		return 0
	}
	return LookupOp(t.text).Prec()
}

// DomainError is an error returned when a function is called on arguments
// outside its domain during arbitrary-precision evaluation. DomainError
// unwraps to big.ErrNaN.
type DomainError struct {
	// X is the out-of-domain argument. It is nil when the argument itself
	// could not be represented, e.g. a NaN binding.
	X *big.Float
	// Col is the position of the token that failed.
	Col int
	// Func is a name identifying the function or operator.
	Func string
}

func (err DomainError) Error() string {
	x := "NaN"
	if err.X != nil {
		x = err.X.String()
	}
	r := x + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return errpos(err.Col, r)
}

func (err DomainError) Pos() int {
	return err.Col
}

func (err DomainError) Unwrap() error {
	return big.ErrNaN{}
}
