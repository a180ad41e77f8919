package rpn

import (
	"errors"
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/zephyrtronium/bigfloat"
)

// DefaultPrec is the precision EvalBig uses when given 0.
const DefaultPrec = 64

// bigmachine is a stack of values for evaluating one postfix expression to
// arbitrary precision.
type bigmachine struct {
	stack []*big.Float
	prec  uint
}

// push ensures a settable value on the stack.
func (m *bigmachine) push() *big.Float {
	r := new(big.Float).SetPrec(m.prec)
	m.stack = append(m.stack, r)
	return r
}

// pop removes the top from the stack and returns it.
func (m *bigmachine) pop() *big.Float {
	r := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (m *bigmachine) top() *big.Float {
	return m.stack[len(m.stack)-1]
}

// step applies one classified token. big.Float panics with ErrNaN where
// float64 would produce NaN; those become DomainErrors.
func (m *bigmachine) step(t lexToken, vars Vars) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var nan big.ErrNaN
		if e, ok := r.(error); ok && errors.As(e, &nan) {
			err = DomainError{Col: t.pos, Func: t.text}
			return
		}
		panic(r)
	}()
	switch t.kind {
	case tokenNum:
		r := m.push()
		if _, _, err := r.Parse(t.text, 0); err != nil {
			// big.Float spells some literals differently from strconv.
			x, _ := num(t.text)
			if math.IsNaN(x) {
				return DomainError{Col: t.pos, Func: t.text}
			}
			r.SetFloat64(x)
		}
	case tokenVar:
		x := vars[t.text]
		if math.IsNaN(x) {
			return DomainError{Col: t.pos, Func: t.text}
		}
		m.push().SetFloat64(x)
	case tokenFunc:
		if err := need(t, 1, len(m.stack)); err != nil {
			return err
		}
		return m.call(t, LookupFunc(t.text), m.top())
	case tokenOp:
		if err := need(t, 2, len(m.stack)); err != nil {
			return err
		}
		r := m.pop()
		l := m.top()
		switch LookupOp(t.text) {
		case OpAdd:
			l.Add(l, r)
		case OpSub:
			l.Sub(l, r)
		case OpMul:
			l.Mul(l, r)
		case OpDiv:
			if r.Sign() == 0 {
				return &DivisionByZeroError{Col: t.pos}
			}
			l.Quo(l, r)
		}
	default:
		return &UnknownTokenError{Col: t.pos, Text: t.text}
	}
	return nil
}

// call replaces x with f(x).
func (m *bigmachine) call(t lexToken, f Func, x *big.Float) error {
	switch f {
	case FuncExp:
		switch {
		case x.IsInf() && x.Signbit():
			x.SetInt64(0)
		case x.IsInf():
			// exp(+inf) = +inf
		case x.MantExp(nil) > expLimit:
			// Beyond the exponent range of any big.Float.
			if x.Signbit() {
				x.SetInt64(0)
			} else {
				x.SetInf(false)
			}
		default:
			bigfloat.Exp(x, new(big.Float).Copy(x))
		}
	case FuncLn:
		switch x.Sign() {
		case -1:
			return DomainError{X: new(big.Float).Copy(x), Col: t.pos, Func: t.text}
		case 0:
			x.SetInf(true)
		default:
			if !x.IsInf() {
				bigfloat.Log(x, new(big.Float).Copy(x))
			}
		}
	case FuncSqr:
		x.Mul(x, x)
	case FuncSqrt:
		if x.Signbit() && x.Sign() != 0 {
			return DomainError{X: new(big.Float).Copy(x), Col: t.pos, Func: t.text}
		}
		x.Sqrt(x)
	case FuncRound:
		roundHalfUp(x, x)
	default:
		// bigfloat has no trigonometry, so go through float64.
		v, _ := x.Float64()
		r := f.Apply(v)
		if math.IsNaN(r) {
			return DomainError{X: new(big.Float).Copy(x), Col: t.pos, Func: t.text}
		}
		x.SetFloat64(r)
	}
	return nil
}

// expLimit is the binary exponent past which exp overflows to +Inf or
// underflows to 0. |x| >= 2**31 puts e**x outside big.MinExp..big.MaxExp.
const expLimit = 31

var bigone = big.NewInt(1)

// roundHalfUp sets z to x rounded to the nearest integer, with halves going
// toward positive infinity. The comparison against floor(x)+0.5 is exact.
func roundHalfUp(z, x *big.Float) *big.Float {
	if x.IsInf() {
		return z.Set(x)
	}
	i, acc := x.Int(nil)
	if acc == big.Above {
		// Int truncates toward zero, so negative non-integers land above x.
		i.Sub(i, bigone)
	}
	h := new(big.Float).SetPrec(uint(i.BitLen()) + 2).SetInt(i)
	h.Add(h, big.NewFloat(0.5))
	if x.Cmp(h) >= 0 {
		i.Add(i, bigone)
	}
	return z.SetInt(i)
}

// EvalBig evaluates a postfix expression using prec bits of precision, or
// DefaultPrec if prec is 0. It accepts the same input as Eval.
//
// Since big.Float has no NaN, any operation that would produce one is a
// DomainError instead. Trigonometric functions are computed at float64
// precision.
func EvalBig(postfix string, vars Vars, prec uint) (*big.Float, error) {
	if prec == 0 {
		prec = DefaultPrec
	}
	toks := fields(postfix)
	m := bigmachine{stack: make([]*big.Float, 0, len(toks)), prec: prec}
	for _, t := range toks {
		if err := m.step(classify(t, vars), vars); err != nil {
			return nil, err
		}
	}
	if len(m.stack) != 1 {
		return nil, &TooManyOperandsError{Col: utf8.RuneCountInString(postfix) + 1, Count: len(m.stack)}
	}
	return m.stack[0], nil
}
