package rpn

import (
	"unicode/utf8"
)

// machine is a stack of values for evaluating one postfix expression.
type machine struct {
	stack []float64
}

// push adds a value to the top of the stack.
func (m *machine) push(x float64) {
	m.stack = append(m.stack, x)
}

// pop removes the top from the stack and returns it.
func (m *machine) pop() float64 {
	r := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return r
}

// need checks that there are at least n values available for t.
func need(t lexToken, n, have int) error {
	if have < n {
		return &MissingOperandError{Col: t.pos, Token: t.text, Need: n, Have: have}
	}
	return nil
}

// step applies one classified token.
func (m *machine) step(t lexToken, vars Vars) error {
	switch t.kind {
	case tokenNum:
		x, _ := num(t.text)
		m.push(x)
	case tokenVar:
		m.push(vars[t.text])
	case tokenFunc:
		if err := need(t, 1, len(m.stack)); err != nil {
			return err
		}
		m.push(LookupFunc(t.text).Apply(m.pop()))
	case tokenOp:
		if err := need(t, 2, len(m.stack)); err != nil {
			return err
		}
		b := m.pop()
		a := m.pop()
		r, ok := LookupOp(t.text).Apply(a, b)
		if !ok {
			return &DivisionByZeroError{Col: t.pos}
		}
		m.push(r)
	default:
		// Brackets are not part of postfix.
		return &UnknownTokenError{Col: t.pos, Text: t.text}
	}
	return nil
}

// Eval evaluates a postfix expression. Tokens are separated by whitespace.
// Each token must be a number, a name in vars, a function, or an operator.
//
// Functions applied outside their domains, e.g. ln of a negative number,
// produce NaN or an infinity rather than an error. Division by exactly zero
// is an error.
func Eval(postfix string, vars Vars) (float64, error) {
	toks := fields(postfix)
	m := machine{stack: make([]float64, 0, len(toks))}
	for _, t := range toks {
		if err := m.step(classify(t, vars), vars); err != nil {
			return 0, err
		}
	}
	if len(m.stack) != 1 {
		return 0, &TooManyOperandsError{Col: utf8.RuneCountInString(postfix) + 1, Count: len(m.stack)}
	}
	return m.stack[0], nil
}

// Calc is a shortcut to convert an infix expression and evaluate the result.
func Calc(infix string, vars Vars) (float64, error) {
	p, err := Postfix(infix, vars)
	if err != nil {
		return 0, err
	}
	return Eval(p, vars)
}
