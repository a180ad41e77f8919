package rpn

import (
	"strings"
)

// Vars maps variable names to their values. Conversion and evaluation only
// read from it, so one Vars may be shared by concurrent calls.
//
// Any token strconv.ParseFloat accepts is a number before it is a variable.
// That includes inf, infinity, and nan in any case, so bindings with those
// names are never read. Use IsVarName to check a name.
type Vars map[string]float64

// Postfix converts an infix expression to postfix. Variables are recognized
// by their presence in vars. The result is the tokens of the expression in
// evaluation order, separated by single spaces.
//
// Infix input is split around the runes ( ) + - * / and each piece between
// them must be a number, a variable, or a function name. Functions must be
// followed by a parenthesized argument.
func Postfix(infix string, vars Vars, opts ...ConvertOption) (string, error) {
	c := convctx{vars: vars}
	for _, opt := range opts {
		c = opt.convertOption(c)
	}
	out, err := c.convert(split(infix))
	if err != nil {
		return "", err
	}
	return strings.Join(out, " "), nil
}

// MustPostfix is like Postfix but panics on error.
func MustPostfix(infix string, vars Vars, opts ...ConvertOption) string {
	r, err := Postfix(infix, vars, opts...)
	if err != nil {
		panic("rpn: Postfix(" + infix + "): " + err.Error())
	}
	return r
}

// convert runs the shunting-yard algorithm over toks.
func (c *convctx) convert(toks []lexToken) ([]string, error) {
	out := make([]string, 0, len(toks))
	var stack []lexToken
	pop := func() lexToken {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return t
	}
	for _, t := range toks {
		t = classify(t, c.vars)
		switch {
		case c.operand(t):
			out = append(out, t.text)
		case t.kind == tokenFunc, t.kind == tokenOpen:
			stack = append(stack, t)
		case t.kind == tokenOp:
			p := prec(t)
			for len(stack) > 0 && prec(stack[len(stack)-1]) >= p {
				out = append(out, pop().text)
			}
			stack = append(stack, t)
		case t.kind == tokenClose:
			for len(stack) > 0 && stack[len(stack)-1].kind != tokenOpen {
				out = append(out, pop().text)
			}
			if len(stack) == 0 {
				return nil, &BracketError{Col: t.pos, Right: t.text}
			}
			pop()
			// A function directly below the bracket takes the bracketed
			// expression as its argument.
			if len(stack) > 0 && stack[len(stack)-1].kind == tokenFunc {
				out = append(out, pop().text)
			}
		default:
			return nil, &UnknownTokenError{Col: t.pos, Text: t.text}
		}
	}
	for len(stack) > 0 {
		t := pop()
		if t.kind == tokenOpen {
			return nil, &BracketError{Col: t.pos, Left: t.text}
		}
		out = append(out, t.text)
	}
	return out, nil
}
