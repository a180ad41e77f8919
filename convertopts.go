package rpn

// ConvertOption is an option for converting infix to postfix.
type ConvertOption interface {
	convertOption(convctx) convctx
}

// convctx holds settings for one conversion.
type convctx struct {
	// vars is the bindings used to recognize variables.
	vars Vars
	// free indicates that unbound identifiers are emitted as operands.
	free bool
}

type freeopt struct{}

// FreeVars tells the converter to emit identifiers that are not in the
// bindings as operands instead of failing. Evaluating the result then fails
// on any name that is still unbound at that time. Function names are never
// treated as free variables.
func FreeVars() ConvertOption {
	return freeopt{}
}

func (freeopt) convertOption(c convctx) convctx {
	c.free = true
	return c
}

// operand reports whether the classified token t is emitted directly.
func (c *convctx) operand(t lexToken) bool {
	switch t.kind {
	case tokenNum, tokenVar:
		return true
	case tokenNone:
		return c.free && isIdent(t.text)
	default:
		return false
	}
}
