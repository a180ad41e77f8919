package rpn

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a floating-point literal.
	tokenNum
	// tokenVar is a name present in the bindings.
	tokenVar
	// tokenFunc is a unary function name.
	tokenFunc
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

var tokenKindNames = [...]string{
	tokenNone:  "None",
	tokenNum:   "Num",
	tokenVar:   "Var",
	tokenFunc:  "Func",
	tokenOp:    "Op",
	tokenOpen:  "Open",
	tokenClose: "Close",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// Delimiters contains the runes which split infix input into tokens. Each one
// is a token on its own.
const Delimiters = "()" + Operators

// fields splits postfix source on runs of whitespace. Positions are 1-based
// rune columns.
func fields(src string) []lexToken {
	var toks []lexToken
	start := -1
	col := 0
	startcol := 0
	for i, r := range src {
		col++
		if unicode.IsSpace(r) {
			if start >= 0 {
				toks = append(toks, lexToken{text: src[start:i], pos: startcol})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
			startcol = col
		}
	}
	if start >= 0 {
		toks = append(toks, lexToken{text: src[start:], pos: startcol})
	}
	return toks
}

// split splits infix source around Delimiters. Whitespace surrounding each
// piece is trimmed and empty pieces are dropped, but whitespace inside a piece
// is kept.
func split(src string) []lexToken {
	var toks []lexToken
	emit := func(s string, col int) {
		// Advance col past leading whitespace so errors point at the text.
		t := strings.TrimLeftFunc(s, unicode.IsSpace)
		col += utf8.RuneCountInString(s[:len(s)-len(t)])
		t = strings.TrimRightFunc(t, unicode.IsSpace)
		if t != "" {
			toks = append(toks, lexToken{text: t, pos: col})
		}
	}
	start, startcol := 0, 1
	col := 0
	for i, r := range src {
		col++
		if !strings.ContainsRune(Delimiters, r) {
			continue
		}
		emit(src[start:i], startcol)
		toks = append(toks, lexToken{text: string(r), pos: col})
		start = i + utf8.RuneLen(r)
		startcol = col + 1
	}
	emit(src[start:], startcol)
	return toks
}

// classify decides the kind of t. The order of checks matters: a literal
// always wins over a binding of the same name, and a binding wins over a
// function. On failure the result kind is tokenNone.
func classify(t lexToken, vars Vars) lexToken {
	switch {
	case isNum(t.text):
		t.kind = tokenNum
	case hasVar(vars, t.text):
		t.kind = tokenVar
	case isFunc(t.text):
		t.kind = tokenFunc
	case len(t.text) == 1 && strings.Contains(Operators, t.text):
		t.kind = tokenOp
	case t.text == "(":
		t.kind = tokenOpen
	case t.text == ")":
		t.kind = tokenClose
	default:
		t.kind = tokenNone
	}
	return t
}

// num parses a numeric literal. Literals beyond the float64 range become
// infinities rather than errors.
func num(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) && nerr.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}

func isNum(s string) bool {
	_, ok := num(s)
	return ok
}

func hasVar(vars Vars, name string) bool {
	_, ok := vars[name]
	return ok
}

// IsVarName reports whether name can be bound in Vars and read back as a
// variable in both infix and postfix input.
func IsVarName(name string) bool {
	return isIdent(name) && !isNum(name)
}

// isIdent reports whether s looks like a variable name: a letter or
// underscore followed by letters, digits, and underscores.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
