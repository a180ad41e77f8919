package rpn

import (
	"testing"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		// single pieces
		{"1", []lexToken{{text: "1", pos: 1}}},
		{"  x  ", []lexToken{{text: "x", pos: 3}}},
		{"sqrt 4", []lexToken{{text: "sqrt 4", pos: 1}}},
		{"3.14", []lexToken{{text: "3.14", pos: 1}}},
		// delimiters
		{"(x+y)*(z/2)", []lexToken{
			{text: "(", pos: 1}, {text: "x", pos: 2}, {text: "+", pos: 3}, {text: "y", pos: 4}, {text: ")", pos: 5},
			{text: "*", pos: 6},
			{text: "(", pos: 7}, {text: "z", pos: 8}, {text: "/", pos: 9}, {text: "2", pos: 10}, {text: ")", pos: 11},
		}},
		{" sqrt( x ) ", []lexToken{{text: "sqrt", pos: 2}, {text: "(", pos: 6}, {text: "x", pos: 8}, {text: ")", pos: 10}}},
		{"a--b", []lexToken{{text: "a", pos: 1}, {text: "-", pos: 2}, {text: "-", pos: 3}, {text: "b", pos: 4}}},
		{"1e-5", []lexToken{{text: "1e", pos: 1}, {text: "-", pos: 3}, {text: "5", pos: 4}}},
		{"π*2", []lexToken{{text: "π", pos: 1}, {text: "*", pos: 2}, {text: "2", pos: 3}}},
		{"()", []lexToken{{text: "(", pos: 1}, {text: ")", pos: 2}}},
	}
	for _, c := range cases {
		got := split(c.src)
		if len(got) != len(c.tokens) {
			t.Errorf("splitting %q: want %v, got %v", c.src, c.tokens, got)
			continue
		}
		for i, want := range c.tokens {
			if got[i] != want {
				t.Errorf("splitting %q: token %d: want %v, got %v", c.src, i, want, got[i])
			}
		}
	}
}

func TestFields(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
	}{
		{"", nil},
		{"   ", nil},
		{"1", []lexToken{{text: "1", pos: 1}}},
		{" 1  2\t+ ", []lexToken{{text: "1", pos: 2}, {text: "2", pos: 5}, {text: "+", pos: 7}}},
		{"π 2 *", []lexToken{{text: "π", pos: 1}, {text: "2", pos: 3}, {text: "*", pos: 5}}},
		{"x sqrt y sqr +", []lexToken{{text: "x", pos: 1}, {text: "sqrt", pos: 3}, {text: "y", pos: 8}, {text: "sqr", pos: 10}, {text: "+", pos: 14}}},
	}
	for _, c := range cases {
		got := fields(c.src)
		if len(got) != len(c.tokens) {
			t.Errorf("splitting %q: want %v, got %v", c.src, c.tokens, got)
			continue
		}
		for i, want := range c.tokens {
			if got[i] != want {
				t.Errorf("splitting %q: token %d: want %v, got %v", c.src, i, want, got[i])
			}
		}
	}
}

func TestClassify(t *testing.T) {
	vars := Vars{"x": 1, "exp": 2, "1": 3, "_y2": 4}
	cases := []struct {
		text string
		kind tokenKind
	}{
		{"1", tokenNum},
		{"-1.5e3", tokenNum},
		{".5", tokenNum},
		{"inf", tokenNum},
		{"1e999", tokenNum},
		{"x", tokenVar},
		{"_y2", tokenVar},
		{"exp", tokenVar},
		{"ln", tokenFunc},
		{"round", tokenFunc},
		{"Round", tokenNone},
		{"+", tokenOp},
		{"-", tokenOp},
		{"*", tokenOp},
		{"/", tokenOp},
		{"(", tokenOpen},
		{")", tokenClose},
		{"y", tokenNone},
		{"1e", tokenNone},
		{"**", tokenNone},
		{"^", tokenNone},
		{"$", tokenNone},
	}
	for _, c := range cases {
		got := classify(lexToken{text: c.text, pos: 1}, vars)
		if got.kind != c.kind {
			t.Errorf("classifying %q: want %v, got %v", c.text, c.kind, got.kind)
		}
		if got.text != c.text || got.pos != 1 {
			t.Errorf("classifying %q changed token to %v", c.text, got)
		}
	}
}

func TestIsIdent(t *testing.T) {
	cases := []struct {
		s  string
		ok bool
	}{
		{"x", true},
		{"_", true},
		{"x1", true},
		{"π", true},
		{"1x", false},
		{"", false},
		{"x y", false},
		{"x.y", false},
		{"$", false},
	}
	for _, c := range cases {
		if got := isIdent(c.s); got != c.ok {
			t.Errorf("isIdent(%q): want %t, got %t", c.s, c.ok, got)
		}
	}
}

func TestIsVarName(t *testing.T) {
	cases := []struct {
		s  string
		ok bool
	}{
		{"x", true},
		{"rate_2", true},
		{"exp", true},
		{"inf", false},
		{"Infinity", false},
		{"nan", false},
		{"NaN", false},
		{"infinite", true},
		{"1", false},
		{"0x1p3", false},
		{"a+b", false},
		{"x y", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsVarName(c.s); got != c.ok {
			t.Errorf("IsVarName(%q): want %t, got %t", c.s, c.ok, got)
		}
	}
}
