//go:build go1.18
// +build go1.18

package rpn_test

import (
	"testing"

	"github.com/zephyrtronium/rpn"
)

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("y")
	f.Add("1 2 + x *")
	f.Add("0 ln round")
	f.Add("1e300000000 exp")
	f.Fuzz(func(t *testing.T, s string) {
		vars := rpn.Vars{"x": 0}
		rpn.Eval(s, vars)
		rpn.EvalBig(s, vars, 32)
	})
}
