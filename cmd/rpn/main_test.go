package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/zephyrtronium/rpn"
	"github.com/zephyrtronium/rpn/internal/config"
)

// run executes the root command with fresh flag values.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfgFile, given, prec, verb, echo = "", nil, 0, config.DefaultFormat, false
	unchanged := func(f *pflag.Flag) { f.Changed = false }
	rootCmd.PersistentFlags().VisitAll(unchanged)
	calcCmd.Flags().VisitAll(unchanged)
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	vars := filepath.Join(dir, "vars.toml")
	if err := os.WriteFile(vars, []byte("[vars]\nx = 7.1\ny = 0.6\nz = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	thirds := filepath.Join(dir, "thirds.toml")
	if err := os.WriteFile(thirds, []byte("format = \"%.3f\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name  string
		stdin string
		args  []string
		out   string
	}{
		{"convert", "", []string{"convert", "--given", "x=9", "--given", "y=1", "--given", "z=1", "sqrt(x)+sqr(y)-ln(z)"}, "x sqrt y sqr + z ln -\n"},
		{"eval", "", []string{"eval", "1 2 +", "2 3 - 4 -"}, "3\n-5\n"},
		{"eval-stdin", "1 2 +\n\n3 4 *\n", []string{"eval"}, "3\n12\n"},
		{"calc", "", []string{"calc", "2-3-4"}, "-5\n"},
		{"calc-echo", "", []string{"calc", "--echo", "--given", "x=9", "sqrt(x)+1"}, "x sqrt 1 + : 4\n"},
		{"calc-config", "", []string{"calc", "--config", vars, "--fmt", "%.2f", "(x+y)*(z/2)"}, "19.25\n"},
		{"calc-prec", "", []string{"calc", "-p", "128", "--fmt", "%.30f", "1/4"}, "0.25" + strings.Repeat("0", 28) + "\n"},
		{"given-chain", "", []string{"calc", "--given", "a=2", "--given", "b=a*3", "b+a"}, "8\n"},
		// Follows cases that set --fmt, which must not carry over.
		{"config-format", "", []string{"calc", "--config", thirds, "1/3"}, "0.333\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := run(t, c.stdin, c.args...)
			if err != nil {
				t.Fatalf("%q: %v", c.args, err)
			}
			if out != c.out {
				t.Errorf("%q: want %q, got %q", c.args, c.out, out)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"div-zero", []string{"eval", "1 0 /"}},
		{"bracket", []string{"convert", "(1+2"}},
		{"unknown", []string{"calc", "x+1"}},
		{"bad-given", []string{"calc", "--given", "x", "1"}},
		{"given-error", []string{"calc", "--given", "x=(", "1"}},
		{"missing-config", []string{"calc", "--config", "/nonexistent/rpn.toml", "1"}},
		{"given-number", []string{"calc", "--given", "1=5", "1"}},
		{"given-inf", []string{"calc", "--given", "inf=5", "1"}},
		{"given-expr", []string{"calc", "--given", "a+b=3", "1"}},
		{"given-space", []string{"calc", "--given", "x y=2", "1"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := run(t, "", c.args...); err == nil {
				t.Errorf("%q succeeded", c.args)
			}
		})
	}
}

func TestLine(t *testing.T) {
	e := &env{cfg: config.Default()}
	steps := []struct {
		in, out string
	}{
		{"x = 7.5", "x = 7.5"},
		{"y = 0.5", "y = 0.5"},
		{"z = 5", "z = 5"},
		{":convert (x+y)*(z/2)", "x y + z 2 / *"},
		{":postfix x y + z 2 / *", "20"},
		{"(x+y)*(z/2)", "20"},
		{"w = x*2", "w = 15"},
		{":vars", "w = 15\nx = 7.5\ny = 0.5\nz = 5"},
	}
	for _, s := range steps {
		got, err := e.line(s.in)
		if err != nil {
			t.Fatalf("%q: %v", s.in, err)
		}
		if got != s.out {
			t.Errorf("%q: want %q, got %q", s.in, s.out, got)
		}
	}
	if _, err := e.line(":quit"); !errors.Is(err, errQuit) {
		t.Errorf(":quit gave %v", err)
	}
	if _, err := e.line(":nope"); err == nil {
		t.Error("unknown command succeeded")
	}
	if _, err := e.line("a+b = 3"); err == nil {
		t.Error("defining a+b succeeded")
	}
	if _, ok := e.cfg.Vars["a+b"]; ok {
		t.Error("a+b was bound")
	}
	_, err := e.line("1/0")
	if !errors.As(err, new(*rpn.DivisionByZeroError)) {
		t.Errorf("1/0 gave %v", err)
	}
}

func TestComplete(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"1+", nil},
		{"s", []string{"sqr(", "sqrt(", "sin("}},
		{"1+a", []string{"1+acos(", "1+asin(", "1+atan("}},
		{"(ro", []string{"(round("}},
		{"zz", nil},
	}
	for _, c := range cases {
		if got := complete(c.line); !reflect.DeepEqual(got, c.want) {
			t.Errorf("%q: want %q, got %q", c.line, c.want, got)
		}
	}
}
