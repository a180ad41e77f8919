package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/rpn"
	"github.com/zephyrtronium/rpn/internal/config"
)

var (
	cfgFile string
	given   []string
	prec    uint
	verb    string
	echo    bool
)

var rootCmd = &cobra.Command{
	Use:   "rpn",
	Short: "Convert infix arithmetic to RPN and evaluate it",
	Long: `rpn converts infix arithmetic to Reverse Polish Notation and evaluates RPN.

Expressions use + - * /, parentheses, numbers, variables, and the functions
exp ln sqr sqrt cos sin tan acos asin atan round.

Examples:
  rpn convert "sqrt(x)+sqr(y)-ln(z)" --given x=9 --given y=1 --given z=1
  rpn eval "1 2 + 4 *"
  rpn calc --config vars.toml "(x+y)*(z/2)"
  rpn repl`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert [infix...]",
	Short: "Print the postfix form of infix expressions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return each(cmd, args, func(e *env, src string) (string, error) {
			return rpn.Postfix(src, e.cfg.Vars)
		})
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval [postfix...]",
	Short: "Evaluate postfix expressions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return each(cmd, args, func(e *env, src string) (string, error) {
			return e.eval(src)
		})
	},
}

var calcCmd = &cobra.Command{
	Use:   "calc [infix...]",
	Short: "Convert infix expressions and evaluate them",
	RunE: func(cmd *cobra.Command, args []string) error {
		return each(cmd, args, func(e *env, src string) (string, error) {
			p, err := rpn.Postfix(src, e.cfg.Vars)
			if err != nil {
				return "", err
			}
			r, err := e.eval(p)
			if err != nil {
				return "", err
			}
			if echo {
				return p + " : " + r, nil
			}
			return r, nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML or YAML file with precision, format, and vars")
	rootCmd.PersistentFlags().StringArrayVar(&given, "given", nil, "name=value variable definition (any number of times)")
	rootCmd.PersistentFlags().UintVarP(&prec, "prec", "p", 0, "precision of calculations in bits (0 for float64)")
	rootCmd.PersistentFlags().StringVar(&verb, "fmt", config.DefaultFormat, "result formatting string")
	calcCmd.Flags().BoolVar(&echo, "echo", false, "print postfix forms")
	rootCmd.AddCommand(convertCmd, evalCmd, calcCmd, replCmd)
}

// env is the resolved configuration for one command.
type env struct {
	cfg *config.Config
}

// setup merges the config file with flags. Flags win.
func setup(cmd *cobra.Command) (*env, error) {
	cfg := config.Default()
	if cfgFile != "" {
		c, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	if cmd.Flags().Changed("prec") {
		cfg.Precision = prec
	}
	if cmd.Flags().Changed("fmt") {
		cfg.Format = verb
	}
	for _, d := range given {
		if err := define(cfg, d); err != nil {
			return nil, err
		}
	}
	return &env{cfg: cfg}, nil
}

// define sets a variable from a name=value definition. The value is itself an
// infix expression over the variables defined so far.
func define(cfg *config.Config, d string) error {
	name, val, ok := strings.Cut(d, "=")
	if !ok {
		return fmt.Errorf(`variable definitions must be "name=value", not %q`, d)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("missing variable name in %q", d)
	}
	if !rpn.IsVarName(name) {
		return fmt.Errorf("%q cannot be used as a variable name", name)
	}
	r, err := rpn.Calc(val, cfg.Vars)
	if err != nil {
		return fmt.Errorf("setting %s: %w", name, err)
	}
	cfg.Merge(rpn.Vars{name: r})
	return nil
}

// eval evaluates postfix and formats the result.
func (e *env) eval(postfix string) (string, error) {
	if e.cfg.Precision > 0 {
		r, err := rpn.EvalBig(postfix, e.cfg.Vars, e.cfg.Precision)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(e.cfg.Format, r), nil
	}
	r, err := rpn.Eval(postfix, e.cfg.Vars)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(e.cfg.Format, r), nil
}

var errFailed = errors.New("some expressions failed")

// each applies f to every argument, or to every line of stdin if there are
// no arguments. Failures are logged and reported together at the end.
func each(cmd *cobra.Command, args []string, f func(*env, string) (string, error)) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	failed := false
	run := func(src string) {
		r, err := f(e, src)
		if err != nil {
			log.Printf("%s: %v", src, err)
			failed = true
			return
		}
		fmt.Fprintln(out, r)
	}
	if len(args) > 0 {
		for _, src := range args {
			run(src)
		}
	} else if err := lines(cmd.InOrStdin(), run); err != nil {
		return err
	}
	if failed {
		return errFailed
	}
	return nil
}

// lines calls f on each non-blank line of r.
func lines(r io.Reader, f func(string)) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			f(s)
		}
	}
	return sc.Err()
}

