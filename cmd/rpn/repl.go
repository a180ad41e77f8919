package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/rpn"
)

const (
	historyFile = ".rpn_history"
	prompt      = "rpn> "
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate expressions interactively",
	Long: `Evaluate infix expressions interactively.

Commands:
  name = expr      define a variable
  :postfix expr    evaluate postfix input
  :convert expr    print the postfix form of infix input
  :vars            list variables
  :quit            exit`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

var errQuit = errors.New("quit")

func runRepl(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(complete)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	out := cmd.OutOrStdout()
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		r, err := e.line(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), errStyle.Render(err.Error()))
			continue
		}
		fmt.Fprintln(out, r)
	}
}

// line runs one line of REPL input.
func (e *env) line(s string) (string, error) {
	if strings.HasPrefix(s, ":") {
		c, arg, _ := strings.Cut(s, " ")
		arg = strings.TrimSpace(arg)
		switch c {
		case ":quit", ":q":
			return "", errQuit
		case ":vars":
			return e.listVars(), nil
		case ":postfix", ":p":
			return e.eval(arg)
		case ":convert", ":c":
			return rpn.Postfix(arg, e.cfg.Vars)
		default:
			return "", fmt.Errorf("unknown command %s; type :quit to exit", c)
		}
	}
	if name, _, ok := strings.Cut(s, "="); ok {
		if err := define(e.cfg, s); err != nil {
			return "", err
		}
		name = strings.TrimSpace(name)
		return name + " = " + fmt.Sprintf(e.cfg.Format, e.cfg.Vars[name]), nil
	}
	p, err := rpn.Postfix(s, e.cfg.Vars)
	if err != nil {
		return "", err
	}
	return e.eval(p)
}

func (e *env) listVars() string {
	names := make([]string, 0, len(e.cfg.Vars))
	for k := range e.cfg.Vars {
		names = append(names, k)
	}
	sort.Strings(names)
	var b strings.Builder
	for i, k := range names {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s = "+e.cfg.Format, k, e.cfg.Vars[k])
	}
	return b.String()
}

// complete offers function names matching the identifier at the end of line.
func complete(line string) []string {
	i := strings.LastIndexAny(line, rpn.Delimiters+" ") + 1
	head, word := line[:i], line[i:]
	if word == "" {
		return nil
	}
	var r []string
	for _, f := range rpn.Funcs() {
		if strings.HasPrefix(f, word) {
			r = append(r, head+f+"(")
		}
	}
	return r
}
