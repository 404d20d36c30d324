package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/lemonberrylabs/stackcalc/pkg/calc"
)

const (
	prompt      = "> "
	historyFile = ".stackcalc_history"
)

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions read from standard input, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, opts)
		},
	}
}

// runRepl uses line editing when stdin is a terminal and otherwise reads
// raw lines, so that a final line without a newline is reported as
// truncated.
func runRepl(cmd *cobra.Command, opts *options) error {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) && liner.TerminalSupported() {
		return interactive(cmd, opts.calculator())
	}
	return batch(in, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.calculator())
}

func interactive(cmd *cobra.Command, c *calc.Calculator) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

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

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		res, err := c.EvalString(line)
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)
			continue
		}
		if err := printResult(out, res.Value); err != nil {
			return err
		}
	}
}

// batch evaluates every line of in. Blank lines are skipped. Evaluation
// errors are reported per line; a truncated final line stops the run.
func batch(in io.Reader, out, errOut io.Writer, c *calc.Calculator) error {
	r := bufio.NewReader(in)
	failed := 0
	for lineNo := 1; ; lineNo++ {
		res, err := c.EvalLine(r)
		switch {
		case err == nil:
			if err := printResult(out, res.Value); err != nil {
				return err
			}
		case calc.AtEndOfInput(err):
			if failed > 0 {
				return fmt.Errorf("%d line(s) failed", failed)
			}
			return nil
		case errors.Is(err, calc.ErrTruncated):
			return fmt.Errorf("line %d: %w", lineNo, err)
		case len(res.Postfix) == 0 && errors.Is(err, calc.ErrStackUnderflow):
			// blank line
		default:
			failed++
			fmt.Fprintf(errOut, "line %d: %v\n", lineNo, err)
		}
	}
}

func printResult(w io.Writer, v int64) error {
	if err := calc.WriteDecimal(w, v); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
