// Package main is the entry point for the stackcalc command.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lemonberrylabs/stackcalc/pkg/calc"
	"github.com/lemonberrylabs/stackcalc/pkg/config"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds what the persistent flags resolve to.
type options struct {
	configPath string
	legacy     bool
	cfg        config.Config
}

func (o *options) calculator() *calc.Calculator {
	return calc.New(o.cfg.Quirks)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "stackcalc",
		Short: "Integer calculator using a two-stack infix to postfix conversion",
		Long: `stackcalc evaluates one line of integer arithmetic at a time.

Operators: + - * / ^ ! and parentheses. With no subcommand it reads
expressions from standard input, one per line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.legacy {
				cfg.Quirks = calc.LegacyQuirks()
			}
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, opts)
		},
	}

	root.Version = version + " (commit=" + commit + ", built=" + date + ")"
	root.SetVersionTemplate("stackcalc version {{.Version}}\n")

	root.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv("STACKCALC_CONFIG"), "YAML config file (env STACKCALC_CONFIG)")
	root.PersistentFlags().BoolVar(&opts.legacy, "legacy", false, "Reproduce the historical calculator's quirks")

	root.AddCommand(
		newReplCmd(opts),
		newEvalCmd(opts),
		newPostfixCmd(opts),
		newServeCmd(opts),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
