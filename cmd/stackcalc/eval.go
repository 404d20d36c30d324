package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEvalCmd(opts *options) *cobra.Command {
	var showPostfix bool

	cmd := &cobra.Command{
		Use:   "eval EXPRESSION...",
		Short: "Evaluate each argument as an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.calculator()
			out := cmd.OutOrStdout()
			for _, expr := range args {
				res, err := c.EvalString(expr)
				if err != nil {
					return fmt.Errorf("%q: %w", expr, err)
				}
				if showPostfix {
					fmt.Fprintf(out, "%s\t", res.Postfix)
				}
				if err := printResult(out, res.Value); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showPostfix, "postfix", false, "Print the postfix form before each result")
	return cmd
}

func newPostfixCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "postfix EXPRESSION...",
		Short: "Print the postfix form of each argument without evaluating it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.calculator()
			for _, expr := range args {
				p, err := c.PostfixString(expr)
				if err != nil {
					return fmt.Errorf("%q: %w", expr, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}
