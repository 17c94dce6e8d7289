package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Silicon27/Parser-Combinators/calc"
)

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc <expr>...",
		Short: "Evaluate integer arithmetic expressions",
		Long: heredoc.Doc(`
			Evaluate one or more arithmetic expressions over integers.

			Supports + - * / with the usual precedence, parentheses, and
			negative literals. Division truncates like Go's integer
			division.
		`),
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, expr := range args {
				n, err := calc.Eval(expr)
				if err != nil {
					return fmt.Errorf("evaluate %q: %w", expr, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %d\n", expr, n)
			}
			return nil
		},
	}

	return cmd
}
