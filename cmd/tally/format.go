package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/tally/format"
	"github.com/iw2rmb/tally/token"
)

func (a *app) newFormatCmd() *cobra.Command {
	var clean bool
	cmd := &cobra.Command{
		Use:   "format EXPR...",
		Short: "Print an expression with digit grouping",
		Long: `Print EXPR as display text: ASCII operators become calculator symbols and
numbers are grouped with the configured separator. With --clean the input is
treated as display text and the canonical expression is printed instead.`,
		Example: `  tally format "1234567.5*2"          # 1 234 567.5×2
  tally format --clean --separator period "1.234,5"   # 1234.5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := strings.Join(args, "")
			if clean {
				a.printf(cmd, "%s\n", format.Clean(in, a.symbols()))
				return nil
			}
			a.printf(cmd, "%s\n", format.Format(token.Normalize(in), a.symbols()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&clean, "clean", false, "strip grouping instead of adding it")
	return cmd
}
