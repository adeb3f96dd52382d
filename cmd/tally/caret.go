package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/tally/caret"
)

func parsePos(s string) (int, error) {
	pos, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: %w", s, err)
	}
	return pos, nil
}

func (a *app) newFixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fix TEXT POS",
		Short: "Print the nearest legal caret position",
		Long: `Print the legal caret position nearest to POS in the display text TEXT.
Positions are counted in characters. The grouping separator comes from
--separator or the preferences file.`,
		Example: `  tally fix "cos(8)" 3          # 4
  tally fix --separator comma "123,456" 4   # 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePos(args[1])
			if err != nil {
				return err
			}
			grouping := a.symbols().Grouping
			fixed := caret.FixCursor(args[0], pos, grouping)
			a.logger.Debug("fix cursor",
				zap.String("text", args[0]),
				zap.Int("pos", pos),
				zap.Int("fixed", fixed))
			a.printf(cmd, "%d\n", fixed)
			return nil
		},
	}
}

func (a *app) newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Inspect the token around a caret position",
	}

	lookup := func(use, short string, fn func(text string, pos int) string) *cobra.Command {
		return &cobra.Command{
			Use:   use + " TEXT POS",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				pos, err := parsePos(args[1])
				if err != nil {
					return err
				}
				out := fn(args[0], pos)
				a.logger.Debug("token lookup",
					zap.String("kind", use),
					zap.String("text", args[0]),
					zap.Int("pos", pos),
					zap.String("result", out))
				a.printf(cmd, "%s\n", out)
				return nil
			},
		}
	}

	cmd.AddCommand(
		lookup("ahead", "Print the token ending at POS", caret.TokenAhead),
		lookup("after", "Print the token starting at POS", caret.TokenAfter),
		lookup("length", "Print how many characters backspace removes at POS", func(text string, pos int) string {
			return strconv.Itoa(caret.TokenLengthAhead(text, pos))
		}),
	)
	return cmd
}
