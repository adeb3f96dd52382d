package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/tally"
	"github.com/iw2rmb/tally/editor"
	"github.com/iw2rmb/tally/format"
	"github.com/iw2rmb/tally/internal/logging"
	"github.com/iw2rmb/tally/internal/prefs"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	separator  format.Separator
	verbose    bool
	noColor    bool

	prefs  *prefs.Preferences
	logger *zap.Logger

	// clipboard is swapped out in tests.
	clipboard func() editor.Clipboard
}

func newRootCmd() *cobra.Command {
	a := &app{clipboard: newSystemClipboard}

	root := &cobra.Command{
		Use:   "tally",
		Short: "Token-aware calculator expression field",
		Long: `tally edits calculator expressions with a caret that never lands inside
a function name or right after a digit grouping separator.

Run without arguments to open the interactive field.`,
		Version:       tally.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEdit(cmd, args)
		},
	}
	root.SetVersionTemplate(tally.VersionLine() + "\n")

	root.PersistentFlags().StringVar(&a.configPath, "config", prefs.DefaultPath(), "preferences file")
	root.PersistentFlags().Var(&a.separator, "separator", "digit grouping: space, period or comma (default from preferences)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging (needs a log file)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colors")

	root.AddCommand(
		a.newEditCmd(),
		a.newFixCmd(),
		a.newTokenCmd(),
		a.newFormatCmd(),
		a.newConfigCmd(),
	)
	return root
}

// setup loads preferences, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	p, err := prefs.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("separator") {
		p.Separator = a.separator
	}
	a.prefs = p

	if a.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	a.logger, err = logging.New(p.Log.Level, p.Log.File, a.verbose)
	if err != nil {
		return err
	}
	a.logger.Debug("preferences loaded",
		zap.String("path", a.configPath),
		zap.Stringer("separator", p.Separator),
		zap.String("command", cmd.Name()))
	return nil
}

func (a *app) symbols() format.Symbols {
	return format.SymbolsFor(a.prefs.Separator)
}

func (a *app) printf(cmd *cobra.Command, f string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), f, args...)
}
