package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/tally/editor"
	"github.com/iw2rmb/tally/format"
	"github.com/iw2rmb/tally/token"
)

type hostKeyMap struct {
	editor.KeyMap

	Accept    key.Binding
	Quit      key.Binding
	Separator key.Binding
}

func defaultHostKeyMap(km editor.KeyMap) hostKeyMap {
	return hostKeyMap{
		KeyMap:    km,
		Accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+q"), key.WithHelp("esc", "quit")),
		Separator: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "cycle separator")),
	}
}

func (k hostKeyMap) ShortHelp() []key.Binding {
	return append(k.KeyMap.ShortHelp(), k.Separator, k.Accept, k.Quit)
}

func (k hostKeyMap) FullHelp() [][]key.Binding {
	return append(k.KeyMap.FullHelp(), []key.Binding{k.Separator, k.Accept, k.Quit})
}

// fieldState is shared with the editor's OnChange callback.
type fieldState struct {
	events int
	last   editor.ChangeEvent
	logger *zap.Logger
}

func (s *fieldState) handleChange(ev editor.ChangeEvent) {
	s.events++
	s.last = ev
	s.logger.Debug("field changed",
		zap.Uint64("version", ev.Version),
		zap.Int("cursor", ev.Cursor),
		zap.String("expression", ev.Expression))
}

type editModel struct {
	field  editor.Model
	keys   hostKeyMap
	help   help.Model
	state  *fieldState
	logger *zap.Logger

	status   lipgloss.Style
	accepted bool
}

func newEditModel(expr string, p editorPrefs, clip editor.Clipboard, logger *zap.Logger) editModel {
	state := &fieldState{logger: logger}
	km := editor.DefaultKeyMap()
	field := editor.New(editor.Config{
		Text:         token.Normalize(expr),
		Separator:    p.separator,
		HistoryLimit: p.historyLimit,
		Prompt:       p.prompt,
		Placeholder:  "type an expression",
		Style:        editor.DefaultStyle(),
		KeyMap:       km,
		Clipboard:    clip,
		OnChange:     state.handleChange,
	})
	return editModel{
		field:  field,
		keys:   defaultHostKeyMap(km),
		help:   help.New(),
		state:  state,
		logger: logger,
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// editorPrefs is the subset of preferences the field needs.
type editorPrefs struct {
	separator    format.Separator
	historyLimit int
	prompt       string
}

func (m editModel) Init() tea.Cmd { return nil }

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Accept):
			m.accepted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Separator):
			next := nextSeparator(m.field.Buffer().Separator())
			m.field = m.field.SetSeparator(next)
			m.logger.Debug("separator changed", zap.Stringer("separator", next))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m editModel) View() string {
	buf := m.field.Buffer()
	status := fmt.Sprintf("%s  •  separator: %s  •  cursor: %d",
		orDash(buf.Expression()), buf.Separator(), buf.Cursor())
	return strings.Join([]string{
		m.field.View(),
		m.status.Render(status),
		m.help.View(m.keys),
	}, "\n")
}

func nextSeparator(s format.Separator) format.Separator {
	switch s {
	case format.SeparatorSpace:
		return format.SeparatorPeriod
	case format.SeparatorPeriod:
		return format.SeparatorComma
	default:
		return format.SeparatorSpace
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (a *app) newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [expression]",
		Short: "Open the interactive expression field",
		Long: `Open the interactive expression field, optionally prefilled with an
expression. Enter prints the canonical expression to stdout; Esc quits without
output. The field is drawn on stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runEdit,
	}
}

func (a *app) runEdit(cmd *cobra.Command, args []string) error {
	expr := ""
	if len(args) > 0 {
		expr = args[0]
	}

	m := newEditModel(expr, editorPrefs{
		separator:    a.prefs.Separator,
		historyLimit: a.prefs.HistoryLimit,
		prompt:       a.prefs.Prompt,
	}, a.clipboard(), a.logger)

	p := tea.NewProgram(m,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
		tea.WithContext(cmd.Context()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("edit: %w", err)
	}

	fm, ok := final.(editModel)
	if !ok || !fm.accepted {
		a.logger.Debug("edit cancelled")
		return nil
	}
	out := fm.field.Expression()
	a.logger.Info("expression accepted", zap.String("expression", out))
	a.printf(cmd, "%s\n", out)
	return nil
}
