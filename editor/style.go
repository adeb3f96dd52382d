package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Prompt      lipgloss.Style
	Text        lipgloss.Style
	Func        lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Placeholder lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Text:        lipgloss.NewStyle(),
		Func:        lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	}
}
