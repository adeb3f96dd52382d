package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right           key.Binding
	ShiftLeft, ShiftRight key.Binding
	Home, End             key.Binding
	ShiftHome, ShiftEnd   key.Binding
	SelectAll             key.Binding

	Backspace, Delete key.Binding
	Clear             key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "token left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "token right")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),

		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end")),
		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to end")),
		SelectAll: key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "select all")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete token")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete next token")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Backspace, k.Clear, k.Undo}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Home, k.End},
		{k.ShiftLeft, k.ShiftRight, k.ShiftHome, k.ShiftEnd, k.SelectAll},
		{k.Backspace, k.Delete, k.Clear},
		{k.Undo, k.Redo, k.Copy, k.Cut, k.Paste},
	}
}

// keyMapIsZero reports whether no binding was configured at all.
func keyMapIsZero(k KeyMap) bool {
	for _, b := range []key.Binding{
		k.Left, k.Right, k.ShiftLeft, k.ShiftRight, k.Home, k.End, k.ShiftHome, k.ShiftEnd, k.SelectAll,
		k.Backspace, k.Delete, k.Clear, k.Undo, k.Redo, k.Copy, k.Cut, k.Paste,
	} {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
