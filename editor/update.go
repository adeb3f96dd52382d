package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tally/buffer"
	"github.com/iw2rmb/tally/format"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.insertPasted(string(msg.Runes))
		}
		return m, nil
	}

	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveToken, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveToken, Dir: buffer.DirRight})
	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveToken, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveToken, Dir: buffer.DirRight, Extend: true})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})
	case key.Matches(msg, km.ShiftHome):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome, Extend: true})
	case key.Matches(msg, km.ShiftEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd, Extend: true})
	case key.Matches(msg, km.SelectAll):
		m.buf.SelectAll()

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.buf.DeleteTokens()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.buf.DeleteForward()
		}
	case key.Matches(msg, km.Clear):
		if !m.cfg.ReadOnly {
			m.buf.Clear()
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				if s := tokensForKeys(msg.Runes); s != "" {
					m.buf.InsertTokens(s)
				}
			}
		}
	}

	return m, nil
}

// selectedExpression returns the selected text in canonical form.
func (m Model) selectedExpression() string {
	r, ok := m.buf.Selection()
	if !ok {
		return ""
	}
	rs := []rune(m.buf.Text())
	r = buffer.ClampRange(r, len(rs))
	return format.Clean(string(rs[r.Start:r.End]), m.buf.Symbols())
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s := m.selectedExpression()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	if _, ok := m.buf.Selection(); !ok {
		return
	}
	if s := m.selectedExpression(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.insertPasted(s)
}

func (m Model) insertPasted(s string) {
	if s = pastedTokens(s); s != "" {
		m.buf.InsertTokens(s)
	}
}
