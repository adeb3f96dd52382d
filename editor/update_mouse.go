package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tally/buffer"
)

// updateMouse places the caret on click and selects on drag. Coordinates
// must be relative to the field; row 0 is the only row.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Only handle selection/cursor changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y != 0 || msg.X < 0 {
			return m, nil
		}
		if w := m.width; w > 0 && msg.X >= w {
			return m, nil
		}

		p := m.screenToPos(msg.X)
		if msg.Shift {
			anchor := m.buf.Cursor()
			if raw, ok := m.buf.SelectionRaw(); ok {
				anchor = raw.Start
			}
			m.mouseAnchor = anchor
			m.buf.SetSelection(buffer.Range{Start: anchor, End: p})
		} else {
			m.buf.ClearSelection()
			m.buf.SetCursor(p)
			m.mouseAnchor = m.buf.Cursor()
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		x := msg.X
		if x < 0 {
			x = 0
		}
		p := m.screenToPos(x)
		m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: p})
		if _, ok := m.buf.Selection(); !ok {
			m.buf.SetCursor(p)
		}

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, nil
}
