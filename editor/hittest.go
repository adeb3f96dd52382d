package editor

import "github.com/iw2rmb/tally/internal/grapheme"

// screenToPos maps a field-local cell column to a text position. Columns are
// relative to the left edge of the field, prompt included. A click on the
// right half of a wide rune lands after it. The result is not caret-fixed.
func (m *Model) screenToPos(x int) int {
	if m.buf == nil {
		return 0
	}
	// Clicks on the prompt land on the first visible cell.
	cx := x - grapheme.Width(m.cfg.Prompt)
	if cx < 0 {
		cx = 0
	}
	cell := cx + m.xOffset

	cells := runeCells(m.buf.Text())
	at := 0
	for i, w := range cells {
		if cell < at+w {
			if 2*(cell-at) >= w && w > 1 {
				return i + 1
			}
			return i
		}
		at += w
	}
	return len(cells)
}

// posToScreen maps a text position to a field-local cell column.
//
// ok is false when the column is scrolled out of view.
func (m *Model) posToScreen(pos int) (x int, ok bool) {
	if m.buf == nil {
		return 0, false
	}
	cells := runeCells(m.buf.Text())
	if pos < 0 {
		pos = 0
	}
	if pos > len(cells) {
		pos = len(cells)
	}
	cell := cellOffset(cells, pos) - m.xOffset
	if cell < 0 {
		return 0, false
	}
	if w := m.contentWidth(); w > 0 && cell >= w {
		return 0, false
	}
	return cell + grapheme.Width(m.cfg.Prompt), true
}

// CursorScreenX returns the field-local column of the caret, for hosts that
// anchor overlays to it.
func (m Model) CursorScreenX() (int, bool) {
	if m.buf == nil {
		return 0, false
	}
	return m.posToScreen(m.buf.Cursor())
}
