package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tally/internal/grapheme"
)

type cellKind struct {
	fn       bool
	selected bool
	cursor   bool
}

type cellRun struct {
	kind cellKind
	text strings.Builder
}

func (m Model) View() string {
	var sb strings.Builder
	if m.cfg.Prompt != "" {
		sb.WriteString(m.cfg.Style.Prompt.Render(m.cfg.Prompt))
	}
	if m.buf == nil {
		return sb.String()
	}

	text := m.buf.Text()
	if text == "" && m.cfg.Placeholder != "" {
		sb.WriteString(m.renderPlaceholder())
		return sb.String()
	}
	sb.WriteString(m.renderContent())
	return sb.String()
}

func (m Model) renderPlaceholder() string {
	ph := m.cfg.Placeholder
	if w := m.contentWidth(); w > 0 {
		ph = truncateCells(ph, w-1)
	}
	out := m.cfg.Style.Placeholder.Render(ph)
	if m.focused {
		out = m.cfg.Style.Cursor.Render(" ") + out
	}
	return out
}

func (m Model) renderContent() string {
	rs := []rune(m.buf.Text())
	cells := runeCells(string(rs))
	fn := funcMask(rs, m.matcher.Tokens())

	sel, hasSel := m.buf.Selection()
	cursor := m.buf.Cursor()
	w := m.contentWidth()

	visible := func(start, width int) bool {
		if w <= 0 {
			return true
		}
		return start >= m.xOffset && start+width <= m.xOffset+w
	}

	var runs []*cellRun
	emit := func(k cellKind, s string) {
		if n := len(runs); n > 0 && runs[n-1].kind == k {
			runs[n-1].text.WriteString(s)
			return
		}
		r := &cellRun{kind: k}
		r.text.WriteString(s)
		runs = append(runs, r)
	}

	at := 0
	for i, r := range rs {
		if visible(at, cells[i]) {
			emit(cellKind{
				fn:       fn[i],
				selected: hasSel && i >= sel.Start && i < sel.End,
				cursor:   m.focused && !hasSel && i == cursor,
			}, string(r))
		}
		at += cells[i]
	}
	if m.focused && !hasSel && cursor == len(rs) && visible(at, 1) {
		emit(cellKind{cursor: true}, " ")
	}

	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(m.styleFor(r.kind).Render(r.text.String()))
	}
	return sb.String()
}

func (m Model) styleFor(k cellKind) lipgloss.Style {
	st := m.cfg.Style.Text
	if k.fn {
		st = m.cfg.Style.Func
	}
	if k.selected {
		if k.fn {
			st = st.Inherit(m.cfg.Style.Selection)
		} else {
			st = m.cfg.Style.Selection.Inherit(st)
		}
	}
	if k.cursor {
		st = m.cfg.Style.Cursor.Inherit(st)
	}
	return st
}

// funcMask marks the runes that belong to a function token. Tokens are tried
// in declared order at each position.
func funcMask(rs []rune, tokens []string) []bool {
	mask := make([]bool, len(rs))
	toks := make([][]rune, 0, len(tokens))
	for _, t := range tokens {
		toks = append(toks, []rune(t))
	}
	for i := 0; i < len(rs); {
		n := 0
		for _, t := range toks {
			if hasRunePrefix(rs[i:], t) {
				n = len(t)
				break
			}
		}
		if n == 0 {
			i++
			continue
		}
		for j := i; j < i+n; j++ {
			mask[j] = true
		}
		i += n
	}
	return mask
}

func hasRunePrefix(rs, prefix []rune) bool {
	if len(prefix) == 0 || len(prefix) > len(rs) {
		return false
	}
	for i := range prefix {
		if rs[i] != prefix[i] {
			return false
		}
	}
	return true
}

// runeCells returns the cell width of every rune of text.
func runeCells(text string) []int {
	rs := []rune(text)
	out := make([]int, len(rs))
	for i, r := range rs {
		w := grapheme.Width(string(r))
		if w < 1 {
			w = 1
		}
		out[i] = w
	}
	return out
}

// cellOffset returns the cell column at which rune i starts.
func cellOffset(cells []int, i int) int {
	if i > len(cells) {
		i = len(cells)
	}
	n := 0
	for _, w := range cells[:max(i, 0)] {
		n += w
	}
	return n
}

// cursorCells is the width of the cursor block at rune i.
func cursorCells(cells []int, i int) int {
	if i >= 0 && i < len(cells) {
		return cells[i]
	}
	return 1
}

func truncateCells(s string, w int) string {
	if w <= 0 {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, c := range grapheme.Split(s) {
		cw := grapheme.Width(c)
		if used+cw > w {
			break
		}
		sb.WriteString(c)
		used += cw
	}
	return sb.String()
}
