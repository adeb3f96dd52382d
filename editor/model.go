package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tally/buffer"
	"github.com/iw2rmb/tally/caret"
	"github.com/iw2rmb/tally/format"
	"github.com/iw2rmb/tally/internal/grapheme"
)

// Model is a Bubble Tea component that renders and edits a single-line
// expression buffer.
type Model struct {
	cfg     Config
	buf     *buffer.Buffer
	matcher caret.Matcher

	focused bool

	// width is the total render width in cells, prompt included.
	// Zero or negative means unbounded.
	width   int
	xOffset int

	mouseAnchor   int
	mouseDragging bool

	lastBufVersion uint64
}

func New(cfg Config) Model {
	if keyMapIsZero(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	matcher := caret.Default
	if cfg.Matcher != nil {
		matcher = *cfg.Matcher
	}
	m := Model{
		cfg: cfg,
		buf: buffer.New(cfg.Text, buffer.Options{
			HistoryLimit: cfg.HistoryLimit,
			Separator:    cfg.Separator,
			Matcher:      cfg.Matcher,
		}),
		matcher: matcher,
		focused: true,
	}
	m.lastBufVersion = m.buf.Version()
	m.followCursor()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Expression returns the canonical form of the current text.
func (m Model) Expression() string { return m.buf.Expression() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	m.followCursor()
	return m
}

func (m Model) Width() int { return m.width }

func (m Model) Focus() Model {
	m.focused = true
	m.followCursor()
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetSeparator reformats the text for sep, keeping the cursor on the same
// expression position.
func (m Model) SetSeparator(sep format.Separator) Model {
	m.cfg.Separator = sep
	m.buf.SetSeparator(sep)
	m.syncFromBuffer()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetWidth(msg.Width), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		m.syncFromBuffer()
		return m, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		m.syncFromBuffer()
		return m, cmd
	default:
		// Hosts may mutate the buffer directly.
		m.syncFromBuffer()
		return m, nil
	}
}

// syncFromBuffer scrolls to the cursor and emits OnChange when the buffer
// version moved since the last sync.
func (m *Model) syncFromBuffer() {
	if m.buf == nil {
		return
	}
	m.followCursor()
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return
	}
	m.lastBufVersion = ver
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
}

// contentWidth is the number of cells available for the text.
func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - grapheme.Width(m.cfg.Prompt)
	if w < 1 {
		w = 1
	}
	return w
}

// followCursor keeps the cursor cell inside the visible window.
func (m *Model) followCursor() {
	w := m.contentWidth()
	if w <= 0 || m.buf == nil {
		m.xOffset = 0
		return
	}
	cells := runeCells(m.buf.Text())
	pos := m.buf.Cursor()
	cur := cellOffset(cells, pos)
	cw := cursorCells(cells, pos)

	// Past the last rune the cursor still occupies one cell.
	total := cellOffset(cells, len(cells)) + 1
	if m.xOffset > total-w {
		m.xOffset = total - w
	}
	if cur < m.xOffset {
		m.xOffset = cur
	}
	if cur+cw > m.xOffset+w {
		m.xOffset = cur + cw - w
	}
	if m.xOffset < 0 {
		m.xOffset = 0
	}
}
