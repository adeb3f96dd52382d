package buffer

import (
	"github.com/iw2rmb/tally/caret"
	"github.com/iw2rmb/tally/format"
)

type Options struct {
	HistoryLimit int // default: 1000; negative disables history

	// Separator picks the grouping and fractional symbols of the display text.
	Separator format.Separator

	// Matcher overrides the function token vocabulary (default: caret.Default).
	Matcher *caret.Matcher
}

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Buffer is the pure document state: display text, cursor, and selection.
type Buffer struct {
	text    []rune
	version uint64

	cursor int
	sel    selectionState

	opt     Options
	sep     format.Separator
	sym     format.Symbols
	matcher caret.Matcher
	hist    historyState

	lastChange    Change
	hasLastChange bool
}

// New returns a buffer holding expr, a canonical expression ("." decimal
// point, no grouping). The cursor is placed at the end.
func New(expr string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	m := caret.Default
	if opt.Matcher != nil {
		m = *opt.Matcher
	}
	sym := format.SymbolsFor(opt.Separator)
	b := &Buffer{
		text:    []rune(format.Format(expr, sym)),
		opt:     opt,
		sep:     opt.Separator,
		sym:     sym,
		matcher: m,
	}
	b.cursor = len(b.text)
	return b
}

// Text returns the display text.
func (b *Buffer) Text() string { return string(b.text) }

// Expression returns the canonical expression behind the display text.
func (b *Buffer) Expression() string { return format.Clean(string(b.text), b.sym) }

// Len returns the display text length in runes.
func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() int { return b.cursor }

func (b *Buffer) Separator() format.Separator { return b.sep }

func (b *Buffer) Symbols() format.Symbols { return b.sym }

// SetCursor moves the cursor to the legal position nearest to pos.
func (b *Buffer) SetCursor(pos int) {
	next := b.fixPos(pos)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the raw selection anchor/end without normalization.
//
// UI layers use it to keep the selection direction while still treating empty
// selections as inactive.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

// SetSelection selects r. Both ends are moved to legal positions; the cursor
// follows the selection end.
func (b *Buffer) SetSelection(r Range) {
	next := selectionState{
		active: true,
		anchor: b.fixPos(r.Start),
		end:    b.fixPos(r.End),
	}
	if next.anchor == next.end {
		next = selectionState{}
	}
	nextCursor := b.cursor
	if next.active {
		nextCursor = next.end
	}

	if selectionStateEqual(b.sel, next) && nextCursor == b.cursor {
		b.sel = next
		return
	}

	b.sel = next
	b.cursor = nextCursor
	b.version++
}

// SelectAll selects the whole display text.
func (b *Buffer) SelectAll() {
	b.SetSelection(Range{Start: 0, End: len(b.text)})
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	if _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{}
	b.version++
}

// SetSeparator reformats the text for sep. The cursor keeps its place in the
// expression; the selection is cleared.
func (b *Buffer) SetSeparator(sep format.Separator) {
	if sep == b.sep {
		return
	}

	prev := b.snapshot()
	change := b.beginChange(ChangeSourceReformat)

	expr := b.Expression()
	k := b.contentCount(b.cursor)

	b.sep = sep
	b.sym = format.SymbolsFor(sep)
	b.text = []rune(format.Format(expr, b.sym))
	b.cursor = b.fixPos(b.posAfterContent(k))
	b.sel = selectionState{}
	b.version++

	change.edit = AppliedEdit{
		Range:       Range{Start: 0, End: len([]rune(prev.text))},
		InsertText:  string(b.text),
		DeletedText: prev.text,
	}
	b.commitChange(change)
}

func (b *Buffer) fixPos(pos int) int {
	pos = clampInt(pos, 0, len(b.text))
	return b.matcher.FixCursor(string(b.text), pos, b.sym.Grouping)
}

func (b *Buffer) legal(pos int) bool {
	return b.matcher.Legal(string(b.text), pos, b.sym.Grouping)
}

// contentCount returns how many non-grouping runes precede pos.
func (b *Buffer) contentCount(pos int) int {
	return contentCount(b.text, clampInt(pos, 0, len(b.text)), []rune(b.sym.Grouping))
}

// posAfterContent returns the position right after the k-th non-grouping
// rune of the display text.
func (b *Buffer) posAfterContent(k int) int {
	return posAfterContent(b.text, k, []rune(b.sym.Grouping))
}

func contentCount(text []rune, pos int, grouping []rune) int {
	n := 0
	for i := 0; i < pos; {
		if hasPrefixAt(text, i, grouping) {
			i += len(grouping)
			continue
		}
		n++
		i++
	}
	return n
}

func posAfterContent(text []rune, k int, grouping []rune) int {
	if k <= 0 {
		return 0
	}
	n := 0
	for i := 0; i < len(text); {
		if hasPrefixAt(text, i, grouping) {
			i += len(grouping)
			continue
		}
		n++
		i++
		if n == k {
			return i
		}
	}
	return len(text)
}

func hasPrefixAt(text []rune, i int, prefix []rune) bool {
	if len(prefix) == 0 || i+len(prefix) > len(text) {
		return false
	}
	for j, r := range prefix {
		if text[i+j] != r {
			return false
		}
	}
	return true
}
