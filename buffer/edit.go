package buffer

import (
	"unicode/utf8"

	"github.com/iw2rmb/tally/format"
)

// InsertTokens inserts canonical tokens at the cursor, or replaces the active
// selection. The text is reformatted and the cursor lands right after the
// inserted tokens, on a legal position.
func (b *Buffer) InsertTokens(s string) {
	if s == "" {
		if _, ok := b.Selection(); ok {
			b.DeleteSelection()
		}
		return
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(r, format.Display(s, b.sym))
}

// DeleteTokens applies backspace semantics: the selection, or the whole token
// before the cursor ("cos(" goes at once).
func (b *Buffer) DeleteTokens() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == 0 {
		return
	}

	n := b.matcher.TokenLengthAhead(string(b.text), b.cursor)
	start := clampInt(b.cursor-n, 0, b.cursor)
	b.edit(Range{Start: start, End: b.cursor}, "")
}

// DeleteForward applies delete-key semantics: the selection, or the whole
// token after the cursor. A grouping separator right after the cursor is
// removed together with the token that follows it.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == len(b.text) {
		return
	}

	start := b.cursor
	grouping := []rune(b.sym.Grouping)
	if hasPrefixAt(b.text, start, grouping) {
		start += len(grouping)
	}
	tok := b.matcher.TokenAfter(string(b.text), start)
	end := clampInt(start+utf8.RuneCountInString(tok), 0, len(b.text))
	b.edit(Range{Start: b.cursor, End: end}, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.edit(r, "")
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	if len(b.text) == 0 {
		return
	}
	b.edit(Range{Start: 0, End: len(b.text)}, "")
}

// edit replaces r with display text ins, reformats, and records the change.
func (b *Buffer) edit(r Range, ins string) {
	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	applied, changed := b.replaceRange(r, ins)
	if !changed {
		return
	}

	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
	change.edit = applied
	b.commitChange(change)
}

func (b *Buffer) replaceRange(r Range, ins string) (applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.text)))
	if r.IsEmpty() && ins == "" {
		return AppliedEdit{}, false
	}

	insRunes := []rune(ins)
	next := make([]rune, 0, len(b.text)-r.Len()+len(insRunes))
	next = append(next, b.text[:r.Start]...)
	next = append(next, insRunes...)
	next = append(next, b.text[r.End:]...)

	grouping := []rune(b.sym.Grouping)
	k := contentCount(next, r.Start+len(insRunes), grouping)
	formatted := []rune(format.Format(format.Clean(string(next), b.sym), b.sym))
	if string(formatted) == string(b.text) {
		return AppliedEdit{}, false
	}

	applied = AppliedEdit{
		Range:       r,
		InsertText:  ins,
		DeletedText: string(b.text[r.Start:r.End]),
	}

	b.text = formatted
	b.cursor = b.fixPos(posAfterContent(b.text, k, grouping))
	return applied, true
}
