package buffer

import "github.com/iw2rmb/tally/format"

type bufferSnapshot struct {
	text   string
	sym    format.Symbols
	cursor int
	sel    selectionState
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		text:   string(b.text),
		sym:    b.sym,
		cursor: b.cursor,
		sel:    b.sel,
	}
}

// restore brings back a snapshot. Snapshots taken under another separator
// are reformatted; grouping and fractional symbols are one rune each, so
// positions carry over unchanged.
func (b *Buffer) restore(s bufferSnapshot) {
	text := s.text
	if s.sym != b.sym {
		text = format.Format(format.Clean(text, s.sym), b.sym)
	}
	b.text = []rune(text)
	b.cursor = b.fixPos(s.cursor)

	if !s.sel.active {
		b.sel = selectionState{}
		return
	}

	anchor := b.fixPos(s.sel.anchor)
	end := b.fixPos(s.sel.end)
	if anchor == end {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{active: true, anchor: anchor, end: end}
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	b.hist.undo = append(b.hist.undo, prev)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}

	cur := b.snapshot()
	change := b.beginChange(ChangeSourceHistory)

	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, cur)

	b.restore(prev)
	b.version++
	change.edit = replacementEdit(cur.text, string(b.text))
	b.commitChange(change)
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}

	cur := b.snapshot()
	change := b.beginChange(ChangeSourceHistory)

	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]

	limit := b.opt.HistoryLimit
	if limit > 0 {
		b.hist.undo = append(b.hist.undo, cur)
		if len(b.hist.undo) > limit {
			b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
		}
	}

	b.restore(next)
	b.version++
	change.edit = replacementEdit(cur.text, string(b.text))
	b.commitChange(change)
	return true
}

func replacementEdit(beforeText, afterText string) AppliedEdit {
	return AppliedEdit{
		Range:       Range{Start: 0, End: len([]rune(beforeText))},
		InsertText:  afterText,
		DeletedText: beforeText,
	}
}
