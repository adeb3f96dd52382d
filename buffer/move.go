package buffer

import "unicode/utf8"

type MoveUnit int

const (
	MoveToken MoveUnit = iota
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome // text start
	DirEnd  // text end
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := b.moveCursor(prevCursor, m)
	nextCursor = clampInt(nextCursor, 0, len(b.text))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func (b *Buffer) moveCursor(p int, m Move) int {
	switch m.Unit {
	case MoveToken:
		return b.moveToken(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

// moveToken steps over one whole token and keeps going in the same direction
// while the position is illegal (e.g. right after a grouping separator).
func (b *Buffer) moveToken(p int, dir MoveDir) int {
	text := string(b.text)

	switch dir {
	case DirLeft:
		if p == 0 {
			return p
		}
		next := p - b.matcher.TokenLengthAhead(text, p)
		for next > 0 && !b.legal(next) {
			next--
		}
		return clampInt(next, 0, p)
	case DirRight:
		if p == len(b.text) {
			return p
		}
		next := p + utf8.RuneCountInString(b.matcher.TokenAfter(text, p))
		for next < len(b.text) && !b.legal(next) {
			next++
		}
		if !b.legal(next) {
			return b.fixPos(next)
		}
		return next
	case DirHome:
		return 0
	case DirEnd:
		return len(b.text)
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p int, dir MoveDir) int {
	switch dir {
	case DirHome, DirLeft:
		return 0
	case DirEnd, DirRight:
		return len(b.text)
	default:
		return p
	}
}
