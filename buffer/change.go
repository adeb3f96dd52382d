package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	ChangeSourceLocal ChangeSource = iota
	ChangeSourceHistory
	ChangeSourceReformat
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceHistory:
		return "history"
	case ChangeSourceReformat:
		return "reformat"
	default:
		return "unknown"
	}
}

// SelectionState captures normalized selection state at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit describes the effective edit of a change, in the coordinates
// of the text before the change. InsertText is display text as spliced in,
// before reformatting.
type AppliedEdit struct {
	Range       Range
	InsertText  string
	DeletedText string
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	TextBefore      string
	TextAfter       string
	CursorBefore    int
	CursorAfter     int
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	Edit            AppliedEdit
}

type changeBuilder struct {
	source          ChangeSource
	versionBefore   uint64
	textBefore      string
	cursorBefore    int
	selectionBefore SelectionState
	edit            AppliedEdit
}

// LastChange returns the most recent text change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func selectionStateFromInternal(sel selectionState) SelectionState {
	if !sel.active {
		return SelectionState{}
	}
	r := NormalizeRange(Range{Start: sel.anchor, End: sel.end})
	if r.IsEmpty() {
		return SelectionState{}
	}
	return SelectionState{
		Active: true,
		Range:  r,
	}
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:          source,
		versionBefore:   b.version,
		textBefore:      string(b.text),
		cursorBefore:    b.cursor,
		selectionBefore: selectionStateFromInternal(b.sel),
	}
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Source:          cb.source,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		TextBefore:      cb.textBefore,
		TextAfter:       string(b.text),
		CursorBefore:    cb.cursorBefore,
		CursorAfter:     b.cursor,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  selectionStateFromInternal(b.sel),
		Edit:            cb.edit,
	}
	b.hasLastChange = true
}
