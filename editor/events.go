package editor

import "github.com/iw2rmb/tally/buffer"

type ChangeEvent struct {
	Version   uint64
	Cursor    int
	Selection buffer.SelectionState

	// Text is the display text; Expression is its canonical form.
	Text       string
	Expression string

	// Change is the last text change, if any. Cursor-only and selection-only
	// updates leave it pointing at the previous text change.
	Change    buffer.Change
	HasChange bool
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version:    b.Version(),
		Cursor:     b.Cursor(),
		Text:       b.Text(),
		Expression: b.Expression(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection = buffer.SelectionState{Active: true, Range: r}
	}
	ev.Change, ev.HasChange = b.LastChange()
	return ev
}
