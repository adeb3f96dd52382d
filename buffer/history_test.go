package buffer

import (
	"testing"

	"github.com/iw2rmb/tally/format"
)

func TestBuffer_UndoRedo_BasicTyping(t *testing.T) {
	b := New("", commaOpts)
	if b.CanUndo() {
		t.Fatalf("expected CanUndo=false")
	}
	if b.CanRedo() {
		t.Fatalf("expected CanRedo=false")
	}

	for _, d := range []string{"1", "2", "3", "4"} {
		b.InsertTokens(d)
	}
	if !b.CanUndo() {
		t.Fatalf("expected CanUndo=true")
	}

	v := b.Version()
	if ok := b.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), "123"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 3; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
	if !b.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}

	if ok := b.Redo(); !ok {
		t.Fatalf("expected Redo=true")
	}
	if got, want := b.Text(), "1,234"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 5; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected change")
	}
	if got, want := ch.Source, ChangeSourceHistory; got != want {
		t.Fatalf("source=%v, want %v", got, want)
	}
}

func TestBuffer_UndoRedo_EmptyStacks_NoMutation(t *testing.T) {
	b := New("12", commaOpts)
	text := b.Text()
	cursor := b.Cursor()
	v := b.Version()

	if b.Undo() {
		t.Fatalf("expected Undo=false")
	}
	if b.Redo() {
		t.Fatalf("expected Redo=false")
	}
	if got := b.Text(); got != text {
		t.Fatalf("text=%q, want %q", got, text)
	}
	if got := b.Cursor(); got != cursor {
		t.Fatalf("cursor=%d, want %d", got, cursor)
	}
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestBuffer_NewEditClearsRedo(t *testing.T) {
	b := New("", commaOpts)
	b.InsertTokens("1")
	b.InsertTokens("2")
	b.Undo()
	if !b.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}
	b.InsertTokens("+")
	if b.CanRedo() {
		t.Fatalf("expected CanRedo=false after new edit")
	}
	if got, want := b.Text(), "1+"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_HistoryLimit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2, Separator: format.SeparatorComma})
	for _, d := range []string{"1", "2", "3", "4"} {
		b.InsertTokens(d)
	}

	undos := 0
	for b.Undo() {
		undos++
	}
	if undos != 2 {
		t.Fatalf("undos=%d, want 2", undos)
	}
	if got, want := b.Text(), "12"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_HistoryDisabled(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.InsertTokens("1")
	if b.CanUndo() {
		t.Fatalf("expected CanUndo=false with history disabled")
	}
}

func TestBuffer_Undo_AcrossSeparatorChange(t *testing.T) {
	b := New("", commaOpts)
	b.InsertTokens("1234")
	b.InsertTokens("5") // "12,345"

	b.SetSeparator(format.SeparatorPeriod)
	if got, want := b.Text(), "12.345"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	b.Undo()
	if got, want := b.Text(), "1.234"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 5; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestBuffer_Undo_RestoresSelection(t *testing.T) {
	b := New("123", commaOpts)
	b.SetSelection(Range{Start: 0, End: 2})
	b.DeleteSelection()
	if got, want := b.Text(), "3"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	b.Undo()
	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection restored")
	}
	if got, want := r, (Range{Start: 0, End: 2}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
}
