package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func click(m Model, x int, shift bool) Model {
	m, _ = m.Update(tea.MouseMsg{X: x, Y: 0, Shift: shift, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	return m
}

func TestMouse_ClickFixesCaret(t *testing.T) {
	m := New(Config{Text: "cos(8)+1"})

	cases := []struct {
		x    int
		want int
	}{
		{x: 0, want: 0},
		{x: 2, want: 0},
		{x: 3, want: 4},
		{x: 5, want: 5},
		{x: 7, want: 7},
		{x: 40, want: 8},
	}
	for _, tc := range cases {
		m = click(m, tc.x, false)
		if got := m.buf.Cursor(); got != tc.want {
			t.Fatalf("click at %d: got %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestMouse_ClickAccountsForPromptAndScroll(t *testing.T) {
	m := New(Config{Text: "123+456+789", Prompt: "> "})
	m = m.SetWidth(8) // 6 content cells, scrolled to the end

	m = click(m, 2, false)
	if got, want := m.buf.Cursor(), 6; got != want {
		t.Fatalf("click after prompt: got %d, want %d", got, want)
	}

	m = click(m, 0, false) // on the prompt
	if got, want := m.buf.Cursor(), 6; got != want {
		t.Fatalf("click on prompt: got %d, want %d", got, want)
	}
}

func TestMouse_DragSelects(t *testing.T) {
	m := New(Config{Text: "12+cos(3)"})
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 6, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})

	r, ok := m.buf.Selection()
	if !ok {
		t.Fatalf("expected selection after drag")
	}
	if got, want := r.End, 7; got != want {
		t.Fatalf("selection end: got %d, want %d", got, want)
	}

	m, _ = m.Update(tea.MouseMsg{X: 6, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionMotion})
	if r2, _ := m.buf.Selection(); r2 != r {
		t.Fatalf("motion after release changed selection: got %v, want %v", r2, r)
	}
}

func TestMouse_ShiftClickExtends(t *testing.T) {
	m := New(Config{Text: "1+2+3"})
	m = click(m, 1, false)
	m = click(m, 4, true)
	r, ok := m.buf.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	if r.Start != 1 || r.End != 4 {
		t.Fatalf("selection: got %v, want [1,4)", r)
	}
}

func TestMouse_IgnoredWhenBlurredOrOtherButton(t *testing.T) {
	m := New(Config{Text: "12"})
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if got := m.buf.Cursor(); got != 2 {
		t.Fatalf("right click moved cursor to %d", got)
	}

	m = m.Blur()
	m = click(m, 0, false)
	if got := m.buf.Cursor(); got != 2 {
		t.Fatalf("blurred click moved cursor to %d", got)
	}
}

func TestCursorScreenX(t *testing.T) {
	m := New(Config{Text: "1+2", Prompt: "> "})
	x, ok := m.CursorScreenX()
	if !ok || x != 5 {
		t.Fatalf("cursor x: got (%d, %v), want (5, true)", x, ok)
	}

	m = New(Config{Text: "123+456+789"}).SetWidth(4)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if x, ok := m.CursorScreenX(); !ok || x != 3 {
		t.Fatalf("scrolled cursor x: got (%d, %v), want (3, true)", x, ok)
	}
	if _, ok := m.posToScreen(0); ok {
		t.Fatalf("position 0 should be scrolled out of view")
	}
}
