package editor

import (
	"github.com/iw2rmb/tally/caret"
	"github.com/iw2rmb/tally/format"
)

// Config configures the editor Model.
type Config struct {
	// Initial canonical expression for the internal buffer.
	Text string

	// Forwarded to buffer.Options.
	Separator    format.Separator
	HistoryLimit int
	Matcher      *caret.Matcher

	// Rendering options.
	Prompt      string
	Placeholder string
	Style       Style

	KeyMap    KeyMap
	Clipboard Clipboard
	ReadOnly  bool

	// OnChange is called after every key press that changed the buffer
	// version (text, cursor, or selection).
	OnChange func(ChangeEvent)
}
