package main

import (
	"github.com/atotto/clipboard"

	"github.com/iw2rmb/tally/editor"
)

// systemClipboard bridges the editor to the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

// newSystemClipboard returns nil when no clipboard utility is available, which
// turns copy and paste into no-ops.
func newSystemClipboard() editor.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return systemClipboard{}
}
