package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 && text != "" {
		if fallback := uniseg.StringWidth(text); fallback > w {
			w = fallback
		}
	}
	return w
}

// IsControl reports whether cluster contains a control or format rune.
func IsControl(cluster string) bool {
	for _, r := range cluster {
		if unicode.IsControl(r) || unicode.Is(unicode.Cf, r) {
			return true
		}
	}
	return false
}

// Sanitize drops control clusters (newlines, tabs, escapes) from text.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for _, c := range Split(text) {
		if IsControl(c) {
			continue
		}
		sb.WriteString(c)
	}
	return sb.String()
}
