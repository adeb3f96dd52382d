package editor

import (
	"strings"

	"github.com/iw2rmb/tally/internal/grapheme"
	"github.com/iw2rmb/tally/token"
)

// keyTokens maps typed keyboard runes to expression tokens. Letters are
// shortcuts for functions and constants; everything else is ASCII spelling
// of an operator.
var keyTokens = map[rune]string{
	'.': token.Dot,
	',': token.Dot,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Multiply,
	'x': token.Multiply,
	'/': token.Divide,
	':': token.Divide,
	'(': token.LeftBracket,
	')': token.RightBracket,
	'^': token.Power,
	'!': token.Factorial,
	'%': token.Percent,
	'#': token.Modulo,
	'r': token.Sqrt,
	'p': token.Pi,
	'e': token.E,

	's': token.Sin + token.LeftBracket,
	'c': token.Cos + token.LeftBracket,
	't': token.Tan + token.LeftBracket,
	'S': token.ArSin + token.LeftBracket,
	'C': token.ArCos + token.LeftBracket,
	'T': token.AcTan + token.LeftBracket,
	'l': token.Ln + token.LeftBracket,
	'L': token.Log + token.LeftBracket,
	'E': token.Exp + token.LeftBracket,
}

// TokenForKey returns the token typed by r.
func TokenForKey(r rune) (string, bool) {
	if r >= '0' && r <= '9' {
		return string(r), true
	}
	if s, ok := keyTokens[r]; ok {
		return s, true
	}
	s := string(r)
	if token.IsKnown(s) {
		return s, true
	}
	return "", false
}

// tokensForKeys converts a burst of typed runes. Unknown runes are dropped.
func tokensForKeys(rs []rune) string {
	var sb strings.Builder
	for _, r := range rs {
		if s, ok := TokenForKey(r); ok {
			sb.WriteString(s)
		}
	}
	return sb.String()
}

// pasteAliases are ASCII spellings accepted in pasted text on top of the ones
// token.Normalize rewrites. Letter shortcuts for functions are not applied.
var pasteAliases = map[rune]string{
	'x': token.Multiply,
	'X': token.Multiply,
	':': token.Divide,
}

// pastedTokens turns external text into a canonical expression: control
// characters and spaces are dropped, ASCII spellings are normalized and
// anything outside the vocabulary is discarded. Commas are treated as
// grouping and dropped.
func pastedTokens(s string) string {
	s = grapheme.Sanitize(s)
	s = strings.Join(strings.Fields(s), "")
	rs := []rune(token.Normalize(s))

	funcs := token.Funcs()
	var sb strings.Builder
	for i := 0; i < len(rs); {
		if f := funcAt(rs[i:], funcs); f != "" {
			sb.WriteString(f)
			i += len([]rune(f))
			continue
		}
		r := string(rs[i])
		if token.IsKnown(r) {
			sb.WriteString(r)
		} else if a, ok := pasteAliases[rs[i]]; ok {
			sb.WriteString(a)
		}
		i++
	}
	return sb.String()
}

// funcAt returns the first of funcs that prefixes rs.
func funcAt(rs []rune, funcs []string) string {
	for _, f := range funcs {
		if hasRunePrefix(rs, []rune(f)) {
			return f
		}
	}
	return ""
}
