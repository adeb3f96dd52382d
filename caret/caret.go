package caret

import (
	"unicode/utf8"

	"github.com/iw2rmb/tally/token"
)

// Matcher looks up function tokens in expression text.
//
// Tokens are tested in the order they were given; the first match wins.
type Matcher struct {
	funcs [][]rune
}

// Default matches the vocabulary from token.FuncsWithBracket.
var Default = NewMatcher(token.FuncsWithBracket())

// NewMatcher builds a Matcher over funcs, kept in the given order.
//
// Tokens shorter than two runes are skipped: a single rune atom could never be
// split, and it would make the text bounds illegal.
func NewMatcher(funcs []string) Matcher {
	m := Matcher{funcs: make([][]rune, 0, len(funcs))}
	for _, f := range funcs {
		if utf8.RuneCountInString(f) < 2 {
			continue
		}
		m.funcs = append(m.funcs, []rune(f))
	}
	return m
}

// Tokens returns the matcher's function tokens in priority order.
func (m Matcher) Tokens() []string {
	out := make([]string, 0, len(m.funcs))
	for _, f := range m.funcs {
		out = append(out, string(f))
	}
	return out
}

// FixCursor returns the legal position nearest to pos.
//
// Empty text returns pos unchanged. Otherwise pos is clamped to [0, len] and
// the nearest legal positions on both sides are compared; on equal distance
// the left one wins.
func (m Matcher) FixCursor(text string, pos int, grouping string) int {
	if text == "" {
		return pos
	}

	rs := []rune(text)
	sep := []rune(grouping)
	pos = clamp(pos, 0, len(rs))

	left := pos
	for left > 0 && m.illegalAt(rs, left, sep) {
		left--
	}

	right := pos
	for right < len(rs) && m.illegalAt(rs, right, sep) {
		right++
	}

	if m.illegalAt(rs, right, sep) {
		return left
	}
	if abs(right-pos) < abs(left-pos) {
		return right
	}
	return left
}

// Legal reports whether pos is a legal caret position in text.
func (m Matcher) Legal(text string, pos int, grouping string) bool {
	rs := []rune(text)
	return !m.illegalAt(rs, clamp(pos, 0, len(rs)), []rune(grouping))
}

// TokenLengthAhead returns the rune length of the function token ending at
// pos, or 1 when none does.
func (m Matcher) TokenLengthAhead(text string, pos int) int {
	rs := []rune(text)
	pos = clamp(pos, 0, len(rs))
	for _, f := range m.funcs {
		if isAfterToken(rs, pos, f) {
			return len(f)
		}
	}
	return 1
}

// TokenAhead returns the function token ending at pos, or the single rune
// before pos. It returns "" at position 0.
func (m Matcher) TokenAhead(text string, pos int) string {
	rs := []rune(text)
	pos = clamp(pos, 0, len(rs))
	for _, f := range m.funcs {
		if isAfterToken(rs, pos, f) {
			return string(f)
		}
	}
	return string(rs[clamp(pos-1, 0, len(rs)):pos])
}

// TokenAfter returns the function token starting at pos, or the single rune
// at pos. It returns "" at the end of text.
func (m Matcher) TokenAfter(text string, pos int) string {
	rs := []rune(text)
	pos = clamp(pos, 0, len(rs))
	for _, f := range m.funcs {
		if isBeforeToken(rs, pos, f) {
			return string(f)
		}
	}
	return string(rs[pos:clamp(pos+1, 0, len(rs))])
}

func (m Matcher) illegalAt(rs []rune, pos int, grouping []rune) bool {
	// "123,|456"
	if len(grouping) > 0 && isAfterToken(rs, pos, grouping) {
		return true
	}
	// "123+c|os(8)"
	for _, f := range m.funcs {
		if isAtToken(rs, pos, f) {
			return true
		}
	}
	return false
}

// FixCursor calls Default.FixCursor.
func FixCursor(text string, pos int, grouping string) int {
	return Default.FixCursor(text, pos, grouping)
}

// Legal calls Default.Legal.
func Legal(text string, pos int, grouping string) bool {
	return Default.Legal(text, pos, grouping)
}

// TokenLengthAhead calls Default.TokenLengthAhead.
func TokenLengthAhead(text string, pos int) int {
	return Default.TokenLengthAhead(text, pos)
}

// TokenAhead calls Default.TokenAhead.
func TokenAhead(text string, pos int) string {
	return Default.TokenAhead(text, pos)
}

// TokenAfter calls Default.TokenAfter.
func TokenAfter(text string, pos int) string {
	return Default.TokenAfter(text, pos)
}
