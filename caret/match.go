package caret

// isAtToken reports whether tok occurs anywhere in the window of
// max(len(tok)-1, 1) runes on each side of pos.
//
// This is a neighbourhood test, not an alignment test: a token sitting close
// to pos also counts, even when pos is on its boundary.
func isAtToken(rs []rune, pos int, tok []rune) bool {
	bound := len(tok) - 1
	if bound < 1 {
		bound = 1
	}
	start := clamp(pos-bound, 0, len(rs))
	end := clamp(pos+bound, 0, len(rs))
	return indexRunes(rs[start:end], tok) >= 0
}

// isAfterToken reports whether the len(tok) runes before pos equal tok.
func isAfterToken(rs []rune, pos int, tok []rune) bool {
	if len(tok) == 0 || pos < len(tok) || pos > len(rs) {
		return false
	}
	return equalRunes(rs[pos-len(tok):pos], tok)
}

// isBeforeToken reports whether the len(tok) runes after pos equal tok.
func isBeforeToken(rs []rune, pos int, tok []rune) bool {
	if len(tok) == 0 || pos < 0 || pos+len(tok) > len(rs) {
		return false
	}
	return equalRunes(rs[pos:pos+len(tok)], tok)
}

func indexRunes(s, sub []rune) int {
	if len(sub) == 0 {
		return 0
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if equalRunes(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
