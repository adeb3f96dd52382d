// Package format converts between canonical calculator expressions and the
// text shown to users.
//
// Canonical expressions use "." as the decimal point and carry no digit
// grouping. Display text groups integer digits in threes and uses the
// fractional symbol picked by the user's Separator.
package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iw2rmb/tally/token"
)

// Separator selects the grouping and fractional symbols.
type Separator int

const (
	SeparatorSpace Separator = iota
	SeparatorPeriod
	SeparatorComma
)

var ErrUnknownSeparator = errors.New("unknown separator")

func (s Separator) String() string {
	switch s {
	case SeparatorSpace:
		return "space"
	case SeparatorPeriod:
		return "period"
	case SeparatorComma:
		return "comma"
	default:
		return fmt.Sprintf("Separator(%d)", int(s))
	}
}

// ParseSeparator parses "space", "period" or "comma".
func ParseSeparator(s string) (Separator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "space", "":
		return SeparatorSpace, nil
	case "period", "dot":
		return SeparatorPeriod, nil
	case "comma":
		return SeparatorComma, nil
	default:
		return SeparatorSpace, fmt.Errorf("%w: %q", ErrUnknownSeparator, s)
	}
}

func (s Separator) MarshalText() ([]byte, error) {
	switch s {
	case SeparatorSpace, SeparatorPeriod, SeparatorComma:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeparator, int(s))
	}
}

func (s *Separator) UnmarshalText(b []byte) error {
	v, err := ParseSeparator(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Set and Type let a Separator be used as a command line flag value.
func (s *Separator) Set(v string) error { return s.UnmarshalText([]byte(v)) }

func (s *Separator) Type() string { return "separator" }

// Symbols holds the display symbols for digit grouping and the decimal point.
type Symbols struct {
	Grouping   string
	Fractional string
}

// SymbolsFor returns the display symbols for sep.
func SymbolsFor(sep Separator) Symbols {
	switch sep {
	case SeparatorPeriod:
		return Symbols{Grouping: ".", Fractional: ","}
	case SeparatorComma:
		return Symbols{Grouping: ",", Fractional: "."}
	default:
		return Symbols{Grouping: " ", Fractional: "."}
	}
}

// Clean turns display text back into a canonical expression: grouping
// symbols are dropped and the fractional symbol becomes ".".
func Clean(text string, sym Symbols) string {
	if sym.Grouping != "" {
		text = strings.ReplaceAll(text, sym.Grouping, "")
	}
	if sym.Fractional != "" && sym.Fractional != token.Dot {
		text = strings.ReplaceAll(text, sym.Fractional, token.Dot)
	}
	return text
}

// Display maps canonical decimal points in tokens to the fractional symbol,
// so tokens can be spliced into display text.
func Display(tokens string, sym Symbols) string {
	if sym.Fractional == "" || sym.Fractional == token.Dot {
		return tokens
	}
	return strings.ReplaceAll(tokens, token.Dot, sym.Fractional)
}

// Format groups the integer digits of every number in a canonical
// expression and applies the fractional symbol. Other text is copied as is.
func Format(expr string, sym Symbols) string {
	if expr == "" {
		return ""
	}

	rs := []rune(expr)
	var sb strings.Builder
	sb.Grow(len(expr) + len(expr)/3)

	i := 0
	for i < len(rs) {
		if !isNumberRune(rs[i]) {
			sb.WriteRune(rs[i])
			i++
			continue
		}
		j := i
		for j < len(rs) && isNumberRune(rs[j]) {
			j++
		}
		sb.WriteString(formatNumber(string(rs[i:j]), sym))
		i = j
	}
	return sb.String()
}

// formatNumber formats one run of digits and dots. Only the first dot is the
// decimal point; the fraction is not grouped, and any later dots in it are
// shown as the fractional symbol too.
func formatNumber(num string, sym Symbols) string {
	intPart, frac, hasDot := strings.Cut(num, token.Dot)

	var sb strings.Builder
	sb.WriteString(groupDigits(intPart, sym.Grouping))
	if hasDot {
		fractional := sym.Fractional
		if fractional == "" {
			fractional = token.Dot
		}
		sb.WriteString(fractional)
		sb.WriteString(Display(frac, sym))
	}
	return sb.String()
}

func groupDigits(digits, grouping string) string {
	if grouping == "" || len(digits) <= 3 {
		return digits
	}

	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(grouping)
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

func isNumberRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}
