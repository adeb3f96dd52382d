// Package token defines the closed vocabulary of calculator expression tokens.
//
// Tokens are plain strings. Every symbol is a single rune except function
// names, which are multi-rune atoms. Function tokens are also exposed with
// their opening bracket attached, which is the form the caret logic treats as
// indivisible.
package token

import "strings"

// Digits.
const (
	Digit0 = "0"
	Digit1 = "1"
	Digit2 = "2"
	Digit3 = "3"
	Digit4 = "4"
	Digit5 = "5"
	Digit6 = "6"
	Digit7 = "7"
	Digit8 = "8"
	Digit9 = "9"

	// Dot is the canonical decimal point. Display text may use another
	// fractional symbol; see package format.
	Dot = "."
)

// Operators.
const (
	Plus         = "+"
	Minus        = "−"
	Multiply     = "×"
	Divide       = "÷"
	LeftBracket  = "("
	RightBracket = ")"
	Power        = "^"
	Sqrt         = "√"
	Factorial    = "!"
	Percent      = "%"
	Modulo       = "#"
)

// Constants.
const (
	Pi = "π"
	E  = "e"
)

// Function names, without brackets.
const (
	ArSin = "sin⁻¹"
	ArCos = "cos⁻¹"
	AcTan = "tan⁻¹"
	Sin   = "sin"
	Cos   = "cos"
	Tan   = "tan"
	Exp   = "exp"
	Log   = "log"
	Ln    = "ln"
)

var digits = []string{Digit0, Digit1, Digit2, Digit3, Digit4, Digit5, Digit6, Digit7, Digit8, Digit9}

var operators = []string{Plus, Minus, Multiply, Divide, LeftBracket, RightBracket, Power, Sqrt, Factorial, Percent, Modulo}

var constants = []string{Pi, E}

// Ordered longest first; this is the match priority.
var funcs = []string{ArSin, ArCos, AcTan, Sin, Cos, Tan, Exp, Log, Ln}

var funcsWithBracket = func() []string {
	out := make([]string, 0, len(funcs))
	for _, f := range funcs {
		out = append(out, f+LeftBracket)
	}
	return out
}()

// Digits returns the ten digit tokens.
func Digits() []string { return append([]string(nil), digits...) }

// DigitsWithDot returns the digit tokens followed by the decimal point.
func DigitsWithDot() []string { return append(Digits(), Dot) }

// Operators returns the operator tokens.
func Operators() []string { return append([]string(nil), operators...) }

// Constants returns the constant tokens.
func Constants() []string { return append([]string(nil), constants...) }

// Funcs returns the function names in match priority order.
func Funcs() []string { return append([]string(nil), funcs...) }

// FuncsWithBracket returns every function name with its opening bracket, in
// match priority order (longest first).
func FuncsWithBracket() []string { return append([]string(nil), funcsWithBracket...) }

// IsDigit reports whether s is a digit token or the decimal point.
func IsDigit(s string) bool {
	if s == Dot {
		return true
	}
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

// IsOperator reports whether s is an operator token.
func IsOperator(s string) bool { return contains(operators, s) }

// IsConstant reports whether s is a constant token.
func IsConstant(s string) bool { return contains(constants, s) }

// IsFunc reports whether s is a function token, with or without its opening
// bracket.
func IsFunc(s string) bool {
	return contains(funcs, s) || contains(funcsWithBracket, s)
}

// IsKnown reports whether s is any token of the vocabulary.
func IsKnown(s string) bool {
	return IsDigit(s) || IsOperator(s) || IsConstant(s) || IsFunc(s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Longer aliases first so "asin" wins over "sin".
var aliases = strings.NewReplacer(
	"asin", ArSin,
	"acos", ArCos,
	"atan", AcTan,
	"sqrt", Sqrt,
	"pi", Pi,
	"*", Multiply,
	"/", Divide,
	"-", Minus,
	"–", Minus,
)

// Normalize rewrites keyboard aliases into canonical tokens, e.g. "*" to "×"
// and "sqrt" to "√". Text that is already canonical is returned unchanged.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	return aliases.Replace(s)
}
