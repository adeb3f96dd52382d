// Package caret places the caret inside calculator expressions.
//
// Positions are 0-based rune offsets into the expression text, in [0, len].
// A position is legal when it does not sit right after the grouping separator
// and does not split a function token such as "cos(".
//
// All functions are pure and never fail: out-of-range positions are clamped
// to the text bounds before use.
package caret
