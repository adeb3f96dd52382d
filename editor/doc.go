// Package editor provides a Bubble Tea input field for calculator
// expressions, backed by the buffer package.
//
// The package is responsible for key handling, horizontal scrolling,
// token-aware rendering, clipboard integration, and change events. All
// caret placement rules live in the buffer and caret packages.
package editor
