// Package buffer implements the pure, single-line document model for a
// calculator expression field.
//
// Positions are 0-based rune offsets into the display text. Ranges are
// half-open selections: [Start, End).
//
// Every mutation reformats the text for the configured separator and leaves
// the cursor and both selection ends on legal caret positions (see package
// caret). A Buffer is not safe for concurrent use.
package buffer
