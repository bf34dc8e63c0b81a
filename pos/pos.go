// Package pos carries source position across the input stream, tokenizer,
// and tree constructor, the way chtml's Span/Source pair does for the
// teacher's component templates, generalized here to plain (row, col).
package pos

import "strconv"

// Position is a 1-based (row, col) location in the original byte stream, as
// delivered by the input stream (C1) after CRLF normalization.
type Position struct {
	Row int
	Col int
}

// IsZero reports whether p is the uninitialized position.
func (p Position) IsZero() bool {
	return p.Row == 0 && p.Col == 0
}

// String renders "row:col" for use in diagnostics.
func (p Position) String() string {
	return strconv.Itoa(p.Row) + ":" + strconv.Itoa(p.Col)
}
