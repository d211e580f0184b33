package termdoc

import "io"

// El is one paintable unit of top-level output: either a *Text or a *Table.
// The interface is sealed; no other implementations exist.
type El interface {
	// Paint renders the element, styled, into w.
	Paint(w io.Writer) error

	// SetPlain recursively clears all styling from the element.
	SetPlain()

	isEl()
}

// PlainText returns a Text element with no styling.
func PlainText(content string) El {
	t := NewText(content)
	return &t
}

// Paint renders the elements in order into w with styling enabled,
// stopping at the first write error. Already-written bytes are not rolled
// back on failure.
func Paint(w io.Writer, els []El) error {
	return NewPainter().Paint(w, els)
}
