package termdoc

import (
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// Text is a single run of text with its styling. The zero value is an empty
// unstyled run; styling never modifies Content.
type Text struct {
	Content    string
	Bold       bool
	Italic     bool
	Color      Color
	Background Color
}

// NewText returns an unstyled Text with the given content.
func NewText(content string) Text {
	return Text{Content: content}
}

// IsDefault reports whether every style flag is off.
func (t *Text) IsDefault() bool {
	return !t.Bold && !t.Italic && t.Color == Plain && t.Background == Plain
}

// SetPlain clears all styling, leaving Content untouched. Idempotent.
func (t *Text) SetPlain() {
	t.Bold = false
	t.Italic = false
	t.Color = Plain
	t.Background = Plain
}

// Width returns the display width of Content in terminal cells.
// Uses go-runewidth for accurate handling of East Asian Wide characters
// and other Unicode that occupies multiple cells.
func (t *Text) Width() int {
	return runewidth.StringWidth(t.Content)
}

// style builds the additive termenv style descriptor for t. Attributes are
// applied in a fixed order (bold, italic, foreground, background) so output
// bytes are deterministic. A default Text produces a style with no
// attributes, which renders Content unchanged.
func (t *Text) style(profile termenv.Profile) termenv.Style {
	s := profile.String(t.Content)
	if t.Bold {
		s = s.Bold()
	}
	if t.Italic {
		s = s.Italic()
	}
	if c, ok := t.Color.ANSI(); ok {
		s = s.Foreground(c)
	}
	if c, ok := t.Background.ANSI(); ok {
		s = s.Background(c)
	}
	return s
}

// Paint renders the text, styled, into w.
func (t *Text) Paint(w io.Writer) error {
	return NewPainter().paintText(w, t)
}

func (t *Text) isEl() {}
