package termdoc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Painter renders elements to a byte sink. The zero-argument NewPainter
// paints with ANSI styling; Monochrome degrades every element to plain
// text, which is a supported rendering mode rather than a failure.
//
// A Painter holds no state across calls and may be reused.
type Painter struct {
	profile termenv.Profile
}

// Option configures a Painter.
type Option func(*Painter)

// Monochrome disables all styling: every element paints as its raw text
// bytes, byte-identical to output that never had styling applied.
func Monochrome() Option {
	return func(p *Painter) {
		p.profile = termenv.Ascii
	}
}

// NewPainter returns a Painter with styling enabled unless an option says
// otherwise.
func NewPainter(opts ...Option) *Painter {
	p := &Painter{profile: termenv.ANSI}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Paint renders the elements in order, stopping at the first write error.
// Partially written output is not rolled back.
func (p *Painter) Paint(w io.Writer, els []El) error {
	for _, el := range els {
		if err := p.paintEl(w, el); err != nil {
			return err
		}
	}
	return nil
}

func (p *Painter) paintEl(w io.Writer, el El) error {
	switch e := el.(type) {
	case *Text:
		return p.paintText(w, e)
	case *Table:
		return p.paintTable(w, e)
	default:
		return fmt.Errorf("unknown element type %T", el)
	}
}

// paintText writes the styled form of t. A fully-default unit is written as
// its plain bytes with no escape sequences at all.
func (p *Painter) paintText(w io.Writer, t *Text) error {
	_, err := io.WriteString(w, t.style(p.profile).String())
	return err
}

// paintTable paints every cell into an intermediate tab-delimited buffer
// (tab between cells, none after the last cell of a row, newline after each
// row), aligns the columns, and writes the result to w in one call.
func (p *Painter) paintTable(w io.Writer, t *Table) error {
	var buf bytes.Buffer
	for _, row := range t.Rows {
		for i, cell := range row {
			for j := range cell {
				if err := p.paintText(&buf, &cell[j]); err != nil {
					return err
				}
			}
			if i < len(row)-1 {
				buf.WriteByte('\t')
			}
		}
		buf.WriteByte('\n')
	}
	_, err := w.Write(AlignColumns(buf.Bytes()))
	return err
}
