// Package clip provides an io.Writer that clips each line of terminal
// output to a maximum visual width. Styled lines keep their leading escape
// prefix and get a reset appended when clipped, so a truncated colored line
// does not bleed its style into the next one.
package clip

import (
	"bytes"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const ansiReset = "\033[0m"

// Writer clips every line written through it to width terminal cells.
// Output is forwarded line by line; call Flush to forward a trailing
// partial line.
type Writer struct {
	w     io.Writer
	width int
	buf   bytes.Buffer
}

// New returns a clipping writer. A width of zero or less disables clipping.
func New(w io.Writer, width int) *Writer {
	return &Writer{w: w, width: width}
}

func (c *Writer) Write(p []byte) (int, error) {
	written := 0
	for {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			c.buf.Write(p)
			return written + len(p), nil
		}
		c.buf.Write(p[:i])
		if err := c.emitLine(true); err != nil {
			return written, err
		}
		written += i + 1
		p = p[i+1:]
	}
}

// Flush forwards any buffered partial line without a trailing newline.
func (c *Writer) Flush() error {
	if c.buf.Len() == 0 {
		return nil
	}
	return c.emitLine(false)
}

func (c *Writer) emitLine(newline bool) error {
	line := clipLine(c.buf.String(), c.width)
	c.buf.Reset()
	if newline {
		line += "\n"
	}
	_, err := io.WriteString(c.w, line)
	return err
}

// clipLine truncates line to width visual cells. The visible text is
// measured and truncated with runewidth; a leading run of escape sequences
// is preserved and a reset appended so styling stays balanced.
func clipLine(line string, width int) string {
	if width <= 0 {
		return line
	}
	visible := stripANSI(line)
	if runewidth.StringWidth(visible) <= width {
		return line
	}
	clipped := runewidth.Truncate(visible, width, "")

	ansiEnd := 0
	for i := 0; i < len(line); i++ {
		if line[i] != '\033' {
			break
		}
		for i < len(line) && line[i] != 'm' {
			i++
		}
		ansiEnd = i + 1
	}
	if ansiEnd > 0 {
		return line[:ansiEnd] + clipped + ansiReset
	}
	return clipped
}

// stripANSI removes ANSI escape sequences so visual width can be measured.
func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\033':
			inEscape = true
		case inEscape && s[i] == 'm':
			inEscape = false
		case !inEscape:
			result.WriteByte(s[i])
		}
	}
	return result.String()
}
