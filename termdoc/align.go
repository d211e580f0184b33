package termdoc

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlignColumns rewrites a tab-delimited, newline-terminated buffer so that
// all cells sharing a column share that column's maximum display width,
// with a single space between columns. The trailing cell of each line is
// emitted verbatim: it is neither padded nor counted toward any column
// width, so ragged rows never grow fabricated trailing cells.
//
// Widths are measured with lipgloss.Width, which ignores embedded ANSI
// escape sequences, so styled cells align the same as plain ones.
func AlignColumns(buf []byte) []byte {
	if len(buf) == 0 {
		return buf
	}

	lines := strings.Split(strings.TrimSuffix(string(buf), "\n"), "\n")
	rows := make([][]string, len(lines))
	var widths []int
	for i, line := range lines {
		cells := strings.Split(line, "\t")
		rows[i] = cells
		for j := 0; j < len(cells)-1; j++ {
			w := lipgloss.Width(cells[j])
			if j >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[j] {
				widths[j] = w
			}
		}
	}

	var out strings.Builder
	out.Grow(len(buf))
	for _, cells := range rows {
		for j, cell := range cells {
			if j < len(cells)-1 {
				out.WriteString(padRight(cell, widths[j]))
				out.WriteByte(' ')
			} else {
				out.WriteString(cell)
			}
		}
		out.WriteByte('\n')
	}
	return []byte(out.String())
}

// padRight pads a string with spaces to the given visual width. Unicode
// and embedded escape sequences are measured correctly via lipgloss.Width.
func padRight(s string, width int) string {
	vw := lipgloss.Width(s)
	if vw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vw)
}
