package termdoc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteRepr writes a copy-pastable representation of bytes to w: visible
// ASCII verbatim, common escapes as \t \n \r \\, everything else as \xNN.
// Useful for asserting on painted output in tests.
func WriteRepr(w io.Writer, b []byte) error {
	for _, c := range b {
		var err error
		switch {
		case c == '\t':
			_, err = io.WriteString(w, `\t`)
		case c == '\n':
			_, err = io.WriteString(w, `\n`)
		case c == '\r':
			_, err = io.WriteString(w, `\r`)
		case c == '\\':
			_, err = io.WriteString(w, `\\`)
		case c >= 32 && c <= 126: // visible ASCII
			_, err = fmt.Fprintf(w, "%c", c)
		default:
			_, err = fmt.Fprintf(w, `\x%02x`, c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Repr returns the WriteRepr form of b as a string.
func Repr(b []byte) string {
	var sb strings.Builder
	_ = WriteRepr(&sb, b)
	return sb.String()
}

// DiffRepr returns the repr forms of expected and result. When the two byte
// streams differ it also prints both, raw and escaped, to stderr so the
// difference is visible. Assert equality on the returned strings to get
// readable failure messages:
//
//	expectedRepr, resultRepr := termdoc.DiffRepr(expected, result)
//	require.Equal(t, expectedRepr, resultRepr)
func DiffRepr(expected, result []byte) (string, string) {
	expectedRepr := Repr(expected)
	resultRepr := Repr(result)
	if bytes.Equal(expected, result) {
		return expectedRepr, resultRepr
	}

	fmt.Fprintln(os.Stderr, "bytes are not equal")
	fmt.Fprintln(os.Stderr, "## EXPECTED")
	_, _ = os.Stderr.Write(expected)
	fmt.Fprintln(os.Stderr, "\n# RAW-EXPECTED")
	fmt.Fprintln(os.Stderr, expectedRepr)
	fmt.Fprintln(os.Stderr, "\n## RESULT")
	_, _ = os.Stderr.Write(result)
	fmt.Fprintln(os.Stderr, "\n# RAW-RESULT")
	fmt.Fprintln(os.Stderr, resultRepr)

	return expectedRepr, resultRepr
}
