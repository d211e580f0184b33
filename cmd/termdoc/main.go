// termdoc renders declarative styled-text documents to the terminal.
//
// Usage:
//
//	termdoc document.yaml
//	cat document.yaml | termdoc
//
// A document is a YAML sequence of strings, styled-text records, groups,
// and tables:
//
//	- "plain text\n"
//	- {t: "bold text\n", b: true}
//	- table:
//	  - ["header1", "header2"]
//	  - ["col1", "col2"]
//
// Styling is enabled when stdout is a terminal and degrades to plain text
// when piped; -color and -mono force either mode.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/termdoc/internal/clip"
	"github.com/dkoosis/termdoc/internal/version"
	"github.com/dkoosis/termdoc/termdoc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("termdoc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	monoFlag := fs.Bool("mono", false, "Force monochrome output")
	colorFlag := fs.Bool("color", false, "Force styled output even when piped")
	plainFlag := fs.Bool("plain", false, "Strip all styling from the document before painting")
	clipFlag := fs.Bool("clip", false, "Clip output lines to the terminal width")
	verbosity := fs.Int("v", 0, "Verbosity (0=warn, 1=info, 2=debug, 3=trace)")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintln(stdout, "termdoc "+version.String())
		return 0
	}

	log := newLogger(stderr, *verbosity)

	if *monoFlag && *colorFlag {
		fmt.Fprintln(stderr, "termdoc: -mono and -color are mutually exclusive")
		return 2
	}

	input, name, code := readDocument(fs.Args(), stdin, stderr)
	if code >= 0 {
		return code
	}
	log.Debug().Str("source", name).Int("bytes", len(input)).Msg("document read")

	els, err := termdoc.From(yaml.Unmarshal, input)
	if err != nil {
		fmt.Fprintf(stderr, "termdoc: %s: %v\n", name, err)
		return 2
	}
	log.Debug().Int("elements", len(els)).Msg("document normalized")

	if *plainFlag {
		for _, el := range els {
			el.SetPlain()
		}
	}

	styled := *colorFlag || (!*monoFlag && isTTYWriter(stdout))
	var opts []termdoc.Option
	if !styled {
		opts = append(opts, termdoc.Monochrome())
	}
	log.Info().Bool("styled", styled).Msg("painting")

	out := stdout
	var clipper *clip.Writer
	if *clipFlag {
		width, _ := termSize(stdout)
		clipper = clip.New(stdout, width)
		out = clipper
	}

	if err := termdoc.NewPainter(opts...).Paint(out, els); err != nil {
		fmt.Fprintf(stderr, "termdoc: painting: %v\n", err)
		return 1
	}
	if clipper != nil {
		if err := clipper.Flush(); err != nil {
			fmt.Fprintf(stderr, "termdoc: painting: %v\n", err)
			return 1
		}
	}
	return 0
}

// readDocument loads the document from the single file argument, or stdin
// when no argument is given. Returns (input, source name, -1) on success
// and (nil, "", exitCode) on failure.
func readDocument(args []string, stdin io.Reader, stderr io.Writer) ([]byte, string, int) {
	switch len(args) {
	case 0:
		input, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "termdoc: reading stdin: %v\n", err)
			return nil, "", 2
		}
		return input, "stdin", -1
	case 1:
		input, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(stderr, "termdoc: %v\n", err)
			return nil, "", 2
		}
		return input, args[0], -1
	default:
		fmt.Fprintln(stderr, "termdoc: expected at most one document file")
		return nil, "", 2
	}
}

func newLogger(stderr io.Writer, verbosity int) zerolog.Logger {
	var level zerolog.Level
	switch verbosity {
	case 0:
		level = zerolog.WarnLevel
	case 1:
		level = zerolog.InfoLevel
	case 2:
		level = zerolog.DebugLevel
	default:
		level = zerolog.TraceLevel
	}
	writer := zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}
