package termdoc

import (
	"fmt"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
)

// Color is one of the sixteen-color terminal palette's base colors, or
// Plain for "no color". The zero value is Plain.
type Color int

// The supported terminal colors.
const (
	Plain Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	White
)

var colorNames = [...]string{
	Plain:  "plain",
	Black:  "black",
	Red:    "red",
	Green:  "green",
	Yellow: "yellow",
	Blue:   "blue",
	Purple: "purple",
	Cyan:   "cyan",
	White:  "white",
}

func (c Color) String() string {
	if c < Plain || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ANSI returns the termenv color for c. The second return is false for
// Plain, which has no platform color.
func (c Color) ANSI() (termenv.Color, bool) {
	switch c {
	case Black:
		return termenv.ANSIBlack, true
	case Red:
		return termenv.ANSIRed, true
	case Green:
		return termenv.ANSIGreen, true
	case Yellow:
		return termenv.ANSIYellow, true
	case Blue:
		return termenv.ANSIBlue, true
	case Purple:
		return termenv.ANSIMagenta, true
	case Cyan:
		return termenv.ANSICyan, true
	case White:
		return termenv.ANSIWhite, true
	default:
		return nil, false
	}
}

// foldCaserWrapper wraps a cases.Caser to allow pointer storage in sync.Pool.
type foldCaserWrapper struct {
	caser cases.Caser
}

// foldCaserPool pools cases.Fold instances. A cases.Caser is not safe for
// concurrent use, so each ParseColor call checks one out.
var foldCaserPool = sync.Pool{
	New: func() interface{} {
		return &foldCaserWrapper{caser: cases.Fold()}
	},
}

func foldName(s string) string {
	wrapper, ok := foldCaserPool.Get().(*foldCaserWrapper)
	if !ok || wrapper == nil {
		return cases.Fold().String(s)
	}
	defer foldCaserPool.Put(wrapper)
	return wrapper.caser.String(s)
}

// ParseColor resolves a color name case-insensitively. Both "plain" and
// "none" name the Plain color.
func ParseColor(name string) (Color, error) {
	switch foldName(name) {
	case "plain", "none", "":
		return Plain, nil
	case "black":
		return Black, nil
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "yellow":
		return Yellow, nil
	case "blue":
		return Blue, nil
	case "purple":
		return Purple, nil
	case "cyan":
		return Cyan, nil
	case "white":
		return White, nil
	}
	return Plain, fmt.Errorf("unknown color %q", name)
}
