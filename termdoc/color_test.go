package termdoc

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{name: "plain", input: "plain", want: Plain},
		{name: "none alias", input: "none", want: Plain},
		{name: "empty string", input: "", want: Plain},
		{name: "black", input: "black", want: Black},
		{name: "red", input: "red", want: Red},
		{name: "green", input: "green", want: Green},
		{name: "yellow", input: "yellow", want: Yellow},
		{name: "blue", input: "blue", want: Blue},
		{name: "purple", input: "purple", want: Purple},
		{name: "cyan", input: "cyan", want: Cyan},
		{name: "white", input: "white", want: White},
		{name: "uppercase", input: "RED", want: Red},
		{name: "mixed case", input: "GrEeN", want: Green},
		{name: "unknown", input: "mauve", wantErr: true},
		{name: "truecolor is out of scope", input: "#ff0000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorANSI(t *testing.T) {
	_, ok := Plain.ANSI()
	assert.False(t, ok, "Plain has no platform color")

	want := map[Color]termenv.Color{
		Black:  termenv.ANSIBlack,
		Red:    termenv.ANSIRed,
		Green:  termenv.ANSIGreen,
		Yellow: termenv.ANSIYellow,
		Blue:   termenv.ANSIBlue,
		Purple: termenv.ANSIMagenta,
		Cyan:   termenv.ANSICyan,
		White:  termenv.ANSIWhite,
	}
	for c, platform := range want {
		got, ok := c.ANSI()
		require.True(t, ok, "%s should map to a platform color", c)
		assert.Equal(t, platform, got)
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for c := Plain; c <= White; c++ {
		parsed, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}
