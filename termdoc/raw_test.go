package termdoc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const basicYAML = `
- some plain text
- {t: " bold text ", b: true}
- {t: red-only, c: red}
- {t: " green-only\n", c: green}
-
    t: |-
        defined in multiple lines with multiple things
        is multiple lines
    i: true
    b: true
    c: green
- ["\nall in ", {t: "one line!!!", b: true}]
`

func fromYAML(t *testing.T, doc string) []El {
	t.Helper()
	els, err := From(yaml.Unmarshal, []byte(doc))
	require.NoError(t, err)
	return els
}

func textEl(text Text) El {
	return &text
}

func TestFromYAML(t *testing.T) {
	els := fromYAML(t, basicYAML)

	expected := []El{
		PlainText("some plain text"),
		textEl(Text{Content: " bold text ", Bold: true}),
		textEl(Text{Content: "red-only", Color: Red}),
		textEl(Text{Content: " green-only\n", Color: Green}),
		textEl(Text{
			Content: "defined in multiple lines with multiple things\nis multiple lines",
			Bold:    true,
			Italic:  true,
			Color:   Green,
		}),
		PlainText("\nall in "),
		textEl(Text{Content: "one line!!!", Bold: true}),
	}
	require.Equal(t, expected, els)
}

func TestFromIsDeterministic(t *testing.T) {
	first := fromYAML(t, basicYAML)
	second := fromYAML(t, basicYAML)
	require.Equal(t, first, second)
}

func TestFromJSON(t *testing.T) {
	els, err := From(json.Unmarshal, []byte(`["plain", {"t": "x", "b": true}]`))
	require.NoError(t, err)
	require.Equal(t, []El{
		PlainText("plain"),
		textEl(Text{Content: "x", Bold: true}),
	}, els)
}

func TestFromPropagatesUnmarshalError(t *testing.T) {
	_, err := From(yaml.Unmarshal, []byte("{not a sequence"))
	require.Error(t, err)
}

func TestDecodeTableShapeWinsOverTextShape(t *testing.T) {
	el, err := DecodeElement(map[string]interface{}{
		"table": []interface{}{
			[]interface{}{"a", "b"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, el.Table, "a {table: ...} record must decode as a table, not a text record")
	require.Len(t, el.Table.Rows, 1)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "stray key beside table", doc: `[{"table": [], "rows": []}]`},
		{name: "table value not a sequence", doc: `[{"table": "nope"}]`},
		{name: "table row not a sequence", doc: `[{"table": ["nope"]}]`},
		{name: "unknown key in text record", doc: `[{"t": "x", "size": 12}]`},
		{name: "non-string content", doc: `[{"t": 7}]`},
		{name: "non-bool bold", doc: `[{"t": "x", "b": "yes"}]`},
		{name: "unknown color", doc: `[{"t": "x", "c": "mauve"}]`},
		{name: "non-string color", doc: `[{"t": "x", "c": 31}]`},
		{name: "number as text", doc: `[42]`},
		{name: "nested list inside a group", doc: `[["a", ["b"]]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := From(json.Unmarshal, []byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestDecodeColorNamesAreCaseInsensitive(t *testing.T) {
	els := fromYAML(t, `[{t: x, c: RED, bg: Blue}]`)
	require.Equal(t, []El{
		textEl(Text{Content: "x", Color: Red, Background: Blue}),
	}, els)
}
