package termdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTextDefaults(t *testing.T) {
	text := NewText("hello")
	assert.Equal(t, "hello", text.Content)
	assert.True(t, text.IsDefault())
}

func TestSetPlainIsIdempotent(t *testing.T) {
	text := Text{Content: "x", Bold: true, Italic: true, Color: Cyan, Background: White}

	text.SetPlain()
	once := text
	text.SetPlain()

	assert.Equal(t, once, text)
	assert.True(t, text.IsDefault())
	assert.Equal(t, "x", text.Content, "SetPlain must never touch content")
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   int
	}{
		{name: "empty", content: "", width: 0},
		{name: "ascii", content: "hello", width: 5},
		{name: "CJK wide runes", content: "日本語", width: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := NewText(tt.content)
			assert.Equal(t, tt.width, text.Width())
		})
	}
}
