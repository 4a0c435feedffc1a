package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{name: "short", in: "Ann", maxLen: 10, want: "Ann"},
		{name: "exact", in: "Ann Lee", maxLen: 7, want: "Ann Lee"},
		{name: "ellipsis", in: "Clementine Bauch", maxLen: 10, want: "Clement..."},
		{name: "tiny limit", in: "Clementine", maxLen: 2, want: "Cl"},
		{name: "zero", in: "Ann", maxLen: 0, want: ""},
		{name: "multibyte", in: "Zoë Ångström", maxLen: 6, want: "Zoë..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.in, tt.maxLen))
		})
	}
}

func TestPadString(t *testing.T) {
	assert.Equal(t, "ab  ", PadString("ab", 4, ' '))
	assert.Equal(t, "abcd", PadString("abcd", 2, ' '))
	assert.Equal(t, "ë.", PadString("ë", 2, '.'))
}

func TestFormatKeyHints(t *testing.T) {
	got := FormatKeyHints(KeyHint{"enter", "expand"}, KeyHint{"q", "quit"})
	assert.Equal(t, "enter: expand • q: quit", got)
	assert.Empty(t, FormatKeyHints())
}

func TestAvatarColour(t *testing.T) {
	assert.Len(t, AvatarPalette, 9)
	assert.Equal(t, Colours.Red, AvatarColour(0))
	assert.Equal(t, Colours.Pink, AvatarColour(8))
	assert.Equal(t, Colours.Red, AvatarColour(42), "out of range falls back to the first colour")
	assert.NotEmpty(t, Colours.Mauve)
}
