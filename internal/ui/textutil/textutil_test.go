package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "START", 8, "START"},
		{"exact", "START", 5, "START"},
		{"cut", "START", 4, "STA…"},
		{"one column", "START", 1, "…"},
		{"zero", "START", 0, ""},
		{"wide runes", "日本語", 4, "日…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, VisualWidth(got), max(tt.max, 0))
		})
	}
}

func TestTruncateLines(t *testing.T) {
	assert.Equal(t, "ab…\nxy", TruncateLines("abcdef\nxy\nzzz", 3, 2))
	assert.Equal(t, "", TruncateLines("abc", 3, 0))
}
