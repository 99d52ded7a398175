package main

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short stays intact", "fix the cache", 20, "fix the cache"},
		{"exact length stays intact", "abcde", 5, "abcde"},
		{"long gets ellipsis", "abcdefgh", 5, "abcd…"},
		{"multi-byte runes survive", "müller änderte die Grenzen", 10, "müller än…"},
		{"cjk counts characters not bytes", "図を日本語で説明して", 6, "図を日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
