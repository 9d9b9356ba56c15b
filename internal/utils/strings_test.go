package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "shorter than limit", in: "hello", max: 10, want: "hello"},
		{name: "exactly at limit", in: "hello", max: 5, want: "hello"},
		{name: "ascii over limit", in: "hello world", max: 5, want: "hello"},
		{name: "empty string", in: "", max: 5, want: ""},
		{name: "zero limit", in: "hello", max: 0, want: ""},
		{name: "multi-byte over limit", in: "приветствие", max: 6, want: "привет"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateRunes(tt.in, tt.max))
		})
	}
}

// Truncation counts runes, not bytes, so a multi-byte rune straddling the
// limit must never be split in half.
func TestTruncateRunes_KeepsValidUTF8(t *testing.T) {
	in := strings.Repeat("ж", 600)

	got := TruncateRunes(in, 500)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 500, utf8.RuneCountInString(got))
}
