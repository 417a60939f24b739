package keymap

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		input    rune
		expected uint8
		ok       bool
	}{
		{'1', 0x1, true},
		{'4', 0xC, true},
		{'q', 0x4, true},
		{'Q', 0x4, true},
		{'x', 0x0, true},
		{'X', 0x0, true},
		{'v', 0xF, true},
		{'z', 0xA, true},
		{'5', 0, false},
		{'p', 0, false},
		{' ', 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			key, ok := Key(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestLayout_RoundTrip(t *testing.T) {
	seen := make(map[rune]bool)
	for key := range uint8(len(Layout)) {
		r, ok := Rune(key)
		assert.True(t, ok)
		assert.False(t, seen[r], "duplicate host key")
		seen[r] = true

		back, ok := Key(r)
		assert.True(t, ok)
		assert.Equal(t, key, back)
	}

	_, ok := Rune(16)
	assert.False(t, ok)
}
