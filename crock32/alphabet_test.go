package crock32

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphabet(t *testing.T) {
	assert.Len(t, Alphabet, 32)

	seen := make(map[rune]bool)
	for _, c := range Alphabet {
		assert.False(t, seen[c], "duplicate symbol %q", c)
		seen[c] = true
	}

	// Visually ambiguous letters never appear in encoded text.
	for _, c := range "ilou" {
		assert.NotContains(t, Alphabet, string(c))
	}
}

func TestLookupCanonical(t *testing.T) {
	for i, c := range Alphabet {
		v, ok := Lookup(c)
		assert.True(t, ok, "symbol %q", c)
		assert.Equal(t, byte(i), v, "symbol %q", c)
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	for _, c := range Alphabet {
		lower, ok := Lookup(c)
		assert.True(t, ok)

		upper, ok := Lookup([]rune(strings.ToUpper(string(c)))[0])
		assert.True(t, ok, "symbol %q", c)
		assert.Equal(t, lower, upper, "symbol %q", c)
	}
}

func TestLookupAliases(t *testing.T) {
	tests := []struct {
		alias rune
		want  byte
	}{
		{'o', 0},
		{'O', 0},
		{'i', 1},
		{'I', 1},
		{'l', 1},
		{'L', 1},
	}

	for _, tt := range tests {
		v, ok := Lookup(tt.alias)
		assert.True(t, ok, "alias %q", tt.alias)
		assert.Equal(t, tt.want, v, "alias %q", tt.alias)
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, r := range []rune{'u', 'U', Marker, '-', ' ', '=', 0, 0x7F, 'é', '\u212a', -1} {
		_, ok := Lookup(r)
		assert.False(t, ok, "rune %q", r)
	}
}
