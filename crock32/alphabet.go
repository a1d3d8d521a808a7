package crock32

import "fmt"

// Alphabet lists the canonical symbols in value order.
const Alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Marker is the optional trailer appended by Encoder.Flush. It carries no
// value and decodes as noise.
const Marker = '$'

// invalid marks decode table entries with no symbol.
const invalid = 0xFF

// aliases are decode-only characters mapped onto an existing symbol.
var aliases = map[byte]byte{
	'o': '0',
	'i': '1',
	'l': '1',
}

// decodeTab maps an ASCII byte to its 5-bit value, or invalid.
// Built once at init and read-only afterwards.
var decodeTab = func() [256]byte {
	var tab [256]byte
	for i := range tab {
		tab[i] = invalid
	}

	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		tab[c] = byte(i)
		if c >= 'a' && c <= 'z' {
			tab[c-'a'+'A'] = byte(i)
		}
	}

	for alias, target := range aliases {
		v := tab[target]
		if v == invalid {
			panic(fmt.Sprintf("crock32: alias %q targets unmapped symbol %q", alias, target))
		}
		tab[alias] = v
		tab[alias-'a'+'A'] = v
	}

	return tab
}()

// Lookup returns the 5-bit value of r. Lookup is case-insensitive and
// accepts the aliases o, i and l. ok is false for any other rune.
func Lookup(r rune) (value byte, ok bool) {
	if r < 0 || r > 0x7F {
		return 0, false
	}
	v := decodeTab[r]
	return v, v != invalid
}
