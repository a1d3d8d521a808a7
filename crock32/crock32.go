package crock32

// Version is the library version.
const Version = "0.1.0"

// Encode returns the symbol text for src.
func Encode(src []byte) string {
	var e Encoder
	e.out = make([]byte, 0, EncodedLen(len(src)))
	e.encode(src)
	e.finish(false)
	return string(e.out)
}

// Decode returns the bytes encoded in s. Decode never fails: case is
// ignored, aliases are accepted and any other character is skipped.
func Decode(s string) []byte {
	var d Decoder
	d.out = make([]byte, 0, DecodedLen(len(s)))
	for i := 0; i < len(s); i++ {
		d.readChar(s[i])
	}
	d.finish(false)
	return d.out
}

// AppendEncode appends the symbol text for src to dst and returns the
// extended buffer.
func AppendEncode(dst, src []byte) []byte {
	e := Encoder{out: dst}
	e.encode(src)
	e.finish(false)
	return e.out
}

// AppendDecode appends the bytes encoded in src to dst and returns the
// extended buffer.
func AppendDecode(dst []byte, src string) []byte {
	d := Decoder{out: dst}
	for i := 0; i < len(src); i++ {
		d.readChar(src[i])
	}
	d.finish(false)
	return d.out
}

// EncodedLen returns the length of the symbol text for n input bytes,
// not counting Marker.
func EncodedLen(n int) int {
	return (n*8 + symbolBits - 1) / symbolBits
}

// DecodedLen returns the maximum number of bytes decoded from n characters
// of symbol text. Skipped characters make the actual length shorter.
func DecodedLen(n int) int {
	return n * symbolBits / 8
}
