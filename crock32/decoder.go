package crock32

// Decoder unpacks 5-bit symbols into 8-bit bytes. It is the mirror of
// Encoder: symbols are resolved through the case-insensitive symbol table,
// unknown characters are skipped, and every 8 accumulated bits yield a byte.
//
// State:
//   - nbits: carried bits not yet emitted, 0..7
//   - bits:  the carry, held in the low nbits bits
//
// The zero value is ready to use. A Decoder must not be used from more than
// one goroutine at a time.
type Decoder struct {
	bits  uint16
	nbits uint8
	out   []byte
}

// Update consumes the symbol text s and returns the bytes it completed.
// Characters outside the symbol table, including Marker, are ignored.
func (d *Decoder) Update(s string) []byte {
	for i := 0; i < len(s); i++ {
		d.readChar(s[i])
	}
	return d.drain()
}

// Flush returns any pending bytes and resets the Decoder. Carried bits that
// do not make up a whole byte are zero padding from the encoder and are
// dropped. If marker is set, Marker is appended to the returned bytes.
func (d *Decoder) Flush(marker bool) []byte {
	d.finish(marker)
	return d.drain()
}

// Reset discards carried bits and any output not yet returned.
func (d *Decoder) Reset() {
	d.bits = 0
	d.nbits = 0
	d.out = d.out[:0]
}

func (d *Decoder) decode(p []byte) {
	for _, c := range p {
		d.readChar(c)
	}
}

func (d *Decoder) readChar(c byte) {
	v := decodeTab[c]
	if v == invalid {
		return
	}
	d.bits = d.bits<<symbolBits | uint16(v)
	d.nbits += symbolBits
	if d.nbits >= 8 {
		d.nbits -= 8
		d.out = append(d.out, byte(d.bits>>d.nbits))
	}
	d.bits &= 1<<d.nbits - 1
}

func (d *Decoder) finish(marker bool) {
	if marker {
		d.out = append(d.out, Marker)
	}
	d.bits = 0
	d.nbits = 0
}

func (d *Decoder) drain() []byte {
	b := make([]byte, len(d.out))
	copy(b, d.out)
	d.out = d.out[:0]
	return b
}
