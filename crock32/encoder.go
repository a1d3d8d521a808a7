package crock32

const (
	symbolBits = 5
	symbolMask = 1<<symbolBits - 1
)

// Encoder packs an 8-bit byte stream into 5-bit symbols, carrying leftover
// bits between calls so that chunk boundaries never show in the output.
//
// State:
//   - nbits: carried bits not yet emitted, 0..4
//   - bits:  the carry, held in the low nbits bits
//
// The zero value is ready to use. An Encoder must not be used from more than
// one goroutine at a time.
type Encoder struct {
	bits  uint16
	nbits uint8
	out   []byte
}

// Update consumes p and returns the symbols it completed. A trailing partial
// group is carried until the next Update or Flush.
func (e *Encoder) Update(p []byte) string {
	e.encode(p)
	return e.drain()
}

// Flush emits the carried bits, zero-padded to one full symbol, appends
// Marker if marker is set, and resets the Encoder for the next message.
func (e *Encoder) Flush(marker bool) string {
	e.finish(marker)
	return e.drain()
}

// Reset discards carried bits and any output not yet returned.
func (e *Encoder) Reset() {
	e.bits = 0
	e.nbits = 0
	e.out = e.out[:0]
}

func (e *Encoder) encode(p []byte) {
	for _, b := range p {
		e.readByte(b)
	}
}

// readByte appends the zero, one or two symbols completed by b.
func (e *Encoder) readByte(b byte) {
	e.bits = e.bits<<8 | uint16(b)
	e.nbits += 8
	for e.nbits >= symbolBits {
		e.nbits -= symbolBits
		e.out = append(e.out, Alphabet[(e.bits>>e.nbits)&symbolMask])
	}
	e.bits &= 1<<e.nbits - 1
}

func (e *Encoder) finish(marker bool) {
	if e.nbits > 0 {
		e.out = append(e.out, Alphabet[(e.bits<<(symbolBits-e.nbits))&symbolMask])
	}
	if marker {
		e.out = append(e.out, Marker)
	}
	e.bits = 0
	e.nbits = 0
}

func (e *Encoder) drain() string {
	s := string(e.out)
	e.out = e.out[:0]
	return s
}
