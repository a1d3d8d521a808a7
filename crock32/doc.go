// Package crock32 implements a streaming base32 codec over a human-typeable,
// case-insensitive 32 symbol alphabet.
//
// The alphabet is "0123456789abcdefghjkmnpqrstvwxyz". It leaves out i, l, o
// and u so that typed or read-aloud identifiers are hard to get wrong. On
// decode the letters o, i and l are accepted as aliases of 0, 1 and 1, and
// characters outside the table are skipped, so decoding never fails.
//
// Bit Ordering:
//   - Input bytes form one MSB-first bitstream
//   - Each symbol carries the next 5 bits of that stream
//   - A final incomplete group is zero-padded on the low side
//
// Basic usage:
//
//	s := crock32.Encode([]byte("hello"))   // "d1jprv3f"
//	b := crock32.Decode("D1JPRV3F")        // []byte("hello")
//
// Streaming usage:
//
//	var enc crock32.Encoder
//	out := enc.Update(chunk1)
//	out += enc.Update(chunk2)
//	out += enc.Flush(false)
//
// For io.Reader and io.Writer pipelines use NewReader and NewWriter.
package crock32
