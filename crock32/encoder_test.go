package crock32

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mixedText    = "lowercase UPPERCASE 1234567 !@#$%^&*"
	mixedEncoded = "dhqqesbjcdgq6s90an850haj8d0n6h9064s36d1n6rvj08a04cj2aqh658"
)

func TestEncodeMixedText(t *testing.T) {
	assert.Equal(t, mixedEncoded, Encode([]byte(mixedText)))
}

func TestEncoderSplitUpdate(t *testing.T) {
	var enc Encoder
	out := enc.Update([]byte(mixedText[:10]))
	out += enc.Update([]byte(mixedText[10:]))
	out += enc.Flush(false)

	assert.Equal(t, mixedEncoded, out)
}

func TestEncoderCarry(t *testing.T) {
	var enc Encoder

	// 8 bits: one symbol, 3 bits carried
	assert.Equal(t, "z", enc.Update([]byte{0xFF}))
	// 3+8 bits: two symbols, 1 bit carried
	assert.Equal(t, "zz", enc.Update([]byte{0xFF}))
	// 1 bit padded to 10000
	assert.Equal(t, "g", enc.Flush(false))
}

func TestEncoderEmptyUpdate(t *testing.T) {
	var enc Encoder
	assert.Equal(t, "", enc.Update(nil))
	assert.Equal(t, "", enc.Update([]byte{}))
	assert.Equal(t, "", enc.Flush(false))
}

func TestEncoderMarker(t *testing.T) {
	var enc Encoder
	assert.Equal(t, string(Marker), enc.Flush(true))

	assert.Equal(t, "c", enc.Update([]byte("f")))
	assert.Equal(t, "r$", enc.Flush(true))
}

func TestEncoderReuseAfterFlush(t *testing.T) {
	var enc Encoder
	for i := 0; i < 3; i++ {
		out := enc.Update([]byte("foo"))
		out += enc.Flush(false)
		assert.Equal(t, "csqpy", out, "message %d", i)
	}
}

func TestEncoderReset(t *testing.T) {
	var enc Encoder
	enc.Update([]byte{0xFF})
	enc.Reset()

	assert.Equal(t, "", enc.Flush(false))
	assert.Equal(t, "csqpyrk1e8", enc.Update([]byte("foobar"))+enc.Flush(false))
}

func TestEncoderChunkInvariance(t *testing.T) {
	input := []byte(mixedText)

	// Every two-way split
	for i := 0; i <= len(input); i++ {
		var enc Encoder
		out := enc.Update(input[:i])
		out += enc.Update(input[i:])
		out += enc.Flush(false)
		require.Equal(t, mixedEncoded, out, "split at %d", i)
	}

	// Byte at a time
	var enc Encoder
	var out string
	for _, b := range input {
		out += enc.Update([]byte{b})
	}
	out += enc.Flush(false)
	assert.Equal(t, mixedEncoded, out)
}

func TestEncoderRandomPartitions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		data := make([]byte, rng.Intn(100))
		rng.Read(data)
		want := Encode(data)

		var enc Encoder
		var out string
		for rest := data; len(rest) > 0; {
			n := rng.Intn(len(rest)) + 1
			out += enc.Update(rest[:n])
			rest = rest[n:]
		}
		out += enc.Flush(false)

		require.Equal(t, want, out, "input %x", data)
	}
}

func TestEncoderOutputLength(t *testing.T) {
	for n := 0; n <= 20; n++ {
		data := make([]byte, n)
		assert.Len(t, Encode(data), EncodedLen(n), "%d bytes", n)
	}
}
