package sony

import (
	"encoding/binary"
	"math/bits"
)

// Decrypt reverses the obfuscation Sony applies to maker-note blocks and
// some pixel buffers, in place. It is a fixed keystream, not real
// cryptography: a 128-word pad is seeded from key with a multiplicative
// recurrence, expanded with a lagged XOR, and rolled over the buffer.
//
// buf is processed in whole little-endian 32-bit words; a trailing
// partial word is left untouched, matching the reference behavior of
// operating on len/4 words.
func Decrypt(buf []byte, key uint32) {
	var pad [128]uint32

	for p := 0; p < 4; p++ {
		key = key*48828125 + 1
		pad[p] = key
	}
	pad[3] = pad[3]<<1 | (pad[0]^pad[2])>>31
	for p := 4; p < 127; p++ {
		pad[p] = (pad[p-4]^pad[p-2])<<1 | (pad[p-3]^pad[p-1])>>31
	}
	for p := 0; p < 127; p++ {
		pad[p] = bits.ReverseBytes32(pad[p])
	}

	p := 127
	for off := 0; off+4 <= len(buf); off += 4 {
		pad[p&127] = pad[(p+1)&127] ^ pad[(p+65)&127]
		word := binary.LittleEndian.Uint32(buf[off:])
		binary.LittleEndian.PutUint32(buf[off:], word^pad[p&127])
		p++
	}
}
