package sony

import (
	"bytes"
	"testing"
)

func TestDecrypt_RoundTrip(t *testing.T) {
	// The keystream only depends on the key and the word index, so
	// applying it twice restores the original bytes.
	orig := make([]byte, 64)
	for i := range orig {
		orig[i] = byte(i * 7)
	}

	buf := append([]byte(nil), orig...)
	Decrypt(buf, 0x12345678)
	if bytes.Equal(buf, orig) {
		t.Fatal("Decrypt left the buffer unchanged")
	}

	Decrypt(buf, 0x12345678)
	if !bytes.Equal(buf, orig) {
		t.Error("double Decrypt did not restore the buffer")
	}
}

func TestDecrypt_KeyMatters(t *testing.T) {
	a := make([]byte, 32)
	b := make([]byte, 32)

	Decrypt(a, 1)
	Decrypt(b, 2)
	if bytes.Equal(a, b) {
		t.Error("different keys produced the same keystream")
	}
}

func TestDecrypt_Deterministic(t *testing.T) {
	a := make([]byte, 32)
	b := make([]byte, 32)

	Decrypt(a, 0xCAFEBABE)
	Decrypt(b, 0xCAFEBABE)
	if !bytes.Equal(a, b) {
		t.Error("same key produced different keystreams")
	}
}

func TestDecrypt_PartialTrailingWord(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7}
	tail := append([]byte(nil), buf[4:]...)

	Decrypt(buf, 99)
	if !bytes.Equal(buf[4:], tail) {
		t.Error("trailing partial word was modified")
	}
}

func TestDecrypt_PadRecurrence(t *testing.T) {
	// First keystream word, derived by hand from the pad recurrence:
	// the word applied to buffer word 0 is pad[127] = pad[0] ^ pad[64]
	// after the byte-swap pass. Encrypting a zero buffer exposes it.
	buf := make([]byte, 4)
	Decrypt(buf, 0)

	key := uint32(0)
	var pad [128]uint32
	for p := 0; p < 4; p++ {
		key = key*48828125 + 1
		pad[p] = key
	}
	pad[3] = pad[3]<<1 | (pad[0]^pad[2])>>31
	for p := 4; p < 127; p++ {
		pad[p] = (pad[p-4]^pad[p-2])<<1 | (pad[p-3]^pad[p-1])>>31
	}
	swap := func(v uint32) uint32 {
		return v<<24 | v>>24 | (v&0xFF00)<<8 | (v>>8)&0xFF00
	}
	want := swap(pad[0]) ^ swap(pad[64])

	got := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	if got != want {
		t.Errorf("first keystream word = %#08x, want %#08x", got, want)
	}
}
