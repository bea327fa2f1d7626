// Package bitstream serves individual bits and bit groups from a byte
// buffer, most-significant-bit first.
//
// A Pump keeps up to 64 bits cached ahead of the consumer. Fill
// guarantees a minimum number of cached bits before a run of NoFill
// reads; the NoFill variants themselves never touch the underlying
// buffer. This split keeps refill branches out of bit-by-bit decode
// loops: a caller fills once per decoded value and then consumes freely
// up to the guarantee.
package bitstream

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// MaxGetBits is the largest count a single Fill, peek or read may ask for.
const MaxGetBits = 32

// padSlack is how many zero bytes a Pump serves past the end of its
// buffer before Fill reports an overrun. Entropy decoders routinely read
// a few guarantee bits beyond the last meaningful code, so the tail is
// padded rather than failing on the first byte past the end.
const padSlack = 8

// ErrOverrun indicates a read past the padded end of the buffer.
var ErrOverrun = errors.New("bitstream: buffer overrun")

// Pump reads bits MSB-first from a byte buffer through a 64-bit cache.
//
// All NoFill methods require a prior Fill guarantee covering the bits
// they consume; violating that is a programming error and panics.
type Pump struct {
	data      []byte
	pos       int    // next byte to load into the cache
	cache     uint64 // loaded bits, newest in the low end
	fillLevel uint   // valid bits in cache
	padBytes  int    // zero bytes served past the end of data
}

// NewPump returns a Pump positioned at the first bit of data.
func NewPump(data []byte) *Pump {
	return &Pump{data: data}
}

// Fill guarantees at least nbits (<= MaxGetBits) are cached. Past the
// end of the buffer the cache is topped up with zero bytes; once more
// than padSlack padding bytes have been served, Fill reports an overrun
// wrapping ErrOverrun.
func (p *Pump) Fill(nbits uint) error {
	if nbits > MaxGetBits {
		panic("bitstream: Fill request above MaxGetBits")
	}
	for p.fillLevel < nbits {
		switch {
		case p.pos+4 <= len(p.data):
			p.cache = p.cache<<32 | uint64(binary.BigEndian.Uint32(p.data[p.pos:]))
			p.fillLevel += 32
			p.pos += 4
		case p.pos < len(p.data):
			p.cache = p.cache<<8 | uint64(p.data[p.pos])
			p.fillLevel += 8
			p.pos++
		default:
			if p.padBytes >= padSlack {
				return fmt.Errorf("%w at byte %d", ErrOverrun, p.pos)
			}
			p.cache <<= 8
			p.fillLevel += 8
			p.padBytes++
		}
	}
	return nil
}

// PeekBitsNoFill returns the next nbits without consuming them.
func (p *Pump) PeekBitsNoFill(nbits uint) uint32 {
	if nbits == 0 {
		return 0
	}
	if nbits > p.fillLevel {
		panic("bitstream: peek past the Fill guarantee")
	}
	return uint32(p.cache>>(p.fillLevel-nbits)) & (1<<nbits - 1)
}

// SkipBitsNoFill discards the next nbits.
func (p *Pump) SkipBitsNoFill(nbits uint) {
	if nbits > p.fillLevel {
		panic("bitstream: skip past the Fill guarantee")
	}
	p.fillLevel -= nbits
}

// GetBitsNoFill returns and consumes the next nbits.
func (p *Pump) GetBitsNoFill(nbits uint) uint32 {
	ret := p.PeekBitsNoFill(nbits)
	p.fillLevel -= nbits
	return ret
}

// GetBits returns and consumes the next nbits, filling as needed.
func (p *Pump) GetBits(nbits uint) (uint32, error) {
	if err := p.Fill(nbits); err != nil {
		return 0, err
	}
	return p.GetBitsNoFill(nbits), nil
}

// Remaining reports how many unconsumed data bits are left, not counting
// zero padding already served. Negative once the consumer has run into
// the padded tail.
func (p *Pump) Remaining() int {
	return (len(p.data)-p.pos)*8 + int(p.fillLevel) - 8*p.padBytes
}
