// Package sony implements the Sony-specific entropy decoding and
// deobfuscation paths consumed by the camraw API.
package sony

import (
	"errors"
	"fmt"

	"github.com/nvalette/go-camraw/bitstream"
	"github.com/nvalette/go-camraw/huffman"
)

// ErrCorruptData indicates pixel data whose running prediction left the
// valid 12-bit sample range.
var ErrCorruptData = errors.New("sony: corrupt pixel data")

// Arw1 dimension limits. ARW v1 bodies never exceed these; anything
// larger is a broken or hostile file.
const (
	arw1MaxWidth  = 4600
	arw1MaxHeight = 3072
)

// Arw1Decompressor decodes the ARW v1 compressed format: a single
// bitstream of variable-length coded prediction residuals, columns
// right to left, rows visited pairwise interleaved.
type Arw1Decompressor struct {
	width  int
	height int
}

// NewArw1Decompressor validates the plane dimensions and returns a
// decompressor for them.
func NewArw1Decompressor(width, height int) (*Arw1Decompressor, error) {
	if width <= 0 || height <= 0 || height%2 != 0 ||
		width > arw1MaxWidth || height > arw1MaxHeight {
		return nil, fmt.Errorf("sony: unexpected ARW1 dimensions (%d; %d)", width, height)
	}
	return &Arw1Decompressor{width: width, height: height}, nil
}

// readLength reads the residual bit length for one sample. The prefix is
// two bits of 4-len; a 3 followed by a set bit means zero, and a 4
// extends by counting clear bits, up to 17.
func readLength(bits *bitstream.Pump) uint {
	length := 4 - bits.GetBitsNoFill(2)
	if length == 3 && bits.GetBitsNoFill(1) != 0 {
		return 0
	}
	if length == 4 {
		for length < 17 && bits.GetBitsNoFill(1) == 0 {
			length++
		}
	}
	return uint(length)
}

// Decompress decodes the whole plane into dest, one uint16 sample per
// pixel, rows pitch samples apart. On error the already written samples
// are left in place so the caller can keep the partial result.
func (d *Arw1Decompressor) Decompress(bits *bitstream.Pump, dest []uint16, pitch int) error {
	w, h := d.width, d.height
	if len(dest) < (h-1)*pitch+w {
		return fmt.Errorf("sony: destination too small for %dx%d plane", w, h)
	}

	sum := 0
	for x := w - 1; x >= 0; x-- {
		for y := 0; y < h+1; y += 2 {
			// One fill covers the length prefix and the residual bits.
			if err := bits.Fill(32); err != nil {
				return fmt.Errorf("sony: column %d: %w", x, err)
			}

			if y == h {
				y = 1
			}

			diff := 0
			if length := readLength(bits); length != 0 {
				diff = huffman.Extend(bits.GetBitsNoFill(length), length)
			}
			sum += diff

			if sum < 0 || sum>>12 != 0 {
				return fmt.Errorf("%w: sample %d at (%d; %d)", ErrCorruptData, sum, x, y)
			}
			if y < h {
				dest[x+y*pitch] = uint16(sum)
			}
		}
	}
	return nil
}
