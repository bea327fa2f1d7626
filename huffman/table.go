// Package huffman implements the canonical Huffman decode engine shared
// by camera RAW format decoders.
//
// A table is described the lossless-JPEG way: a histogram of code
// lengths plus a flat list of symbol values in canonical order. Setup
// turns that into an explicit binary code tree; DecodeNext and
// DecodeLength then consume a bitstream.Pump one code at a time,
// returning either a fully reconstructed signed residual or the raw
// symbol for callers that interpret the trailing bits themselves.
package huffman

import (
	"fmt"

	"github.com/nvalette/go-camraw/bitstream"
)

// MaxCodeLength is the deepest code a canonical table may assign.
const MaxCodeLength = 16

// Spec describes a canonical Huffman table as parsed from a file's
// embedded table descriptor. The byte-level descriptor layout is format
// specific; callers hand over the decoded slices.
type Spec struct {
	// CountsPerLength[L-1] is the number of codes of length L, for L in
	// 1..16. Shorter slices are treated as zero-padded.
	CountsPerLength []uint8

	// Values lists the symbol values in canonical order: shortest code
	// first, and within one length in order of increasing code.
	Values []uint8
}

// TotalCodes returns the histogram sum, which is also the required
// length of Values.
func (s *Spec) TotalCodes() int {
	total := 0
	for _, n := range s.CountsPerLength {
		total += int(n)
	}
	return total
}

// Table is the Huffman decode engine. It is immutable once Setup has
// succeeded; after that, concurrent decodes against the same Table are
// safe as long as each uses its own Pump.
type Table struct {
	spec        Spec
	root        *node
	fullDecode  bool
	fixDNGBug16 bool
}

// New returns an unconfigured Table over spec. Setup must be called
// exactly once before any decode.
func New(spec Spec) *Table {
	return &Table{spec: spec}
}

// Setup validates the table description, builds the canonical code tree
// and prunes dead branches. fullDecode selects whether decodes return
// reconstructed residuals (DecodeNext) or raw length symbols
// (DecodeLength). fixDNGBug16 enables a compatibility path for a known
// encoder defect that pads the 16-length sentinel with 16 junk bits.
//
// A failed Setup leaves the Table unusable; all failure modes return a
// *MalformedTableError.
func (t *Table) Setup(fullDecode, fixDNGBug16 bool) error {
	if t.root != nil {
		panic("huffman: Setup called twice")
	}
	t.fullDecode = fullDecode
	t.fixDNGBug16 = fixDNGBug16

	if len(t.spec.CountsPerLength) == 0 {
		return &MalformedTableError{Reason: "empty code length histogram"}
	}
	if len(t.spec.CountsPerLength) > MaxCodeLength {
		return &MalformedTableError{Reason: fmt.Sprintf(
			"histogram covers lengths up to %d, max is %d",
			len(t.spec.CountsPerLength), MaxCodeLength)}
	}
	total := t.spec.TotalCodes()
	if total == 0 {
		return &MalformedTableError{Reason: "table has no codes"}
	}
	if len(t.spec.Values) != total {
		return &MalformedTableError{Reason: fmt.Sprintf(
			"%d values for %d codes", len(t.spec.Values), total)}
	}

	root := &node{}
	next := 0
	for codeLen := 1; codeLen <= len(t.spec.CountsPerLength); codeLen++ {
		count := int(t.spec.CountsPerLength[codeLen-1])
		slots := root.vacantSlots(codeLen, nil)
		if len(slots) < count {
			return &MalformedTableError{Reason: fmt.Sprintf(
				"too many codes (%d) for length %d, can only have %d",
				count, codeLen, len(slots))}
		}
		for _, slot := range slots[:count] {
			*slot = &node{leaf: true, value: t.spec.Values[next]}
			next++
		}
	}
	if next != len(t.spec.Values) {
		// Cannot happen once the size check above passed; kept so an
		// inconsistency fails here instead of as a silent misdecode.
		return &MalformedTableError{Reason: "value list not exhausted"}
	}

	// Degenerate prefixes must be detected now, not bits deep into a
	// decode loop.
	root.pruneLeafless()

	t.root = root
	return nil
}

// getValue reads one code from the pump, bit by bit, and returns the
// symbol value at the matching leaf. The caller must have established a
// Fill guarantee covering MaxCodeLength bits.
func (t *Table) getValue(p *bitstream.Pump) (uint8, error) {
	top := t.root
	var code uint32
	for codeLen := 1; ; codeLen++ {
		if codeLen > MaxCodeLength {
			// Construction bounds every code at 16 bits.
			panic("huffman: code walk past MaxCodeLength")
		}

		bit := p.GetBitsNoFill(1)
		code = code<<1 | bit

		// The order matters: zero to the left, one to the right.
		next := top.zero
		if bit != 0 {
			next = top.one
		}

		if next == nil {
			return 0, &BadCodeError{Code: code, Len: codeLen}
		}
		if next.leaf {
			return next.value, nil
		}
		top = next
	}
}

// DecodeLength reads one code and returns the raw symbol value, for
// formats where the caller interprets the trailing bits itself. The
// Table must have been set up with fullDecode false.
func (t *Table) DecodeLength(p *bitstream.Pump) (int, error) {
	if t.root == nil {
		panic("huffman: decode before Setup")
	}
	if t.fullDecode {
		panic("huffman: DecodeLength on a full-decode table")
	}
	if err := p.Fill(32); err != nil {
		return 0, err
	}
	value, err := t.getValue(p)
	return int(value), err
}

// DecodeNext reads one code, interprets the symbol as the bit length of
// the following residual, reads those bits and returns the sign-extended
// residual. The Table must have been set up with fullDecode true.
//
// A length of 16 is the sentinel for the maximum-magnitude negative
// residual -32768; with fixDNGBug16 the 16 padding bits the buggy
// encoder emits after it are skipped. A length of 0 is the residual 0
// and consumes nothing past the code.
func (t *Table) DecodeNext(p *bitstream.Pump) (int, error) {
	if t.root == nil {
		panic("huffman: decode before Setup")
	}
	if !t.fullDecode {
		panic("huffman: DecodeNext on a length-only table")
	}

	// One fill covers the code and its trailing residual bits, so the
	// bit-by-bit walk below never refills.
	if err := p.Fill(32); err != nil {
		return 0, err
	}

	value, err := t.getValue(p)
	if err != nil {
		return 0, err
	}
	diffLen := uint(value)

	if diffLen == 16 {
		if t.fixDNGBug16 {
			p.SkipBitsNoFill(16)
		}
		return -32768, nil
	}
	if diffLen == 0 {
		return 0, nil
	}
	return Extend(p.GetBitsNoFill(diffLen), diffLen), nil
}

// Extend sign-extends an nbits-long magnitude-and-sign-folded value per
// the lossless-JPEG convention: values with a clear top bit map to the
// negative half of the range symmetric around zero.
func Extend(diff uint32, nbits uint) int {
	if int(diff) < 1<<(nbits-1) {
		return int(diff) - (1<<nbits - 1)
	}
	return int(diff)
}
