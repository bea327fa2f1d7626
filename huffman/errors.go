package huffman

import "fmt"

// MalformedTableError reports a (histogram, value list) pair that cannot
// form a canonical Huffman table. It is always fatal to the table: there
// is no partial or degraded construction.
type MalformedTableError struct {
	Reason string
}

func (e *MalformedTableError) Error() string {
	return "huffman: malformed table: " + e.Reason
}

// BadCodeError reports a bit sequence that matches no code in the table.
// Code holds the bits read so far, Len how many of them, for diagnosing
// where in the stream the decode ran off the rails.
type BadCodeError struct {
	Code uint32
	Len  int
}

func (e *BadCodeError) Error() string {
	return fmt.Sprintf("huffman: bad code %d (len %d)", e.Code, e.Len)
}
