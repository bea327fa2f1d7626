package camraw

// Error represents a camraw API error code.
//
// Codec-level failures carry their own structured types in the huffman
// and bitstream packages; these codes cover the image-level surface.
type Error int

// Error codes reported by the camraw API.
const (
	ErrNone              Error = 0
	ErrNoImageData       Error = 1
	ErrInvalidDimensions Error = 2
	ErrCorruptPixelData  Error = 3
	ErrTruncatedInput    Error = 4
)

var errMessages = [...]string{
	"No error",
	"No image data found",
	"Unexpected image dimensions",
	"Error decompressing pixel data",
	"Image data section too small, file probably truncated",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}
