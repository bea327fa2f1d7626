package camraw

import "sync"

// Image is a decoded 16-bit sample plane.
//
// A decode that fails mid-plane records its error here instead of
// discarding the samples already written, so callers can surface a
// partial image together with the recorded error.
type Image struct {
	Width  int
	Height int
	Pitch  int // samples per row
	Data   []uint16

	mu  sync.Mutex
	err error
}

// NewImage allocates a zeroed plane. Width and height must be positive.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Image{
		Width:  width,
		Height: height,
		Pitch:  width,
		Data:   make([]uint16, width*height),
	}, nil
}

// Row returns the samples of row y.
func (im *Image) Row(y int) []uint16 {
	return im.Data[y*im.Pitch : y*im.Pitch+im.Width]
}

// SetError records a decode error against the image. The first recorded
// error wins; later ones are dropped. Safe for concurrent use by strip
// workers.
func (im *Image) SetError(err error) {
	if err == nil {
		return
	}
	im.mu.Lock()
	if im.err == nil {
		im.err = err
	}
	im.mu.Unlock()
}

// Err returns the first recorded decode error, if any.
func (im *Image) Err() error {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.err
}
