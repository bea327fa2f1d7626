package camraw

import (
	"sync"

	"github.com/nvalette/go-camraw/bitstream"
	"github.com/nvalette/go-camraw/internal/sony"
)

// DecodeARW1 decodes a Sony ARW v1 compressed strip into a 16-bit plane.
//
// Hard failures (bad dimensions, empty input) return a nil image. Errors
// hit mid-decode are recorded on the image via SetError and the samples
// decoded before the error are kept, as the strip may still hold
// somewhat useful data.
func DecodeARW1(data []byte, width, height int) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrNoImageData
	}
	d, err := sony.NewArw1Decompressor(width, height)
	if err != nil {
		return nil, err
	}
	img, err := NewImage(width, height)
	if err != nil {
		return nil, err
	}
	if err := d.Decompress(bitstream.NewPump(data), img.Data, img.Pitch); err != nil {
		img.SetError(err)
	}
	return img, nil
}

// Strip is a contiguous run of image rows decoded as one unit:
// rows Start up to but not including End.
type Strip struct {
	Start int
	End   int
}

// SplitStrips partitions height rows into at most n strips of roughly
// equal size, for handing to DecodeStrips.
func SplitStrips(height, n int) []Strip {
	if n > height {
		n = height
	}
	if n < 1 {
		n = 1
	}
	strips := make([]Strip, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		end := start + (height-start)/(n-i)
		strips = append(strips, Strip{Start: start, End: end})
		start = end
	}
	return strips
}

// DecodeStrips runs decode over every strip on its own worker goroutine.
// Formats with predictable strip offsets decode this way: each worker
// reads an independent bit source against shared read-only tables and
// writes a disjoint row range of img. The first failing strip records
// its error on img; the remaining strips still run, keeping whatever
// data they can.
func DecodeStrips(img *Image, strips []Strip, decode func(Strip) error) {
	var wg sync.WaitGroup
	for _, s := range strips {
		wg.Add(1)
		go func(s Strip) {
			defer wg.Done()
			if err := decode(s); err != nil {
				img.SetError(err)
			}
		}(s)
	}
	wg.Wait()
}
