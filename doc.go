// Package camraw decodes proprietary camera RAW entropy coding into raw
// pixel sample planes.
//
// The heart of the module is the canonical Huffman decode engine in the
// huffman subpackage, shared by the camera-format decoders that follow
// the lossless-JPEG differential coding convention. The bitstream
// subpackage provides the MSB-first bit pump those decoders read from.
// This package ties them together into an image-level API.
//
// # Basic Usage
//
// To decode a Sony ARW v1 compressed strip:
//
//	img, err := camraw.DecodeARW1(data, width, height)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if img.Err() != nil {
//	    // Truncated or corrupt input. The plane holds every sample
//	    // decoded before the error; keep or discard it per policy.
//	}
//
// Format decoders outside this module drive the engine directly: build a
// huffman.Table from the table descriptor in the file header, Setup it
// once, then call DecodeNext (or DecodeLength) against a live
// bitstream.Pump to recover one prediction residual per pixel.
//
// # Error Policy
//
// Decode entry points distinguish hard failures (invalid dimensions, no
// data) returned as errors, from data corruption encountered mid-plane,
// which is recorded on the Image so the partial result survives. The
// core never substitutes a default value for a failed decode.
//
// # Thread Safety
//
// A huffman.Table is immutable after Setup and safe for concurrent
// decodes over independent pumps. Pump and Image carry mutable decode
// state; DecodeStrips partitions an Image into row ranges so workers
// write disjoint rows.
//
// # Out of Scope
//
// TIFF/container parsing, camera support metadata, white balance and
// demosaicing live above this module. Callers hand in the raw strip
// bytes and dimensions.
package camraw
