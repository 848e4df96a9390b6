// Package carrier isolates the steganographic codec from image container formats.
//
// A carrier is decoded from raw bytes into a PixelGrid, a mutable grid of 8-bit
// R, G, B, A channel values, and re-encoded from a PixelGrid into an output
// format. The codec in package steg only ever sees PixelGrid values.
//
// # Pixel Representation
//
// Every decoded image is normalized to non-premultiplied NRGBA with 8 bits per
// channel, regardless of the source color model:
//   - Gray, paletted and YCbCr sources are expanded to R, G, B with A = 255
//   - 16-bit sources are reduced to their high byte
//   - Alpha is kept unassociated so color channels survive transparency exactly
//
// The grid uses 0-based coordinates with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward.
//
// # Formats
//
// Input may be any format registered with the image package: PNG, JPEG, GIF,
// BMP, TIFF and QOI are registered by this package. Output is restricted to
// lossless formats:
//   - PNG (default): any grid
//   - TIFF (deflate): any grid
//   - BMP: opaque grids only; the reader discards alpha
//   - QOI: opaque grids only; the writer premultiplies color by alpha
//
// A grid with any alpha value below 255 is rejected for BMP and QOI with
// ErrUnsupportedOutputFormat, so an encode never yields output that decodes
// to different pixels.
//
// JPEG and GIF targets are rejected with ErrUnsupportedOutputFormat. JPEG
// recompression perturbs low-order bits and GIF quantizes to a palette; either
// one silently destroys data hidden in channel LSBs.
//
// # Error Handling
//
// Input that is empty, truncated, in an unregistered format or has zero area
// fails with ErrCarrierUnreadable. Callers match with errors.Is.
//
// # Thread Safety
//
// Decode and Encode are stateless. A PixelGrid is not safe for concurrent
// mutation; each call should own its grid. Cache is safe for concurrent use.
package carrier
