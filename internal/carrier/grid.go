package carrier

import (
	"image"
)

// Channel offsets within a pixel, in traversal order.
const (
	Red = iota
	Green
	Blue
	Alpha
)

// ChannelsPerPixel is the number of stored channels per pixel (R, G, B, A).
const ChannelsPerPixel = 4

// PixelGrid is a width x height grid of 8-bit R, G, B, A channel values.
//
// The grid is backed by a non-premultiplied NRGBA buffer so that setting any
// channel never disturbs the others. The zero value is not usable; grids are
// created by Decode or NewPixelGrid.
type PixelGrid struct {
	img    *image.NRGBA
	format Format
	known  bool
}

// NewPixelGrid wraps a copy of img as a PixelGrid.
//
// The returned grid is rebased so that its top-left pixel is (0,0). It has no
// source format; SourceFormat reports ok == false.
func NewPixelGrid(img image.Image) *PixelGrid {
	return &PixelGrid{img: toNRGBA(img)}
}

// Width returns the grid width in pixels.
func (g *PixelGrid) Width() int {
	return g.img.Rect.Dx()
}

// Height returns the grid height in pixels.
func (g *PixelGrid) Height() int {
	return g.img.Rect.Dy()
}

// Channel returns the value of channel c (Red, Green, Blue or Alpha) of the
// pixel at (x, y). It panics if the coordinates or channel are out of range.
func (g *PixelGrid) Channel(x, y, c int) uint8 {
	return g.img.Pix[g.offset(x, y, c)]
}

// SetChannel overwrites channel c of the pixel at (x, y) with v.
func (g *PixelGrid) SetChannel(x, y, c int, v uint8) {
	g.img.Pix[g.offset(x, y, c)] = v
}

func (g *PixelGrid) offset(x, y, c int) int {
	if x < 0 || y < 0 || x >= g.Width() || y >= g.Height() {
		panic("carrier: pixel coordinates out of range")
	}
	if c < Red || c > Alpha {
		panic("carrier: channel index out of range")
	}
	return y*g.img.Stride + x*ChannelsPerPixel + c
}

// Opaque reports whether every pixel has an alpha value of 255.
func (g *PixelGrid) Opaque() bool {
	return g.img.Opaque()
}

// SourceFormat returns the container format the grid was decoded from.
// ok is false for grids built with NewPixelGrid or from a format that has no
// Format constant.
func (g *PixelGrid) SourceFormat() (f Format, ok bool) {
	return g.format, g.known
}

// Image returns the backing image. Mutating it mutates the grid.
func (g *PixelGrid) Image() *image.NRGBA {
	return g.img
}

// Clone returns a deep copy of the grid.
func (g *PixelGrid) Clone() *PixelGrid {
	pix := make([]uint8, len(g.img.Pix))
	copy(pix, g.img.Pix)
	return &PixelGrid{
		img: &image.NRGBA{
			Pix:    pix,
			Stride: g.img.Stride,
			Rect:   g.img.Rect,
		},
		format: g.format,
		known:  g.known,
	}
}
