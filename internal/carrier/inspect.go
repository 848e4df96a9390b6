package carrier

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// Info contains metadata about an encoded carrier, read from its header only.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected container format, e.g. "png" or "jpeg".
	// Detection is based on file contents, not the file name.
	Format string `json:"format"`

	// Lossless reports whether the source format can be used as an output
	// format without destroying hidden data in an opaque image.
	Lossless bool `json:"lossless"`

	// KeepsAlpha reports whether the source format also preserves
	// transparent pixels and alpha-channel data exactly.
	KeepsAlpha bool `json:"keeps_alpha"`

	// ColorDepth indicates the source bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the source color model carries transparency.
	HasAlpha bool `json:"has_alpha"`

	// Paletted indicates an indexed-color source. Paletted carriers are
	// expanded to RGBA on decode.
	Paletted bool `json:"paletted"`

	// SizeBytes is the length of the encoded carrier in bytes.
	SizeBytes int64 `json:"size_bytes"`
}

// Inspect reads the header of an encoded image and reports its metadata
// without decoding pixel data.
//
// # Color Depth Detection
//
// Color depth is determined by the decoder's color model:
//   - RGBA64, NRGBA64, Gray16 -> "16-bit"
//   - All other models -> "8-bit"
func Inspect(data []byte) (*Info, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrCarrierUnreadable)
	}
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCarrierUnreadable, err)
	}

	info := &Info{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Format:     name,
		ColorDepth: "8-bit",
		SizeBytes:  int64(len(data)),
	}
	if f, ok := formatFromDecoderName(name); ok {
		info.Format = f.String()
		info.Lossless = f.Lossless()
		info.KeepsAlpha = f.KeepsAlpha()
	}

	switch m := cfg.ColorModel.(type) {
	case color.Palette:
		info.Paletted = true
		info.HasAlpha = paletteHasAlpha(m)
	default:
		// Decoders report opaque truecolor sources as RGBAModel, so only the
		// non-premultiplied models indicate a stored alpha channel.
		switch cfg.ColorModel {
		case color.NRGBAModel:
			info.HasAlpha = true
		case color.NRGBA64Model:
			info.HasAlpha = true
			info.ColorDepth = "16-bit"
		case color.RGBA64Model, color.Gray16Model:
			info.ColorDepth = "16-bit"
		}
	}

	return info, nil
}

func paletteHasAlpha(p color.Palette) bool {
	for _, c := range p {
		if _, _, _, a := c.RGBA(); a != 0xffff {
			return true
		}
	}
	return false
}
