package carrier

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/disintegration/imaging"
	"github.com/xfmoulet/qoi"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
)

var (
	// ErrCarrierUnreadable is returned when input bytes cannot be decoded as an image.
	ErrCarrierUnreadable = errors.New("carrier unreadable")

	// ErrUnsupportedOutputFormat is returned when a grid is encoded to a lossy
	// or palette-based format.
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")
)

// Decode parses data as an image and returns its pixels as a PixelGrid.
//
// Parameters:
//   - data: The complete encoded image. Any format registered with the image
//     package is accepted.
//
// Returns:
//   - *PixelGrid: A freshly allocated grid owned by the caller.
//   - error: Wraps ErrCarrierUnreadable if data is empty, malformed, in an
//     unregistered format, or decodes to an image with zero area.
func Decode(data []byte) (*PixelGrid, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrCarrierUnreadable)
	}

	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCarrierUnreadable, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: image has no pixels", ErrCarrierUnreadable)
	}

	grid := &PixelGrid{img: toNRGBA(img)}
	grid.format, grid.known = formatFromDecoderName(name)
	return grid, nil
}

// Encode serializes grid in the given lossless format.
//
// PNG, BMP and TIFF are written through the imaging package; QOI through the
// qoi package. Lossy and palette formats fail with ErrUnsupportedOutputFormat
// before any bytes are produced, as do BMP and QOI for a grid with any alpha
// value below 255.
func Encode(grid *PixelGrid, format Format) ([]byte, error) {
	if !format.Lossless() {
		return nil, fmt.Errorf("%w: %s is not lossless", ErrUnsupportedOutputFormat, format)
	}
	if !format.KeepsAlpha() && !grid.Opaque() {
		return nil, fmt.Errorf("%w: %s cannot store transparent pixels exactly", ErrUnsupportedOutputFormat, format)
	}

	var buf bytes.Buffer
	if format == QOI {
		if err := qoi.Encode(&buf, grid.img); err != nil {
			return nil, fmt.Errorf("failed to encode image as qoi: %w", err)
		}
		return buf.Bytes(), nil
	}

	f, ok := toImagingFormat(format)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOutputFormat, format)
	}
	if err := imaging.Encode(&buf, grid.img, f); err != nil {
		return nil, fmt.Errorf("failed to encode image as %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// toNRGBA copies img into a new NRGBA image whose bounds start at (0,0).
func toNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}
