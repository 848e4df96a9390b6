package carrier

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Format identifies an image container format.
type Format int

// Supported formats. The zero value is PNG.
const (
	PNG Format = iota
	BMP
	TIFF
	QOI
	JPEG
	GIF
)

var formatNames = map[Format]string{
	PNG:  "png",
	BMP:  "bmp",
	TIFF: "tiff",
	QOI:  "qoi",
	JPEG: "jpeg",
	GIF:  "gif",
}

var formatMimeTypes = map[Format]string{
	PNG:  "image/png",
	BMP:  "image/bmp",
	TIFF: "image/tiff",
	QOI:  "image/qoi",
	JPEG: "image/jpeg",
	GIF:  "image/gif",
}

var formatExtensions = map[Format]string{
	PNG:  ".png",
	BMP:  ".bmp",
	TIFF: ".tiff",
	QOI:  ".qoi",
	JPEG: ".jpg",
	GIF:  ".gif",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Lossless reports whether f preserves every 8-bit R, G and B value of an
// opaque image exactly. Use KeepsAlpha for images with transparency.
func (f Format) Lossless() bool {
	switch f {
	case PNG, BMP, TIFF, QOI:
		return true
	}
	return false
}

// KeepsAlpha reports whether f also preserves alpha values below 255 and the
// color channels underneath them. The BMP reader drops alpha and the QOI
// writer premultiplies, so only PNG and TIFF qualify.
func (f Format) KeepsAlpha() bool {
	switch f {
	case PNG, TIFF:
		return true
	}
	return false
}

// MimeType returns the MIME type for f, or "application/octet-stream".
func (f Format) MimeType() string {
	if m, ok := formatMimeTypes[f]; ok {
		return m
	}
	return "application/octet-stream"
}

// Extension returns the canonical file extension for f, including the dot.
func (f Format) Extension() string {
	return formatExtensions[f]
}

// ParseFormat parses a format name or file extension such as "png", ".tif" or
// "JPG". It does not check whether the format is a valid output target; use
// Format.Lossless for that.
func ParseFormat(name string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	if ext == "qoi" {
		return QOI, nil
	}
	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return 0, fmt.Errorf("unknown image format %q", name)
	}
	return fromImagingFormat(f)
}

// FormatFromFilename determines the format from the extension of path.
func FormatFromFilename(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("cannot determine image format of %q: no extension", path)
	}
	return ParseFormat(ext)
}

// formatFromDecoderName maps a name returned by image.Decode to a Format.
func formatFromDecoderName(name string) (Format, bool) {
	f, err := ParseFormat(name)
	if err != nil {
		return 0, false
	}
	return f, true
}

func fromImagingFormat(f imaging.Format) (Format, error) {
	switch f {
	case imaging.PNG:
		return PNG, nil
	case imaging.BMP:
		return BMP, nil
	case imaging.TIFF:
		return TIFF, nil
	case imaging.JPEG:
		return JPEG, nil
	case imaging.GIF:
		return GIF, nil
	}
	return 0, fmt.Errorf("unsupported image format %s", f)
}

func toImagingFormat(f Format) (imaging.Format, bool) {
	switch f {
	case PNG:
		return imaging.PNG, true
	case BMP:
		return imaging.BMP, true
	case TIFF:
		return imaging.TIFF, true
	}
	return 0, false
}
