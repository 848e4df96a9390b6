package analysis

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"
)

// DiffMapResult contains a rendered difference map.
type DiffMapResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// LSBPlane returns an opaque image in which every channel is 255 where the
// corresponding channel of img has its least significant bit set and 0
// otherwise. Alpha is not represented.
func LSBPlane(img image.Image) *image.NRGBA {
	src := imaging.Clone(img)
	dst := image.NewNRGBA(src.Bounds())
	for i := 0; i < len(src.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			dst.Pix[i+c] = (src.Pix[i+c] & 1) * 255
		}
		dst.Pix[i+3] = 255
	}
	return dst
}

// DiffMap renders which channel LSBs differ between a and b.
//
// Unchanged pixels are black. A pixel whose red LSB flipped is red, one whose
// red and blue LSBs flipped is magenta, and so on.
func DiffMap(a, b image.Image) (*image.RGBA, error) {
	if err := sameSize(a.Bounds(), b.Bounds()); err != nil {
		return nil, err
	}
	return blend.Difference(LSBPlane(a), LSBPlane(b)), nil
}

// RenderDiffMap is DiffMap encoded as a base64 PNG.
func RenderDiffMap(a, b image.Image) (*DiffMapResult, error) {
	diff, err := DiffMap(a, b)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, diff); err != nil {
		return nil, fmt.Errorf("failed to encode diff map: %w", err)
	}

	return &DiffMapResult{
		Width:       diff.Bounds().Dx(),
		Height:      diff.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
