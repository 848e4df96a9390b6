package analysis

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Report summarizes the pixel-level difference between two images.
type Report struct {
	Width           int      `json:"width"`
	Height          int      `json:"height"`
	ChangedPixels   int      `json:"changed_pixels"`
	ChangedChannels int      `json:"changed_channels"`
	MaxChannelDelta int      `json:"max_channel_delta"`
	PSNR            *float64 `json:"psnr_db,omitempty"` // nil when the images are identical
	MeanDeltaE      float64  `json:"mean_delta_e"`      // CIEDE2000, averaged over every pixel
	MaxDeltaE       float64  `json:"max_delta_e"`
}

// Identical reports whether no channel value differs.
func (r *Report) Identical() bool {
	return r.ChangedChannels == 0
}

// Compare measures how far b deviates from a.
//
// Parameters:
//   - a: The reference image, usually the cover.
//   - b: The image to compare, usually the stego output.
//
// Returns:
//   - *Report: Change counts, PSNR and perceptual color difference.
//   - error: Non-nil if the images do not have the same dimensions.
//
// Both images are converted to 8-bit non-premultiplied RGBA first, so a
// paletted or 16-bit input is compared by the values an encoder would see.
func Compare(a, b image.Image) (*Report, error) {
	na, nb := imaging.Clone(a), imaging.Clone(b)
	if err := sameSize(na.Bounds(), nb.Bounds()); err != nil {
		return nil, err
	}

	w, h := na.Bounds().Dx(), na.Bounds().Dy()
	report := &Report{Width: w, Height: h}

	var sumSquares, sumDeltaE float64
	for i := 0; i < len(na.Pix); i += 4 {
		pa, pb := na.Pix[i:i+4:i+4], nb.Pix[i:i+4:i+4]

		changed := false
		for c := 0; c < 4; c++ {
			d := int(pa[c]) - int(pb[c])
			if d == 0 {
				continue
			}
			changed = true
			report.ChangedChannels++
			if d < 0 {
				d = -d
			}
			if d > report.MaxChannelDelta {
				report.MaxChannelDelta = d
			}
			sumSquares += float64(d * d)
		}
		if !changed {
			continue
		}
		report.ChangedPixels++

		// go-colorful reports CIEDE2000 on a 0..1 scale.
		de := 100 * toColorful(pa).DistanceCIEDE2000(toColorful(pb))
		sumDeltaE += de
		if de > report.MaxDeltaE {
			report.MaxDeltaE = de
		}
	}

	if n := w * h; n > 0 {
		report.MeanDeltaE = sumDeltaE / float64(n)
	}
	if sumSquares > 0 {
		mse := sumSquares / float64(w*h*4)
		psnr := 10 * math.Log10(255*255/mse)
		report.PSNR = &psnr
	}
	return report, nil
}

func toColorful(p []uint8) colorful.Color {
	return colorful.Color{
		R: float64(p[0]) / 255,
		G: float64(p[1]) / 255,
		B: float64(p[2]) / 255,
	}
}

func sameSize(a, b image.Rectangle) error {
	if a.Dx() != b.Dx() || a.Dy() != b.Dy() {
		return fmt.Errorf("image dimensions differ: %dx%d vs %dx%d", a.Dx(), a.Dy(), b.Dx(), b.Dy())
	}
	return nil
}
