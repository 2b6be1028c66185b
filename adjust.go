package placer

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// autoContrast stretches the image contrast by remapping each color channel
// so that its darkest value becomes black and its lightest becomes white.
// Channels with a single value are left untouched. The alpha channel is
// never altered.
func autoContrast(img *image.NRGBA) *image.NRGBA {
	var lo, hi [3]uint8
	for c := 0; c < 3; c++ {
		lo[c], hi[c] = 0xff, 0x00
	}

	for i := 0; i < len(img.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := img.Pix[i+c]
			if v < lo[c] {
				lo[c] = v
			}
			if v > hi[c] {
				hi[c] = v
			}
		}
	}

	var lut [3][256]uint8
	for c := 0; c < 3; c++ {
		if lo[c] >= hi[c] {
			for v := 0; v < 256; v++ {
				lut[c][v] = uint8(v)
			}
			continue
		}
		scale := 255.0 / float64(hi[c]-lo[c])
		for v := 0; v < 256; v++ {
			stretched := float64(v-int(lo[c])) * scale
			if stretched < 0 {
				stretched = 0
			} else if stretched > 255 {
				stretched = 255
			}
			lut[c][v] = uint8(stretched + 0.5)
		}
	}

	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: lut[0][c.R],
			G: lut[1][c.G],
			B: lut[2][c.B],
			A: c.A,
		}
	})
}
