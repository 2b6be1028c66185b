package placer

import (
	"image"
	"log"

	"github.com/disintegration/imaging"
	"github.com/esimov/placer/utils"
)

// applyBorder expands the foreground image on all four sides by the
// configured border width, filled with the border color. A border color
// carrying an alpha channel keeps the image transparency intact, otherwise
// the image is flattened to an opaque one before the expansion.
func (p *Processor) applyBorder(img *image.NRGBA) *image.NRGBA {
	if !p.ForegroundBorder || p.BorderWidth <= 0 {
		return img
	}

	fill := p.BorderColor
	if !p.BorderAlpha {
		img = flattenImage(img)
		fill.A = 0xff
	}

	width := p.safeBorderWidth(img)
	if width <= 0 {
		return img
	}

	canvas := imaging.New(
		img.Bounds().Dx()+2*width,
		img.Bounds().Dy()+2*width,
		fill,
	)
	return imaging.PasteCenter(canvas, img)
}

// safeBorderWidth reduces the configured border width so the bordered
// foreground stays within the template bounds. When the foreground already
// fills or exceeds the template the configured width is used as is.
func (p *Processor) safeBorderWidth(img *image.NRGBA) int {
	maxAllowed := utils.Min(
		(p.Width-img.Bounds().Dx())/2,
		(p.Height-img.Bounds().Dy())/2,
	)

	width := p.BorderWidth
	if 0 < maxAllowed && maxAllowed < width {
		log.Printf("foreground border width (%d) reduced to %d to fit within template bounds",
			width, maxAllowed)
		width = maxAllowed
	}
	return width
}
