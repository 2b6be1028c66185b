package placer

import (
	"image"
	"image/color"
	"log"

	"github.com/disintegration/imaging"
	"github.com/esimov/placer/utils"
	"github.com/pkg/errors"
)

// foregroundScale is the fraction of the template the composed foreground
// may occupy on each axis.
const foregroundScale = 0.8

// createComposite composes a new template sized image from the source,
// resized proportionally and used as a bordered foreground placed centered
// over a blurred, template filling background.
func (p *Processor) createComposite(src *image.NRGBA) (*image.NRGBA, error) {
	foreground, err := p.createForeground(src)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create the composite foreground")
	}
	background := p.createBackground(src)

	topLeft := image.Pt(
		(p.Width-foreground.Bounds().Dx())/2,
		(p.Height-foreground.Bounds().Dy())/2,
	)

	// Paste through the alpha channel in case the foreground carries
	// transparency, so the background shows through transparent regions.
	if p.ForegroundBorder && p.BorderWidth > 0 && p.BorderAlpha {
		return imaging.Overlay(background, foreground, topLeft, 1.0), nil
	}
	return imaging.Paste(background, foreground, topLeft), nil
}

// createForeground prepares the source image to be used as foreground by
// resizing it into the foreground box, stretching its contrast and applying
// the configured border.
func (p *Processor) createForeground(src *image.NRGBA) (*image.NRGBA, error) {
	foreground := p.resizeForeground(imaging.Clone(src))
	if foreground.Bounds().Dx() <= 0 || foreground.Bounds().Dy() <= 0 {
		return nil, errors.Errorf("degenerate foreground size %dx%d",
			foreground.Bounds().Dx(), foreground.Bounds().Dy())
	}
	foreground = autoContrast(foreground)

	return p.applyBorder(foreground), nil
}

// resizeForeground resizes the image to fit within the foreground box while
// maintaining the aspect ratio. Small images are scaled up, capped at the
// scale up limit; larger ones are only ever scaled down.
func (p *Processor) resizeForeground(img *image.NRGBA) *image.NRGBA {
	maxW := int(float64(p.Width) * foregroundScale)
	maxH := int(float64(p.Height) * foregroundScale)

	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	if width < maxW && height < maxH {
		return p.scaleUp(img, maxW, maxH)
	}
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}

// scaleUp enlarges a small image towards the foreground box, never beyond
// the scale up limit.
func (p *Processor) scaleUp(img *image.NRGBA, maxW, maxH int) *image.NRGBA {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	ratioW := float64(maxW) / float64(width)
	ratioH := float64(maxH) / float64(height)
	ratio := utils.Min(utils.Min(ratioW, ratioH), scaleUpLimit)

	newW := int(float64(width) * ratio)
	newH := int(float64(height) * ratio)
	if newW > 0 && newH > 0 {
		return imaging.Resize(img, newW, newH, imaging.Lanczos)
	}
	return img
}

// createBackground resizes the source image so that it covers the entire
// template, center crops it to the template size and blurs it when the
// background blur is enabled.
func (p *Processor) createBackground(src *image.NRGBA) *image.NRGBA {
	canvas := p.resizeBackgroundCanvas(imaging.Clone(src))
	background := p.cropBackgroundToTemplate(canvas)

	if p.BackgroundBlur && p.BlurRadius > 0 {
		background = imaging.Blur(background, float64(p.BlurRadius))
	}
	return background
}

// resizeBackgroundCanvas resizes the image to the covering canvas size. A
// degenerate canvas falls back to a blank opaque canvas of the template size
// instead of failing the whole composite.
func (p *Processor) resizeBackgroundCanvas(img *image.NRGBA) *image.NRGBA {
	canvasW, canvasH := p.backgroundCanvasSize(img.Bounds().Dx(), img.Bounds().Dy())
	if canvasW <= 0 || canvasH <= 0 {
		log.Printf("invalid canvas size %dx%d calculated for the background", canvasW, canvasH)
		return imaging.New(p.Width, p.Height, color.NRGBA{A: 0xff})
	}
	return imaging.Resize(img, canvasW, canvasH, imaging.Lanczos)
}

// backgroundCanvasSize computes a canvas at least as large as the template
// on both axes while preserving the image aspect ratio. Whether the canvas
// is fitted by width or by height depends on the image aspect ratio relative
// to the template, mirrored between the two template orientations.
func (p *Processor) backgroundCanvasSize(width, height int) (int, int) {
	imageRatio := float64(width) / float64(height)
	templateRatio := float64(p.Width) / float64(p.Height)

	if p.isTemplateLandscape() {
		if imageRatio < templateRatio {
			// The image is narrower than the template, fit by width.
			return p.Width, p.Width * height / width
		}
		return p.Height * width / height, p.Height
	}

	if imageRatio > templateRatio {
		// The image is wider than the template, fit by height.
		return p.Height * width / height, p.Height
	}
	return p.Width, p.Width * height / width
}

// cropBackgroundToTemplate center crops the canvas to the template size,
// clamping the crop window to the canvas bounds, and corrects any remaining
// rounding drift with a final exact size resize.
func (p *Processor) cropBackgroundToTemplate(canvas *image.NRGBA) *image.NRGBA {
	canvasW, canvasH := canvas.Bounds().Dx(), canvas.Bounds().Dy()

	left := utils.Max((canvasW-p.Width)/2, 0)
	top := utils.Max((canvasH-p.Height)/2, 0)
	right := utils.Min(left+p.Width, canvasW)
	bottom := utils.Min(top+p.Height, canvasH)

	background := imaging.Crop(canvas, image.Rect(left, top, right, bottom))

	if background.Bounds().Dx() != p.Width || background.Bounds().Dy() != p.Height {
		background = imaging.Resize(background, p.Width, p.Height, imaging.Lanczos)
	}
	return background
}
