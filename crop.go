package placer

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// The four fit and crop variants below scale the source image so that one
// axis matches the template exactly, then crop the overflow on the other
// axis. Cross orientation fits bias the crop window towards one edge by
// dividing the overflow by four instead of centering it, since centering a
// 90 degree mismatched image tends to cut meaningful content from both ends.
// Same orientation overflow is center cropped.

// fitPortraitToLandscape scales a portrait image to the template width and
// crops the vertical overflow, keeping slightly more of the top.
func (p *Processor) fitPortraitToLandscape(src *image.NRGBA) (*image.NRGBA, error) {
	width, height := src.Bounds().Dx(), src.Bounds().Dy()

	projectedH := p.Width * height / width
	if projectedH < p.Height {
		return nil, errors.Errorf("projected height %d does not cover the template", projectedH)
	}
	resized := imaging.Resize(src, p.Width, projectedH, imaging.Lanczos)

	offset := (projectedH - p.Height) / 4
	return imaging.Crop(resized, image.Rect(0, offset, p.Width, offset+p.Height)), nil
}

// fitLandscapeToPortrait scales a landscape image to the template height and
// crops the horizontal overflow, keeping slightly more of the left side.
func (p *Processor) fitLandscapeToPortrait(src *image.NRGBA) (*image.NRGBA, error) {
	width, height := src.Bounds().Dx(), src.Bounds().Dy()

	projectedW := p.Height * width / height
	if projectedW < p.Width {
		return nil, errors.Errorf("projected width %d does not cover the template", projectedW)
	}
	resized := imaging.Resize(src, projectedW, p.Height, imaging.Lanczos)

	offset := (projectedW - p.Width) / 4
	return imaging.Crop(resized, image.Rect(offset, 0, offset+p.Width, p.Height)), nil
}

// fitWideToLandscape scales an image wider than the template to the template
// height and center crops the horizontal overflow.
func (p *Processor) fitWideToLandscape(src *image.NRGBA) (*image.NRGBA, error) {
	width, height := src.Bounds().Dx(), src.Bounds().Dy()

	projectedW := p.Height * width / height
	if projectedW < p.Width {
		return nil, errors.Errorf("projected width %d does not cover the template", projectedW)
	}
	resized := imaging.Resize(src, projectedW, p.Height, imaging.Lanczos)

	offset := (projectedW - p.Width) / 2
	return imaging.Crop(resized, image.Rect(offset, 0, offset+p.Width, p.Height)), nil
}

// fitTallToPortrait scales an image taller than the template to the template
// width and center crops the vertical overflow.
func (p *Processor) fitTallToPortrait(src *image.NRGBA) (*image.NRGBA, error) {
	width, height := src.Bounds().Dx(), src.Bounds().Dy()

	projectedH := p.Width * height / width
	if projectedH < p.Height {
		return nil, errors.Errorf("projected height %d does not cover the template", projectedH)
	}
	resized := imaging.Resize(src, p.Width, projectedH, imaging.Lanczos)

	offset := (projectedH - p.Height) / 2
	return imaging.Crop(resized, image.Rect(0, offset, p.Width, offset+p.Height)), nil
}

// resizeProportionally scales the image to the template preserving the
// aspect ratio. The axis constraining a template of the given orientation
// matches the template dimension exactly, the other axis may undershoot it.
func (p *Processor) resizeProportionally(src *image.NRGBA) *image.NRGBA {
	width, height := src.Bounds().Dx(), src.Bounds().Dy()

	if p.isTemplateLandscape() {
		return imaging.Resize(src, p.Width, p.Width*height/width, imaging.Lanczos)
	}
	return imaging.Resize(src, p.Height*width/height, p.Height, imaging.Lanczos)
}
