package placer

import "image"

// strategy is one of the terminal placement decisions the processor can take.
// It is selected by a pure function of the template size, the source image
// size and the force fit policy, so every branch is testable in isolation.
type strategy int

const (
	// cropPortraitToLandscape scales a portrait image to the template width
	// and crops the vertical overflow with a quarter offset from the top.
	cropPortraitToLandscape strategy = iota

	// cropLandscapeToPortrait scales a landscape image to the template height
	// and crops the horizontal overflow with a quarter offset from the left.
	cropLandscapeToPortrait

	// cropWideToLandscape scales a same orientation but wider image to the
	// template height and center crops the horizontal overflow.
	cropWideToLandscape

	// cropTallToPortrait scales a same orientation but taller image to the
	// template width and center crops the vertical overflow.
	cropTallToPortrait

	// compose places the image as a bordered foreground over a blurred,
	// template filling background.
	compose

	// proportionalOnly resizes the image to the template preserving the
	// aspect ratio without cropping. The result may undershoot the template
	// on one axis.
	proportionalOnly
)

// smallImageThreshold routes images having any dimension below this fraction
// of the corresponding template dimension straight into the composite path.
const smallImageThreshold = 0.75

// selectStrategy decides which placement strategy applies to an image of
// the given size. Small images always receive the composite treatment,
// regardless of the force fit policy. Cross orientation images are force
// cropped only when the policy permits it, otherwise they are composed.
func (p *Processor) selectStrategy(width, height int) strategy {
	switch {
	case p.isImageSizeTooSmall(width, height):
		return compose
	case p.isTemplateLandscape():
		if height > width || p.isImageSizeTooNarrow(width, height) {
			if p.ForceFit {
				return cropPortraitToLandscape
			}
			return compose
		}
		if p.ForceFit {
			return cropWideToLandscape
		}
		return proportionalOnly
	default:
		if width > height || p.isImageSizeTooWide(width, height) {
			if p.ForceFit {
				return cropLandscapeToPortrait
			}
			return compose
		}
		if p.ForceFit {
			return cropTallToPortrait
		}
		return proportionalOnly
	}
}

// isTemplateLandscape checks if the template is landscape oriented.
func (p *Processor) isTemplateLandscape() bool {
	return p.Width > p.Height
}

// isTemplatePortrait checks if the template is portrait oriented.
func (p *Processor) isTemplatePortrait() bool {
	return p.Width < p.Height
}

// isImagePortrait checks if the image has a portrait aspect ratio.
func (p *Processor) isImagePortrait(img image.Image) bool {
	return img.Bounds().Dx() < img.Bounds().Dy()
}

// isImageLandscape checks if the image has a landscape aspect ratio.
func (p *Processor) isImageLandscape(img image.Image) bool {
	return img.Bounds().Dx() > img.Bounds().Dy()
}

// isImageSquare checks if the image width is equal to its height.
func (p *Processor) isImageSquare(img image.Image) bool {
	return !p.isImagePortrait(img) && !p.isImageLandscape(img)
}

// isImageTooSmall checks if either image dimension falls below the small
// image threshold relative to the template.
func (p *Processor) isImageTooSmall(img image.Image) bool {
	return p.isImageSizeTooSmall(img.Bounds().Dx(), img.Bounds().Dy())
}

func (p *Processor) isImageSizeTooSmall(width, height int) bool {
	return float64(width) < smallImageThreshold*float64(p.Width) ||
		float64(height) < smallImageThreshold*float64(p.Height)
}

// isImageSizeTooNarrow checks if the image aspect ratio is smaller than the
// aspect ratio of the template.
func (p *Processor) isImageSizeTooNarrow(width, height int) bool {
	return float64(width)/float64(height) < float64(p.Width)/float64(p.Height)
}

// isImageSizeTooWide checks if the image aspect ratio is greater than the
// aspect ratio of the template.
func (p *Processor) isImageSizeTooWide(width, height int) bool {
	return float64(width)/float64(height) > float64(p.Width)/float64(p.Height)
}
