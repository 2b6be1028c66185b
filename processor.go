package placer

import (
	"image"
	"image/color"
	"io"
	"log"

	"github.com/disintegration/imaging"
	"github.com/esimov/placer/utils"
	"github.com/pkg/errors"
)

// scaleUpLimit caps the enlargement of small foreground images at twice
// their original linear dimensions to avoid visible pixelation.
const scaleUpLimit = 2.0

// ErrInvalidImage is returned when the processor is invoked with a missing
// source image. This is a usage error, not a recoverable processing failure.
var ErrInvalidImage = errors.New("source image must be a valid image")

// Processor holds the template dimensions together with the composition
// options. The zero value is not usable, call NewProcessor to obtain an
// instance preloaded with the default settings.
//
// A Processor is immutable during placement and safe for concurrent use.
type Processor struct {
	// Width and Height define the template the output must match exactly.
	Width  int
	Height int

	// BackgroundBlur applies a Gaussian blur of BlurRadius pixels to the
	// background of composed images.
	BackgroundBlur bool
	BlurRadius     int

	// ForegroundBorder expands the foreground of composed images on all four
	// sides by BorderWidth pixels, filled with BorderColor. When BorderAlpha
	// is set the border color alpha channel is retained and the foreground is
	// pasted using its transparency as a mask, otherwise the foreground is
	// flattened to an opaque image before the border is applied.
	ForegroundBorder bool
	BorderWidth      int
	BorderColor      color.NRGBA
	BorderAlpha      bool

	// ForceFit crops the image to fill the template entirely. When disabled
	// the image proportions are preserved, either by a plain proportional
	// resize or by composing the image over a blurred background.
	ForceFit bool

	// Spinner is the progress indicator used by the command line interface.
	Spinner *utils.Spinner
}

// NewProcessor returns a Processor for the given template size with the
// default composition settings.
func NewProcessor(width, height int) *Processor {
	return &Processor{
		Width:            width,
		Height:           height,
		BackgroundBlur:   true,
		BlurRadius:       75,
		ForegroundBorder: true,
		BorderWidth:      1,
		BorderColor:      color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		ForceFit:         true,
	}
}

// Process reads the source image from r, places it into the template and
// encodes the result to w. The output format is inferred from the file name
// when w is an *os.File, otherwise the image is encoded as JPEG.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	src, _, err := image.Decode(r)
	if err != nil {
		return errors.Wrap(err, "unable to decode the source image")
	}

	res, err := p.Fit(src)
	if err != nil {
		return err
	}
	return encodeImg(w, res)
}

// Fit places the source image into the template and returns the new image.
// For every strategy except the proportional resize the returned image size
// equals the template size exactly. Recoverable processing failures are
// logged and reported through the returned error; no partial image is ever
// returned alongside an error.
func (p *Processor) Fit(img image.Image) (*image.NRGBA, error) {
	if img == nil {
		return nil, ErrInvalidImage
	}
	if p.Width <= 0 || p.Height <= 0 {
		return nil, errors.Errorf("invalid template size %dx%d", p.Width, p.Height)
	}

	// Flatten any palette or alpha information to an opaque true color image
	// before measuring or touching any pixel.
	src := flattenImage(imaging.Clone(img))

	res, err := p.place(src)
	if err != nil {
		log.Printf("unable to place the source image: %v", err)
		return nil, err
	}
	return res, nil
}

// place dispatches the normalized source image to the strategy selected by
// the decision table.
func (p *Processor) place(src *image.NRGBA) (*image.NRGBA, error) {
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("degenerate source image size %dx%d", width, height)
	}

	switch p.selectStrategy(width, height) {
	case cropPortraitToLandscape:
		return p.fitPortraitToLandscape(src)
	case cropLandscapeToPortrait:
		return p.fitLandscapeToPortrait(src)
	case cropWideToLandscape:
		return p.fitWideToLandscape(src)
	case cropTallToPortrait:
		return p.fitTallToPortrait(src)
	case proportionalOnly:
		return p.resizeProportionally(src), nil
	default:
		return p.createComposite(src)
	}
}

// flattenImage discards the alpha channel, converting the image to the
// equivalent of an opaque true color image. Transparent regions become
// whatever color the decoder stored underneath, which mirrors a plain
// channel drop rather than a black or white matte.
func flattenImage(img *image.NRGBA) *image.NRGBA {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}
