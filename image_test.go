package placer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage_EncodeToWriterDefaultsToJPEG(t *testing.T) {
	img := imaging.New(64, 32, color.NRGBA{R: 0xff, A: 0xff})

	var buf bytes.Buffer
	err := encodeImg(&buf, img)
	require.NoError(t, err)

	_, format, err := image.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestImage_EncodeByFileExtension(t *testing.T) {
	img := imaging.New(64, 32, color.NRGBA{G: 0xff, A: 0xff})

	testCases := []struct {
		ext    string
		format string
	}{
		{".jpg", "jpeg"},
		{".jpeg", "jpeg"},
		{".png", "png"},
		{".bmp", "bmp"},
	}

	for _, tc := range testCases {
		t.Run(tc.ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out"+tc.ext)

			f, err := os.Create(path)
			require.NoError(t, err)

			err = encodeImg(f, img)
			require.NoError(t, err)
			require.NoError(t, f.Close())

			f, err = os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			_, format, err := image.Decode(f)
			require.NoError(t, err)
			assert.Equal(t, tc.format, format)
		})
	}
}

func TestImage_EncodeRejectsUnsupportedExtension(t *testing.T) {
	img := imaging.New(8, 8, color.NRGBA{A: 0xff})

	f, err := os.Create(filepath.Join(t.TempDir(), "out.tiff"))
	require.NoError(t, err)
	defer f.Close()

	assert.Error(t, encodeImg(f, img))
}

func TestImage_FlattenImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0x10, A: 0x00})
	img.SetNRGBA(1, 1, color.NRGBA{B: 0x20, A: 0x7f})

	res := flattenImage(img)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, uint8(0xff), res.NRGBAAt(x, y).A)
		}
	}
	// The color channels pass through unchanged.
	assert.Equal(t, uint8(0x10), res.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(0x20), res.NRGBAAt(1, 1).B)
}

func TestImage_PNGWithPaletteDecodesAndPlaces(t *testing.T) {
	// A paletted PNG exercises the color mode normalization path end to end.
	pal := color.Palette{color.NRGBA{A: 0x00}, color.NRGBA{R: 0xff, A: 0xff}}
	src := image.NewPaletted(image.Rect(0, 0, 1400, 730), pal)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	p := NewProcessor(700, 365)
	var out bytes.Buffer
	require.NoError(t, p.Process(&buf, &out))

	res, _, err := image.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, 700, res.Bounds().Dx())
	assert.Equal(t, 365, res.Bounds().Dy())
}
