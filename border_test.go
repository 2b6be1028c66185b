package placer

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func TestBorder_DisabledIsNoOp(t *testing.T) {
	p := NewProcessor(700, 365)
	p.ForegroundBorder = false

	img := imaging.New(100, 100, color.NRGBA{A: 0xff})
	res := p.applyBorder(img)

	assert.Equal(t, 100, res.Bounds().Dx())
	assert.Equal(t, 100, res.Bounds().Dy())

	p.ForegroundBorder = true
	p.BorderWidth = 0
	res = p.applyBorder(img)

	assert.Equal(t, 100, res.Bounds().Dx())
}

func TestBorder_ExpandsWithFillColor(t *testing.T) {
	p := NewProcessor(700, 365)
	p.BorderWidth = 5
	p.BorderColor = color.NRGBA{R: 0xff, A: 0xff}

	img := imaging.New(100, 100, color.NRGBA{G: 0xff, A: 0xff})
	res := p.applyBorder(img)

	assert.Equal(t, 110, res.Bounds().Dx())
	assert.Equal(t, 110, res.Bounds().Dy())

	// The border region carries the fill color, the interior the image.
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, res.NRGBAAt(2, 2))
	assert.Equal(t, color.NRGBA{G: 0xff, A: 0xff}, res.NRGBAAt(55, 55))
}

func TestBorder_ClampedToTemplateBounds(t *testing.T) {
	p := NewProcessor(700, 365)
	p.BorderWidth = 10

	// Only one pixel of margin is left per side, so the configured width of
	// 10 is reduced to 1.
	img := imaging.New(698, 363, color.NRGBA{A: 0xff})
	res := p.applyBorder(img)

	assert.Equal(t, 700, res.Bounds().Dx())
	assert.Equal(t, 365, res.Bounds().Dy())
}

func TestBorder_NoClampWithoutMargin(t *testing.T) {
	p := NewProcessor(700, 365)
	p.BorderWidth = 10

	// A foreground already filling the template keeps the nominal width.
	img := imaging.New(700, 365, color.NRGBA{A: 0xff})
	res := p.applyBorder(img)

	assert.Equal(t, 720, res.Bounds().Dx())
	assert.Equal(t, 385, res.Bounds().Dy())
}

func TestBorder_AlphaColorKeepsTransparency(t *testing.T) {
	p := NewProcessor(700, 365)
	p.BorderWidth = 4
	p.BorderColor = color.NRGBA{R: 0xff, A: 0x80}
	p.BorderAlpha = true

	img := imaging.New(100, 100, color.NRGBA{B: 0xff, A: 0xff})
	res := p.applyBorder(img)

	// The border region keeps the translucent fill.
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0x80}, res.NRGBAAt(1, 1))
	assert.Equal(t, color.NRGBA{B: 0xff, A: 0xff}, res.NRGBAAt(50, 50))
}

func TestBorder_OpaqueColorFlattensImage(t *testing.T) {
	p := NewProcessor(700, 365)
	p.BorderWidth = 2
	p.BorderColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x10}
	p.BorderAlpha = false

	// Without an alpha border the fill is forced opaque and the image alpha
	// channel is flattened.
	img := imaging.New(100, 100, color.NRGBA{B: 0xff, A: 0x40})
	res := p.applyBorder(img)

	assert.Equal(t, uint8(0xff), res.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0xff), res.NRGBAAt(50, 50).A)
}

func TestBorder_SafeWidthComputation(t *testing.T) {
	p := NewProcessor(700, 365)
	p.BorderWidth = 10

	testCases := []struct {
		name     string
		w, h     int
		expected int
	}{
		{"plenty of margin", 100, 100, 10},
		{"clamped by height margin", 600, 363, 1},
		{"clamped by width margin", 698, 200, 1},
		{"no margin keeps nominal width", 700, 365, 10},
		{"oversized keeps nominal width", 800, 400, 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img := imaging.New(tc.w, tc.h, color.NRGBA{A: 0xff})
			assert.Equal(t, tc.expected, p.safeBorderWidth(img))
		})
	}
}
