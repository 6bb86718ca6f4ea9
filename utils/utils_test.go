package utils

import (
	"image"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cm "github.com/setanarut/chromamatte"
)

func halvesImage(w, h int, top, bottom color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := top
		if y >= h/2 {
			c = bottom
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestApplyMatte(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 40, G: 50, B: 60, A: 255})
	mask := image.NewAlpha(image.Rect(0, 0, 2, 1))
	mask.Pix[0] = 0
	mask.Pix[1] = 200

	out, err := ApplyMatte(img, mask)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 0}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 40, G: 50, B: 60, A: 200}, out.NRGBAAt(1, 0))
}

func TestApplyMatteSizeMismatch(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	mask := image.NewAlpha(image.Rect(0, 0, 3, 4))
	_, err := ApplyMatte(img, mask)
	require.Error(t, err)
}

func TestExtractKMeansPaletteSkipsTransparent(t *testing.T) {
	t.Parallel()

	// Opaque pixels are pure red; the blue region is fully transparent
	// (matted away) and must not contribute to the palette.
	img := halvesImage(40, 40, color.NRGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 0})
	palette := ExtractKMeansPalette(img, 1)
	require.Len(t, palette, 1)

	red := colorful.Color{R: 1, G: 0, B: 0}
	blue := colorful.Color{R: 0, G: 0, B: 1}
	assert.Less(t, palette[0].DistanceRgb(red), 0.1)
	assert.Greater(t, palette[0].DistanceRgb(blue), 0.9)
}

func TestExtractDominantPalette(t *testing.T) {
	t.Parallel()

	img := halvesImage(64, 64, color.NRGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 255})
	palette := ExtractDominantPalette(img, 2)
	require.Len(t, palette, 2)

	red := colorful.Color{R: 1, G: 0, B: 0}
	blue := colorful.Color{R: 0, G: 0, B: 1}
	var nearRed, nearBlue bool
	for _, c := range palette {
		if c.DistanceRgb(red) < 0.2 {
			nearRed = true
		}
		if c.DistanceRgb(blue) < 0.2 {
			nearBlue = true
		}
	}
	assert.True(t, nearRed, "palette misses red: %v", palette)
	assert.True(t, nearBlue, "palette misses blue: %v", palette)
}

func TestChromakeyAvoidsSubjectPalette(t *testing.T) {
	t.Parallel()

	// The selected chroma-key must keep a wide margin to every dominant
	// subject color, otherwise matting would eat into the subject.
	img := halvesImage(64, 64, color.NRGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 255})
	sel, err := cm.SelectChromakey(img, cm.DefaultSelectorOptions())
	require.NoError(t, err)

	for _, c := range ExtractDominantPalette(img, 2) {
		subject := color.NRGBA{
			R: uint8(c.R*255 + 0.5),
			G: uint8(c.G*255 + 0.5),
			B: uint8(c.B*255 + 0.5),
			A: 255,
		}
		assert.Greater(t, cm.Distance(sel.Best.Candidate.Color, subject), 100.0)
	}
}
