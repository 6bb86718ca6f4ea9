package chromamatte

import (
	"image"
	"image/color"
	"image/draw"
)

// rgbaAt reads a pixel's non-premultiplied channels. *image.NRGBA, the
// buffer type matted images round-trip through, is read directly so RGB
// survives under zero alpha; other image types go through NRGBAModel.
func rgbaAt(img image.Image, x, y int) (r, g, b, a uint8) {
	if s, ok := img.(*image.NRGBA); ok {
		i := s.PixOffset(x, y)
		return s.Pix[i], s.Pix[i+1], s.Pix[i+2], s.Pix[i+3]
	}
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return c.R, c.G, c.B, c.A
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}
