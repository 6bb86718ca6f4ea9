package chromamatte

import (
	"image"
	"image/color"
	"image/draw"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// borderedImage fills the whole image with center, then overwrites a
// border-thick frame with edge.
func borderedImage(w, h, border int, edge, center color.NRGBA) *image.NRGBA {
	img := solidImage(w, h, center)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < border || x >= w-border || y < border || y >= h-border {
				img.SetNRGBA(x, y, edge)
			}
		}
	}
	return img
}
