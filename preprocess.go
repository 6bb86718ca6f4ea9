package chromamatte

import (
	"image"

	"github.com/nfnt/resize"
)

// DefaultMaxSize is the dimension cap applied by NormalizeSize when the
// caller passes no explicit limit.
const DefaultMaxSize = 4096

// NormalizeSize returns img unchanged when both dimensions are at most
// maxSize, otherwise a Lanczos3 downscale with the aspect ratio
// preserved. maxSize <= 0 means DefaultMaxSize.
func NormalizeSize(img image.Image, maxSize int) image.Image {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	longest := max(w, h)
	if longest <= maxSize {
		return img
	}

	scale := float64(maxSize) / float64(longest)
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	return resize.Resize(uint(newW), uint(newH), img, resize.Lanczos3)
}
