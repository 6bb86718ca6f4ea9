package chromamatte

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

type MatteOptions struct {
	// Threshold is the hard cutoff distance: pixels closer than this to
	// the target color get alpha 0.
	Threshold float64
	// FeatherWidth is the width of the linear transition band above
	// Threshold. Pixels at Threshold+FeatherWidth or farther get alpha
	// 255. Zero disables feathering (hard edge).
	FeatherWidth float64
}

func DefaultMatteOptions() MatteOptions {
	return MatteOptions{
		Threshold:    100,
		FeatherWidth: 20,
	}
}

// Matte is a per-pixel alpha mask separating subject from background:
// 0 is fully removed background, 255 fully kept subject, intermediate
// values only inside the feather band. The mask is a new buffer parallel
// to the input; the input's RGB channels are never altered.
type Matte struct {
	Alpha *image.Alpha
	// Removed counts pixels that ended up with alpha 0.
	Removed int
	// Feathered counts pixels with intermediate alpha.
	Feathered int
	// RemovedFraction = Removed / (W*H).
	RemovedFraction float64
}

// BuildMatte produces an alpha matte that removes the target background
// color from img, feathering the transition edge.
//
// Each pixel's alpha depends only on its own distance to target, so the
// result is bit-for-bit reproducible for fixed inputs. A pixel exactly
// at Threshold maps to alpha 0; a pixel exactly at Threshold+FeatherWidth
// maps to alpha 255.
func BuildMatte(img image.Image, target color.NRGBA, opt MatteOptions) (*Matte, error) {
	if opt.Threshold < 0 || opt.FeatherWidth < 0 {
		return nil, fmt.Errorf("%w: threshold=%v featherWidth=%v",
			ErrInvalidParameter, opt.Threshold, opt.FeatherWidth)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrInvalidImage, w, h)
	}

	// Matted images come back through here a second time, so the source
	// is read non-premultiplied: RGB under zero alpha must survive.
	src := toNRGBA(img)
	m := &Matte{Alpha: image.NewAlpha(image.Rect(0, 0, w, h))}
	opaque := opt.Threshold + opt.FeatherWidth
	for y := 0; y < h; y++ {
		row := y * m.Alpha.Stride
		srcOff := src.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			off := srcOff + x*4
			d := dist(src.Pix[off], src.Pix[off+1], src.Pix[off+2], target.R, target.G, target.B)
			var a uint8
			switch {
			case d < opt.Threshold:
				a = 0
			case d >= opaque:
				a = 255
			default:
				a = uint8(math.Round(255 * (d - opt.Threshold) / opt.FeatherWidth))
			}
			if a == 0 {
				m.Removed++
			} else if a < 255 {
				m.Feathered++
			}
			m.Alpha.Pix[row+x] = a
		}
	}
	m.RemovedFraction = float64(m.Removed) / float64(w*h)
	return m, nil
}
