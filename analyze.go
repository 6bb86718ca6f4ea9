package chromamatte

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/stat"
)

// Analysis summarizes a subject image before generation: basic channel
// statistics plus heuristics for traits that make matting harder (fine
// edges such as hair or fur, transparent objects, motion blur).
type Analysis struct {
	Width, Height int
	// Brightness is the mean of the per-channel means, in [0, 255].
	Brightness float64
	// Contrast is the mean of the per-channel standard deviations.
	Contrast float64
	// ComplexEdges flags high-frequency content at the subject outline.
	ComplexEdges bool
	// Transparent flags a useful alpha channel or glass-like highlights.
	Transparent bool
	// MotionBlur flags low Laplacian variance.
	MotionBlur bool
}

const (
	analysisThumbSize = 100
	edgeVarianceMin   = 1000
	blurVarianceMax   = 100
	brightChannelMin  = 240
)

// Analyze inspects a subject image and reports the traits above. The
// edge and blur heuristics run on a small grayscale thumbnail; the
// channel statistics cover every pixel.
func Analyze(img image.Image) (Analysis, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return Analysis{}, fmt.Errorf("%w: empty image %dx%d", ErrInvalidImage, w, h)
	}

	an := Analysis{Width: w, Height: h}

	var sum, sumSq [3]float64
	usefulAlpha := false
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := rgbaAt(img, b.Min.X+x, b.Min.Y+y)
			c := [3]float64{float64(r), float64(g), float64(bl)}
			for i, v := range c {
				sum[i] += v
				sumSq[i] += v * v
			}
			if a != 255 {
				usefulAlpha = true
			}
		}
	}
	n := float64(w * h)
	maxMean := 0.0
	for i := range sum {
		mean := sum[i] / n
		an.Brightness += mean / 3
		an.Contrast += math.Sqrt(max(0, sumSq[i]/n-mean*mean)) / 3
		maxMean = max(maxMean, mean)
	}
	// Glass and reflections read as a very bright channel even when the
	// image carries no alpha.
	an.Transparent = usefulAlpha || maxMean > brightChannelMin

	gray := grayThumb(img, analysisThumbSize)
	an.ComplexEdges = gradientVariance(gray) > edgeVarianceMin
	an.MotionBlur = laplacianVariance(gray) < blurVarianceMax
	return an, nil
}

// grayThumb scales img onto a small grayscale buffer for the edge and
// blur heuristics.
func grayThumb(img image.Image, size int) *image.Gray {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), img, img.Bounds(), draw.Over, nil)
	gray := image.NewGray(rgba.Bounds())
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b, _ := rgba.At(x, y).RGBA()
			val := uint8((0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 256)
			gray.SetGray(x, y, color.Gray{Y: val})
		}
	}
	return gray
}

// gradientVariance sums the variances of the horizontal and vertical
// first differences. Hair and fur produce high values.
func gradientVariance(g *image.Gray) float64 {
	w, h := g.Bounds().Dx(), g.Bounds().Dy()
	gx := make([]float64, 0, (w-1)*h)
	gy := make([]float64, 0, w*(h-1))
	for y := 0; y < h; y++ {
		row := y * g.Stride
		for x := 0; x < w-1; x++ {
			gx = append(gx, math.Abs(float64(g.Pix[row+x+1])-float64(g.Pix[row+x])))
		}
	}
	for y := 0; y < h-1; y++ {
		row := y * g.Stride
		for x := 0; x < w; x++ {
			gy = append(gy, math.Abs(float64(g.Pix[row+g.Stride+x])-float64(g.Pix[row+x])))
		}
	}
	return stat.PopVariance(gx, nil) + stat.PopVariance(gy, nil)
}

// laplacianVariance measures vertical second differences; low variance
// indicates blur.
func laplacianVariance(g *image.Gray) float64 {
	w, h := g.Bounds().Dx(), g.Bounds().Dy()
	lap := make([]float64, 0, w*(h-2))
	for y := 0; y < h-2; y++ {
		row := y * g.Stride
		for x := 0; x < w; x++ {
			v := float64(g.Pix[row+2*g.Stride+x]) -
				2*float64(g.Pix[row+g.Stride+x]) +
				float64(g.Pix[row+x])
			lap = append(lap, math.Abs(v))
		}
	}
	return stat.PopVariance(lap, nil)
}
