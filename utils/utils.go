package utils

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"math"
	"os"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

type weightedColor struct {
	Col    colorful.Color
	Weight float64
}

// ExtractPalette summarizes the subject's k most representative colors.
// The kmeans method skips fully transparent pixels, so it works on
// matted output as well as on raw subject images.
func ExtractPalette(img image.Image, k int, method PaletteMethod) []colorful.Color {
	switch method {
	case PaletteMethodKMeans:
		p := ExtractKMeansPalette(img, k)
		if len(p) != 0 {
			return p
		}
		slog.Warn("palette: kmeans returned empty palette, falling back to dominantcolor")
		return ExtractDominantPalette(img, k)
	default:
		return ExtractDominantPalette(img, k)
	}
}

func ExtractDominantPalette(img image.Image, k int) []colorful.Color {
	if k <= 0 {
		return nil
	}

	nCandidates := max(24, k*8)
	candidates := dominantcolor.FindWeight(img, nCandidates)
	if len(candidates) == 0 {
		// Last resort: avoid an empty palette breaking downstream checks.
		candidates = append(candidates, dominantcolor.Color{
			RGBA:   color.RGBA{R: 128, G: 128, B: 128, A: 255},
			Weight: 1.0,
		})
	}

	weighted := make([]weightedColor, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		w := c.Weight
		if w <= 0 {
			w = 1e-6
		}
		weighted = append(weighted, weightedColor{Col: col.Clamped(), Weight: w})
	}
	return selectDiverseColors(weighted, k)
}

func ExtractKMeansPalette(img image.Image, k int) []colorful.Color {
	if k <= 0 {
		return nil
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	// Subsample to keep kmeans tractable on large images.
	maxSamples := 12000
	step := 1
	if width*height > maxSamples {
		step = int(math.Sqrt(float64(width*height)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0,
				float64(g16) / 65535.0,
				float64(b16) / 65535.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}

	workK := min(max(k*4, k+2), len(dataset))
	if workK <= 0 {
		return nil
	}
	km := kmeans.New()
	cc, err := km.Partition(dataset, workK)
	if err != nil || len(cc) == 0 {
		return nil
	}

	// Sort by cluster population so dominant colors come first.
	slices.SortFunc(cc, func(a, b clusters.Cluster) int {
		na := len(a.Observations)
		nb := len(b.Observations)
		if na > nb {
			return -1
		}
		if na < nb {
			return 1
		}
		return 0
	})

	weighted := make([]weightedColor, 0, len(cc))
	for _, c := range cc {
		center := c.Center
		if len(center) < 3 {
			continue
		}
		col := colorful.Color{
			R: center[0],
			G: center[1],
			B: center[2],
		}.Clamped()
		w := float64(len(c.Observations))
		if w <= 0 {
			w = 1e-6
		}
		weighted = append(weighted, weightedColor{Col: col, Weight: w})
	}
	return selectDiverseColors(weighted, k)
}

// selectDiverseColors picks k colors that stay close to the dominant
// tones while spreading out in Lab space, so a near-duplicate of an
// already picked color never displaces a genuinely different one.
func selectDiverseColors(cands []weightedColor, k int) []colorful.Color {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	type item struct {
		col colorful.Color
		lab [3]float64
		w   float64
	}
	items := make([]item, 0, len(cands))
	maxW := 0.0
	for _, c := range cands {
		col := c.Col.Clamped()
		l, a, b := col.Lab()
		w := c.Weight
		if w <= 0 {
			w = 1e-6
		}
		if w > maxW {
			maxW = w
		}
		items = append(items, item{
			col: col,
			lab: [3]float64{l, a, b},
			w:   w,
		})
	}
	if k > len(items) {
		k = len(items)
	}
	if maxW <= 0 {
		maxW = 1.0
	}

	selectedIdx := make([]int, 0, k)
	selected := make([]bool, len(items))

	// Seed with the strongest color to stay close to dominant tones.
	bestSeed := 0
	bestSeedW := items[0].w
	for i := 1; i < len(items); i++ {
		if items[i].w > bestSeedW {
			bestSeedW = items[i].w
			bestSeed = i
		}
	}
	selectedIdx = append(selectedIdx, bestSeed)
	selected[bestSeed] = true

	for len(selectedIdx) < k {
		bestIdx := -1
		bestScore := -1.0
		for i := range items {
			if selected[i] {
				continue
			}
			minD2 := math.MaxFloat64
			for _, s := range selectedIdx {
				d0 := items[i].lab[0] - items[s].lab[0]
				d1 := items[i].lab[1] - items[s].lab[1]
				d2 := items[i].lab[2] - items[s].lab[2]
				d2v := d0*d0 + d1*d1 + d2*d2
				if d2v < minD2 {
					minD2 = d2v
				}
			}
			normW := items[i].w / maxW
			score := math.Sqrt(minD2) * (0.55 + 0.45*math.Sqrt(normW))
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			break
		}
		selected[bestIdx] = true
		selectedIdx = append(selectedIdx, bestIdx)
	}

	out := make([]colorful.Color, 0, len(selectedIdx))
	for _, idx := range selectedIdx {
		out = append(out, items[idx].col)
	}
	return out
}

// ApplyMatte writes the alpha mask into a copy of img. The mask must be
// the same size as img; RGB channels are carried over untouched.
func ApplyMatte(img image.Image, mask *image.Alpha) (*image.NRGBA, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	mb := mask.Bounds()
	if mb.Dx() != w || mb.Dy() != h {
		return nil, fmt.Errorf("mask size %dx%d does not match image %dx%d",
			mb.Dx(), mb.Dy(), w, h)
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	for y := 0; y < h; y++ {
		row := y * out.Stride
		maskRow := y * mask.Stride
		for x := 0; x < w; x++ {
			out.Pix[row+x*4+3] = mask.Pix[maskRow+x]
		}
	}
	return out, nil
}

func ReadImage(path string) image.Image {
	file, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		panic(err)
	}
	return img
}

func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
