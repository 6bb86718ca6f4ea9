package chromamatte

import (
	"fmt"
	"image"
	"slices"

	"gonum.org/v1/gonum/stat"
)

type SelectorOptions struct {
	// GridSize caps the sampling grid at GridSize x GridSize points.
	// Sampling uses a uniform stride, so the grid is deterministic for a
	// given image size. Zero or negative means the default (200).
	GridSize int
	// MinWeight, P10Weight and AvgWeight combine the distance statistics
	// into the composite score. The single closest subject pixel is the
	// real risk to matting quality, the 10th percentile stabilizes the
	// choice against one noisy sample, and the mean breaks remaining
	// ties. All three zero means the defaults (0.5 / 0.3 / 0.2).
	MinWeight float64
	P10Weight float64
	AvgWeight float64
}

func DefaultSelectorOptions() SelectorOptions {
	return SelectorOptions{
		GridSize:  200,
		MinWeight: 0.5,
		P10Weight: 0.3,
		AvgWeight: 0.2,
	}
}

// CandidateScore holds one candidate's distance statistics against the
// sampled subject pixels, and the composite score derived from them.
type CandidateScore struct {
	Candidate Candidate
	// Min is the closest any sampled subject pixel comes to the candidate.
	Min float64
	// P10 is the 10th percentile of the distance distribution.
	P10 float64
	// Avg is the mean distance over all samples.
	Avg float64
	// Score = MinWeight*Min + P10Weight*P10 + AvgWeight*Avg.
	Score float64
}

// ChromakeySelection is the selector result: the winning candidate plus
// the full per-candidate statistics for caller-side diagnostics.
type ChromakeySelection struct {
	Best    CandidateScore
	Scores  [6]CandidateScore
	Samples int
}

// SelectChromakey recommends a background color for a not-yet-generated
// image, given the current subject image: the candidate whose distance
// distribution against the sampled subject pixels scores highest. The
// samples are taken directly from source pixels (no downscale averaging)
// so Min reflects a real pixel of the subject.
func SelectChromakey(img image.Image, opt SelectorOptions) (ChromakeySelection, error) {
	if opt.GridSize <= 0 {
		opt.GridSize = 200
	}
	if opt.MinWeight == 0 && opt.P10Weight == 0 && opt.AvgWeight == 0 {
		opt.MinWeight, opt.P10Weight, opt.AvgWeight = 0.5, 0.3, 0.2
	}
	if opt.MinWeight < 0 || opt.P10Weight < 0 || opt.AvgWeight < 0 {
		return ChromakeySelection{}, fmt.Errorf("%w: negative score weight", ErrInvalidParameter)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return ChromakeySelection{}, fmt.Errorf("%w: empty subject image %dx%d", ErrInvalidImage, w, h)
	}

	stepX := (w + opt.GridSize - 1) / opt.GridSize
	stepY := (h + opt.GridSize - 1) / opt.GridSize
	samples := make([][3]uint8, 0, ((w+stepX-1)/stepX)*((h+stepY-1)/stepY))
	for y := 0; y < h; y += stepY {
		for x := 0; x < w; x += stepX {
			r, g, bl, _ := rgbaAt(img, b.Min.X+x, b.Min.Y+y)
			samples = append(samples, [3]uint8{r, g, bl})
		}
	}
	if len(samples) == 0 {
		return ChromakeySelection{}, fmt.Errorf("%w: no sampled pixels", ErrInvalidImage)
	}

	sel := ChromakeySelection{Samples: len(samples)}
	dists := make([]float64, len(samples))
	best := 0
	for i, cand := range Candidates {
		for j, s := range samples {
			dists[j] = dist(s[0], s[1], s[2], cand.Color.R, cand.Color.G, cand.Color.B)
		}
		slices.Sort(dists)
		cs := CandidateScore{
			Candidate: cand,
			Min:       dists[0],
			P10:       stat.Quantile(0.10, stat.Empirical, dists, nil),
			Avg:       stat.Mean(dists, nil),
		}
		cs.Score = opt.MinWeight*cs.Min + opt.P10Weight*cs.P10 + opt.AvgWeight*cs.Avg
		sel.Scores[i] = cs
		// Strict comparison keeps the earlier candidate on a tie.
		if cs.Score > sel.Scores[best].Score {
			best = i
		}
	}
	sel.Best = sel.Scores[best]
	return sel, nil
}
