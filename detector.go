package chromamatte

import (
	"fmt"
	"image"
	"image/color"
)

type DetectorOptions struct {
	// BorderPx is the thickness of the edge strips that are sampled.
	// The subject is assumed not to touch the image border; that
	// precondition is documented, not verified. Zero or negative means
	// the default (10).
	BorderPx int
	// Tolerance is the maximum distance from a cluster's running centroid
	// at which a border pixel still joins that cluster. Same units as
	// Distance. Negative is rejected; zero means exact-color clusters.
	Tolerance float64
	// MinConfidence is the dominant-cluster coverage below which the
	// detection is returned together with ErrLowConfidence. Zero means
	// the default (0.05).
	MinConfidence float64
}

func DefaultDetectorOptions() DetectorOptions {
	return DetectorOptions{
		BorderPx:      10,
		Tolerance:     30,
		MinConfidence: 0.05,
	}
}

// BackgroundDetection is the detector result.
type BackgroundDetection struct {
	// Color is the average color of the dominant border cluster.
	Color color.NRGBA
	// ClusterSize is the member count of the dominant cluster.
	ClusterSize int
	// BorderPixels is the total number of sampled border pixels.
	BorderPixels int
	// Confidence = ClusterSize / BorderPixels.
	Confidence float64
	// Clusters is how many clusters the border pixels formed.
	Clusters int
}

type colorCluster struct {
	sumR, sumG, sumB float64
	count            int
}

func (c *colorCluster) centroid() (float64, float64, float64) {
	n := float64(c.count)
	return c.sumR / n, c.sumG / n, c.sumB / n
}

func (c *colorCluster) add(r, g, b uint8) {
	c.sumR += float64(r)
	c.sumG += float64(g)
	c.sumB += float64(b)
	c.count++
}

// DetectBackground determines the true color of a near-solid background,
// robust to compression noise, by greedily clustering the pixels within
// BorderPx of the image edges.
//
// The clustering is single-pass and online: each border pixel joins the
// first cluster whose running centroid lies within Tolerance, otherwise
// it starts a new cluster. The result therefore depends on visitation
// order, which is pinned: top strip row-major over the full width, then
// bottom strip, then for each remaining row the left strip and the right
// strip. Corners are visited once.
func DetectBackground(img image.Image, opt DetectorOptions) (BackgroundDetection, error) {
	if opt.BorderPx <= 0 {
		opt.BorderPx = 10
	}
	if opt.MinConfidence == 0 {
		opt.MinConfidence = 0.05
	}
	if opt.Tolerance < 0 || opt.MinConfidence < 0 || opt.MinConfidence > 1 {
		return BackgroundDetection{}, fmt.Errorf("%w: tolerance=%v minConfidence=%v",
			ErrInvalidParameter, opt.Tolerance, opt.MinConfidence)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	bp := opt.BorderPx
	if w < 2*bp || h < 2*bp {
		return BackgroundDetection{}, fmt.Errorf("%w: %dx%d image cannot hold a %dpx border",
			ErrInvalidImage, w, h, bp)
	}

	var cls []colorCluster
	total := 0
	visit := func(x, y int) {
		r, g, bl, _ := rgbaAt(img, b.Min.X+x, b.Min.Y+y)
		total++
		for i := range cls {
			cr, cg, cb := cls[i].centroid()
			if distToCentroid(r, g, bl, cr, cg, cb) <= opt.Tolerance {
				cls[i].add(r, g, bl)
				return
			}
		}
		cls = append(cls, colorCluster{
			sumR: float64(r), sumG: float64(g), sumB: float64(bl), count: 1,
		})
	}

	for y := 0; y < bp; y++ {
		for x := 0; x < w; x++ {
			visit(x, y)
		}
	}
	for y := h - bp; y < h; y++ {
		for x := 0; x < w; x++ {
			visit(x, y)
		}
	}
	for y := bp; y < h-bp; y++ {
		for x := 0; x < bp; x++ {
			visit(x, y)
		}
		for x := w - bp; x < w; x++ {
			visit(x, y)
		}
	}

	// A formed-first cluster wins a size tie, matching visitation order.
	best := 0
	for i := range cls {
		if cls[i].count > cls[best].count {
			best = i
		}
	}
	cr, cg, cb := cls[best].centroid()
	det := BackgroundDetection{
		Color:        color.NRGBA{R: uint8(cr + 0.5), G: uint8(cg + 0.5), B: uint8(cb + 0.5), A: 255},
		ClusterSize:  cls[best].count,
		BorderPixels: total,
		Confidence:   float64(cls[best].count) / float64(total),
		Clusters:     len(cls),
	}
	if det.Confidence < opt.MinConfidence {
		return det, fmt.Errorf("%w: dominant cluster covers %.1f%% of %d border pixels",
			ErrLowConfidence, det.Confidence*100, det.BorderPixels)
	}
	return det, nil
}
