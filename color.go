package chromamatte

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Candidate is one of the fixed chroma-key colors the selector scores.
type Candidate struct {
	Name  string
	Color color.NRGBA
}

// Candidates is the fixed set of chroma-key colors tried by
// SelectChromakey. The order is the tie-break order: when two candidates
// score float-equal, the earlier one wins.
var Candidates = [6]Candidate{
	{"green", color.NRGBA{R: 0, G: 255, B: 0, A: 255}},
	{"blue", color.NRGBA{R: 0, G: 0, B: 255, A: 255}},
	{"magenta", color.NRGBA{R: 255, G: 0, B: 255, A: 255}},
	{"cyan", color.NRGBA{R: 0, G: 255, B: 255, A: 255}},
	{"yellow", color.NRGBA{R: 255, G: 255, B: 0, A: 255}},
	{"red", color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
}

// Distance returns the Euclidean distance between two colors in RGB
// space, in [0, ~441.7]. Alpha does not contribute.
func Distance(a, b color.NRGBA) float64 {
	return dist(a.R, a.G, a.B, b.R, b.G, b.B)
}

func dist(r1, g1, b1, r2, g2, b2 uint8) float64 {
	dr := float64(r1) - float64(r2)
	dg := float64(g1) - float64(g2)
	db := float64(b1) - float64(b2)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func distToCentroid(r, g, b uint8, cr, cg, cb float64) float64 {
	dr := float64(r) - cr
	dg := float64(g) - cg
	db := float64(b) - cb
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Hex renders c as "#rrggbb" for logs and diagnostics.
func Hex(c color.NRGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}
