package chromamatte

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b color.NRGBA
		want float64
	}{
		{
			name: "identical",
			a:    color.NRGBA{R: 0, G: 0, B: 255, A: 255},
			b:    color.NRGBA{R: 0, G: 0, B: 255, A: 255},
			want: 0,
		},
		{
			name: "black to white",
			a:    color.NRGBA{A: 255},
			b:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			want: math.Sqrt(3 * 255 * 255),
		},
		{
			name: "red to blue",
			a:    color.NRGBA{R: 255, A: 255},
			b:    color.NRGBA{B: 255, A: 255},
			want: math.Sqrt(2 * 255 * 255),
		},
		{
			name: "single axis",
			a:    color.NRGBA{B: 200, A: 255},
			b:    color.NRGBA{B: 255, A: 255},
			want: 55,
		},
		{
			name: "alpha ignored",
			a:    color.NRGBA{R: 10, G: 20, B: 30, A: 0},
			b:    color.NRGBA{R: 10, G: 20, B: 30, A: 255},
			want: 0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), 1e-9)
			assert.Equal(t, Distance(tt.a, tt.b), Distance(tt.b, tt.a))
		})
	}
}

func TestCandidatesOrder(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, len(Candidates))
	for _, c := range Candidates {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"green", "blue", "magenta", "cyan", "yellow", "red"}, names)
}

func TestHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#ff0000", Hex(color.NRGBA{R: 255, A: 255}))
	assert.Equal(t, "#00ff00", Hex(color.NRGBA{G: 255, A: 255}))
	assert.Equal(t, "#000000", Hex(color.NRGBA{A: 255}))
}
