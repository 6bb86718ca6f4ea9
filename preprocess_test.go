package chromamatte

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		w, h         int
		maxSize      int
		wantW, wantH int
	}{
		{"within bounds", 100, 80, 150, 100, 80},
		{"exactly at cap", 150, 150, 150, 150, 150},
		{"wide", 300, 100, 150, 150, 50},
		{"tall", 100, 300, 150, 50, 150},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			img := solidImage(tt.w, tt.h, color.NRGBA{G: 200, A: 255})
			out := NormalizeSize(img, tt.maxSize)
			assert.Equal(t, tt.wantW, out.Bounds().Dx())
			assert.Equal(t, tt.wantH, out.Bounds().Dy())
		})
	}
}

func TestNormalizeSizeNoCopyWhenSmall(t *testing.T) {
	t.Parallel()

	img := solidImage(10, 10, color.NRGBA{A: 255})
	assert.Same(t, img, NormalizeSize(img, 0), "small input passes through untouched")
}
