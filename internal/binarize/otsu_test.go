package binarize

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"rastervector/internal/binimg"
)

func bimodal(t *testing.T, dark, light uint8) *image.Gray {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			v := light
			if x < 4 {
				v = dark
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

func TestOtsuSeparatesBimodalImage(t *testing.T) {
	img := bimodal(t, 10, 200)
	threshold := Threshold(img)
	assert.Greater(t, threshold, uint8(10))
	assert.LessOrEqual(t, threshold, uint8(200))

	b := binimg.FromImage(img, threshold)
	assert.Equal(t, 32, b.Count(), "exactly the dark half is ink")
	assert.True(t, b.Get(0, 0))
	assert.False(t, b.Get(7, 7))
}

func TestOtsuEmptyHistogram(t *testing.T) {
	var hist [256]int
	assert.Equal(t, uint8(128), OtsuThreshold(hist))
}

func TestOtsuUniformImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 77
	}
	// A single-level histogram has no valid split; the cut must still
	// be deterministic and in range.
	threshold := Threshold(img)
	assert.LessOrEqual(t, threshold, uint8(78))
}

func TestHistogramCountsAllPixels(t *testing.T) {
	img := bimodal(t, 0, 255)
	hist := Histogram(img)
	assert.Equal(t, 32, hist[0])
	assert.Equal(t, 32, hist[255])
}
