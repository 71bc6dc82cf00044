// Global Otsu thresholding for grayscale scans
package binarize

import (
	"image"
	"image/color"
)

// Histogram builds the 256-bin luminance histogram of an image.
func Histogram(img image.Image) [256]int {
	var hist [256]int
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			hist[g.Y]++
		}
	}
	return hist
}

// OtsuThreshold finds the luminance cut that maximizes between-class
// variance over the histogram. The returned threshold separates ink
// (below) from paper (at or above).
func OtsuThreshold(hist [256]int) uint8 {
	total := 0
	sum := 0.0
	for i, n := range hist {
		total += n
		sum += float64(i) * float64(n)
	}
	if total == 0 {
		return 128
	}

	var (
		sumB        float64
		wB          int
		maxVariance float64
		best        uint8
	)
	for t := 0; t < 256; t++ {
		wB += hist[t]
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / float64(wB)
		mF := (sum - sumB) / float64(wF)
		variance := float64(wB) * float64(wF) * (mB - mF) * (mB - mF)
		if variance > maxVariance {
			maxVariance = variance
			best = uint8(t)
		}
	}
	// Level best belongs to the dark class; the exclusive cut used by
	// the bitmap conversion sits one level up.
	if best < 255 {
		best++
	}
	return best
}

// Threshold runs Otsu over the image and returns the chosen cut.
func Threshold(img image.Image) uint8 {
	hist := Histogram(img)
	return OtsuThreshold(hist)
}
