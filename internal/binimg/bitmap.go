// Binary image representation shared by the morphology engine and the tracer
package binimg

import (
	"fmt"
	"image"
	"image/color"
)

// Bitmap is a dense black/white pixel grid. Foreground pixels are true.
// Reads outside the bounds return background, which is what the
// neighborhood classification in the morphology engine relies on.
type Bitmap struct {
	w, h int
	pix  []bool
}

// New creates an all-background bitmap of the given dimensions.
func New(w, h int) *Bitmap {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("binimg: invalid dimensions %dx%d", w, h))
	}
	return &Bitmap{w: w, h: h, pix: make([]bool, w*h)}
}

// FromImage converts any image to a bitmap. Pixels with luminance below
// threshold become foreground: scanned line work is dark ink on a light
// background.
func FromImage(img image.Image, threshold uint8) *Bitmap {
	bounds := img.Bounds()
	b := New(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if g.Y < threshold {
				b.pix[(y-bounds.Min.Y)*b.w+(x-bounds.Min.X)] = true
			}
		}
	}
	return b
}

func (b *Bitmap) Width() int  { return b.w }
func (b *Bitmap) Height() int { return b.h }

// Get returns the pixel at (x, y); out-of-bounds coordinates read as
// background.
func (b *Bitmap) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return false
	}
	return b.pix[y*b.w+x]
}

// Set writes the pixel at (x, y). Out-of-bounds writes are a programming
// error.
func (b *Bitmap) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		panic(fmt.Sprintf("binimg: Set(%d, %d) outside %dx%d", x, y, b.w, b.h))
	}
	b.pix[y*b.w+x] = v
}

// Clone returns an independent copy.
func (b *Bitmap) Clone() *Bitmap {
	c := &Bitmap{w: b.w, h: b.h, pix: make([]bool, len(b.pix))}
	copy(c.pix, b.pix)
	return c
}

// Invert flips every pixel in place.
func (b *Bitmap) Invert() {
	for i := range b.pix {
		b.pix[i] = !b.pix[i]
	}
}

// Gray renders the bitmap as a grayscale mask, foreground black on a
// white background. This is the polarity the tracer expects.
func (b *Bitmap) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.w, b.h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if b.pix[y*b.w+x] {
				img.Pix[y*img.Stride+x] = 0
			}
		}
	}
	return img
}

var palette = color.Palette{color.White, color.Black}

// Image returns a two-color paletted view suitable for encoding; PNG
// encoders write two-entry palettes as 1-bit images.
func (b *Bitmap) Image() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, b.w, b.h), palette)
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if b.pix[y*b.w+x] {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}
