package binimg

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutOfBoundsReadsAreBackground(t *testing.T) {
	b := New(3, 2)
	b.Set(0, 0, true)
	assert.False(t, b.Get(-1, 0))
	assert.False(t, b.Get(0, -1))
	assert.False(t, b.Get(3, 0))
	assert.False(t, b.Get(0, 2))
	assert.True(t, b.Get(0, 0))
}

func TestCloneIsIndependent(t *testing.T) {
	b := New(2, 2)
	b.Set(1, 1, true)
	c := b.Clone()
	c.Set(0, 0, true)
	assert.False(t, b.Get(0, 0))
	assert.True(t, c.Get(1, 1))
}

func TestInvert(t *testing.T) {
	b := New(2, 1)
	b.Set(0, 0, true)
	b.Invert()
	assert.False(t, b.Get(0, 0))
	assert.True(t, b.Get(1, 0))
}

func TestCount(t *testing.T) {
	b := New(4, 4)
	assert.Equal(t, 0, b.Count())
	b.Set(0, 0, true)
	b.Set(3, 3, true)
	assert.Equal(t, 2, b.Count())
}

func TestComponentsDiagonalTouchConnects(t *testing.T) {
	b := New(4, 4)
	b.Set(0, 0, true)
	b.Set(1, 1, true)
	assert.Equal(t, 1, b.Components(), "diagonal neighbors are 8-connected")

	b.Set(3, 3, true)
	assert.Equal(t, 2, b.Components())
}

func TestComponentsEmptyAndFull(t *testing.T) {
	assert.Equal(t, 0, New(5, 5).Components())

	full := New(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			full.Set(x, y, true)
		}
	}
	assert.Equal(t, 1, full.Components())
}

func TestFromImageThreshold(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{Y: 10})
	img.SetGray(1, 0, color.Gray{Y: 200})

	b := FromImage(img, 128)
	assert.True(t, b.Get(0, 0), "dark pixel is ink")
	assert.False(t, b.Get(1, 0), "light pixel is paper")
}

func TestFromImageNonZeroOrigin(t *testing.T) {
	img := image.NewGray(image.Rect(2, 3, 4, 5))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetGray(2, 3, color.Gray{Y: 0})

	b := FromImage(img, 128)
	require.Equal(t, 2, b.Width())
	require.Equal(t, 2, b.Height())
	assert.True(t, b.Get(0, 0))
	assert.False(t, b.Get(1, 1))
}

func TestGrayPolarity(t *testing.T) {
	b := New(2, 1)
	b.Set(0, 0, true)
	g := b.Gray()
	assert.Equal(t, uint8(0), g.GrayAt(0, 0).Y, "foreground renders as ink")
	assert.Equal(t, uint8(0xff), g.GrayAt(1, 0).Y, "background renders as paper")
}

func TestImagePaletted(t *testing.T) {
	b := New(2, 1)
	b.Set(1, 0, true)
	img := b.Image()
	assert.Equal(t, uint8(0), img.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(1), img.ColorIndexAt(1, 0))
	assert.Len(t, img.Palette, 2)
}
