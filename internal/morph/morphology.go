// Topology-preserving raster morphology: thinning, erosion, dilation
// and spur pruning over binary images, driven by the 3x3 pattern tables
// in tables.go.
package morph

import (
	"fmt"

	"rastervector/internal/binimg"
)

// border selects which boundary pixels a deletion pass may touch. The
// Rosenfeld scheme removes north, south, east then west border pixels in
// separate sub-passes so that the two sides of a one-pixel-wide line can
// never die in the same pass.
type border int

const (
	borderNone border = iota
	borderNorth
	borderSouth
	borderEast
	borderWest
)

var rosenfeldOrder = [4]border{borderNorth, borderSouth, borderEast, borderWest}

// Morphology owns a working image and a scratch buffer of identical
// dimensions. Every pass classifies pixels against the committed image
// and writes into the scratch buffer, which is then committed whole;
// callers never observe a partially written pass.
type Morphology struct {
	image   *binimg.Bitmap
	thinned *binimg.Bitmap

	// MaxPasses bounds the number of committed passes per operation.
	// Zero means run to the fixed point.
	MaxPasses int
}

// New creates an engine over a private copy of img.
func New(img *binimg.Bitmap) *Morphology {
	return &Morphology{
		image:   img.Clone(),
		thinned: binimg.New(img.Width(), img.Height()),
	}
}

// Result returns a copy of the current image, never a live alias.
func (m *Morphology) Result() *binimg.Bitmap {
	return m.image.Clone()
}

// Rosenfeld thins the image to its skeleton: outer passes of four
// directional sub-passes apply the deletability table until a full outer
// pass removes nothing. Returns false if cancelled or if the image was
// already at its fixed point.
func (m *Morphology) Rosenfeld(obs ProgressObserver) bool {
	total := m.image.Count()
	changed := 0
	for pass := 0; m.MaxPasses == 0 || pass < m.MaxPasses; pass++ {
		inPass := 0
		for _, dir := range rosenfeldOrder {
			n := m.modifyImage(&isDeletable, false, dir)
			inPass += n
			changed += n
			if obs != nil {
				obs.Progress(changed, total)
				if obs.Cancelled() {
					return false
				}
			}
		}
		if inPass == 0 {
			break
		}
	}
	return changed > 0
}

// Erosion strips one deletable boundary layer per pass until nothing is
// left to erode.
func (m *Morphology) Erosion(obs ProgressObserver) bool {
	return m.runMorpholo(&isDeletable, false, obs)
}

// Dilation regrows boundary pixels by the inverse rule, filling
// concavities without merging separate components.
func (m *Morphology) Dilation(obs ProgressObserver) bool {
	return m.runMorpholo(&isInsertable, true, obs)
}

// Pruning removes spur endpoints left over by thinning, one pixel per
// endpoint per pass.
func (m *Morphology) Pruning(obs ProgressObserver) bool {
	return m.runMorpholo(&isPrunable, false, obs)
}

// runMorpholo is the shared driver: full passes of the given table until
// a pass changes nothing, the budget runs out, or the observer cancels.
// The result is true iff at least one pixel changed and the operation
// was not cancelled.
func (m *Morphology) runMorpholo(table *[256]bool, insert bool, obs ProgressObserver) bool {
	total := m.image.Count()
	if insert {
		total = m.image.Width()*m.image.Height() - total
	}
	changed := 0
	for pass := 0; m.MaxPasses == 0 || pass < m.MaxPasses; pass++ {
		n := m.modifyImage(table, insert, borderNone)
		changed += n
		if obs != nil {
			obs.Progress(changed, total)
			if obs.Cancelled() {
				return false
			}
		}
		if n == 0 {
			break
		}
	}
	return changed > 0
}

// modifyImage runs a single pass: every pixel is classified against the
// committed image and written into the scratch buffer, which is then
// committed by swapping the two. Returns the number of changed pixels.
func (m *Morphology) modifyImage(table *[256]bool, insert bool, dir border) int {
	w, h := m.image.Width(), m.image.Height()
	if m.thinned.Width() != w || m.thinned.Height() != h {
		panic(fmt.Sprintf("morph: buffer dimensions diverged (%dx%d vs %dx%d)",
			w, h, m.thinned.Width(), m.thinned.Height()))
	}
	changed := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := m.image.Get(x, y)
			nv := v
			switch {
			case insert && !v:
				if table[m.neighborhoodCode(x, y)] {
					nv = true
				}
			case !insert && v:
				if dir == borderNone || m.onBorder(x, y, dir) {
					if table[m.neighborhoodCode(x, y)] {
						nv = false
					}
				}
			}
			m.thinned.Set(x, y, nv)
			if nv != v {
				changed++
			}
		}
	}
	m.image, m.thinned = m.thinned, m.image
	return changed
}

// neighborhoodCode samples the 8 neighbors of (x, y) from the committed
// image in the fixed ring order shared with table construction.
// Out-of-bounds neighbors read as background.
func (m *Morphology) neighborhoodCode(x, y int) uint8 {
	var code uint
	for i, off := range offsets {
		if m.image.Get(x+off[0], y+off[1]) {
			code |= masks[i]
		}
	}
	return uint8(code)
}

// onBorder reports whether the 4-neighbor of (x, y) in the given
// direction is background, making the pixel part of that border.
func (m *Morphology) onBorder(x, y int, dir border) bool {
	switch dir {
	case borderNorth:
		return !m.image.Get(x, y-1)
	case borderSouth:
		return !m.image.Get(x, y+1)
	case borderEast:
		return !m.image.Get(x+1, y)
	case borderWest:
		return !m.image.Get(x-1, y)
	}
	return false
}
