// Skeleton-to-vector conversion: centerline tracing via gotrace and a
// plain segment overlay writer for inspection.
package vectorize

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/gotranspile/gotrace"

	"rastervector/internal/binimg"
)

// TraceSVG traces the bitmap's foreground into smooth vector paths and
// writes them as an SVG document.
func TraceSVG(w io.Writer, b *binimg.Bitmap) error {
	bm := gotrace.BitmapFromGray(b.Gray(), nil)
	paths, err := gotrace.Trace(bm, nil)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	if err := gotrace.Render("svg", nil, w, paths, b.Width(), b.Height()); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}
	return nil
}

// Segment is a unit stroke between two 8-adjacent skeleton pixels.
type Segment struct {
	X1, Y1, X2, Y2 int
}

// Segments extracts the unit strokes of a thinned bitmap. Each adjacent
// pixel pair is reported once, scanning only the east, south-east, south
// and south-west directions.
func Segments(b *binimg.Bitmap) []Segment {
	forward := [4][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}}
	var segs []Segment
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if !b.Get(x, y) {
				continue
			}
			for _, d := range forward {
				if b.Get(x+d[0], y+d[1]) {
					segs = append(segs, Segment{x, y, x + d[0], y + d[1]})
				}
			}
		}
	}
	return segs
}

// OverlayStyle controls the stroke of the segment overlay.
type OverlayStyle struct {
	Stroke      string
	StrokeWidth int
}

// WriteOverlay draws the skeleton's unit strokes as SVG lines, isolated
// pixels as dots. Useful for eyeballing a thinning result at scale.
func WriteOverlay(w io.Writer, b *binimg.Bitmap, style OverlayStyle) error {
	if style.Stroke == "" {
		style.Stroke = "black"
	}
	if style.StrokeWidth <= 0 {
		style.StrokeWidth = 1
	}
	lineStyle := fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-linecap:round",
		style.Stroke, style.StrokeWidth)

	canvas := svg.New(w)
	canvas.Start(b.Width(), b.Height())
	connected := make(map[[2]int]bool)
	for _, s := range Segments(b) {
		connected[[2]int{s.X1, s.Y1}] = true
		connected[[2]int{s.X2, s.Y2}] = true
		canvas.Line(s.X1, s.Y1, s.X2, s.Y2, lineStyle)
	}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Get(x, y) && !connected[[2]int{x, y}] {
				canvas.Circle(x, y, style.StrokeWidth, "fill:"+style.Stroke)
			}
		}
	}
	canvas.End()
	return nil
}
