package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/Gjacquenot/SierpinskiCurve/curve"
)

// WritePNG rasterizes lv and encodes it as a PNG to w. Every polyline
// segment is stroked as a filled quad with round-ish joints approximated
// by overlapping quads; the background is white.
// Complexity: O(total point count · stroke area).
func WritePNG(w io.Writer, lv *curve.Level, opts Options) error {
	size := opts.Size
	if size <= 0 {
		size = DefaultOptions().Size
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	// Half stroke width in pixels; viewport units scale by size/2.
	half := opts.StrokeWidth * float64(size) / 4
	if half < 0.5 {
		half = 0.5
	}

	r := vector.NewRasterizer(size, size)

	if opts.Grid {
		gray := color.RGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}
		for v := viewMin; v <= viewMax; v += gridStep {
			x, _ := toPixel(v, 0, size)
			_, y := toPixel(0, v, size)
			strokeSegment(r, x, 0, x, float32(size), half/2)
			strokeSegment(r, 0, y, float32(size), y, half/2)
		}
		r.Draw(dst, dst.Bounds(), image.NewUniform(gray), image.Point{})
		r.Reset(size, size)
	}

	for i, p := range lv.Polylines() {
		for j := 1; j < p.Len(); j++ {
			x0, y0 := toPixel(p.X[j-1], p.Y[j-1], size)
			x1, y1 := toPixel(p.X[j], p.Y[j], size)
			strokeSegment(r, x0, y0, x1, y1, half)
		}
		r.Draw(dst, dst.Bounds(), image.NewUniform(opts.strokeRGBA(i)), image.Point{})
		r.Reset(size, size)
	}

	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("render: png encode: %w", err)
	}

	return nil
}

// toPixel maps viewport coordinates onto the raster, flipping Y so the
// mathematical Y axis points up.
func toPixel(x, y float64, size int) (float32, float32) {
	s := float64(size)

	return float32((x - viewMin) / (viewMax - viewMin) * s),
		float32((viewMax - y) / (viewMax - viewMin) * s)
}

// strokeSegment adds the filled quad covering the segment (x0,y0)-(x1,y1)
// with the given half width to the rasterizer's current path.
func strokeSegment(r *vector.Rasterizer, x0, y0, x1, y1 float32, half float64) {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	// Unit normal scaled to half width.
	nx := float32(-dy / n * half)
	ny := float32(dx / n * half)

	r.MoveTo(x0+nx, y0+ny)
	r.LineTo(x1+nx, y1+ny)
	r.LineTo(x1-nx, y1-ny)
	r.LineTo(x0-nx, y0-ny)
	r.ClosePath()
}
