package render

import (
	"fmt"
	"io"

	"github.com/Gjacquenot/SierpinskiCurve/curve"
)

// WriteSVG writes lv as an SVG document to w. The viewport is the fixed
// [-1,1]² square; a scale(1,-1) group keeps Y pointing up as in the
// mathematical coordinate system of the assembler.
// Complexity: O(total point count of the level).
func WriteSVG(w io.Writer, lv *curve.Level, opts Options) error {
	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%g %g %g %g\">\n",
		viewMin, viewMin, viewMax-viewMin, viewMax-viewMin); err != nil {
		return fmt.Errorf("render: svg header: %w", err)
	}
	if _, err := fmt.Fprintf(w, "<g transform=\"scale(1,-1)\">\n"); err != nil {
		return fmt.Errorf("render: svg group: %w", err)
	}

	if opts.Grid {
		if err := svgGrid(w, opts); err != nil {
			return err
		}
	}

	for i, p := range lv.Polylines() {
		if _, err := fmt.Fprintf(w,
			"<polyline style=\"%s;stroke:%s;stroke-width:%g\" points=\"%s\"/>\n",
			strokeStyle, opts.strokeColor(i), opts.StrokeWidth, svgPoints(p.X, p.Y)); err != nil {
			return fmt.Errorf("render: svg polyline %d: %w", i, err)
		}
	}

	if _, err := fmt.Fprint(w, "</g>\n</svg>\n"); err != nil {
		return fmt.Errorf("render: svg footer: %w", err)
	}

	return nil
}

// svgGrid draws light lines every gridStep across the viewport.
func svgGrid(w io.Writer, opts Options) error {
	for v := viewMin; v <= viewMax; v += gridStep {
		if _, err := fmt.Fprintf(w,
			"<path style=\"%s;stroke:%s;stroke-width:%g\" d=\"M %g %g L %g %g M %g %g L %g %g\"/>\n",
			strokeStyle, gridColor, opts.StrokeWidth/2,
			v, viewMin, v, viewMax,
			viewMin, v, viewMax, v); err != nil {
			return fmt.Errorf("render: svg grid: %w", err)
		}
	}

	return nil
}

// svgPoints formats parallel coordinate slices as an SVG points attribute.
func svgPoints(xs, ys []float64) string {
	buf := make([]byte, 0, 16*len(xs))
	for i := range xs {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = fmt.Appendf(buf, "%g,%g", xs[i], ys[i])
	}

	return string(buf)
}
