// Package sierpinskicurve generates Sierpiński–Peano/Steinhaus-type
// plane-filling curves from a user-supplied seed pattern and renders each
// recursion level as a line drawing.
//
// 🚀 What is SierpinskiCurve?
//
//	A small, deterministic library that shows how a line (dimension 1)
//	can literally fill the plane (dimension 2):
//		• Geometry: polylines, reflections across arbitrary lines, and the
//		  four-fold symmetry generator
//		• Pattern library: plain and connector motifs in four orientations,
//		  built once from the seed
//		• Assembler: quad-tree recursion over digit-string addresses with a
//		  pure seam-classification rule, halving scale per level
//		• Renderer: SVG and PNG artifacts, one per level, inside the fixed
//		  [-1,1]×[-1,1] viewport
//
// Everything is organized under four subpackages plus a command:
//
//	geom/          — polylines, implicit lines, reflection, symmetries
//	pattern/       — the motif library (plain, connector-start, connector-end)
//	curve/         — node addressing, classification, level assembly
//	render/        — SVG/PNG output of assembled levels
//	cmd/steinhaus/ — the command-line generator
//
// Quick start:
//
//	c, err := curve.New(curve.DefaultOptions())
//	if err != nil { ... }
//	lv, _ := c.Level(6)
//	render.WriteSVG(w, lv, render.DefaultOptions())
//
// Reference renderings of levels 1–6 are published on Wikimedia Commons as
// "Peano Curve Steinhaus". See
// http://mathworld.wolfram.com/SierpinskiCurve.html for background.
package sierpinskicurve
