// Package render draws assembled curve levels as image artifacts. It is a
// thin collaborator of the curve assembler: it consumes per-level
// polylines and owns all I/O; the core stays pure.
//
// What:
//
//   - SVG writes a level as a vector image, one <polyline> per polyline.
//   - PNG rasterizes a level with golang.org/x/image/vector, stroking
//     every segment as a thin filled quad.
//   - WriteLevels emits one artifact per level per requested format,
//     named deterministically as {base}_{level}.{ext}.
//
// Viewport:
//
//   - Fixed square [-1,1]×[-1,1], equal aspect ratio, Y up. The assembler
//     guarantees the default-seed geometry stays inside it.
//
// Determinism:
//
//   - Polylines are drawn in the assembler's lexicographic node order, and
//     the optional color cycle walks a fixed palette, so repeated renders
//     of the same curve are byte-identical.
//
// Errors:
//
//   - ErrUnknownFormat for format names outside svg/png; file and encoding
//     errors are wrapped and returned, never swallowed.
package render
