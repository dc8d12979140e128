// Package geom provides the 2D primitives underlying Steinhaus curve
// construction: ordered polylines, implicit lines, reflections, and the
// four-fold symmetry generator.
//
// What:
//
//   - Polyline wraps two equal-length coordinate slices (X, Y) whose order
//     defines the drawing order of line segments.
//   - Line is an implicit line a·x+b·y+c = 0, used only as a reflection axis.
//   - Reflect mirrors every point of a polyline across a line.
//   - FourOrientations derives the four symmetric variants of a motif
//     (identity, vertical mirror, horizontal mirror, 180° rotation).
//
// Why:
//
//   - Pattern construction doubles a seed polyline by mirroring it about a
//     fixed axis and appending the mirror image in reverse order.
//   - Every recursion node of the curve draws one of the four orientations.
//
// Complexity:
//
//   - Reflect:          O(n) time, O(n) memory (n = point count).
//   - FourOrientations: O(n) time, O(n) memory per orientation.
//
// Errors:
//
//   - ErrCoordinateMismatch: X and Y slices differ in length.
//   - ErrDegenerateLine: reflection axis has a² + b² = 0.
package geom
