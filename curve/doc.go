// Package curve assembles Steinhaus plane-filling curves: it expands a
// motif library level by level over a quad-tree-like recursion and resolves
// every node to scaled, translated polylines ready for rendering.
//
// What:
//
//   - Every node is identified by an Address, a string of digits 1..4 whose
//     length equals the node's recursion depth.
//   - Level n is derived entirely from level n−1: each address spawns four
//     children, one per digit. Level 1 is seeded from the four orientations
//     of the pattern library.
//   - A pure classification rule decides whether a node draws one plain
//     motif or a connector-start/connector-end pair (a quadrant seam).
//   - Scale halves per depth (1/2^(d−1)); the offset is accumulated from
//     the address digits, each selecting one of four sub-quadrants.
//
// Why:
//
//   - The classic Sierpiński–Peano/Steinhaus construction shows a
//     1-dimensional line filling the plane; each level is a closer
//     approximation and must remain available for rendering.
//
// Determinism:
//
//   - Levels store nodes in lexicographic address order, so iteration,
//     rendering order, and any color cycling are reproducible.
//   - Generation is pure: identical seed and depth yield identical output.
//
// Complexity:
//
//   - Build: O(4^d · n) time and memory for depth d and seed size n.
//
// Errors:
//
//   - ErrBadLevel: requested depth < 1, or a level outside 1..MaxLevel.
//   - pattern.ErrTooFewPoints / geom.ErrCoordinateMismatch: invalid seed,
//     surfaced from the pattern library before any level is built.
package curve
