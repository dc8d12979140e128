// Package pattern builds the motif library of the Steinhaus curve: the
// three pattern kinds (plain, connector-start, connector-end), each in the
// four quadrant orientations.
//
// What:
//
//   - Family is an immutable library of 3 kinds × 4 orientations, built
//     once from a user seed polyline and shared read-only afterwards.
//   - The plain kind doubles the seed by mirroring it about the
//     anti-diagonal x+y = 0 and appending the mirror image in reverse.
//   - The connector kinds are truncated variants used where adjacent
//     quadrants meet: connector-start mirrors the seed (minus its last
//     point) about x−y+1 = 0; connector-end is the connector-start motif
//     reflected about x+y = 0.
//
// Why:
//
//   - Every node of the curve recursion draws exactly one plain motif, or
//     a connector-start/connector-end pair at quadrant seams. Building the
//     twelve polylines once keeps level generation allocation-light.
//
// Errors:
//
//   - ErrTooFewPoints: the seed has fewer than 3 points.
//   - geom.ErrCoordinateMismatch: seed X and Y lengths differ.
//
// The three reflection axes are fixed domain constants of the Steinhaus
// family; changing them changes the fractal being generated.
package pattern
