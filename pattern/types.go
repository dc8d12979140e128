// Package pattern defines the motif kinds, the Family container, and
// sentinel errors for the pattern library of
// github.com/Gjacquenot/SierpinskiCurve.
package pattern

import (
	"errors"

	"github.com/Gjacquenot/SierpinskiCurve/geom"
)

// Sentinel errors for pattern construction.
var (
	// ErrTooFewPoints indicates a seed polyline with fewer than 3 points.
	ErrTooFewPoints = errors.New("pattern: seed must have at least 3 points")

	// ErrBadOrientation indicates an orientation outside 1..4.
	ErrBadOrientation = errors.New("pattern: orientation must be in 1..4")
)

// Kind selects one of the three motif kinds held by a Family.
type Kind int

const (
	// Plain is the self-contained quadrant fill drawn at ordinary nodes.
	Plain Kind = iota
	// ConnectorStart is the truncated motif drawn at the "start" side of a
	// seam between adjacent quadrants.
	ConnectorStart
	// ConnectorEnd is the truncated motif drawn at the "end" side of a seam.
	ConnectorEnd

	numKinds = 3
)

// String implements fmt.Stringer for debug output.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case ConnectorStart:
		return "connector-start"
	case ConnectorEnd:
		return "connector-end"
	default:
		return "unknown"
	}
}

// The fixed reflection axes of the Steinhaus family. These are domain
// constants, not configuration: together with the seed they define which
// plane-filling curve is generated.
var (
	// plainAxis doubles the seed about the anti-diagonal x+y = 0.
	plainAxis = geom.Line{A: -1, B: -1, C: 0}
	// startAxis mirrors the truncated seed about x−y+1 = 0.
	startAxis = geom.Line{A: 1, B: -1, C: 1}
	// endAxis maps the connector-start motif onto the connector-end motif
	// about x+y = 0.
	endAxis = geom.Line{A: 1, B: 1, C: 0}
)

// Default seed pattern (the classic Steinhaus top-left motif).
var (
	DefaultSeedX = []float64{-0.5, -0.5, -0.75}
	DefaultSeedY = []float64{0.0, 0.25, 0.5}
)

// Family holds the three motif kinds in all four orientations. It is
// immutable once built and safe to share across all recursion levels.
type Family struct {
	motifs [numKinds][4]geom.Polyline
}

// Of returns the motif of kind k in orientation orient (1..4).
// The returned polyline is a deep copy, so callers cannot corrupt the
// library. Returns ErrBadOrientation for orientations outside 1..4.
// Complexity: O(n) for the copy.
func (f *Family) Of(k Kind, orient int) (geom.Polyline, error) {
	if orient < 1 || orient > 4 {
		return geom.Polyline{}, ErrBadOrientation
	}

	return f.motifs[k][orient-1].Clone(), nil
}

// PointCount returns the number of points of kind k (identical across the
// four orientations).
func (f *Family) PointCount(k Kind) int {
	return f.motifs[k][0].Len()
}
