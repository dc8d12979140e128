package pattern

import (
	"github.com/Gjacquenot/SierpinskiCurve/geom"
)

// New validates the seed coordinates and builds the full motif library.
//
// Construction, per motif kind (orientation 1):
//
//	plain           = seed ++ reverse(reflect(seed, x+y=0))
//	connector-start = head ++ reverse(reflect(head, x−y+1=0)),
//	                  head = seed minus its last point
//	connector-end   = reflect(connector-start, x+y=0)
//
// Each kind is then expanded to orientations 2..4 via
// geom.FourOrientations. The result is immutable.
//
// Errors:
//   - geom.ErrCoordinateMismatch — xs and ys differ in length.
//   - ErrTooFewPoints            — fewer than 3 seed points.
//
// Complexity: O(n) time and memory (n = seed point count).
func New(xs, ys []float64) (*Family, error) {
	seed, err := geom.NewPolyline(xs, ys)
	if err != nil {
		return nil, err
	}
	if seed.Len() < 3 {
		return nil, ErrTooFewPoints
	}

	f := &Family{}

	// Plain: double the seed about the anti-diagonal.
	mirror, err := geom.Reflect(plainAxis, seed)
	if err != nil {
		return nil, err
	}
	f.motifs[Plain] = geom.FourOrientations(seed.Concat(mirror.Reverse()))

	// Connector-start: same doubling, on the seed minus its last point,
	// about the start-junction axis.
	head := seed.Truncate(seed.Len() - 1)
	mirror, err = geom.Reflect(startAxis, head)
	if err != nil {
		return nil, err
	}
	start := head.Concat(mirror.Reverse())
	f.motifs[ConnectorStart] = geom.FourOrientations(start)

	// Connector-end: the start motif carried across the end-junction axis,
	// point order preserved.
	end, err := geom.Reflect(endAxis, start)
	if err != nil {
		return nil, err
	}
	f.motifs[ConnectorEnd] = geom.FourOrientations(end)

	return f, nil
}

// Default builds the Family of the classic Steinhaus seed. It cannot fail.
func Default() *Family {
	f, err := New(DefaultSeedX, DefaultSeedY)
	if err != nil {
		// The default seed is a package constant; reaching this is a bug.
		panic(err)
	}

	return f
}
