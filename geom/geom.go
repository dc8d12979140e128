package geom

// Reflect mirrors every point of p across the line l and returns the
// images in the original point order.
//
// For a point q, the foot of the perpendicular onto a·x+b·y+c = 0 is
//
//	f = ( (b²·qx − a·b·qy − a·c) / (a²+b²),
//	      (−a·b·qx + a²·qy − b·c) / (a²+b²) )
//
// and the mirror image is 2·f − q.
//
// Returns ErrDegenerateLine when a²+b² = 0. Pure: p is never modified.
// Complexity: O(n) time and memory.
func Reflect(l Line, p Polyline) (Polyline, error) {
	if l.Degenerate() {
		return Polyline{}, ErrDegenerateLine
	}
	den := 1.0 / (l.A*l.A + l.B*l.B)
	q := Polyline{
		X: make([]float64, len(p.X)),
		Y: make([]float64, len(p.Y)),
	}
	for i := range p.X {
		x, y := p.X[i], p.Y[i]
		fx := den * (l.B*l.B*x - l.A*l.B*y - l.A*l.C)
		fy := den * (-l.A*l.B*x + l.A*l.A*y - l.B*l.C)
		q.X[i] = 2*fx - x
		q.Y[i] = 2*fy - y
	}

	return q, nil
}

// FourOrientations derives the four symmetric variants of a motif.
// Index 0 holds the seed itself (orientation 1); the remaining three are
// built from the reversed seed:
//
//	orientation 2: X negated         (vertical mirror)
//	orientation 3: Y negated         (horizontal mirror)
//	orientation 4: both negated      (180° rotation)
//
// All four variants have the same point count as the seed.
// Complexity: O(n) per orientation.
func FourOrientations(seed Polyline) [4]Polyline {
	rev := seed.Reverse()
	var out [4]Polyline
	out[0] = seed.Clone()
	out[1] = negate(rev, true, false)
	out[2] = negate(rev, false, true)
	out[3] = negate(rev, true, true)

	return out
}

// negate returns a copy of p with the selected axes sign-flipped.
func negate(p Polyline, flipX, flipY bool) Polyline {
	q := p.Clone()
	if flipX {
		for i := range q.X {
			q.X[i] = -q.X[i]
		}
	}
	if flipY {
		for i := range q.Y {
			q.Y[i] = -q.Y[i]
		}
	}

	return q
}
