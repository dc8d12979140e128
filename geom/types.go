// Package geom defines core types and sentinel errors for the geometry
// layer of github.com/Gjacquenot/SierpinskiCurve.
package geom

import "errors"

// Sentinel errors for geometry operations.
var (
	// ErrCoordinateMismatch indicates X and Y slices of differing lengths.
	ErrCoordinateMismatch = errors.New("geom: x and y coordinate slices must have the same length")

	// ErrDegenerateLine indicates a reflection axis with a²+b² = 0,
	// which describes no line at all.
	ErrDegenerateLine = errors.New("geom: degenerate line, a²+b² must be non-zero")
)

// Polyline is an ordered sequence of 2D points stored as two parallel
// coordinate slices. Point i is (X[i], Y[i]). The order is geometrically
// meaningful: consecutive points are joined by line segments, and callers
// must never reorder points except through Reverse.
type Polyline struct {
	X []float64
	Y []float64
}

// NewPolyline builds a Polyline from two coordinate slices, deep-copying
// both to keep the result independent of the caller's storage.
// Returns ErrCoordinateMismatch if the slices differ in length.
// Complexity: O(n) time and memory.
func NewPolyline(xs, ys []float64) (Polyline, error) {
	if len(xs) != len(ys) {
		return Polyline{}, ErrCoordinateMismatch
	}
	p := Polyline{
		X: make([]float64, len(xs)),
		Y: make([]float64, len(ys)),
	}
	copy(p.X, xs)
	copy(p.Y, ys)

	return p, nil
}

// Len returns the number of points.
func (p Polyline) Len() int { return len(p.X) }

// At returns point i as an (x, y) pair.
func (p Polyline) At(i int) (x, y float64) { return p.X[i], p.Y[i] }

// Clone returns a deep copy of p.
// Complexity: O(n).
func (p Polyline) Clone() Polyline {
	q := Polyline{
		X: make([]float64, len(p.X)),
		Y: make([]float64, len(p.Y)),
	}
	copy(q.X, p.X)
	copy(q.Y, p.Y)

	return q
}

// Reverse returns a new Polyline with the point order reversed
// (last point first). This is the only sanctioned reordering.
// Complexity: O(n).
func (p Polyline) Reverse() Polyline {
	n := len(p.X)
	q := Polyline{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		q.X[i] = p.X[n-1-i]
		q.Y[i] = p.Y[n-1-i]
	}

	return q
}

// Truncate returns a new Polyline holding the first n points of p.
// n is clamped to [0, p.Len()].
// Complexity: O(n).
func (p Polyline) Truncate(n int) Polyline {
	if n < 0 {
		n = 0
	}
	if n > len(p.X) {
		n = len(p.X)
	}
	q := Polyline{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
	copy(q.X, p.X[:n])
	copy(q.Y, p.Y[:n])

	return q
}

// Concat returns a new Polyline holding the points of p followed by the
// points of q.
// Complexity: O(len(p)+len(q)).
func (p Polyline) Concat(q Polyline) Polyline {
	r := Polyline{
		X: make([]float64, 0, len(p.X)+len(q.X)),
		Y: make([]float64, 0, len(p.Y)+len(q.Y)),
	}
	r.X = append(append(r.X, p.X...), q.X...)
	r.Y = append(append(r.Y, p.Y...), q.Y...)

	return r
}

// ScaleTranslate maps every point pt of p to scale·pt + (dx, dy),
// returning a new Polyline. p is left untouched.
// Complexity: O(n).
func (p Polyline) ScaleTranslate(scale, dx, dy float64) Polyline {
	q := Polyline{
		X: make([]float64, len(p.X)),
		Y: make([]float64, len(p.Y)),
	}
	for i := range p.X {
		q.X[i] = scale*p.X[i] + dx
		q.Y[i] = scale*p.Y[i] + dy
	}

	return q
}

// Line is the implicit line a·x + b·y + c = 0. It is a pure parameter
// value: construction never validates, Reflect does.
type Line struct {
	A, B, C float64
}

// Degenerate reports whether the coefficients describe no line (a²+b² = 0).
func (l Line) Degenerate() bool {
	return l.A*l.A+l.B*l.B == 0
}
