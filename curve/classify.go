package curve

import "math"

// Classify decides how the child with digit id is drawn, given its
// parent's final digit (0 at the root) and the parent's own class.
//
// A child is a connector junction when either:
//
//	(a) id == 5 − parentID: the child sits diagonally opposite its
//	    parent's incoming digit, a seam between adjacent quadrants; or
//	(b) the parent is itself a connector and id == parentID: the seam
//	    continues straight through the child.
//
// Otherwise the child is plain. At the root parentID is 0, so neither
// rule can fire and level 1 is all plain.
//
// This rule is the contract that fixes the curve's topology; do not
// "simplify" it.
func Classify(id, parentID int, parentClass Class) Class {
	if id == 5-parentID || (parentClass == ClassConnector && id == parentID) {
		return ClassConnector
	}

	return ClassPlain
}

// Scale returns the motif scale at the given depth: 1/2^(depth−1).
// Exact in floating point (a pure power of two).
func Scale(depth int) float64 {
	return math.Ldexp(1, 1-depth)
}

// offsetFor accumulates the quadrant offset encoded by an address prefix.
// Digit i (zero-based) contributes ±1/2^(i+1) per axis: odd digits pull X
// negative, even digits positive; digits below 3 pull Y positive, 3 and 4
// negative. The prefix excludes the node's own digit, so a node's offset
// centers its parent's quadrant.
func offsetFor(prefix Address) (dx, dy float64) {
	for i := 0; i < len(prefix); i++ {
		w := math.Ldexp(1, -(i + 1))
		k := int(prefix[i] - '0')
		if k%2 == 1 {
			dx -= w
		} else {
			dx += w
		}
		if k < 3 {
			dy += w
		} else {
			dy -= w
		}
	}

	return dx, dy
}
