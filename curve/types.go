// Package curve defines node addressing, classification, options, and
// sentinel errors for the Steinhaus curve assembler.
package curve

import (
	"errors"

	"github.com/Gjacquenot/SierpinskiCurve/geom"
	"github.com/Gjacquenot/SierpinskiCurve/pattern"
)

// Sentinel errors for curve assembly.
var (
	// ErrBadLevel indicates a recursion depth below 1, or a level request
	// outside the range built by New.
	ErrBadLevel = errors.New("curve: recursion level must be within 1..MaxLevel")
)

// Address identifies one node of the recursion: a string of digits
// '1'..'4' whose length is the node's depth. Children extend their parent
// address by one digit, so lexicographic order groups siblings together.
type Address string

// Depth returns the recursion depth encoded by the address (its length).
func (a Address) Depth() int { return len(a) }

// Child returns the address extended by digit k (1..4).
func (a Address) Child(k int) Address {
	return a + Address('0'+byte(k))
}

// LastDigit returns the final digit as an int, or 0 for the empty address.
func (a Address) LastDigit() int {
	if len(a) == 0 {
		return 0
	}

	return int(a[len(a)-1] - '0')
}

// Prefix returns the address minus its final digit (the parent address).
func (a Address) Prefix() Address {
	if len(a) == 0 {
		return a
	}

	return a[:len(a)-1]
}

// Class tags a node as a plain quadrant fill or a connector junction.
type Class int

const (
	// ClassPlain nodes draw exactly one plain motif.
	ClassPlain Class = iota
	// ClassConnector nodes sit on a seam between adjacent quadrants and
	// draw a connector-start and a connector-end motif, identically
	// scaled and translated.
	ClassConnector
)

// String implements fmt.Stringer for debug output.
func (c Class) String() string {
	if c == ClassConnector {
		return "connector"
	}

	return "plain"
}

// Node is one resolved recursion node: its address, its classification,
// and its geometry in final (scaled, translated) coordinates. Plain nodes
// hold one polyline; connector nodes hold two (start, then end).
type Node struct {
	Addr  Address
	Class Class
	Lines []geom.Polyline
}

// Level holds all nodes of one recursion depth in lexicographic address
// order. Levels are immutable once built.
type Level struct {
	depth int
	nodes []Node
	index map[Address]int
}

// Depth returns the recursion depth of the level (1-based).
func (lv *Level) Depth() int { return lv.depth }

// Len returns the number of nodes (4^depth).
func (lv *Level) Len() int { return len(lv.nodes) }

// Addresses returns the node addresses in lexicographic order.
// Complexity: O(4^depth).
func (lv *Level) Addresses() []Address {
	out := make([]Address, len(lv.nodes))
	for i, nd := range lv.nodes {
		out[i] = nd.Addr
	}

	return out
}

// Node returns the node at addr, reporting whether it exists.
func (lv *Level) Node(addr Address) (Node, bool) {
	i, ok := lv.index[addr]
	if !ok {
		return Node{}, false
	}

	return lv.nodes[i], true
}

// Nodes returns the level's nodes in lexicographic address order. The
// returned slice is shared; callers must treat it as read-only.
func (lv *Level) Nodes() []Node { return lv.nodes }

// Polylines flattens the level into drawing order: every node's polylines,
// nodes in lexicographic address order, connector-start before
// connector-end within a node.
// Complexity: O(4^depth).
func (lv *Level) Polylines() []geom.Polyline {
	out := make([]geom.Polyline, 0, len(lv.nodes))
	for _, nd := range lv.nodes {
		out = append(out, nd.Lines...)
	}

	return out
}

// Options configures curve assembly.
type Options struct {
	// MaxLevel is the deepest recursion level to build. Must be ≥ 1.
	// Every level 1..MaxLevel stays available after New.
	MaxLevel int

	// SeedX, SeedY are the seed polyline coordinates (≥ 3 points,
	// equal lengths).
	SeedX []float64
	SeedY []float64
}

// DefaultOptions returns Options with the classic Steinhaus seed and
// MaxLevel=6, the depth used for the reference renderings.
func DefaultOptions() Options {
	return Options{
		MaxLevel: 6,
		SeedX:    pattern.DefaultSeedX,
		SeedY:    pattern.DefaultSeedY,
	}
}
