package curve

import (
	"fmt"

	"github.com/Gjacquenot/SierpinskiCurve/geom"
	"github.com/Gjacquenot/SierpinskiCurve/pattern"
)

// Curve is the assembled recursion: the shared motif library plus every
// level from 1 to MaxLevel, built strictly in increasing order and kept
// for the lifetime of the value. Curve is immutable after New.
type Curve struct {
	family *pattern.Family
	levels []Level
}

// New validates the options eagerly, builds the motif library, and then
// assembles every level from 1 to opts.MaxLevel. Construction is
// all-or-nothing: no partially built level is ever observable.
//
// Errors:
//   - ErrBadLevel                — opts.MaxLevel < 1.
//   - pattern.ErrTooFewPoints    — seed shorter than 3 points.
//   - geom.ErrCoordinateMismatch — seed X/Y lengths differ.
//
// Complexity: O(4^MaxLevel · n) time and memory.
func New(opts Options) (*Curve, error) {
	if opts.MaxLevel < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadLevel, opts.MaxLevel)
	}
	family, err := pattern.New(opts.SeedX, opts.SeedY)
	if err != nil {
		return nil, err
	}

	c := &Curve{
		family: family,
		levels: make([]Level, 0, opts.MaxLevel),
	}

	// Level 1: the four root orientations, no parent digit, so all plain.
	root := Level{
		depth: 1,
		nodes: make([]Node, 0, 4),
		index: make(map[Address]int, 4),
	}
	for k := 1; k <= 4; k++ {
		nd, err := c.resolve(Address('0'+byte(k)), ClassPlain)
		if err != nil {
			return nil, err
		}
		root.index[nd.Addr] = len(root.nodes)
		root.nodes = append(root.nodes, nd)
	}
	c.levels = append(c.levels, root)

	for depth := 2; depth <= opts.MaxLevel; depth++ {
		next, err := c.expand(&c.levels[depth-2])
		if err != nil {
			return nil, err
		}
		c.levels = append(c.levels, next)
	}

	return c, nil
}

// expand derives the next level from prev: every address spawns exactly
// four children, visited in lexicographic parent order with digits 1..4,
// so the new level is lexicographically ordered by construction.
func (c *Curve) expand(prev *Level) (Level, error) {
	next := Level{
		depth: prev.depth + 1,
		nodes: make([]Node, 0, 4*len(prev.nodes)),
		index: make(map[Address]int, 4*len(prev.nodes)),
	}
	for _, parent := range prev.nodes {
		for k := 1; k <= 4; k++ {
			nd, err := c.resolve(parent.Addr.Child(k), parent.Class)
			if err != nil {
				return Level{}, err
			}
			next.index[nd.Addr] = len(next.nodes)
			next.nodes = append(next.nodes, nd)
		}
	}

	return next, nil
}

// resolve classifies the node at addr and materializes its geometry:
// motif(s) of the orientation named by the final digit, scaled by
// 1/2^(depth−1) and translated by the offset encoded in the address
// prefix.
func (c *Curve) resolve(addr Address, parentClass Class) (Node, error) {
	id := addr.LastDigit()
	parentID := addr.Prefix().LastDigit()
	class := Classify(id, parentID, parentClass)

	scale := Scale(addr.Depth())
	dx, dy := offsetFor(addr.Prefix())

	kinds := []pattern.Kind{pattern.Plain}
	if class == ClassConnector {
		kinds = []pattern.Kind{pattern.ConnectorStart, pattern.ConnectorEnd}
	}
	lines := make([]geom.Polyline, 0, len(kinds))
	for _, kind := range kinds {
		motif, err := c.family.Of(kind, id)
		if err != nil {
			return Node{}, err
		}
		lines = append(lines, motif.ScaleTranslate(scale, dx, dy))
	}

	return Node{Addr: addr, Class: class, Lines: lines}, nil
}

// MaxLevel returns the deepest level built by New.
func (c *Curve) MaxLevel() int { return len(c.levels) }

// Level returns the fully materialized level at depth n (1-based).
// Returns ErrBadLevel when n is outside 1..MaxLevel.
func (c *Curve) Level(n int) (*Level, error) {
	if n < 1 || n > len(c.levels) {
		return nil, fmt.Errorf("%w: got %d of %d", ErrBadLevel, n, len(c.levels))
	}

	return &c.levels[n-1], nil
}
