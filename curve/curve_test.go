package curve_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/Gjacquenot/SierpinskiCurve/curve"
	"github.com/Gjacquenot/SierpinskiCurve/geom"
	"github.com/Gjacquenot/SierpinskiCurve/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_BadLevel verifies eager depth validation.
func TestNew_BadLevel(t *testing.T) {
	for _, depth := range []int{0, -1, -6} {
		opts := curve.DefaultOptions()
		opts.MaxLevel = depth
		_, err := curve.New(opts)
		assert.ErrorIs(t, err, curve.ErrBadLevel, "depth %d must be rejected", depth)
	}
}

// TestNew_BadSeed verifies that seed validation surfaces the pattern and
// geom sentinels before any level is built.
func TestNew_BadSeed(t *testing.T) {
	opts := curve.DefaultOptions()
	opts.SeedX = []float64{0, 1, 2}
	opts.SeedY = []float64{0, 1}
	_, err := curve.New(opts)
	assert.ErrorIs(t, err, geom.ErrCoordinateMismatch, "3 vs 2 seed coordinates")

	opts = curve.DefaultOptions()
	opts.SeedX = []float64{0, 1}
	opts.SeedY = []float64{0, 1}
	_, err = curve.New(opts)
	assert.ErrorIs(t, err, pattern.ErrTooFewPoints, "2-point seed")
}

// TestLevel1_FourPlainNodes checks the end-to-end depth-1 scenario: the
// default seed yields exactly four nodes, one per orientation, all plain,
// each a single plain-motif polyline at scale 1 with no offset.
func TestLevel1_FourPlainNodes(t *testing.T) {
	opts := curve.DefaultOptions()
	opts.MaxLevel = 1
	c, err := curve.New(opts)
	require.NoError(t, err)

	lv, err := c.Level(1)
	require.NoError(t, err)
	require.Equal(t, 4, lv.Len(), "level 1 has one node per root orientation")

	family := pattern.Default()
	for i, nd := range lv.Nodes() {
		assert.Equal(t, curve.Address('1'+byte(i)), nd.Addr, "addresses 1..4 in order")
		assert.Equal(t, curve.ClassPlain, nd.Class, "no connector possible at the root")
		require.Len(t, nd.Lines, 1, "plain node draws one polyline")

		want, err := family.Of(pattern.Plain, i+1)
		require.NoError(t, err)
		assert.Equal(t, want.X, nd.Lines[0].X, "orientation %d unscaled X", i+1)
		assert.Equal(t, want.Y, nd.Lines[0].Y, "orientation %d unscaled Y", i+1)
	}
}

// TestLevels_AddressTree verifies the quad-tree structure: level d holds
// exactly 4^d addresses, in lexicographic order, and every level-(d−1)
// address prefixes exactly four of them.
func TestLevels_AddressTree(t *testing.T) {
	opts := curve.DefaultOptions()
	opts.MaxLevel = 4
	c, err := curve.New(opts)
	require.NoError(t, err)

	for d := 1; d <= 4; d++ {
		lv, err := c.Level(d)
		require.NoError(t, err)

		want := 1
		for i := 0; i < d; i++ {
			want *= 4
		}
		assert.Equal(t, want, lv.Len(), "4^%d addresses at level %d", d, d)

		addrs := lv.Addresses()
		assert.True(t, sort.SliceIsSorted(addrs, func(i, j int) bool {
			return addrs[i] < addrs[j]
		}), "level %d is lexicographically ordered", d)

		if d == 1 {
			continue
		}
		prev, err := c.Level(d - 1)
		require.NoError(t, err)
		children := make(map[curve.Address]int, prev.Len())
		for _, a := range addrs {
			assert.Equal(t, d, a.Depth(), "address length equals depth")
			children[a.Prefix()]++
		}
		for _, pa := range prev.Addresses() {
			assert.Equal(t, 4, children[pa], "parent %s spawns exactly 4 children", pa)
		}
	}
}

// TestLevels_ConnectorGeometryShape verifies connector nodes carry exactly
// two polylines with the connector point count, and plain nodes one with
// the plain point count.
func TestLevels_ConnectorGeometryShape(t *testing.T) {
	opts := curve.DefaultOptions()
	opts.MaxLevel = 3
	c, err := curve.New(opts)
	require.NoError(t, err)

	family := pattern.Default()
	connectors := 0
	for d := 2; d <= 3; d++ {
		lv, err := c.Level(d)
		require.NoError(t, err)
		for _, nd := range lv.Nodes() {
			switch nd.Class {
			case curve.ClassConnector:
				connectors++
				require.Len(t, nd.Lines, 2, "connector %s draws start+end", nd.Addr)
				assert.Equal(t, family.PointCount(pattern.ConnectorStart), nd.Lines[0].Len())
				assert.Equal(t, family.PointCount(pattern.ConnectorEnd), nd.Lines[1].Len())
			default:
				require.Len(t, nd.Lines, 1, "plain %s draws one motif", nd.Addr)
				assert.Equal(t, family.PointCount(pattern.Plain), nd.Lines[0].Len())
			}
		}
	}
	assert.Positive(t, connectors, "levels ≥ 2 must contain seams")
}

// TestLevels_ClassificationMatchesRule re-derives every node's class from
// its address with the pure rule and compares.
func TestLevels_ClassificationMatchesRule(t *testing.T) {
	opts := curve.DefaultOptions()
	opts.MaxLevel = 4
	c, err := curve.New(opts)
	require.NoError(t, err)

	var classOf func(a curve.Address) curve.Class
	classOf = func(a curve.Address) curve.Class {
		if a.Depth() == 1 {
			return curve.Classify(a.LastDigit(), 0, curve.ClassPlain)
		}

		return curve.Classify(a.LastDigit(), a.Prefix().LastDigit(), classOf(a.Prefix()))
	}

	for d := 1; d <= 4; d++ {
		lv, err := c.Level(d)
		require.NoError(t, err)
		for _, nd := range lv.Nodes() {
			assert.Equal(t, classOf(nd.Addr), nd.Class, "node %s", nd.Addr)
		}
	}
}

// TestLevels_WithinViewport verifies every resolved coordinate of the
// default seed stays inside the fixed [-1,1]×[-1,1] viewport: the offset
// magnitude per axis is bounded by Σ 1/2^(i+1) and the scaled motif adds
// at most scale·max|coord|.
func TestLevels_WithinViewport(t *testing.T) {
	c, err := curve.New(curve.DefaultOptions())
	require.NoError(t, err)

	for d := 1; d <= c.MaxLevel(); d++ {
		lv, err := c.Level(d)
		require.NoError(t, err)
		for _, p := range lv.Polylines() {
			for i := range p.X {
				assert.GreaterOrEqual(t, p.X[i], -1.0, "level %d X", d)
				assert.LessOrEqual(t, p.X[i], 1.0, "level %d X", d)
				assert.GreaterOrEqual(t, p.Y[i], -1.0, "level %d Y", d)
				assert.LessOrEqual(t, p.Y[i], 1.0, "level %d Y", d)
			}
		}
	}
}

// TestNew_Idempotent verifies two assemblies of the same options are
// bit-identical.
func TestNew_Idempotent(t *testing.T) {
	opts := curve.DefaultOptions()
	opts.MaxLevel = 4

	a, err := curve.New(opts)
	require.NoError(t, err)
	b, err := curve.New(opts)
	require.NoError(t, err)

	for d := 1; d <= 4; d++ {
		la, err := a.Level(d)
		require.NoError(t, err)
		lb, err := b.Level(d)
		require.NoError(t, err)
		require.Equal(t, la.Len(), lb.Len(), "level %d size", d)

		pa, pb := la.Polylines(), lb.Polylines()
		require.Equal(t, len(pa), len(pb), "level %d polyline count", d)
		for i := range pa {
			assert.Equal(t, pa[i].X, pb[i].X, "level %d polyline %d X", d, i)
			assert.Equal(t, pa[i].Y, pb[i].Y, "level %d polyline %d Y", d, i)
		}
	}
}

// TestCurve_LevelBounds verifies out-of-range level access.
func TestCurve_LevelBounds(t *testing.T) {
	opts := curve.DefaultOptions()
	opts.MaxLevel = 2
	c, err := curve.New(opts)
	require.NoError(t, err)

	assert.Equal(t, 2, c.MaxLevel())
	for _, n := range []int{0, -1, 3} {
		_, err := c.Level(n)
		assert.ErrorIs(t, err, curve.ErrBadLevel, "level %d", n)
	}
}

// TestLevel_NodeLookup verifies address lookup on a built level.
func TestLevel_NodeLookup(t *testing.T) {
	opts := curve.DefaultOptions()
	opts.MaxLevel = 2
	c, err := curve.New(opts)
	require.NoError(t, err)

	lv, err := c.Level(2)
	require.NoError(t, err)

	nd, ok := lv.Node(curve.Address("14"))
	require.True(t, ok, "address 14 exists at level 2")
	assert.Equal(t, curve.ClassConnector, nd.Class, "digit 4 under parent 1 is the diagonal seam")
	assert.True(t, strings.HasPrefix(string(nd.Addr), "1"))

	_, ok = lv.Node(curve.Address("99"))
	assert.False(t, ok, "address 99 cannot exist")
}
