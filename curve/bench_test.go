package curve_test

import (
	"testing"

	"github.com/Gjacquenot/SierpinskiCurve/curve"
)

// BenchmarkNew_Depth6 measures full assembly at the reference depth used
// for the published renderings (4^6 = 4096 leaf nodes).
// Complexity: O(4^d · n)
func BenchmarkNew_Depth6(b *testing.B) {
	opts := curve.DefaultOptions()
	opts.MaxLevel = 6

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := curve.New(opts); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkLevelPolylines measures flattening the deepest level into
// drawing order.
func BenchmarkLevelPolylines(b *testing.B) {
	opts := curve.DefaultOptions()
	opts.MaxLevel = 6
	c, err := curve.New(opts)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	lv, err := c.Level(6)
	if err != nil {
		b.Fatalf("setup Level failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lv.Polylines()
	}
}
