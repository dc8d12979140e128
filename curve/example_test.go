package curve_test

import (
	"fmt"

	"github.com/Gjacquenot/SierpinskiCurve/curve"
)

// ExampleNew assembles two levels of the classic Steinhaus curve and
// reports the structure of each.
//
// Scenario:
//
//   - Level 1: the four root orientations, necessarily all plain.
//   - Level 2: sixteen children; the diagonal seams (addresses 14, 23,
//     32, 41) become connector junctions drawing two motifs each.
func ExampleNew() {
	opts := curve.DefaultOptions()
	opts.MaxLevel = 2

	c, err := curve.New(opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for d := 1; d <= c.MaxLevel(); d++ {
		lv, _ := c.Level(d)
		connectors := []curve.Address{}
		for _, nd := range lv.Nodes() {
			if nd.Class == curve.ClassConnector {
				connectors = append(connectors, nd.Addr)
			}
		}
		fmt.Printf("level %d: %d nodes, %d polylines, connectors: %v\n",
			d, lv.Len(), len(lv.Polylines()), connectors)
	}

	// Output:
	// level 1: 4 nodes, 4 polylines, connectors: []
	// level 2: 16 nodes, 20 polylines, connectors: [14 23 32 41]
}

// ExampleScale shows the per-level motif scale, which halves each depth.
func ExampleScale() {
	for d := 1; d <= 6; d++ {
		fmt.Printf("depth %d: %g\n", d, curve.Scale(d))
	}

	// Output:
	// depth 1: 1
	// depth 2: 0.5
	// depth 3: 0.25
	// depth 4: 0.125
	// depth 5: 0.0625
	// depth 6: 0.03125
}
