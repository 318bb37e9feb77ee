package elevation_test

import (
	"fmt"

	"github.com/orogenlab/orogen/builder"
	"github.com/orogenlab/orogen/elevation"
	"github.com/orogenlab/orogen/mesh"
)

// ExamplePropagate runs deterministic blob-mode propagation along a path
// of five cells: each hop halves the elevation of the one before.
func ExamplePropagate() {
	m, _, err := builder.Grid(1, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	f := elevation.NewField(m.SiteCount())
	err = elevation.Propagate(m, f, map[mesh.SiteID]float64{0: 1.0},
		elevation.WithDecay(0.5), elevation.WithCutoff(0.001))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for s := mesh.SiteID(0); int(s) < m.SiteCount(); s++ {
		fmt.Printf("%.4f\n", f.Elevation(s))
	}
	// Output:
	// 1.0000
	// 0.5000
	// 0.2500
	// 0.1250
	// 0.0625
}
