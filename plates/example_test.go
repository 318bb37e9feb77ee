package plates_test

import (
	"fmt"

	"github.com/orogenlab/orogen/builder"
	"github.com/orogenlab/orogen/mesh"
	"github.com/orogenlab/orogen/plates"
)

// ExampleGenerate partitions a 6×6 grid into three plates and verifies
// the totality guarantee: every site of a connected mesh gets claimed.
func ExampleGenerate() {
	m, _, err := builder.Grid(6, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, err := plates.Generate(m, 3, plates.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	claimed := 0
	for _, n := range p.PlateSizes() {
		claimed += n
	}
	fmt.Println("plates:", p.PlateCount())
	fmt.Println("claimed sites:", claimed)
	// Output:
	// plates: 3
	// claimed sites: 36
}

// ExampleWithOnClaim watches the flood fill claim sites as it runs.
func ExampleWithOnClaim() {
	m, _, err := builder.Grid(4, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	claims := 0
	_, err = plates.Generate(m, 2,
		plates.WithSeed(7),
		plates.WithOnClaim(func(mesh.SiteID, plates.PlateID) { claims++ }),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("claims observed:", claims)
	// Output:
	// claims observed: 16
}
