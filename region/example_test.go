package region_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/orogenlab/orogen/geom"
	"github.com/orogenlab/orogen/mesh"
	"github.com/orogenlab/orogen/region"
)

// ExamplePolygon reconstructs the cell of a site in the world corner.
// Its two visible edges leave a gap on the border, closed by inserting
// the rectangle corner (0,0).
func ExamplePolygon() {
	// Build a 2×2 world with a site in the lower-left cell and its two
	// neighbors, separated by the borders x=1 and y=1.
	m := mesh.New()
	a := m.AddSite(mgl64.Vec2{0.5, 0.5})
	b := m.AddSite(mgl64.Vec2{1.5, 0.5})
	c := m.AddSite(mgl64.Vec2{0.5, 1.5})
	v10 := m.AddVertex(mgl64.Vec2{1, 0})
	v11 := m.AddVertex(mgl64.Vec2{1, 1})
	v01 := m.AddVertex(mgl64.Vec2{0, 1})
	m.AddEdge(mesh.Edge{
		Sites:    [2]mesh.SiteID{a, b},
		Vertices: [2]mesh.VertexID{v10, v11},
		Clipped:  [2]mgl64.Vec2{{1, 0}, {1, 1}},
		Visible:  true,
	})
	m.AddEdge(mesh.Edge{
		Sites:    [2]mesh.SiteID{a, c},
		Vertices: [2]mesh.VertexID{v01, v11},
		Clipped:  [2]mgl64.Vec2{{0, 1}, {1, 1}},
		Visible:  true,
	})

	pts, err := region.Polygon(m, a, geom.NewRect(0, 0, 2, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Counter-clockwise, with the inserted corner last.
	fmt.Println(pts)
	// Output:
	// [[1 0] [1 1] [0 1] [0 0]]
}
