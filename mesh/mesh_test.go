package mesh_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/orogenlab/orogen/mesh"
)

// twoCells builds the smallest meaningful mesh: two sites separated by one
// bounded edge.
//
//	a (1,2) | b (3,2)    edge x=2 from (2,0) to (2,4)
func twoCells(t *testing.T) (*mesh.Mesh, mesh.SiteID, mesh.SiteID, mesh.EdgeID) {
	t.Helper()
	m := mesh.New()
	a := m.AddSite(mgl64.Vec2{1, 2})
	b := m.AddSite(mgl64.Vec2{3, 2})
	v0 := m.AddVertex(mgl64.Vec2{2, 0})
	v1 := m.AddVertex(mgl64.Vec2{2, 4})
	e, err := m.AddEdge(mesh.Edge{
		Sites:    [2]mesh.SiteID{a, b},
		Vertices: [2]mesh.VertexID{v0, v1},
		Clipped:  [2]mgl64.Vec2{{2, 0}, {2, 4}},
		Visible:  true,
	})
	require.NoError(t, err)
	return m, a, b, e
}

func TestAddEdge_RegistersBothFlanks(t *testing.T) {
	m, a, b, e := twoCells(t)

	na, err := m.Neighbors(a)
	require.NoError(t, err)
	require.Equal(t, []mesh.SiteID{b}, na)

	nb, err := m.Neighbors(b)
	require.NoError(t, err)
	require.Equal(t, []mesh.SiteID{a}, nb)

	got, err := m.NeighborEdge(a, b)
	require.NoError(t, err)
	require.Equal(t, e, got)

	// lookup is symmetric
	got, err = m.NeighborEdge(b, a)
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestAddEdge_Validation(t *testing.T) {
	m := mesh.New()
	a := m.AddSite(mgl64.Vec2{0, 0})

	_, err := m.AddEdge(mesh.Edge{Sites: [2]mesh.SiteID{a, a}})
	require.ErrorIs(t, err, mesh.ErrSelfEdge)

	_, err = m.AddEdge(mesh.Edge{Sites: [2]mesh.SiteID{a, 99}})
	require.ErrorIs(t, err, mesh.ErrSiteNotFound)

	b := m.AddSite(mgl64.Vec2{1, 0})
	_, err = m.AddEdge(mesh.Edge{
		Sites:    [2]mesh.SiteID{a, b},
		Vertices: [2]mesh.VertexID{42, mesh.NoVertex},
	})
	require.ErrorIs(t, err, mesh.ErrVertexNotFound)

	// NoVertex on both sides is a legal unbounded edge.
	_, err = m.AddEdge(mesh.Edge{
		Sites:    [2]mesh.SiteID{a, b},
		Vertices: [2]mesh.VertexID{mesh.NoVertex, mesh.NoVertex},
	})
	require.NoError(t, err)
}

func TestNeighborEdge_NotAdjacent(t *testing.T) {
	m := mesh.New()
	a := m.AddSite(mgl64.Vec2{0, 0})
	b := m.AddSite(mgl64.Vec2{5, 0})

	_, err := m.NeighborEdge(a, b)
	require.ErrorIs(t, err, mesh.ErrNotAdjacent)
}

func TestMoveSite(t *testing.T) {
	m, a, _, _ := twoCells(t)

	require.NoError(t, m.MoveSite(a, mgl64.Vec2{1.5, 2.5}))
	s, err := m.Site(a)
	require.NoError(t, err)
	require.Equal(t, mgl64.Vec2{1.5, 2.5}, s.Pos)

	require.ErrorIs(t, m.MoveSite(77, mgl64.Vec2{}), mesh.ErrSiteNotFound)
}

func TestEdgeAccessors(t *testing.T) {
	m, a, b, e := twoCells(t)

	ed, err := m.Edge(e)
	require.NoError(t, err)
	require.Equal(t, a, ed.Site(mesh.SideLeft))
	require.Equal(t, b, ed.Site(mesh.SideRight))
	require.Equal(t, b, ed.Other(a))
	require.Equal(t, a, ed.Other(b))
	require.Equal(t, mesh.NoSite, ed.Other(1234))
	require.Equal(t, mgl64.Vec2{2, 0}, ed.ClippedVertex(mesh.SideLeft))
	require.Equal(t, mesh.SideRight, mesh.SideLeft.Other())

	_, err = m.Edge(9)
	require.ErrorIs(t, err, mesh.ErrEdgeNotFound)
}
