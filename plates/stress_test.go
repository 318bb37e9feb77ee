package plates_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/orogenlab/orogen/geom"
	"github.com/orogenlab/orogen/mesh"
	"github.com/orogenlab/orogen/plates"
)

// twoCellMesh builds two sites flanking a single vertical bounded edge.
func twoCellMesh(t *testing.T, bounded bool) *mesh.Mesh {
	t.Helper()
	m := mesh.New()
	a := m.AddSite(mgl64.Vec2{1, 1})
	b := m.AddSite(mgl64.Vec2{3, 1})
	vs := [2]mesh.VertexID{mesh.NoVertex, mesh.NoVertex}
	if bounded {
		vs[0] = m.AddVertex(mgl64.Vec2{2, 0})
		vs[1] = m.AddVertex(mgl64.Vec2{2, 2})
	}
	_, err := m.AddEdge(mesh.Edge{
		Sites:    [2]mesh.SiteID{a, b},
		Vertices: vs,
		Clipped:  [2]mgl64.Vec2{{2, 0}, {2, 2}},
		Visible:  true,
	})
	require.NoError(t, err)
	return m
}

func TestEvaluateStress_Decomposition(t *testing.T) {
	m := twoCellMesh(t, true)
	p, err := plates.Generate(m, 2, plates.WithSeed(11))
	require.NoError(t, err)
	require.Equal(t, 1, p.BoundaryCount())

	require.NoError(t, p.EvaluateStress(m))

	b := p.Boundaries()[0]
	require.True(t, b.Evaluated)
	require.GreaterOrEqual(t, b.Parallel, 0.0)
	require.GreaterOrEqual(t, b.Orthogonal, 0.0)
	// parallel/orthogonal components reassemble the relative motion magnitude
	require.InDelta(t, b.Stress.Len(), math.Hypot(b.Parallel, b.Orthogonal), 1e-9)

	// recompute the divergence classification from the public records
	ed, err := m.Edge(b.Edge)
	require.NoError(t, err)
	left, err := m.Site(ed.Site(mesh.SideLeft))
	require.NoError(t, err)
	right, err := m.Site(ed.Site(mesh.SideRight))
	require.NoError(t, err)
	rp, err := p.Plate(p.PlateOf(ed.Site(mesh.SideRight)))
	require.NoError(t, err)
	dir := geom.Normalize(right.Pos.Sub(left.Pos), 1e-9)
	require.Equal(t, dir.Dot(geom.Normalize(rp.Motion, 1e-9)) < 0, b.Convergent)
}

// TestEvaluateStress_UnboundedSkipped: an edge touching the clip rectangle
// has an absent vertex and must keep zero stress defaults.
func TestEvaluateStress_UnboundedSkipped(t *testing.T) {
	m := twoCellMesh(t, false)
	p, err := plates.Generate(m, 2, plates.WithSeed(11))
	require.NoError(t, err)
	require.Equal(t, 1, p.BoundaryCount())

	require.NoError(t, p.EvaluateStress(m))

	b := p.Boundaries()[0]
	require.False(t, b.Evaluated)
	require.Equal(t, mgl64.Vec2{}, b.Stress)
	require.Zero(t, b.Parallel)
	require.Zero(t, b.Orthogonal)
}

func TestEvaluateStress_NilMesh(t *testing.T) {
	m := twoCellMesh(t, true)
	p, err := plates.Generate(m, 2, plates.WithSeed(11))
	require.NoError(t, err)
	require.ErrorIs(t, p.EvaluateStress(nil), plates.ErrMeshNil)
}
