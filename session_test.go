package orogen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orogenlab/orogen"
	"github.com/orogenlab/orogen/builder"
	"github.com/orogenlab/orogen/config"
	"github.com/orogenlab/orogen/mesh"
	"github.com/orogenlab/orogen/plates"
)

func gridParams(seed int64) config.Params {
	p := config.Default()
	p.Seed = seed
	p.PlateCount = 5
	p.World = config.World{MinX: 0, MinY: 0, MaxX: 8, MaxY: 8}
	return p
}

func gridSession(t *testing.T, seed int64) (*orogen.Session, *mesh.Mesh) {
	t.Helper()
	m, _, err := builder.Grid(8, 8)
	require.NoError(t, err)
	s, err := orogen.NewSession(m, gridParams(seed))
	require.NoError(t, err)
	return s, m
}

func TestSession_GenerateEndToEnd(t *testing.T) {
	s, m := gridSession(t, 42)
	require.NoError(t, s.Generate())

	// Every site belongs to a plate and the pass produced boundaries.
	for i := 0; i < m.SiteCount(); i++ {
		require.NotEqual(t, plates.NoPlate, s.PlateOf(mesh.SiteID(i)))
	}
	require.NotEmpty(t, s.Boundaries())

	// Boundary uplift must have raised at least one site.
	raised := false
	for i := 0; i < m.SiteCount(); i++ {
		if s.Elevation(mesh.SiteID(i)) > 0 {
			raised = true
			break
		}
	}
	require.True(t, raised)

	// Region geometry works through the session cache, clip corners included.
	poly, err := s.RegionPolygon(0)
	require.NoError(t, err)
	require.Len(t, poly, 4)
}

func TestSession_BeforeGenerate(t *testing.T) {
	s, _ := gridSession(t, 1)

	require.Equal(t, plates.NoPlate, s.PlateOf(0))
	require.Zero(t, s.Elevation(0))
	require.False(t, s.IsOceanic(0))
	require.Nil(t, s.Boundaries())
	require.Nil(t, s.Partition())
	require.Nil(t, s.Field())

	// Geometry needs no generation pass.
	poly, err := s.RegionPolygon(0)
	require.NoError(t, err)
	require.NotEmpty(t, poly)
}

func TestSession_Deterministic(t *testing.T) {
	a, m := gridSession(t, 7)
	b, _ := gridSession(t, 7)
	require.NoError(t, a.Generate())
	require.NoError(t, b.Generate())

	for i := 0; i < m.SiteCount(); i++ {
		site := mesh.SiteID(i)
		require.Equal(t, a.PlateOf(site), b.PlateOf(site))
		require.Equal(t, a.Elevation(site), b.Elevation(site))
	}
}

func TestSession_RegenerateReplays(t *testing.T) {
	s, m := gridSession(t, 7)
	require.NoError(t, s.Generate())
	require.NoError(t, s.Generate()) // advance the RNG past the first world

	// Reseeding rewinds the session to the first world exactly.
	require.NoError(t, s.Regenerate(7))
	fresh, _ := gridSession(t, 7)
	require.NoError(t, fresh.Generate())
	for i := 0; i < m.SiteCount(); i++ {
		site := mesh.SiteID(i)
		require.Equal(t, fresh.PlateOf(site), s.PlateOf(site))
		require.Equal(t, fresh.Elevation(site), s.Elevation(site))
	}
}

func TestSession_Validation(t *testing.T) {
	m, _, err := builder.Grid(2, 2)
	require.NoError(t, err)

	_, err = orogen.NewSession(nil, gridParams(1))
	require.ErrorIs(t, err, orogen.ErrMeshNil)

	bad := gridParams(1)
	bad.PlateCount = 0
	_, err = orogen.NewSession(m, bad)
	require.ErrorIs(t, err, config.ErrInvalidParams)
}

func TestSession_MoveSiteInvalidation(t *testing.T) {
	m, _, err := builder.Grid(2, 2)
	require.NoError(t, err)
	p := gridParams(1)
	p.World = config.World{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	s, err := orogen.NewSession(m, p)
	require.NoError(t, err)

	before, err := s.RegionPolygon(0)
	require.NoError(t, err)

	// Moving a site leaves its cell topology alone, so the polygon must
	// survive invalidation unchanged.
	site, err := m.Site(0)
	require.NoError(t, err)
	require.NoError(t, m.MoveSite(0, site.Pos))
	s.InvalidateSite(0)
	after, err := s.RegionPolygon(0)
	require.NoError(t, err)
	require.Equal(t, before, after)
}
