package orogen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/orogenlab/orogen/config"
	"github.com/orogenlab/orogen/elevation"
	"github.com/orogenlab/orogen/mesh"
	"github.com/orogenlab/orogen/plates"
	"github.com/orogenlab/orogen/region"
	"github.com/orogenlab/orogen/selection"
)

// ErrMeshNil is returned if a Session is created over a nil mesh.
var ErrMeshNil = errors.New("orogen: mesh is nil")

// Session is the explicit context object for one generation run: the
// mesh, the preset, the RNG, and all derived state. Derived state (plate
// partition, elevation field, polygon cache) is created per Generate pass
// and replaced wholesale; a failed pass leaves the previous state
// untouched.
//
// Sessions are single-threaded: every pass runs to completion on the
// calling goroutine.
type Session struct {
	m      mesh.Adjacency
	params config.Params
	rng    *rand.Rand

	partition *plates.Partition
	field     *elevation.Field
	regions   *region.Cache
}

// NewSession validates params and binds a session to m. No generation
// happens yet; region polygons are already available.
func NewSession(m mesh.Adjacency, params config.Params) (*Session, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		m:       m,
		params:  params,
		rng:     rand.New(rand.NewSource(params.Seed)),
		regions: region.NewCache(m, params.World.Rect()),
	}, nil
}

// Generate runs one full pass: plate partition, boundary stress, uplift
// seeding, and stochastic elevation propagation. Each call consumes
// fresh randomness from the session RNG, so consecutive calls produce
// different worlds while a fresh session with the same seed replays the
// same sequence.
func (s *Session) Generate() error {
	p, err := plates.Generate(s.m, s.params.PlateCount,
		plates.WithRand(s.rng),
		plates.WithOceanicRatio(s.params.OceanicRatio),
		plates.WithBounds(s.params.World.Rect()),
	)
	if err != nil {
		return fmt.Errorf("orogen: partition: %w", err)
	}
	if err := p.EvaluateStress(s.m); err != nil {
		return fmt.Errorf("orogen: stress: %w", err)
	}
	seeds, err := elevation.BoundarySeeds(s.m, p)
	if err != nil {
		return fmt.Errorf("orogen: seeding: %w", err)
	}
	f := elevation.NewField(s.m.SiteCount())
	err = elevation.Propagate(s.m, f, seeds,
		elevation.WithDensity(p.DensityAt),
		elevation.WithRand(s.rng),
		elevation.WithDecay(s.params.Decay),
		elevation.WithCutoff(s.params.Cutoff),
	)
	if err != nil {
		return fmt.Errorf("orogen: propagate: %w", err)
	}

	s.partition, s.field = p, f
	s.regions.InvalidateAll()
	return nil
}

// Regenerate reseeds the session RNG and runs a fresh pass, replacing
// all derived state. Two sessions regenerated with the same seed over
// the same mesh produce identical worlds.
func (s *Session) Regenerate(seed int64) error {
	s.rng = rand.New(rand.NewSource(seed))
	return s.Generate()
}

// Elevation returns the site's elevation, or 0 before the first Generate
// (and for sites the fill never reached; "unassigned" is a valid state).
func (s *Session) Elevation(site mesh.SiteID) float64 {
	if s.field == nil {
		return 0
	}
	return s.field.Elevation(site)
}

// PlateOf returns the plate owning site, or plates.NoPlate before the
// first Generate and for unclaimed sites.
func (s *Session) PlateOf(site mesh.SiteID) plates.PlateID {
	if s.partition == nil {
		return plates.NoPlate
	}
	return s.partition.PlateOf(site)
}

// IsOceanic reports whether plate id is oceanic; false before Generate.
func (s *Session) IsOceanic(id plates.PlateID) bool {
	return s.partition != nil && s.partition.IsOceanic(id)
}

// Boundaries returns the current pass's boundary set, nil before Generate.
func (s *Session) Boundaries() []plates.Boundary {
	if s.partition == nil {
		return nil
	}
	return s.partition.Boundaries()
}

// Partition exposes the current plate partition, nil before Generate.
func (s *Session) Partition() *plates.Partition { return s.partition }

// Field exposes the current elevation field, nil before Generate.
func (s *Session) Field() *elevation.Field { return s.field }

// RegionPolygon returns the cached clipped polygon of site's cell.
func (s *Session) RegionPolygon(site mesh.SiteID) ([]mgl64.Vec2, error) {
	return s.regions.Polygon(site)
}

// InvalidateSite drops derived per-site geometry after a site move. The
// owner of the concrete mesh performs the move itself.
func (s *Session) InvalidateSite(site mesh.SiteID) {
	s.regions.Invalidate(site)
}

// NewSelection returns an empty selection tracker clipped to the session
// world rectangle.
func (s *Session) NewSelection() (*selection.Tracker, error) {
	return selection.NewTracker(s.m, s.params.World.Rect())
}
