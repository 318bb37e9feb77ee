// Package plates defines plate records, boundary metadata, options, and
// sentinel errors for tectonic partitioning.
package plates

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/orogenlab/orogen/geom"
	"github.com/orogenlab/orogen/mesh"
)

// Sentinel errors for plate operations.
var (
	// ErrMeshNil is returned if a nil adjacency view is passed.
	ErrMeshNil = errors.New("plates: mesh is nil")

	// ErrPlateCount is returned when the requested plate count is below 1
	// or exceeds the site count.
	ErrPlateCount = errors.New("plates: plate count out of range")

	// ErrNeedRandSource is returned when Generate runs without an RNG.
	ErrNeedRandSource = errors.New("plates: rng is required")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("plates: invalid option value")

	// ErrPlateNotFound indicates an unknown plate handle.
	ErrPlateNotFound = errors.New("plates: plate not found")

	// ErrAdjacency is returned when a mesh query fails mid-fill, which
	// means the adjacency view broke its own contract.
	ErrAdjacency = errors.New("plates: adjacency query failed")
)

// PlateID is a stable handle to a plate within one Partition.
type PlateID int

// NoPlate marks a site left unclaimed by the flood fill.
const NoPlate PlateID = -1

// Crust parameters per plate type. Oceanic crust is denser, which the
// elevation propagator turns into faster decay, and its relief stays near
// sea level; continental crust is lighter with a full elevation ceiling.
const (
	DefaultOceanicRatio = 0.7

	oceanicDensityMin     = 0.75
	continentalDensityMin = 0.35
	densitySpan           = 0.2

	oceanicBaseline     = 0.02
	oceanicCeiling      = 0.25
	continentalBaseline = 0.1
	continentalCeiling  = 1.0
)

// Plate is one partition block: a rigid motion shared by all its sites and
// the crust parameters elevation seeding draws from.
type Plate struct {
	// Seed is the site the plate grew from.
	Seed mesh.SiteID

	// Motion is the plate's unit motion vector.
	Motion mgl64.Vec2

	// Oceanic discriminates the two crust types.
	Oceanic bool

	// Density scales elevation decay across this plate's sites.
	Density float64

	// Baseline and Ceiling bound the elevations boundary uplift derives.
	Baseline, Ceiling float64
}

// Boundary is the stress metadata attached to an edge separating two
// different plates. Edges with an unbounded flanking vertex are never
// evaluated and keep their zero stress defaults.
type Boundary struct {
	// Edge is the mesh edge this boundary annotates.
	Edge mesh.EdgeID

	// Stress is the relative motion vector, left plate minus right plate.
	Stress mgl64.Vec2

	// Parallel and Orthogonal are the magnitudes of Stress along and
	// across the edge tangent.
	Parallel, Orthogonal float64

	// Convergent is true when the right plate moves toward the left site.
	Convergent bool

	// Evaluated reports whether EvaluateStress filled this record.
	Evaluated bool
}

// Option configures Generate via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Generate runs.
type Option func(*Options)

// Options holds the tunable parameters of plate generation.
type Options struct {
	// Rng drives seeding, motion vectors, and crust parameters.
	Rng *rand.Rand

	// OceanicRatio is the fraction of plates rolled as oceanic.
	OceanicRatio float64

	// Bounds is the rectangle seed points are sampled from. The zero
	// value means "use the bounding box of all sites".
	Bounds geom.Rect

	// OnClaim is called each time a site is claimed for a plate, seeds
	// included. Claims are final, so it fires at most once per site.
	OnClaim func(s mesh.SiteID, id PlateID)

	hasBounds bool
	err       error
}

// DefaultOptions returns Options with the default oceanic ratio, no RNG,
// site-derived seeding bounds, and a no-op claim hook.
func DefaultOptions() Options {
	return Options{
		OceanicRatio: DefaultOceanicRatio,
		OnClaim:      func(mesh.SiteID, PlateID) {},
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("plates: WithRand(nil)")
	}
	return func(o *Options) { o.Rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rng = rand.New(rand.NewSource(seed)) }
}

// WithOceanicRatio sets the fraction of oceanic plates; must lie in [0,1].
func WithOceanicRatio(ratio float64) Option {
	return func(o *Options) {
		if ratio < 0 || ratio > 1 {
			o.err = fmt.Errorf("%w: oceanic ratio %v", ErrOptionViolation, ratio)
			return
		}
		o.OceanicRatio = ratio
	}
}

// WithOnClaim registers a callback to run on every site claim, during
// seeding and the fill alike. A nil fn is ignored.
func WithOnClaim(fn func(s mesh.SiteID, id PlateID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClaim = fn
		}
	}
}

// WithBounds sets the rectangle random seed points are drawn from.
func WithBounds(r geom.Rect) Option {
	return func(o *Options) {
		o.Bounds = r
		o.hasBounds = true
	}
}
