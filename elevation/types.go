// Package elevation defines options and sentinel errors for elevation
// propagation.
package elevation

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/orogenlab/orogen/mesh"
)

// Propagation defaults.
const (
	// DefaultDecay is the blob-mode perturbation factor per hop.
	DefaultDecay = 0.95

	// DefaultCutoff stops propagation once a parent's elevation falls to
	// or below this value.
	DefaultCutoff = 0.01
)

// Sentinel errors for elevation operations.
var (
	// ErrMeshNil is returned if a nil adjacency view is passed.
	ErrMeshNil = errors.New("elevation: mesh is nil")

	// ErrFieldNil is returned if a nil field is passed.
	ErrFieldNil = errors.New("elevation: field is nil")

	// ErrPartitionNil is returned if BoundarySeeds gets a nil partition.
	ErrPartitionNil = errors.New("elevation: partition is nil")

	// ErrSizeMismatch is returned when the field was not sized for the mesh.
	ErrSizeMismatch = errors.New("elevation: field size does not match mesh")

	// ErrNeedRandSource is returned when stochastic mode runs without an RNG.
	ErrNeedRandSource = errors.New("elevation: rng is required")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("elevation: invalid option value")

	// ErrAdjacency is returned when a mesh query fails mid-fill.
	ErrAdjacency = errors.New("elevation: adjacency query failed")
)

// DensityFn reports the crust density under a site, and whether the site
// belongs to a plate. Partition.DensityAt satisfies it.
type DensityFn func(mesh.SiteID) (float64, bool)

// Option configures Propagate via functional arguments. Invalid values
// are recorded and surfaced as ErrOptionViolation when Propagate runs.
type Option func(*Options)

// Options holds the tunable parameters of a propagation pass.
type Options struct {
	// Decay is the blob-mode perturbation factor, in (0, 1].
	Decay float64

	// Cutoff stops propagation below this parent elevation; ≥ 0.
	Cutoff float64

	// Density, when set, switches to stochastic mode.
	Density DensityFn

	// Rng drives stochastic perturbation.
	Rng *rand.Rand

	// OnRaise is called after a dequeued value increases a site's stored
	// elevation. Values dropped by preserve-highest do not fire it.
	OnRaise func(s mesh.SiteID, elev float64)

	err error
}

// DefaultOptions returns blob mode with DefaultDecay, DefaultCutoff, and
// a no-op raise hook.
func DefaultOptions() Options {
	return Options{
		Decay:   DefaultDecay,
		Cutoff:  DefaultCutoff,
		OnRaise: func(mesh.SiteID, float64) {},
	}
}

// WithDecay sets the blob-mode perturbation factor; must lie in (0, 1].
func WithDecay(d float64) Option {
	return func(o *Options) {
		if d <= 0 || d > 1 {
			o.err = fmt.Errorf("%w: decay %v", ErrOptionViolation, d)
			return
		}
		o.Decay = d
	}
}

// WithCutoff sets the propagation cutoff; must be ≥ 0.
func WithCutoff(c float64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: cutoff %v", ErrOptionViolation, c)
			return
		}
		o.Cutoff = c
	}
}

// WithDensity enables stochastic mode: perturbation draws on the
// neighbor's plate density. Panics on nil; requires an RNG.
func WithDensity(fn DensityFn) Option {
	if fn == nil {
		panic("elevation: WithDensity(nil)")
	}
	return func(o *Options) { o.Density = fn }
}

// WithOnRaise registers a callback to run whenever a site's stored
// elevation increases. A nil fn is ignored.
func WithOnRaise(fn func(s mesh.SiteID, elev float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRaise = fn
		}
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("elevation: WithRand(nil)")
	}
	return func(o *Options) { o.Rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rng = rand.New(rand.NewSource(seed)) }
}
