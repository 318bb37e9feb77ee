// Package builder constructs synthetic meshes so tests and examples never
// need a real geometry provider.
//
// Grid builds a rows×cols lattice of square cells with full site, edge and
// vertex adjacency, a degenerate but topologically honest planar
// subdivision. Triangle builds three mutually adjacent cells around a
// shared vertex. Both are deterministic for equal options; stochastic
// knobs (WithJitter) require an explicit RNG via WithSeed or WithRand.
//
// Site IDs follow a fixed, documented row-major scheme: cell (r,c) gets
// SiteID(r*cols + c).
package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/orogenlab/orogen/geom"
	"github.com/orogenlab/orogen/mesh"
)

// Sentinel errors for builder constructors.
var (
	// ErrBadDimensions indicates rows or cols below the minimum of 1.
	ErrBadDimensions = errors.New("builder: rows and cols must be at least 1")

	// ErrNeedRandSource indicates a stochastic option (jitter) was requested
	// without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrOptionViolation indicates a WithX option received a meaningless value.
	ErrOptionViolation = errors.New("builder: invalid option value")
)

// Option customizes mesh construction.
type Option func(*config)

type config struct {
	cellSize float64
	origin   mgl64.Vec2
	jitter   float64
	rng      *rand.Rand
	err      error
}

func defaultConfig() config {
	return config{cellSize: 1}
}

// WithCellSize sets the square cell edge length (default 1).
// Non-positive sizes surface as ErrOptionViolation.
func WithCellSize(s float64) Option {
	return func(c *config) {
		if s <= 0 {
			c.err = fmt.Errorf("%w: cell size %v", ErrOptionViolation, s)
			return
		}
		c.cellSize = s
	}
}

// WithOrigin sets the lower-left corner of the built world (default (0,0)).
func WithOrigin(o mgl64.Vec2) Option {
	return func(c *config) { c.origin = o }
}

// WithJitter displaces each site uniformly within ±j/2 cell widths of its
// cell center. Requires an RNG. j outside [0,1) surfaces as
// ErrOptionViolation.
func WithJitter(j float64) Option {
	return func(c *config) {
		if j < 0 || j >= 1 {
			c.err = fmt.Errorf("%w: jitter %v", ErrOptionViolation, j)
			return
		}
		c.jitter = j
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// Grid builds a rows×cols mesh of square cells and returns it together
// with the world rectangle enclosing all cells.
//
// Interior cell borders become edges (vertical borders first per cell,
// row-major); the outer border of the world carries no edges, so outer
// cells rely on clip-corner insertion during region extraction.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int, opts ...Option) (*mesh.Mesh, geom.Rect, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, geom.Rect{}, fmt.Errorf("Grid: %w", cfg.err)
	}
	if rows < 1 || cols < 1 {
		return nil, geom.Rect{}, fmt.Errorf("Grid: rows=%d, cols=%d: %w", rows, cols, ErrBadDimensions)
	}
	if cfg.jitter > 0 && cfg.rng == nil {
		return nil, geom.Rect{}, fmt.Errorf("Grid: %w", ErrNeedRandSource)
	}

	m := mesh.New()
	w := cfg.cellSize
	world := geom.Rect{
		Min: cfg.origin,
		Max: cfg.origin.Add(mgl64.Vec2{float64(cols) * w, float64(rows) * w}),
	}

	// Sites, row-major.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := cfg.origin.Add(mgl64.Vec2{(float64(c) + 0.5) * w, (float64(r) + 0.5) * w})
			if cfg.jitter > 0 {
				pos = pos.Add(mgl64.Vec2{
					(cfg.rng.Float64() - 0.5) * cfg.jitter * w,
					(cfg.rng.Float64() - 0.5) * cfg.jitter * w,
				})
			}
			m.AddSite(pos)
		}
	}

	// Lattice vertices, row-major over (rows+1)×(cols+1) corners.
	verts := make([]mesh.VertexID, (rows+1)*(cols+1))
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			p := cfg.origin.Add(mgl64.Vec2{float64(c) * w, float64(r) * w})
			verts[r*(cols+1)+c] = m.AddVertex(p)
		}
	}
	lat := func(r, c int) mesh.VertexID { return verts[r*(cols+1)+c] }
	site := func(r, c int) mesh.SiteID { return mesh.SiteID(r*cols + c) }

	addEdge := func(a, b mesh.SiteID, v0, v1 mesh.VertexID) error {
		p0, err := m.VertexPos(v0)
		if err != nil {
			return err
		}
		p1, err := m.VertexPos(v1)
		if err != nil {
			return err
		}
		_, err = m.AddEdge(mesh.Edge{
			Sites:    [2]mesh.SiteID{a, b},
			Vertices: [2]mesh.VertexID{v0, v1},
			Clipped:  [2]mgl64.Vec2{p0, p1},
			Visible:  true,
		})
		return err
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			// Border with the right cell.
			if c+1 < cols {
				if err := addEdge(site(r, c), site(r, c+1), lat(r, c+1), lat(r+1, c+1)); err != nil {
					return nil, geom.Rect{}, fmt.Errorf("Grid: %w", err)
				}
			}
			// Border with the cell above.
			if r+1 < rows {
				if err := addEdge(site(r, c), site(r+1, c), lat(r+1, c), lat(r+1, c+1)); err != nil {
					return nil, geom.Rect{}, fmt.Errorf("Grid: %w", err)
				}
			}
		}
	}
	return m, world, nil
}

// Triangle builds three mutually adjacent cells meeting at a central
// vertex, the smallest mesh with a genuine three-way plate junction.
// Returns the mesh, the enclosing world rectangle, and the three sites.
func Triangle() (*mesh.Mesh, geom.Rect, [3]mesh.SiteID) {
	m := mesh.New()
	a := m.AddSite(mgl64.Vec2{1, 1})
	b := m.AddSite(mgl64.Vec2{3, 1})
	c := m.AddSite(mgl64.Vec2{2, 2.4})

	center := m.AddVertex(mgl64.Vec2{2, 1.5})
	vab := m.AddVertex(mgl64.Vec2{2, 0})
	vac := m.AddVertex(mgl64.Vec2{0, 3})
	vbc := m.AddVertex(mgl64.Vec2{4, 3})

	add := func(s0, s1 mesh.SiteID, v0, v1 mesh.VertexID) {
		p0, _ := m.VertexPos(v0)
		p1, _ := m.VertexPos(v1)
		// vertex handles are local and valid; AddEdge cannot fail here
		_, _ = m.AddEdge(mesh.Edge{
			Sites:    [2]mesh.SiteID{s0, s1},
			Vertices: [2]mesh.VertexID{v0, v1},
			Clipped:  [2]mgl64.Vec2{p0, p1},
			Visible:  true,
		})
	}
	add(a, b, vab, center)
	add(a, c, vac, center)
	add(b, c, vbc, center)

	return m, geom.NewRect(0, 0, 4, 3), [3]mesh.SiteID{a, b, c}
}
