package plates

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/orogenlab/orogen/geom"
	"github.com/orogenlab/orogen/mesh"
)

// Partition is the result of one plate generation pass: a total (up to
// reachability) assignment of sites to plates and the registered boundary
// edges. Partitions are replaced wholesale on regeneration, never patched.
type Partition struct {
	plates     []Plate
	owner      []PlateID
	boundaries []Boundary
	byEdge     map[mesh.EdgeID]int
}

// Generate partitions m into plateCount plates. See the package doc for
// the algorithm and its guarantees.
func Generate(m mesh.Adjacency, plateCount int, opts ...Option) (*Partition, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Rng == nil {
		return nil, ErrNeedRandSource
	}
	n := m.SiteCount()
	if plateCount < 1 || plateCount > n {
		return nil, fmt.Errorf("%w: %d plates for %d sites", ErrPlateCount, plateCount, n)
	}

	bounds := o.Bounds
	if !o.hasBounds {
		var err error
		if bounds, err = siteBounds(m); err != nil {
			return nil, err
		}
	}

	p := &Partition{
		plates: make([]Plate, 0, plateCount),
		owner:  make([]PlateID, n),
		byEdge: make(map[mesh.EdgeID]int),
	}
	for i := range p.owner {
		p.owner[i] = NoPlate
	}

	// Seed selection: nearest site to a random point, re-rolled until the
	// seeds are pairwise distinct.
	queue := make([]mesh.SiteID, 0, n)
	for len(p.plates) < plateCount {
		pt := mgl64.Vec2{
			bounds.Min.X() + o.Rng.Float64()*bounds.Width(),
			bounds.Min.Y() + o.Rng.Float64()*bounds.Height(),
		}
		seed, err := nearestSite(m, pt)
		if err != nil {
			return nil, err
		}
		if p.owner[seed] != NoPlate {
			continue
		}
		p.owner[seed] = PlateID(len(p.plates))
		p.plates = append(p.plates, rollPlate(seed, o))
		queue = append(queue, seed)
		o.OnClaim(seed, p.owner[seed])
	}

	// Pseudo-simultaneous flood fill: one shared FIFO across all plates.
	// First claim wins; edges between differing claims become boundaries.
	for qi := 0; qi < len(queue); qi++ {
		s := queue[qi]
		nbrs, err := m.Neighbors(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAdjacency, err)
		}
		for _, nb := range nbrs {
			switch p.owner[nb] {
			case NoPlate:
				p.owner[nb] = p.owner[s]
				queue = append(queue, nb)
				o.OnClaim(nb, p.owner[nb])
			case p.owner[s]:
				// intra-plate edge
			default:
				e, err := m.NeighborEdge(s, nb)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrAdjacency, err)
				}
				p.registerBoundary(e)
			}
		}
	}
	return p, nil
}

// rollPlate draws a plate's motion and crust parameters from the RNG.
func rollPlate(seed mesh.SiteID, o Options) Plate {
	angle := o.Rng.Float64() * 2 * math.Pi
	pl := Plate{
		Seed:   seed,
		Motion: mgl64.Vec2{math.Cos(angle), math.Sin(angle)},
	}
	if o.Rng.Float64() < o.OceanicRatio {
		pl.Oceanic = true
		pl.Density = oceanicDensityMin + o.Rng.Float64()*densitySpan
		pl.Baseline = oceanicBaseline
		pl.Ceiling = oceanicCeiling
	} else {
		pl.Density = continentalDensityMin + o.Rng.Float64()*densitySpan
		pl.Baseline = continentalBaseline
		pl.Ceiling = continentalCeiling
	}
	return pl
}

// registerBoundary records e once; rediscovery from the other flank is a
// no-op. Returns whether the edge was newly inserted.
func (p *Partition) registerBoundary(e mesh.EdgeID) bool {
	if _, dup := p.byEdge[e]; dup {
		return false
	}
	p.byEdge[e] = len(p.boundaries)
	p.boundaries = append(p.boundaries, Boundary{Edge: e})
	return true
}

// PlateCount returns the number of plates.
func (p *Partition) PlateCount() int { return len(p.plates) }

// Plate returns the plate record for id.
func (p *Partition) Plate(id PlateID) (Plate, error) {
	if id < 0 || int(id) >= len(p.plates) {
		return Plate{}, fmt.Errorf("Plate(%d): %w", id, ErrPlateNotFound)
	}
	return p.plates[id], nil
}

// PlateOf returns the plate owning site s, or NoPlate when s was never
// claimed (or is out of range).
func (p *Partition) PlateOf(s mesh.SiteID) PlateID {
	if s < 0 || int(s) >= len(p.owner) {
		return NoPlate
	}
	return p.owner[s]
}

// IsOceanic reports whether plate id is oceanic; false for unknown handles.
func (p *Partition) IsOceanic(id PlateID) bool {
	if id < 0 || int(id) >= len(p.plates) {
		return false
	}
	return p.plates[id].Oceanic
}

// DensityAt returns the crust density under site s, and whether s belongs
// to any plate.
func (p *Partition) DensityAt(s mesh.SiteID) (float64, bool) {
	id := p.PlateOf(s)
	if id == NoPlate {
		return 0, false
	}
	return p.plates[id].Density, true
}

// Boundaries returns a copy of the registered boundary set, in discovery
// order.
func (p *Partition) Boundaries() []Boundary {
	out := make([]Boundary, len(p.boundaries))
	copy(out, p.boundaries)
	return out
}

// BoundaryCount returns the number of registered boundary edges.
func (p *Partition) BoundaryCount() int { return len(p.boundaries) }

// IsBoundary reports whether edge e was registered as a plate boundary.
func (p *Partition) IsBoundary(e mesh.EdgeID) bool {
	_, ok := p.byEdge[e]
	return ok
}

// PlateSizes counts the sites claimed by each plate, indexed by PlateID.
func (p *Partition) PlateSizes() []int {
	sizes := make([]int, len(p.plates))
	for _, id := range p.owner {
		if id != NoPlate {
			sizes[id]++
		}
	}
	return sizes
}

// siteBounds computes the bounding box of all site positions.
func siteBounds(m mesh.Adjacency) (geom.Rect, error) {
	n := m.SiteCount()
	if n == 0 {
		return geom.Rect{}, fmt.Errorf("%w: empty mesh", ErrPlateCount)
	}
	first, err := m.Site(0)
	if err != nil {
		return geom.Rect{}, fmt.Errorf("%w: %v", ErrAdjacency, err)
	}
	r := geom.Rect{Min: first.Pos, Max: first.Pos}
	for i := 1; i < n; i++ {
		s, err := m.Site(mesh.SiteID(i))
		if err != nil {
			return geom.Rect{}, fmt.Errorf("%w: %v", ErrAdjacency, err)
		}
		r.Min = mgl64.Vec2{math.Min(r.Min.X(), s.Pos.X()), math.Min(r.Min.Y(), s.Pos.Y())}
		r.Max = mgl64.Vec2{math.Max(r.Max.X(), s.Pos.X()), math.Max(r.Max.Y(), s.Pos.Y())}
	}
	return r, nil
}

// nearestSite scans for the site closest to pt.
func nearestSite(m mesh.Adjacency, pt mgl64.Vec2) (mesh.SiteID, error) {
	best := mesh.NoSite
	bestD := math.Inf(1)
	for i := 0; i < m.SiteCount(); i++ {
		s, err := m.Site(mesh.SiteID(i))
		if err != nil {
			return mesh.NoSite, fmt.Errorf("%w: %v", ErrAdjacency, err)
		}
		if d := s.Pos.Sub(pt).Len(); d < bestD {
			best, bestD = mesh.SiteID(i), d
		}
	}
	return best, nil
}
