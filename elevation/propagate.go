package elevation

import (
	"fmt"
	"slices"

	"github.com/orogenlab/orogen/mesh"
)

// queueItem pairs a site with the elevation it was reached with.
type queueItem struct {
	site mesh.SiteID
	elev float64
}

// Propagate flood-fills elevation outward from seeds across m into f.
//
// All seeds share one FIFO frontier, so fronts from different seeds
// interleave; within one seed's subtree nearer sites are still finalized
// first (plain BFS order), which is what makes first-claim correct. Each
// dequeued value raises the site (preserve-highest); neighbors are
// enqueued once, with the parent's elevation scaled by the perturbation
// factor, and only while the parent exceeds the cutoff.
//
// Seeds are processed in ascending site order so a pass is reproducible
// for a fixed RNG regardless of map iteration.
func Propagate(m mesh.Adjacency, f *Field, seeds map[mesh.SiteID]float64, opts ...Option) error {
	if m == nil {
		return ErrMeshNil
	}
	if f == nil {
		return ErrFieldNil
	}
	if f.Len() != m.SiteCount() {
		return fmt.Errorf("%w: field %d sites, mesh %d", ErrSizeMismatch, f.Len(), m.SiteCount())
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if o.Density != nil && o.Rng == nil {
		return ErrNeedRandSource
	}

	n := m.SiteCount()
	visited := make([]bool, n)
	queue := make([]queueItem, 0, n)

	order := make([]mesh.SiteID, 0, len(seeds))
	for s := range seeds {
		if s >= 0 && int(s) < n {
			order = append(order, s)
		}
	}
	slices.Sort(order)
	for _, s := range order {
		visited[s] = true
		queue = append(queue, queueItem{site: s, elev: seeds[s]})
	}

	for qi := 0; qi < len(queue); qi++ {
		it := queue[qi]
		if f.Raise(it.site, it.elev) {
			o.OnRaise(it.site, it.elev)
		}
		if it.elev <= o.Cutoff {
			continue
		}
		nbrs, err := m.Neighbors(it.site)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAdjacency, err)
		}
		for _, nb := range nbrs {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			queue = append(queue, queueItem{site: nb, elev: it.elev * o.perturb(nb)})
		}
	}
	return nil
}

// perturb returns the per-hop factor for reaching neighbor nb. Stochastic
// mode draws on the neighbor's plate density; a neighbor outside every
// plate, and blob mode, use the fixed decay constant.
func (o *Options) perturb(nb mesh.SiteID) float64 {
	if o.Density != nil {
		if d, ok := o.Density(nb); ok {
			return o.Rng.Float64()*d + (1.1 - d)
		}
	}
	return o.Decay
}
