package elevation

import (
	"fmt"

	"github.com/orogenlab/orogen/mesh"
	"github.com/orogenlab/orogen/plates"
)

// uplift interpolation strengths.
const (
	fullStrength    = 1.0
	quarterStrength = 0.25
)

// BoundarySeeds derives uplift targets for both flanking sites of every
// plate boundary in p. See the package doc for the convergent, divergent,
// and neutral rules. Sites targeted by several boundaries keep the
// highest candidate.
//
// Boundaries with an unclaimed flank are skipped; the result may be empty
// but is never nil on success.
func BoundarySeeds(m mesh.Adjacency, p *plates.Partition) (map[mesh.SiteID]float64, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	if p == nil {
		return nil, ErrPartitionNil
	}
	seeds := make(map[mesh.SiteID]float64)
	for _, b := range p.Boundaries() {
		e, err := m.Edge(b.Edge)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAdjacency, err)
		}
		ls := e.Site(mesh.SideLeft)
		rs := e.Site(mesh.SideRight)
		lp, err := p.Plate(p.PlateOf(ls))
		if err != nil {
			continue // unclaimed flank
		}
		rp, err := p.Plate(p.PlateOf(rs))
		if err != nil {
			continue
		}

		base := (lp.Baseline + rp.Baseline) / 2
		target := base
		if mag := b.Stress.Len(); b.Evaluated && mag > 0 {
			ceiling := lp.Ceiling
			if rp.Ceiling > ceiling {
				ceiling = rp.Ceiling
			}
			switch {
			case b.Convergent && b.Orthogonal >= b.Parallel:
				target = base + (ceiling-base)*fullStrength*(b.Orthogonal/mag)
			default:
				target = base + (ceiling-base)*quarterStrength*(b.Parallel/mag)
			}
		}

		if target > seeds[ls] {
			seeds[ls] = target
		}
		if target > seeds[rs] {
			seeds[rs] = target
		}
	}
	return seeds, nil
}
