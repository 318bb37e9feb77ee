package plates

import (
	"fmt"
	"math"

	"github.com/orogenlab/orogen/geom"
	"github.com/orogenlab/orogen/mesh"
)

// degenerateEps guards zero-length tangents and direction vectors; shorter
// segments are treated as degenerate and left unevaluated.
const degenerateEps = 1e-9

// EvaluateStress fills the stress decomposition of every boundary whose
// edge has both vertices known. Boundaries touching the clip rectangle
// (an absent vertex) or a degenerate tangent keep their zero defaults.
//
// For each boundary: relative motion = left plate motion − right plate
// motion; Parallel = |rel · tangent|, Orthogonal = |rel × tangent| with
// tangent the unit vector between the edge's vertices. The boundary is
// convergent when the right plate's motion points against the left→right
// inter-site direction.
//
// Complexity: O(B).
func (p *Partition) EvaluateStress(m mesh.Adjacency) error {
	if m == nil {
		return ErrMeshNil
	}
	for i := range p.boundaries {
		b := &p.boundaries[i]
		e, err := m.Edge(b.Edge)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAdjacency, err)
		}
		if e.Vertex(mesh.SideLeft) == mesh.NoVertex || e.Vertex(mesh.SideRight) == mesh.NoVertex {
			continue
		}

		leftPlate := p.PlateOf(e.Site(mesh.SideLeft))
		rightPlate := p.PlateOf(e.Site(mesh.SideRight))
		if leftPlate == NoPlate || rightPlate == NoPlate {
			continue
		}

		lv, err := m.VertexPos(e.Vertex(mesh.SideLeft))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAdjacency, err)
		}
		rv, err := m.VertexPos(e.Vertex(mesh.SideRight))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAdjacency, err)
		}
		tangent := rv.Sub(lv)
		if tangent.Len() < degenerateEps {
			continue
		}
		tangent = tangent.Mul(1 / tangent.Len())

		rel := p.plates[leftPlate].Motion.Sub(p.plates[rightPlate].Motion)
		b.Stress = rel
		b.Parallel = math.Abs(rel.Dot(tangent))
		b.Orthogonal = math.Abs(geom.Cross(rel, tangent))

		ls, err := m.Site(e.Site(mesh.SideLeft))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAdjacency, err)
		}
		rs, err := m.Site(e.Site(mesh.SideRight))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAdjacency, err)
		}
		dir := geom.Normalize(rs.Pos.Sub(ls.Pos), degenerateEps)
		motion := geom.Normalize(p.plates[rightPlate].Motion, degenerateEps)
		b.Convergent = dir.Dot(motion) < 0
		b.Evaluated = true
	}
	return nil
}
