// Package selection tracks a mutable set of selected sites, the cells
// bordering it, and the clipped polygon of its outer boundary.
//
// After every mutation the tracker upholds one invariant: the boundary
// set is exactly {neighbors of any selected site} minus the selection
// itself, maintained incrementally: Add folds in the new site's
// neighbors, Remove re-tests every former neighbor of the removed site.
// The outer polygon is derived lazily through the region extractor from
// the edges separating selected from unselected cells, and cached until
// the next mutation.
//
// The polygon is only defined for selections whose outer boundary forms a
// single loop: a disconnected selection surfaces region.ErrOpenLoop.
package selection

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/orogenlab/orogen/geom"
	"github.com/orogenlab/orogen/mesh"
	"github.com/orogenlab/orogen/region"
)

// ErrMeshNil is returned if a nil adjacency view is passed.
var ErrMeshNil = errors.New("selection: mesh is nil")

// Tracker is a dynamic union of selected sites. Not safe for concurrent
// use. Selections survive regeneration passes: they hold site identity
// only, never derived plate or elevation state.
type Tracker struct {
	m        mesh.Adjacency
	clip     geom.Rect
	selected map[mesh.SiteID]struct{}
	boundary map[mesh.SiteID]struct{}

	poly  []mgl64.Vec2
	valid bool
}

// NewTracker returns an empty tracker over m, clipping polygons to clip.
func NewTracker(m mesh.Adjacency, clip geom.Rect) (*Tracker, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	return &Tracker{
		m:        m,
		clip:     clip,
		selected: make(map[mesh.SiteID]struct{}),
		boundary: make(map[mesh.SiteID]struct{}),
	}, nil
}

// Add inserts s into the selection. Reports whether the selection changed;
// adding an already-selected site is a no-op, not an error.
func (t *Tracker) Add(s mesh.SiteID) (bool, error) {
	if _, ok := t.selected[s]; ok {
		return false, nil
	}
	nbrs, err := t.m.Neighbors(s)
	if err != nil {
		return false, fmt.Errorf("selection: add %d: %w", s, err)
	}
	t.selected[s] = struct{}{}
	delete(t.boundary, s)
	for _, nb := range nbrs {
		if _, sel := t.selected[nb]; !sel {
			t.boundary[nb] = struct{}{}
		}
	}
	t.invalidate()
	return true, nil
}

// Remove deletes s from the selection. Reports whether the selection
// changed; removing an unselected site is a no-op.
func (t *Tracker) Remove(s mesh.SiteID) (bool, error) {
	if _, ok := t.selected[s]; !ok {
		return false, nil
	}
	nbrs, err := t.m.Neighbors(s)
	if err != nil {
		return false, fmt.Errorf("selection: remove %d: %w", s, err)
	}
	delete(t.selected, s)

	// Former neighbors stay boundary only while they still touch the
	// selection; the removed site itself may now be boundary.
	for _, nb := range nbrs {
		if _, ok := t.boundary[nb]; !ok {
			continue
		}
		touches, err := t.touchesSelection(nb)
		if err != nil {
			return false, err
		}
		if !touches {
			delete(t.boundary, nb)
		}
	}
	touches, err := t.touchesSelection(s)
	if err != nil {
		return false, err
	}
	if touches {
		t.boundary[s] = struct{}{}
	}
	t.invalidate()
	return true, nil
}

// Clear empties the selection.
func (t *Tracker) Clear() {
	clear(t.selected)
	clear(t.boundary)
	t.invalidate()
}

// Len returns the number of selected sites.
func (t *Tracker) Len() int { return len(t.selected) }

// Contains reports whether s is selected.
func (t *Tracker) Contains(s mesh.SiteID) bool {
	_, ok := t.selected[s]
	return ok
}

// Selected returns the selected sites in ascending order.
func (t *Tracker) Selected() []mesh.SiteID {
	return sortedKeys(t.selected)
}

// Boundary returns the cells adjacent to, but not part of, the selection,
// in ascending order.
func (t *Tracker) Boundary() []mesh.SiteID {
	return sortedKeys(t.boundary)
}

// Polygon returns the clipped polygon of the selection's outer boundary,
// cached until the next mutation. Empty selections yield an empty result.
func (t *Tracker) Polygon() ([]mgl64.Vec2, error) {
	if t.valid {
		return t.poly, nil
	}
	edges, err := t.outerEdges()
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		t.poly, t.valid = nil, true
		return nil, nil
	}
	poly, err := region.Loop(t.m, edges, t.clip)
	if err != nil {
		return nil, fmt.Errorf("selection: %w", err)
	}
	t.poly, t.valid = poly, true
	return poly, nil
}

// outerEdges collects each edge separating a selected site from an
// unselected one, once.
func (t *Tracker) outerEdges() ([]mesh.EdgeID, error) {
	seen := make(map[mesh.EdgeID]struct{})
	var edges []mesh.EdgeID
	for _, s := range t.Selected() {
		incident, err := t.m.IncidentEdges(s)
		if err != nil {
			return nil, fmt.Errorf("selection: site %d: %w", s, err)
		}
		for _, id := range incident {
			e, err := t.m.Edge(id)
			if err != nil {
				return nil, fmt.Errorf("selection: edge %d: %w", id, err)
			}
			if _, sel := t.selected[e.Other(s)]; sel {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			edges = append(edges, id)
		}
	}
	return edges, nil
}

func (t *Tracker) touchesSelection(s mesh.SiteID) (bool, error) {
	nbrs, err := t.m.Neighbors(s)
	if err != nil {
		return false, fmt.Errorf("selection: site %d: %w", s, err)
	}
	for _, nb := range nbrs {
		if _, sel := t.selected[nb]; sel {
			return true, nil
		}
	}
	return false, nil
}

func (t *Tracker) invalidate() {
	t.poly, t.valid = nil, false
}

func sortedKeys(set map[mesh.SiteID]struct{}) []mesh.SiteID {
	out := make([]mesh.SiteID, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}
