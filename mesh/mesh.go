package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is the arena-backed implementation of Adjacency, filled once by the
// geometry provider and then read by the terrain algorithms.
//
// Topology is append-only: sites, vertices and edges can be added but never
// removed, so handles stay stable for the lifetime of the Mesh. Site
// positions are the only mutable geometry (MoveSite).
//
// Mesh is not safe for concurrent mutation; the generation passes that read
// it are single-threaded run-to-completion (see package elevation, plates).
type Mesh struct {
	sites    []Site
	verts    []Vertex
	edges    []Edge
	incident [][]EdgeID // per site, insertion order
}

// New returns an empty Mesh.
func New() *Mesh {
	return &Mesh{}
}

// AddSite appends a site at pos and returns its handle.
func (m *Mesh) AddSite(pos mgl64.Vec2) SiteID {
	m.sites = append(m.sites, Site{Pos: pos})
	m.incident = append(m.incident, nil)
	return SiteID(len(m.sites) - 1)
}

// AddVertex appends a vertex at pos and returns its handle.
func (m *Mesh) AddVertex(pos mgl64.Vec2) VertexID {
	m.verts = append(m.verts, Vertex{Pos: pos})
	return VertexID(len(m.verts) - 1)
}

// AddEdge appends e and registers it with both flanking sites.
// Returns ErrSelfEdge for identical flanks, ErrSiteNotFound or
// ErrVertexNotFound for unknown handles (NoVertex is allowed).
func (m *Mesh) AddEdge(e Edge) (EdgeID, error) {
	if e.Sites[SideLeft] == e.Sites[SideRight] {
		return NoEdge, fmt.Errorf("AddEdge(%d,%d): %w", e.Sites[SideLeft], e.Sites[SideRight], ErrSelfEdge)
	}
	for _, s := range e.Sites {
		if !m.hasSite(s) {
			return NoEdge, fmt.Errorf("AddEdge: site %d: %w", s, ErrSiteNotFound)
		}
	}
	for _, v := range e.Vertices {
		if v != NoVertex && !m.hasVertex(v) {
			return NoEdge, fmt.Errorf("AddEdge: vertex %d: %w", v, ErrVertexNotFound)
		}
	}
	id := EdgeID(len(m.edges))
	m.edges = append(m.edges, e)
	m.incident[e.Sites[SideLeft]] = append(m.incident[e.Sites[SideLeft]], id)
	m.incident[e.Sites[SideRight]] = append(m.incident[e.Sites[SideRight]], id)
	return id, nil
}

// MoveSite updates the position of site id. Derived per-site state held by
// consumers (cached polygons, elevation sections) must be invalidated by
// the caller; the mesh itself stores no derived geometry.
func (m *Mesh) MoveSite(id SiteID, pos mgl64.Vec2) error {
	if !m.hasSite(id) {
		return fmt.Errorf("MoveSite(%d): %w", id, ErrSiteNotFound)
	}
	m.sites[id].Pos = pos
	return nil
}

// SiteCount returns the number of sites.
func (m *Mesh) SiteCount() int { return len(m.sites) }

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.verts) }

// EdgeCount returns the number of edges.
func (m *Mesh) EdgeCount() int { return len(m.edges) }

// Site returns the site record for id.
func (m *Mesh) Site(id SiteID) (Site, error) {
	if !m.hasSite(id) {
		return Site{}, fmt.Errorf("Site(%d): %w", id, ErrSiteNotFound)
	}
	return m.sites[id], nil
}

// Edge returns the edge record for id.
func (m *Mesh) Edge(id EdgeID) (Edge, error) {
	if id < 0 || int(id) >= len(m.edges) {
		return Edge{}, fmt.Errorf("Edge(%d): %w", id, ErrEdgeNotFound)
	}
	return m.edges[id], nil
}

// VertexPos returns the position of vertex id.
func (m *Mesh) VertexPos(id VertexID) (mgl64.Vec2, error) {
	if !m.hasVertex(id) {
		return mgl64.Vec2{}, fmt.Errorf("VertexPos(%d): %w", id, ErrVertexNotFound)
	}
	return m.verts[id].Pos, nil
}

// Neighbors returns the sites adjacent to id, in edge insertion order.
// The returned slice is freshly allocated.
func (m *Mesh) Neighbors(id SiteID) ([]SiteID, error) {
	if !m.hasSite(id) {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrSiteNotFound)
	}
	nbrs := make([]SiteID, 0, len(m.incident[id]))
	for _, e := range m.incident[id] {
		nbrs = append(nbrs, m.edges[e].Other(id))
	}
	return nbrs, nil
}

// IncidentEdges returns the edges bounding id's cell, in insertion order.
// The returned slice is freshly allocated.
func (m *Mesh) IncidentEdges(id SiteID) ([]EdgeID, error) {
	if !m.hasSite(id) {
		return nil, fmt.Errorf("IncidentEdges(%d): %w", id, ErrSiteNotFound)
	}
	out := make([]EdgeID, len(m.incident[id]))
	copy(out, m.incident[id])
	return out, nil
}

// NeighborEdge returns the edge shared by a and b, scanning a's incident
// list. Returns ErrNotAdjacent when no such edge exists.
//
// Complexity: O(deg(a)).
func (m *Mesh) NeighborEdge(a, b SiteID) (EdgeID, error) {
	if !m.hasSite(a) {
		return NoEdge, fmt.Errorf("NeighborEdge(%d,%d): %w", a, b, ErrSiteNotFound)
	}
	if !m.hasSite(b) {
		return NoEdge, fmt.Errorf("NeighborEdge(%d,%d): %w", a, b, ErrSiteNotFound)
	}
	for _, e := range m.incident[a] {
		if m.edges[e].Other(a) == b {
			return e, nil
		}
	}
	return NoEdge, fmt.Errorf("NeighborEdge(%d,%d): %w", a, b, ErrNotAdjacent)
}

func (m *Mesh) hasSite(id SiteID) bool {
	return id >= 0 && int(id) < len(m.sites)
}

func (m *Mesh) hasVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(m.verts)
}

var _ Adjacency = (*Mesh)(nil)
