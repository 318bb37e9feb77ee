// Package mesh defines handle types, records, and sentinel errors for the
// planar-subdivision graph.
package mesh

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// Sentinel errors for mesh operations.
var (
	// ErrSiteNotFound indicates an operation referenced an unknown site handle.
	ErrSiteNotFound = errors.New("mesh: site not found")

	// ErrVertexNotFound indicates an operation referenced an unknown vertex handle.
	ErrVertexNotFound = errors.New("mesh: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an unknown edge handle.
	ErrEdgeNotFound = errors.New("mesh: edge not found")

	// ErrSelfEdge indicates an edge whose two flanking sites are the same site.
	ErrSelfEdge = errors.New("mesh: edge flanks must be distinct sites")

	// ErrNotAdjacent indicates the two sites share no edge.
	ErrNotAdjacent = errors.New("mesh: sites are not adjacent")
)

// SiteID is a stable handle to a site, issued by AddSite.
type SiteID int

// VertexID is a stable handle to a vertex, issued by AddVertex.
type VertexID int

// EdgeID is a stable handle to an edge, issued by AddEdge.
type EdgeID int

// Sentinel handles for "absent".
const (
	NoSite   SiteID   = -1
	NoVertex VertexID = -1
	NoEdge   EdgeID   = -1
)

// Side selects one flank of an edge.
type Side int

const (
	// SideLeft selects the left flank.
	SideLeft Side = iota
	// SideRight selects the right flank.
	SideRight
)

// Other returns the opposite flank.
func (s Side) Other() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Site is a cell generator point. Identity is its SiteID; the position may
// be edited through Mesh.MoveSite.
type Site struct {
	Pos mgl64.Vec2
}

// Vertex is a shared edge endpoint, immutable once added.
type Vertex struct {
	Pos mgl64.Vec2
}

// Edge is one border segment between the cells of two sites.
//
// Vertices[side] is NoVertex when the edge is unbounded on that side.
// Clipped[side] is the endpoint position after clipping against the world
// rectangle; it is meaningful only while Visible is true. Visible is false
// when the whole edge lies outside the world rectangle.
type Edge struct {
	Sites    [2]SiteID
	Vertices [2]VertexID
	Clipped  [2]mgl64.Vec2
	Visible  bool
}

// Site returns the flanking site on the given side.
func (e Edge) Site(s Side) SiteID { return e.Sites[s] }

// Vertex returns the vertex handle on the given side (NoVertex if unbounded).
func (e Edge) Vertex(s Side) VertexID { return e.Vertices[s] }

// ClippedVertex returns the post-clipping endpoint on the given side.
func (e Edge) ClippedVertex(s Side) mgl64.Vec2 { return e.Clipped[s] }

// Other returns the flanking site opposite to id, or NoSite when id does
// not flank e.
func (e Edge) Other(id SiteID) SiteID {
	switch id {
	case e.Sites[SideLeft]:
		return e.Sites[SideRight]
	case e.Sites[SideRight]:
		return e.Sites[SideLeft]
	default:
		return NoSite
	}
}

// Adjacency is the read-only graph view the terrain algorithms consume.
// *Mesh implements it; consumers must not retain returned slices across
// mesh mutations.
type Adjacency interface {
	// SiteCount returns the number of sites; valid handles are [0, SiteCount).
	SiteCount() int
	// Site returns the site record for id.
	Site(id SiteID) (Site, error)
	// Neighbors returns the sites sharing an edge with id, in edge
	// insertion order.
	Neighbors(id SiteID) ([]SiteID, error)
	// IncidentEdges returns the edges bounding id's cell, in insertion order.
	IncidentEdges(id SiteID) ([]EdgeID, error)
	// NeighborEdge returns the edge shared by sites a and b.
	NeighborEdge(a, b SiteID) (EdgeID, error)
	// Edge returns the edge record for id.
	Edge(id EdgeID) (Edge, error)
	// VertexPos returns the position of vertex id.
	VertexPos(id VertexID) (mgl64.Vec2, error)
}
