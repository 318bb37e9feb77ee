// Package mesh holds the planar-subdivision graph every terrain algorithm
// in this module consumes: sites (cell generators), vertices (edge
// endpoints), and edges (cell border segments between exactly two sites).
//
// # What
//
//   - Arena storage: sites, vertices and edges live in flat slices and are
//     addressed by stable integer handles (SiteID, VertexID, EdgeID) issued
//     at insertion. Handles never move or get reused within one Mesh.
//   - Adjacency queries: Neighbors, NeighborEdge, IncidentEdges.
//   - The Adjacency interface is the read-only view the algorithm packages
//     (region, plates, elevation, selection) accept; *Mesh implements it.
//
// # Why
//
// The subdivision itself (Voronoi/Delaunay construction) is the geometry
// provider's job, not this module's. The provider fills a Mesh once per
// generation run; topology is then immutable, only site positions may be
// edited via MoveSite (the provider re-derives geometry afterwards).
//
// # Edge orientation
//
// Every edge distinguishes a left and a right flank, for both its sites
// and its vertices (SideLeft, SideRight). Unbounded edges have NoVertex on
// one or both sides. The provider also records, per side, the endpoint
// position after clipping against the world rectangle and whether any part
// of the edge survived clipping (Visible).
//
// # Errors
//
//   - ErrSiteNotFound / ErrVertexNotFound / ErrEdgeNotFound — unknown handle.
//   - ErrSelfEdge — edge with identical flanking sites.
//   - ErrNotAdjacent — NeighborEdge on a site pair sharing no edge.
//
// Complexity: all queries are O(1) or O(d) in the site's degree.
package mesh
