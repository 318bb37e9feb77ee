// Package region reconstructs closed cell polygons from unordered edge
// sets.
//
// # What
//
//   - Loop: given the edges bounding a region (one site's incident edges,
//     or the outer edges of a site selection) and the world rectangle,
//     produce an ordered, simple, counter-clockwise polygon, or an empty
//     result when no edge is visible.
//   - Polygon: convenience wrapper running Loop over a single site's
//     incident edges.
//   - Cache: per-site polygon memoization for a fixed mesh and clip
//     rectangle, invalidated by the caller when inputs change.
//
// # How
//
// Extraction has three stages. Invisible edges are discarded first. The
// survivors are chained greedily by matching free endpoint vertices,
// recording per edge which flank faces the direction of travel. The chain
// is then walked: wherever two consecutive clipped endpoints do not
// coincide within Epsilon, both points lie on the world-rectangle border
// and one or two rectangle corners are inserted between them, picked by a
// side bitmask test (adjacent sides share one corner; opposite sides take
// the two corners on the shorter perimeter path). The loop is closed the
// same way, and finally reversed if the shoelace area comes out negative.
//
// # Errors
//
//   - ErrOpenLoop — the edge set cannot be chained into one loop. This is
//     an input-contract violation by the geometry provider, not a
//     recoverable condition.
//
// Complexity: O(k²) worst case for chaining k edges (k is a cell degree,
// typically single digits), O(k) for clipping and winding.
package region
