// Package orogen generates planetary terrain over a planar subdivision of
// sites by simulating simplified plate tectonics and diffusing elevation
// across the resulting graph.
//
// The pipeline, leaves first:
//
//	mesh/      — the adjacency graph handed over by the geometry provider:
//	             sites, vertices, edges, all addressed by integer handles
//	geom/      — clip rectangle, outcodes, winding, small vector helpers
//	region/    — closed, counter-clockwise, boundary-clipped cell polygons
//	             rebuilt from unordered edge sets
//	plates/    — multi-seed flood-fill partition into tectonic plates and
//	             per-boundary stress/divergence evaluation
//	elevation/ — elevation flood fill with decay, cutoff, and
//	             preserve-highest semantics, seeded from plate boundaries
//	selection/ — dynamic unions of selected cells and their outer polygon
//	builder/   — synthetic meshes for tests and examples
//	config/    — YAML generation presets
//
// Session, in this package, owns one generation context (mesh, preset,
// RNG, and the derived partition, elevation field, and polygon cache)
// and replaces all derived state wholesale on each Generate call. There
// is no process-wide state: every operation hangs off a Session or takes
// its inputs explicitly.
//
// None of the heuristics here aim for geophysical accuracy; stress and
// uplift are deliberately simple rules that produce plausible terrain.
// Construction of the subdivision itself, rendering, and persistence sit
// outside this module.
package orogen
