// Package plates partitions a site mesh into tectonic plates and evaluates
// the stress carried by inter-plate boundaries.
//
// # What
//
//   - Generate: claims every reachable site for exactly one of N plates via
//     a pseudo-simultaneous flood fill (one shared FIFO frontier seeded
//     with all N seed sites at once), and records each edge whose two
//     flanking sites end up on different plates as a boundary.
//   - Partition.EvaluateStress: decomposes each boundary's relative plate
//     motion into fault-parallel and fault-orthogonal magnitudes and
//     classifies the boundary as convergent or divergent.
//
// # Guarantees
//
//   - Totality: a site reachable from any seed is claimed by exactly one
//     plate; claims are first-come and never rewritten.
//   - Boundary symmetry: an edge is registered iff its flanks resolve to
//     different plates, and at most once: discovering the same edge from
//     the other flank is an idempotent no-op.
//   - Sites unreachable from every seed stay at NoPlate. That is a valid
//     terminal state, not an error; the mesh is assumed connected.
//
// Seeds are the nearest sites to N uniformly random points in the world
// rectangle, re-rolled on collision. A configurable fraction of plates
// (default 0.7) is oceanic: denser crust with elevation bounds pinned near
// sea level; the rest are continental with a high elevation ceiling.
//
// All randomness flows through an explicit RNG: pass WithSeed or WithRand,
// or Generate fails with ErrNeedRandSource.
//
// Complexity: seeding O(N·S) worst case, flood fill O(S + E), stress
// evaluation O(B).
package plates
