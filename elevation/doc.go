// Package elevation diffuses elevation across the site mesh from seed
// sites, never lowering what a site already holds.
//
// # What
//
//   - Field: per-site elevation state. Raise keeps the maximum ever
//     assigned and flags the site dirty so consumers know derived geometry
//     is stale.
//   - Propagate: one shared FIFO flood fill over all seeds. Dequeued
//     elevation raises the site; each yet-unvisited neighbor is enqueued
//     exactly once (first claim wins) with the parent elevation scaled by
//     a perturbation factor, and only while the parent exceeds the cutoff.
//   - BoundarySeeds: derives seed elevations from evaluated plate
//     boundaries. Convergent, orthogonal-dominant boundaries uplift toward
//     the higher plate's ceiling by the ratio orthogonal/|stress|;
//     parallel-dominant or divergent ones interpolate at quarter strength
//     by parallel/|stress|; everything else settles at the average of the
//     two baselines. A site targeted by several boundaries keeps only its
//     highest candidate.
//
// # Modes
//
// The perturbation factor is either the fixed decay constant
// (deterministic "blob" mode, the default, used for synthetic seeding and
// tests) or rng·density + (1.1 − density) with the neighbor's plate
// density (stochastic mode, enabled by WithDensity; requires an RNG).
// Denser oceanic crust pushes the factor toward decay, so elevation dies
// out quickly over oceans.
//
// Repeated passes over the same field accumulate: elevation is monotone
// non-decreasing across passes, whatever the seed values.
//
// Complexity: O(S + E) per pass, O(S) memory.
package elevation
