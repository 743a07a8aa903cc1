// Package sampling simulates fossil recovery along the lineages of a
// phylogenetic tree.
//
// It provides three sampling models, one exported function per model, all
// sharing the same validation, lineage resolution and random-number
// discipline:
//
//   - Poisson, the homogeneous Poisson process: each lineage accumulates
//     occurrences at a constant per-lineage rate over its whole lifespan.
//     Complexity: O(S + F·k) for S lineages, F occurrences over segments k.
//
//   - Intervals, piecewise-constant sampling over a strata.Partition,
//     either as per-interval Poisson rates or as per-interval recovery
//     probabilities (at most one occurrence per lineage per interval).
//
//   - Environment, per-interval recovery probability computed from an
//     environmental proxy curve through a Gaussian niche response,
//     optionally converted to Poisson rates.
//
// Lineages come from a taxonomy.Taxonomy, or are derived on the fly from a
// bare tree (every edge its own species). Parameter vectors are either a
// single broadcast value, aligned with the taxonomy's species order, or,
// for tree-derived lineages, given in tree edge order with the pendant root
// edge first.
//
// Reproducibility: every draw flows from one rand.Source configured via
// WithSeed or WithRand; the iteration order (species in first-appearance
// order, intervals young to old, counts before ages before accept/reject
// uniforms) is fixed, so a seed pins the full output.
//
// Errors:
//   - ErrNoLineageSource:  neither tree nor taxonomy supplied.
//   - ErrNilPartition:     interval sampling without a partition.
//   - ErrNoIntervalModel:  interval sampling without rates or probabilities.
//   - ErrParamLength:      a parameter vector fits neither broadcast nor
//     full length.
//   - ErrNegativeRate:     a rate is negative, NaN or infinite.
//   - ErrProbabilityRange: a probability (or niche peak) is outside [0, 1].
//   - ErrNicheTolerance:   a niche tolerance is not positive.
//   - ErrProxyLength:      the proxy curve does not cover every interval.
//   - ErrNonFinite:        a proxy or niche preferred value is NaN or
//     infinite.
//   - ErrPriorEdges:       a prior collection references unknown edges.
//   - ErrEdgeOrdered:      edge-ordered parameters without tree-derived
//     lineages.
package sampling
