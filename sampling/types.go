// Package sampling - sentinel errors and shared parameter types.
package sampling

import "errors"

var (
	// ErrNoLineageSource indicates a call with neither tree nor taxonomy.
	ErrNoLineageSource = errors.New("sampling: need a tree or a taxonomy")

	// ErrNilPartition indicates interval sampling without a partition.
	ErrNilPartition = errors.New("sampling: partition is nil")

	// ErrNoIntervalModel indicates interval sampling configured with neither
	// rates nor probabilities.
	ErrNoIntervalModel = errors.New("sampling: interval sampling needs rates or probabilities")

	// ErrParamLength indicates a parameter vector that is neither a single
	// broadcast value nor of full length for its ordering.
	ErrParamLength = errors.New("sampling: parameter vector length mismatch")

	// ErrNegativeRate indicates a sampling rate that is negative, NaN or
	// infinite.
	ErrNegativeRate = errors.New("sampling: rates must be non-negative and finite")

	// ErrProbabilityRange indicates a probability outside [0, 1].
	ErrProbabilityRange = errors.New("sampling: probabilities must lie in [0, 1]")

	// ErrNicheTolerance indicates a niche tolerance that is not positive.
	ErrNicheTolerance = errors.New("sampling: niche tolerance must be positive")

	// ErrProxyLength indicates a proxy curve shorter or longer than the
	// partition it describes.
	ErrProxyLength = errors.New("sampling: one proxy value per interval required")

	// ErrNonFinite indicates a NaN or infinite proxy-space value (proxy
	// curve or niche preferred value).
	ErrNonFinite = errors.New("sampling: proxy and niche values must be finite")

	// ErrPriorEdges indicates a prior collection carrying occurrences on
	// edges the taxonomy does not know.
	ErrPriorEdges = errors.New("sampling: prior collection references edges unknown to the taxonomy")

	// ErrEdgeOrdered indicates WithEdgeOrderedParams without tree-derived
	// lineages: the permutation is defined by tree edge order and node ids.
	ErrEdgeOrdered = errors.New("sampling: edge-ordered parameters require tree-derived lineages")
)

// Scalar wraps a single value as a broadcast parameter vector, the short
// form accepted wherever a per-lineage or per-interval vector is.
func Scalar(x float64) []float64 { return []float64{x} }

// Niche is a Gaussian environmental-preference model. Each field is a
// lineage-resolvable vector (one broadcast value, one entry per species in
// taxonomy order, or tree-edge order for tree-derived lineages):
//
//   - Peak: recovery probability at the preferred value, in [0, 1];
//   - Preferred: the proxy value of maximum recovery;
//   - Tolerance: the Gaussian width, > 0.
type Niche struct {
	Peak      []float64
	Preferred []float64
	Tolerance []float64
}
