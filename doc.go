// Package taphos is your in-memory laboratory for simulating fossil
// records over phylogenetic trees, from immutable tree primitives to
// environment-driven preservation models and record thinning.
//
// 🦴 What is taphos?
//
//	A deterministic, reproducible simulation toolkit that brings together:
//		• Core primitives: immutable rooted trees, node ages, clades, pruning
//		• Lineage durations: per-species time spans derived from tree shape
//		• Stratigraphy: interval partitions of the geological time axis
//		• Preservation models: homogeneous Poisson, per-interval rates and
//		  recovery probabilities, Gaussian environmental niches
//		• Record surgery: stem removal, occurrence placement, subsampling
//
// ✨ Why choose taphos?
//
//   - Reproducible runs: one seed, one fossil record, byte for byte
//   - Rock-solid guarantees: validated inputs, sentinel errors, in-code docs
//   - Pure Go: no cgo, draws come from math/rand/v2 and gonum
//   - Extensible: functional options (WithSeed, WithDiagnostic...) on every model
//
// Under the hood, everything is organized under nine subpackages:
//
//	phylo/     - immutable rooted trees: ages, MRCA, tip pruning
//	taxonomy/  - species lineages as edge-aligned time segments
//	strata/    - interval partitions of the time axis
//	fossil/    - occurrence rows and immutable fossil collections
//	sampling/  - Poisson, interval and environment preservation models
//	prune/     - fossil-tip removal and stem-lineage pruning
//	place/     - assignment of occurrences to clades of a second tree
//	subsample/ - uniform, binned and per-clade record thinning
//	treegen/   - canned tree shapes for demos and benchmarks
//
// Quick ASCII example:
//
//	          ┌───── t1
//	     ┌────┤
//	─────┤    └── t2
//	     └──────── t3
//
//	a rooted tree with three tips; ages run backward from the youngest
//	tip, so t2 died out before t1 and t3 were sampled.
//
// Next up: clade-conditioned preservation, lineage-through-time
// summaries and beyond. Each subpackage carries its own doc with the
// full model catalogue and worked examples.
//
//	go get github.com/paleogo/taphos
package taphos
