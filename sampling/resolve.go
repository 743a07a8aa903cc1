// Package sampling - lineage-source and parameter-vector resolution.
//
// Every model resolves its subjects the same way: an explicit taxonomy wins,
// a bare tree is promoted to the one-species-per-edge taxonomy, and
// parameter vectors are mapped onto the resulting species order before any
// draw happens.
package sampling

import (
	"fmt"

	"github.com/paleogo/taphos/phylo"
	"github.com/paleogo/taphos/taxonomy"
)

// lineages picks the effective taxonomy. Exactly one of three outcomes:
//
//  1. both inputs nil: ErrNoLineageSource;
//  2. taxonomy supplied: it wins; a tree supplied alongside is ignored for
//     lineage purposes and the diagnostic hook is told;
//  3. tree only: the derived one-species-per-edge taxonomy.
//
// derived reports outcome 3, which switches parameter vectors to tree edge
// order.
func lineages(tree *phylo.Tree, tax *taxonomy.Taxonomy, cfg *config) (tx *taxonomy.Taxonomy, derived bool, err error) {
	switch {
	case tax == nil && tree == nil:
		return nil, false, ErrNoLineageSource
	case tax != nil:
		if tree != nil {
			cfg.diag("sampling: taxonomy and tree both supplied; taxonomy drives lineages")
		}

		return tax, false, nil
	default:
		tx, err = taxonomy.FromTree(tree)
		if err != nil {
			return nil, false, err
		}

		return tx, true, nil
	}
}

// lineageParams resolves a per-lineage parameter vector into one value per
// species, aligned with tax.Species() order.
//
// Accepted shapes:
//   - length 1: broadcast to every species;
//   - taxonomy order (user-supplied taxonomy): length == NumSpecies,
//     aligned with Species();
//   - tree edge order (tree-derived lineages): entry 0 belongs to the
//     pendant root edge when the tree has one (otherwise a zero is
//     prepended internally), the remaining entries follow the tree's edge
//     list; the vector is permuted into node-id order and re-indexed by the
//     derived species ids.
//
// Complexity: O(N).
func lineageParams(vec []float64, name string, tree *phylo.Tree, tax *taxonomy.Taxonomy, edgeOrder bool) ([]float64, error) {
	order := tax.Species()

	// 1. Broadcast form.
	if len(vec) == 1 {
		out := make([]float64, len(order))
		for i := range out {
			out[i] = vec[0]
		}

		return out, nil
	}

	// 2. Taxonomy-ordered form.
	if !edgeOrder {
		if len(vec) != len(order) {
			return nil, fmt.Errorf("sampling: %s has %d entries for %d species: %w",
				name, len(vec), len(order), ErrParamLength)
		}

		return append([]float64(nil), vec...), nil
	}

	// 3. Tree-edge-ordered form. The derived taxonomy guarantees species
	//    id == node id, so the node permutation doubles as the species
	//    re-index.
	edges := tree.Edges()
	_, hasStem := tree.RootEdge()
	want := len(edges)
	if hasStem {
		want++
	}
	if len(vec) != want {
		return nil, fmt.Errorf("sampling: %s has %d entries for %d edge positions: %w",
			name, len(vec), want, ErrParamLength)
	}
	w := vec
	if !hasStem {
		w = append([]float64{0}, vec...)
	}
	nodeParam := make([]float64, tree.NodeCount())
	nodeParam[tree.Root()] = w[0]
	for i, e := range edges {
		nodeParam[e.Child] = w[1+i]
	}
	out := make([]float64, len(order))
	for i, sp := range order {
		out[i] = nodeParam[sp]
	}

	return out, nil
}

// intervalParams resolves an interval-indexed vector (youngest interval
// first) against a partition of count intervals: length 1 broadcasts,
// length count passes through. Complexity: O(count).
func intervalParams(vec []float64, name string, count int) ([]float64, error) {
	switch len(vec) {
	case 1:
		out := make([]float64, count)
		for i := range out {
			out[i] = vec[0]
		}

		return out, nil
	case count:
		return append([]float64(nil), vec...), nil
	default:
		return nil, fmt.Errorf("sampling: %s has %d entries for %d intervals: %w",
			name, len(vec), count, ErrParamLength)
	}
}
