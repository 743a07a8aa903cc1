// Package subsample - per-clade selection policies.
//
// These policies reduce an occurrence collection to the stratigraphically
// informative rows of each clade: its oldest record, its youngest, or both.
// Rows are grouped by their placement node (place.Nodes); placement is only
// the grouping key, and selected rows keep their original branch ids.
package subsample

import (
	"sort"

	"github.com/paleogo/taphos/fossil"
	"github.com/paleogo/taphos/phylo"
	"github.com/paleogo/taphos/place"
)

// OldestPerClade keeps the single oldest row (largest MaxAge) of every
// clade, ties resolved to the earliest row. t and ref set the placement
// frame as in place.Fossils; rows the cross-tree age filter excludes belong
// to no clade and are never selected. The result is a subset of the input
// rows in input order. Complexity: placement plus O(n log n).
func OldestPerClade(f *fossil.Collection, t, ref *phylo.Tree, opts ...Option) (*fossil.Collection, error) {
	return perClade(f, t, ref, opts, oldest)
}

// YoungestPerClade keeps the single youngest row (smallest MinAge) of every
// clade, ties resolved to the earliest row. Framing and result order as in
// OldestPerClade.
func YoungestPerClade(f *fossil.Collection, t, ref *phylo.Tree, opts ...Option) (*fossil.Collection, error) {
	return perClade(f, t, ref, opts, youngest)
}

// OldestAndYoungestPerClade keeps both ends of every clade's record, one
// row only when the same row is both. Framing and result order as in
// OldestPerClade.
func OldestAndYoungestPerClade(f *fossil.Collection, t, ref *phylo.Tree, opts ...Option) (*fossil.Collection, error) {
	return perClade(f, t, ref, opts, oldestAndYoungest)
}

// pick selects the kept indexes of one clade's group. Group indexes arrive
// ascending.
type pick func(rows []fossil.Occurrence, group []int) []int

func perClade(f *fossil.Collection, t, ref *phylo.Tree, opts []Option, pickRows pick) (*fossil.Collection, error) {
	cfg := resolveConfig(opts)
	nodes, err := placementNodes(f, t, ref, &cfg)
	if err != nil {
		return nil, err
	}

	// 1. Group row indexes by placement node.
	rows := f.Rows()
	groups := make(map[int][]int)
	for i, node := range nodes {
		if node == place.Unplaced {
			continue
		}
		groups[node] = append(groups[node], i)
	}

	// 2. Select per group, then restore input order.
	keep := make([]int, 0, 2*len(groups))
	for _, group := range groups {
		keep = append(keep, pickRows(rows, group)...)
	}
	sort.Ints(keep)

	kept := make([]fossil.Occurrence, len(keep))
	for i, j := range keep {
		kept[i] = rows[j]
	}

	return fossil.NewCollection(kept...)
}

// placementNodes forwards the diagnostic hook into the placement call when
// one is installed.
func placementNodes(f *fossil.Collection, t, ref *phylo.Tree, cfg *config) ([]int, error) {
	if cfg.diagnostic != nil {
		return place.Nodes(f, t, ref, place.WithDiagnostic(cfg.diagnostic))
	}

	return place.Nodes(f, t, ref)
}

func oldest(rows []fossil.Occurrence, group []int) []int {
	best := group[0]
	for _, i := range group[1:] {
		if rows[i].MaxAge > rows[best].MaxAge {
			best = i
		}
	}

	return []int{best}
}

func youngest(rows []fossil.Occurrence, group []int) []int {
	best := group[0]
	for _, i := range group[1:] {
		if rows[i].MinAge < rows[best].MinAge {
			best = i
		}
	}

	return []int{best}
}

func oldestAndYoungest(rows []fossil.Occurrence, group []int) []int {
	o, y := oldest(rows, group)[0], youngest(rows, group)[0]
	if o == y {
		return []int{o}
	}

	return []int{o, y}
}
