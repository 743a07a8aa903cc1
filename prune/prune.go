// Package prune - stem and crown reductions of sampled trees.
//
// A tree mixing extinct and extant leaves has two natural reductions: the
// extant-only tree (drop every leaf that falls short of the present) and
// the crown group (drop every lineage attached below the extant MRCA). The
// functions here compute both, plus the matching occurrence filter.
//
// Extant is decided by depth: a tip is extant when its age is within
// tolerance of zero, with the tolerance derived from the shortest branch.
// The deepest tip always qualifies, so every tree has a crown.
package prune

import (
	"errors"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/paleogo/taphos/fossil"
	"github.com/paleogo/taphos/phylo"
)

var (
	// ErrNilTree indicates a nil tree argument.
	ErrNilTree = errors.New("prune: nil tree")

	// ErrNilCollection indicates a nil occurrence collection argument.
	ErrNilCollection = errors.New("prune: nil collection")
)

// depthTolDivisor scales the shortest branch into the depth comparison
// tolerance: a tip within MinEdgeLength/depthTolDivisor of the present is
// extant.
const depthTolDivisor = 100

// FossilTips returns the tips that do not reach the present, ascending.
// An ultrametric tree has none; so has a nil tree. Complexity: O(T).
func FossilTips(t *phylo.Tree) []int {
	if t == nil {
		return nil
	}
	tol := t.MinEdgeLength() / depthTolDivisor
	var tips []int
	for v := 0; v < t.TipCount(); v++ {
		if !scalar.EqualWithinAbs(t.Age(v), 0, tol) {
			tips = append(tips, v)
		}
	}

	return tips
}

// extantTips returns the complement of FossilTips, ascending. Never empty:
// ages anchor at the deepest tip, which is extant by construction.
func extantTips(t *phylo.Tree) []int {
	fossils := FossilTips(t)
	extant := make([]int, 0, t.TipCount()-len(fossils))
	j := 0
	for v := 0; v < t.TipCount(); v++ {
		if j < len(fossils) && fossils[j] == v {
			j++
			continue
		}
		extant = append(extant, v)
	}

	return extant
}

// PruneFossilTips drops every fossil tip, leaving the extant-only tree. An
// input without fossil tips is returned unchanged and the diagnostic hook
// is told. Fails with phylo.ErrTooFewTips when fewer than two extant tips
// remain. Complexity: O(N).
func PruneFossilTips(t *phylo.Tree, opts ...Option) (*phylo.Tree, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	cfg := resolveConfig(opts)

	fossils := FossilTips(t)
	if len(fossils) == 0 {
		cfg.diag("prune: no fossil tips, tree is already extant-only")

		return t, nil
	}

	return t.DropTips(fossils)
}

// CrownMRCA returns the most recent common ancestor of the extant tips. A
// single extant tip is its own crown. Complexity: O(T·depth).
func CrownMRCA(t *phylo.Tree) (int, error) {
	if t == nil {
		return -1, ErrNilTree
	}

	return t.MRCA(extantTips(t)...)
}

// RemoveStemLineages reduces the tree to its crown group: every tip not
// descended from the extant MRCA is dropped. Fossil tips inside the crown
// survive. An input whose tips all sit in the crown is returned unchanged
// and the diagnostic hook is told. Complexity: O(N·depth).
func RemoveStemLineages(t *phylo.Tree, opts ...Option) (*phylo.Tree, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	cfg := resolveConfig(opts)

	mrca, err := CrownMRCA(t)
	if err != nil {
		return nil, err
	}
	crown, err := t.TipSet(mrca)
	if err != nil {
		return nil, err
	}
	if len(crown) == t.TipCount() {
		cfg.diag("prune: no stem lineages, every tip is in the crown")

		return t, nil
	}

	return t.KeepTips(crown)
}

// RemoveStemFossils filters a collection down to occurrences on crown
// edges. An edge is crown when its child node descends strictly from the
// extant MRCA; the MRCA's own subtending edge pre-dates the crown split and
// counts as stem, as does any edge the tree does not know. Always returns a
// new collection; a filter that drops nothing tells the diagnostic hook.
// Complexity: O(N + F).
func RemoveStemFossils(f *fossil.Collection, t *phylo.Tree, opts ...Option) (*fossil.Collection, error) {
	if f == nil {
		return nil, ErrNilCollection
	}
	if t == nil {
		return nil, ErrNilTree
	}
	cfg := resolveConfig(opts)

	mrca, err := CrownMRCA(t)
	if err != nil {
		return nil, err
	}
	desc, err := t.Descendants(mrca)
	if err != nil {
		return nil, err
	}
	crown := make(map[int]struct{}, len(desc))
	for _, v := range desc {
		crown[v] = struct{}{}
	}

	kept := make([]fossil.Occurrence, 0, f.Len())
	for _, o := range f.Rows() {
		if _, ok := crown[o.Edge]; ok {
			kept = append(kept, o)
		}
	}
	if len(kept) == f.Len() {
		cfg.diag("prune: no stem occurrences to remove")
	}

	return fossil.NewCollection(kept...)
}
