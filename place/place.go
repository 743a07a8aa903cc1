// Package place - attaching fossil occurrences to reference-tree clades.
//
// An occurrence knows the branch it was sampled on; downstream analyses
// want the smallest clade it can be attributed to. Placement walks from the
// sampled branch toward the root and stops at the first node that exists as
// a clade in the reference frame. After placement the Edge column of a row
// no longer names a branch: it names the reference-tree node the occurrence
// is attached to.
//
// Two reference frames are supported. Without a reference tree the frame is
// the complete tree itself and candidates are the crown MRCA plus its
// internal descendants. With one (typically the extant counterpart of a
// sampled tree), clades are matched across trees by shared tip labels and
// results are reported in the reference tree's node ids.
package place

import (
	"errors"
	"fmt"

	"github.com/paleogo/taphos/fossil"
	"github.com/paleogo/taphos/phylo"
	"github.com/paleogo/taphos/prune"
)

// Unplaced marks a row excluded by the cross-tree age filter in the
// node vector returned by Nodes.
const Unplaced = -1

var (
	// ErrNilTree indicates a nil complete tree argument.
	ErrNilTree = errors.New("place: nil tree")

	// ErrNilCollection indicates a nil occurrence collection argument.
	ErrNilCollection = errors.New("place: nil collection")

	// ErrNotBinary indicates a tree with a multifurcating internal node.
	ErrNotBinary = errors.New("place: tree must be strictly bifurcating")

	// ErrRootOccurrence indicates an occurrence on the pendant root edge,
	// which subtends no clade.
	ErrRootOccurrence = errors.New("place: occurrence on the root edge")

	// ErrUnplaceable indicates an occurrence whose ancestor chain holds no
	// candidate clade.
	ErrUnplaceable = errors.New("place: no candidate clade on the ancestor chain")
)

// Fossils attaches every occurrence in f to a clade. t is the tree f was
// sampled on; rows enter with Edge naming a branch of t and leave with Edge
// naming a node.
//
// With ref == nil the result stays in t's node space and the candidate set
// is t's crown MRCA plus its strict internal descendants. With a reference
// tree, occurrences older than t's crown are dropped first (the diagnostic
// hook reports the count), candidates are the t-side MRCAs of every ref
// clade sharing tip labels with t, and each hit is translated into ref's
// node space through a fresh MRCA over the shared labels.
//
// Both trees must be strictly bifurcating. Occurrences on the pendant root
// edge are rejected; an occurrence whose walk exhausts the chain without a
// hit is ErrUnplaceable, both wrapped with the row's position.
//
// Complexity: O(N·depth + F·depth) over N reference nodes and F rows.
func Fossils(f *fossil.Collection, t, ref *phylo.Tree, opts ...Option) (*fossil.Collection, error) {
	nodes, err := Nodes(f, t, ref, opts...)
	if err != nil {
		return nil, err
	}

	placed := make([]fossil.Occurrence, 0, f.Len())
	for i, o := range f.Rows() {
		if nodes[i] == Unplaced {
			continue
		}
		o.Edge = nodes[i]
		placed = append(placed, o)
	}

	return fossil.NewCollection(placed...)
}

// Nodes resolves the placement node for every row of f without building a
// collection: entry i is row i's clade node, or Unplaced for rows excluded
// by the cross-tree age filter. Frames, preconditions and errors are those
// of Fossils. Subsampling policies use this vector as their grouping key.
func Nodes(f *fossil.Collection, t, ref *phylo.Tree, opts ...Option) ([]int, error) {
	// 1. Preconditions.
	if f == nil {
		return nil, ErrNilCollection
	}
	if t == nil {
		return nil, ErrNilTree
	}
	cfg := resolveConfig(opts)
	if !t.IsBinary() {
		return nil, fmt.Errorf("place: complete tree: %w", ErrNotBinary)
	}
	if ref != nil && !ref.IsBinary() {
		return nil, fmt.Errorf("place: reference tree: %w", ErrNotBinary)
	}

	// 2. Self-referential frame: walk within t.
	nodes := make([]int, f.Len())
	if ref == nil {
		cand, err := selfCandidates(t)
		if err != nil {
			return nil, err
		}
		for i, o := range f.Rows() {
			node, err := walk(t, cand, i, o)
			if err != nil {
				return nil, err
			}
			nodes[i] = node
		}

		return nodes, nil
	}

	// 3. Cross-tree frame: mark rows that pre-date the crown, walk to a
	//    t-side candidate, translate the hit into ref's node space.
	crown, err := prune.CrownMRCA(t)
	if err != nil {
		return nil, err
	}
	crownAge := t.Age(crown)
	cand, err := refCandidates(t, ref)
	if err != nil {
		return nil, err
	}

	dropped := 0
	for i, o := range f.Rows() {
		if o.MinAge > crownAge {
			nodes[i] = Unplaced
			dropped++
			continue
		}
		node, err := walk(t, cand, i, o)
		if err != nil {
			return nil, err
		}
		if nodes[i], err = translate(t, ref, node); err != nil {
			return nil, err
		}
	}
	if dropped > 0 {
		cfg.diag(fmt.Sprintf("place: dropped %d occurrences older than the crown", dropped))
	}

	return nodes, nil
}

// selfCandidates returns the crown MRCA of t and every internal node
// strictly below it.
func selfCandidates(t *phylo.Tree) (map[int]struct{}, error) {
	crown, err := prune.CrownMRCA(t)
	if err != nil {
		return nil, err
	}
	desc, err := t.Descendants(crown)
	if err != nil {
		return nil, err
	}
	cand := make(map[int]struct{}, len(desc)/2+1)
	cand[crown] = struct{}{}
	for _, v := range desc {
		if !t.IsTip(v) {
			cand[v] = struct{}{}
		}
	}

	return cand, nil
}

// refCandidates matches every internal clade of ref into t: the candidate
// for a clade is the MRCA in t of the tip labels the two trees share.
// Clades sharing no label with t contribute nothing.
func refCandidates(t, ref *phylo.Tree) (map[int]struct{}, error) {
	cand := make(map[int]struct{}, ref.NodeCount()-ref.TipCount())
	for v := ref.TipCount(); v < ref.NodeCount(); v++ {
		labels, err := ref.TipLabelSet(v)
		if err != nil {
			return nil, err
		}
		shared := sharedLabels(labels, t)
		if len(shared) == 0 {
			continue
		}
		mrca, err := t.MRCAOfLabels(shared...)
		if err != nil {
			return nil, err
		}
		cand[mrca] = struct{}{}
	}

	return cand, nil
}

// walk climbs from row i's branch toward the root and returns the first
// candidate node. The chain starts at the branch's child node, so a fossil
// on an internal branch can resolve to that branch's own clade.
func walk(t *phylo.Tree, cand map[int]struct{}, i int, o fossil.Occurrence) (int, error) {
	if o.Edge == t.Root() {
		return -1, fmt.Errorf("place: row %d: %w", i, ErrRootOccurrence)
	}
	chain, err := t.Ancestors(o.Edge)
	if err != nil {
		return -1, fmt.Errorf("place: row %d: %w", i, err)
	}
	for _, v := range chain {
		if _, ok := cand[v]; ok {
			return v, nil
		}
	}

	return -1, fmt.Errorf("place: row %d edge %d: %w", i, o.Edge, ErrUnplaceable)
}

// translate maps a node of t into ref's space: the MRCA in ref of the tip
// labels below the node that ref also carries. Never empty for a node a
// ref clade produced.
func translate(t, ref *phylo.Tree, node int) (int, error) {
	labels, err := t.TipLabelSet(node)
	if err != nil {
		return -1, err
	}

	return ref.MRCAOfLabels(sharedLabels(labels, ref)...)
}

// sharedLabels filters labels down to those naming a tip of other.
func sharedLabels(labels []string, other *phylo.Tree) []string {
	shared := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := other.TipWithLabel(l); ok {
			shared = append(shared, l)
		}
	}

	return shared
}
