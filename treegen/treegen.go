// Package treegen - canned phylogeny shapes for demos and benchmarks.
//
// Every generator returns a freshly validated phylo.Tree with unit or
// small-integer edge lengths, so ages and clade boundaries can be checked
// by hand. Shapes are deterministic: the same parameters always produce
// the same node numbering and lengths. Options are forwarded to phylo.New
// untouched, so labels and a pendant root edge compose with any shape.
package treegen

import (
	"errors"
	"fmt"

	"github.com/paleogo/taphos/phylo"
)

// ErrTooFewTips indicates a size parameter below the smallest shape the
// generator can produce. Branch with errors.Is.
var ErrTooFewTips = errors.New("treegen: parameter too small")

// Caterpillar returns an ultrametric comb with the given number of tips:
// a spine of unit-length internal edges with one pendant tip at every
// spine node, pendant lengths padded so every tip reaches the present.
// Tree height is tips-1 and total branch length grows quadratically,
// which makes the comb a convenient stress shape for samplers.
//
// Complexity: O(tips log tips) time, O(tips) space.
func Caterpillar(tips int, opts ...phylo.Option) (*phylo.Tree, error) {
	if tips < 2 {
		return nil, fmt.Errorf("treegen: Caterpillar(%d): %w", tips, ErrTooFewTips)
	}
	edges := make([]phylo.Edge, 0, 2*tips-2)

	// 1. Spine of unit edges: internal tips+i feeds internal tips+i+1.
	for i := 0; i < tips-2; i++ {
		edges = append(edges, phylo.Edge{Parent: tips + i, Child: tips + i + 1, Length: 1})
	}
	// 2. One pendant tip per spine node, padded to equal depth.
	for i := 0; i < tips-1; i++ {
		edges = append(edges, phylo.Edge{Parent: tips + i, Child: i, Length: float64(tips - 1 - i)})
	}
	// 3. The deepest spine node carries the last tip on a unit edge.
	edges = append(edges, phylo.Edge{Parent: 2*tips - 2, Child: tips - 1, Length: 1})

	return phylo.New(tips, edges, opts...)
}

// Balanced returns the complete binary tree over 2^levels tips with unit
// edge lengths everywhere, so every tip sits at age zero and the root at
// age levels. Internal ids are assigned children-first, root last.
//
// Complexity: O(tips log tips) time, O(tips) space.
func Balanced(levels int, opts ...phylo.Option) (*phylo.Tree, error) {
	if levels < 1 {
		return nil, fmt.Errorf("treegen: Balanced(%d): %w", levels, ErrTooFewTips)
	}
	tips := 1 << levels
	edges := make([]phylo.Edge, 0, 2*tips-2)
	next := tips

	// build glues the subtree over tips [lo,hi) and returns its root id.
	var build func(lo, hi int) int
	build = func(lo, hi int) int {
		if hi-lo == 1 {
			return lo
		}
		mid := (lo + hi) / 2
		left := build(lo, mid)
		right := build(mid, hi)
		id := next
		next++
		edges = append(edges,
			phylo.Edge{Parent: id, Child: left, Length: 1},
			phylo.Edge{Parent: id, Child: right, Length: 1},
		)
		return id
	}
	build(0, tips)

	return phylo.New(tips, edges, opts...)
}

// Star returns the star tree: one internal root with every tip attached on
// a unit-length edge. For three or more tips the root is multifurcating,
// which makes Star the stock counterexample for binary-only operations.
//
// Complexity: O(tips log tips) time, O(tips) space.
func Star(tips int, opts ...phylo.Option) (*phylo.Tree, error) {
	if tips < 2 {
		return nil, fmt.Errorf("treegen: Star(%d): %w", tips, ErrTooFewTips)
	}
	edges := make([]phylo.Edge, 0, tips)
	for i := 0; i < tips; i++ {
		edges = append(edges, phylo.Edge{Parent: tips, Child: i, Length: 1})
	}

	return phylo.New(tips, edges, opts...)
}
