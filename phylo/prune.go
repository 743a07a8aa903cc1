package phylo

import (
	"fmt"
	"sort"
)

// KeepTips returns a new tree containing only the given tips. Internal
// nodes left with a single surviving child are spliced out and their branch
// lengths merged, so the result is a proper tree again. The surviving tips
// keep their relative order and labels but are renumbered 0..k-1; internal
// nodes are renumbered in preorder. The pendant root edge survives only when
// the root itself survives; a new root sitting below the old one starts the
// tree afresh, with the dropped stem discarded.
//
// Complexity: O(N + k·depth).
func (t *Tree) KeepTips(tips []int) (*Tree, error) {
	// 1. Validate and normalize the keep list: tips only, deduplicated,
	//    ascending. Two survivors are the minimum for a valid tree.
	keep, err := t.normalizeTips(tips)
	if err != nil {
		return nil, err
	}
	if len(keep) < 2 {
		return nil, fmt.Errorf("phylo: KeepTips leaves %d tip(s): %w", len(keep), ErrTooFewTips)
	}
	if len(keep) == t.tipCount {
		return t.Clone(), nil
	}

	// 2. Mark every kept tip and all of its ancestors.
	marked := make([]bool, t.NodeCount())
	for _, v := range keep {
		for u := v; !marked[u]; u = t.parent[u] {
			marked[u] = true
			if u == t.root {
				break
			}
		}
	}

	// 3. Collect the surviving children of each marked node, ascending.
	keptKids := make([][]int, t.NodeCount())
	for v := t.tipCount; v < t.NodeCount(); v++ {
		if !marked[v] {
			continue
		}
		for _, c := range t.children[v] {
			if marked[c] {
				keptKids[v] = append(keptKids[v], c)
			}
		}
	}

	// 4. Find the new root: descend from the old root through nodes with a
	//    single surviving child. With two or more kept tips the descent
	//    always stops at a junction.
	newRoot := t.root
	for !t.IsTip(newRoot) && len(keptKids[newRoot]) == 1 {
		newRoot = keptKids[newRoot][0]
	}

	// 5. Walk the surviving topology from the new root, splicing out
	//    single-child chains by summing their branch lengths. Junctions are
	//    numbered in preorder: tips take 0..k-1 by original order, internal
	//    nodes count up from k.
	newID := make(map[int]int, 2*len(keep))
	for i, v := range keep {
		newID[v] = i
	}
	next := len(keep)
	type rawEdge struct {
		parent, child int // original ids
		length        float64
	}
	var raw []rawEdge
	stack := []int{newRoot}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !t.IsTip(v) {
			newID[v] = next
			next++
		}
		// Push surviving children in reverse so they pop ascending.
		kids := keptKids[v]
		for i := len(kids) - 1; i >= 0; i-- {
			c, sum := kids[i], t.length[kids[i]]
			for !t.IsTip(c) && len(keptKids[c]) == 1 {
				c = keptKids[c][0]
				sum += t.length[c]
			}
			raw = append(raw, rawEdge{parent: v, child: c, length: sum})
			stack = append(stack, c)
		}
	}

	// 6. Materialize the pruned tree through the validating constructor.
	edges := make([]Edge, len(raw))
	for i, e := range raw {
		edges[i] = Edge{Parent: newID[e.parent], Child: newID[e.child], Length: e.length}
	}
	labels := make([]string, len(keep))
	for i, v := range keep {
		labels[i] = t.labels[v]
	}
	opts := []Option{WithTipLabels(labels)}
	if newRoot == t.root && t.hasRootEdge {
		opts = append(opts, WithRootEdge(t.rootEdge))
	}

	return New(len(keep), edges, opts...)
}

// DropTips returns a new tree with the given tips removed. It is the
// complement of KeepTips. Complexity: O(N + k·depth).
func (t *Tree) DropTips(tips []int) (*Tree, error) {
	drop, err := t.normalizeTips(tips)
	if err != nil {
		return nil, err
	}
	gone := make(map[int]struct{}, len(drop))
	for _, v := range drop {
		gone[v] = struct{}{}
	}
	keep := make([]int, 0, t.tipCount-len(drop))
	for v := 0; v < t.tipCount; v++ {
		if _, dead := gone[v]; !dead {
			keep = append(keep, v)
		}
	}

	return t.KeepTips(keep)
}

// normalizeTips validates that every id names a tip, then returns the set
// deduplicated and sorted ascending.
func (t *Tree) normalizeTips(tips []int) ([]int, error) {
	seen := make(map[int]struct{}, len(tips))
	out := make([]int, 0, len(tips))
	for _, v := range tips {
		if !t.Valid(v) {
			return nil, fmt.Errorf("phylo: tip %d: %w", v, ErrNodeNotFound)
		}
		if !t.IsTip(v) {
			return nil, fmt.Errorf("phylo: node %d: %w", v, ErrNotATip)
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}
