// Package phylo: structural traversals (ancestor chains, descendant sets,
// most-recent-common-ancestor queries).
//
// All traversals are iterative (explicit stacks and queues) so pectinate
// trees of arbitrary depth are safe. Results are sorted ascending for
// deterministic downstream iteration.
package phylo

import (
	"fmt"
	"sort"
)

// Ancestors returns the chain from id (inclusive) up to the root, in walk
// order. Complexity: O(depth).
func (t *Tree) Ancestors(id int) ([]int, error) {
	if !t.Valid(id) {
		return nil, fmt.Errorf("phylo: Ancestors(%d): %w", id, ErrNodeNotFound)
	}
	chain := make([]int, 0, 8)
	for v := id; ; v = t.parent[v] {
		chain = append(chain, v)
		if v == t.root {
			return chain, nil
		}
	}
}

// MRCA returns the most recent common ancestor of the given nodes. A single
// node is its own MRCA. Complexity: O(k·depth).
func (t *Tree) MRCA(nodes ...int) (int, error) {
	if len(nodes) == 0 {
		return -1, fmt.Errorf("phylo: MRCA of no nodes: %w", ErrNodeNotFound)
	}
	for _, v := range nodes {
		if !t.Valid(v) {
			return -1, fmt.Errorf("phylo: MRCA(%d): %w", v, ErrNodeNotFound)
		}
	}

	// Mark the first node's chain, then fold the remaining nodes in: the
	// first marked node hit while walking up is the pairwise MRCA, which
	// then replaces the mark set. Linear in total chain length.
	onChain := make(map[int]struct{}, 16)
	mrca := nodes[0]
	for _, v := range nodes[1:] {
		for u := mrca; ; u = t.parent[u] {
			onChain[u] = struct{}{}
			if u == t.root {
				break
			}
		}
		for u := v; ; u = t.parent[u] {
			if _, hit := onChain[u]; hit {
				mrca = u
				break
			}
			if u == t.root {
				mrca = u
				break
			}
		}
		clear(onChain)
	}

	return mrca, nil
}

// TipSet returns all tips descended from id (id itself when it is a tip),
// ascending. Iterative post-order with an explicit stack.
// Complexity: O(subtree).
func (t *Tree) TipSet(id int) ([]int, error) {
	if !t.Valid(id) {
		return nil, fmt.Errorf("phylo: TipSet(%d): %w", id, ErrNodeNotFound)
	}
	var tips []int
	stack := []int{id}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.IsTip(v) {
			tips = append(tips, v)
			continue
		}
		stack = append(stack, t.children[v]...)
	}
	sort.Ints(tips)

	return tips, nil
}

// Descendants returns every node strictly below id, ascending.
// Complexity: O(subtree).
func (t *Tree) Descendants(id int) ([]int, error) {
	if !t.Valid(id) {
		return nil, fmt.Errorf("phylo: Descendants(%d): %w", id, ErrNodeNotFound)
	}
	var out []int
	stack := append([]int(nil), t.children[id]...)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, v)
		stack = append(stack, t.children[v]...)
	}
	sort.Ints(out)

	return out, nil
}

// TipLabelSet returns the labels of all tips below id, in ascending tip-id
// order. Convenience for cross-tree node matching. Complexity: O(subtree).
func (t *Tree) TipLabelSet(id int) ([]string, error) {
	tips, err := t.TipSet(id)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(tips))
	for i, v := range tips {
		labels[i] = t.labels[v]
	}

	return labels, nil
}

// MRCAOfLabels resolves labels to tips and returns their MRCA. Unknown
// labels yield ErrNodeNotFound. Complexity: O(k·T + k·depth).
func (t *Tree) MRCAOfLabels(labels ...string) (int, error) {
	if len(labels) == 0 {
		return -1, fmt.Errorf("phylo: MRCAOfLabels of no labels: %w", ErrNodeNotFound)
	}
	tips := make([]int, len(labels))
	for i, l := range labels {
		v, ok := t.TipWithLabel(l)
		if !ok {
			return -1, fmt.Errorf("phylo: label %q: %w", l, ErrNodeNotFound)
		}
		tips[i] = v
	}

	return t.MRCA(tips...)
}
