// Package phylo: Tree constructor and structural validation.
//
// New performs the full contract check before any derived index is built:
// contiguous tips-first numbering, single root, single parent per node,
// positive lengths, connectivity. All failures are sentinel errors from
// types.go; no partially-initialized Tree ever escapes.
package phylo

import (
	"fmt"
	"sort"
)

// New constructs an immutable Tree from tipCount and its edge list.
//
// Contract:
//   - tipCount ≥ 2; ids 0..tipCount-1 are tips, the rest internal nodes.
//   - edges is one entry per non-root node (its edge to the parent), in any
//     order; node ids must be contiguous 0..N-1.
//   - every Length > 0; an optional pendant root edge is supplied via
//     WithRootEdge (length ≥ 0).
//
// Complexity: O(N log N) time (children lists are sorted), O(N) space.
func New(tipCount int, edges []Edge, opts ...Option) (*Tree, error) {
	// 1. Resolve options.
	var cfg treeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Cheap shape checks before touching ids.
	if tipCount < 2 {
		return nil, ErrTooFewTips
	}
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}
	if cfg.hasRootEdge && cfg.rootEdge < 0 {
		return nil, fmt.Errorf("phylo: root edge %v: %w", cfg.rootEdge, ErrRootEdgeLength)
	}

	// 3. One edge per non-root node: N = len(edges)+1.
	nodeCount := len(edges) + 1
	if tipCount >= nodeCount {
		return nil, ErrNodeNumbering
	}

	t := &Tree{
		tipCount:    tipCount,
		edges:       append([]Edge(nil), edges...),
		rootEdge:    cfg.rootEdge,
		hasRootEdge: cfg.hasRootEdge,
		parent:      make([]int, nodeCount),
		length:      make([]float64, nodeCount),
		children:    make([][]int, nodeCount),
	}
	for i := range t.parent {
		t.parent[i] = -1
	}

	// 4. Wire parents/children, rejecting out-of-range ids, duplicate
	//    parents, and non-positive lengths.
	for _, e := range t.edges {
		if e.Parent < 0 || e.Parent >= nodeCount || e.Child < 0 || e.Child >= nodeCount || e.Parent == e.Child {
			return nil, fmt.Errorf("phylo: edge %d->%d: %w", e.Parent, e.Child, ErrNodeNumbering)
		}
		if e.Length <= 0 {
			return nil, fmt.Errorf("phylo: edge %d->%d length %v: %w", e.Parent, e.Child, e.Length, ErrEdgeLength)
		}
		if t.parent[e.Child] != -1 {
			return nil, fmt.Errorf("phylo: node %d: %w", e.Child, ErrMultipleParents)
		}
		t.parent[e.Child] = e.Parent
		t.length[e.Child] = e.Length
		t.children[e.Parent] = append(t.children[e.Parent], e.Child)
	}

	// 5. Tips-first numbering: tips are childless, internals are not.
	for v := 0; v < nodeCount; v++ {
		isLeaf := len(t.children[v]) == 0
		if v < tipCount && !isLeaf {
			return nil, fmt.Errorf("phylo: tip %d has children: %w", v, ErrNodeNumbering)
		}
		if v >= tipCount && isLeaf {
			return nil, fmt.Errorf("phylo: internal node %d has no children: %w", v, ErrNodeNumbering)
		}
	}

	// 6. Exactly one parentless node, and it must be internal.
	t.root = -1
	for v := 0; v < nodeCount; v++ {
		if t.parent[v] != -1 {
			continue
		}
		if t.root != -1 || v < tipCount {
			return nil, ErrMultipleRoots
		}
		t.root = v
	}
	if t.root == -1 {
		// Every node has a parent: a cycle, impossible in a valid tree.
		return nil, ErrMultipleRoots
	}

	// 7. Deterministic child order for all traversals.
	for v := range t.children {
		sort.Ints(t.children[v])
	}

	// 8. Depths via an explicit queue from the root; doubles as the
	//    connectivity check (a cycle component is never reached).
	t.depth = make([]float64, nodeCount)
	visited := 1
	queue := make([]int, 0, nodeCount)
	queue = append(queue, t.root)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, c := range t.children[v] {
			t.depth[c] = t.depth[v] + t.length[c]
			visited++
			queue = append(queue, c)
		}
	}
	if visited != nodeCount {
		return nil, ErrDisconnected
	}

	// 9. Ages: time before present, anchored at the deepest tip.
	var maxDepth float64
	for v := 0; v < tipCount; v++ {
		if t.depth[v] > maxDepth {
			maxDepth = t.depth[v]
		}
	}
	t.age = make([]float64, nodeCount)
	for v := range t.age {
		t.age[v] = maxDepth - t.depth[v]
	}

	// 10. Tip labels: validate user labels or fall back to "t<i>".
	if cfg.labels != nil {
		if len(cfg.labels) != tipCount {
			return nil, ErrLabelCount
		}
		seen := make(map[string]struct{}, tipCount)
		for _, l := range cfg.labels {
			if _, dup := seen[l]; dup {
				return nil, fmt.Errorf("phylo: label %q: %w", l, ErrDuplicateLabel)
			}
			seen[l] = struct{}{}
		}
		t.labels = append([]string(nil), cfg.labels...)
	} else {
		t.labels = make([]string, tipCount)
		for i := range t.labels {
			t.labels[i] = fmt.Sprintf("t%d", i)
		}
	}

	return t, nil
}

// Clone returns a deep copy of the tree. Because trees are immutable the
// copy is only useful to decouple lifetimes; contents are identical.
// Complexity: O(N).
func (t *Tree) Clone() *Tree {
	opts := []Option{WithTipLabels(t.labels)}
	if t.hasRootEdge {
		opts = append(opts, WithRootEdge(t.rootEdge))
	}
	// Reconstruction through New re-derives all indexes from the validated
	// edge list; by construction it cannot fail.
	c, err := New(t.tipCount, t.edges, opts...)
	if err != nil {
		panic("phylo: Clone of a valid tree failed: " + err.Error())
	}

	return c
}
