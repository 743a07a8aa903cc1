// Package phylo: read-only Tree accessors.
//
// Everything here is O(1) or a defensive O(N) copy; no method mutates the
// receiver. Heavier structural queries live in traversal.go.
package phylo

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// NodeCount returns the total number of nodes (tips + internals). O(1).
func (t *Tree) NodeCount() int { return len(t.parent) }

// TipCount returns the number of tips. O(1).
func (t *Tree) TipCount() int { return t.tipCount }

// Root returns the root node id. O(1).
func (t *Tree) Root() int { return t.root }

// IsTip reports whether id names a tip. Out-of-range ids report false. O(1).
func (t *Tree) IsTip(id int) bool { return id >= 0 && id < t.tipCount }

// Valid reports whether id names any node of the tree. O(1).
func (t *Tree) Valid(id int) bool { return id >= 0 && id < len(t.parent) }

// Parent returns the parent of id; ok is false for the root or an
// out-of-range id. O(1).
func (t *Tree) Parent(id int) (parent int, ok bool) {
	if !t.Valid(id) || id == t.root {
		return -1, false
	}

	return t.parent[id], true
}

// Children returns the child ids of id in ascending order. The slice is a
// copy; tips yield an empty slice. O(deg).
func (t *Tree) Children(id int) []int {
	if !t.Valid(id) {
		return nil
	}

	return append([]int(nil), t.children[id]...)
}

// EdgeLength returns the length of the branch above id; ok is false for the
// root (see RootEdge) and out-of-range ids. O(1).
func (t *Tree) EdgeLength(id int) (length float64, ok bool) {
	if !t.Valid(id) || id == t.root {
		return 0, false
	}

	return t.length[id], true
}

// RootEdge returns the pendant root edge length; ok is false when the tree
// carries none. O(1).
func (t *Tree) RootEdge() (length float64, ok bool) {
	return t.rootEdge, t.hasRootEdge
}

// Edges returns a copy of the edge list in construction order. O(N).
func (t *Tree) Edges() []Edge {
	return append([]Edge(nil), t.edges...)
}

// Labels returns a copy of the tip label slice, indexed by tip id. O(T).
func (t *Tree) Labels() []string {
	return append([]string(nil), t.labels...)
}

// Label returns the label of tip id; empty for non-tips. O(1).
func (t *Tree) Label(id int) string {
	if !t.IsTip(id) {
		return ""
	}

	return t.labels[id]
}

// TipWithLabel returns the tip carrying the given label. O(T).
func (t *Tree) TipWithLabel(label string) (id int, ok bool) {
	for i, l := range t.labels {
		if l == label {
			return i, true
		}
	}

	return -1, false
}

// Depths returns root-to-node accumulated branch lengths, indexed by node
// id. The pendant root edge is not included. O(N) copy.
func (t *Tree) Depths() []float64 {
	return append([]float64(nil), t.depth...)
}

// Ages returns per-node time before present: the deepest tip has age 0 and
// the root the largest age. O(N) copy.
func (t *Tree) Ages() []float64 {
	return append([]float64(nil), t.age...)
}

// Age returns the age of a single node. Out-of-range ids return NaN. O(1).
func (t *Tree) Age(id int) float64 {
	if !t.Valid(id) {
		return math.NaN()
	}

	return t.age[id]
}

// MinEdgeLength returns the shortest branch length in the tree (the pendant
// root edge excluded). Used by pruning utilities to derive tolerances. O(N).
func (t *Tree) MinEdgeLength() float64 {
	min := math.Inf(1)
	for _, e := range t.edges {
		if e.Length < min {
			min = e.Length
		}
	}

	return min
}

// IsUltrametric reports whether all tips sit at the same depth within tol.
// Complexity: O(T).
func (t *Tree) IsUltrametric(tol float64) bool {
	for v := 1; v < t.tipCount; v++ {
		if !scalar.EqualWithinAbs(t.depth[v], t.depth[0], tol) {
			return false
		}
	}

	return true
}

// IsBinary reports whether every internal node has exactly two children,
// the precondition for placement utilities. O(N).
func (t *Tree) IsBinary() bool {
	for v := t.tipCount; v < len(t.children); v++ {
		if len(t.children[v]) != 2 {
			return false
		}
	}

	return true
}
