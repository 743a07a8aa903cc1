// Package phylo: central Tree and Edge types, sentinel errors, and
// construction options.
//
// This file declares the data model only; the constructor lives in tree.go,
// accessors in methods.go, traversals in traversal.go, pruning in prune.go.
package phylo

import "errors"

// Sentinel errors for tree construction and queries.
var (
	// ErrTooFewTips indicates a tree with fewer than two tips was requested,
	// or a pruning operation would leave fewer than two tips behind.
	ErrTooFewTips = errors.New("phylo: tree needs at least two tips")

	// ErrNoEdges indicates the constructor received no edges.
	ErrNoEdges = errors.New("phylo: edge list is empty")

	// ErrNodeNumbering indicates node ids are not contiguous 0..N-1 with all
	// tips numbered before all internal nodes.
	ErrNodeNumbering = errors.New("phylo: node ids must be contiguous with tips first")

	// ErrMultipleRoots indicates the edge list does not define exactly one
	// parentless internal node.
	ErrMultipleRoots = errors.New("phylo: tree must have exactly one root")

	// ErrMultipleParents indicates some node is the child of two edges.
	ErrMultipleParents = errors.New("phylo: node has more than one parent")

	// ErrEdgeLength indicates a non-positive branch length.
	ErrEdgeLength = errors.New("phylo: edge length must be positive")

	// ErrRootEdgeLength indicates a negative pendant root edge length.
	ErrRootEdgeLength = errors.New("phylo: root edge length must be non-negative")

	// ErrDisconnected indicates a node unreachable from the root.
	ErrDisconnected = errors.New("phylo: tree is not connected")

	// ErrLabelCount indicates len(labels) != TipCount.
	ErrLabelCount = errors.New("phylo: one label per tip required")

	// ErrDuplicateLabel indicates two tips share the same label.
	ErrDuplicateLabel = errors.New("phylo: duplicate tip label")

	// ErrNodeNotFound indicates a query referenced an id outside 0..N-1.
	ErrNodeNotFound = errors.New("phylo: node not found")

	// ErrNotATip indicates a tip-only operation received an internal node.
	ErrNotATip = errors.New("phylo: node is not a tip")
)

// Edge is one directed branch of the tree, pointing from Parent down to
// Child. Length is the branch duration in the same time units as node ages.
type Edge struct {
	// Parent is the older endpoint (closer to the root).
	Parent int

	// Child is the younger endpoint. By convention the edge is identified
	// downstream (taxonomy, fossils) by its Child id.
	Child int

	// Length is the positive branch length.
	Length float64
}

// Option configures optional Tree properties before construction.
type Option func(*treeConfig)

// treeConfig collects constructor knobs; validated inside New.
type treeConfig struct {
	rootEdge    float64 // pendant root edge length; <0 means absent
	hasRootEdge bool
	labels      []string
}

// WithRootEdge attaches a pendant edge of the given length above the root.
// The length may be zero; negative values are rejected by New.
func WithRootEdge(length float64) Option {
	return func(c *treeConfig) {
		c.rootEdge = length
		c.hasRootEdge = true
	}
}

// WithTipLabels sets one label per tip, indexed by tip id. Labels must be
// unique; New rejects mismatched lengths and duplicates. Without this option
// tips are labelled "t0", "t1", ….
func WithTipLabels(labels []string) Option {
	return func(c *treeConfig) {
		c.labels = labels
	}
}

// Tree is an immutable rooted phylogeny. All derived indexes (parent map,
// children lists, depths, ages) are computed once by New and shared by
// value-copying accessors, so a Tree is safe for concurrent readers.
type Tree struct {
	tipCount int
	edges    []Edge   // construction order, one per non-root node
	labels   []string // len == tipCount

	rootEdge    float64
	hasRootEdge bool

	// Derived indexes, fixed at construction.
	root     int
	parent   []int       // parent[v]; -1 for the root
	length   []float64   // length[v] = branch length above v; 0 for the root
	children [][]int     // children[v], ascending
	depth    []float64   // root-to-node accumulated length
	age      []float64   // maxDepth - depth: time before present
}
