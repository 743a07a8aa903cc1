// Package sampling_test - shared fixtures and helpers.
//
// Policy mirrors the package under test: fixed seeds everywhere, no
// time-based randomness, statistical assertions sized so the margin is
// several standard errors wide.
package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paleogo/taphos/fossil"
	"github.com/paleogo/taphos/phylo"
	"github.com/paleogo/taphos/taxonomy"
)

// pairTree builds the two-tip ultrametric tree of the given depth: tips 0
// and 1 below root 2, both branches depth long.
func pairTree(t *testing.T, depth float64, opts ...phylo.Option) *phylo.Tree {
	t.Helper()
	tr, err := phylo.New(2, []phylo.Edge{
		{Parent: 2, Child: 0, Length: depth},
		{Parent: 2, Child: 1, Length: depth},
	}, opts...)
	require.NoError(t, err)

	return tr
}

// balancedTree builds ((t0,t1),(t2,t3)) of height 3 with cherry nodes at
// age 2; total branch length 10.
func balancedTree(t *testing.T, opts ...phylo.Option) *phylo.Tree {
	t.Helper()
	tr, err := phylo.New(4, []phylo.Edge{
		{Parent: 4, Child: 5, Length: 1},
		{Parent: 5, Child: 0, Length: 2},
		{Parent: 5, Child: 1, Length: 2},
		{Parent: 4, Child: 6, Length: 1},
		{Parent: 6, Child: 2, Length: 2},
		{Parent: 6, Child: 3, Length: 2},
	}, opts...)
	require.NoError(t, err)

	return tr
}

// pairTaxonomy names the two lineages of pairTree explicitly: species 77 on
// edge 0 and species 78 on edge 1, both spanning depth..0.
func pairTaxonomy(t *testing.T, depth float64) *taxonomy.Taxonomy {
	t.Helper()
	tx, err := taxonomy.New([]taxonomy.Segment{
		{Species: 77, Edge: 0, Start: depth, End: 0},
		{Species: 78, Edge: 1, Start: depth, End: 0},
	})
	require.NoError(t, err)

	return tx
}

// splitTaxonomy builds one species living 4..0, crossing from edge 11 onto
// edge 10 at age 2.
func splitTaxonomy(t *testing.T) *taxonomy.Taxonomy {
	t.Helper()
	tx, err := taxonomy.New([]taxonomy.Segment{
		{Species: 5, Edge: 11, Start: 4, End: 2},
		{Species: 5, Edge: 10, Start: 2, End: 0},
	})
	require.NoError(t, err)

	return tx
}

// mustRows unwraps the row slice of a collection.
func mustRows(t *testing.T, c *fossil.Collection, err error) []fossil.Occurrence {
	t.Helper()
	require.NoError(t, err)

	return c.Rows()
}
