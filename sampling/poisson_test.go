package sampling_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/stat"

	"github.com/paleogo/taphos/fossil"
	"github.com/paleogo/taphos/phylo"
	"github.com/paleogo/taphos/sampling"
)

func TestPoisson_ZeroRateEmitsNothing(t *testing.T) {
	c, err := sampling.Poisson(pairTree(t, 1), nil, sampling.Scalar(0), sampling.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Identified())
}

func TestPoisson_RowInvariants(t *testing.T) {
	tr := balancedTree(t)
	c, err := sampling.Poisson(tr, nil, sampling.Scalar(3), sampling.WithSeed(42))
	require.NoError(t, err)
	require.NotZero(t, c.Len())

	for _, o := range c.Rows() {
		// Tree-derived lineages: species id and edge id coincide.
		assert.Equal(t, o.Species, o.Edge)
		assert.True(t, o.Exact())
		assert.True(t, tr.Valid(o.Edge))

		// The age must fall on the branch above the edge's child node.
		p, ok := tr.Parent(o.Edge)
		require.True(t, ok)
		assert.GreaterOrEqual(t, o.MinAge, tr.Age(o.Edge))
		assert.LessOrEqual(t, o.MaxAge, tr.Age(p))
	}
}

func TestPoisson_MeanTracksRate(t *testing.T) {
	// Two lineages of span 1: expected occurrences per run = rate * 2.
	tr := pairTree(t, 1)
	const (
		rate   = 1.5
		trials = 4000
	)

	counts := make([]float64, trials)
	for i := 0; i < trials; i++ {
		c, err := sampling.Poisson(tr, nil, sampling.Scalar(rate), sampling.WithSeed(int64(i+1)))
		require.NoError(t, err)
		counts[i] = float64(c.Len())
	}

	// Standard error is sqrt(3/4000) ~ 0.027; a 0.15 margin is ~5.5 sigma.
	assert.InDelta(t, 3.0, stat.Mean(counts, nil), 0.15)
}

func TestPoisson_SeedReproducibility(t *testing.T) {
	tr := balancedTree(t)

	col, err := sampling.Poisson(tr, nil, sampling.Scalar(2), sampling.WithSeed(99))
	a := mustRows(t, col, err)
	col, err = sampling.Poisson(tr, nil, sampling.Scalar(2), sampling.WithSeed(99))
	b := mustRows(t, col, err)
	assert.Equal(t, a, b)

	// Seed 0 selects the fixed default seed, which is 1.
	col, err = sampling.Poisson(tr, nil, sampling.Scalar(2), sampling.WithSeed(0))
	zero := mustRows(t, col, err)
	col, err = sampling.Poisson(tr, nil, sampling.Scalar(2), sampling.WithSeed(1))
	one := mustRows(t, col, err)
	assert.Equal(t, one, zero)

	// An explicit source reproduces the same way.
	col, err = sampling.Poisson(tr, nil, sampling.Scalar(2), sampling.WithRand(rand.NewPCG(5, 6)))
	c := mustRows(t, col, err)
	col, err = sampling.Poisson(tr, nil, sampling.Scalar(2), sampling.WithRand(rand.NewPCG(5, 6)))
	d := mustRows(t, col, err)
	assert.Equal(t, c, d)
}

func TestPoisson_TaxonomyDrivesLineages(t *testing.T) {
	tr := pairTree(t, 1)
	tx := pairTaxonomy(t, 1)

	var notes []string
	c, err := sampling.Poisson(tr, tx, sampling.Scalar(20),
		sampling.WithSeed(3),
		sampling.WithDiagnostic(func(msg string) { notes = append(notes, msg) }),
	)
	require.NoError(t, err)
	require.NotZero(t, c.Len())

	// Both supplied: the taxonomy wins and the hook is told.
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "taxonomy")
	for _, o := range c.Rows() {
		assert.Contains(t, []int{77, 78}, o.Species)
	}
}

func TestPoisson_MultiSegmentSpeciesResolvesEdges(t *testing.T) {
	tx := splitTaxonomy(t)

	c, err := sampling.Poisson(nil, tx, sampling.Scalar(25), sampling.WithSeed(11))
	require.NoError(t, err)
	require.NotZero(t, c.Len())

	edges := map[int]bool{}
	for _, o := range c.Rows() {
		assert.Equal(t, 5, o.Species)
		// The edge must be the segment bracketing the drawn age.
		seg, err := tx.SegmentAt(5, o.MinAge)
		require.NoError(t, err)
		assert.Equal(t, seg.Edge, o.Edge)
		edges[o.Edge] = true
	}
	// With ~100 expected occurrences over a 50/50 split both edges appear.
	assert.True(t, edges[10])
	assert.True(t, edges[11])
}

func TestPoisson_EdgeOrderedParams(t *testing.T) {
	// Edge order follows the construction order of balancedTree: the first
	// entry is the cherry stem (child 5), the second is tip 0.
	tr := balancedTree(t)
	rates := []float64{0, 5, 0, 0, 0, 0} // only tip 0's branch samples

	c, err := sampling.Poisson(tr, nil, rates, sampling.WithSeed(8))
	require.NoError(t, err)
	require.NotZero(t, c.Len())
	for _, o := range c.Rows() {
		assert.Equal(t, 0, o.Edge)
		assert.LessOrEqual(t, o.MaxAge, 2.0) // tip 0's branch spans ages 2..0
	}
}

func TestPoisson_EdgeOrderedParamsWithRootEdge(t *testing.T) {
	// With a pendant root edge the vector gains a leading entry for it.
	tr := balancedTree(t, phylo.WithRootEdge(1))
	rates := []float64{4, 0, 0, 0, 0, 0, 0} // stem lineage only

	c, err := sampling.Poisson(tr, nil, rates, sampling.WithSeed(8))
	require.NoError(t, err)
	require.NotZero(t, c.Len())
	for _, o := range c.Rows() {
		assert.Equal(t, tr.Root(), o.Edge)
		assert.GreaterOrEqual(t, o.MinAge, 3.0) // stem spans ages 4..3
		assert.LessOrEqual(t, o.MaxAge, 4.0)
	}
}

func TestPoisson_UnknownSpecies(t *testing.T) {
	c, err := sampling.Poisson(pairTree(t, 1), nil, sampling.Scalar(25),
		sampling.WithSeed(4),
		sampling.WithUnknownSpecies(),
	)
	require.NoError(t, err)
	require.NotZero(t, c.Len())

	assert.False(t, c.Identified())
	for _, o := range c.Rows() {
		assert.Equal(t, fossil.UnknownSpecies, o.Species)
		// Identity is suppressed; placement is not.
		assert.Contains(t, []int{0, 1}, o.Edge)
	}
}

func TestPoisson_PriorPrepends(t *testing.T) {
	prior, err := fossil.NewCollection(
		fossil.Occurrence{Species: 0, Edge: 0, MinAge: 0.25, MaxAge: 0.25},
		fossil.Occurrence{Species: 1, Edge: 1, MinAge: 0.75, MaxAge: 0.75},
	)
	require.NoError(t, err)

	c, err := sampling.Poisson(pairTree(t, 1), nil, sampling.Scalar(10),
		sampling.WithSeed(6),
		sampling.WithPrior(prior),
	)
	require.NoError(t, err)
	require.GreaterOrEqual(t, c.Len(), 2)

	rows := c.Rows()
	assert.Equal(t, prior.Rows(), rows[:2])
	assert.True(t, c.Identified())
}

func TestPoisson_PriorUnknownEdge(t *testing.T) {
	prior, err := fossil.NewCollection(fossil.Occurrence{Species: 0, Edge: 99, MinAge: 1, MaxAge: 1})
	require.NoError(t, err)

	_, err = sampling.Poisson(pairTree(t, 1), nil, sampling.Scalar(1), sampling.WithPrior(prior))
	assert.ErrorIs(t, err, sampling.ErrPriorEdges)
}

func TestPoisson_Errors(t *testing.T) {
	tr := pairTree(t, 1)
	tx := pairTaxonomy(t, 1)

	_, err := sampling.Poisson(nil, nil, sampling.Scalar(1))
	assert.ErrorIs(t, err, sampling.ErrNoLineageSource)

	// Taxonomy order: two species want one or two entries, never three.
	_, err = sampling.Poisson(nil, tx, []float64{1, 2, 3})
	assert.ErrorIs(t, err, sampling.ErrParamLength)

	// Edge order: six edges want six entries.
	_, err = sampling.Poisson(tr, nil, []float64{1, 2, 3})
	assert.ErrorIs(t, err, sampling.ErrParamLength)

	_, err = sampling.Poisson(tr, nil, sampling.Scalar(-0.5))
	assert.ErrorIs(t, err, sampling.ErrNegativeRate)

	_, err = sampling.Poisson(tr, nil, sampling.Scalar(math.NaN()))
	assert.ErrorIs(t, err, sampling.ErrNegativeRate)

	// Edge-ordered vectors need tree-derived lineages.
	_, err = sampling.Poisson(nil, tx, sampling.Scalar(1), sampling.WithEdgeOrderedParams())
	assert.ErrorIs(t, err, sampling.ErrEdgeOrdered)
}
