package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/stat"

	"github.com/paleogo/taphos/sampling"
	"github.com/paleogo/taphos/strata"
)

func TestIntervals_RateVariantRespectsIntervals(t *testing.T) {
	// Lineages span 2..0; only the older interval [1, 2) samples.
	tr := pairTree(t, 2)
	p, err := strata.FromAges([]float64{0, 1, 2})
	require.NoError(t, err)

	c, err := sampling.Intervals(tr, nil, p,
		sampling.WithRates([]float64{0, 8}),
		sampling.WithSeed(21),
	)
	require.NoError(t, err)
	require.NotZero(t, c.Len())

	for _, o := range c.Rows() {
		assert.True(t, o.Exact())
		assert.GreaterOrEqual(t, o.MinAge, 1.0)
		assert.Less(t, o.MaxAge, 2.0)
	}
}

func TestIntervals_RateMeanTracksClippedSpan(t *testing.T) {
	// Each lineage overlaps interval [0, 1) for one time unit: expected
	// rows per run = 2 lineages * rate * 1.
	tr := pairTree(t, 1)
	p, err := strata.FromAges([]float64{0, 1, 5})
	require.NoError(t, err)

	const (
		rate   = 3.0
		trials = 4000
	)
	counts := make([]float64, trials)
	for i := 0; i < trials; i++ {
		c, err := sampling.Intervals(tr, nil, p,
			sampling.WithRates([]float64{rate, rate}),
			sampling.WithSeed(int64(i+1)),
		)
		require.NoError(t, err)
		counts[i] = float64(c.Len())
	}

	// Standard error sqrt(6/4000) ~ 0.039; 0.2 is ~5 sigma.
	assert.InDelta(t, 6.0, stat.Mean(counts, nil), 0.2)
}

func TestIntervals_ProbabilityCertainRecovery(t *testing.T) {
	// p = 1 over fully covered intervals: exactly one occurrence per
	// lineage per interval, deterministically.
	tr := pairTree(t, 2)
	p, err := strata.FromAges([]float64{0, 1, 2})
	require.NoError(t, err)

	c, err := sampling.Intervals(tr, nil, p,
		sampling.WithProbabilities(sampling.Scalar(1)),
		sampling.WithSeed(17),
	)
	require.NoError(t, err)

	assert.Equal(t, 4, c.Len()) // 2 lineages x 2 intervals

	perLineageInterval := map[[2]int]int{}
	for _, o := range c.Rows() {
		i, ok := p.Index(o.MinAge)
		require.True(t, ok)
		perLineageInterval[[2]int{o.Species, i}]++
	}
	for key, n := range perLineageInterval {
		assert.Equal(t, 1, n, "lineage/interval %v", key)
	}
}

func TestIntervals_ProbabilityZeroRecoversNothing(t *testing.T) {
	tr := pairTree(t, 2)
	p, err := strata.FromAges([]float64{0, 2})
	require.NoError(t, err)

	c, err := sampling.Intervals(tr, nil, p,
		sampling.WithProbabilities(sampling.Scalar(0)),
		sampling.WithSeed(17),
	)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestIntervals_PartialCoverageScalesProbability(t *testing.T) {
	// Lineages span 1..0 inside a width-2 interval: acceptance scales to
	// p * 1/2 per lineage.
	tr := pairTree(t, 1)
	p, err := strata.FromAges([]float64{0, 2})
	require.NoError(t, err)

	const trials = 4000
	counts := make([]float64, trials)
	for i := 0; i < trials; i++ {
		c, err := sampling.Intervals(tr, nil, p,
			sampling.WithProbabilities(sampling.Scalar(1)),
			sampling.WithSeed(int64(i+1)),
		)
		require.NoError(t, err)
		counts[i] = float64(c.Len())
	}

	// Expected 2 * 0.5 = 1 row per run; SE = sqrt(0.5/4000) ~ 0.011.
	assert.InDelta(t, 1.0, stat.Mean(counts, nil), 0.06)
}

func TestIntervals_ProbabilityWinsOverRates(t *testing.T) {
	tr := pairTree(t, 2)
	p, err := strata.FromAges([]float64{0, 1, 2})
	require.NoError(t, err)

	var notes []string
	c, err := sampling.Intervals(tr, nil, p,
		sampling.WithRates(sampling.Scalar(1000)),
		sampling.WithProbabilities(sampling.Scalar(1)),
		sampling.WithSeed(13),
		sampling.WithDiagnostic(func(msg string) { notes = append(notes, msg) }),
	)
	require.NoError(t, err)

	// The probability model ran: the certain-recovery count, not ~4000.
	assert.Equal(t, 4, c.Len())
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "override")
}

func TestIntervals_IntervalTimesMode(t *testing.T) {
	tr := pairTree(t, 2)
	p, err := strata.FromAges([]float64{0, 1, 2})
	require.NoError(t, err)

	c, err := sampling.Intervals(tr, nil, p,
		sampling.WithProbabilities(sampling.Scalar(1)),
		sampling.WithIntervalTimes(),
		sampling.WithSeed(13),
	)
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())

	for _, o := range c.Rows() {
		assert.False(t, o.Exact())
		// Rows carry the unclipped interval bounds.
		assert.Contains(t, [][2]float64{{0, 1}, {1, 2}}, [2]float64{o.MinAge, o.MaxAge})
	}
}

func TestIntervals_SeedReproducibility(t *testing.T) {
	tr := balancedTree(t)
	p, err := strata.Uniform(3, 3)
	require.NoError(t, err)

	c, err := sampling.Intervals(tr, nil, p, sampling.WithRates(sampling.Scalar(4)), sampling.WithSeed(5))
	a := mustRows(t, c, err)
	c, err = sampling.Intervals(tr, nil, p, sampling.WithRates(sampling.Scalar(4)), sampling.WithSeed(5))
	b := mustRows(t, c, err)
	assert.Equal(t, a, b)
}

func TestIntervals_Errors(t *testing.T) {
	tr := pairTree(t, 2)
	p, err := strata.FromAges([]float64{0, 1, 2})
	require.NoError(t, err)

	_, err = sampling.Intervals(tr, nil, nil, sampling.WithRates(sampling.Scalar(1)))
	assert.ErrorIs(t, err, sampling.ErrNilPartition)

	_, err = sampling.Intervals(tr, nil, p)
	assert.ErrorIs(t, err, sampling.ErrNoIntervalModel)

	_, err = sampling.Intervals(nil, nil, p, sampling.WithRates(sampling.Scalar(1)))
	assert.ErrorIs(t, err, sampling.ErrNoLineageSource)

	_, err = sampling.Intervals(tr, nil, p, sampling.WithRates([]float64{1, 2, 3}))
	assert.ErrorIs(t, err, sampling.ErrParamLength)

	_, err = sampling.Intervals(tr, nil, p, sampling.WithRates([]float64{-1, 1}))
	assert.ErrorIs(t, err, sampling.ErrNegativeRate)

	_, err = sampling.Intervals(tr, nil, p, sampling.WithProbabilities([]float64{0.5, 1.5}))
	assert.ErrorIs(t, err, sampling.ErrProbabilityRange)
}
