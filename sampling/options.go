// Package sampling - functional options shared by all sampling models.
//
// Option constructors validate eagerly and panic on programmer error (nil
// hooks, out-of-range ceilings); everything data-dependent is reported as a
// sentinel error by the entry points instead.
package sampling

import (
	"math"
	"math/rand/v2"

	"github.com/paleogo/taphos/fossil"
)

// defaultProbabilityCeiling caps probabilities before the rate-space
// conversion rate = -ln(1-P)/width, which diverges at P = 1.
const defaultProbabilityCeiling = 0.999

// Option configures a sampling run.
type Option func(*config)

type config struct {
	seed          int64
	src           rand.Source
	prior         *fossil.Collection
	unknownSp     bool
	intervalTimes bool
	rates         []float64
	probs         []float64
	rateSpace     bool
	ceiling       float64
	edgeOrdered   bool
	diagnostic    func(msg string)
}

func defaultConfig() config {
	return config{ceiling: defaultProbabilityCeiling}
}

// diag reports a non-fatal condition through the installed hook, if any.
func (c *config) diag(msg string) {
	if c.diagnostic != nil {
		c.diagnostic(msg)
	}
}

// WithSeed fixes the random stream deterministically. Seed 0 selects the
// package's fixed default seed, so the zero value still reproduces.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithRand supplies an explicit random source, overriding WithSeed. Panics
// on nil; prefer WithSeed for reproducible runs.
func WithRand(src rand.Source) Option {
	if src == nil {
		panic("sampling: WithRand(nil)")
	}

	return func(c *config) { c.src = src }
}

// WithPrior merges previously collected occurrences into the result: the
// prior rows come first, the new draws after, no deduplication. Every prior
// edge must be known to the effective taxonomy. Panics on nil.
func WithPrior(prior *fossil.Collection) Option {
	if prior == nil {
		panic("sampling: WithPrior(nil)")
	}

	return func(c *config) { c.prior = prior }
}

// WithUnknownSpecies suppresses taxonomic identity on emitted rows: Species
// becomes fossil.UnknownSpecies while edges and timing still follow the
// true taxonomy.
func WithUnknownSpecies() Option {
	return func(c *config) { c.unknownSp = true }
}

// WithIntervalTimes disables exact-time mode for the interval models: rows
// record the enclosing interval bounds as [MinAge, MaxAge] instead of the
// drawn age. The homogeneous Poisson model ignores it.
func WithIntervalTimes() Option {
	return func(c *config) { c.intervalTimes = true }
}

// WithRates sets per-interval Poisson rates for Intervals, youngest
// interval first; length 1 broadcasts.
func WithRates(rates []float64) Option {
	return func(c *config) { c.rates = rates }
}

// WithProbabilities sets per-interval recovery probabilities for Intervals,
// youngest interval first; length 1 broadcasts. When both rates and
// probabilities are supplied the probabilities win and the diagnostic hook
// is told.
func WithProbabilities(probs []float64) Option {
	return func(c *config) { c.probs = probs }
}

// WithRateSpace makes Environment convert niche probabilities to Poisson
// rates (allowing several occurrences per lineage per interval) instead of
// running in probability space.
func WithRateSpace() Option {
	return func(c *config) { c.rateSpace = true }
}

// WithProbabilityCeiling overrides the clamp applied before the rate-space
// conversion. Panics unless 0 < ceiling < 1.
func WithProbabilityCeiling(ceiling float64) Option {
	if math.IsNaN(ceiling) || ceiling <= 0 || ceiling >= 1 {
		panic("sampling: WithProbabilityCeiling outside (0, 1)")
	}

	return func(c *config) { c.ceiling = ceiling }
}

// WithEdgeOrderedParams forces parameter vectors to be read in tree edge
// order (pendant root edge first) even where taxonomy order would apply.
// Valid only with tree-derived lineages.
func WithEdgeOrderedParams() Option {
	return func(c *config) { c.edgeOrdered = true }
}

// WithDiagnostic installs a hook for non-fatal notices (ignored inputs,
// redundant parameters). The hook must not block. Panics on nil.
func WithDiagnostic(fn func(msg string)) Option {
	if fn == nil {
		panic("sampling: WithDiagnostic(nil)")
	}

	return func(c *config) { c.diagnostic = fn }
}
