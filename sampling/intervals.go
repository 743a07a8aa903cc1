// Package sampling - piecewise-constant interval sampling.
//
// Both interval variants share the same sweep: per lineage, walk the
// partition young to old, skip intervals below the lineage's lifespan,
// stop at the first interval above it, and clip the rest to the overlap
// window. The variants differ only in what they draw inside the window.
package sampling

import (
	"math"

	"github.com/paleogo/taphos/fossil"
	"github.com/paleogo/taphos/phylo"
	"github.com/paleogo/taphos/strata"
	"github.com/paleogo/taphos/taxonomy"
)

// Intervals samples fossil occurrences with piecewise-constant intensity
// over the partition p. The model comes from the options:
//
//   - WithRates: k ~ Poisson(rate_i * overlap) occurrences per lineage and
//     interval, dated uniformly in the overlap window;
//   - WithProbabilities: at most one occurrence per lineage and interval,
//     recovered with probability p_i scaled by the fraction of the interval
//     the lineage actually spans.
//
// Probabilities win over rates when both are supplied (the diagnostic hook
// is told); neither is ErrNoIntervalModel. By default rows carry the drawn
// age; WithIntervalTimes records the enclosing interval bounds instead.
//
// Complexity: O(S*I + F*k) for S lineages, I intervals, F occurrences.
func Intervals(tree *phylo.Tree, tax *taxonomy.Taxonomy, p *strata.Partition, opts ...Option) (*fossil.Collection, error) {
	// 1. Shape checks and run state.
	if p == nil {
		return nil, ErrNilPartition
	}
	e, err := newEngine(tree, tax, opts)
	if err != nil {
		return nil, err
	}

	// 2. Route by configured model; all parameter validation up front.
	switch {
	case e.cfg.probs != nil:
		if e.cfg.rates != nil {
			e.cfg.diag("sampling: probabilities override rates for interval sampling")
		}
		probs, err := intervalParams(e.cfg.probs, "probability", p.Count())
		if err != nil {
			return nil, err
		}
		if err = validateProbabilities(probs, "probability"); err != nil {
			return nil, err
		}
		if err = e.sampleIntervalProbs(p, func(_, ii int) float64 { return probs[ii] }); err != nil {
			return nil, err
		}
	case e.cfg.rates != nil:
		rates, err := intervalParams(e.cfg.rates, "rate", p.Count())
		if err != nil {
			return nil, err
		}
		if err = validateRates(rates, "rate"); err != nil {
			return nil, err
		}
		if err = e.sampleIntervalRates(p, func(_, ii int) float64 { return rates[ii] }); err != nil {
			return nil, err
		}
	default:
		return nil, ErrNoIntervalModel
	}

	return e.finish()
}

// sampleIntervalRates runs the Poisson variant of the interval sweep. rate
// yields the intensity for (lineage index, interval index); indirection
// through a closure lets the environment model reuse the sweep with
// per-lineage intensities.
func (e *engine) sampleIntervalRates(p *strata.Partition, rate func(li, ii int) float64) error {
	for li, sp := range e.order {
		start, end, err := e.tax.Span(sp)
		if err != nil {
			return err
		}
		for ii := 0; ii < p.Count(); ii++ {
			lo, hi, err := p.Bounds(ii)
			if err != nil {
				return err
			}
			if hi <= end {
				continue // interval entirely younger than the lineage
			}
			if lo >= start {
				break // this and every older interval miss the lineage
			}
			clipLo, clipHi := math.Max(lo, end), math.Min(hi, start)
			k := e.poissonCount(rate(li, ii) * (clipHi - clipLo))
			for j := 0; j < k; j++ {
				age := e.uniform(clipLo, clipHi)
				seg, err := e.tax.SegmentAt(sp, age)
				if err != nil {
					return err
				}
				if e.cfg.intervalTimes {
					e.emit(sp, seg.Edge, lo, hi)
					continue
				}
				e.emit(sp, seg.Edge, age, age)
			}
		}
	}

	return nil
}

// sampleIntervalProbs runs the Bernoulli variant: at most one occurrence
// per lineage and interval. The recovery probability is scaled by the
// covered fraction of the interval, preserving per-time density when a
// lineage spans only part of it. The candidate age is drawn before the
// accept/reject uniform; both are consumed even for certain rejection, so
// the stream position is independent of the probability values.
func (e *engine) sampleIntervalProbs(p *strata.Partition, prob func(li, ii int) float64) error {
	for li, sp := range e.order {
		start, end, err := e.tax.Span(sp)
		if err != nil {
			return err
		}
		for ii := 0; ii < p.Count(); ii++ {
			lo, hi, err := p.Bounds(ii)
			if err != nil {
				return err
			}
			if hi <= end {
				continue
			}
			if lo >= start {
				break
			}
			clipLo, clipHi := math.Max(lo, end), math.Min(hi, start)
			scaled := prob(li, ii) * (clipHi - clipLo) / (hi - lo)
			age := e.uniform(clipLo, clipHi)
			if e.unit() >= scaled {
				continue
			}
			seg, err := e.tax.SegmentAt(sp, age)
			if err != nil {
				return err
			}
			if e.cfg.intervalTimes {
				e.emit(sp, seg.Edge, lo, hi)
				continue
			}
			e.emit(sp, seg.Edge, age, age)
		}
	}

	return nil
}
