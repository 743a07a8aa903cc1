// Package sampling - environment-driven sampling through a Gaussian niche.
package sampling

import (
	"fmt"
	"math"

	"github.com/paleogo/taphos/fossil"
	"github.com/paleogo/taphos/phylo"
	"github.com/paleogo/taphos/strata"
	"github.com/paleogo/taphos/taxonomy"
)

// Suitability returns the Gaussian niche response to an environmental
// value: peak recovery at the preferred value, falling off with the squared
// distance scaled by the tolerance.
//
//	P = peak * exp(-(value-preferred)^2 / (2*tolerance^2))
func Suitability(value, peak, preferred, tolerance float64) float64 {
	d := value - preferred

	return peak * math.Exp(-(d*d)/(2*tolerance*tolerance))
}

// Environment samples fossil occurrences whose recovery tracks an
// environmental proxy curve: per lineage and interval, the niche response
// to proxy[i] gives the recovery probability. By default the probability
// variant of the interval sweep runs (at most one occurrence per lineage
// per interval); WithRateSpace converts each probability P to a Poisson
// rate -ln(1-P)/width after clamping P at the probability ceiling, allowing
// repeat occurrences.
//
// proxy carries one value per interval, youngest first. The Niche fields
// are per-lineage vectors resolved like every other lineage parameter.
//
// Complexity: O(S*I + F*k).
func Environment(tree *phylo.Tree, tax *taxonomy.Taxonomy, p *strata.Partition, proxy []float64, niche Niche, opts ...Option) (*fossil.Collection, error) {
	// 1. Shape checks and run state.
	if p == nil {
		return nil, ErrNilPartition
	}
	e, err := newEngine(tree, tax, opts)
	if err != nil {
		return nil, err
	}
	if len(proxy) != p.Count() {
		return nil, fmt.Errorf("sampling: %d proxy values for %d intervals: %w", len(proxy), p.Count(), ErrProxyLength)
	}
	if err = validateFinite(proxy, "proxy"); err != nil {
		return nil, err
	}

	// 2. Resolve the niche onto the species order and validate every piece
	//    before the first draw.
	peaks, err := e.params(niche.Peak, "niche peak")
	if err != nil {
		return nil, err
	}
	if err = validateProbabilities(peaks, "niche peak"); err != nil {
		return nil, err
	}
	prefs, err := e.params(niche.Preferred, "niche preferred")
	if err != nil {
		return nil, err
	}
	if err = validateFinite(prefs, "niche preferred"); err != nil {
		return nil, err
	}
	tols, err := e.params(niche.Tolerance, "niche tolerance")
	if err != nil {
		return nil, err
	}
	if err = validateTolerances(tols, "niche tolerance"); err != nil {
		return nil, err
	}

	// 3. Reuse the interval sweeps with the niche response as intensity.
	if e.cfg.rateSpace {
		widths := make([]float64, p.Count())
		for i := range widths {
			if widths[i], err = p.Width(i); err != nil {
				return nil, err
			}
		}
		err = e.sampleIntervalRates(p, func(li, ii int) float64 {
			P := Suitability(proxy[ii], peaks[li], prefs[li], tols[li])
			if P > e.cfg.ceiling {
				P = e.cfg.ceiling
			}

			return -math.Log(1-P) / widths[ii]
		})
	} else {
		err = e.sampleIntervalProbs(p, func(li, ii int) float64 {
			return Suitability(proxy[ii], peaks[li], prefs[li], tols[li])
		})
	}
	if err != nil {
		return nil, err
	}

	return e.finish()
}
