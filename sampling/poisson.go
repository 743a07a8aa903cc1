// Package sampling - homogeneous Poisson sampling.
package sampling

import (
	"github.com/paleogo/taphos/fossil"
	"github.com/paleogo/taphos/phylo"
	"github.com/paleogo/taphos/taxonomy"
)

// Poisson samples fossil occurrences under a homogeneous Poisson process:
// lineage L with per-time-unit rate r_L accumulates k ~ Poisson(r_L * span)
// occurrences, each dated uniformly over the lineage's lifespan and
// attributed to the edge its age falls on.
//
// Either tree or tax supplies the lineages (see package doc); rate is a
// per-lineage vector (length 1 broadcasts). Rows carry exact point ages.
//
// Complexity: O(S + F*k) for S lineages and F occurrences over species of
// at most k segments.
func Poisson(tree *phylo.Tree, tax *taxonomy.Taxonomy, rate []float64, opts ...Option) (*fossil.Collection, error) {
	// 1. Build the run state: options, lineage source, prior, RNG.
	e, err := newEngine(tree, tax, opts)
	if err != nil {
		return nil, err
	}

	// 2. Resolve and validate the rate vector before any draw.
	rates, err := e.params(rate, "rate")
	if err != nil {
		return nil, err
	}
	if err = validateRates(rates, "rate"); err != nil {
		return nil, err
	}

	// 3. Per lineage: one count draw over the whole lifespan, then one
	//    uniform age per occurrence, resolved to an edge as it is drawn.
	for i, sp := range e.order {
		start, end, err := e.tax.Span(sp)
		if err != nil {
			return nil, err
		}
		k := e.poissonCount(rates[i] * (start - end))
		for j := 0; j < k; j++ {
			age := e.uniform(end, start)
			seg, err := e.tax.SegmentAt(sp, age)
			if err != nil {
				return nil, err
			}
			e.emit(sp, seg.Edge, age, age)
		}
	}

	return e.finish()
}
