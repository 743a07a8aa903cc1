// Package sampling - the run state shared by all models.
//
// An engine is built once per call: options applied, lineage source
// resolved, prior cross-validated, random source constructed, and one
// occurrence buffer allocated. Models then append rows through emit and
// convert them to a Collection exactly once in finish.
package sampling

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/paleogo/taphos/fossil"
	"github.com/paleogo/taphos/phylo"
	"github.com/paleogo/taphos/taxonomy"
)

// initialRowCapacity sizes the per-call occurrence buffer; runs larger than
// this grow it amortized, never by rebuilding collections.
const initialRowCapacity = 64

type engine struct {
	cfg     config
	tree    *phylo.Tree
	tax     *taxonomy.Taxonomy
	derived bool  // lineages came from the tree, enabling edge-ordered params
	order   []int // species ids in taxonomy first-appearance order
	src     rand.Source
	rows    []fossil.Occurrence
}

// newEngine applies options and runs every draw-independent check.
func newEngine(tree *phylo.Tree, tax *taxonomy.Taxonomy, opts []Option) (*engine, error) {
	// 1. Resolve options.
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Resolve the lineage source.
	tx, derived, err := lineages(tree, tax, &cfg)
	if err != nil {
		return nil, err
	}

	// 3. Edge-ordered parameters are defined by tree edge order and node
	//    ids, which only the derived taxonomy preserves.
	if cfg.edgeOrdered && !derived {
		return nil, ErrEdgeOrdered
	}

	// 4. Cross-validate the prior before any draw: every prior edge must be
	//    known. Edges checked ascending for a deterministic first failure.
	if cfg.prior != nil {
		priorEdges := make([]int, 0, len(cfg.prior.EdgeSet()))
		for e := range cfg.prior.EdgeSet() {
			priorEdges = append(priorEdges, e)
		}
		sort.Ints(priorEdges)
		for _, e := range priorEdges {
			if !tx.HasEdge(e) {
				return nil, fmt.Errorf("sampling: prior edge %d: %w", e, ErrPriorEdges)
			}
		}
	}

	return &engine{
		cfg:     cfg,
		tree:    tree,
		tax:     tx,
		derived: derived,
		order:   tx.Species(),
		src:     sourceFor(&cfg),
		rows:    make([]fossil.Occurrence, 0, initialRowCapacity),
	}, nil
}

// params resolves a per-lineage vector against this engine's species order.
func (e *engine) params(vec []float64, name string) ([]float64, error) {
	return lineageParams(vec, name, e.tree, e.tax, e.derived)
}

// poissonCount draws k ~ Poisson(lambda). Zero intensity short-circuits to
// zero without consuming random state.
func (e *engine) poissonCount(lambda float64) int {
	if lambda == 0 {
		return 0
	}

	return int(distuv.Poisson{Lambda: lambda, Src: e.src}.Rand())
}

// uniform draws from [lo, hi).
func (e *engine) uniform(lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: e.src}.Rand()
}

// unit draws the accept/reject variate from [0, 1).
func (e *engine) unit() float64 {
	return e.uniform(0, 1)
}

// emit appends one occurrence, applying identity suppression centrally.
func (e *engine) emit(species, edge int, minAge, maxAge float64) {
	if e.cfg.unknownSp {
		species = fossil.UnknownSpecies
	}
	e.rows = append(e.rows, fossil.Occurrence{Species: species, Edge: edge, MinAge: minAge, MaxAge: maxAge})
}

// finish converts the buffer into the result collection, prepending the
// prior when one was configured. Called exactly once per run.
func (e *engine) finish() (*fossil.Collection, error) {
	if e.cfg.prior != nil {
		return e.cfg.prior.Append(e.rows...), nil
	}

	return fossil.NewCollection(e.rows...)
}
