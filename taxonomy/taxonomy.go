// Package taxonomy - Segment type, validation and construction.
package taxonomy

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/paleogo/taphos/phylo"
)

var (
	// ErrNoSegments indicates New received no segments.
	ErrNoSegments = errors.New("taxonomy: segment list is empty")

	// ErrNegativeID indicates a negative species or edge id.
	ErrNegativeID = errors.New("taxonomy: species and edge ids must be non-negative")

	// ErrSegmentRange indicates Start <= End or End < 0; spans are ages and
	// must strictly decrease toward the present.
	ErrSegmentRange = errors.New("taxonomy: segment must satisfy Start > End >= 0")

	// ErrContiguity indicates a species whose segments, sorted old to young,
	// do not tile its lifespan.
	ErrContiguity = errors.New("taxonomy: species segments must be contiguous")

	// ErrSpeciesNotFound indicates a query for an unknown species id.
	ErrSpeciesNotFound = errors.New("taxonomy: species not found")

	// ErrEdgeResolution indicates an age bracketed by zero or by several
	// segments of one species; see ResolutionError for the details.
	ErrEdgeResolution = errors.New("taxonomy: cannot resolve edge for age")

	// ErrNilTree indicates FromTree received a nil tree.
	ErrNilTree = errors.New("taxonomy: tree is nil")
)

// contiguityTol absorbs float noise when checking that one segment ends
// exactly where the next begins.
const contiguityTol = 1e-9

// Segment records that Species occupied Edge over the age span
// [Start, End], Start > End >= 0, ages decreasing toward the present.
type Segment struct {
	Species int
	Edge    int
	Start   float64
	End     float64
}

// ResolutionError reports a failed SegmentAt lookup: the age was bracketed
// by Matches segments instead of exactly one. It unwraps to
// ErrEdgeResolution.
type ResolutionError struct {
	Species int
	Age     float64
	Matches int
}

func (e ResolutionError) Error() string {
	return fmt.Sprintf("taxonomy: species %d at age %g: %d bracketing segments", e.Species, e.Age, e.Matches)
}

func (e ResolutionError) Unwrap() error { return ErrEdgeResolution }

// Taxonomy is an immutable species-to-edge mapping over time. Construct via
// New or FromTree; all methods are safe for concurrent use.
type Taxonomy struct {
	bySpecies map[int][]Segment // sorted old to young (Start descending)
	order     []int             // species ids in first-appearance order
	edges     map[int]struct{}
}

// New validates the segments and builds a Taxonomy.
//
// Rules:
//  1. at least one segment;
//  2. non-negative species and edge ids;
//  3. every span satisfies Start > End >= 0 (zero-length spans rejected);
//  4. per species, the segments sorted old to young tile the lifespan:
//     each segment's End equals the next segment's Start within 1e-9.
//
// Complexity: O(S log S) over S segments.
func New(segs []Segment) (*Taxonomy, error) {
	// 1. Shape and per-segment range checks.
	if len(segs) == 0 {
		return nil, ErrNoSegments
	}
	for i, s := range segs {
		if s.Species < 0 || s.Edge < 0 {
			return nil, fmt.Errorf("taxonomy: segment %d (species %d, edge %d): %w", i, s.Species, s.Edge, ErrNegativeID)
		}
		if s.End < 0 || s.Start <= s.End {
			return nil, fmt.Errorf("taxonomy: segment %d span [%g, %g]: %w", i, s.Start, s.End, ErrSegmentRange)
		}
	}

	// 2. Group by species, recording first-appearance order.
	tx := &Taxonomy{
		bySpecies: make(map[int][]Segment),
		edges:     make(map[int]struct{}),
	}
	for _, s := range segs {
		if _, seen := tx.bySpecies[s.Species]; !seen {
			tx.order = append(tx.order, s.Species)
		}
		tx.bySpecies[s.Species] = append(tx.bySpecies[s.Species], s)
		tx.edges[s.Edge] = struct{}{}
	}

	// 3. Sort each species old to young and verify the tiling.
	for _, sp := range tx.order {
		rows := tx.bySpecies[sp]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Start > rows[j].Start })
		for i := 0; i+1 < len(rows); i++ {
			if math.Abs(rows[i].End-rows[i+1].Start) > contiguityTol {
				return nil, fmt.Errorf("taxonomy: species %d: segment ending at %g meets segment starting at %g: %w",
					sp, rows[i].End, rows[i+1].Start, ErrContiguity)
			}
		}
	}

	return tx, nil
}

// FromTree derives the one-species-per-edge taxonomy of a tree: each
// non-root node v contributes Segment{Species: v, Edge: v} spanning the
// ages of its parent and itself. A positive pendant root edge contributes
// one extra lineage with species id equal to the root id; a zero-length
// root edge contributes nothing.
//
// Complexity: O(N).
func FromTree(t *phylo.Tree) (*Taxonomy, error) {
	if t == nil {
		return nil, ErrNilTree
	}

	segs := make([]Segment, 0, t.NodeCount())
	for v := 0; v < t.NodeCount(); v++ {
		p, ok := t.Parent(v)
		if !ok {
			continue // root; its pendant edge is handled below
		}
		segs = append(segs, Segment{Species: v, Edge: v, Start: t.Age(p), End: t.Age(v)})
	}
	if stem, ok := t.RootEdge(); ok && stem > 0 {
		root := t.Root()
		segs = append(segs, Segment{
			Species: root,
			Edge:    root,
			Start:   t.Age(root) + stem,
			End:     t.Age(root),
		})
	}

	return New(segs)
}
