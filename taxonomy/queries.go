// Package taxonomy - read-only queries over a validated Taxonomy.
package taxonomy

import (
	"fmt"
	"sort"
)

// NumSpecies returns the number of distinct species. O(1).
func (tx *Taxonomy) NumSpecies() int { return len(tx.order) }

// Species returns the species ids in first-appearance order, the order the
// sampling engine walks lineages in. The slice is a copy. O(S).
func (tx *Taxonomy) Species() []int {
	return append([]int(nil), tx.order...)
}

// SegmentsOf returns the segments of one species sorted old to young.
// The slice is a copy. O(k).
func (tx *Taxonomy) SegmentsOf(species int) ([]Segment, error) {
	rows, ok := tx.bySpecies[species]
	if !ok {
		return nil, fmt.Errorf("taxonomy: species %d: %w", species, ErrSpeciesNotFound)
	}

	return append([]Segment(nil), rows...), nil
}

// Span returns the full lifespan of a species: start is the oldest age of
// its oldest segment, end the youngest age of its youngest segment. O(1).
func (tx *Taxonomy) Span(species int) (start, end float64, err error) {
	rows, ok := tx.bySpecies[species]
	if !ok {
		return 0, 0, fmt.Errorf("taxonomy: species %d: %w", species, ErrSpeciesNotFound)
	}

	return rows[0].Start, rows[len(rows)-1].End, nil
}

// SegmentAt resolves the segment of a species bracketing the given age:
// the unique row with Start >= age >= End. Ages matched by zero segments
// (outside the lifespan) or by several (exactly on an internal boundary)
// yield a ResolutionError wrapping ErrEdgeResolution. O(k).
func (tx *Taxonomy) SegmentAt(species int, age float64) (Segment, error) {
	rows, ok := tx.bySpecies[species]
	if !ok {
		return Segment{}, fmt.Errorf("taxonomy: species %d: %w", species, ErrSpeciesNotFound)
	}

	var (
		hit     Segment
		matches int
	)
	for _, s := range rows {
		if s.Start >= age && age >= s.End {
			hit = s
			matches++
		}
	}
	if matches != 1 {
		return Segment{}, ResolutionError{Species: species, Age: age, Matches: matches}
	}

	return hit, nil
}

// HasEdge reports whether any segment occupies the given edge. O(1).
func (tx *Taxonomy) HasEdge(edge int) bool {
	_, ok := tx.edges[edge]

	return ok
}

// Edges returns the distinct edge ids occupied by any segment, ascending.
// O(E log E).
func (tx *Taxonomy) Edges() []int {
	out := make([]int, 0, len(tx.edges))
	for e := range tx.edges {
		out = append(out, e)
	}
	sort.Ints(out)

	return out
}
