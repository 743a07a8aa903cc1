// Package fossil - summary tables over a Collection.
package fossil

import (
	"github.com/paleogo/taphos/strata"
)

// CountBySpecies returns occurrence counts per species id. Rows without
// identity (UnknownSpecies) are excluded; their number is
// Len() minus the sum of the returned counts. Complexity: O(n).
func (c *Collection) CountBySpecies() map[int]int {
	counts := make(map[int]int)
	for _, o := range c.rows {
		if o.Species == UnknownSpecies {
			continue
		}
		counts[o.Species]++
	}

	return counts
}

// CountBinned tallies occurrences into the partition's intervals by MaxAge,
// the older (safer) end of each row's bracket. counts[i] covers interval i;
// older counts the rows at or beyond the partition's oldest boundary, which
// belong to no interval and would otherwise vanish silently.
// Complexity: O(n log b).
func (c *Collection) CountBinned(p *strata.Partition) (counts []int, older int, err error) {
	if p == nil {
		return nil, 0, ErrNilPartition
	}

	counts = make([]int, p.Count())
	for _, o := range c.rows {
		if i, ok := p.Index(o.MaxAge); ok {
			counts[i]++
			continue
		}
		older++
	}

	return counts, older, nil
}

// Ranges returns each species' stratigraphic range: the youngest MinAge and
// the oldest MaxAge over its rows. UnknownSpecies rows are excluded.
// Complexity: O(n).
func (c *Collection) Ranges() map[int][2]float64 {
	ranges := make(map[int][2]float64)
	for _, o := range c.rows {
		if o.Species == UnknownSpecies {
			continue
		}
		r, seen := ranges[o.Species]
		if !seen {
			ranges[o.Species] = [2]float64{o.MinAge, o.MaxAge}
			continue
		}
		if o.MinAge < r[0] {
			r[0] = o.MinAge
		}
		if o.MaxAge > r[1] {
			r[1] = o.MaxAge
		}
		ranges[o.Species] = r
	}

	return ranges
}
