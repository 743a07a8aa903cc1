// Package fossil - Occurrence rows and the immutable Collection table.
package fossil

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// UnknownSpecies marks a row sampled without taxonomic identity.
const UnknownSpecies = -1

var (
	// ErrAgeRange indicates a row violating 0 <= MinAge <= MaxAge.
	ErrAgeRange = errors.New("fossil: occurrence ages must satisfy 0 <= MinAge <= MaxAge")

	// ErrRowIndex indicates a row index outside 0..Len()-1.
	ErrRowIndex = errors.New("fossil: row index out of range")

	// ErrNilPartition indicates CountBinned received a nil partition.
	ErrNilPartition = errors.New("fossil: partition is nil")
)

// Occurrence is one sampled fossil: species identity (or UnknownSpecies),
// the tree edge it was sampled on, and its age bracket. Exact-time rows
// have MinAge == MaxAge.
type Occurrence struct {
	Species int
	Edge    int
	MinAge  float64
	MaxAge  float64
}

// Exact reports whether the row carries a point age rather than an
// interval bracket.
func (o Occurrence) Exact() bool { return o.MinAge == o.MaxAge }

// valid checks the age invariant.
func (o Occurrence) valid() bool {
	return o.MinAge >= 0 && o.MinAge <= o.MaxAge && !math.IsNaN(o.MinAge) && !math.IsNaN(o.MaxAge)
}

// Collection is an append-only, value-immutable table of occurrences in
// insertion order. The zero value is not usable; build collections with
// NewCollection, Append or Merge.
type Collection struct {
	rows       []Occurrence
	identified bool
}

// NewCollection validates the rows and builds a Collection. An empty
// collection is legal: a simulation that sampled nothing returns one.
// Complexity: O(n).
func NewCollection(rows ...Occurrence) (*Collection, error) {
	for i, o := range rows {
		if !o.valid() {
			return nil, fmt.Errorf("fossil: row %d ages [%g, %g]: %w", i, o.MinAge, o.MaxAge, ErrAgeRange)
		}
	}

	return assemble(append([]Occurrence(nil), rows...)), nil
}

// assemble wires a Collection around rows it owns, deriving the
// identification flag: one anonymous row makes the table unidentified.
func assemble(rows []Occurrence) *Collection {
	c := &Collection{rows: rows, identified: true}
	for _, o := range rows {
		if o.Species == UnknownSpecies {
			c.identified = false
			break
		}
	}

	return c
}

// Append returns a new Collection holding the receiver's rows followed by
// the given ones. The receiver is never modified. Rows are trusted to obey
// the age invariant; route external input through NewCollection.
// Complexity: O(n + k).
func (c *Collection) Append(rows ...Occurrence) *Collection {
	merged := make([]Occurrence, 0, len(c.rows)+len(rows))
	merged = append(merged, c.rows...)
	merged = append(merged, rows...)

	return assemble(merged)
}

// Merge returns a new Collection with other's rows appended to the
// receiver's. A nil other counts as empty. The result is Identified only
// when both operands are. Complexity: O(n + m).
func (c *Collection) Merge(other *Collection) *Collection {
	if other == nil {
		return c.Append()
	}

	return c.Append(other.rows...)
}

// Len returns the number of rows. O(1).
func (c *Collection) Len() int { return len(c.rows) }

// Identified reports whether every row carries a real species id. Empty
// collections are vacuously identified. O(1).
func (c *Collection) Identified() bool { return c.identified }

// At returns row i in insertion order. O(1).
func (c *Collection) At(i int) (Occurrence, error) {
	if i < 0 || i >= len(c.rows) {
		return Occurrence{}, fmt.Errorf("fossil: row %d of %d: %w", i, len(c.rows), ErrRowIndex)
	}

	return c.rows[i], nil
}

// Rows returns a copy of all rows in insertion order. O(n).
func (c *Collection) Rows() []Occurrence {
	return append([]Occurrence(nil), c.rows...)
}

// Species returns the distinct species ids present, ascending;
// UnknownSpecies is excluded. O(n log n).
func (c *Collection) Species() []int {
	seen := make(map[int]struct{}, len(c.rows))
	for _, o := range c.rows {
		if o.Species == UnknownSpecies {
			continue
		}
		seen[o.Species] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for sp := range seen {
		out = append(out, sp)
	}
	sort.Ints(out)

	return out
}

// EdgeSet returns the set of edges carrying at least one occurrence. O(n).
func (c *Collection) EdgeSet() map[int]struct{} {
	set := make(map[int]struct{}, len(c.rows))
	for _, o := range c.rows {
		set[o.Edge] = struct{}{}
	}

	return set
}
