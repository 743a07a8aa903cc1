// Package subsample - fraction-based occurrence thinning.
//
// Uniform keeps a fixed fraction of all rows; UniformWithin applies the
// same policy independently inside age bins, thinning the record's density
// while preserving its shape through time.
package subsample

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/paleogo/taphos/fossil"
)

var (
	// ErrNilCollection indicates a nil occurrence collection argument.
	ErrNilCollection = errors.New("subsample: nil collection")

	// ErrFraction indicates a keep fraction outside [0, 1].
	ErrFraction = errors.New("subsample: fraction must be in [0, 1]")

	// ErrBinAges indicates bin boundaries that are not finite and strictly
	// ascending.
	ErrBinAges = errors.New("subsample: bin ages must be finite and strictly ascending")
)

// Uniform keeps round(fraction*Len) rows, drawn uniformly without
// replacement. Fraction 1 keeps every row and 0 none; surviving rows follow
// the draw order, not the input order. Complexity: O(n).
func Uniform(f *fossil.Collection, fraction float64, opts ...Option) (*fossil.Collection, error) {
	if f == nil {
		return nil, ErrNilCollection
	}
	if err := checkFraction(fraction); err != nil {
		return nil, err
	}
	cfg := resolveConfig(opts)

	rows := f.Rows()
	k := int(math.Round(fraction * float64(len(rows))))
	if k == 0 {
		return fossil.NewCollection()
	}

	r := rand.New(sourceFor(&cfg))
	kept := make([]fossil.Occurrence, 0, k)
	for _, j := range prefixShuffle(r, indexes(len(rows)), k) {
		kept = append(kept, rows[j])
	}

	return fossil.NewCollection(kept...)
}

// UniformWithin applies Uniform's policy independently inside age bins.
// Rows fall into the bin bracketing their MaxAge; a boundary age opens the
// bin it names. Rows younger than the first boundary form an implicit young
// bin, rows at or beyond the last an implicit old one. Bins draw young to
// old off one shared stream, each keeping round(fraction*size) rows.
// Complexity: O(n log b).
func UniformWithin(f *fossil.Collection, binAges []float64, fraction float64, opts ...Option) (*fossil.Collection, error) {
	if f == nil {
		return nil, ErrNilCollection
	}
	if err := checkFraction(fraction); err != nil {
		return nil, err
	}
	if err := checkBinAges(binAges); err != nil {
		return nil, err
	}
	cfg := resolveConfig(opts)

	// 1. Bin row indexes by MaxAge.
	rows := f.Rows()
	bins := make([][]int, len(binAges)+1)
	for i, o := range rows {
		b := sort.Search(len(binAges), func(j int) bool { return binAges[j] > o.MaxAge })
		bins[b] = append(bins[b], i)
	}

	// 2. One prefix draw per bin.
	r := rand.New(sourceFor(&cfg))
	var kept []fossil.Occurrence
	for _, bin := range bins {
		k := int(math.Round(fraction * float64(len(bin))))
		for _, j := range prefixShuffle(r, bin, k) {
			kept = append(kept, rows[j])
		}
	}

	return fossil.NewCollection(kept...)
}

// prefixShuffle runs k steps of a Fisher-Yates shuffle over idx in place
// and returns the selected prefix: a uniform sample without replacement.
func prefixShuffle(r *rand.Rand, idx []int, k int) []int {
	for i := 0; i < k; i++ {
		j := i + r.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:k]
}

func indexes(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

func checkFraction(fraction float64) error {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return fmt.Errorf("subsample: fraction %g: %w", fraction, ErrFraction)
	}

	return nil
}

func checkBinAges(binAges []float64) error {
	for i, b := range binAges {
		if math.IsNaN(b) || math.IsInf(b, 0) || (i > 0 && b <= binAges[i-1]) {
			return fmt.Errorf("subsample: bin age %d = %g: %w", i, b, ErrBinAges)
		}
	}

	return nil
}
