// Package strata - Partition construction and interval accessors.
package strata

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrUnderspecified indicates Resolve received neither explicit ages nor
	// a maxAge/count pair.
	ErrUnderspecified = errors.New("strata: intervals need either explicit ages or maxAge with a bin count")

	// ErrNotAscending indicates boundary ages that are not strictly
	// increasing.
	ErrNotAscending = errors.New("strata: boundary ages must be strictly increasing")

	// ErrOriginNotZero indicates a boundary list that does not start at the
	// present (age 0).
	ErrOriginNotZero = errors.New("strata: first boundary age must be 0")

	// ErrBadMaxAge indicates a non-positive or non-finite maximum age.
	ErrBadMaxAge = errors.New("strata: maxAge must be positive and finite")

	// ErrBadStrataCount indicates a non-positive interval count.
	ErrBadStrataCount = errors.New("strata: interval count must be positive")

	// ErrIntervalIndex indicates an interval index outside 0..Count()-1.
	ErrIntervalIndex = errors.New("strata: interval index out of range")
)

// Partition is an immutable division of [0, MaxAge) into contiguous
// half-open intervals, youngest first.
type Partition struct {
	bounds []float64 // len >= 2, strictly increasing, bounds[0] == 0
}

// FromAges builds a Partition from explicit boundary ages. The list must
// hold at least two ages, start at 0 and increase strictly.
// Complexity: O(n).
func FromAges(ages []float64) (*Partition, error) {
	if len(ages) < 2 {
		return nil, fmt.Errorf("strata: %d boundary age(s): %w", len(ages), ErrBadStrataCount)
	}
	if ages[0] != 0 {
		return nil, fmt.Errorf("strata: first boundary %g: %w", ages[0], ErrOriginNotZero)
	}
	for i := 0; i+1 < len(ages); i++ {
		if !(ages[i] < ages[i+1]) || math.IsNaN(ages[i+1]) || math.IsInf(ages[i+1], 0) {
			return nil, fmt.Errorf("strata: boundaries %g, %g: %w", ages[i], ages[i+1], ErrNotAscending)
		}
	}

	return &Partition{bounds: append([]float64(nil), ages...)}, nil
}

// Uniform builds a Partition of n equal-width intervals over [0, maxAge).
// Complexity: O(n).
func Uniform(maxAge float64, n int) (*Partition, error) {
	if maxAge <= 0 || math.IsNaN(maxAge) || math.IsInf(maxAge, 0) {
		return nil, fmt.Errorf("strata: maxAge %g: %w", maxAge, ErrBadMaxAge)
	}
	if n < 1 {
		return nil, fmt.Errorf("strata: %d intervals: %w", n, ErrBadStrataCount)
	}

	bounds := make([]float64, n+1)
	width := maxAge / float64(n)
	for i := 1; i < n; i++ {
		bounds[i] = float64(i) * width
	}
	// The last boundary is exact, not accumulated, so MaxAge() == maxAge.
	bounds[n] = maxAge

	return &Partition{bounds: bounds}, nil
}

// Count returns the number of intervals. O(1).
func (p *Partition) Count() int { return len(p.bounds) - 1 }

// MaxAge returns the oldest boundary. O(1).
func (p *Partition) MaxAge() float64 { return p.bounds[len(p.bounds)-1] }

// Boundaries returns a copy of the boundary ages, youngest first. O(n).
func (p *Partition) Boundaries() []float64 {
	return append([]float64(nil), p.bounds...)
}

// Bounds returns interval i as [lo, hi). O(1).
func (p *Partition) Bounds(i int) (lo, hi float64, err error) {
	if i < 0 || i >= p.Count() {
		return 0, 0, fmt.Errorf("strata: interval %d of %d: %w", i, p.Count(), ErrIntervalIndex)
	}

	return p.bounds[i], p.bounds[i+1], nil
}

// Width returns the temporal width of interval i. O(1).
func (p *Partition) Width(i int) (float64, error) {
	lo, hi, err := p.Bounds(i)
	if err != nil {
		return 0, err
	}

	return hi - lo, nil
}

// Index returns the interval containing age, honoring the half-open
// convention: boundary ages belong to the interval they begin. Ages below 0
// or at/beyond MaxAge report ok == false. O(log n).
func (p *Partition) Index(age float64) (i int, ok bool) {
	if age < 0 || age >= p.MaxAge() || math.IsNaN(age) {
		return -1, false
	}
	// sort.SearchFloat64s finds the first boundary > age; the interval is
	// the one starting at the boundary before it.
	j := sort.SearchFloat64s(p.bounds, age)
	if j < len(p.bounds) && p.bounds[j] == age {
		return j, true
	}

	return j - 1, true
}
