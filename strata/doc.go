// Package strata partitions geologic time into contiguous intervals.
//
// A Partition is a strictly increasing sequence of boundary ages starting
// at 0 (the present). Interval i spans [bounds[i], bounds[i+1]), youngest
// first, so interval 0 touches the present and the last interval ends at
// the partition's maximum age. Interval membership is half-open: an age
// exactly on a boundary belongs to the older-side interval that starts
// there, and the maximum age itself lies outside the partition.
//
// Partitions come from one of two places:
//   - FromAges, when the caller knows the exact boundaries (stage tops,
//     stratigraphic picks);
//   - Uniform, when the caller wants n equal-width bins over [0, maxAge].
//
// Resolve arbitrates between the two input forms the way samplers accept
// them: explicit ages always win, a redundant uniform request is
// reported through the diagnostic hook, and supplying neither is an error.
//
// Errors:
//   - ErrUnderspecified:  Resolve got neither ages nor maxAge/count.
//   - ErrNotAscending:    boundary ages are not strictly increasing.
//   - ErrOriginNotZero:   the first boundary is not 0.
//   - ErrBadMaxAge:       maxAge is not positive and finite.
//   - ErrBadStrataCount:  the bin count is not positive.
//   - ErrIntervalIndex:   an accessor was asked for an interval outside
//     0..Count()-1.
package strata
