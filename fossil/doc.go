// Package fossil holds sampled occurrence records and the immutable
// Collection table the simulation engines produce.
//
// An Occurrence ties a species and the tree edge it was sampled on to an
// age bracket [MinAge, MaxAge]. Engines running in exact-time mode emit
// point ages (MinAge == MaxAge, Exact() true); engines recording only the
// enclosing stratigraphic interval emit the interval bounds. Species
// identity is optional: a row whose Species is UnknownSpecies carries
// sampling information without taxonomic identity, and any such row marks
// the whole collection as not Identified.
//
// Collections are value-immutable. Append and Merge never touch the
// receiver; they return a fresh Collection sharing nothing, so callers may
// hold references across engine runs without defensive copying.
//
// Beyond row storage the package carries the summary tables a fossil record
// analysis starts from: counts per species, counts binned into a strata
// partition, and per-species stratigraphic ranges.
//
// Errors:
//   - ErrAgeRange:     a row violates 0 <= MinAge <= MaxAge.
//   - ErrRowIndex:     At was asked for a row outside 0..Len()-1.
//   - ErrNilPartition: CountBinned received a nil partition.
package fossil
