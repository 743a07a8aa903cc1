// Package taxonomy maps species identities onto the edges of a phylogenetic
// tree through time.
//
// A Taxonomy is a set of Segments. Each Segment says: species S occupied
// edge E from age Start back-in-time down to age End (ages decrease toward
// the present, so Start > End >= 0). A species may span several edges, and
// an edge may host several species in succession; the only structural rule
// is per-species contiguity: sorted from oldest to youngest, a species'
// segments must tile its lifespan with no gap and no overlap.
//
// Key features:
//   - New validates ranges and contiguity up front; a Taxonomy value is
//     immutable afterwards and safe for concurrent readers.
//   - FromTree derives the trivial taxonomy in which every edge is its own
//     species (species id = edge id = child node id), the form used when a
//     caller supplies only a tree. A positive pendant root edge contributes
//     one extra lineage rooted above the root node.
//   - SegmentAt performs the bracketing lookup used to resolve a sampled
//     occurrence time to an edge; an age matched by zero or several
//     segments yields a ResolutionError wrapping ErrEdgeResolution.
//
// Errors:
//   - ErrNoSegments:     New received an empty slice.
//   - ErrNegativeID:     a species or edge id is negative.
//   - ErrSegmentRange:   Start <= End, or End < 0.
//   - ErrContiguity:     a species' segments leave a gap or overlap.
//   - ErrSpeciesNotFound: a query named an unknown species.
//   - ErrEdgeResolution: SegmentAt found no unique bracketing segment.
//   - ErrNilTree:        FromTree received nil.
package taxonomy
