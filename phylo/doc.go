// Package phylo provides the rooted, edge-weighted tree value consumed by
// every simulation and post-processing component in taphos.
//
// A Tree T = (nodes, edges) obeys a strict input contract:
//
//   - Node identifiers are contiguous integers 0..NodeCount()-1.
//   - Tips are numbered first: ids 0..TipCount()-1 are leaves, the rest are
//     internal nodes. Exactly one internal node is the root.
//   - Every non-root edge carries a positive length and points from parent
//     to child. The root may additionally own a pendant "root edge" of
//     separately specified, non-negative length (WithRootEdge).
//   - Trees are immutable once constructed. Pruning operations (DropTips)
//     return fresh trees and never touch the receiver, so callers can hold
//     references to earlier trees indefinitely.
//
// Time convention: ages are measured backward from the present. Ages()
// returns, per node, the distance from the deepest (most recent) tip, so the
// youngest tip of any tree sits at age 0 and the root carries the largest
// age. Depths() is the complementary root-to-node accumulated length.
//
// Why immutable?
//
//   - The sampling engine treats the tree as a read-only collaborator; a
//     frozen value lets every derived index (parents, children, depths,
//     ages) be computed once at construction and shared freely without
//     locks.
//   - Deterministic iteration (Children(), TipSet(), Descendants() all
//     return ascending node ids) keeps downstream stochastic draws
//     reproducible under a fixed seed.
//
// Traversals use explicit stacks and queues rather than recursion, so very
// deep (pectinate) trees cannot exhaust the goroutine stack.
//
// Errors:
//
//   - ErrTooFewTips       - fewer than two tips requested or remaining.
//   - ErrNoEdges          - constructor received an empty edge list.
//   - ErrNodeNumbering    - ids are not contiguous/tips-first.
//   - ErrMultipleRoots    - more or fewer than one parentless node.
//   - ErrMultipleParents  - a node appears as child of two edges.
//   - ErrEdgeLength       - non-positive branch length.
//   - ErrRootEdgeLength   - negative pendant root edge length.
//   - ErrDisconnected     - some node is unreachable from the root.
//   - ErrLabelCount       - tip label slice length mismatch.
//   - ErrDuplicateLabel   - two tips share a label.
//   - ErrNodeNotFound     - a query referenced an id outside the tree.
package phylo
