// Package truss holds the structural model of a pin-jointed planar truss —
// nodes, beams, supports and external forces — together with its topology
// queries and the validity predicate suite that gates solving.
//
// What
//
//   - Model: ordered, id-indexed collections of the four entity kinds.
//     Declaration order is the canonical order; every derived computation
//     in this module iterates entities in that order, never in map order.
//   - Topology: per-node incident beams/supports/forces, node degree,
//     beam length and the beam's angle as seen from either endpoint.
//   - Cascade removal: RemoveBeam and RemoveNode return a new Model with
//     the dependent entities resolved away (a beam-less node disappears
//     along with its supports and forces). The receiver is never mutated.
//   - Validity: Validate() evaluates the predicate suite — connectivity,
//     static determinacy, stability, beam overlap, reaction-force count —
//     and reports each verdict separately so a caller can display an
//     accurate diagnostic.
//
// Structural invalidity is a first-class result, not an error. The error
// values in this package cover malformed input only (duplicate ids,
// dangling references), which construction rejects immediately.
//
// Complexity (N = nodes, E = beams)
//
//   - Connectivity: O(N+E) depth-first traversal.
//   - Overlap detection: O(E²) pairwise strict segment intersection.
//   - Shape detection: O(E log E) half-edge face walk.
//
// Trusses the surrounding editor can produce are tens of entities, so the
// quadratic overlap scan is deliberate.
package truss
