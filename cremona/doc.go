// Package cremona orders a solved truss into the drawing steps of the
// classical Cremona force diagram, ready for step-through presentation.
//
// The sequence has two phases:
//
//  1. Outside steps — one per external force and one per support reaction,
//     carrying no node. They are sorted by clockwise angle around the
//     midpoint of their reference points, anchored at the first declared
//     external force, so the diagram always opens with the loads the user
//     entered.
//  2. Node resolution — the method of joints: repeatedly pick the first
//     declared node with at most two still-unknown incident forces and at
//     least one known one. The node's forces are walked in angular order
//     from its first known non-zero force; a force met before it can be
//     fixed is emitted as a provisional sketch step and buffered, and the
//     buffer is flushed into final steps as soon as the walk reaches a
//     force that is already known. Every sketch step of a force therefore
//     precedes its final step.
//
// Determinism: all orderings are relative angles with stable
// declaration-order tie-breaks; identical input yields a bit-for-bit
// identical sequence. An empty solution (invalid model) yields an empty
// sequence.
package cremona
