// Package twl is the analysis core behind a pin-jointed planar truss
// editor: it validates a structure, solves its member and reaction forces,
// and orders the result into the drawing steps of the classical Cremona
// force diagram.
//
// The core is a pure function of its input — synchronous, CPU-only, free
// of I/O — and is organized into four subpackages:
//
//	geometry/    — 2-D primitives: angles, rotation, segment intersection,
//	               barycentric containment
//	truss/       — the structural model (nodes, beams, supports, forces),
//	               topology queries, cascade removal, validity predicates
//	equilibrium/ — the 2N×2N nodal equilibrium system and its dense solve
//	cremona/     — the deterministic drawing-step sequencer
//
// The intended flow mirrors the editor's edit loop: build or change a
// truss.Model, gate on Validate, Solve, Sequence — recomputed from scratch
// after every logical edit:
//
//	if m.Validate().IsValid {
//	    sol, err := equilibrium.Solve(m)
//	    if err != nil {
//	        // numerically degenerate geometry
//	    }
//	    steps := cremona.Sequence(m, sol)
//	    // hand steps to the presentation layer
//	}
//
// Structural invalidity is never an error: Solve degrades to an empty
// Solution and Sequence to an empty step list, while truss.Validity tells
// the caller exactly which predicate failed.
package twl
