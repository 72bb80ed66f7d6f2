// Package equilibrium turns a valid truss.Model into the dense linear
// system of nodal equilibrium equations and solves it for every unknown
// reaction component and beam axial force.
//
// What
//
//   - Each node contributes two equations, ΣFx = 0 and ΣFy = 0.
//   - Each support contributes unknowns for the degrees of freedom it
//     removes: a pin (2 constraints) one horizontal and one vertical
//     reaction component, a roller (1 constraint) a single reaction along
//     its axis. Each beam contributes one unknown axial force acting along
//     the beam as seen from each endpoint.
//   - Static determinacy guarantees a square (2N × 2N) system; it is
//     assembled into a gonum mat.Dense and solved by LU factorization.
//   - Solved strengths are classified: negative = compressive, positive =
//     tensile, zero after rounding = zero-force member.
//
// Contract
//
//   - Solve on a Model that fails truss.Validate returns an empty,
//     non-nil Solution with a nil error: structural invalidity is a
//     first-class result, not an error.
//   - A system that passes validation but is numerically degenerate
//     (nearly parallel support axes and similar borderline geometry)
//     is reported as ErrIllConditioned rather than letting garbage
//     strengths escape. The validity predicates are necessary, not
//     sufficient; this is the backstop.
//
// Determinism: unknown columns follow support declaration order (a pin's
// horizontal component before its vertical one), then beam declaration
// order; equation rows follow node declaration order, ΣFx before ΣFy.
//
// Complexity: O(N³) for the LU solve; N is small (tens of nodes), so a
// solve completes well under a millisecond.
package equilibrium
