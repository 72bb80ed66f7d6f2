// Package geometry provides the 2-D primitives the truss core is built on:
// points, segments and triangles, with rotation, projection distance,
// strict segment intersection, barycentric containment and the truss
// angle convention.
//
// Conventions
//
//   - Coordinates are screen-space: X grows right, Y grows down.
//   - Angles are degrees at the API boundary, radians internally.
//   - Angle 0 points up, angles grow clockwise, and every angle returned
//     by this package is normalized into [0,360).
//
// All functions are total: there is no error path. The one operation that
// could divide by zero — intersection of parallel or degenerate segments —
// reports "no intersection" instead.
//
// Complexity: every function is O(1) except Midpoint, which is O(n) in the
// number of polygon vertices.
package geometry
