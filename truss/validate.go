package truss

import (
	"math"
	"sort"

	"github.com/watollah/twl-bachelorarbeit-sub000/geometry"
)

// floating tolerance for angle congruence and point coincidence checks.
const validateEps = 1e-6

// Validity is the outcome of the full predicate suite, one verdict per
// predicate so the caller can display an exact diagnostic.
type Validity struct {
	IsValid bool

	NonEmpty               bool
	NonEmptyForces         bool
	IsConnected            bool
	IsStatDet              bool
	IsStable               bool
	HasOverlappingBeams    bool
	HasThreeReactionForces bool
}

// Validate evaluates every structural predicate. A Model is valid iff it is
// non-empty, carries at least one external force, removes exactly three
// reaction degrees of freedom, is connected, statically determinate, stable,
// and free of overlapping beams.
func (m *Model) Validate() Validity {
	v := Validity{
		NonEmpty:               len(m.nodes) > 0 && len(m.beams) > 0,
		NonEmptyForces:         len(m.forces) > 0,
		IsConnected:            m.IsConnected(),
		IsStatDet:              m.IsStatDet(),
		IsStable:               m.IsStable(),
		HasOverlappingBeams:    m.HasOverlappingBeams(),
		HasThreeReactionForces: m.HasThreeReactionForces(),
	}
	v.IsValid = v.NonEmpty && v.NonEmptyForces && v.HasThreeReactionForces &&
		v.IsConnected && v.IsStatDet && v.IsStable && !v.HasOverlappingBeams

	return v
}

// IsStatDet reports static determinacy: two equilibrium equations per node,
// one unknown per removed degree of freedom and per beam.
func (m *Model) IsStatDet() bool {
	return 2*len(m.nodes) == m.totalConstraints()+len(m.beams)
}

// HasThreeReactionForces reports whether the supports remove exactly the
// three degrees of freedom the solver's reaction convention requires.
func (m *Model) HasThreeReactionForces() bool {
	return m.totalConstraints() == 3
}

// IsConnected reports whether the beam graph forms a single component.
// An empty Model is trivially connected. Complexity: O(N+E).
func (m *Model) IsConnected() bool {
	if len(m.nodes) == 0 {
		return true
	}

	// 1. Adjacency from beams, node index → neighboring node indexes.
	adj := make([][]int, len(m.nodes))
	for _, b := range m.beams {
		si, ei := m.nodeIx[b.StartNodeID], m.nodeIx[b.EndNodeID]
		adj[si] = append(adj[si], ei)
		adj[ei] = append(adj[ei], si)
	}

	// 2. Depth-first from the first declared node, explicit stack.
	visited := make([]bool, len(m.nodes))
	stack := []int{0}
	visited[0] = true
	seen := 1
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range adj[cur] {
			if !visited[nb] {
				visited[nb] = true
				seen++
				stack = append(stack, nb)
			}
		}
	}

	return seen == len(m.nodes)
}

// HasOverlappingBeams reports whether any two beams cross in their strict
// interiors. Beams sharing an endpoint never count. Complexity: O(E²).
func (m *Model) HasOverlappingBeams() bool {
	segs := make([]geometry.Segment, len(m.beams))
	for i, b := range m.beams {
		segs[i], _ = m.beamSegment(b.ID)
	}
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			if geometry.SegmentsIntersect(segs[i], segs[j]) {
				return true
			}
		}
	}

	return false
}

// IsStable applies the classical necessary conditions: at least three
// reaction degrees of freedom, support axes neither all parallel nor all
// concurrent, a connected beam graph, and a fully triangulated shape.
//
// These conditions do not prove non-singularity of the equilibrium matrix
// for every geometry they accept; the solver flags the residual degenerate
// cases numerically.
func (m *Model) IsStable() bool {
	return m.totalConstraints() >= 3 &&
		!m.supportsParallel() &&
		!m.supportsConcurrent() &&
		m.IsConnected() &&
		!m.HasNonTriangularShape()
}

// supportsParallel reports whether two or more single-axis supports exist
// and all of their axes point the same way modulo 180°.
func (m *Model) supportsParallel() bool {
	var angles []float64
	for _, s := range m.supports {
		if s.Constraints == 1 {
			angles = append(angles, math.Mod(s.ReactionAngle(), 180))
		}
	}
	if len(angles) < 2 {
		return false
	}
	for _, a := range angles[1:] {
		diff := math.Abs(a - angles[0])
		if diff > validateEps && math.Abs(diff-180) > validateEps {
			return false
		}
	}

	return true
}

// supportsConcurrent tests the three-roller configuration: three single-axis
// supports whose lines of action all pass through one point (or degenerate
// into the same line) leave the structure free to rotate about that point.
func (m *Model) supportsConcurrent() bool {
	type line struct {
		p      geometry.Point
		dx, dy float64
	}
	var lines []line
	for _, s := range m.supports {
		if s.Constraints != 1 {
			continue
		}
		n, _ := m.Node(s.NodeID)
		dx, dy := geometry.Direction(s.ReactionAngle())
		lines = append(lines, line{p: n.Pos(), dx: dx, dy: dy})
	}
	if len(lines) != 3 || m.supportsParallel() {
		return false
	}

	// Pairwise line intersections; a parallel pair is tolerated only when
	// collinear (it then imposes no distinct point).
	var points []geometry.Point
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			a, b := lines[i], lines[j]
			den := a.dx*b.dy - a.dy*b.dx
			if math.Abs(den) < validateEps {
				// Parallel: collinear iff b.p sits on a's line.
				cross := (b.p.X-a.p.X)*a.dy - (b.p.Y-a.p.Y)*a.dx
				if math.Abs(cross) > validateEps {
					return false
				}
				continue
			}
			t := ((b.p.X-a.p.X)*b.dy - (b.p.Y-a.p.Y)*b.dx) / den
			points = append(points, geometry.Point{X: a.p.X + t*a.dx, Y: a.p.Y + t*a.dy})
		}
	}
	if len(points) == 0 {
		// Every pair collinear: one shared line of action.
		return true
	}
	for _, p := range points[1:] {
		if geometry.Distance(points[0], p) > validateEps {
			return false
		}
	}

	return true
}

// halfEdge is one directed copy of a beam, pointing outward from a node.
type halfEdge struct {
	from  int     // node index the edge leaves
	to    int     // node index the edge enters
	angle float64 // beam angle as seen from `from`
}

// HasNonTriangularShape reports whether the beam graph, read as a planar
// subdivision, contains more than one face that is not a triangle. Exactly
// one non-triangle face is tolerated: the outer boundary. Any node with
// fewer than two beams cannot close a face and fails immediately.
//
// The face trace duplicates every beam into two directed half-edges and
// repeatedly "turns right": from the end of the current half-edge it picks
// the unconsumed outgoing half-edge whose angle is the closest one strictly
// below the reverse of the incoming angle, wrapping to the largest angle
// when none is smaller.
func (m *Model) HasNonTriangularShape() bool {
	if len(m.beams) == 0 {
		return true
	}
	for _, n := range m.nodes {
		if m.Degree(n.ID) < 2 {
			return true
		}
	}

	// 1. Two half-edges per beam: index 2k start→end, 2k+1 end→start.
	edges := make([]halfEdge, 2*len(m.beams))
	outgoing := make([][]int, len(m.nodes))
	for k, b := range m.beams {
		si, ei := m.nodeIx[b.StartNodeID], m.nodeIx[b.EndNodeID]
		fwd, _ := m.BeamAngleAt(b.ID, b.StartNodeID)
		rev, _ := m.BeamAngleAt(b.ID, b.EndNodeID)
		edges[2*k] = halfEdge{from: si, to: ei, angle: fwd}
		edges[2*k+1] = halfEdge{from: ei, to: si, angle: rev}
		outgoing[si] = append(outgoing[si], 2*k)
		outgoing[ei] = append(outgoing[ei], 2*k+1)
	}
	for _, out := range outgoing {
		sort.SliceStable(out, func(i, j int) bool {
			return edges[out[i]].angle < edges[out[j]].angle
		})
	}

	// 2. Trace faces until every half-edge is consumed.
	consumed := make([]bool, len(edges))
	bigFaces := 0
	for first := range edges {
		if consumed[first] {
			continue
		}
		start := edges[first].from
		cur := first
		order := 0
		for {
			consumed[cur] = true
			order++
			if edges[cur].to == start {
				break
			}
			next := turnRight(edges, outgoing, consumed, cur)
			if next < 0 {
				break
			}
			cur = next
		}
		if order > 3 {
			bigFaces++
		}
	}

	return bigFaces > 1
}

// turnRight picks the next half-edge of the face trace leaving edges[cur].to.
func turnRight(edges []halfEdge, outgoing [][]int, consumed []bool, cur int) int {
	incoming := geometry.NormalizeAngle(edges[cur].angle + 180)

	below, wrap := -1, -1
	for _, cand := range outgoing[edges[cur].to] {
		if consumed[cand] {
			continue
		}
		a := edges[cand].angle
		// Outgoing lists are sorted ascending, so the last match wins:
		// `below` ends up the largest angle strictly under the incoming
		// reverse, `wrap` the largest angle overall.
		if a < incoming-validateEps {
			below = cand
		}
		wrap = cand
	}
	if below >= 0 {
		return below
	}

	return wrap
}
