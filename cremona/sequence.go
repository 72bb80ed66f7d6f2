package cremona

import (
	"math"
	"sort"

	"github.com/watollah/twl-bachelorarbeit-sub000/equilibrium"
	"github.com/watollah/twl-bachelorarbeit-sub000/geometry"
	"github.com/watollah/twl-bachelorarbeit-sub000/truss"
)

// zeroTol treats strengths below half a hundredth kN as zero when picking
// the angular anchor of a node walk.
const zeroTol = 0.005

// OwnerKind tags the model entity a drawn force belongs to.
type OwnerKind int

const (
	// OwnerForce marks an external load.
	OwnerForce OwnerKind = iota

	// OwnerSupport marks a support's resultant reaction.
	OwnerSupport

	// OwnerBeam marks a beam's axial force.
	OwnerBeam
)

// String implements fmt.Stringer.
func (k OwnerKind) String() string {
	switch k {
	case OwnerForce:
		return "force"
	case OwnerSupport:
		return "support"
	default:
		return "beam"
	}
}

// Step is one drawing instruction of the diagram playback. NodeID is empty
// for the outside steps of phase one. A Sketch step is the provisional
// dashed indication of a force that a later step of the same ForceID
// finalizes.
type Step struct {
	NodeID   string
	ForceID  string
	Owner    OwnerKind
	OwnerID  string
	AngleDeg float64
	Strength float64
	Sketch   bool
}

// diagForce is one force as the diagram sees it at a particular node:
// external load, support reaction resultant, or beam axial force with its
// node-relative angle.
type diagForce struct {
	id       string
	owner    OwnerKind
	ownerID  string
	angle    float64
	strength float64
}

// Sequence produces the full ordered step list for a solved model. It
// returns nil when the solution is empty (the model failed validation).
func Sequence(m *truss.Model, sol *equilibrium.Solution) []Step {
	if m == nil || sol == nil || sol.Empty() {
		return nil
	}

	var steps []Step
	drawn := make(map[string]bool)

	// Phase 1: outside steps, angularly sorted around their midpoint.
	outside := outsideForces(m, sol)
	steps = append(steps, sortOutside(m, sol, outside)...)
	for _, f := range outside {
		drawn[f.id] = true
	}

	// Phase 2: method-of-joints node resolution.
	resolved := make(map[string]bool)
	for {
		nodeID, incident, ok := nextNode(m, sol, drawn, resolved)
		if !ok {
			break
		}
		steps = append(steps, resolveNode(nodeID, incident, drawn)...)
		resolved[nodeID] = true
	}

	return steps
}

// outsideForces lists the diagram's known starting forces: every external
// load, then every support reaction, in declaration order.
func outsideForces(m *truss.Model, sol *equilibrium.Solution) []diagForce {
	var out []diagForce
	for _, f := range m.Forces() {
		out = append(out, diagForce{id: f.ID, owner: OwnerForce, ownerID: f.ID, angle: f.AngleDeg, strength: f.Strength})
	}
	for _, r := range sol.Reactions() {
		out = append(out, diagForce{id: r.SupportID, owner: OwnerSupport, ownerID: r.SupportID, angle: r.AngleDeg, strength: r.Strength})
	}

	return out
}

// sortOutside orders the outside forces clockwise around the midpoint of
// their reference points — each force's node offset one unit along the
// force's direction — starting at the first declared external force.
func sortOutside(m *truss.Model, sol *equilibrium.Solution, outside []diagForce) []Step {
	// 1. Reference points.
	nodeOf := func(f diagForce) string {
		if f.owner == OwnerForce {
			for _, mf := range m.Forces() {
				if mf.ID == f.id {
					return mf.NodeID
				}
			}
		}
		for _, r := range sol.Reactions() {
			if r.SupportID == f.id {
				return r.NodeID
			}
		}

		return ""
	}
	points := make([]geometry.Point, len(outside))
	for i, f := range outside {
		n, _ := m.Node(nodeOf(f))
		dx, dy := geometry.Direction(f.angle)
		points[i] = geometry.Point{X: n.X + dx, Y: n.Y + dy}
	}

	// 2. Clockwise angles around the midpoint, anchored at the first
	//    external force (outside[0] by construction).
	mid := geometry.Midpoint(points)
	anchor := geometry.Angle(mid, points[0])
	order := make([]int, len(outside))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		ai := geometry.NormalizeAngle(geometry.Angle(mid, points[order[i]]) - anchor)
		aj := geometry.NormalizeAngle(geometry.Angle(mid, points[order[j]]) - anchor)

		return ai < aj
	})

	// 3. Emit in that order, no owning node.
	steps := make([]Step, len(outside))
	for i, ix := range order {
		f := outside[ix]
		steps[i] = Step{ForceID: f.id, Owner: f.owner, OwnerID: f.ownerID, AngleDeg: f.angle, Strength: f.strength}
	}

	return steps
}

// incidentForces lists every force meeting at a node — its external loads,
// its support reactions, and its beams' axial forces with node-relative
// angles — in declaration order per entity kind.
func incidentForces(m *truss.Model, sol *equilibrium.Solution, nodeID string) []diagForce {
	var out []diagForce
	for _, f := range m.ForcesAt(nodeID) {
		out = append(out, diagForce{id: f.ID, owner: OwnerForce, ownerID: f.ID, angle: f.AngleDeg, strength: f.Strength})
	}
	for _, r := range sol.Reactions() {
		if r.NodeID == nodeID {
			out = append(out, diagForce{id: r.SupportID, owner: OwnerSupport, ownerID: r.SupportID, angle: r.AngleDeg, strength: r.Strength})
		}
	}
	for _, b := range m.BeamsAt(nodeID) {
		angle, _ := m.BeamAngleAt(b.ID, nodeID)
		var strength float64
		if rs := sol.ByOwner(b.ID); len(rs) == 1 {
			strength = rs[0].Strength
		}
		out = append(out, diagForce{id: b.ID, owner: OwnerBeam, ownerID: b.ID, angle: angle, strength: strength})
	}

	return out
}

// nextNode returns the first declared unresolved node satisfying the
// method-of-joints condition: at most two unknown incident forces and at
// least one known one.
func nextNode(m *truss.Model, sol *equilibrium.Solution, drawn, resolved map[string]bool) (string, []diagForce, bool) {
	for _, n := range m.Nodes() {
		if resolved[n.ID] {
			continue
		}
		incident := incidentForces(m, sol, n.ID)
		unknown, known := 0, 0
		for _, f := range incident {
			if drawn[f.id] {
				known++
			} else {
				unknown++
			}
		}
		if unknown <= 2 && known >= 1 {
			return n.ID, incident, true
		}
	}

	return "", nil, false
}

// resolveNode walks one node's forces in angular order from its first known
// non-zero force. Unknown forces are sketched and buffered; each known
// force met on the walk flushes the buffer into final steps.
func resolveNode(nodeID string, incident []diagForce, drawn map[string]bool) []Step {
	// 1. Angular anchor.
	startAngle := 0.0
	for _, f := range incident {
		if drawn[f.id] && math.Abs(f.strength) > zeroTol {
			startAngle = f.angle
			break
		}
	}

	// 2. Stable angular sort relative to the anchor.
	sorted := append([]diagForce(nil), incident...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return geometry.NormalizeAngle(sorted[i].angle-startAngle) <
			geometry.NormalizeAngle(sorted[j].angle-startAngle)
	})

	// 3. Sketch-and-flush walk.
	var steps []Step
	var pending []diagForce
	flush := func() {
		for _, p := range pending {
			steps = append(steps, Step{NodeID: nodeID, ForceID: p.id, Owner: p.owner, OwnerID: p.ownerID, AngleDeg: p.angle, Strength: p.strength})
			drawn[p.id] = true
		}
		pending = pending[:0]
	}
	for _, f := range sorted {
		if drawn[f.id] {
			flush()
			continue
		}
		steps = append(steps, Step{NodeID: nodeID, ForceID: f.id, Owner: f.owner, OwnerID: f.ownerID, AngleDeg: f.angle, Strength: f.strength, Sketch: true})
		pending = append(pending, f)
	}
	flush()

	return steps
}
