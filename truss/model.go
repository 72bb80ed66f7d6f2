package truss

import (
	"fmt"

	"github.com/watollah/twl-bachelorarbeit-sub000/geometry"
)

// claim reserves id in the shared namespace.
func (m *Model) claim(id string) error {
	if _, taken := m.ids[id]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	m.ids[id] = struct{}{}

	return nil
}

// AddNode inserts a node. The id must be unused.
func (m *Model) AddNode(n Node) error {
	if err := m.claim(n.ID); err != nil {
		return err
	}
	m.nodeIx[n.ID] = len(m.nodes)
	m.nodes = append(m.nodes, n)

	return nil
}

// AddBeam inserts a beam between two existing, distinct nodes.
func (m *Model) AddBeam(b Beam) error {
	if b.StartNodeID == b.EndNodeID {
		return fmt.Errorf("%w: %q", ErrZeroLengthBeam, b.ID)
	}
	if _, ok := m.nodeIx[b.StartNodeID]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, b.StartNodeID)
	}
	if _, ok := m.nodeIx[b.EndNodeID]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, b.EndNodeID)
	}
	if err := m.claim(b.ID); err != nil {
		return err
	}
	m.beamIx[b.ID] = len(m.beams)
	m.beams = append(m.beams, b)

	return nil
}

// AddBeamBetween inserts a beam, creating either endpoint node at the given
// position when it does not exist yet. This mirrors how the editor drags a
// beam into empty space.
func (m *Model) AddBeamBetween(beamID, startID, endID string, start, end geometry.Point) error {
	if _, ok := m.nodeIx[startID]; !ok {
		if err := m.AddNode(Node{ID: startID, X: start.X, Y: start.Y}); err != nil {
			return err
		}
	}
	if _, ok := m.nodeIx[endID]; !ok {
		if err := m.AddNode(Node{ID: endID, X: end.X, Y: end.Y}); err != nil {
			return err
		}
	}

	return m.AddBeam(Beam{ID: beamID, StartNodeID: startID, EndNodeID: endID})
}

// AddSupport inserts a support at an existing node.
func (m *Model) AddSupport(s Support) error {
	if s.Constraints < 1 || s.Constraints > 2 {
		return fmt.Errorf("%w: %q has %d", ErrBadConstraints, s.ID, s.Constraints)
	}
	if _, ok := m.nodeIx[s.NodeID]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, s.NodeID)
	}
	if err := m.claim(s.ID); err != nil {
		return err
	}
	s.AngleDeg = geometry.NormalizeAngle(s.AngleDeg)
	m.supports = append(m.supports, s)

	return nil
}

// AddForce inserts an external load at an existing node.
func (m *Model) AddForce(f Force) error {
	if _, ok := m.nodeIx[f.NodeID]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, f.NodeID)
	}
	if err := m.claim(f.ID); err != nil {
		return err
	}
	f.AngleDeg = geometry.NormalizeAngle(f.AngleDeg)
	m.forces = append(m.forces, f)

	return nil
}

// Nodes returns the nodes in declaration order. The slice is a copy.
func (m *Model) Nodes() []Node { return append([]Node(nil), m.nodes...) }

// Beams returns the beams in declaration order. The slice is a copy.
func (m *Model) Beams() []Beam { return append([]Beam(nil), m.beams...) }

// Supports returns the supports in declaration order. The slice is a copy.
func (m *Model) Supports() []Support { return append([]Support(nil), m.supports...) }

// Forces returns the external forces in declaration order. The slice is a copy.
func (m *Model) Forces() []Force { return append([]Force(nil), m.forces...) }

// Node looks a node up by id.
func (m *Model) Node(id string) (Node, bool) {
	ix, ok := m.nodeIx[id]
	if !ok {
		return Node{}, false
	}

	return m.nodes[ix], true
}

// Beam looks a beam up by id.
func (m *Model) Beam(id string) (Beam, bool) {
	ix, ok := m.beamIx[id]
	if !ok {
		return Beam{}, false
	}

	return m.beams[ix], true
}

// BeamsAt returns the beams incident to nodeID, in declaration order.
func (m *Model) BeamsAt(nodeID string) []Beam {
	var out []Beam
	for _, b := range m.beams {
		if b.StartNodeID == nodeID || b.EndNodeID == nodeID {
			out = append(out, b)
		}
	}

	return out
}

// SupportsAt returns the supports on nodeID, in declaration order.
func (m *Model) SupportsAt(nodeID string) []Support {
	var out []Support
	for _, s := range m.supports {
		if s.NodeID == nodeID {
			out = append(out, s)
		}
	}

	return out
}

// ForcesAt returns the external forces on nodeID, in declaration order.
func (m *Model) ForcesAt(nodeID string) []Force {
	var out []Force
	for _, f := range m.forces {
		if f.NodeID == nodeID {
			out = append(out, f)
		}
	}

	return out
}

// Degree returns the number of beams incident to nodeID.
func (m *Model) Degree(nodeID string) int { return len(m.BeamsAt(nodeID)) }

// BeamLength returns the Euclidean length of the beam.
func (m *Model) BeamLength(beamID string) (float64, error) {
	seg, err := m.beamSegment(beamID)
	if err != nil {
		return 0, err
	}

	return geometry.Distance(seg.A, seg.B), nil
}

// BeamAngleAt returns the beam's direction as seen from nodeID, i.e. the
// angle from that endpoint toward the other one, in [0,360).
func (m *Model) BeamAngleAt(beamID, nodeID string) (float64, error) {
	b, ok := m.Beam(beamID)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBeamNotFound, beamID)
	}
	otherID, ok := b.OtherEnd(nodeID)
	if !ok {
		return 0, fmt.Errorf("%w: beam %q, node %q", ErrNotIncident, beamID, nodeID)
	}
	from, _ := m.Node(nodeID)
	to, _ := m.Node(otherID)

	return geometry.Angle(from.Pos(), to.Pos()), nil
}

// beamSegment returns the beam's geometry.
func (m *Model) beamSegment(beamID string) (geometry.Segment, error) {
	b, ok := m.Beam(beamID)
	if !ok {
		return geometry.Segment{}, fmt.Errorf("%w: %q", ErrBeamNotFound, beamID)
	}
	start, _ := m.Node(b.StartNodeID)
	end, _ := m.Node(b.EndNodeID)

	return geometry.Segment{A: start.Pos(), B: end.Pos()}, nil
}

// totalConstraints sums the degrees of freedom removed by all supports.
func (m *Model) totalConstraints() int {
	sum := 0
	for _, s := range m.supports {
		sum += s.Constraints
	}

	return sum
}

// clone copies the Model without the entities listed in drop.
func (m *Model) clone(drop map[string]struct{}) *Model {
	out := NewModel()
	for _, n := range m.nodes {
		if _, gone := drop[n.ID]; !gone {
			_ = out.AddNode(n)
		}
	}
	for _, b := range m.beams {
		if _, gone := drop[b.ID]; !gone {
			_ = out.AddBeam(b)
		}
	}
	for _, s := range m.supports {
		if _, gone := drop[s.ID]; !gone {
			_ = out.AddSupport(s)
		}
	}
	for _, f := range m.forces {
		if _, gone := drop[f.ID]; !gone {
			_ = out.AddForce(f)
		}
	}

	return out
}

// RemoveBeam returns a new Model without the beam. An endpoint left with no
// remaining beams is removed as well, together with every support and force
// attached to it. The receiver is unchanged.
func (m *Model) RemoveBeam(beamID string) (*Model, error) {
	b, ok := m.Beam(beamID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBeamNotFound, beamID)
	}

	drop := map[string]struct{}{beamID: {}}
	for _, nodeID := range []string{b.StartNodeID, b.EndNodeID} {
		// Orphaned endpoint: its only beam was the one being removed.
		if m.Degree(nodeID) == 1 {
			m.dropNodeInto(nodeID, drop)
		}
	}

	return m.clone(drop), nil
}

// RemoveNode returns a new Model without the node, its supports and forces,
// and every beam touching it; far endpoints orphaned by those beam removals
// cascade the same way. The receiver is unchanged.
func (m *Model) RemoveNode(nodeID string) (*Model, error) {
	if _, ok := m.Node(nodeID); !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, nodeID)
	}

	drop := make(map[string]struct{})
	m.dropNodeInto(nodeID, drop)

	return m.clone(drop), nil
}

// dropNodeInto marks nodeID, its attachments, its beams, and any endpoint
// orphaned by those beam removals. Termination: each call consumes a node.
func (m *Model) dropNodeInto(nodeID string, drop map[string]struct{}) {
	if _, seen := drop[nodeID]; seen {
		return
	}
	drop[nodeID] = struct{}{}
	for _, s := range m.SupportsAt(nodeID) {
		drop[s.ID] = struct{}{}
	}
	for _, f := range m.ForcesAt(nodeID) {
		drop[f.ID] = struct{}{}
	}
	for _, b := range m.BeamsAt(nodeID) {
		if _, gone := drop[b.ID]; gone {
			continue
		}
		drop[b.ID] = struct{}{}
		otherID, _ := b.OtherEnd(nodeID)
		if m.remainingDegree(otherID, drop) == 0 {
			m.dropNodeInto(otherID, drop)
		}
	}
}

// remainingDegree counts beams at nodeID not already marked for removal.
func (m *Model) remainingDegree(nodeID string, drop map[string]struct{}) int {
	deg := 0
	for _, b := range m.BeamsAt(nodeID) {
		if _, gone := drop[b.ID]; !gone {
			deg++
		}
	}

	return deg
}
