package truss

import (
	"errors"

	"github.com/watollah/twl-bachelorarbeit-sub000/geometry"
)

// Sentinel errors for model construction and lookups. A Model that fails
// construction reflects a bug in the calling layer, so these are surfaced
// immediately rather than deferred to validation.
var (
	// ErrDuplicateID indicates an id already used by any entity in the Model.
	ErrDuplicateID = errors.New("truss: duplicate entity id")

	// ErrNodeNotFound indicates a reference to a node id absent from the Model.
	ErrNodeNotFound = errors.New("truss: node not found")

	// ErrBeamNotFound indicates a reference to a beam id absent from the Model.
	ErrBeamNotFound = errors.New("truss: beam not found")

	// ErrZeroLengthBeam indicates a beam whose endpoints are the same node.
	ErrZeroLengthBeam = errors.New("truss: beam endpoints must differ")

	// ErrBadConstraints indicates a support removing fewer than 1 or more
	// than 2 degrees of freedom.
	ErrBadConstraints = errors.New("truss: support constraints must be 1 or 2")

	// ErrNotIncident indicates a beam/node pair that do not touch.
	ErrNotIncident = errors.New("truss: beam is not incident to node")
)

// Node is a pin joint at a fixed position in the plane.
type Node struct {
	ID string
	X  float64
	Y  float64
}

// Pos returns the node's position as a geometry.Point.
func (n Node) Pos() geometry.Point {
	return geometry.Point{X: n.X, Y: n.Y}
}

// Beam is a straight pin-ended member between two distinct nodes. It
// carries a single unknown axial force once solved.
type Beam struct {
	ID          string
	StartNodeID string
	EndNodeID   string
}

// OtherEnd returns the endpoint opposite nodeID, or false when the beam
// does not touch nodeID at all.
func (b Beam) OtherEnd(nodeID string) (string, bool) {
	switch nodeID {
	case b.StartNodeID:
		return b.EndNodeID, true
	case b.EndNodeID:
		return b.StartNodeID, true
	default:
		return "", false
	}
}

// Support fixes a node against movement along one axis (Constraints == 1,
// a roller) or both (Constraints == 2, a pin). AngleDeg is the support's
// orientation — the axis a roller is still free to travel along — so a
// roller's single reaction acts perpendicular to it: a roller on a
// horizontal surface (AngleDeg 90) reacts vertically. A pin's reaction is
// resolved into axis-aligned components and its AngleDeg only orients the
// drawn symbol.
type Support struct {
	ID          string
	NodeID      string
	AngleDeg    float64
	Constraints int
}

// ReactionAngle returns the axis the support's reaction acts along,
// perpendicular to the support's orientation, in [0,360).
func (s Support) ReactionAngle() float64 {
	return geometry.NormalizeAngle(s.AngleDeg + 90)
}

// Force is an external load applied at a node. AngleDeg follows the truss
// convention (0° up, clockwise); Strength is signed, in kN.
type Force struct {
	ID       string
	NodeID   string
	AngleDeg float64
	Strength float64
}

// Model is the complete structure under analysis. Entities live in ordered
// slices — declaration order — with id indexes on the side. All ids share
// one namespace.
//
// A Model is cheap to copy via clone(); the cascade-removal operations
// return fresh Models and never touch the receiver.
type Model struct {
	nodes    []Node
	beams    []Beam
	supports []Support
	forces   []Force

	nodeIx map[string]int
	beamIx map[string]int
	ids    map[string]struct{}
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{
		nodeIx: make(map[string]int),
		beamIx: make(map[string]int),
		ids:    make(map[string]struct{}),
	}
}
