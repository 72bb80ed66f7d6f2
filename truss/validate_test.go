package truss_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watollah/twl-bachelorarbeit-sub000/truss"
)

// TestValidate_Triangle: the canonical triangle passes the whole suite.
func TestValidate_Triangle(t *testing.T) {
	v := triangleModel(t).Validate()

	assert.True(t, v.IsValid)
	assert.True(t, v.NonEmpty)
	assert.True(t, v.NonEmptyForces)
	assert.True(t, v.IsConnected)
	assert.True(t, v.IsStatDet)
	assert.True(t, v.IsStable)
	assert.True(t, v.HasThreeReactionForces)
	assert.False(t, v.HasOverlappingBeams)
}

// TestValidate_EmptyAndForceless: missing entities fail the right predicates.
func TestValidate_EmptyAndForceless(t *testing.T) {
	empty := truss.NewModel().Validate()
	assert.False(t, empty.IsValid)
	assert.False(t, empty.NonEmpty)
	assert.True(t, empty.IsConnected, "an empty model is trivially connected")

	m := triangleModel(t)
	noForce, err := m.RemoveNode("C") // takes the only force with it
	require.NoError(t, err)
	v := noForce.Validate()
	assert.False(t, v.NonEmptyForces)
	assert.False(t, v.IsValid)
}

// TestIsStatDet holds exactly when 2N equals constraints plus beams, over a
// sweep of support configurations on a fixed chain of nodes.
func TestIsStatDet(t *testing.T) {
	for nodes := 2; nodes <= 5; nodes++ {
		for constraints := 0; constraints <= 4; constraints += 2 {
			m := truss.NewModel()
			for i := 0; i < nodes; i++ {
				require.NoError(t, m.AddNode(truss.Node{ID: fmt.Sprintf("N%d", i), X: float64(i)}))
			}
			beams := 0
			for i := 1; i < nodes; i++ {
				require.NoError(t, m.AddBeam(truss.Beam{
					ID:          fmt.Sprintf("B%d", i),
					StartNodeID: fmt.Sprintf("N%d", i-1),
					EndNodeID:   fmt.Sprintf("N%d", i),
				}))
				beams++
			}
			for i := 0; i < constraints/2; i++ {
				require.NoError(t, m.AddSupport(truss.Support{
					ID: fmt.Sprintf("S%d", i), NodeID: fmt.Sprintf("N%d", i), Constraints: 2,
				}))
			}

			want := 2*nodes == constraints+beams
			assert.Equal(t, want, m.IsStatDet(), "nodes=%d constraints=%d beams=%d", nodes, constraints, beams)
		}
	}
}

// TestIsConnected distinguishes one component from two.
func TestIsConnected(t *testing.T) {
	m := truss.NewModel()
	require.NoError(t, m.AddNode(truss.Node{ID: "A"}))
	require.NoError(t, m.AddNode(truss.Node{ID: "B", X: 1}))
	require.NoError(t, m.AddNode(truss.Node{ID: "C", X: 2}))
	require.NoError(t, m.AddNode(truss.Node{ID: "D", X: 3}))
	require.NoError(t, m.AddBeam(truss.Beam{ID: "AB", StartNodeID: "A", EndNodeID: "B"}))
	require.NoError(t, m.AddBeam(truss.Beam{ID: "CD", StartNodeID: "C", EndNodeID: "D"}))
	assert.False(t, m.IsConnected(), "two islands")

	require.NoError(t, m.AddBeam(truss.Beam{ID: "BC", StartNodeID: "B", EndNodeID: "C"}))
	assert.True(t, m.IsConnected(), "bridged into one component")
}

// TestHasOverlappingBeams: crossing diagonals overlap; sharing an endpoint
// does not, and a beam never overlaps itself.
func TestHasOverlappingBeams(t *testing.T) {
	m := truss.NewModel()
	require.NoError(t, m.AddNode(truss.Node{ID: "A", X: 0, Y: 0}))
	require.NoError(t, m.AddNode(truss.Node{ID: "B", X: 2, Y: 2}))
	require.NoError(t, m.AddNode(truss.Node{ID: "C", X: 0, Y: 2}))
	require.NoError(t, m.AddNode(truss.Node{ID: "D", X: 2, Y: 0}))
	require.NoError(t, m.AddBeam(truss.Beam{ID: "AB", StartNodeID: "A", EndNodeID: "B"}))
	assert.False(t, m.HasOverlappingBeams(), "single beam cannot overlap")

	require.NoError(t, m.AddBeam(truss.Beam{ID: "AC", StartNodeID: "A", EndNodeID: "C"}))
	assert.False(t, m.HasOverlappingBeams(), "shared endpoint is not an overlap")

	require.NoError(t, m.AddBeam(truss.Beam{ID: "CD", StartNodeID: "C", EndNodeID: "D"}))
	assert.True(t, m.HasOverlappingBeams(), "AB and CD cross")
}

// TestHasNonTriangularShape covers the face-walk verdicts: a triangle is
// fine, a bare square is not, a square with one diagonal is fine again, and
// any node of degree below two fails immediately.
func TestHasNonTriangularShape(t *testing.T) {
	square := func(t *testing.T) *truss.Model {
		t.Helper()
		m := truss.NewModel()
		require.NoError(t, m.AddNode(truss.Node{ID: "A", X: 0, Y: 0}))
		require.NoError(t, m.AddNode(truss.Node{ID: "B", X: 1, Y: 0}))
		require.NoError(t, m.AddNode(truss.Node{ID: "C", X: 1, Y: 1}))
		require.NoError(t, m.AddNode(truss.Node{ID: "D", X: 0, Y: 1}))
		require.NoError(t, m.AddBeam(truss.Beam{ID: "AB", StartNodeID: "A", EndNodeID: "B"}))
		require.NoError(t, m.AddBeam(truss.Beam{ID: "BC", StartNodeID: "B", EndNodeID: "C"}))
		require.NoError(t, m.AddBeam(truss.Beam{ID: "CD", StartNodeID: "C", EndNodeID: "D"}))
		require.NoError(t, m.AddBeam(truss.Beam{ID: "DA", StartNodeID: "D", EndNodeID: "A"}))

		return m
	}

	assert.False(t, triangleModel(t).HasNonTriangularShape(), "triangle")

	m := square(t)
	assert.True(t, m.HasNonTriangularShape(), "square without diagonal has an inner 4-cycle")

	require.NoError(t, m.AddBeam(truss.Beam{ID: "AC", StartNodeID: "A", EndNodeID: "C"}))
	assert.False(t, m.HasNonTriangularShape(), "diagonal splits the square into triangles")

	chain := truss.NewModel()
	require.NoError(t, chain.AddNode(truss.Node{ID: "A"}))
	require.NoError(t, chain.AddNode(truss.Node{ID: "B", X: 1}))
	require.NoError(t, chain.AddBeam(truss.Beam{ID: "AB", StartNodeID: "A", EndNodeID: "B"}))
	assert.True(t, chain.HasNonTriangularShape(), "degree-1 node cannot close a face")
}

// TestIsStable_SupportGeometry rejects all-parallel and concurrent roller
// arrangements on an otherwise sound triangle.
func TestIsStable_SupportGeometry(t *testing.T) {
	rollers := func(t *testing.T, a, b, c float64) *truss.Model {
		t.Helper()
		m := truss.NewModel()
		require.NoError(t, m.AddNode(truss.Node{ID: "A", X: 0, Y: 0}))
		require.NoError(t, m.AddNode(truss.Node{ID: "B", X: 4, Y: 0}))
		require.NoError(t, m.AddNode(truss.Node{ID: "C", X: 2, Y: 3}))
		require.NoError(t, m.AddBeam(truss.Beam{ID: "AB", StartNodeID: "A", EndNodeID: "B"}))
		require.NoError(t, m.AddBeam(truss.Beam{ID: "BC", StartNodeID: "B", EndNodeID: "C"}))
		require.NoError(t, m.AddBeam(truss.Beam{ID: "CA", StartNodeID: "C", EndNodeID: "A"}))
		require.NoError(t, m.AddSupport(truss.Support{ID: "SA", NodeID: "A", AngleDeg: a, Constraints: 1}))
		require.NoError(t, m.AddSupport(truss.Support{ID: "SB", NodeID: "B", AngleDeg: b, Constraints: 1}))
		require.NoError(t, m.AddSupport(truss.Support{ID: "SC", NodeID: "C", AngleDeg: c, Constraints: 1}))

		return m
	}

	assert.False(t, rollers(t, 90, 90, 90).IsStable(), "all reaction axes parallel")
	assert.False(t, rollers(t, 90, 90, 270).IsStable(), "parallel holds modulo 180")

	// Reaction lines from A, B and C all pass through (2,1): the structure
	// is free to rotate about that point.
	concurrent := rollers(t, 26.565051177078, 153.434948822922, 270)
	assert.False(t, concurrent.IsStable(), "concurrent reaction lines")

	// Turning C's roller breaks the common point.
	apart := rollers(t, 26.565051177078, 153.434948822922, 0)
	assert.True(t, apart.IsStable(), "distinct intersection points are stable")

	assert.True(t, triangleModel(t).IsStable(), "pin plus roller triangle")

	disconnected := truss.NewModel()
	require.NoError(t, disconnected.AddNode(truss.Node{ID: "A"}))
	assert.False(t, disconnected.IsStable(), "fewer than three reaction forces")
}

// TestHasThreeReactionForces counts removed degrees of freedom exactly.
func TestHasThreeReactionForces(t *testing.T) {
	m := triangleModel(t)
	assert.True(t, m.HasThreeReactionForces())

	require.NoError(t, m.AddSupport(truss.Support{ID: "SC", NodeID: "C", Constraints: 1}))
	assert.False(t, m.HasThreeReactionForces(), "four constraints are too many")
	assert.False(t, m.Validate().IsValid)
}
