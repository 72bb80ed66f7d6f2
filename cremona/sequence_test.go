package cremona_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watollah/twl-bachelorarbeit-sub000/cremona"
	"github.com/watollah/twl-bachelorarbeit-sub000/equilibrium"
	"github.com/watollah/twl-bachelorarbeit-sub000/truss"
)

// triangleModel builds the canonical structure: nodes A(0,0), B(4,0),
// C(2,3); beams AB, BC, CA; pin at A, roller at B on a horizontal surface;
// 10 kN load at C pointing down.
func triangleModel(t *testing.T) *truss.Model {
	t.Helper()
	m := truss.NewModel()
	require.NoError(t, m.AddNode(truss.Node{ID: "A", X: 0, Y: 0}))
	require.NoError(t, m.AddNode(truss.Node{ID: "B", X: 4, Y: 0}))
	require.NoError(t, m.AddNode(truss.Node{ID: "C", X: 2, Y: 3}))
	require.NoError(t, m.AddBeam(truss.Beam{ID: "AB", StartNodeID: "A", EndNodeID: "B"}))
	require.NoError(t, m.AddBeam(truss.Beam{ID: "BC", StartNodeID: "B", EndNodeID: "C"}))
	require.NoError(t, m.AddBeam(truss.Beam{ID: "CA", StartNodeID: "C", EndNodeID: "A"}))
	require.NoError(t, m.AddSupport(truss.Support{ID: "SA", NodeID: "A", Constraints: 2}))
	require.NoError(t, m.AddSupport(truss.Support{ID: "SB", NodeID: "B", AngleDeg: 90, Constraints: 1}))
	require.NoError(t, m.AddForce(truss.Force{ID: "F", NodeID: "C", AngleDeg: 180, Strength: 10}))

	return m
}

func solvedTriangle(t *testing.T) (*truss.Model, *equilibrium.Solution) {
	t.Helper()
	m := triangleModel(t)
	sol, err := equilibrium.Solve(m)
	require.NoError(t, err)
	require.False(t, sol.Empty())

	return m, sol
}

// TestSequence_EmptySolution: an invalid model yields no steps.
func TestSequence_EmptySolution(t *testing.T) {
	m := truss.NewModel()
	require.NoError(t, m.AddNode(truss.Node{ID: "A"}))
	sol, err := equilibrium.Solve(m)
	require.NoError(t, err)

	assert.Nil(t, cremona.Sequence(m, sol))
	assert.Nil(t, cremona.Sequence(nil, nil))
	assert.Nil(t, cremona.Sequence(m, nil))
}

// TestSequence_Triangle pins the full expected playback of the canonical
// scenario: the user's load opens the diagram, the two reactions follow,
// then the joints resolve node by node.
func TestSequence_Triangle(t *testing.T) {
	m, sol := solvedTriangle(t)
	steps := cremona.Sequence(m, sol)

	type key struct {
		node   string
		force  string
		sketch bool
	}
	got := make([]key, len(steps))
	for i, s := range steps {
		got[i] = key{node: s.NodeID, force: s.ForceID, sketch: s.Sketch}
	}

	want := []key{
		{node: "", force: "F"},
		{node: "", force: "SA"},
		{node: "", force: "SB"},
		{node: "A", force: "AB", sketch: true},
		{node: "A", force: "CA", sketch: true},
		{node: "A", force: "AB"},
		{node: "A", force: "CA"},
		{node: "B", force: "BC", sketch: true},
		{node: "B", force: "BC"},
	}
	assert.Equal(t, want, got)

	// Owner kinds survive into the steps.
	assert.Equal(t, cremona.OwnerForce, steps[0].Owner)
	assert.Equal(t, cremona.OwnerSupport, steps[1].Owner)
	assert.Equal(t, cremona.OwnerBeam, steps[3].Owner)
}

// TestSequence_Deterministic: identical input, identical output, invocation
// after invocation.
func TestSequence_Deterministic(t *testing.T) {
	m, sol := solvedTriangle(t)

	first := cremona.Sequence(m, sol)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, cremona.Sequence(m, sol))
	}
}

// TestSequence_SketchPrecedesFinal: every force's sketch steps come before
// its final step, and every non-outside force gets exactly one final step.
func TestSequence_SketchPrecedesFinal(t *testing.T) {
	m, sol := solvedTriangle(t)
	steps := cremona.Sequence(m, sol)

	final := make(map[string]int)
	for i, s := range steps {
		if s.Sketch {
			_, done := final[s.ForceID]
			assert.False(t, done, "sketch of %s after its final step", s.ForceID)
			continue
		}
		_, done := final[s.ForceID]
		assert.False(t, done, "duplicate final step for %s", s.ForceID)
		final[s.ForceID] = i
	}
	for _, b := range m.Beams() {
		assert.Contains(t, final, b.ID, "beam %s must be drawn", b.ID)
	}
}

// TestOwnerKindString pins the diagnostic labels.
func TestOwnerKindString(t *testing.T) {
	assert.Equal(t, "force", cremona.OwnerForce.String())
	assert.Equal(t, "support", cremona.OwnerSupport.String())
	assert.Equal(t, "beam", cremona.OwnerBeam.String())
}
