package equilibrium

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/watollah/twl-bachelorarbeit-sub000/geometry"
	"github.com/watollah/twl-bachelorarbeit-sub000/truss"
)

// Solution holds every solved unknown of one Model, in column order.
// The zero Solution (from an invalid Model) is empty but safe to query.
type Solution struct {
	model   *truss.Model
	results []Result
	byOwner map[string][]Result
}

// Empty reports whether the solve produced no results (invalid Model).
func (s *Solution) Empty() bool { return len(s.results) == 0 }

// Results returns all solved unknowns in column order. The slice is a copy.
func (s *Solution) Results() []Result { return append([]Result(nil), s.results...) }

// ByOwner returns the results owned by one support or beam id: one for a
// beam or roller, two (horizontal then vertical) for a pin. Nil if unknown.
func (s *Solution) ByOwner(ownerID string) []Result {
	return append([]Result(nil), s.byOwner[ownerID]...)
}

// Reactions returns one resultant reaction per support, in support
// declaration order. A pin's two components are combined into one vector.
func (s *Solution) Reactions() []Reaction {
	if s.Empty() {
		return nil
	}

	var out []Reaction
	for _, sup := range s.model.Supports() {
		var x, y float64
		for _, r := range s.byOwner[sup.ID] {
			dx, dy := geometry.Direction(r.Unknown.AngleDeg)
			x += r.Strength * dx
			y += r.Strength * dy
		}
		strength := math.Hypot(x, y)
		angle := sup.ReactionAngle()
		if sup.Constraints == 2 {
			angle = geometry.Angle(geometry.Point{}, geometry.Point{X: x, Y: y})
		} else if rs := s.byOwner[sup.ID]; len(rs) == 1 {
			// Roller: keep the reaction axis and the signed strength.
			strength = rs[0].Strength
		}
		out = append(out, Reaction{
			SupportID: sup.ID,
			NodeID:    sup.NodeID,
			AngleDeg:  angle,
			Strength:  strength,
		})
	}

	return out
}

// ResidualAt re-evaluates nodal equilibrium at one node from the solved
// strengths plus the external loads: both sums are ≈0 for a sound solution.
func (s *Solution) ResidualAt(nodeID string) (fx, fy float64) {
	if s.Empty() {
		return 0, 0
	}

	// External loads.
	for _, f := range s.model.ForcesAt(nodeID) {
		sin, cos := sinCosDeg(f.AngleDeg)
		fx += f.Strength * sin
		fy += f.Strength * cos
	}
	// Solved unknowns acting at this node.
	for _, r := range s.results {
		switch r.Unknown.Kind {
		case KindSupport:
			if r.Unknown.NodeID != nodeID {
				continue
			}
			sin, cos := sinCosDeg(r.Unknown.AngleDeg)
			fx += r.Strength * sin
			fy += r.Strength * cos
		case KindBeam:
			angle, err := s.model.BeamAngleAt(r.Unknown.OwnerID, nodeID)
			if err != nil {
				continue // beam does not touch this node
			}
			sin, cos := sinCosDeg(angle)
			fx += r.Strength * sin
			fy += r.Strength * cos
		}
	}

	return fx, fy
}

// Solve assembles and solves the equilibrium system of m. It returns an
// empty Solution and nil error when m fails validation, and
// ErrIllConditioned when the system is numerically degenerate despite
// passing the structural checks.
func Solve(m *truss.Model, opts ...Option) (*Solution, error) {
	// 1. Validate input and options.
	if m == nil {
		return nil, ErrModelNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2. Structural invalidity degrades to an empty solution, no error.
	if !m.Validate().IsValid {
		return &Solution{model: m}, nil
	}

	// 3. Synthesize the unknown columns: supports first (pin → horizontal
	//    then vertical component), then beams, all in declaration order.
	//    Static determinacy makes the count exactly 2N.
	unknowns := buildUnknowns(m)
	nodes := m.Nodes()
	n := 2 * len(nodes)

	// 4. Assemble coefficients and the load vector. Known external forces
	//    move to the right-hand side with their sign flipped.
	a := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)
	for i, node := range nodes {
		for j, u := range unknowns {
			ch, cv, err := coefficients(m, u, node.ID)
			if err != nil {
				return nil, err
			}
			a.Set(2*i, j, ch)
			a.Set(2*i+1, j, cv)
		}
		var loadH, loadV float64
		for _, f := range m.ForcesAt(node.ID) {
			sin, cos := sinCosDeg(f.AngleDeg)
			loadH += f.Strength * sin
			loadV += f.Strength * cos
		}
		rhs.SetVec(2*i, -loadH)
		rhs.SetVec(2*i+1, -loadV)
	}

	// 5. LU solve with an explicit conditioning gate.
	var lu mat.LU
	lu.Factorize(a)
	if cond := lu.Cond(); math.IsNaN(cond) || cond > o.Tolerance {
		return nil, fmt.Errorf("%w: condition number %.3g", ErrIllConditioned, cond)
	}
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIllConditioned, err)
	}

	// 6. Classify and index the solved strengths.
	sol := &Solution{
		model:   m,
		results: make([]Result, len(unknowns)),
		byOwner: make(map[string][]Result, len(unknowns)),
	}
	scale := math.Pow(10, float64(o.ZeroPrecision))
	for j, u := range unknowns {
		strength := x.AtVec(j)
		value := math.Round(strength*scale) / scale
		r := Result{Unknown: u, Strength: strength, Value: value, Type: classify(value)}
		sol.results[j] = r
		sol.byOwner[u.OwnerID] = append(sol.byOwner[u.OwnerID], r)
	}

	return sol, nil
}

// buildUnknowns lists the system's columns in canonical order.
func buildUnknowns(m *truss.Model) []Unknown {
	var out []Unknown
	for _, s := range m.Supports() {
		if s.Constraints == 2 {
			out = append(out,
				Unknown{ID: s.ID + ":h", Kind: KindSupport, OwnerID: s.ID, NodeID: s.NodeID, AngleDeg: 90},
				Unknown{ID: s.ID + ":v", Kind: KindSupport, OwnerID: s.ID, NodeID: s.NodeID, AngleDeg: 0},
			)
			continue
		}
		out = append(out, Unknown{ID: s.ID, Kind: KindSupport, OwnerID: s.ID, NodeID: s.NodeID, AngleDeg: s.ReactionAngle()})
	}
	for _, b := range m.Beams() {
		out = append(out, Unknown{ID: b.ID, Kind: KindBeam, OwnerID: b.ID})
	}

	return out
}

// coefficients returns the horizontal and vertical equation coefficients of
// unknown u at the given node: zero when u does not act there, otherwise
// sin/cos of its direction as seen from that node.
func coefficients(m *truss.Model, u Unknown, nodeID string) (ch, cv float64, err error) {
	switch u.Kind {
	case KindSupport:
		if u.NodeID != nodeID {
			return 0, 0, nil
		}
		sin, cos := sinCosDeg(u.AngleDeg)

		return sin, cos, nil
	default: // KindBeam
		b, _ := m.Beam(u.OwnerID)
		if _, touches := b.OtherEnd(nodeID); !touches {
			return 0, 0, nil
		}
		angle, err := m.BeamAngleAt(u.OwnerID, nodeID)
		if err != nil {
			return 0, 0, err
		}
		sin, cos := sinCosDeg(angle)

		return sin, cos, nil
	}
}

// classify maps a rounded strength onto its force type.
func classify(value float64) ForceType {
	switch {
	case value < 0:
		return Compressive
	case value > 0:
		return Tensile
	default:
		return Zero
	}
}

// sinCosDeg returns sine and cosine of an angle given in degrees.
func sinCosDeg(deg float64) (sin, cos float64) {
	rad := deg * math.Pi / 180

	return math.Sin(rad), math.Cos(rad)
}
